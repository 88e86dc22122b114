// Package export writes researched leads to timestamped flat files for
// downstream spreadsheet workflows.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/leadscout/internal/model"
)

// header is the column order for both formats.
var header = []string{
	"company_name", "website", "canonical_name", "summary",
	"industry", "logo", "news", "sources_used", "run_id",
}

// WriteCSV writes leads to dir as leads_export_<timestamp>.csv and returns
// the file path. List-valued fields are JSON-encoded into their cells.
func WriteCSV(leads []*model.Lead, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", eris.Wrap(err, "export: create dir")
	}

	path := filepath.Join(dir, exportName("csv"))
	f, err := os.Create(path)
	if err != nil {
		return "", eris.Wrap(err, "export: create file")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return "", eris.Wrap(err, "export: write header")
	}
	for _, lead := range leads {
		row, err := leadRow(lead)
		if err != nil {
			return "", err
		}
		if err := w.Write(row); err != nil {
			return "", eris.Wrap(err, "export: write row")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", eris.Wrap(err, "export: flush")
	}
	return path, nil
}

// WriteXLSX writes leads to dir as leads_export_<timestamp>.xlsx with a
// single "Leads" sheet and returns the file path.
func WriteXLSX(leads []*model.Lead, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", eris.Wrap(err, "export: create dir")
	}

	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Leads")
	if err != nil {
		return "", eris.Wrap(err, "export: add sheet")
	}

	headerRow := sheet.AddRow()
	for _, col := range header {
		headerRow.AddCell().SetString(col)
	}
	for _, lead := range leads {
		cells, err := leadRow(lead)
		if err != nil {
			return "", err
		}
		row := sheet.AddRow()
		for _, cell := range cells {
			row.AddCell().SetString(cell)
		}
	}

	path := filepath.Join(dir, exportName("xlsx"))
	if err := f.Save(path); err != nil {
		return "", eris.Wrap(err, "export: save file")
	}
	return path, nil
}

func leadRow(lead *model.Lead) ([]string, error) {
	news, err := json.Marshal(lead.News)
	if err != nil {
		return nil, eris.Wrap(err, "export: encode news")
	}
	sources, err := json.Marshal(lead.SourcesUsed)
	if err != nil {
		return nil, eris.Wrap(err, "export: encode sources")
	}

	return []string{
		lead.CompanyName,
		lead.Website,
		lead.CanonicalName,
		lead.Summary,
		lead.Industry,
		lead.Logo,
		string(news),
		string(sources),
		lead.RunID,
	}, nil
}

func exportName(ext string) string {
	return fmt.Sprintf("leads_export_%s.%s", time.Now().Format("20060102_150405"), ext)
}

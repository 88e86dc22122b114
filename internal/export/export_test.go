package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/leadscout/internal/model"
)

func exportLeads() []*model.Lead {
	lead := model.NewLead("Stripe", "https://stripe.com")
	lead.CanonicalName = "Stripe"
	lead.Summary = "Payments infrastructure, with a \"quoted\" phrase."
	lead.Industry = "FinTech"
	lead.News = []model.NewsItem{
		{Title: "Stripe expands", Link: "https://example.com/news"},
	}
	lead.AddSource(model.SourceBrandfetch)
	lead.AddSource(model.SourceNewsData)
	lead.RunID = "run-123"

	empty := model.NewLead("Ghost", "")
	return []*model.Lead{lead, empty}
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteCSV(exportLeads(), dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.Regexp(t, `^leads_export_\d{8}_\d{6}\.csv$`, filepath.Base(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, header, rows[0])
	assert.Equal(t, "Stripe", rows[1][0])
	assert.Equal(t, "FinTech", rows[1][4])

	var news []model.NewsItem
	require.NoError(t, json.Unmarshal([]byte(rows[1][6]), &news))
	require.Len(t, news, 1)
	assert.Equal(t, "Stripe expands", news[0].Title)

	var sources []string
	require.NoError(t, json.Unmarshal([]byte(rows[1][7]), &sources))
	assert.Equal(t, []string{model.SourceBrandfetch, model.SourceNewsData}, sources)

	// Lead with nothing researched still round-trips as valid JSON cells.
	assert.Equal(t, "Ghost", rows[2][0])
	assert.Equal(t, "[]", rows[2][6])
	assert.Equal(t, "[]", rows[2][7])
}

func TestWriteCSVCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	path, err := WriteCSV(nil, dir)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestWriteXLSX(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteXLSX(exportLeads(), dir)
	require.NoError(t, err)
	assert.Regexp(t, `^leads_export_\d{8}_\d{6}\.xlsx$`, filepath.Base(path))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)

	sheet, ok := f.Sheet["Leads"]
	require.True(t, ok)
	require.Len(t, sheet.Rows, 3)

	first := sheet.Rows[0]
	require.Len(t, first.Cells, len(header))
	assert.Equal(t, "company_name", first.Cells[0].String())

	assert.Equal(t, "Stripe", sheet.Rows[1].Cells[0].String())
	assert.Equal(t, "run-123", sheet.Rows[1].Cells[8].String())
	assert.Equal(t, "Ghost", sheet.Rows[2].Cells[0].String())
}

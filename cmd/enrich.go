package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/leadscout/internal/export"
	"github.com/sells-group/leadscout/internal/insight"
	"github.com/sells-group/leadscout/internal/model"
	"github.com/sells-group/leadscout/internal/report"
	"github.com/sells-group/leadscout/internal/research"
	"github.com/sells-group/leadscout/internal/urlutil"
)

var (
	enrichURL       string
	enrichStrategic bool
	enrichCSV       bool
	enrichXLSX      bool
	enrichOut       string
)

var enrichCmd = &cobra.Command{
	Use:   "enrich <company>",
	Short: "Research a company and generate a strategic assessment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if !urlutil.IsValidCompanyName(args[0]) {
			return eris.Errorf("invalid company name %q", args[0])
		}
		if enrichURL != "" && !urlutil.IsValidURL(enrichURL) {
			return eris.Errorf("invalid URL %q", enrichURL)
		}

		deps := newDeps(cfg)
		researcher := research.New(cfg, deps)

		lead := researcher.Research(ctx, args[0], enrichURL)

		ins := newSynthesizer(cfg, deps, researcher).Generate(ctx, insight.Request{
			CompanyName:             lead.CompanyName,
			CanonicalName:           lead.CanonicalName,
			Summary:                 lead.Summary,
			Industry:                lead.Industry,
			Website:                 lead.Website,
			News:                    lead.News,
			SourcesUsed:             lead.SourcesUsed,
			IncludeStrategicContext: enrichStrategic,
		})

		report.Render(cmd.OutOrStdout(), lead, ins)

		outDir := enrichOut
		if outDir == "" {
			outDir = cfg.Export.Dir
		}
		leads := []*model.Lead{lead}
		if enrichCSV {
			path, err := export.WriteCSV(leads, outDir)
			if err != nil {
				return eris.Wrap(err, "export csv")
			}
			zap.L().Info("exported csv", zap.String("path", path))
		}
		if enrichXLSX {
			path, err := export.WriteXLSX(leads, outDir)
			if err != nil {
				return eris.Wrap(err, "export xlsx")
			}
			zap.L().Info("exported xlsx", zap.String("path", path))
		}

		return nil
	},
}

func init() {
	enrichCmd.Flags().StringVar(&enrichURL, "url", "", "company website URL (discovered if omitted)")
	enrichCmd.Flags().BoolVar(&enrichStrategic, "strategic", false, "include strategic market research in the assessment")
	enrichCmd.Flags().BoolVar(&enrichCSV, "csv", false, "export the lead to CSV")
	enrichCmd.Flags().BoolVar(&enrichXLSX, "xlsx", false, "export the lead to XLSX")
	enrichCmd.Flags().StringVar(&enrichOut, "out", "", "export directory (default from config)")
	rootCmd.AddCommand(enrichCmd)
}

package main

import (
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/leadscout/internal/research"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Run a strategic market search and print the results",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		deps := newDeps(cfg)
		if deps.Serper == nil {
			return eris.New("search requires LEADSCOUT_SERPER_KEY")
		}

		results := research.New(cfg, deps).StrategicContext(cmd.Context(), query, "")
		if len(results) == 0 {
			return eris.Errorf("no results found for %q", query)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

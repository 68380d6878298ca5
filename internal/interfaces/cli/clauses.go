package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turtacn/PolicyLens/internal/analysis/clause"
	"github.com/turtacn/PolicyLens/internal/application/assessment"
)

// newClausesCmd creates the clauses command listing the detection catalog.
func newClausesCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clauses",
		Short: "List the clause detection catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := clause.Catalog()

			if strings.EqualFold(opts.OutputFormat, "json") {
				type entry struct {
					Type    string `json:"type"`
					Weight  int    `json:"weight"`
					Summary string `json:"summary"`
				}
				entries := make([]entry, len(catalog))
				for i, def := range catalog {
					entries[i] = entry{Type: def.Type, Weight: def.Weight, Summary: clause.SummaryFor(def.Type)}
				}
				return printJSON(cmd, entries)
			}

			rows := make([][]string, len(catalog))
			for i, def := range catalog {
				rows[i] = []string{def.Type, strconv.Itoa(def.Weight), clause.SummaryFor(def.Type)}
			}
			fmt.Fprint(cmd.OutOrStdout(), formatTable([]string{"TYPE", "WEIGHT", "SUMMARY"}, rows))
			return nil
		},
	}
}

// newCompareCmd creates the compare command positioning a score against the
// market baseline.
func newCompareCmd(svc assessment.Service, opts *RootOptions) *cobra.Command {
	var score int

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare a risk score against the market average",
		RunE: func(cmd *cobra.Command, args []string) error {
			if score < 0 || score > 100 {
				return fmt.Errorf("score must be in [0, 100], got %d", score)
			}
			comparison := svc.CompareWithMarket(score)

			if strings.EqualFold(opts.OutputFormat, "json") {
				return printJSON(cmd, comparison)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Score %d: %s (market average %d, better than %d%% of sites)\n",
				comparison.Score, comparison.Comparison, comparison.MarketAverage, comparison.Percentile)
			return nil
		},
	}

	cmd.Flags().IntVarP(&score, "score", "s", -1, "risk score to compare [REQUIRED]")
	_ = cmd.MarkFlagRequired("score")

	return cmd
}

//Personal.AI order the ending

package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turtacn/PolicyLens/internal/application/assessment"
	"github.com/turtacn/PolicyLens/pkg/types/policy"
)

// newAnalyzeCmd creates the analyze command.
func newAnalyzeCmd(svc assessment.Service, opts *RootOptions) *cobra.Command {
	var (
		file         string
		text         string
		url          string
		languageHint string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a privacy policy or terms-of-service document",
		Long:  "Run the full analysis pipeline on a document supplied via --file or --text:\nlanguage detection, clause detection, readability, and risk scoring.",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := text
			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("failed to read document: %w", err)
				}
				raw = string(data)
			}
			if strings.TrimSpace(raw) == "" {
				return fmt.Errorf("no document supplied; use --file or --text")
			}

			result, err := svc.Analyze(cmd.Context(), &assessment.AnalyzeInput{
				Document: policy.Document{RawText: raw, LanguageHint: languageHint},
				Page:     policy.PageInfo{URL: url},
				Source:   "cli",
			})
			if err != nil {
				return err
			}

			if strings.EqualFold(opts.OutputFormat, "json") {
				return printJSON(cmd, result)
			}
			printAssessment(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the document file")
	cmd.Flags().StringVarP(&text, "text", "t", "", "document text passed inline")
	cmd.Flags().StringVar(&url, "url", "", "page URL the document was extracted from")
	cmd.Flags().StringVar(&languageHint, "lang", "", "ISO 639-1 language hint (en, fr, ...)")

	return cmd
}

// printAssessment renders the text report.
func printAssessment(cmd *cobra.Command, a *assessment.Assessment) {
	out := cmd.OutOrStdout()
	level := a.Score.RiskLevel

	fmt.Fprintf(out, "%s Score: %d/100 (%s)\n", level.Icon, a.Score.Score, level.Label)
	fmt.Fprintf(out, "Language: %s    Confidence: %.0f%%\n", a.Language, a.Score.Confidence*100)
	fmt.Fprintf(out, "Words: %d    Sentences: %d    Readability: %s\n\n",
		a.NLP.Stats.WordCount, a.NLP.Stats.SentenceCount, a.NLP.Readability.Difficulty)

	if a.Clauses.ClauseCount > 0 {
		fmt.Fprintln(out, "Detected clauses:")
		types := make([]string, 0, len(a.Clauses.DetectedClauses))
		for t := range a.Clauses.DetectedClauses {
			types = append(types, t)
		}
		sort.Strings(types)
		for _, t := range types {
			d := a.Clauses.DetectedClauses[t]
			fmt.Fprintf(out, "  %-28s weight %3d    %s\n", d.Type, d.Weight, d.Summary)
		}
		fmt.Fprintln(out)
	}

	if len(a.Score.Recommendations) > 0 {
		fmt.Fprintln(out, "Recommendations:")
		for _, rec := range a.Score.Recommendations {
			fmt.Fprintf(out, "  %s\n", rec)
		}
		fmt.Fprintln(out)
	}

	if len(a.ThirdParties) > 0 {
		fmt.Fprintf(out, "Third-party services: %s\n", strings.Join(a.ThirdParties, ", "))
	}
	if a.Retention.Found {
		fmt.Fprintf(out, "Data retention: %s\n", a.Retention.Duration)
	}
}

//Personal.AI order the ending

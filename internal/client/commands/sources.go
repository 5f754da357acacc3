package commands

import (
	"github.com/spf13/cobra"

	"github.com/criteo/copilot-auth/internal/client/auth"
	"github.com/criteo/copilot-auth/internal/client/errors"
	"github.com/criteo/copilot-auth/internal/client/output"
	"github.com/criteo/copilot-auth/internal/client/validation"
)

var flagOutput string

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Show what every token source returns",
	Long: `Probe every token source, without stopping at the first match, and show
the outcome of each. The source the locator would use is marked with '*'.

Tokens are always masked.`,
	Args: cobra.NoArgs,
	Run:  runSources,
}

// sourceReport is one row of the sources output
type sourceReport struct {
	Source   string `json:"source" yaml:"source"`
	Outcome  string `json:"outcome" yaml:"outcome"`
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
	Token    string `json:"token,omitempty" yaml:"token,omitempty"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
	Selected bool   `json:"selected" yaml:"selected"`
}

// buildSourceReports turns outcomes into masked report rows
func buildSourceReports(outcomes []auth.Outcome) []sourceReport {
	selected, ok := auth.Select(outcomes)

	reports := make([]sourceReport, 0, len(outcomes))
	for _, o := range outcomes {
		r := sourceReport{
			Source:   o.Source,
			Outcome:  o.Kind.String(),
			Location: o.Location,
			Selected: ok && o.Source == selected.Source,
		}
		if o.OK() {
			r.Token = auth.Mask(o.Token)
		}
		if o.Err != nil {
			r.Error = o.Err.Error()
		}
		reports = append(reports, r)
	}
	return reports
}

func runSources(cmd *cobra.Command, args []string) {
	format := flagOutput
	if flagJSON {
		format = validation.FormatJSON
	}
	if err := validation.ValidateOutputFormat(format); err != nil {
		errors.ExitWithCode(errors.ExitInvalidArguments, err.Error())
	}

	reports := buildSourceReports(newLocator().Trace(cmd.Context()))

	switch format {
	case validation.FormatJSON:
		output.OutputJSON(reports, nil)
	case validation.FormatYAML:
		output.OutputYAML(reports)
	default:
		tw := output.NewTableWriterTo(cmd.OutOrStdout())
		tw.WriteHeader("", "SOURCE", "OUTCOME", "LOCATION", "DETAIL")
		for _, r := range reports {
			mark := ""
			if r.Selected {
				mark = "*"
			}
			detail := r.Token
			if r.Error != "" {
				detail = r.Error
			}
			tw.WriteRow(mark, r.Source, r.Outcome, r.Location, detail)
		}
		tw.Flush()
	}
}

func init() {
	sourcesCmd.Flags().StringVarP(&flagOutput, "output", "o", validation.FormatTable, "Output format: table, json or yaml")
	rootCmd.AddCommand(sourcesCmd)
}

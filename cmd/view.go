package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/loccy/internal/domain"
	m "github.com/mouse-blink/loccy/internal/model"
)

var viewReportFlags []string
var viewByFileFlag bool
var viewShowSkippedFlag bool
var viewMetricsFileFlag string

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [reports...]",
		Short: "View previously saved reports",
		Long: `View reports saved with --report in json or yaml format.

Several reports are summed into one, which is handy for runs over
disjoint trees.`,
		RunE: func(_ *cobra.Command, args []string) error {
			reports := make([]m.Path, 0, len(viewReportFlags)+len(args))
			for _, report := range append(append([]string{}, viewReportFlags...), args...) {
				reports = append(reports, m.Path(report))
			}

			if len(reports) == 0 {
				return errors.New("no report given: pass a path or --report")
			}

			return workflow.View(domain.ViewArgs{
				Reports:     reports,
				ByFile:      viewByFileFlag || settings.Output.ByFile,
				ShowSkipped: viewShowSkippedFlag || settings.Output.ShowSkipped,
				MetricsFile: m.Path(viewMetricsFileFlag),
			})
		},
	}
	cmd.Flags().StringArrayVarP(&viewReportFlags, "report", "o", nil, "report file to view (can be repeated)")
	cmd.Flags().BoolVar(&viewByFileFlag, "by-file", false, "show the per-file table")
	cmd.Flags().BoolVar(&viewShowSkippedFlag, "show-skipped", false, "list skipped files and the reason")
	cmd.Flags().StringVar(&viewMetricsFileFlag, "metrics-file", "", "write Prometheus textfile metrics for the report to this file")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

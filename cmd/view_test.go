package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/loccy/internal/domain"
	domainmocks "github.com/mouse-blink/loccy/internal/domain/mocks"
	m "github.com/mouse-blink/loccy/internal/model"
)

func TestViewCmd_PositionalAndFlagReports(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	isolate(t, mockWorkflow)

	var got domain.ViewArgs
	mockWorkflow.EXPECT().
		View(mock.Anything).
		Run(func(args domain.ViewArgs) { got = args }).
		Return(nil)

	cmd, _ := newTestRootCmd(newViewCmd())
	cmd.SetArgs([]string{"view", "--report", "a.json", "--by-file", "--metrics-file", "v.prom", "b.yaml"})

	require.NoError(t, cmd.Execute())

	assert.Equal(t, domain.ViewArgs{
		Reports:     []m.Path{"a.json", "b.yaml"},
		ByFile:      true,
		MetricsFile: "v.prom",
	}, got)
}

func TestViewCmd_UsesConfiguredOutput(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	isolate(t, mockWorkflow)
	t.Setenv("LOCCY_OUTPUT_SHOW_SKIPPED", "true")

	mockWorkflow.EXPECT().
		View(mock.MatchedBy(func(args domain.ViewArgs) bool {
			return args.ShowSkipped && !args.ByFile && len(args.Reports) == 1
		})).
		Return(nil)

	cmd, _ := newTestRootCmd(newViewCmd())
	cmd.SetArgs([]string{"view", "report.json"})

	require.NoError(t, cmd.Execute())
}

func TestViewCmd_RequiresAReport(t *testing.T) {
	isolate(t, domainmocks.NewMockWorkflow(t))

	cmd, _ := newTestRootCmd(newViewCmd())
	cmd.SetArgs([]string{"view"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no report given")
}

package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainmocks "github.com/mouse-blink/loccy/internal/domain/mocks"
)

func TestLanguagesCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	isolate(t, mockWorkflow)

	mockWorkflow.EXPECT().Languages().Return(nil)

	cmd, _ := newTestRootCmd(newLanguagesCmd())
	cmd.SetArgs([]string{"languages"})

	require.NoError(t, cmd.Execute())
}

func TestLanguagesCmd_AliasAndError(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	isolate(t, mockWorkflow)

	mockWorkflow.EXPECT().Languages().Return(errors.New("closed pipe"))

	cmd, _ := newTestRootCmd(newLanguagesCmd())
	cmd.SetArgs([]string{"list"})

	require.EqualError(t, cmd.Execute(), "closed pipe")
}

func TestLanguagesCmd_RejectsArgs(t *testing.T) {
	isolate(t, domainmocks.NewMockWorkflow(t))

	cmd, _ := newTestRootCmd(newLanguagesCmd())
	cmd.SetArgs([]string{"languages", "go"})

	require.Error(t, cmd.Execute())
}

func TestNewLanguagesCmd(t *testing.T) {
	cmd := newLanguagesCmd()

	assert.Equal(t, "languages", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, languagesLongDescription, cmd.Long)
	assert.True(t, strings.Contains(cmd.Long, "shebang"))
}

func TestVersionCmd(t *testing.T) {
	isolate(t, domainmocks.NewMockWorkflow(t))

	cmd, out := newTestRootCmd(newVersionCmd())
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.True(t, strings.HasPrefix(out.String(), "loccy "))
	assert.Contains(t, out.String(), "commit: none")
}

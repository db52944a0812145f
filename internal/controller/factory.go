package controller

import (
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewUI picks the front-end for the command's output stream: the results
// browser on a terminal, cloc style tables for pipes, files and /dev/null.
func NewUI(cmd *cobra.Command) UI {
	if IsTTY(cmd.OutOrStdout()) {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal. Character devices that
// are not terminals, such as /dev/null, are not.
func IsTTY(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

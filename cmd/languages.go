package cmd

import (
	"github.com/spf13/cobra"
)

// languagesCmd represents the languages command.
var languagesCmd = newLanguagesCmd()

const languagesLongDescription = `List every language loccy recognizes, with its comment family and the
file extensions and names that select it.

Files matching none of these are sniffed for a shebang or editor modeline
when they have no extension, and ignored otherwise.`

func newLanguagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "languages",
		Aliases: []string{"list"},
		Short:   "List recognized languages",
		Long:    languagesLongDescription,
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Languages()
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}

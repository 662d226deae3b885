package cli

import (
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new CHANGELOG.md with an empty Unreleased section",
	Long: `Create a new changelog file with an empty Unreleased section.

If the file already exists it is left untouched and a warning is printed.

Example:
  chlog init
  chlog init -F docs/CHANGELOG.md`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, _, err := newChangelogFile()
		if err != nil {
			return err
		}
		f.Out = cmd.OutOrStdout()
		f.ErrOut = cmd.ErrOrStderr()
		return f.Init()
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

package cli

import (
	"github.com/spf13/cobra"
)

var releaseDateFlag string

var releaseCmd = &cobra.Command{
	Use:   "release <version|major|minor|patch>",
	Short: "Promote the Unreleased section into a new release",
	Long: `Promote the Unreleased section into a dated release.

The argument is either an explicit semantic version or a bump keyword
applied to the latest released version. The Unreleased section is reset
to an empty category template.

Examples:
  chlog release 1.2.0
  chlog release minor
  chlog release patch -d 2026-01-15`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, _, err := newChangelogFile()
		if err != nil {
			return err
		}
		f.Out = cmd.OutOrStdout()
		_, err = f.Release(args[0], releaseDateFlag)
		return err
	},
}

func init() {
	rootCmd.AddCommand(releaseCmd)

	releaseCmd.Flags().StringVarP(&releaseDateFlag, "date", "d", "", "Release date (YYYY-MM-DD, default today)")
}

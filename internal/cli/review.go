package cli

import (
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chlog/internal/review"
)

var reviewVersionFlag string

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review commits interactively and turn them into changelog entries",
	Long: `Walk the commits a release covers, pick the user-visible ones, and
shape their descriptions in your editor before they are written to the
changelog.

Without --version the commits since the latest release tag are reviewed
into the Unreleased section. Conventional feat and fix commits start
selected and pre-classified; everything else defaults to Changed.

The editor buffer works like a git rebase todo list: edit types and
descriptions, delete lines to drop entries, save an empty list to abort.

Examples:
  chlog review
  chlog review -v 1.2.0`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, cfg, err := newChangelogFile()
		if err != nil {
			return err
		}

		p := &review.Pipeline{
			File:    f,
			Version: reviewVersionFlag,
			Editor:  cfg.Editor,
			WorkDir: ".",
			Out:     cmd.OutOrStdout(),
		}
		return p.Run()
	},
}

func init() {
	rootCmd.AddCommand(reviewCmd)

	reviewCmd.Flags().StringVarP(&reviewVersionFlag, "version", "v", "", "Release version to review (default Unreleased)")
}

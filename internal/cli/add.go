package cli

import (
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chlog/internal/diff"
)

var (
	addTypeFlag    string
	addVersionFlag string
	addNoDiffFlag  bool
)

var addCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Add an entry to the changelog",
	Long: `Add an entry to a release section of the changelog.

The entry goes under the Unreleased section unless --version targets an
existing release. The change type selects the category; single-letter
aliases are accepted. After writing, the changed section is shown as a
diff unless --no-diff is given.

Examples:
  chlog add "Support config profiles"
  chlog add -t fixed "Handle empty input"
  chlog add -t f "Handle empty input"
  chlog add -t removed -v 1.2.0 "Drop legacy flag"`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, _, err := newChangelogFile()
		if err != nil {
			return err
		}

		oldContent, err := f.Read()
		if err != nil {
			return err
		}
		if err := f.Add(args[0], addTypeFlag, addVersionFlag); err != nil {
			return err
		}
		if addNoDiffFlag {
			return nil
		}

		newContent, err := f.Read()
		if err != nil {
			return err
		}
		return diff.Release(oldContent, newContent, addVersionFlag, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addTypeFlag, "type", "t", "changed", "Change type: added, changed, deprecated, removed, fixed, security (or a, c, d, r, f, s)")
	addCmd.Flags().StringVarP(&addVersionFlag, "version", "v", "", "Target release version (default Unreleased)")
	addCmd.Flags().BoolVar(&addNoDiffFlag, "no-diff", false, "Do not print the resulting diff")
}

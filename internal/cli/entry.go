package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var entryCmd = &cobra.Command{
	Use:   "entry <version>",
	Short: "Print the entries of one release",
	Long: `Print the section of the changelog belonging to one release.

The version may be an explicit version, or one of the keywords "latest"
(most recent released version) and "unreleased".

Examples:
  chlog entry 1.2.0
  chlog entry latest
  chlog entry unreleased`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, _, err := newChangelogFile()
		if err != nil {
			return err
		}
		block, err := f.Show(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), block)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(entryCmd)
}

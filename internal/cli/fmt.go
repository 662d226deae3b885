package cli

import (
	"github.com/spf13/cobra"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Rewrite the changelog in canonical form",
	Long: `Rewrite the changelog in canonical form.

Formatting normalizes spacing, prunes empty category sections, and
regenerates the version comparison links. The user-authored preamble
above the first release is preserved verbatim.

Example:
  chlog fmt`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, _, err := newChangelogFile()
		if err != nil {
			return err
		}
		f.Out = cmd.OutOrStdout()
		return f.Format()
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:          "version",
	Short:        "Query the versions recorded in the changelog",
	SilenceUsage: true,
}

var versionLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Print the most recent released version",
	Long: `Print the most recent released version.

Example:
  chlog version latest`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, _, err := newChangelogFile()
		if err != nil {
			return err
		}
		latest, err := f.LatestVersion()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), latest)
		return nil
	},
}

var versionListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all released versions, newest first",
	Long: `Print all released versions, one per line, newest first.
The Unreleased section is not listed.

Example:
  chlog version list`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, _, err := newChangelogFile()
		if err != nil {
			return err
		}
		versions, err := f.Versions()
		if err != nil {
			return err
		}
		for _, v := range versions {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}
		return nil
	},
}

var versionRangeCmd = &cobra.Command{
	Use:   "range [version]",
	Short: "Print the git revision range a version covers",
	Long: `Print the git revision range covering a version, in a form usable
with git log. Without an argument the range covers the commits since
the latest release.

Examples:
  chlog version range           # v1.2.0..HEAD
  chlog version range 1.2.0     # v1.1.0..v1.2.0`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, _, err := newChangelogFile()
		if err != nil {
			return err
		}
		version := ""
		if len(args) == 1 {
			version = args[0]
		}
		r, err := f.Range(version)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), r)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.AddCommand(versionLatestCmd)
	versionCmd.AddCommand(versionListCmd)
	versionCmd.AddCommand(versionRangeCmd)
}

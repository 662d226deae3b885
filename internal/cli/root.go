// Package cli wires the chlog commands together.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chlog/internal/changelog"
	"github.com/ariel-frischer/chlog/internal/config"
	"github.com/ariel-frischer/chlog/internal/errors"
	"github.com/ariel-frischer/chlog/internal/git"
	"github.com/ariel-frischer/chlog/internal/version"
)

var (
	configFlag string
	fileFlag   string
	debugFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "chlog",
	Short: "Maintain a Keep a Changelog style CHANGELOG.md",
	Long: `chlog maintains a CHANGELOG.md following the Keep a Changelog convention.

Entries accumulate under an Unreleased section and are promoted into
versioned releases. Every command rewrites the file in canonical form,
including the version comparison links at the bottom.`,
	Example: `  chlog init
  chlog add "Support config profiles"
  chlog add -t fixed "Handle empty input"
  chlog release minor
  chlog review`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugFlag {
			git.SetDebugLogger(func(format string, args ...any) {
				fmt.Fprintf(cmd.ErrOrStderr(), "[DEBUG] "+format+"\n", args...)
			})
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (default .chlog.yml)")
	rootCmd.PersistentFlags().StringVarP(&fileFlag, "file", "F", "", "Path to the changelog file (default CHANGELOG.md)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug output")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"chlog {{.Version}} (commit %s, built %s)\n", version.Commit, version.BuildDate))
}

// Execute runs the root command and prints any resulting error in the
// standard format.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}
	if cliErr := errors.AsCLIError(err); cliErr != nil {
		errors.PrintError(cliErr)
	} else {
		errors.PrintSimpleError(err, errors.Runtime)
	}
	return err
}

// newChangelogFile builds the File every command operates on, applying the
// config file, environment, and flag precedence.
func newChangelogFile() (*changelog.File, *config.Configuration, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, nil, err
	}

	path := cfg.Path
	if fileFlag != "" {
		path = fileFlag
	}
	return changelog.NewFile(path, resolveRemote(cfg)), cfg, nil
}

// resolveRemote decides the link target once per invocation: the config
// override wins, then the origin remote of the enclosing repository. No
// remote means links are omitted.
func resolveRemote(cfg *config.Configuration) *changelog.Remote {
	if cfg.Remote.IsSet() {
		return &changelog.Remote{Owner: cfg.Remote.Owner, Repo: cfg.Remote.Repo}
	}
	if owner, repo, ok := git.InferRemote("."); ok {
		return &changelog.Remote{Owner: owner, Repo: repo}
	}
	return nil
}

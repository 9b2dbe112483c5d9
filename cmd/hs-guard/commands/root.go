package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// projectRoot is the global --project-root override shared by all
// subcommands. Empty means the current working directory.
var projectRoot string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hs-guard",
	Short: "Happy Stacks lifecycle policy guards",
	Long: `hs-guard decides whether a Happy Stacks task may be started or
finished. Tasks are markdown documents with structured front-matter
declaring a parent → track → component hierarchy, a named stack, and
worktree-isolated component directories; the guards check all of it
against the documents and the environment and fail closed with exact
remediation commands.

Wired as a lifecycle hook it reads the hook payload from stdin; invoked
directly it takes a task id.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&projectRoot, "project-root", "", "Project root containing the tasks directory (default: current directory)")
}

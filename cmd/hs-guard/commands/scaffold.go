package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edisonhq/happy-stacks/internal/config"
	"github.com/edisonhq/happy-stacks/internal/printer"
	"github.com/edisonhq/happy-stacks/internal/scaffold"
	"github.com/edisonhq/happy-stacks/pkg/frontmatter"
)

var (
	scaffoldParent     string
	scaffoldStack      string
	scaffoldTrack      string
	scaffoldComponents []string
	scaffoldComponent  string
	scaffoldBaseTask   string
)

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Create task documents that satisfy the guards",
	Long: `Create a parent, track, or component task document with its
front-matter pre-filled to pass the lifecycle guards: hierarchy
relationships, stack membership, base-task linkage, and the
edison/<task-id> base worktree convention.

Examples:
  hs-guard scaffold parent "Payments revamp"
  hs-guard scaffold track "Checkout track" --parent payments-revamp-1a2b3c4d \
    --stack s1 --track checkout --components api,web
  hs-guard scaffold component "API handler" --parent checkout-track-5e6f7a8b \
    --component api`,
}

var scaffoldParentCmd = &cobra.Command{
	Use:   "parent TITLE",
	Short: "Create a parent (umbrella) task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScaffold(frontmatter.KindParent, args[0])
	},
}

var scaffoldTrackCmd = &cobra.Command{
	Use:   "track TITLE",
	Short: "Create a track task under a parent task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScaffold(frontmatter.KindTrack, args[0])
	},
}

var scaffoldComponentCmd = &cobra.Command{
	Use:   "component TITLE",
	Short: "Create a component task under a track task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScaffold(frontmatter.KindComponent, args[0])
	},
}

func init() {
	scaffoldCmd.PersistentFlags().StringVar(&scaffoldParent, "parent", "", "Parent task id (required for track and component)")
	scaffoldCmd.PersistentFlags().StringVar(&scaffoldStack, "stack", "", "Stack name (component inherits from its track when omitted)")
	scaffoldCmd.PersistentFlags().StringVar(&scaffoldBaseTask, "base", "", "Base task id (inherited from the parent when omitted)")
	scaffoldTrackCmd.Flags().StringVar(&scaffoldTrack, "track", "", "Track name")
	scaffoldTrackCmd.Flags().StringSliceVar(&scaffoldComponents, "components", nil, "Component names the track integrates")
	scaffoldComponentCmd.Flags().StringVar(&scaffoldComponent, "component", "", "Component this task implements")

	scaffoldCmd.AddCommand(scaffoldParentCmd)
	scaffoldCmd.AddCommand(scaffoldTrackCmd)
	scaffoldCmd.AddCommand(scaffoldComponentCmd)
	rootCmd.AddCommand(scaffoldCmd)
}

func runScaffold(kind frontmatter.Kind, title string) error {
	cfg, err := config.Load(projectRoot)
	if err != nil {
		return printer.Error(
			"invalid project configuration",
			err.Error(),
			[]string{fmt.Sprintf("Check %s at the project root", config.FileName)},
		)
	}

	stack := scaffoldStack
	if stack == "" && kind == frontmatter.KindTrack {
		stack = cfg.DefaultStack
	}

	result, err := scaffold.Create(scaffold.Options{
		Root:       projectRoot,
		TasksDir:   cfg.TasksDir,
		Kind:       kind,
		Title:      title,
		Parent:     scaffoldParent,
		Stack:      stack,
		Track:      scaffoldTrack,
		Components: scaffoldComponents,
		Component:  scaffoldComponent,
		BaseTask:   scaffoldBaseTask,
	})
	if err != nil {
		return printer.Error("scaffold failed", err.Error(), nil)
	}

	printer.Success("created %s task %s\n", kind, result.ID)
	printer.Info("  %s\n", result.Path)
	if kind == frontmatter.KindComponent {
		printer.Step("next: hs component worktree add %s\n", scaffoldComponent)
	}
	return nil
}

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/edisonhq/happy-stacks/internal/config"
	"github.com/edisonhq/happy-stacks/internal/guard"
	"github.com/edisonhq/happy-stacks/internal/printer"
)

var checkStdin bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Evaluate the start/finish policy for a task",
	Long: `Evaluate the Happy Stacks lifecycle policy for a task.

The task is named either by a TASK_ID argument or, with --stdin, by a
JSON hook payload carrying task_id / entity_id / task.id (and
optionally project_root). Exit status is 0 when the transition is
allowed and 1 otherwise; violations print a diagnosis with the exact
commands that fix them.

Examples:
  # May this task be started?
  hs-guard check start fix-login-4f3a91c2

  # As a tracker hook, reading the payload from stdin
  hs-guard check finish --stdin < payload.json`,
}

var checkStartCmd = &cobra.Command{
	Use:   "start [TASK_ID]",
	Short: "Check whether a task may transition to started",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(args, "start")
	},
}

var checkFinishCmd = &cobra.Command{
	Use:   "finish [TASK_ID]",
	Short: "Check whether a task may transition to finished",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(args, "finish")
	},
}

func init() {
	checkCmd.PersistentFlags().BoolVar(&checkStdin, "stdin", false, "Read a JSON hook payload from stdin as the call context")
	checkCmd.AddCommand(checkStartCmd)
	checkCmd.AddCommand(checkFinishCmd)
	rootCmd.AddCommand(checkCmd)
}

func runCheck(args []string, action string) error {
	cc, err := buildCallContext(args, checkStdin, os.Stdin)
	if err != nil {
		return printer.Error(
			"invalid call context",
			err.Error(),
			[]string{"Pass a TASK_ID argument, or --stdin with a JSON hook payload"},
		)
	}

	g, err := newGuard(cc)
	if err != nil {
		return err
	}

	var ok bool
	if action == "start" {
		ok, err = g.CheckStart(cc)
	} else {
		ok, err = g.CheckFinish(cc)
	}

	if err != nil {
		return printer.Violation(err)
	}
	if !ok {
		printer.Warning("%s blocked by the base lifecycle rules (no Happy Stacks violation)\n", action)
		return fmt.Errorf("%s refused", action)
	}

	printer.Success("task may %s\n", action)
	return nil
}

// buildCallContext assembles the guard call context from CLI inputs.
// With useStdin set, the payload is decoded as-is and CLI flags only
// fill gaps; otherwise the context is built from the arguments.
func buildCallContext(args []string, useStdin bool, stdin io.Reader) (guard.CallContext, error) {
	cc := guard.CallContext{}

	if useStdin {
		if err := json.NewDecoder(stdin).Decode(&cc); err != nil {
			return nil, fmt.Errorf("cannot decode hook payload: %w", err)
		}
		if cc == nil {
			cc = guard.CallContext{}
		}
	}

	if len(args) > 0 {
		cc["task_id"] = args[0]
	}
	if projectRoot != "" {
		cc["project_root"] = projectRoot
	}

	if cc.TaskID() == "" {
		return nil, fmt.Errorf("no task id in the call context")
	}
	return cc, nil
}

// newGuard builds a Guard honoring the project configuration at
// whichever root the call context resolves to.
func newGuard(cc guard.CallContext) (*guard.Guard, error) {
	root := cc.ProjectRoot()

	cfg, err := config.Load(root)
	if err != nil {
		return nil, printer.Error(
			"invalid project configuration",
			err.Error(),
			[]string{fmt.Sprintf("Check %s at the project root", config.FileName)},
		)
	}

	return guard.New(guard.Options{
		Root:     root,
		TasksDir: cfg.TasksDir,
	}), nil
}

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/edisonhq/happy-stacks/internal/config"
	"github.com/edisonhq/happy-stacks/internal/inspect"
	"github.com/edisonhq/happy-stacks/internal/printer"
	"github.com/edisonhq/happy-stacks/internal/taskrepo"
	"github.com/edisonhq/happy-stacks/pkg/frontmatter"
)

var showOutputFormat string

var showCmd = &cobra.Command{
	Use:   "show TASK_ID",
	Short: "Show a task's guard-relevant metadata",
	Long: `Show the front-matter fields the guards consume for one task,
plus how each declared component resolves in the current environment.

Output Formats:
  default - Human-readable field table
  json    - Pretty-printed JSON object

Examples:
  hs-guard show fix-login-4f3a91c2
  hs-guard show fix-login --output=json | jq .components`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVarP(&showOutputFormat, "output", "o", "default", "Output format: default or json")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if showOutputFormat != "default" && showOutputFormat != "json" {
		return printer.Error(
			"invalid output format",
			fmt.Sprintf("Unknown format: %s", showOutputFormat),
			[]string{"Valid formats: default, json"},
		)
	}

	cfg, err := config.Load(projectRoot)
	if err != nil {
		return printer.Error(
			"invalid project configuration",
			err.Error(),
			[]string{fmt.Sprintf("Check %s at the project root", config.FileName)},
		)
	}

	repo := taskrepo.NewWithTasksDir(projectRoot, cfg.TasksDir)
	task, err := repo.Get(args[0])
	if err != nil {
		return printer.Error("cannot resolve task", err.Error(), nil)
	}
	if task == nil {
		return printer.Error(
			"task not found",
			fmt.Sprintf("No document matches '%s' under %s", args[0], repo.TasksPath()),
			[]string{"Use the full task id, or a unique prefix of at least 4 characters"},
		)
	}

	data, err := os.ReadFile(task.Path)
	if err != nil {
		return printer.Error("cannot read task document", err.Error(), nil)
	}
	doc, err := frontmatter.Parse(string(data))
	if err != nil {
		return printer.Error(
			"cannot parse task frontmatter",
			err.Error(),
			[]string{fmt.Sprintf("Verify %s opens with a --- delimited frontmatter block", task.Path)},
		)
	}

	report := inspect.BuildReport(task.ID, task.Path, doc.Frontmatter.Meta())
	if showOutputFormat == "json" {
		return inspect.FormatJSON(os.Stdout, report)
	}
	inspect.FormatTable(os.Stdout, report)
	return nil
}

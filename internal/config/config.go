package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up at the project
// root.
const FileName = ".happy-stacks.yml"

// Config represents the optional .happy-stacks.yml project
// configuration. Everything has a working default: a project with no
// config file uses the conventional layout.
type Config struct {
	Version      string `yaml:"version"`
	TasksDir     string `yaml:"tasks_dir,omitempty"`     // Directory of task documents, relative to the project root (default: tasks)
	DefaultStack string `yaml:"default_stack,omitempty"` // Stack suggested by scaffolding when none is given
	WorktreesDir string `yaml:"worktrees_dir,omitempty"` // Where component worktrees are checked out (default: components/.worktrees)
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Version:      "1.0",
		TasksDir:     "tasks",
		WorktreesDir: "components/.worktrees",
	}
}

// Validate performs strict validation on the configuration and applies
// defaults for omitted fields.
func (c *Config) Validate() error {
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	if c.TasksDir == "" {
		c.TasksDir = "tasks"
	}
	if err := validateRelativeDir("tasks_dir", c.TasksDir); err != nil {
		return err
	}

	if c.WorktreesDir == "" {
		c.WorktreesDir = "components/.worktrees"
	}
	if err := validateRelativeDir("worktrees_dir", c.WorktreesDir); err != nil {
		return err
	}

	return nil
}

// validateRelativeDir rejects absolute paths and parent-directory
// escapes in configured directories.
func validateRelativeDir(field, dir string) error {
	if filepath.IsAbs(dir) {
		return fmt.Errorf("%s must be relative to the project root, got absolute path: %s", field, dir)
	}
	for _, part := range strings.Split(filepath.ToSlash(dir), "/") {
		if part == ".." {
			return fmt.Errorf("%s must not escape the project root: %s", field, dir)
		}
	}
	return nil
}

// Load reads and validates .happy-stacks.yml from the given project
// root. A missing file is not an error: defaults apply.
func Load(root string) (*Config, error) {
	if root == "" {
		root = "."
	}

	data, err := os.ReadFile(filepath.Join(root, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

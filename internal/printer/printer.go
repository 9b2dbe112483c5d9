package printer

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/edisonhq/happy-stacks/internal/guard"
)

func init() {
	// Force color output even when not connected to TTY
	// Users can disable with NO_COLOR environment variable
	if os.Getenv("NO_COLOR") == "" {
		color.NoColor = false
	}
}

var (
	// Color definitions
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
)

// Success prints a success message in green with a checkmark prefix
func Success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		green.Printf("✓ %s", msg)
	} else {
		green.Print(msg)
	}
}

// Info prints an informational message in the default color
func Info(format string, a ...any) {
	fmt.Printf(format, a...)
}

// Warning prints a warning message in yellow with a warning emoji prefix
func Warning(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "⚠️") {
		yellow.Printf("⚠️  %s", msg)
	} else {
		yellow.Print(msg)
	}
}

// Step prints a step message with emphasis (used in multi-step operations)
func Step(format string, a ...any) {
	cyan.Printf("→ %s", fmt.Sprintf(format, a...))
}

// Println prints a plain message (for output that doesn't need coloring)
func Println(a ...any) {
	fmt.Println(a...)
}

// Violation renders a guard validation error to stderr: the diagnosis
// in red, context lines indented, then the Fix block with its literal
// commands. Returns a short error for Cobra (won't be printed due to
// SilenceErrors).
func Violation(err error) error {
	var ve *guard.ValidationError
	if !errors.As(err, &ve) {
		red.Fprintf(os.Stderr, "%v\n", err)
		return err
	}

	red.Fprintf(os.Stderr, "%s\n", ve.Reason)

	if len(ve.Context) > 0 {
		fmt.Fprintf(os.Stderr, "\n")
		for _, line := range ve.Context {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", line.Key, line.Value)
		}
	}

	if len(ve.Fixes) > 0 {
		fmt.Fprintf(os.Stderr, "\nFix:\n")
		for _, fix := range ve.Fixes {
			fmt.Fprintf(os.Stderr, "  %s\n", fix)
		}
	}

	return fmt.Errorf("%s", ve.Reason)
}

// Error creates a formatted error message with title, explanation, and suggestions
// Prints the formatted error to stderr with colors and returns a simple error for Cobra
func Error(title string, explanation string, suggestions []string) error {
	red.Fprintf(os.Stderr, "%s\n\n", title)

	if explanation != "" {
		fmt.Fprintf(os.Stderr, "%s\n", explanation)
	}

	if len(suggestions) > 0 {
		fmt.Fprintf(os.Stderr, "\n")
		if len(suggestions) == 1 {
			fmt.Fprintf(os.Stderr, "%s\n", suggestions[0])
		} else {
			fmt.Fprintf(os.Stderr, "Either:\n")
			for i, suggestion := range suggestions {
				fmt.Fprintf(os.Stderr, "  %d. %s\n", i+1, suggestion)
			}
		}
	}

	return fmt.Errorf("%s", title)
}

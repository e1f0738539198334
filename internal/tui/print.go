// Package tui renders git-conventional's terminal output: styled
// messages, lint results, the compose wizard, and progress display.
package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/EmundoT/git-conventional/internal/types"
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	styleErr     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// IsInteractive reports whether stdout is a terminal.
func IsInteractive() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// PrintError displays an error message to stderr.
func PrintError(title, message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", styleErr.Render("✗ "+title+":"), message)
}

// PrintSuccess displays a success message.
func PrintSuccess(message string) {
	fmt.Println(styleSuccess.Render("✓ " + message))
}

// PrintWarning displays a warning message to stderr.
func PrintWarning(title, message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", styleWarn.Render("! "+title+":"), message)
}

// PrintLintResult renders the outcome of linting one message.
func PrintLintResult(source string, result types.LintResult) {
	if result.OK() {
		PrintSuccess(source + " is a valid conventional commit")
		return
	}
	fmt.Fprintf(os.Stderr, "%s\n", styleErr.Render("✗ "+source))
	for _, v := range result.Violations {
		fmt.Fprintf(os.Stderr, "  %s %s\n", styleDim.Render(v.Code), v.Message)
	}
}

// PrintHistoryReport renders a history lint report summary with one line
// per failing commit.
func PrintHistoryReport(report types.HistoryReport) {
	for _, entry := range report.Entries {
		if len(entry.Violations) == 0 {
			continue
		}
		fmt.Printf("%s %s\n", styleErr.Render("✗ "+entry.Short), entry.Subject)
		for _, v := range entry.Violations {
			fmt.Printf("  %s %s\n", styleDim.Render(v.Code), v.Message)
		}
	}

	summary := fmt.Sprintf("%d commits checked, %d passed, %d failed", report.Total, report.Passed, report.Failed)
	if report.Failed == 0 {
		PrintSuccess(summary)
	} else {
		fmt.Println(styleErr.Render("✗ " + summary))
	}
}

// PrintHelp displays usage information.
func PrintHelp() {
	fmt.Println(styleTitle.Render("git-conventional") + " — parse and lint Conventional Commit messages")
	fmt.Println()
	fmt.Println("Usage: git-conventional <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  check [message]     Lint a message (or -F <file>, or stdin with -)")
	fmt.Println("  init                Write a default .commitlint.yml")
	fmt.Println("  history [range]     Lint commits in a revision range (default: HEAD history)")
	fmt.Println("  compose             Interactively build a conventional commit message")
	fmt.Println("  hook install        Install the commit-msg hook")
	fmt.Println("  hook uninstall      Remove the commit-msg hook")
	fmt.Println("  watch               Re-lint COMMIT_EDITMSG as it changes")
	fmt.Println("  completion <shell>  Generate shell completion (bash, zsh, fish, powershell)")
	fmt.Println("  help                Show this help")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -F, --file <path>   Read the message from a file")
	fmt.Println("      --json          Machine-readable JSON output")
	fmt.Println("  -q, --quiet         Suppress non-error output")
	fmt.Println("      --max <n>       Limit history to n commits")
	fmt.Println("      --version       Print version information")
}

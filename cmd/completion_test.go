package cmd

import (
	"fmt"
	"strings"
	"testing"
)

func TestGenerateBashCompletion(t *testing.T) {
	script := GenerateBashCompletion()

	// Verify bash header
	if !strings.Contains(script, "# bash completion for git-conventional") {
		t.Error("Expected bash completion header")
	}

	// Verify function name
	if !strings.Contains(script, "_git_conventional_completions()") {
		t.Error("Expected bash completion function")
	}

	// Verify complete command
	if !strings.Contains(script, "complete -F _git_conventional_completions git-conventional") {
		t.Error("Expected bash complete registration")
	}

	// Verify all commands are included
	for _, cmd := range commands {
		if !strings.Contains(script, cmd) {
			t.Errorf("Expected command '%s' in bash completion", cmd)
		}
	}

	// Verify check flags
	if !strings.Contains(script, "--file") {
		t.Error("Expected --file flag for check command")
	}
	if !strings.Contains(script, "--json") {
		t.Error("Expected --json flag for check command")
	}

	// Verify hook actions
	if !strings.Contains(script, "install uninstall") {
		t.Error("Expected hook actions")
	}

	// Verify completion shells
	if !strings.Contains(script, "bash zsh fish powershell") {
		t.Error("Expected completion shell options")
	}
}

func TestGenerateZshCompletion(t *testing.T) {
	script := GenerateZshCompletion()

	// Verify zsh header
	if !strings.Contains(script, "#compdef git-conventional") {
		t.Error("Expected zsh compdef header")
	}

	// Verify function name
	if !strings.Contains(script, "_git_conventional()") {
		t.Error("Expected zsh completion function")
	}

	// Verify _describe command
	if !strings.Contains(script, "_describe 'command' commands") {
		t.Error("Expected zsh _describe command")
	}

	// Verify all commands with descriptions are included
	for _, cmd := range commands {
		desc := getCommandDescription(cmd)
		if desc == "" {
			continue
		}
		expected := cmd + ":" + desc
		if !strings.Contains(script, expected) {
			t.Errorf("Expected command '%s' with description '%s' in zsh completion", cmd, desc)
		}
	}

	// Verify check command flags
	if !strings.Contains(script, "-F[Read message from file]") {
		t.Error("Expected -F flag with description")
	}
	if !strings.Contains(script, "--json[JSON output]") {
		t.Error("Expected --json flag with description")
	}

	// Verify history command flags
	if !strings.Contains(script, "--max[Limit commit count]") {
		t.Error("Expected --max flag with description")
	}

	// Verify hook actions
	if !strings.Contains(script, "1:action:(install uninstall)") {
		t.Error("Expected hook action options")
	}

	// Verify completion shell options
	if !strings.Contains(script, "1:shell:(bash zsh fish powershell)") {
		t.Error("Expected completion shell options")
	}
}

func TestGenerateFishCompletion(t *testing.T) {
	script := GenerateFishCompletion()

	// Verify fish completion syntax
	if !strings.Contains(script, "complete -c git-conventional") {
		t.Error("Expected fish completion syntax")
	}

	// Verify subcommand check
	if !strings.Contains(script, "__fish_use_subcommand") {
		t.Error("Expected fish subcommand check")
	}

	// Verify all commands with descriptions are included
	for _, cmd := range commands {
		desc := getCommandDescription(cmd)
		if desc == "" {
			continue
		}
		if !strings.Contains(script, fmt.Sprintf("-a '%s'", cmd)) {
			t.Errorf("Expected command '%s' in fish completion", cmd)
		}
		if !strings.Contains(script, desc) {
			t.Errorf("Expected description '%s' in fish completion", desc)
		}
	}

	// Verify check command flags
	if !strings.Contains(script, "__fish_seen_subcommand_from check") {
		t.Error("Expected check subcommand check")
	}
	if !strings.Contains(script, "-s F -l file -d 'Read message from file'") {
		t.Error("Expected -F/--file flag with description")
	}

	// Verify history command flags
	if !strings.Contains(script, "__fish_seen_subcommand_from history") {
		t.Error("Expected history subcommand check")
	}
	if !strings.Contains(script, "-l max -d 'Limit commit count'") {
		t.Error("Expected --max flag with description")
	}

	// Verify hook actions and completion shells
	if !strings.Contains(script, "-a 'install uninstall'") {
		t.Error("Expected hook action options")
	}
	if !strings.Contains(script, "-a 'bash zsh fish powershell'") {
		t.Error("Expected completion shell options")
	}
}

func TestGeneratePowerShellCompletion(t *testing.T) {
	script := GeneratePowerShellCompletion()

	// Verify PowerShell header
	if !strings.Contains(script, "# PowerShell completion for git-conventional") {
		t.Error("Expected PowerShell completion header")
	}

	// Verify Register-ArgumentCompleter
	if !strings.Contains(script, "Register-ArgumentCompleter -Native -CommandName git-conventional") {
		t.Error("Expected PowerShell argument completer registration")
	}

	// Verify script block
	if !strings.Contains(script, "ScriptBlock") {
		t.Error("Expected PowerShell script block")
	}

	// Verify all commands are included
	for _, cmd := range commands {
		expected := fmt.Sprintf("'%s'", cmd)
		if !strings.Contains(script, expected) {
			t.Errorf("Expected command '%s' in PowerShell completion", cmd)
		}
	}

	// Verify check command flags
	if !strings.Contains(script, "'--file'") {
		t.Error("Expected --file flag")
	}
	if !strings.Contains(script, "'--json'") {
		t.Error("Expected --json flag")
	}

	// Verify hook actions and completion shells
	if !strings.Contains(script, "'install', 'uninstall'") {
		t.Error("Expected hook action options")
	}
	if !strings.Contains(script, "'bash', 'zsh', 'fish', 'powershell'") {
		t.Error("Expected completion shell options")
	}

	// Verify CompletionResult syntax
	if !strings.Contains(script, "CompletionResult") {
		t.Error("Expected PowerShell CompletionResult")
	}
}

func TestGetCommandDescription(t *testing.T) {
	tests := []struct {
		command     string
		expectDesc  bool
		description string
	}{
		{"check", true, "Lint a commit message"},
		{"init", true, "Write a default .commitlint.yml"},
		{"history", true, "Lint commits in a revision range"},
		{"compose", true, "Interactively build a commit message"},
		{"hook", true, "Install or remove the commit-msg hook"},
		{"watch", true, "Re-lint COMMIT_EDITMSG as it changes"},
		{"completion", true, "Generate shell completion scripts"},
		{"help", true, "Show help"},
		{"nonexistent", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			result := getCommandDescription(tt.command)
			if tt.expectDesc {
				if result != tt.description {
					t.Errorf("Expected description '%s', got '%s'", tt.description, result)
				}
			} else {
				if result != "" {
					t.Errorf("Expected empty description for unknown command, got '%s'", result)
				}
			}
		})
	}
}

func TestAllCommandsHaveDescriptions(t *testing.T) {
	// Verify all commands have descriptions
	for _, cmd := range commands {
		desc := getCommandDescription(cmd)
		if desc == "" {
			t.Errorf("Command '%s' is missing a description", cmd)
		}
	}
}

func TestGenerateCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		script, ok := GenerateCompletion(shell)
		if !ok {
			t.Errorf("Expected %s to be supported", shell)
		}
		if script == "" {
			t.Errorf("Expected non-empty %s completion script", shell)
		}
	}

	if _, ok := GenerateCompletion("tcsh"); ok {
		t.Error("Expected tcsh to be unsupported")
	}
}

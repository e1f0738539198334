// Package cmd provides CLI utilities for git-conventional
package cmd

import (
	"fmt"
	"strings"
)

// Commands available in git-conventional
var commands = []string{
	"check",
	"init",
	"history",
	"compose",
	"hook",
	"watch",
	"completion",
	"help",
}

// getCommandDescription returns a human-readable description for a command
func getCommandDescription(cmd string) string {
	switch cmd {
	case "check":
		return "Lint a commit message"
	case "init":
		return "Write a default .commitlint.yml"
	case "history":
		return "Lint commits in a revision range"
	case "compose":
		return "Interactively build a commit message"
	case "hook":
		return "Install or remove the commit-msg hook"
	case "watch":
		return "Re-lint COMMIT_EDITMSG as it changes"
	case "completion":
		return "Generate shell completion scripts"
	case "help":
		return "Show help"
	default:
		return ""
	}
}

// GenerateBashCompletion generates bash completion script
func GenerateBashCompletion() string {
	return fmt.Sprintf(`# bash completion for git-conventional
_git_conventional_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Commands
    opts="%s"

    # Command-specific options
    case "${prev}" in
        check)
            opts="-F --file --json --quiet -q"
            ;;
        history)
            opts="--max --json --quiet -q"
            ;;
        compose)
            opts="--commit"
            ;;
        hook)
            opts="install uninstall"
            ;;
        completion)
            opts="bash zsh fish powershell"
            ;;
        init|watch)
            opts=""
            ;;
    esac

    COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
    return 0
}

complete -F _git_conventional_completions git-conventional
`, strings.Join(commands, " "))
}

// GenerateZshCompletion generates zsh completion script
func GenerateZshCompletion() string {
	cmdList := make([]string, len(commands))
	for i, cmd := range commands {
		desc := getCommandDescription(cmd)
		cmdList[i] = fmt.Sprintf("    '%s:%s'", cmd, desc)
	}

	return fmt.Sprintf(`#compdef git-conventional

_git_conventional() {
    local -a commands
    commands=(
%s
    )

    _arguments -C \
        '1: :->command' \
        '*::arg:->args'

    case $state in
        command)
            _describe 'command' commands
            ;;
        args)
            case $words[1] in
                check)
                    _arguments \
                        '-F[Read message from file]:file:_files' \
                        '--file[Read message from file]:file:_files' \
                        '--json[JSON output]' \
                        '--quiet[Minimal output]' \
                        '-q[Minimal output]'
                    ;;
                history)
                    _arguments \
                        '--max[Limit commit count]:count:' \
                        '--json[JSON output]' \
                        '--quiet[Minimal output]' \
                        '-q[Minimal output]'
                    ;;
                compose)
                    _arguments '--commit[Commit with the composed message]'
                    ;;
                hook)
                    _arguments '1:action:(install uninstall)'
                    ;;
                completion)
                    _arguments '1:shell:(bash zsh fish powershell)'
                    ;;
            esac
            ;;
    esac
}

_git_conventional "$@"
`, strings.Join(cmdList, "\n"))
}

// GenerateFishCompletion generates fish completion script
func GenerateFishCompletion() string {
	var completions []string

	// Add command completions
	for _, cmd := range commands {
		desc := getCommandDescription(cmd)
		completions = append(completions, fmt.Sprintf("complete -c git-conventional -f -n '__fish_use_subcommand' -a '%s' -d '%s'", cmd, desc))
	}

	// Add flag completions
	completions = append(completions, "# check command flags")
	completions = append(completions, "complete -c git-conventional -n '__fish_seen_subcommand_from check' -s F -l file -d 'Read message from file' -r")
	completions = append(completions, "complete -c git-conventional -n '__fish_seen_subcommand_from check' -l json -d 'JSON output'")
	completions = append(completions, "complete -c git-conventional -n '__fish_seen_subcommand_from check' -l quiet -s q -d 'Minimal output'")

	completions = append(completions, "# history command flags")
	completions = append(completions, "complete -c git-conventional -n '__fish_seen_subcommand_from history' -l max -d 'Limit commit count' -r")
	completions = append(completions, "complete -c git-conventional -n '__fish_seen_subcommand_from history' -l json -d 'JSON output'")
	completions = append(completions, "complete -c git-conventional -n '__fish_seen_subcommand_from history' -l quiet -s q -d 'Minimal output'")

	completions = append(completions, "# compose command flags")
	completions = append(completions, "complete -c git-conventional -n '__fish_seen_subcommand_from compose' -l commit -d 'Commit with the composed message'")

	completions = append(completions, "# hook command actions")
	completions = append(completions, "complete -c git-conventional -n '__fish_seen_subcommand_from hook' -f -a 'install uninstall'")

	completions = append(completions, "# completion command shells")
	completions = append(completions, "complete -c git-conventional -n '__fish_seen_subcommand_from completion' -f -a 'bash zsh fish powershell'")

	return strings.Join(completions, "\n")
}

// GeneratePowerShellCompletion generates PowerShell completion script
func GeneratePowerShellCompletion() string {
	cmdArray := make([]string, len(commands))
	for i, cmd := range commands {
		cmdArray[i] = fmt.Sprintf("'%s'", cmd)
	}

	return fmt.Sprintf(`# PowerShell completion for git-conventional
Register-ArgumentCompleter -Native -CommandName git-conventional -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $commands = @(%s)

    $line = $commandAst.ToString()
    $tokens = $line.Split(' ')

    if ($tokens.Count -eq 2) {
        # Complete command
        $commands | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
        }
    }
    elseif ($tokens.Count -gt 2) {
        $subcommand = $tokens[1]

        switch ($subcommand) {
            'check' {
                @('-F', '--file', '--json', '--quiet', '-q') |
                    Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
                    }
            }
            'history' {
                @('--max', '--json', '--quiet', '-q') |
                    Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
                    }
            }
            'hook' {
                @('install', 'uninstall') |
                    Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
                    }
            }
            'completion' {
                @('bash', 'zsh', 'fish', 'powershell') |
                    Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
                    }
            }
        }
    }
}
`, strings.Join(cmdArray, ", "))
}

// GenerateCompletion returns the completion script for the given shell, or
// an error message listing supported shells.
func GenerateCompletion(shell string) (string, bool) {
	switch shell {
	case "bash":
		return GenerateBashCompletion(), true
	case "zsh":
		return GenerateZshCompletion(), true
	case "fish":
		return GenerateFishCompletion(), true
	case "powershell":
		return GeneratePowerShellCompletion(), true
	default:
		return "", false
	}
}

// Package main implements the git-conventional CLI tool for parsing and linting Conventional Commit messages.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/EmundoT/git-conventional/cmd"
	"github.com/EmundoT/git-conventional/internal/core"
	"github.com/EmundoT/git-conventional/internal/tui"
	"github.com/EmundoT/git-conventional/internal/types"
	"github.com/EmundoT/git-conventional/internal/version"
)

// Version information is managed in internal/version package
// GoReleaser injects version info directly via ldflags

// commonFlags holds output-mode flags shared across commands.
type commonFlags struct {
	JSON  bool
	Quiet bool
}

// parseCommonFlags extracts common output flags from args
// Returns: flags, remainingArgs
func parseCommonFlags(args []string) (commonFlags, []string) {
	flags := commonFlags{}
	var remaining []string

	for _, arg := range args {
		switch arg {
		case "--json":
			flags.JSON = true
		case "--quiet", "-q":
			flags.Quiet = true
		default:
			remaining = append(remaining, arg)
		}
	}

	return flags, remaining
}

// configDir locates the directory holding .commitlint.yml: the repo
// toplevel when inside a git repo, the working directory otherwise.
func configDir(ctx context.Context, git *core.ExecGitClient) string {
	if top, err := git.TopLevel(ctx); err == nil {
		return top
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}

// loadConfig reads the lint config, falling back to defaults when no file
// exists.
func loadConfig(ctx context.Context, git *core.ExecGitClient) (types.LintConfig, error) {
	return core.NewConfigStore(configDir(ctx, git)).Load()
}

// readMessage resolves the message text for the check command: an explicit
// argument, a file via -F/--file, or stdin via "-".
func readMessage(args []string) (source, message string, err error) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-F" || arg == "--file":
			if i+1 >= len(args) {
				return "", "", fmt.Errorf("%s requires a file path", arg)
			}
			path := args[i+1]
			data, err := os.ReadFile(path)
			if err != nil {
				return "", "", fmt.Errorf("failed to read %s: %w", path, err)
			}
			return path, string(data), nil
		case strings.HasPrefix(arg, "--file="):
			path := strings.TrimPrefix(arg, "--file=")
			data, err := os.ReadFile(path)
			if err != nil {
				return "", "", fmt.Errorf("failed to read %s: %w", path, err)
			}
			return path, string(data), nil
		case arg == "-":
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return "", "", fmt.Errorf("failed to read stdin: %w", err)
			}
			return "stdin", string(data), nil
		case !strings.HasPrefix(arg, "-"):
			return "message", arg, nil
		}
	}
	return "", "", errors.New("no message given; pass a message, -F <file>, or - for stdin")
}

// exitOnRepoError maps service errors to exit codes and prints them.
func exitOnRepoError(flags commonFlags, err error) {
	if errors.Is(err, core.ErrNotGitRepo) {
		if flags.JSON {
			os.Exit(core.EmitCLIError(core.ErrCodeNotGitRepo, err.Error(), core.ExitNotGitRepo))
		}
		tui.PrintError("Not a Git Repository", err.Error())
		os.Exit(core.ExitNotGitRepo)
	}
	if flags.JSON {
		os.Exit(core.EmitCLIError(core.ErrCodeInternalError, err.Error(), core.ExitGeneralError))
	}
	tui.PrintError("Error", err.Error())
	os.Exit(core.ExitGeneralError)
}

func main() {
	if len(os.Args) < 2 {
		tui.PrintHelp()
		os.Exit(core.ExitSuccess)
	}

	command := os.Args[1]

	// Handle help flags
	if command == "--help" || command == "-h" || command == "help" {
		tui.PrintHelp()
		os.Exit(core.ExitSuccess)
	}

	// Handle version flag
	if command == "--version" {
		fmt.Printf("git-conventional %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
		os.Exit(core.ExitSuccess)
	}

	ctx := context.Background()
	git := core.NewGitClient(".")

	switch command {
	case "check":
		flags, args := parseCommonFlags(os.Args[2:])

		source, message, err := readMessage(args)
		if err != nil {
			if flags.JSON {
				os.Exit(core.EmitCLIError(core.ErrCodeInvalidArguments, err.Error(), core.ExitInvalidArguments))
			}
			tui.PrintError("Usage", err.Error())
			os.Exit(core.ExitInvalidArguments)
		}

		cfg, err := loadConfig(ctx, git)
		if err != nil {
			if flags.JSON {
				os.Exit(core.EmitCLIError(core.ErrCodeConfigError, err.Error(), core.ExitGeneralError))
			}
			tui.PrintError("Config Error", err.Error())
			os.Exit(core.ExitGeneralError)
		}

		result := core.NewLintService(cfg).LintMessage(message)

		switch {
		case flags.JSON:
			core.EmitCLISuccess(map[string]interface{}{
				"valid":      result.OK(),
				"violations": result.Violations,
			})
		case flags.Quiet:
			// Exit code only.
		default:
			tui.PrintLintResult(source, result)
		}

		if !result.OK() {
			os.Exit(core.ExitValidationFailed)
		}

	case "init":
		flags, _ := parseCommonFlags(os.Args[2:])

		store := core.NewConfigStore(configDir(ctx, git))
		if err := store.Init(); err != nil {
			if errors.Is(err, core.ErrConfigExists) {
				if flags.JSON {
					os.Exit(core.EmitCLIError(core.ErrCodeConfigError, err.Error(), core.ExitGeneralError))
				}
				tui.PrintWarning("Already Initialized", err.Error())
				os.Exit(core.ExitGeneralError)
			}
			if flags.JSON {
				os.Exit(core.EmitCLIError(core.ErrCodeInternalError, err.Error(), core.ExitGeneralError))
			}
			tui.PrintError("Initialization Failed", err.Error())
			os.Exit(core.ExitGeneralError)
		}

		if flags.JSON {
			core.EmitCLISuccess(map[string]interface{}{"path": store.Path()})
		} else if !flags.Quiet {
			tui.PrintSuccess("Wrote " + store.Path())
		}

	case "history":
		flags, args := parseCommonFlags(os.Args[2:])

		revRange := ""
		maxCount := 0
		for i := 0; i < len(args); i++ {
			arg := args[i]
			switch {
			case arg == "--max":
				if i+1 >= len(args) {
					tui.PrintError("Invalid Flag", "--max requires a number")
					os.Exit(core.ExitInvalidArguments)
				}
				n, err := strconv.Atoi(args[i+1])
				if err != nil || n < 1 {
					tui.PrintError("Invalid Flag", fmt.Sprintf("--max requires a positive number, got: %s", args[i+1]))
					os.Exit(core.ExitInvalidArguments)
				}
				maxCount = n
				i++
			case strings.HasPrefix(arg, "--max="):
				n, err := strconv.Atoi(strings.TrimPrefix(arg, "--max="))
				if err != nil || n < 1 {
					tui.PrintError("Invalid Flag", fmt.Sprintf("--max requires a positive number, got: %s", arg))
					os.Exit(core.ExitInvalidArguments)
				}
				maxCount = n
			case !strings.HasPrefix(arg, "-"):
				revRange = arg
			}
		}

		cfg, err := loadConfig(ctx, git)
		if err != nil {
			exitOnRepoError(flags, err)
		}

		var progress core.HistoryProgress = core.NopProgress{}
		if !flags.JSON && !flags.Quiet {
			if tui.IsInteractive() {
				progress = tui.NewBubbleteaProgress("Linting history")
			} else {
				progress = tui.NewTextProgress("Linting history")
			}
		}

		service := core.NewHistoryService(git, core.NewLintService(cfg))
		report, err := service.LintRange(ctx, revRange, maxCount, progress)
		if err != nil {
			exitOnRepoError(flags, err)
		}

		switch {
		case flags.JSON:
			core.EmitCLISuccess(report)
		case flags.Quiet:
			// Exit code only.
		default:
			tui.PrintHistoryReport(report)
		}

		if report.Failed > 0 {
			os.Exit(core.ExitValidationFailed)
		}

	case "compose":
		flags, args := parseCommonFlags(os.Args[2:])

		doCommit := false
		for _, arg := range args {
			if arg == "--commit" {
				doCommit = true
			}
		}

		if !tui.IsInteractive() {
			tui.PrintError("Not Interactive", "compose requires a terminal")
			os.Exit(core.ExitGeneralError)
		}

		cfg, err := loadConfig(ctx, git)
		if err != nil {
			exitOnRepoError(flags, err)
		}

		message, err := tui.RunComposeWizard(cfg)
		if err != nil {
			tui.PrintError("Compose Failed", err.Error())
			os.Exit(core.ExitGeneralError)
		}

		if doCommit {
			if err := git.Commit(ctx, message); err != nil {
				tui.PrintError("Commit Failed", err.Error())
				os.Exit(core.ExitGeneralError)
			}
			tui.PrintSuccess("Committed: " + strings.SplitN(message, "\n", 2)[0])
		} else {
			fmt.Println(message)
		}

	case "hook":
		flags, args := parseCommonFlags(os.Args[2:])
		if len(args) < 1 {
			tui.PrintError("Usage", "git-conventional hook <install|uninstall>")
			os.Exit(core.ExitInvalidArguments)
		}

		service := core.NewHookService(git)

		switch args[0] {
		case "install":
			backup, err := service.Install(ctx)
			if err != nil {
				exitOnRepoError(flags, err)
			}
			if flags.JSON {
				core.EmitCLISuccess(map[string]interface{}{"backup": backup})
			} else if !flags.Quiet {
				tui.PrintSuccess("Installed commit-msg hook")
				if backup != "" {
					tui.PrintWarning("Existing Hook", "previous hook moved to "+backup)
				}
			}

		case "uninstall":
			if err := service.Uninstall(ctx); err != nil {
				switch {
				case errors.Is(err, core.ErrHookNotInstalled):
					tui.PrintWarning("Not Installed", err.Error())
					os.Exit(core.ExitGeneralError)
				case errors.Is(err, core.ErrHookNotOurs):
					tui.PrintError("Refusing", err.Error())
					os.Exit(core.ExitGeneralError)
				default:
					exitOnRepoError(flags, err)
				}
			}
			if flags.JSON {
				core.EmitCLISuccess(map[string]interface{}{"uninstalled": true})
			} else if !flags.Quiet {
				tui.PrintSuccess("Removed commit-msg hook")
			}

		default:
			tui.PrintError("Usage", fmt.Sprintf("'%s' is not a hook action. Use: install or uninstall", args[0]))
			os.Exit(core.ExitInvalidArguments)
		}

	case "watch":
		flags, _ := parseCommonFlags(os.Args[2:])

		cfg, err := loadConfig(ctx, git)
		if err != nil {
			exitOnRepoError(flags, err)
		}
		linter := core.NewLintService(cfg)

		if !flags.Quiet {
			fmt.Println("Watching COMMIT_EDITMSG; press Ctrl-C to stop.")
		}

		service := core.NewWatchService(git, func(path string) {
			data, err := os.ReadFile(path)
			if err != nil {
				return
			}
			tui.PrintLintResult("COMMIT_EDITMSG", linter.LintMessage(string(data)))
		})
		if err := service.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
			exitOnRepoError(flags, err)
		}

	case "completion":
		// Generate shell completion script
		if len(os.Args) < 3 {
			tui.PrintError("Usage", "git-conventional completion <shell>\nSupported shells: bash, zsh, fish, powershell")
			os.Exit(core.ExitInvalidArguments)
		}

		script, ok := cmd.GenerateCompletion(os.Args[2])
		if !ok {
			tui.PrintError("Invalid Shell", fmt.Sprintf("'%s' is not supported. Use: bash, zsh, fish, or powershell", os.Args[2]))
			os.Exit(core.ExitInvalidArguments)
		}
		fmt.Println(script)

	default:
		tui.PrintError("Unknown Command", fmt.Sprintf("'%s' is not a valid git-conventional command", command))
		fmt.Println()
		tui.PrintHelp()
		os.Exit(core.ExitInvalidArguments)
	}
}

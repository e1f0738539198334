package core

import (
	"errors"
	"strings"
)

// Sentinel errors for common error conditions.
// These can be used with errors.Is() for error type checking.
var (
	// ErrNotGitRepo indicates the working directory is not inside a git repository
	ErrNotGitRepo = errors.New("not a git repository. Run git-conventional inside a repository or pass a message directly")

	// ErrHookNotOurs indicates an existing commit-msg hook was not installed by this tool
	ErrHookNotOurs = errors.New("existing commit-msg hook was not installed by git-conventional")

	// ErrHookNotInstalled indicates there is no git-conventional commit-msg hook to remove
	ErrHookNotInstalled = errors.New("no git-conventional commit-msg hook installed")

	// ErrConfigExists indicates init found a .commitlint.yml already in place
	ErrConfigExists = errors.New("config file already exists")
)

// GitError wraps an exec error with the command that was run and stderr output.
type GitError struct {
	Args   []string // git subcommand and arguments
	Stderr string   // stderr output from git
	Err    error    // underlying exec error
}

func (e *GitError) Error() string {
	s := strings.TrimSpace(e.Stderr)
	if s != "" {
		return s
	}
	return e.Err.Error()
}

func (e *GitError) Unwrap() error {
	return e.Err
}

// IsNotRepo reports whether err indicates the directory is not a git repository.
func IsNotRepo(err error) bool {
	var gitErr *GitError
	if errors.As(err, &gitErr) {
		return strings.Contains(gitErr.Stderr, "not a git repository")
	}
	return errors.Is(err, ErrNotGitRepo)
}

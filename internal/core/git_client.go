package core

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/EmundoT/git-conventional/internal/types"
)

// GitClient is the subset of git operations the linter needs.
//
//go:generate mockgen -source=git_client.go -destination=git_client_mock_test.go -package=core
type GitClient interface {
	// Log returns commits in revRange (empty = HEAD history), newest first,
	// with full messages. maxCount limits the result when > 0.
	Log(ctx context.Context, revRange string, maxCount int) ([]types.CommitRecord, error)

	// TopLevel returns the absolute path of the working tree root.
	TopLevel(ctx context.Context) (string, error)

	// GitDir returns the absolute path of the .git directory.
	GitDir(ctx context.Context) (string, error)
}

// Compile-time interface satisfaction check.
var _ GitClient = (*ExecGitClient)(nil)

// ExecGitClient runs the git binary in a working directory.
type ExecGitClient struct {
	Dir     string // working directory
	Verbose bool   // log commands to stderr
}

// NewGitClient creates an ExecGitClient for the given directory.
func NewGitClient(dir string) *ExecGitClient {
	return &ExecGitClient{Dir: dir}
}

// IsGitInstalled returns true if the git binary is available on PATH.
func IsGitInstalled() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// run executes a git command and returns trimmed stdout.
func (g *ExecGitClient) run(ctx context.Context, args ...string) (string, error) {
	if g.Verbose {
		fmt.Fprintf(os.Stderr, "[DEBUG] git %s (in %s)\n", strings.Join(args, " "), g.Dir)
	}
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = g.Dir
	cmd.Env = sanitizedEnv()
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", &GitError{
				Args:   args,
				Stderr: string(exitErr.Stderr),
				Err:    err,
			}
		}
		return "", err
	}
	return strings.TrimRight(string(out), " \t\r\n"), nil
}

// logFormat emits hash, short hash, author and raw message per commit,
// NUL-separated fields with a record separator (\x1e) between commits so
// multi-line messages parse safely.
const logFormat = "--pretty=format:%H%x00%h%x00%an%x00%B%x1e"

// Log returns commits matching the given range.
func (g *ExecGitClient) Log(ctx context.Context, revRange string, maxCount int) ([]types.CommitRecord, error) {
	args := []string{"log", logFormat, "--no-merges"}
	if maxCount > 0 {
		args = append(args, fmt.Sprintf("-%d", maxCount))
	}
	if revRange != "" {
		args = append(args, revRange)
	}

	out, err := g.run(ctx, args...)
	if err != nil {
		return nil, err
	}
	return parseLogRecords(out), nil
}

// parseLogRecords splits raw `git log` output produced with logFormat into
// commit records.
func parseLogRecords(out string) []types.CommitRecord {
	var commits []types.CommitRecord
	for _, record := range strings.Split(out, "\x1e") {
		record = strings.TrimLeft(record, "\r\n")
		if record == "" {
			continue
		}
		fields := strings.SplitN(record, "\x00", 4)
		if len(fields) < 4 {
			continue
		}
		message := strings.TrimRight(fields[3], "\r\n")
		commits = append(commits, types.CommitRecord{
			Hash:    fields[0],
			Short:   fields[1],
			Author:  fields[2],
			Subject: summaryLine(message),
			Message: message,
		})
	}
	return commits
}

// TopLevel returns the absolute path of the working tree root.
func (g *ExecGitClient) TopLevel(ctx context.Context) (string, error) {
	return g.run(ctx, "rev-parse", "--show-toplevel")
}

// GitDir returns the absolute path of the .git directory.
func (g *ExecGitClient) GitDir(ctx context.Context) (string, error) {
	return g.run(ctx, "rev-parse", "--absolute-git-dir")
}

// Commit records staged changes with the given message.
func (g *ExecGitClient) Commit(ctx context.Context, message string) error {
	_, err := g.run(ctx, "commit", "-m", message)
	return err
}

// sanitizedEnv returns the current environment with git hook variables
// removed. When running inside a git hook (commit-msg in particular),
// GIT_DIR and GIT_INDEX_FILE point at the outer repo and override cmd.Dir,
// causing commands to target the wrong repository.
func sanitizedEnv() []string {
	var env []string
	for _, e := range os.Environ() {
		key := strings.SplitN(e, "=", 2)[0]
		switch strings.ToUpper(key) {
		case "GIT_DIR", "GIT_INDEX_FILE", "GIT_WORK_TREE", "GIT_OBJECT_DIRECTORY":
			continue
		}
		env = append(env, e)
	}
	return env
}

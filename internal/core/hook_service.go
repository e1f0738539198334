package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// hookMarker identifies hooks written by this tool; Install and Uninstall
// refuse to touch hooks that lack it.
const hookMarker = "# installed by git-conventional"

// hookScript is the commit-msg hook body. Git passes the path of the file
// holding the proposed message as $1.
const hookScript = `#!/bin/sh
` + hookMarker + `
exec git-conventional check -F "$1"
`

// HookService installs and removes the commit-msg hook.
type HookService struct {
	git GitClient
}

// NewHookService creates a HookService.
func NewHookService(git GitClient) *HookService {
	return &HookService{git: git}
}

// hookPath returns the path of the commit-msg hook for the current repo.
func (s *HookService) hookPath(ctx context.Context) (string, error) {
	gitDir, err := s.git.GitDir(ctx)
	if err != nil {
		if IsNotRepo(err) {
			return "", ErrNotGitRepo
		}
		return "", err
	}
	return filepath.Join(gitDir, "hooks", "commit-msg"), nil
}

// Install writes the commit-msg hook. An existing hook not written by this
// tool is moved aside to commit-msg.bak.<id> first; the backup path is
// returned so the caller can report it.
func (s *HookService) Install(ctx context.Context) (backupPath string, err error) {
	path, err := s.hookPath(ctx)
	if err != nil {
		return "", err
	}

	if existing, err := os.ReadFile(path); err == nil {
		if strings.Contains(string(existing), hookMarker) {
			// Already ours; rewrite in place to pick up script changes.
			return "", os.WriteFile(path, []byte(hookScript), 0o755)
		}
		backupPath = path + ".bak." + uuid.NewString()[:8]
		if err := os.Rename(path, backupPath); err != nil {
			return "", fmt.Errorf("failed to back up existing hook: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return backupPath, err
	}
	if err := os.WriteFile(path, []byte(hookScript), 0o755); err != nil {
		return backupPath, fmt.Errorf("failed to write hook: %w", err)
	}
	return backupPath, nil
}

// Uninstall removes the hook if it was installed by this tool. When a
// single backup from Install exists, it is restored.
func (s *HookService) Uninstall(ctx context.Context) error {
	path, err := s.hookPath(ctx)
	if err != nil {
		return err
	}

	existing, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrHookNotInstalled
		}
		return err
	}
	if !strings.Contains(string(existing), hookMarker) {
		return ErrHookNotOurs
	}
	if err := os.Remove(path); err != nil {
		return err
	}

	backups, err := filepath.Glob(path + ".bak.*")
	if err == nil && len(backups) == 1 {
		return os.Rename(backups[0], path)
	}
	return nil
}

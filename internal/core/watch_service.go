package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// commitEditMsg is the file git writes the in-progress commit message to.
const commitEditMsg = "COMMIT_EDITMSG"

// WatchService re-lints the in-progress commit message whenever git (or an
// editor) writes COMMIT_EDITMSG.
type WatchService struct {
	git GitClient

	// OnChange is invoked with the message file path after each debounced
	// write event.
	OnChange func(path string)
}

// NewWatchService creates a WatchService.
func NewWatchService(git GitClient, onChange func(path string)) *WatchService {
	return &WatchService{git: git, OnChange: onChange}
}

// Watch blocks until ctx is cancelled, invoking OnChange after each write
// to COMMIT_EDITMSG. Rapid successive writes are debounced.
func (s *WatchService) Watch(ctx context.Context) error {
	gitDir, err := s.git.GitDir(ctx)
	if err != nil {
		if IsNotRepo(err) {
			return ErrNotGitRepo
		}
		return err
	}
	msgPath := filepath.Join(gitDir, commitEditMsg)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: COMMIT_EDITMSG is recreated on
	// every commit attempt and may not exist yet.
	if err := watcher.Add(gitDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", gitDir, err)
	}

	var debounceTimer *time.Timer
	const debounceDelay = 300 * time.Millisecond

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != commitEditMsg {
				continue
			}
			if event.Op&fsnotify.Write != fsnotify.Write && event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, func() {
				if _, err := os.Stat(msgPath); err != nil {
					return
				}
				if s.OnChange != nil {
					s.OnChange(msgPath)
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}

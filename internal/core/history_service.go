package core

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/EmundoT/git-conventional/internal/types"
)

// HistoryProgress receives per-commit progress while linting a range.
// Implementations may render a progress bar or stay silent.
type HistoryProgress interface {
	SetTotal(total int)
	Increment(message string)
	Complete()
	Fail(err error)
}

// NopProgress discards all progress events.
type NopProgress struct{}

func (NopProgress) SetTotal(int)     {}
func (NopProgress) Increment(string) {}
func (NopProgress) Complete()        {}
func (NopProgress) Fail(error)       {}

// HistoryService lints commits already recorded in git history.
type HistoryService struct {
	git    GitClient
	linter LintServiceInterface
}

// NewHistoryService creates a HistoryService.
func NewHistoryService(git GitClient, linter LintServiceInterface) *HistoryService {
	return &HistoryService{git: git, linter: linter}
}

// LintRange lints every commit in revRange (empty = full HEAD history) and
// returns a report tagged with a fresh run id. Merge commits are excluded;
// their messages are machine-generated.
func (s *HistoryService) LintRange(ctx context.Context, revRange string, maxCount int, progress HistoryProgress) (types.HistoryReport, error) {
	if progress == nil {
		progress = NopProgress{}
	}

	report := types.HistoryReport{
		RunID: uuid.NewString(),
		Range: revRange,
	}

	commits, err := s.git.Log(ctx, revRange, maxCount)
	if err != nil {
		progress.Fail(err)
		return report, fmt.Errorf("failed to read git log: %w", err)
	}
	progress.SetTotal(len(commits))

	for _, commit := range commits {
		result := s.linter.LintMessage(commit.Message)

		entry := types.HistoryEntry{
			Hash:       commit.Hash,
			Short:      commit.Short,
			Subject:    commit.Subject,
			Violations: result.Violations,
		}
		report.Entries = append(report.Entries, entry)
		report.Total++
		if result.OK() {
			report.Passed++
			progress.Increment(fmt.Sprintf("%s ok", commit.Short))
		} else {
			report.Failed++
			progress.Increment(fmt.Sprintf("%s %s", commit.Short, result.Violations[0].Code))
		}
	}

	progress.Complete()
	return report, nil
}

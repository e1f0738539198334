package core

import (
	"fmt"
	"strings"

	"github.com/EmundoT/git-conventional/internal/types"
	"github.com/EmundoT/git-conventional/pkg/conventional"
)

// Violation codes emitted by the lint service.
const (
	CodeParseFailed       = "PARSE_FAILED"
	CodeUnknownType       = "UNKNOWN_TYPE"
	CodeScopeRequired     = "SCOPE_REQUIRED"
	CodeUnknownScope      = "UNKNOWN_SCOPE"
	CodeSubjectTooLong    = "SUBJECT_TOO_LONG"
	CodeLineTooLong       = "LINE_TOO_LONG"
	CodeBreakingForbidden = "BREAKING_FORBIDDEN"
	CodeMissingFooter     = "MISSING_FOOTER"
)

// LintServiceInterface defines the contract for commit message linting.
// This interface enables mocking in tests and alternative rule engines.
type LintServiceInterface interface {
	LintMessage(message string) types.LintResult
}

// Compile-time interface satisfaction check.
var _ LintServiceInterface = (*LintService)(nil)

// LintService applies the configured rules on top of the grammar. The
// grammar itself stays vocabulary-agnostic; everything semantic (allowed
// types, scopes, lengths) lives here.
type LintService struct {
	cfg types.LintConfig
}

// NewLintService creates a LintService for the given configuration.
func NewLintService(cfg types.LintConfig) *LintService {
	return &LintService{cfg: cfg}
}

// LintMessage parses and lints a single commit message. Parse failures are
// reported through the same result shape as rule violations, carrying the
// classified error kind.
func (s *LintService) LintMessage(message string) types.LintResult {
	result := types.LintResult{Input: message}

	commit, err := conventional.Parse(message)
	if err != nil {
		result.Violations = append(result.Violations, types.Violation{
			Code:    CodeParseFailed,
			Message: err.Error(),
		})
		return result
	}

	result.Violations = append(result.Violations, s.lintCommit(commit)...)
	return result
}

func (s *LintService) lintCommit(c *conventional.Commit) []types.Violation {
	var violations []types.Violation

	if len(s.cfg.Types) > 0 && !containsFold(s.cfg.Types, c.Type) {
		violations = append(violations, types.Violation{
			Code:    CodeUnknownType,
			Message: fmt.Sprintf("type %q is not in the allowed set [%s]", c.Type, strings.Join(s.cfg.Types, ", ")),
		})
	}

	if s.cfg.RequireScope && c.Scope == "" {
		violations = append(violations, types.Violation{
			Code:    CodeScopeRequired,
			Message: "a scope is required, e.g. " + c.Type + "(scope): ...",
		})
	}
	if c.Scope != "" && len(s.cfg.Scopes) > 0 && !containsFold(s.cfg.Scopes, c.Scope) {
		violations = append(violations, types.Violation{
			Code:    CodeUnknownScope,
			Message: fmt.Sprintf("scope %q is not in the allowed set [%s]", c.Scope, strings.Join(s.cfg.Scopes, ", ")),
		})
	}

	if s.cfg.SubjectLimit > 0 {
		subject := summaryLine(c.Raw)
		if n := len([]rune(subject)); n > s.cfg.SubjectLimit {
			violations = append(violations, types.Violation{
				Code:    CodeSubjectTooLong,
				Message: fmt.Sprintf("summary line is %d characters, limit is %d", n, s.cfg.SubjectLimit),
			})
		}
	}

	if s.cfg.BodyLimit > 0 {
		for _, line := range strings.Split(c.Body, "\n") {
			if n := len([]rune(line)); n > s.cfg.BodyLimit {
				violations = append(violations, types.Violation{
					Code:    CodeLineTooLong,
					Message: fmt.Sprintf("body line is %d characters, limit is %d", n, s.cfg.BodyLimit),
				})
			}
		}
	}

	if s.cfg.ForbidBreaking && c.Breaking {
		violations = append(violations, types.Violation{
			Code:    CodeBreakingForbidden,
			Message: "breaking changes are not allowed on this branch",
		})
	}

	for _, token := range s.cfg.RequireFooters {
		if !c.HasFooter(token) {
			violations = append(violations, types.Violation{
				Code:    CodeMissingFooter,
				Message: fmt.Sprintf("required footer %q is missing", token),
			})
		}
	}

	return violations
}

// summaryLine returns the first line of a message.
func summaryLine(message string) string {
	if i := strings.IndexAny(message, "\r\n"); i >= 0 {
		return message[:i]
	}
	return message
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}

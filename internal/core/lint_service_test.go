package core

import (
	"strings"
	"testing"

	"github.com/EmundoT/git-conventional/internal/types"
)

func codes(result types.LintResult) []string {
	var out []string
	for _, v := range result.Violations {
		out = append(out, v.Code)
	}
	return out
}

func hasCode(result types.LintResult, code string) bool {
	for _, v := range result.Violations {
		if v.Code == code {
			return true
		}
	}
	return false
}

func TestLintMessageDefaults(t *testing.T) {
	linter := NewLintService(DefaultLintConfig())

	tests := []struct {
		name      string
		message   string
		wantCodes []string
	}{
		{
			name:    "valid feat",
			message: "feat(auth): add login",
		},
		{
			name:    "valid with body and footer",
			message: "fix: handle empty input\n\nThe parser crashed on empty strings.\n\nCloses #12",
		},
		{
			name:      "unknown type",
			message:   "feature: add login",
			wantCodes: []string{CodeUnknownType},
		},
		{
			name:      "parse failure",
			message:   "not a conventional commit",
			wantCodes: []string{CodeParseFailed},
		},
		{
			name:      "subject too long",
			message:   "feat: " + strings.Repeat("x", 80),
			wantCodes: []string{CodeSubjectTooLong},
		},
		{
			name:      "body line too long",
			message:   "feat: ok\n\n" + strings.Repeat("y", 120),
			wantCodes: []string{CodeLineTooLong},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := linter.LintMessage(tt.message)
			if len(tt.wantCodes) == 0 {
				if !result.OK() {
					t.Fatalf("LintMessage(%q) violations: %v", tt.message, result.Violations)
				}
				return
			}
			if got := codes(result); len(got) != len(tt.wantCodes) {
				t.Fatalf("violations = %v, want codes %v", result.Violations, tt.wantCodes)
			}
			for _, want := range tt.wantCodes {
				if !hasCode(result, want) {
					t.Errorf("missing violation %s in %v", want, result.Violations)
				}
			}
		})
	}
}

func TestLintMessageScopeRules(t *testing.T) {
	linter := NewLintService(types.LintConfig{
		Scopes:       []string{"auth", "payments"},
		RequireScope: true,
	})

	if result := linter.LintMessage("feat(auth): ok"); !result.OK() {
		t.Errorf("allowed scope flagged: %v", result.Violations)
	}
	if result := linter.LintMessage("feat(AUTH): ok"); !result.OK() {
		t.Errorf("scope comparison should be case-insensitive: %v", result.Violations)
	}
	if result := linter.LintMessage("feat: no scope"); !hasCode(result, CodeScopeRequired) {
		t.Errorf("missing SCOPE_REQUIRED: %v", result.Violations)
	}
	if result := linter.LintMessage("feat(db): wrong scope"); !hasCode(result, CodeUnknownScope) {
		t.Errorf("missing UNKNOWN_SCOPE: %v", result.Violations)
	}
}

func TestLintMessageBreakingAndFooters(t *testing.T) {
	linter := NewLintService(types.LintConfig{
		ForbidBreaking: true,
		RequireFooters: []string{"Reviewed-By"},
	})

	result := linter.LintMessage("feat!: drop api")
	if !hasCode(result, CodeBreakingForbidden) {
		t.Errorf("missing BREAKING_FORBIDDEN: %v", result.Violations)
	}
	if !hasCode(result, CodeMissingFooter) {
		t.Errorf("missing MISSING_FOOTER: %v", result.Violations)
	}

	result = linter.LintMessage("feat: ok\n\nreviewed-by: alice")
	if hasCode(result, CodeMissingFooter) {
		t.Errorf("footer token match should be case-insensitive: %v", result.Violations)
	}

	// Breaking via footer counts too.
	result = linter.LintMessage("feat: ok\n\nReviewed-By: alice\nBREAKING-CHANGE: gone")
	if !hasCode(result, CodeBreakingForbidden) {
		t.Errorf("breaking footer not flagged: %v", result.Violations)
	}
}

func TestLintMessageEmptyConfigAllowsAnyType(t *testing.T) {
	linter := NewLintService(types.LintConfig{})
	if result := linter.LintMessage("somethingodd: but grammatical"); !result.OK() {
		t.Errorf("empty config should accept any type: %v", result.Violations)
	}
}

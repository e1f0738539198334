// Package types defines the shared data structures used across the
// git-conventional services.
package types

// LintConfig is the schema for .commitlint.yml. Zero values mean "rule
// disabled" except where noted; DefaultLintConfig supplies the defaults
// applied when no config file exists.
type LintConfig struct {
	// Types is the allowed type vocabulary. Empty means any type parses.
	Types []string `yaml:"types,omitempty"`

	// Scopes is an optional scope allowlist. Empty means any scope.
	Scopes []string `yaml:"scopes,omitempty"`

	// RequireScope rejects commits without a scope.
	RequireScope bool `yaml:"require_scope,omitempty"`

	// SubjectLimit is the maximum summary-line length. 0 disables.
	SubjectLimit int `yaml:"subject_limit,omitempty"`

	// BodyLimit is the maximum body/footer line length. 0 disables.
	BodyLimit int `yaml:"body_limit,omitempty"`

	// ForbidBreaking rejects breaking commits ("!" marker or
	// BREAKING CHANGE footer).
	ForbidBreaking bool `yaml:"forbid_breaking,omitempty"`

	// RequireFooters lists footer tokens that must be present, e.g.
	// "Reviewed-By".
	RequireFooters []string `yaml:"require_footers,omitempty"`
}

// Violation is a single lint finding with a machine-readable code.
type Violation struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// LintResult is the outcome of linting one commit message. An empty
// Violations list means the message passed.
type LintResult struct {
	Input      string      `json:"-"`
	Violations []Violation `json:"violations,omitempty"`
}

// OK reports whether the message passed all rules.
func (r LintResult) OK() bool {
	return len(r.Violations) == 0
}

// CommitRecord is one commit read from git history.
type CommitRecord struct {
	Hash    string `json:"hash"`
	Short   string `json:"short"`
	Author  string `json:"author"`
	Subject string `json:"subject"`
	Message string `json:"-"` // full raw message (subject + body)
}

// HistoryEntry is the lint outcome for one commit in a history report.
type HistoryEntry struct {
	Hash       string      `json:"hash"`
	Short      string      `json:"short"`
	Subject    string      `json:"subject"`
	Violations []Violation `json:"violations,omitempty"`
}

// HistoryReport summarizes linting a revision range.
type HistoryReport struct {
	RunID   string         `json:"run_id"`
	Range   string         `json:"range"`
	Total   int            `json:"total"`
	Passed  int            `json:"passed"`
	Failed  int            `json:"failed"`
	Entries []HistoryEntry `json:"entries"`
}

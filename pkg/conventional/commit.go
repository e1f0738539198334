// Package conventional parses commit messages that follow the Conventional
// Commits specification into a structured form: a required type, optional
// scope, breaking-change marker, one-line description, optional body, and
// ordered footers.
//
// The grammar does not restrict the type to a fixed vocabulary ("feat",
// "fix" and friends are conventions, not grammar), parses exactly one
// commit per input, and never returns partial results: a message either
// parses fully or Parse fails with a classified *Error.
//
// See: https://www.conventionalcommits.org
package conventional

import "strings"

// Commit is an immutable parsed conventional commit. String fields are
// sub-slices of the original input; Go strings share backing storage, so
// parsing never copies message text.
// Breaking is true when the summary carried the "!" marker:
//
//	feat(scope)!: this is a breaking change
//
// or when any footer token case-insensitively equals "BREAKING CHANGE" or
// "BREAKING-CHANGE":
//
//	feat: my commit description
//
//	BREAKING CHANGE: this is a breaking change
type Commit struct {
	Type        string   // e.g. "feat", "fix", "refactor"
	Scope       string   // e.g. "auth", "payments" (empty if no scope)
	Description string   // the text after ": " on the summary line
	Body        string   // free-text body (empty if no body)
	Breaking    bool     // "!" marker present, or a breaking-change footer
	Footers     []Footer // ordered as they appear in the message
	Raw         string   // the original unparsed message
}

// Parse parses a commit message into a Commit. It is the sole entry point;
// on failure the returned error is always a *Error with one of the closed
// set of kinds.
//
//	Parse("feat(auth): add login")  → &Commit{Type: "feat", Scope: "auth", Description: "add login"}
//	Parse("fix!: critical bug")     → &Commit{Type: "fix", Breaking: true, Description: "critical bug"}
//	Parse("random message")         → nil, *Error{Kind: InvalidFormat}
//
// Parse is a pure function with no shared state; concurrent calls need no
// coordination.
func Parse(input string) (*Commit, error) {
	p := &parser{src: input, rest: input}
	c, rerr := p.message()
	if rerr != nil {
		return nil, classify(input, rerr)
	}
	return c, nil
}

// BreakingChange returns the value of the first breaking-change footer,
// if any. A commit can be breaking (via the "!" marker) without having a
// breaking-change footer.
func (c *Commit) BreakingChange() (string, bool) {
	for _, f := range c.Footers {
		if f.Breaking() {
			return f.Value, true
		}
	}
	return "", false
}

// FooterValue returns the value of the first footer matching token
// case-insensitively, or "".
func (c *Commit) FooterValue(token string) string {
	for _, f := range c.Footers {
		if strings.EqualFold(f.Token, token) {
			return f.Value
		}
	}
	return ""
}

// FooterValues returns all values for footers matching token
// case-insensitively, preserving order.
func (c *Commit) FooterValues(token string) []string {
	var vals []string
	for _, f := range c.Footers {
		if strings.EqualFold(f.Token, token) {
			vals = append(vals, f.Value)
		}
	}
	return vals
}

// HasFooter reports whether any footer with the given token exists.
func (c *Commit) HasFooter(token string) bool {
	for _, f := range c.Footers {
		if strings.EqualFold(f.Token, token) {
			return true
		}
	}
	return false
}

// String reconstructs the canonical textual form:
//
//	type[(scope)][!]: description
//
//	[body]
//
//	[token separator value]...
//
// The "!" marker is emitted only when the breaking flag is not already
// carried by a footer, so re-parsing the result yields an equal Commit.
func (c *Commit) String() string {
	var b strings.Builder
	b.WriteString(c.Type)
	if c.Scope != "" {
		b.WriteString("(")
		b.WriteString(c.Scope)
		b.WriteString(")")
	}
	if c.Breaking {
		if _, viaFooter := c.BreakingChange(); !viaFooter {
			b.WriteString("!")
		}
	}
	b.WriteString(": ")
	b.WriteString(c.Description)
	if c.Body != "" {
		b.WriteString("\n\n")
		b.WriteString(c.Body)
	}
	for _, f := range c.Footers {
		b.WriteString("\n\n")
		b.WriteString(f.String())
	}
	return b.String()
}

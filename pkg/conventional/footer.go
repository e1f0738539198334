package conventional

import (
	"fmt"
	"strings"
)

// Recognized breaking-change footer tokens. The spaced form is also a
// grammar literal (the general token grammar forbids whitespace); the
// hyphenated form matches the general grammar and is only special-cased
// for breaking-change detection.
const (
	breakingToken       = "BREAKING CHANGE"
	breakingHyphenToken = "BREAKING-CHANGE"
)

// Separator is the form separating a footer token from its value.
type Separator int

const (
	// SeparatorColon is the ":" form, rendered ": " (e.g. "Reviewed-By: X").
	SeparatorColon Separator = iota

	// SeparatorHashRef is the " #" form used for reference-style trailers
	// (e.g. "Closes #12").
	SeparatorHashRef
)

func (s Separator) String() string {
	if s == SeparatorHashRef {
		return " #"
	}
	return ": "
}

// ParseSeparator converts an already-extracted separator string back into
// its Separator form. Both ":" and ": " map to SeparatorColon.
func ParseSeparator(s string) (Separator, error) {
	switch s {
	case ":", ": ":
		return SeparatorColon, nil
	case " #":
		return SeparatorHashRef, nil
	}
	return 0, &Error{Kind: InvalidFooter, Context: fmt.Sprintf("unrecognized footer separator %q", s), Input: s}
}

// Footer is a single structured footer entry, analogous to a Git trailer
// but without requiring a blank line per trailer.
type Footer struct {
	Token string    `json:"token"`
	Sep   Separator `json:"separator"`
	Value string    `json:"value"`
}

// Breaking reports whether the footer token marks a breaking change.
// Comparison uses Unicode case folding.
func (f Footer) Breaking() bool {
	return strings.EqualFold(f.Token, breakingToken) || strings.EqualFold(f.Token, breakingHyphenToken)
}

// String renders the footer in canonical form.
func (f Footer) String() string {
	return f.Token + f.Sep.String() + f.Value
}

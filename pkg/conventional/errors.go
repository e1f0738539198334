package conventional

import "errors"

// ErrorKind is the closed set of parse failure classifications.
type ErrorKind int

const (
	// MissingType indicates no type token before "(", ":" or end of line.
	MissingType ErrorKind = iota

	// InvalidScope indicates a malformed or empty "(...)" block. Once the
	// opening parenthesis is seen this failure is unrecoverable.
	InvalidScope

	// MissingDescription indicates no text after "type[(scope)][!]: ".
	MissingDescription

	// InvalidBody indicates the summary was not followed by a blank line,
	// or a blank-line separator was present but nothing parsable followed.
	InvalidBody

	// InvalidFooter indicates a footer separator that is not one of the two
	// recognized forms.
	InvalidFooter

	// InvalidFormat is the catch-all: missing colon, malformed separator
	// between type/scope/colon, or any structurally unrecognized input.
	InvalidFormat
)

func (k ErrorKind) String() string {
	switch k {
	case MissingType:
		return "missing type definition"
	case InvalidScope:
		return "invalid scope format"
	case MissingDescription:
		return "missing commit description"
	case InvalidBody:
		return "invalid body format"
	case InvalidFooter:
		return "invalid footer format"
	default:
		return "invalid commit format"
	}
}

// Error is the classified parse failure returned by Parse. It retains the
// original input for diagnostic display.
type Error struct {
	Kind    ErrorKind
	Context string // optional human-readable rule context
	Input   string // the full original message
}

func (e *Error) Error() string {
	if e.Context != "" {
		return e.Kind.String() + ": " + e.Context
	}
	return e.Kind.String()
}

// Is supports errors.Is against another *Error by kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// AsError unwraps err into a *Error, if it is one.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// labelKinds is the fixed rule-label to error-kind table used by classify.
var labelKinds = map[string]ErrorKind{
	labelType:        MissingType,
	labelScope:       InvalidScope,
	labelDescription: MissingDescription,
	labelBody:        InvalidBody,
	labelFooter:      InvalidFooter,
}

// classify maps the deepest rule failure to a user-facing error. It is a
// pure function over the failure value; parsing is never re-run.
func classify(input string, rerr *ruleError) *Error {
	kind, ok := labelKinds[rerr.label]
	if !ok {
		kind = InvalidFormat
	}
	return &Error{Kind: kind, Context: rerr.context, Input: input}
}

package conventional

import (
	"strings"
	"unicode"
)

// Grammar rule labels. The deepest label recorded on a failure is mapped
// to an ErrorKind by classify; labels without a table entry fall through
// to InvalidFormat.
const (
	labelType        = "type"
	labelScope       = "scope"
	labelDescription = "description"
	labelBody        = "body"
	labelFooter      = "footer"
	labelValue       = "value"
)

// ruleError is the two-outcome failure value produced by grammar rules.
// fatal=false means "no match": the caller may backtrack and try an
// alternative. fatal=true means the parse crossed a cut point and must
// abort as a whole.
type ruleError struct {
	label   string
	context string
	fatal   bool
}

// parser holds the unconsumed suffix of the input. rest only ever shrinks
// from the front; rules that may fail without committing work on local
// copies and assign rest once matched.
type parser struct {
	src  string // full original input, kept for diagnostics
	rest string
}

// <newline> ::= [<CR>], <LF>
func isLineEnding(r rune) bool {
	return r == '\n' || r == '\r'
}

func isParens(r rune) bool {
	return r == '(' || r == ')'
}

// isSpace reports whether r is non-newline whitespace.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) && !isLineEnding(r)
}

// <type> ::= <any UTF8-octets except newline or parens or ":" or "!" or whitespace>+
func isTypeChar(r rune) bool {
	return !isLineEnding(r) && !isParens(r) && r != ':' && r != '!' && !unicode.IsSpace(r)
}

// <scope> ::= <any UTF8-octets except newline or parens>+
func isScopeChar(r rune) bool {
	return !isLineEnding(r) && !isParens(r)
}

// takeWhile splits s at the first rune not matching pred.
func takeWhile(s string, pred func(rune) bool) (match, rest string) {
	for i, r := range s {
		if !pred(r) {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

// lineEnding consumes a single "\r\n" or "\n" and reports whether one was
// present.
func (p *parser) lineEnding() bool {
	switch {
	case strings.HasPrefix(p.rest, "\r\n"):
		p.rest = p.rest[2:]
		return true
	case strings.HasPrefix(p.rest, "\n"):
		p.rest = p.rest[1:]
		return true
	}
	return false
}

type summary struct {
	typ      string
	scope    string // empty when absent; the grammar forbids empty scopes
	breaking bool   // "!" marker present
	desc     string
}

// summary parses the first line of the message:
//
//	<summary> ::= <type>, ["(", <scope>, ")"], ["!"], ":", <whitespace>*, <text>
//
// Opening "(" is a cut: parentheses unambiguously delimit a scope, so a
// malformed scope block is fatal rather than reinterpreted as part of the
// type or description.
func (p *parser) summary() (summary, *ruleError) {
	var sum summary

	typ, rest := takeWhile(p.rest, isTypeChar)
	if typ == "" {
		return sum, &ruleError{label: labelType}
	}
	sum.typ = typ
	p.rest = rest

	if strings.HasPrefix(p.rest, "(") {
		p.rest = p.rest[1:]
		scope, rest := takeWhile(p.rest, isScopeChar)
		if scope == "" {
			return sum, &ruleError{label: labelScope, context: "scope must not be empty", fatal: true}
		}
		p.rest = rest
		if !strings.HasPrefix(p.rest, ")") {
			return sum, &ruleError{label: labelScope, context: "unclosed scope delimiter", fatal: true}
		}
		p.rest = p.rest[1:]
		sum.scope = scope
	}

	if strings.HasPrefix(p.rest, "!") {
		p.rest = p.rest[1:]
		sum.breaking = true
	}

	// Whitespace is permitted after the colon, never before it.
	if !strings.HasPrefix(p.rest, ":") {
		return sum, &ruleError{context: "missing colon after type"}
	}
	p.rest = p.rest[1:]
	_, p.rest = takeWhile(p.rest, isSpace)

	desc, rest := takeWhile(p.rest, func(r rune) bool { return !isLineEnding(r) })
	if desc == "" {
		return sum, &ruleError{label: labelDescription}
	}
	sum.desc = desc
	p.rest = rest

	return sum, nil
}

// cutToken matches a footer token at the start of s: the literal breaking
// change phrase (checked first, since the general token grammar cannot
// contain a space) or a type-shaped run.
func cutToken(s string) (token, rest string, ok bool) {
	if strings.HasPrefix(s, breakingToken) {
		return breakingToken, s[len(breakingToken):], true
	}
	token, rest = takeWhile(s, isTypeChar)
	if token == "" {
		return "", "", false
	}
	return token, rest, true
}

// cutSeparator matches one of the two footer separator forms.
//
//	<separator> ::= ":" | " #"
func cutSeparator(s string) (sep Separator, rest string, ok bool) {
	switch {
	case strings.HasPrefix(s, ":"):
		return SeparatorColon, s[1:], true
	case strings.HasPrefix(s, " #"):
		return SeparatorHashRef, s[2:], true
	}
	return 0, "", false
}

// isFooterStart is the one-line lookahead shared by the body and footer
// value rules: does the line, trimmed of trailing whitespace, match
// <token><separator>?
func isFooterStart(line string) bool {
	line = strings.TrimRightFunc(line, unicode.IsSpace)
	_, rest, ok := cutToken(line)
	if !ok {
		return false
	}
	_, _, ok = cutSeparator(rest)
	return ok
}

// body consumes free-text lines until a footer line is recognized or input
// is exhausted. A line counts as the start of the footers only when the
// line before it was blank (or it is the first line scanned); this gate
// keeps trailer-shaped prose inside a paragraph from splitting the body.
func (p *parser) body() (string, *ruleError) {
	if p.rest == "" {
		return "", &ruleError{label: labelBody}
	}

	offset := 0
	priorIsEmpty := true
	sc := lineScanner{rest: p.rest}
	for {
		line, ok := sc.next()
		if !ok {
			break
		}
		if priorIsEmpty && isFooterStart(line) {
			break
		}
		priorIsEmpty = strings.TrimSpace(line) == ""
		offset += len(line)
	}
	if offset == 0 {
		return "", &ruleError{label: labelBody}
	}

	body := strings.TrimRightFunc(p.rest[:offset], unicode.IsSpace)
	p.rest = p.rest[offset:]
	return body, nil
}

// footer parses one <token>, <separator>, <whitespace>*, <value> block.
// Nothing is consumed unless both token and separator match, so the
// enclosing repetition can stop cleanly at the first non-footer line.
func (p *parser) footer() (Footer, *ruleError) {
	token, rest, ok := cutToken(p.rest)
	if !ok {
		return Footer{}, &ruleError{label: labelFooter}
	}
	sep, rest, ok := cutSeparator(rest)
	if !ok {
		return Footer{}, &ruleError{label: labelFooter}
	}
	p.rest = rest
	_, p.rest = takeWhile(p.rest, isSpace)

	value, rerr := p.value()
	if rerr != nil {
		return Footer{}, rerr
	}
	return Footer{Token: token, Sep: sep, Value: value}, nil
}

// value consumes the footer value, spanning lines until a later line (never
// the first) is itself recognized as a footer. A matched token+separator
// with nothing after it is a cut: the footer cannot be reinterpreted as
// body text.
func (p *parser) value() (string, *ruleError) {
	if p.rest == "" {
		return "", &ruleError{label: labelValue, context: "footer value must not be empty", fatal: true}
	}

	offset := 0
	sc := lineScanner{rest: p.rest}
	for i := 0; ; i++ {
		line, ok := sc.next()
		if !ok {
			break
		}
		if i > 0 && isFooterStart(line) {
			break
		}
		offset += len(line)
	}

	value := strings.TrimRightFunc(p.rest[:offset], unicode.IsSpace)
	p.rest = p.rest[offset:]
	return value, nil
}

// message parses the whole commit:
//
//	<message> ::= <summary>, <newline>+, <body>, (<newline>+, <footer>)*
//	           |  <summary>, (<newline>+, <footer>)*
//	           |  <summary>, <newline>*
//
// Stages run strictly forward; the first fatal failure aborts the parse.
func (p *parser) message() (*Commit, *ruleError) {
	sum, rerr := p.summary()
	if rerr != nil {
		return nil, rerr
	}
	if len(p.rest) > 0 && !p.lineEnding() {
		return nil, &ruleError{context: "summary line not terminated"}
	}

	// The body must begin one blank line after the description.
	if len(p.rest) > 0 && !p.lineEnding() {
		return nil, &ruleError{label: labelBody, context: "missing blank line after summary"}
	}
	for p.lineEnding() {
	}

	var body string
	if b, rerr := p.body(); rerr == nil {
		body = b
	} else if rerr.fatal {
		return nil, rerr
	}

	var footers []Footer
	for {
		f, rerr := p.footer()
		if rerr != nil {
			if rerr.fatal {
				return nil, rerr
			}
			break
		}
		footers = append(footers, f)
	}

	for p.lineEnding() {
	}
	if len(p.rest) > 0 {
		return nil, &ruleError{context: "unparsed trailing input"}
	}

	breaking := sum.breaking
	for _, f := range footers {
		if f.Breaking() {
			breaking = true
			break
		}
	}

	return &Commit{
		Type:        sum.typ,
		Scope:       sum.scope,
		Description: sum.desc,
		Body:        body,
		Breaking:    breaking,
		Footers:     footers,
		Raw:         p.src,
	}, nil
}

package conventional

import "strings"

// lineScanner yields lines including their terminators. Unlike
// bufio.Scanner, a final line without a trailing newline is still yielded,
// which matters for lookahead against the last line of a message.
type lineScanner struct {
	rest string
}

// next returns the next line (terminator included) and whether one existed.
func (s *lineScanner) next() (string, bool) {
	if s.rest == "" {
		return "", false
	}
	if i := strings.IndexByte(s.rest, '\n'); i >= 0 {
		line := s.rest[:i+1]
		s.rest = s.rest[i+1:]
		return line, true
	}
	line := s.rest
	s.rest = ""
	return line, true
}

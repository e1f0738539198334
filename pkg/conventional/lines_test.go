package conventional

import (
	"reflect"
	"testing"
)

func collectLines(s string) []string {
	var lines []string
	sc := lineScanner{rest: s}
	for {
		line, ok := sc.next()
		if !ok {
			return lines
		}
		lines = append(lines, line)
	}
}

func TestLineScanner(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single terminated", "foo\n", []string{"foo\n"}},
		{"final line without terminator kept", "foo\nbar", []string{"foo\n", "bar"}},
		{"blank lines preserved", "a\n\nb\n", []string{"a\n", "\n", "b\n"}},
		{"crlf kept with line", "a\r\nb", []string{"a\r\n", "b"}},
		{"terminator only", "\n", []string{"\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := collectLines(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("lines(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

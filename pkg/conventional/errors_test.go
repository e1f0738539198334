package conventional

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKindStrings(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{MissingType, "missing type definition"},
		{InvalidScope, "invalid scope format"},
		{MissingDescription, "missing commit description"},
		{InvalidBody, "invalid body format"},
		{InvalidFooter, "invalid footer format"},
		{InvalidFormat, "invalid commit format"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestErrorMessageIncludesContext(t *testing.T) {
	_, err := Parse("type(): description")
	if err == nil {
		t.Fatal("expected error")
	}
	want := "invalid scope format: scope must not be empty"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestErrorsIsByKind(t *testing.T) {
	_, err := Parse("")
	if !errors.Is(err, &Error{Kind: MissingType}) {
		t.Errorf("errors.Is(%v, MissingType) = false", err)
	}
	if errors.Is(err, &Error{Kind: InvalidScope}) {
		t.Errorf("errors.Is(%v, InvalidScope) = true", err)
	}
}

func TestAsErrorThroughWrapping(t *testing.T) {
	_, err := Parse("no colon here")
	wrapped := fmt.Errorf("linting commit: %w", err)
	perr, ok := AsError(wrapped)
	if !ok {
		t.Fatalf("AsError(%v) = false", wrapped)
	}
	if perr.Kind != InvalidFormat {
		t.Errorf("kind = %v, want InvalidFormat", perr.Kind)
	}
}

func TestParseSeparator(t *testing.T) {
	tests := []struct {
		in      string
		want    Separator
		wantErr bool
	}{
		{in: ":", want: SeparatorColon},
		{in: ": ", want: SeparatorColon},
		{in: " #", want: SeparatorHashRef},
		{in: "", wantErr: true},
		{in: " :", wantErr: true},
		{in: "#", wantErr: true},
		{in: "=", wantErr: true},
	}

	for _, tt := range tests {
		sep, err := ParseSeparator(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseSeparator(%q) = %v, want error", tt.in, sep)
				continue
			}
			perr, ok := AsError(err)
			if !ok || perr.Kind != InvalidFooter {
				t.Errorf("ParseSeparator(%q) error = %v, want InvalidFooter", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSeparator(%q): %v", tt.in, err)
			continue
		}
		if sep != tt.want {
			t.Errorf("ParseSeparator(%q) = %v, want %v", tt.in, sep, tt.want)
		}
	}
}

func TestSeparatorString(t *testing.T) {
	if SeparatorColon.String() != ": " {
		t.Errorf("SeparatorColon.String() = %q", SeparatorColon.String())
	}
	if SeparatorHashRef.String() != " #" {
		t.Errorf("SeparatorHashRef.String() = %q", SeparatorHashRef.String())
	}
}

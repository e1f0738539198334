package tui

import "testing"

func TestNonEmpty(t *testing.T) {
	validate := nonEmpty("scope")

	if err := validate(""); err == nil {
		t.Error("expected error for empty string")
	}
	if err := validate("   "); err == nil {
		t.Error("expected error for whitespace-only string")
	}
	if err := validate("auth"); err != nil {
		t.Errorf("unexpected error for non-empty value: %v", err)
	}
}

func TestValidType(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"feat", false},
		{"Reviewed-By", false},
		{"feat fix", true},
		{"feat:", true},
		{"feat!", true},
		{"feat(scope)", true},
		{"", true},
		{"  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := validType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

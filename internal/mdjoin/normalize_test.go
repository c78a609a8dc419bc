package mdjoin

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"   ", ""},
		{"plain text", "plain text"},
		{"a   b\tc", "a b c"},
		{"   leading", "   leading"},
		{"\t\tleading  tabs", "\t\tleading tabs"},
		{"trailing   ", "trailing"},
		{"trailing\t \t", "trailing"},
		{"a \t b", "a b"},
		{"x  y  z", "x y z"},
		{"unicode  ünïcödé   wörds", "unicode ünïcödé wörds"},
		{"- item   text", "- item text"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := Normalize(tt.input); result != tt.expected {
				t.Errorf("Normalize(%q): expected %q, got %q", tt.input, tt.expected, result)
			}
		})
	}
}

func TestTrimTrailing(t *testing.T) {
	if result := TrimTrailing("  a    b \t "); result != "  a    b" {
		t.Errorf("expected %q, got %q", "  a    b", result)
	}
}

func TestIsBullet(t *testing.T) {
	tests := []struct {
		line     string
		expected bool
	}{
		{"- item", true},
		{"* item", true},
		{"    - nested", true},
		{"        * deeper", true},
		{"  - two spaces", false},
		{"      - six spaces", false},
		{"\t- tab", false},
		{"-item", false},
		{"+ plus", false},
		{"1. numbered", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if result := IsBullet(tt.line); result != tt.expected {
				t.Errorf("IsBullet(%q): expected %v, got %v", tt.line, tt.expected, result)
			}
		})
	}
}

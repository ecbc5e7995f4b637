package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		got, err := ParseFormat(f.String())
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", f, err)
		}
		if got != f {
			t.Errorf("ParseFormat(%q) = %v", f, got)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestFromSuffix(t *testing.T) {
	tests := []struct {
		name string
		want Format
		ok   bool
	}{
		{"story.inkc", InkcFormat, true},
		{"dir/story.yaml", YAMLFormat, true},
		{"story.cbor", CBORFormat, true},
		{"story.json", JSONFormat, true},
		{"story.ink", 0, false},
		{".json", 0, false},
	}
	for _, tt := range tests {
		got, ok := FromSuffix(tt.name)
		if ok != tt.ok || got != tt.want {
			t.Errorf("FromSuffix(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

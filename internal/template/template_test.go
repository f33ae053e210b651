package template

import (
	"strings"
	"testing"
	"time"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"this is a long string", 10, "this is..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"", 5, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.n, tt.input); got != tt.want {
			t.Errorf("truncate(%d, %q) = %q, want %q", tt.n, tt.input, got, tt.want)
		}
	}
}

func TestTruncateByRunes(t *testing.T) {
	input := "こんにちは世界です"
	got := truncate(5, input)
	if got != "こん..." {
		t.Errorf("truncate(5, %q) = %q, want %q", input, got, "こん...")
	}
}

func TestDatefmt(t *testing.T) {
	if got := datefmt(time.Time{}); got != "undated" {
		t.Errorf("zero time = %q, want undated", got)
	}
	ts := time.Date(2025, 5, 28, 6, 30, 0, 0, time.UTC)
	if got := datefmt(ts); got != "2025-05-28 06:30" {
		t.Errorf("datefmt = %q", got)
	}
}

func TestParseRejectsBadTemplate(t *testing.T) {
	tmpl := &Template{}
	if err := tmpl.Parse("{{.Broken", nil); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	tmpl := &Template{}
	err := tmpl.Load("/nonexistent/template.tmpl", nil)
	if err == nil || !strings.Contains(err.Error(), "failed to read template file") {
		t.Errorf("expected read error, got %v", err)
	}
}

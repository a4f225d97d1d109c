package textutil_test

import (
	"testing"

	"imgpack/internal/textutil"
)

func TestSlug(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		fallback string
		want     string
	}{
		{"plain word", "lora", "tab", "lora"},
		{"uppercase", "Banny", "tab", "banny"},
		{"extension pattern", ".mp4", "tab", "mp4"},
		{"inner dot", "archive.v2", "tab", "archive-v2"},
		{"spaces and underscores", "my old_stuff", "tab", "my-old-stuff"},
		{"unicode dropped", "café*", "tab", "caf"},
		{"empty", "", "tab", "tab"},
		{"only symbols", "***", "tab", "tab"},
		{"leading separators trimmed", "--mp3--", "tab", "mp3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := textutil.Slug(tc.input, tc.fallback); got != tc.want {
				t.Fatalf("Slug(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

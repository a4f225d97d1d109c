package media_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"imgpack/internal/media"
)

func TestDetect(t *testing.T) {
	cases := []struct {
		name string
		want media.Category
	}{
		{"a.jpg", media.CategoryImage},
		{"A.JPG", media.CategoryImage},
		{"photo.jpeg", media.CategoryImage},
		{"anim.webp", media.CategoryImage},
		{"song.mp3", media.CategoryAudio},
		{"voice.opus", media.CategoryAudio},
		{"clip.mp4", media.CategoryVideo},
		{"movie.mkv", media.CategoryVideo},
		{"notes.txt", media.CategoryUnknown},
		{"archive.zip", media.CategoryUnknown},
		{"no-extension", media.CategoryUnknown},
		{"dir/nested.MOV", media.CategoryVideo},
	}
	for _, tc := range cases {
		if got := media.Detect(tc.name); got != tc.want {
			t.Errorf("Detect(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestIsMedia(t *testing.T) {
	if !media.IsMedia("a.png") {
		t.Fatal("expected a.png to be media")
	}
	if media.IsMedia("c.txt") {
		t.Fatal("expected c.txt to not be media")
	}
}

func TestMIMEType(t *testing.T) {
	cases := map[string]string{
		"a.png":    "image/png",
		"clip.mp4": "video/mp4",
		"x.mkv":    "video/x-matroska",
		"c.txt":    "text/plain",
		"blob.xyz": "application/octet-stream",
	}
	for name, want := range cases {
		got := media.MIMEType(name)
		// Platform mime databases append charset parameters to text types.
		if got != want && !strings.HasPrefix(got, want+";") {
			t.Errorf("MIMEType(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestCaptureTimeWithoutEXIF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.jpg")
	if err := os.WriteFile(path, []byte("not a real jpeg"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, ok := media.CaptureTime(path); ok {
		t.Fatal("expected no capture time for bogus jpeg")
	}
	if _, ok := media.CaptureTime(filepath.Join(dir, "absent.jpg")); ok {
		t.Fatal("expected no capture time for missing file")
	}
	if _, ok := media.CaptureTime(filepath.Join(dir, "song.mp3")); ok {
		t.Fatal("expected no capture time for non-image")
	}
}

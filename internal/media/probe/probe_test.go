package probe_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"imgpack/internal/media/probe"
)

// stubFFprobe installs a fake ffprobe that prints the given JSON payload.
func stubFFprobe(t *testing.T, payload string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub binaries not supported on windows")
	}
	binDir := t.TempDir()
	script := fmt.Sprintf("#!/bin/sh\ncat <<'EOF'\n%s\nEOF\n", payload)
	if err := os.WriteFile(filepath.Join(binDir, "ffprobe"), []byte(script), 0o755); err != nil {
		t.Fatalf("write stub ffprobe: %v", err)
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestInspectParsesStreamsAndFormat(t *testing.T) {
	stubFFprobe(t, `{
  "streams": [
    {"index": 0, "codec_name": "h264", "codec_type": "video", "width": 1280, "height": 720},
    {"index": 1, "codec_name": "aac", "codec_type": "audio", "channels": 2, "bit_rate": "127999"}
  ],
  "format": {"filename": "clip.mp4", "duration": "12.480000", "bit_rate": "2500000", "format_name": "mov,mp4,m4a"}
}`)

	result, err := probe.Inspect(context.Background(), "ffprobe", "clip.mp4")
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if got := result.BitRateKbps(); got != 2500 {
		t.Fatalf("BitRateKbps = %d, want 2500", got)
	}
	w, h, ok := result.VideoDimensions()
	if !ok || w != 1280 || h != 720 {
		t.Fatalf("VideoDimensions = %d x %d (%v)", w, h, ok)
	}
	if got := result.DurationSeconds(); got != 12.48 {
		t.Fatalf("DurationSeconds = %f", got)
	}
}

func TestBitRateKbpsFallsBackToStream(t *testing.T) {
	stubFFprobe(t, `{
  "streams": [{"index": 0, "codec_type": "audio", "bit_rate": "320000"}],
  "format": {"filename": "song.mp3"}
}`)

	result, err := probe.Inspect(context.Background(), "ffprobe", "song.mp3")
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if got := result.BitRateKbps(); got != 320 {
		t.Fatalf("BitRateKbps = %d, want 320", got)
	}
	if _, _, ok := result.VideoDimensions(); ok {
		t.Fatal("expected no video dimensions")
	}
}

func TestInspectEmptyPath(t *testing.T) {
	if _, err := probe.Inspect(context.Background(), "ffprobe", ""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestInspectMissingBinary(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if _, err := probe.Inspect(context.Background(), "ffprobe", "clip.mp4"); err == nil {
		t.Fatal("expected error for missing binary")
	}
}

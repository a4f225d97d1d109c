package compress

import (
	"context"
	"image"
	"os"
	"path/filepath"
	"testing"

	"imgpack/internal/config"
	"imgpack/internal/media"
	"imgpack/internal/testsupport"
)

func testCompressConfig() config.Compress {
	cfg := config.Default().Compress
	cfg.Enabled = true
	return cfg
}

func stubBinary(t *testing.T, dir, name, script string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(script), 0o755); err != nil {
		t.Fatalf("writing stub %s: %v", name, err)
	}
}

// stubTools installs ffmpeg/ffprobe stand-ins on PATH. The ffprobe stub
// reports the given format bitrate; the ffmpeg stub writes a one-byte
// output file.
func stubTools(t *testing.T, bitRate string) {
	t.Helper()
	dir := t.TempDir()
	stubBinary(t, dir, "ffprobe", "#!/bin/sh\nprintf '{\"format\":{\"bit_rate\":\""+bitRate+"\"}}'\n")
	stubBinary(t, dir, "ffmpeg", "#!/bin/sh\nfor arg in \"$@\"; do last=$arg; done\nprintf 'x' > \"$last\"\n")
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func imageSize(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode config %s: %v", path, err)
	}
	return cfg.Width, cfg.Height
}

func fileSize(t *testing.T, path string) int64 {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	return info.Size()
}

func TestImageDownscaledWithinBounds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.jpg")
	testsupport.WriteJPEG(t, path, 400, 300, 95)
	before := fileSize(t, path)

	cfg := testCompressConfig()
	cfg.ImageMaxWidth = 200
	cfg.ImageMaxHeight = 200

	shrinker := newImageShrinker(cfg)
	result, err := shrinker.Compress(context.Background(), path)
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}
	if !result.Changed {
		t.Fatalf("Compress() left the file unchanged: %+v", result)
	}

	width, height := imageSize(t, path)
	if width != 200 || height != 150 {
		t.Fatalf("dimensions = %dx%d, want 200x150", width, height)
	}
	if after := fileSize(t, path); after >= before {
		t.Fatalf("size %d not below original %d", after, before)
	}
}

func TestImageNeverUpscaled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.png")
	testsupport.WritePNG(t, path, 100, 80)

	shrinker := newImageShrinker(testCompressConfig())
	if _, err := shrinker.Compress(context.Background(), path); err != nil {
		t.Fatalf("Compress() error = %v", err)
	}

	width, height := imageSize(t, path)
	if width != 100 || height != 80 {
		t.Fatalf("dimensions = %dx%d, want the original 100x80", width, height)
	}
}

func TestImageKeptWhenRewriteIsLarger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.jpg")
	testsupport.WriteJPEG(t, path, 60, 60, 5)
	original, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading original: %v", err)
	}

	shrinker := newImageShrinker(testCompressConfig())
	result, err := shrinker.Compress(context.Background(), path)
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}
	if result.Changed {
		t.Fatalf("low quality source should not shrink at quality %d", testCompressConfig().JPEGQuality)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}
	if string(after) != string(original) {
		t.Fatal("file content changed despite Changed=false")
	}
}

func TestImageFormatWithoutEncoderPassesThrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pic.webp")
	testsupport.WriteFile(t, path, 128)

	shrinker := newImageShrinker(testCompressConfig())
	result, err := shrinker.Compress(context.Background(), path)
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}
	if result.Changed || result.Reason == "" {
		t.Fatalf("expected pass-through with a reason, got %+v", result)
	}
}

func TestMissingFFmpegDegradesToNoop(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	cfg := testCompressConfig()
	tr := New(cfg, nil)

	path := filepath.Join(t.TempDir(), "song.mp3")
	testsupport.WriteFile(t, path, 4096)
	before := fileSize(t, path)

	result, err := tr.Compress(context.Background(), path, media.CategoryAudio)
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}
	if result.Changed {
		t.Fatal("audio should pass through without ffmpeg")
	}
	if fileSize(t, path) != before {
		t.Fatal("file modified without ffmpeg")
	}
}

func TestAudioTranscodedWhenSmaller(t *testing.T) {
	stubTools(t, "320000")

	tr := New(testCompressConfig(), nil)
	path := filepath.Join(t.TempDir(), "song.mp3")
	testsupport.WriteFile(t, path, 4096)

	result, err := tr.Compress(context.Background(), path, media.CategoryAudio)
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}
	if !result.Changed {
		t.Fatalf("expected replacement, got %+v", result)
	}
	if got := fileSize(t, path); got != 1 {
		t.Fatalf("file size = %d, want the stub's 1 byte", got)
	}
}

func TestAudioSkippedBelowBitrateThreshold(t *testing.T) {
	stubTools(t, "96000")

	tr := New(testCompressConfig(), nil)
	path := filepath.Join(t.TempDir(), "song.mp3")
	testsupport.WriteFile(t, path, 4096)
	before := fileSize(t, path)

	result, err := tr.Compress(context.Background(), path, media.CategoryAudio)
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}
	if result.Changed {
		t.Fatal("low bitrate file should be skipped")
	}
	if fileSize(t, path) != before {
		t.Fatal("file modified despite skip")
	}
}

func TestLosslessAudioContainerPassesThrough(t *testing.T) {
	stubTools(t, "900000")

	tr := New(testCompressConfig(), nil)
	path := filepath.Join(t.TempDir(), "master.flac")
	testsupport.WriteFile(t, path, 4096)

	result, err := tr.Compress(context.Background(), path, media.CategoryAudio)
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}
	if result.Changed {
		t.Fatal("flac should pass through")
	}
}

func TestNoopTranscoder(t *testing.T) {
	result, err := Noop{}.Compress(context.Background(), "whatever.jpg", media.CategoryImage)
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}
	if result.Changed {
		t.Fatal("noop must not report changes")
	}
}

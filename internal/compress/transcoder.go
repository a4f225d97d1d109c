package compress

import (
	"context"
	"log/slog"

	"imgpack/internal/config"
	"imgpack/internal/deps"
	"imgpack/internal/logging"
	"imgpack/internal/media"
)

// Result reports what one Compress call did to a file.
type Result struct {
	// Changed is true when the file on disk was replaced.
	Changed bool
	// Reason explains why the file was left alone when Changed is false.
	Reason       string
	OriginalSize int64
	FinalSize    int64
}

// Transcoder rewrites an organized file in place. Implementations keep the
// original whenever rewriting would not shrink it, and never return a
// partially written file.
type Transcoder interface {
	Compress(ctx context.Context, path string, category media.Category) (Result, error)
}

// transcoder dispatches by category: images in process, audio and video
// through ffmpeg.
type transcoder struct {
	images *imageShrinker
	av     *ffmpegTranscoder
	logger *slog.Logger
}

// New builds the compressor for the run. When ffmpeg or ffprobe cannot be
// found, audio and video pass through untouched with a warning; images are
// still compressed in process.
func New(cfg config.Compress, logger *slog.Logger) Transcoder {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logging.WithComponent(logger, "compressor")

	t := &transcoder{
		images: newImageShrinker(cfg),
		logger: logger,
	}

	ffmpeg, haveFFmpeg := deps.Lookup(cfg.FFmpeg)
	ffprobe, haveFFprobe := deps.Lookup(cfg.FFprobe)
	if haveFFmpeg && haveFFprobe {
		t.av = newFFmpegTranscoder(cfg, ffmpeg, ffprobe)
	} else {
		logger.Warn("ffmpeg or ffprobe not found, audio and video files will be kept as-is", logging.Args(
			logging.String("ffmpeg", cfg.FFmpeg),
			logging.String("ffprobe", cfg.FFprobe),
		)...)
	}
	return t
}

func (t *transcoder) Compress(ctx context.Context, path string, category media.Category) (Result, error) {
	switch category {
	case media.CategoryImage:
		return t.images.Compress(ctx, path)
	case media.CategoryAudio, media.CategoryVideo:
		if t.av == nil {
			return Result{Reason: "ffmpeg unavailable"}, nil
		}
		return t.av.Compress(ctx, path, category)
	default:
		return Result{Reason: "unknown category"}, nil
	}
}

// Noop leaves every file untouched. It stands in for the real compressor
// when compression was not requested, so the pipeline takes the same code
// path either way.
type Noop struct{}

func (Noop) Compress(context.Context, string, media.Category) (Result, error) {
	return Result{Reason: "compression disabled"}, nil
}

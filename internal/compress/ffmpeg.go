package compress

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"imgpack/internal/config"
	"imgpack/internal/media"
	"imgpack/internal/media/probe"
)

// ffmpegTranscoder re-encodes audio and video through the ffmpeg binary,
// keeping each file's container.
type ffmpegTranscoder struct {
	cfg     config.Compress
	ffmpeg  string
	ffprobe string
}

func newFFmpegTranscoder(cfg config.Compress, ffmpeg, ffprobe string) *ffmpegTranscoder {
	return &ffmpegTranscoder{cfg: cfg, ffmpeg: ffmpeg, ffprobe: ffprobe}
}

func (t *ffmpegTranscoder) Compress(ctx context.Context, path string, category media.Category) (Result, error) {
	args, ok := t.codecArgs(path, category)
	if !ok {
		return Result{Reason: "container not supported"}, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("stat media file: %w", err)
	}

	probed, err := probe.Inspect(ctx, t.ffprobe, path)
	if err != nil {
		return Result{}, err
	}
	if kbps := probed.BitRateKbps(); kbps > 0 && kbps <= t.minKbps(category) {
		return Result{
			Reason:       "bitrate already below threshold",
			OriginalSize: info.Size(),
			FinalSize:    info.Size(),
		}, nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	tmp := filepath.Join(filepath.Dir(path), "."+uuid.NewString()+ext)

	cmdArgs := []string{"-y", "-hide_banner", "-loglevel", "error", "-i", path}
	cmdArgs = append(cmdArgs, args...)
	cmdArgs = append(cmdArgs, tmp)

	cmd := exec.CommandContext(ctx, t.ffmpeg, cmdArgs...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		_ = os.Remove(tmp)
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return Result{}, fmt.Errorf("ffmpeg: %w: %s", err, detail)
		}
		return Result{}, fmt.Errorf("ffmpeg: %w", err)
	}

	return replaceIfSmaller(path, tmp, info.Size())
}

func (t *ffmpegTranscoder) minKbps(category media.Category) int {
	if category == media.CategoryVideo {
		return t.cfg.MinVideoKbps
	}
	return t.cfg.MinAudioKbps
}

// codecArgs maps the file's container to encoder flags. Containers that
// cannot hold the target codec, and lossless audio, pass through.
func (t *ffmpegTranscoder) codecArgs(path string, category media.Category) ([]string, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	switch category {
	case media.CategoryVideo:
		switch ext {
		case ".mp4", ".mov", ".m4v", ".mkv":
			return []string{
				"-c:v", "libx264",
				"-crf", strconv.Itoa(t.cfg.VideoCRF),
				"-preset", t.cfg.VideoPreset,
				"-c:a", "aac",
				"-b:a", t.cfg.AudioBitrate,
			}, true
		}
	case media.CategoryAudio:
		switch ext {
		case ".mp3":
			return []string{"-c:a", "libmp3lame", "-b:a", t.cfg.AudioBitrate}, true
		case ".m4a", ".aac":
			return []string{"-c:a", "aac", "-b:a", t.cfg.AudioBitrate}, true
		case ".ogg", ".opus":
			return []string{"-c:a", "libopus", "-b:a", t.cfg.AudioBitrate}, true
		}
	}
	return nil, false
}

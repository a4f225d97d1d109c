package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Output controls where the gallery tree is materialized.
type Output struct {
	DirPrefix   string `toml:"dir_prefix"`
	BaseDir     string `toml:"base_dir"`
	OpenBrowser bool   `toml:"open_browser"`
}

// Scan controls directory traversal.
type Scan struct {
	Recursive     bool `toml:"recursive"`
	MaxDepth      int  `toml:"max_depth"`
	IncludeHidden bool `toml:"include_hidden"`
}

// Tabs controls bucket assignment for scanned files.
type Tabs struct {
	IncludeAll bool   `toml:"include_all"`
	OtherTab   string `toml:"other_tab"`
}

// Compress controls the optional in-place media compression pass.
type Compress struct {
	Enabled        bool   `toml:"enabled"`
	ImageMaxWidth  int    `toml:"image_max_width"`
	ImageMaxHeight int    `toml:"image_max_height"`
	JPEGQuality    int    `toml:"jpeg_quality"`
	VideoCRF       int    `toml:"video_crf"`
	VideoPreset    string `toml:"video_preset"`
	AudioBitrate   string `toml:"audio_bitrate"`
	MinVideoKbps   int    `toml:"min_video_kbps"`
	MinAudioKbps   int    `toml:"min_audio_kbps"`
	FFmpeg         string `toml:"ffmpeg"`
	FFprobe        string `toml:"ffprobe"`
}

// Gallery controls the rendered HTML page.
type Gallery struct {
	Title   string `toml:"title"`
	Columns int    `toml:"columns"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for imgpack.
type Config struct {
	Output   Output   `toml:"output"`
	Scan     Scan     `toml:"scan"`
	Tabs     Tabs     `toml:"tabs"`
	Compress Compress `toml:"compress"`
	Gallery  Gallery  `toml:"gallery"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/imgpack/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The boolean reports
// whether a config file was actually found.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("imgpack.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	var err error
	if c.Output.BaseDir, err = expandPath(c.Output.BaseDir); err != nil {
		return fmt.Errorf("output.base_dir: %w", err)
	}
	c.Output.DirPrefix = strings.TrimSpace(c.Output.DirPrefix)
	if c.Output.DirPrefix == "" {
		c.Output.DirPrefix = defaultDirPrefix
	}
	c.Tabs.OtherTab = strings.TrimSpace(c.Tabs.OtherTab)
	c.Compress.VideoPreset = strings.ToLower(strings.TrimSpace(c.Compress.VideoPreset))
	c.Compress.AudioBitrate = strings.ToLower(strings.TrimSpace(c.Compress.AudioBitrate))
	c.Compress.FFmpeg = strings.TrimSpace(c.Compress.FFmpeg)
	if c.Compress.FFmpeg == "" {
		c.Compress.FFmpeg = defaultFFmpegBinary
	}
	c.Compress.FFprobe = strings.TrimSpace(c.Compress.FFprobe)
	if c.Compress.FFprobe == "" {
		c.Compress.FFprobe = defaultFFprobeBinary
	}
	c.Gallery.Title = strings.TrimSpace(c.Gallery.Title)
	if c.Gallery.Title == "" {
		c.Gallery.Title = defaultGalleryTitle
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

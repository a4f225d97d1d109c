package config

import (
	"errors"
	"fmt"
	"regexp"
)

var videoPresets = map[string]struct{}{
	"ultrafast": {}, "superfast": {}, "veryfast": {}, "faster": {}, "fast": {},
	"medium": {}, "slow": {}, "slower": {}, "veryslow": {},
}

var bitratePattern = regexp.MustCompile(`^[0-9]+k?$`)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateCompress(); err != nil {
		return err
	}
	if err := c.validateGallery(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateScan() error {
	if c.Scan.MaxDepth < 1 {
		return errors.New("scan.max_depth must be at least 1")
	}
	return nil
}

func (c *Config) validateCompress() error {
	if c.Compress.ImageMaxWidth < 1 || c.Compress.ImageMaxHeight < 1 {
		return errors.New("compress.image_max_width and compress.image_max_height must be positive")
	}
	if c.Compress.JPEGQuality < 1 || c.Compress.JPEGQuality > 100 {
		return errors.New("compress.jpeg_quality must be between 1 and 100")
	}
	if c.Compress.VideoCRF < 0 || c.Compress.VideoCRF > 51 {
		return errors.New("compress.video_crf must be between 0 and 51")
	}
	if _, ok := videoPresets[c.Compress.VideoPreset]; !ok {
		return fmt.Errorf("compress.video_preset: unknown preset %q", c.Compress.VideoPreset)
	}
	if !bitratePattern.MatchString(c.Compress.AudioBitrate) {
		return fmt.Errorf("compress.audio_bitrate: invalid bitrate %q", c.Compress.AudioBitrate)
	}
	if c.Compress.MinVideoKbps < 0 || c.Compress.MinAudioKbps < 0 {
		return errors.New("compress.min_video_kbps and compress.min_audio_kbps must not be negative")
	}
	return nil
}

func (c *Config) validateGallery() error {
	if c.Gallery.Columns < 1 || c.Gallery.Columns > 8 {
		return errors.New("gallery.columns must be between 1 and 8")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}
	return nil
}

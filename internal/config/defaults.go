package config

const (
	defaultDirPrefix      = "imgshare"
	defaultBaseDir        = "."
	defaultMaxDepth       = 1
	defaultOtherTab       = "other"
	defaultImageMaxWidth  = 1920
	defaultImageMaxHeight = 1920
	defaultJPEGQuality    = 85
	defaultVideoCRF       = 23
	defaultVideoPreset    = "medium"
	defaultAudioBitrate   = "128k"
	defaultMinVideoKbps   = 1500
	defaultMinAudioKbps   = 192
	defaultFFmpegBinary   = "ffmpeg"
	defaultFFprobeBinary  = "ffprobe"
	defaultGalleryTitle   = "Image Gallery"
	defaultGalleryColumns = 2
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Output: Output{
			DirPrefix:   defaultDirPrefix,
			BaseDir:     defaultBaseDir,
			OpenBrowser: true,
		},
		Scan: Scan{
			MaxDepth: defaultMaxDepth,
		},
		Tabs: Tabs{
			OtherTab: defaultOtherTab,
		},
		Compress: Compress{
			ImageMaxWidth:  defaultImageMaxWidth,
			ImageMaxHeight: defaultImageMaxHeight,
			JPEGQuality:    defaultJPEGQuality,
			VideoCRF:       defaultVideoCRF,
			VideoPreset:    defaultVideoPreset,
			AudioBitrate:   defaultAudioBitrate,
			MinVideoKbps:   defaultMinVideoKbps,
			MinAudioKbps:   defaultMinAudioKbps,
			FFmpeg:         defaultFFmpegBinary,
			FFprobe:        defaultFFprobeBinary,
		},
		Gallery: Gallery{
			Title:   defaultGalleryTitle,
			Columns: defaultGalleryColumns,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

package media

import (
	"mime"
	"path/filepath"
	"strings"
)

// Category describes the broad kind of a media file, inferred from its
// extension.
type Category string

const (
	CategoryImage   Category = "image"
	CategoryAudio   Category = "audio"
	CategoryVideo   Category = "video"
	CategoryUnknown Category = "unknown"
)

var categoryByExtension = map[string]Category{
	".jpg":  CategoryImage,
	".jpeg": CategoryImage,
	".png":  CategoryImage,
	".gif":  CategoryImage,
	".webp": CategoryImage,
	".bmp":  CategoryImage,
	".tif":  CategoryImage,
	".tiff": CategoryImage,
	".svg":  CategoryImage,
	".avif": CategoryImage,

	".mp3":  CategoryAudio,
	".m4a":  CategoryAudio,
	".aac":  CategoryAudio,
	".flac": CategoryAudio,
	".ogg":  CategoryAudio,
	".oga":  CategoryAudio,
	".opus": CategoryAudio,
	".wav":  CategoryAudio,
	".wma":  CategoryAudio,

	".mp4":  CategoryVideo,
	".m4v":  CategoryVideo,
	".mov":  CategoryVideo,
	".mkv":  CategoryVideo,
	".webm": CategoryVideo,
	".avi":  CategoryVideo,
	".wmv":  CategoryVideo,
	".mpg":  CategoryVideo,
	".mpeg": CategoryVideo,
}

// mimeFallback covers extensions the platform mime database may not know.
var mimeFallback = map[string]string{
	".mkv":  "video/x-matroska",
	".m4v":  "video/x-m4v",
	".opus": "audio/ogg",
	".oga":  "audio/ogg",
	".flac": "audio/flac",
	".avif": "image/avif",
}

// Detect returns the category for a file name based on its extension.
func Detect(name string) Category {
	ext := strings.ToLower(filepath.Ext(name))
	if cat, ok := categoryByExtension[ext]; ok {
		return cat
	}
	return CategoryUnknown
}

// IsMedia reports whether the file name carries a known media extension.
func IsMedia(name string) bool {
	return Detect(name) != CategoryUnknown
}

// MIMEType returns the MIME type for a file name. Unknown extensions map to
// application/octet-stream so gallery source elements always have a type.
func MIMEType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if typ := mime.TypeByExtension(ext); typ != "" {
		return typ
	}
	if typ, ok := mimeFallback[ext]; ok {
		return typ
	}
	return "application/octet-stream"
}

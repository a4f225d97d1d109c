package media

import (
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// CaptureTime reads the EXIF original timestamp from an image file. It is
// best effort: files without EXIF data, non-JPEG images, and read errors all
// report ok=false.
func CaptureTime(path string) (time.Time, bool) {
	if Detect(path) != CategoryImage {
		return time.Time{}, false
	}
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, false
	}
	defer f.Close()

	meta, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, false
	}
	taken, err := meta.DateTime()
	if err != nil {
		return time.Time{}, false
	}
	return taken, true
}

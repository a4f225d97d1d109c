package compress

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"imgpack/internal/config"
)

// imageShrinker downscales and re-encodes images in process. The rewritten
// file replaces the original only when it is smaller.
type imageShrinker struct {
	maxWidth  int
	maxHeight int
	quality   int
}

func newImageShrinker(cfg config.Compress) *imageShrinker {
	return &imageShrinker{
		maxWidth:  cfg.ImageMaxWidth,
		maxHeight: cfg.ImageMaxHeight,
		quality:   cfg.JPEGQuality,
	}
}

type encodeFunc func(w io.Writer, img image.Image) error

// encoderFor picks the encoder matching the file's extension so the file
// keeps its format. Formats without an encoder (webp, svg, gif animations)
// are left untouched.
func (s *imageShrinker) encoderFor(path string) encodeFunc {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: s.quality})
		}
	case ".png":
		return func(w io.Writer, img image.Image) error {
			encoder := png.Encoder{CompressionLevel: png.BestCompression}
			return encoder.Encode(w, img)
		}
	case ".bmp":
		return bmp.Encode
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}
	default:
		return nil
	}
}

func (s *imageShrinker) Compress(ctx context.Context, path string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	encode := s.encoderFor(path)
	if encode == nil {
		return Result{Reason: "no encoder for format"}, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("stat image: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open image: %w", err)
	}
	img, _, err := image.Decode(f)
	_ = f.Close()
	if err != nil {
		return Result{}, fmt.Errorf("decode image: %w", err)
	}

	tmp := filepath.Join(filepath.Dir(path), "."+uuid.NewString()+".tmp")
	out, err := os.Create(tmp)
	if err != nil {
		return Result{}, fmt.Errorf("create temp image: %w", err)
	}
	err = encode(out, s.resize(img))
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmp)
		return Result{}, fmt.Errorf("encode image: %w", err)
	}

	return replaceIfSmaller(path, tmp, info.Size())
}

// resize scales the image down so neither dimension exceeds the configured
// maxima, preserving aspect ratio. Images inside the bounds pass through
// unscaled.
func (s *imageShrinker) resize(img image.Image) image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return img
	}

	scale := 1.0
	if s.maxWidth > 0 && width > s.maxWidth {
		scale = float64(s.maxWidth) / float64(width)
	}
	if s.maxHeight > 0 && height > s.maxHeight {
		if h := float64(s.maxHeight) / float64(height); h < scale {
			scale = h
		}
	}
	if scale >= 1.0 {
		return img
	}

	dstWidth := int(float64(width) * scale)
	dstHeight := int(float64(height) * scale)
	if dstWidth < 1 {
		dstWidth = 1
	}
	if dstHeight < 1 {
		dstHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstWidth, dstHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}

// replaceIfSmaller swaps the original for the rewritten temp file when the
// rewrite saved space, and discards it otherwise.
func replaceIfSmaller(path, tmp string, originalSize int64) (Result, error) {
	info, err := os.Stat(tmp)
	if err != nil {
		_ = os.Remove(tmp)
		return Result{}, fmt.Errorf("stat temp file: %w", err)
	}
	if info.Size() >= originalSize {
		_ = os.Remove(tmp)
		return Result{
			Reason:       "rewrite not smaller",
			OriginalSize: originalSize,
			FinalSize:    originalSize,
		}, nil
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return Result{}, fmt.Errorf("replace original: %w", err)
	}
	return Result{
		Changed:      true,
		OriginalSize: originalSize,
		FinalSize:    info.Size(),
	}, nil
}

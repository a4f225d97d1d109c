package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"imgpack/internal/archive"
	"imgpack/internal/compress"
	"imgpack/internal/config"
	"imgpack/internal/gallery"
	"imgpack/internal/logging"
	"imgpack/internal/organize"
	"imgpack/internal/scan"
)

// Options are the per-run knobs, merged from CLI flags and config by the
// caller.
type Options struct {
	// Root is the directory to scan.
	Root string
	// Patterns are the requested tab patterns, in order.
	Patterns []string
	// IncludeAll materializes the "all" bucket.
	IncludeAll bool
	// Compress rewrites organized files in place.
	Compress bool
	// Zip archives the finished tree.
	Zip bool
	// MaxDepth limits the scan; <= 0 means unlimited.
	MaxDepth int
	// Timestamp names the output directory; zero means now.
	Timestamp time.Time
}

// Runner executes the stages in order: scan, organize, compress, render,
// package. Each stage runs once; per-file failures are collected into the
// summary instead of aborting.
type Runner struct {
	cfg    *config.Config
	opts   Options
	logger *slog.Logger
}

func New(cfg *config.Config, opts Options, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{cfg: cfg, opts: opts, logger: logger}
}

// OutputDir returns the timestamped directory the run writes into.
func (r *Runner) OutputDir() string {
	ts := r.opts.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	name := fmt.Sprintf("%s_%s", r.cfg.Output.DirPrefix, ts.Format("20060102_1504"))
	return filepath.Join(r.cfg.Output.BaseDir, name)
}

func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	started := time.Now()

	files, err := r.scanFiles(ctx)
	if err != nil {
		return nil, err
	}

	outputDir := r.OutputDir()
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, Wrap(ErrTransient, "organize", "create output dir", outputDir, err)
	}

	// Two runs landing on the same minute share an output directory; the
	// lock keeps them from interleaving writes.
	lockPath := outputDir + ".lock"
	lock := flock.New(lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, Wrap(ErrTransient, "organize", "lock output dir", lockPath, err)
	}
	if !locked {
		return nil, Wrap(ErrTransient, "organize", "lock output dir", "another run is writing "+outputDir, nil)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lockPath)
	}()

	organized, err := r.organize(ctx, outputDir, files)
	if err != nil {
		return nil, err
	}
	if organized.Manifest.TotalEntries() == 0 {
		_ = os.RemoveAll(outputDir)
		return nil, Wrap(ErrScan, "organize", "", "no media files found under "+r.opts.Root, nil)
	}

	summary := &Summary{
		OutputDir: outputDir,
		Scanned:   len(files),
		Copied:    organized.Copied,
		Excluded:  len(organized.Excluded),
		Skipped:   organized.Skipped,
	}
	summary.collectTabs(organized.Manifest)
	summary.collectExtensions(organized.Manifest)

	if err := r.compressFiles(ctx, outputDir, &organized.Manifest, summary); err != nil {
		return nil, err
	}

	indexPath, err := gallery.WriteIndex(outputDir, organized.Manifest, gallery.Options{
		Title:   r.cfg.Gallery.Title,
		Columns: r.cfg.Gallery.Columns,
	})
	if err != nil {
		return nil, Wrap(ErrTransient, "render", "write index", "", err)
	}
	summary.IndexPath = indexPath

	if r.opts.Zip {
		archivePath := outputDir + ".zip"
		if err := archive.ZipDir(archivePath, outputDir); err != nil {
			// The unzipped gallery is still usable.
			r.logger.Warn("archiving failed", logging.Args(
				logging.String("archive", archivePath),
				logging.Error(err),
			)...)
		} else {
			summary.ArchivePath = archivePath
		}
	}

	summary.Elapsed = time.Since(started)
	return summary, nil
}

func (r *Runner) scanFiles(ctx context.Context) ([]scan.File, error) {
	scanner := scan.New(r.opts.Root, r.opts.MaxDepth, r.cfg.Scan.IncludeHidden, r.logger)
	files, err := scanner.Scan(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, Wrap(ErrScan, "scan", "", r.opts.Root, err)
	}
	if len(files) == 0 {
		return nil, Wrap(ErrScan, "scan", "", "no files found under "+r.opts.Root, nil)
	}
	return files, nil
}

func (r *Runner) organize(ctx context.Context, outputDir string, files []scan.File) (organize.Result, error) {
	organizer := organize.New(outputDir, organize.Options{
		Patterns:   r.opts.Patterns,
		IncludeAll: r.opts.IncludeAll,
		OtherTab:   r.cfg.Tabs.OtherTab,
	}, r.logger)
	result, err := organizer.Organize(ctx, files)
	if err != nil {
		if ctx.Err() != nil {
			return result, err
		}
		return result, Wrap(ErrTransient, "organize", "", "", err)
	}
	return result, nil
}

// compressFiles rewrites every organized copy in place. Transcode failures
// keep the original file and the run continues.
func (r *Runner) compressFiles(ctx context.Context, outputDir string, manifest *gallery.Manifest, summary *Summary) error {
	var transcoder compress.Transcoder = compress.Noop{}
	if r.opts.Compress {
		transcoder = compress.New(r.cfg.Compress, r.logger)
	}
	logger := logging.WithComponent(r.logger, "compressor")

	for ti := range manifest.Tabs {
		for ei := range manifest.Tabs[ti].Entries {
			if err := ctx.Err(); err != nil {
				return err
			}
			entry := &manifest.Tabs[ti].Entries[ei]
			path := filepath.Join(outputDir, filepath.FromSlash(entry.RelPath))
			result, err := transcoder.Compress(ctx, path, entry.Category)
			if err != nil {
				if ctx.Err() != nil {
					return err
				}
				logger.Warn("compression failed, keeping original", logging.Args(
					logging.String("file", entry.RelPath),
					logging.Error(Wrap(ErrExternalTool, "compress", "", entry.RelPath, err)),
				)...)
				continue
			}
			if result.Changed {
				summary.Compressed++
				summary.SavedBytes += result.OriginalSize - result.FinalSize
				entry.Size = result.FinalSize
			}
		}
	}
	return nil
}

package organize

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"imgpack/internal/fileutil"
	"imgpack/internal/gallery"
	"imgpack/internal/logging"
	"imgpack/internal/media"
	"imgpack/internal/scan"
	"imgpack/internal/textutil"
)

// AllTab is the display name of the bucket holding every scanned file.
const AllTab = "all"

// Options selects which tabs the organizer builds.
type Options struct {
	// Patterns are the user's tab patterns in request order. Empty means
	// tabs are derived from the populated media categories.
	Patterns []string
	// IncludeAll adds an "all" bucket containing every scanned file,
	// including files of unknown category.
	IncludeAll bool
	// OtherTab names the bucket for media files matching no pattern.
	OtherTab string
}

// Skipped records one file dropped from one tab because its copy failed.
type Skipped struct {
	Path   string
	Tab    string
	Reason string
}

// Result summarizes one organizer run.
type Result struct {
	Manifest gallery.Manifest
	// Copied counts unique source files placed into at least one tab.
	Copied int
	// Excluded lists unknown-category files left out of the run entirely.
	Excluded []string
	// Skipped lists per-tab copy failures.
	Skipped []Skipped
}

// Organizer copies scanned files into media/<tab>/ directories under the
// output root and builds the gallery manifest.
type Organizer struct {
	outputDir string
	opts      Options
	logger    *slog.Logger
}

func New(outputDir string, opts Options, logger *slog.Logger) *Organizer {
	if logger == nil {
		logger = logging.NewNop()
	}
	if opts.OtherTab == "" {
		opts.OtherTab = "other"
	}
	return &Organizer{
		outputDir: outputDir,
		opts:      opts,
		logger:    logging.WithComponent(logger, "organizer"),
	}
}

type bucket struct {
	name  string
	slug  string
	files []scan.File
}

// Organize copies every file into each tab directory it belongs to. A copy
// failure drops the file from that tab with a warning; it never aborts the
// run.
func (o *Organizer) Organize(ctx context.Context, files []scan.File) (Result, error) {
	buckets := o.assign(files)

	result := Result{}
	copied := make(map[string]bool)
	for _, file := range files {
		if media.Detect(file.Name) == media.CategoryUnknown && !o.opts.IncludeAll {
			result.Excluded = append(result.Excluded, file.Path)
		}
	}

	for _, b := range buckets {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		dir := filepath.Join(o.outputDir, "media", b.slug)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return result, fmt.Errorf("creating tab directory %s: %w", dir, err)
		}

		tab := gallery.Tab{Name: b.name, Slug: b.slug}
		for _, file := range b.files {
			if err := ctx.Err(); err != nil {
				return result, err
			}
			dst, err := fileutil.UniquePath(dir, file.Name)
			if err == nil {
				err = fileutil.CopyFile(file.Path, dst)
			}
			if err != nil {
				o.logger.Warn("copy failed, skipping file", logging.Args(
					logging.String("file", file.Path),
					logging.String("tab", b.name),
					logging.Error(err),
				)...)
				result.Skipped = append(result.Skipped, Skipped{
					Path:   file.Path,
					Tab:    b.name,
					Reason: err.Error(),
				})
				continue
			}
			copied[file.Path] = true
			tab.Entries = append(tab.Entries, o.entry(file, b.slug, dst))
		}
		gallery.SortEntries(tab.Entries)
		result.Manifest.Tabs = append(result.Manifest.Tabs, tab)
		o.logger.Info("organized tab", logging.Args(
			logging.String("tab", b.name),
			logging.Int("files", len(tab.Entries)),
		)...)
	}

	result.Copied = len(copied)
	return result, nil
}

func (o *Organizer) entry(file scan.File, slug, dst string) gallery.Entry {
	base := filepath.Base(dst)
	e := gallery.Entry{
		Name:     base,
		RelPath:  path.Join("media", slug, base),
		Category: media.Detect(file.Name),
		MIME:     media.MIMEType(file.Name),
		Size:     file.Size,
	}
	if e.Category == media.CategoryImage {
		if taken, ok := media.CaptureTime(file.Path); ok {
			e.TakenAt = taken
		}
	}
	return e
}

// assign maps every file to its buckets. Bucket order fixes tab order in
// the gallery: "all" first, then pattern tabs in request order (or the
// populated categories when no patterns were given), then the other tab.
func (o *Organizer) assign(files []scan.File) []bucket {
	members := make(map[string][]scan.File)
	add := func(name string, file scan.File) {
		members[name] = append(members[name], file)
	}

	for _, file := range files {
		if o.opts.IncludeAll {
			add(AllTab, file)
		}
		category := media.Detect(file.Name)
		if category == media.CategoryUnknown {
			continue
		}
		if len(o.opts.Patterns) == 0 {
			add(string(category), file)
			continue
		}
		tabs := media.MatchingTabs(file.Name, o.opts.Patterns)
		if len(tabs) == 0 {
			add(o.opts.OtherTab, file)
			continue
		}
		for _, tab := range tabs {
			add(tab, file)
		}
	}

	var buckets []bucket
	slugs := make(map[string]bool)
	bucketed := make(map[string]bool)
	appendBucket := func(name string) {
		if bucketed[name] || len(members[name]) == 0 {
			return
		}
		bucketed[name] = true
		slug := textutil.Slug(name, "tab")
		for i := 2; slugs[slug]; i++ {
			slug = fmt.Sprintf("%s-%d", textutil.Slug(name, "tab"), i)
		}
		slugs[slug] = true
		buckets = append(buckets, bucket{name: name, slug: slug, files: members[name]})
	}

	if o.opts.IncludeAll {
		appendBucket(AllTab)
	}
	if len(o.opts.Patterns) == 0 {
		// Categories in a fixed order so reruns produce identical tabs.
		for _, category := range []media.Category{media.CategoryImage, media.CategoryAudio, media.CategoryVideo} {
			appendBucket(string(category))
		}
	} else {
		seen := make(map[string]bool)
		for _, pattern := range o.opts.Patterns {
			key := strings.ToLower(strings.TrimSpace(pattern))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			appendBucket(pattern)
		}
		appendBucket(o.opts.OtherTab)
	}
	return buckets
}

package gallery

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed template.html
var pageTemplate string

// Options controls page-level presentation.
type Options struct {
	Title   string
	Columns int
}

type tabView struct {
	Name    string
	ID      string
	Count   int
	Active  bool
	Entries []entryView
}

type entryView struct {
	Name    string
	RelPath string
	Kind    string
	Label   string
	MIME    string
	TakenAt string
}

type pageView struct {
	Title   string
	Columns int
	Tabs    []tabView
}

var tmpl = template.Must(template.New("gallery").Parse(pageTemplate))

// Render writes the gallery page for the manifest. Output is a pure function
// of the manifest and options.
func Render(w io.Writer, manifest Manifest, opts Options) error {
	if opts.Title == "" {
		opts.Title = "Image Gallery"
	}
	if opts.Columns < 1 {
		opts.Columns = 2
	}

	view := pageView{Title: opts.Title, Columns: opts.Columns}
	for i, tab := range manifest.Tabs {
		tv := tabView{
			Name:   tab.Name,
			ID:     tab.Slug,
			Count:  len(tab.Entries),
			Active: i == 0,
		}
		for _, entry := range tab.Entries {
			ev := entryView{
				Name:    entry.Name,
				RelPath: entry.RelPath,
				Kind:    string(entry.Category),
				Label:   strings.ToUpper(string(entry.Category)),
				MIME:    entry.MIME,
			}
			if !entry.TakenAt.IsZero() {
				ev.TakenAt = entry.TakenAt.Format(time.DateTime)
			}
			tv.Entries = append(tv.Entries, ev)
		}
		view.Tabs = append(view.Tabs, tv)
	}

	if err := tmpl.Execute(w, view); err != nil {
		return fmt.Errorf("render gallery: %w", err)
	}
	return nil
}

// WriteIndex renders the gallery into index.html at the output root and
// returns its path.
func WriteIndex(outputDir string, manifest Manifest, opts Options) (string, error) {
	path := filepath.Join(outputDir, "index.html")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create index.html: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	if err := Render(f, manifest, opts); err != nil {
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("write index.html: %w", err)
	}
	return path, nil
}

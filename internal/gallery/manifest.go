package gallery

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"imgpack/internal/media"
)

// Entry is one organized media file referenced by the gallery page.
type Entry struct {
	// Name is the file name inside the tab directory.
	Name string
	// RelPath is the forward-slash path from index.html to the file.
	RelPath string
	Category media.Category
	MIME     string
	Size     int64
	// TakenAt is the EXIF capture time; zero when unknown.
	TakenAt time.Time
}

// Tab is a named bucket of entries rendered as one gallery pane.
type Tab struct {
	// Name is the display label (the user's pattern, a category, "all",
	// or "other").
	Name string
	// Slug is the directory name under media/ holding the tab's files.
	Slug    string
	Entries []Entry
}

// Manifest is the complete tab-to-file mapping the renderer consumes. Tab
// order and entry order are fixed by the organizer so rendering is
// deterministic.
type Manifest struct {
	Tabs []Tab
}

// TotalEntries counts entries across all tabs, including duplicates caused
// by files matching several patterns.
func (m Manifest) TotalEntries() int {
	total := 0
	for _, tab := range m.Tabs {
		total += len(tab.Entries)
	}
	return total
}

// SortEntries orders entries case-insensitively by name, then by relative
// path for stability when a tab holds collision-renamed duplicates.
func SortEntries(entries []Entry) {
	c := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(entries, func(i, j int) bool {
		switch c.CompareString(entries[i].Name, entries[j].Name) {
		case -1:
			return true
		case 1:
			return false
		default:
			return entries[i].RelPath < entries[j].RelPath
		}
	})
}

package pipeline

import (
	"path/filepath"
	"sort"
	"strings"
	"time"

	"imgpack/internal/gallery"
	"imgpack/internal/organize"
)

// TabCount pairs a tab name with the number of files it holds.
type TabCount struct {
	Name  string
	Count int
}

// ExtensionCount pairs a file extension with how many organized files
// carry it.
type ExtensionCount struct {
	Extension string
	Count     int
}

// Summary is what the CLI reports after a run.
type Summary struct {
	OutputDir   string
	IndexPath   string
	ArchivePath string
	// Scanned counts every file the scanner yielded.
	Scanned int
	// Copied counts unique source files placed into the output tree.
	Copied int
	// Excluded counts unknown-category files left out of the run.
	Excluded int
	// Compressed counts files replaced by a smaller rewrite.
	Compressed int
	SavedBytes int64
	Tabs       []TabCount
	Extensions []ExtensionCount
	Skipped    []organize.Skipped
	Elapsed    time.Duration
}

func (s *Summary) collectTabs(manifest gallery.Manifest) {
	for _, tab := range manifest.Tabs {
		s.Tabs = append(s.Tabs, TabCount{Name: tab.Name, Count: len(tab.Entries)})
	}
}

// collectExtensions tallies organized entries per extension, sorted by
// count then name so the report is stable.
func (s *Summary) collectExtensions(manifest gallery.Manifest) {
	counts := make(map[string]int)
	for _, tab := range manifest.Tabs {
		for _, entry := range tab.Entries {
			ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(entry.Name), "."))
			if ext == "" {
				ext = "(none)"
			}
			counts[ext]++
		}
	}
	result := make([]ExtensionCount, 0, len(counts))
	for ext, count := range counts {
		result = append(result, ExtensionCount{Extension: ext, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Extension < result[j].Extension
	})
	s.Extensions = result
}

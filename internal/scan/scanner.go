package scan

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"imgpack/internal/logging"
)

// File is a single candidate discovered during a scan.
type File struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Scanner walks a root directory up to a depth limit. MaxDepth 1 yields only
// the entries directly under root; 0 or negative means unlimited.
type Scanner struct {
	Root          string
	MaxDepth      int
	IncludeHidden bool

	logger *slog.Logger
}

// New constructs a scanner for the given root.
func New(root string, maxDepth int, includeHidden bool, logger *slog.Logger) *Scanner {
	return &Scanner{
		Root:          root,
		MaxDepth:      maxDepth,
		IncludeHidden: includeHidden,
		logger:        logging.WithComponent(logger, "scanner"),
	}
}

// Scan enumerates regular files under the root in deterministic order. An
// unreadable root is fatal; unreadable subdirectories are logged and skipped.
func (s *Scanner) Scan(ctx context.Context) ([]File, error) {
	info, err := os.Stat(s.Root)
	if err != nil {
		return nil, fmt.Errorf("stat scan root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan root %s is not a directory", s.Root)
	}

	entries, err := os.ReadDir(s.Root)
	if err != nil {
		return nil, fmt.Errorf("read scan root: %w", err)
	}

	var files []File
	if err := s.walk(ctx, s.Root, entries, 1, &files); err != nil {
		return nil, err
	}
	return files, nil
}

func (s *Scanner) walk(ctx context.Context, dir string, entries []fs.DirEntry, depth int, files *[]File) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, entry := range entries {
		name := entry.Name()
		if !s.IncludeHidden && strings.HasPrefix(name, ".") {
			continue
		}
		path := filepath.Join(dir, name)

		if entry.IsDir() {
			if s.MaxDepth > 0 && depth >= s.MaxDepth {
				continue
			}
			children, err := os.ReadDir(path)
			if err != nil {
				s.logger.Warn("skipping unreadable directory", logging.String("path", path), logging.Error(err))
				continue
			}
			if err := s.walk(ctx, path, children, depth+1, files); err != nil {
				return err
			}
			continue
		}

		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			s.logger.Warn("skipping unreadable entry", logging.String("path", path), logging.Error(err))
			continue
		}
		*files = append(*files, File{
			Path:    path,
			Name:    name,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	return nil
}

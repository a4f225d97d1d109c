package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// ZipDir archives the directory rooted at root into dst. Entry names are
// forward-slash paths relative to root's parent, so unzipping recreates the
// gallery directory itself. Walk order is deterministic.
func ZipDir(dst, root string) error {
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating archive: %w", err)
	}
	defer func() {
		_ = out.Close()
	}()

	w := zip.NewWriter(out)
	base := filepath.Dir(root)

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if path == dst {
			return nil
		}
		rel, err := filepath.Rel(base, path)
		if err != nil {
			return err
		}
		return addFile(w, filepath.ToSlash(rel), path)
	})
	if err != nil {
		_ = w.Close()
		return fmt.Errorf("archiving %s: %w", root, err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("finalizing archive: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("writing archive: %w", err)
	}
	return nil
}

func addFile(w *zip.Writer, name, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = name
	header.Method = zip.Deflate

	entry, err := w.CreateHeader(header)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(entry, f)
	return err
}

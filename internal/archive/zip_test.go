package archive

import (
	"archive/zip"
	"io"
	"path/filepath"
	"testing"

	"imgpack/internal/testsupport"
)

func TestZipDirIncludesTreeUnderRootName(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "imgshare_20240601_1200")
	testsupport.WriteFile(t, filepath.Join(root, "index.html"), 64)
	testsupport.WriteFile(t, filepath.Join(root, "media", "jpg", "a.jpg"), 256)

	dst := filepath.Join(base, "imgshare_20240601_1200.zip")
	if err := ZipDir(dst, root); err != nil {
		t.Fatalf("ZipDir() error = %v", err)
	}

	r, err := zip.OpenReader(dst)
	if err != nil {
		t.Fatalf("opening archive: %v", err)
	}
	defer r.Close()

	names := make(map[string]uint64)
	for _, f := range r.File {
		names[f.Name] = f.UncompressedSize64
	}
	if len(names) != 2 {
		t.Fatalf("archive holds %d entries, want 2: %v", len(names), names)
	}
	if _, ok := names["imgshare_20240601_1200/index.html"]; !ok {
		t.Errorf("missing index.html entry: %v", names)
	}
	if size := names["imgshare_20240601_1200/media/jpg/a.jpg"]; size != 256 {
		t.Errorf("a.jpg uncompressed size = %d, want 256", size)
	}
}

func TestZipDirRoundTripsContent(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "out")
	testsupport.WriteFile(t, filepath.Join(root, "media", "all", "b.mp3"), 100)

	dst := filepath.Join(base, "out.zip")
	if err := ZipDir(dst, root); err != nil {
		t.Fatalf("ZipDir() error = %v", err)
	}

	r, err := zip.OpenReader(dst)
	if err != nil {
		t.Fatalf("opening archive: %v", err)
	}
	defer r.Close()

	f, err := r.Open("out/media/all/b.mp3")
	if err != nil {
		t.Fatalf("opening entry: %v", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("reading entry: %v", err)
	}
	if len(data) != 100 || data[0] != 0x42 {
		t.Fatalf("entry content mismatch: %d bytes", len(data))
	}
}

func TestZipDirMissingRoot(t *testing.T) {
	base := t.TempDir()
	err := ZipDir(filepath.Join(base, "x.zip"), filepath.Join(base, "nope"))
	if err == nil {
		t.Fatal("ZipDir() with missing root should fail")
	}
}

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"imgpack/internal/testsupport"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func writeCLIConfig(t *testing.T, baseDir string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	content := fmt.Sprintf("[output]\nbase_dir = %q\nopen_browser = false\n", baseDir)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("output missing %q:\n%s", needle, haystack)
	}
}

func TestBuildCommandProducesGallery(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	input := t.TempDir()
	for _, name := range []string{"a.jpg", "b.mp3", "c.txt"} {
		testsupport.WriteFile(t, filepath.Join(input, name), 64)
	}
	baseDir := t.TempDir()
	cfgPath := writeCLIConfig(t, baseDir)

	out, err := runCLI(t, input, "--tabs", "jpg,mp3", "-c", cfgPath)
	if err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, out)
	}
	requireContains(t, out, "Gallery written to")
	requireContains(t, out, "tab jpg: 1 files")
	requireContains(t, out, "tab mp3: 1 files")

	matches, err := filepath.Glob(filepath.Join(baseDir, "imgshare_*", "index.html"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("index.html matches = %v (err %v)", matches, err)
	}
	galleryDir := filepath.Dir(matches[0])
	if _, err := os.Stat(filepath.Join(galleryDir, "media", "jpg", "a.jpg")); err != nil {
		t.Fatalf("missing organized file: %v", err)
	}
}

func TestBuildCommandFailsOnMissingRoot(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfgPath := writeCLIConfig(t, t.TempDir())

	_, err := runCLI(t, filepath.Join(t.TempDir(), "nope"), "-c", cfgPath)
	if err == nil {
		t.Fatal("Execute() should fail on a missing root")
	}
}

func TestConfigInitCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, err := runCLI(t, "config", "init", "--path", target); err == nil {
		t.Fatal("second init without --overwrite should fail")
	}
	if _, err := runCLI(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("init with --overwrite: %v", err)
	}
}

func TestConfigShowCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := runCLI(t, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "built-in defaults")
	requireContains(t, out, "dir_prefix")
	requireContains(t, out, "imgshare")
}

func TestConfigPathCommand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	out, err := runCLI(t, "config", "path")
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	requireContains(t, out, filepath.Join(home, ".config", "imgpack", "config.toml"))
	requireContains(t, out, "defaults apply")
}

func TestDepsCommandReportsMissingTools(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PATH", t.TempDir())

	out, err := runCLI(t, "deps")
	if err != nil {
		t.Fatalf("deps: %v", err)
	}
	requireContains(t, out, "FFmpeg")
	requireContains(t, out, "missing")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	requireContains(t, out, "imgpack dev")
}

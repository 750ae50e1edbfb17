package fetch

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

// writeTarGz builds a small tar.gz archive with the given members, each a
// path relative to the archive root.
func writeTarGz(t *testing.T, path string, members map[string]string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	gw := gzip.NewWriter(f)
	tw := tar.NewWriter(gw)
	for name, content := range members {
		hdr := &tar.Header{Name: name, Mode: 0755, Size: int64(len(content))}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatal(err)
		}
		if _, err := tw.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}
}

func writeZip(t *testing.T, path string, members map[string]string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range members {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestExtractTarGz(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "tool-1.0-linux.tar.gz")
	writeTarGz(t, archive, map[string]string{
		"tool-1.0/tool":      "#!/bin/sh\necho tool\n",
		"tool-1.0/README.md": "readme",
	})

	dest := filepath.Join(dir, "out")
	root, err := Extract(archive, dest)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if filepath.Base(root) != "tool-1.0" {
		t.Errorf("extracted root = %s, want tool-1.0 directory", root)
	}
	if _, err := os.Stat(filepath.Join(root, "tool")); err != nil {
		t.Errorf("extracted binary missing: %v", err)
	}
}

func TestExtractZip(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "tool.zip")
	writeZip(t, archive, map[string]string{
		"tool-2.0/bin/tool": "binary",
	})

	root, err := Extract(archive, filepath.Join(dir, "out"))
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "bin", "tool")); err != nil {
		t.Errorf("extracted file missing: %v", err)
	}
}

func TestExtractTarRejectsEscapingMember(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "unsafe.tar.gz")
	writeTarGz(t, archive, map[string]string{
		"../evil": "outside",
	})

	dest := filepath.Join(dir, "out")
	if _, err := Extract(archive, dest); err == nil {
		t.Fatal("Extract of ../ tar member returned nil error, want error")
	}
	if _, err := os.Stat(filepath.Join(dir, "evil")); err == nil {
		t.Error("escaping tar member was written outside the extraction directory")
	}
}

func TestExtractZipRejectsEscapingMember(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "unsafe.zip")
	writeZip(t, archive, map[string]string{
		"../evil": "outside",
	})

	dest := filepath.Join(dir, "out")
	if _, err := Extract(archive, dest); err == nil {
		t.Fatal("Extract of ../ zip member returned nil error, want error")
	}
	if _, err := os.Stat(filepath.Join(dir, "evil")); err == nil {
		t.Error("escaping zip member was written outside the extraction directory")
	}
}

func TestExtractUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "tool.rar")
	if err := os.WriteFile(archive, []byte("not an archive"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Extract(archive, dir); err == nil {
		t.Error("Extract on unsupported format returned nil error, want error")
	}
}

func TestInstallBinary(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "uv-x86_64-unknown-linux-gnu.tar.gz")
	writeTarGz(t, archive, map[string]string{
		"uv-x86_64-unknown-linux-gnu/uv":  "uv binary",
		"uv-x86_64-unknown-linux-gnu/uvx": "uvx binary",
	})

	binDir := filepath.Join(dir, "bin")
	installed, err := InstallBinary(archive, "uv", binDir)
	if err != nil {
		t.Fatalf("InstallBinary returned error: %v", err)
	}
	if installed != filepath.Join(binDir, "uv") {
		t.Errorf("installed path = %s, want %s", installed, filepath.Join(binDir, "uv"))
	}

	info, err := os.Stat(installed)
	if err != nil {
		t.Fatalf("installed binary missing: %v", err)
	}
	if info.Mode().Perm()&0111 == 0 {
		t.Errorf("installed binary mode %v is not executable", info.Mode())
	}
}

func TestInstallBinaryNotFound(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "empty.tar.gz")
	writeTarGz(t, archive, map[string]string{"dir/other": "content"})

	if _, err := InstallBinary(archive, "uv", filepath.Join(dir, "bin")); err == nil {
		t.Error("InstallBinary for absent binary returned nil error, want error")
	}
}

func TestFirstPathElement(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{input: "tool-1.0/bin/tool", want: "tool-1.0"},
		{input: "./tool-1.0/tool", want: "tool-1.0"},
		{input: "tool", want: "tool"},
	}
	for _, tc := range testCases {
		if got := firstPathElement(tc.input); got != tc.want {
			t.Errorf("firstPathElement(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

package imgutil

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("touch %s: %v", path, err)
	}
}

func names(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.Base(p)
	}
	return out
}

func TestListImagesDefaultExtensions(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.png"))
	touch(t, filepath.Join(dir, "A.JPG"))
	touch(t, filepath.Join(dir, "c.jpeg"))
	touch(t, filepath.Join(dir, "notes.txt"))
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	touch(t, filepath.Join(dir, "sub", "nested.png"))

	paths, err := ListImages(dir, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	got := names(paths)
	want := []string{"A.JPG", "b.png", "c.jpeg"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	for _, p := range paths {
		if !filepath.IsAbs(p) {
			t.Fatalf("expected absolute path, got %s", p)
		}
	}
}

func TestListImagesPattern(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.webp"))
	touch(t, filepath.Join(dir, "B.WEBP"))
	touch(t, filepath.Join(dir, "c.png"))

	paths, err := ListImages(dir, "*.webp")
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	got := names(paths)
	if len(got) != 2 || got[0] != "a.webp" || got[1] != "B.WEBP" {
		t.Fatalf("expected [a.webp B.WEBP], got %v", got)
	}
}

func TestListImagesCreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fresh")

	paths, err := ListImages(dir, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(paths) != 0 {
		t.Fatalf("expected empty list, got %v", paths)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatal("directory was not created")
	}
}

func TestListImagesRejectsEmptyDirectory(t *testing.T) {
	if _, err := ListImages("   ", ""); err == nil {
		t.Fatal("expected error for blank directory")
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWorkDirRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if got := LoadWorkDir(); got != "" {
		t.Fatalf("expected unset working directory, got %q", got)
	}

	want := filepath.Join(t.TempDir(), "photos")
	if err := SaveWorkDir(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := LoadWorkDir(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWorkDirFileIsOneLine(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := SaveWorkDir("/tmp/photos"); err != nil {
		t.Fatalf("save: %v", err)
	}

	path, err := WorkDirPath()
	if err != nil {
		t.Fatalf("path: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(raw) != "/tmp/photos\n" {
		t.Fatalf("expected single line, got %q", raw)
	}
}

func TestSaveEmptyMeansUnset(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := SaveWorkDir("/tmp/photos"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := SaveWorkDir(""); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := LoadWorkDir(); got != "" {
		t.Fatalf("expected unset after clearing, got %q", got)
	}
}

func TestAPITokenFromEnvironment(t *testing.T) {
	t.Setenv(TokenEnvVar, "secret-token")
	if got := APIToken(); got != "secret-token" {
		t.Fatalf("expected token from env, got %q", got)
	}
}

package scaffold

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMaterialize_CreatesDirAndFiles(t *testing.T) {
	base := filepath.Join(t.TempDir(), "svc")

	files := map[string]string{
		"main.ts":   "content a",
		"deno.json": "content b",
	}
	if err := Materialize(base, files); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for name, want := range files {
		got, err := os.ReadFile(filepath.Join(base, name))
		if err != nil {
			t.Fatalf("Expected %s to exist: %v", name, err)
		}
		if string(got) != want {
			t.Errorf("File %s: expected %q, got %q", name, want, got)
		}
	}
}

func TestMaterialize_OverwritesExisting(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "render.yaml")
	if err := os.WriteFile(target, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Materialize(base, map[string]string{"render.yaml": "new"}); err != nil {
		t.Fatalf("Unexpected error on pre-existing dir: %v", err)
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new" {
		t.Errorf("Expected overwrite, got %q", got)
	}
}

func TestMaterialize_SurfacesWriteFailure(t *testing.T) {
	// A regular file in the directory position fails MkdirAll regardless of
	// the user the tests run as.
	base := t.TempDir()
	blocker := filepath.Join(base, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := Materialize(filepath.Join(blocker, "svc"), map[string]string{"main.ts": "content"})
	if err == nil {
		t.Fatal("Expected error when base dir cannot be created")
	}
}

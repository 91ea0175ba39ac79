package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindSwayTomlWalksUp(t *testing.T) {
	root := t.TempDir()
	manifest := filepath.Join(root, "sway.toml")
	if err := os.WriteFile(manifest, []byte("[package]\nname = \"demo\"\n"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	found, ok, err := findSwayToml(nested)
	if err != nil {
		t.Fatalf("findSwayToml failed: %v", err)
	}
	if !ok || found != manifest {
		t.Fatalf("expected %q, got %q (ok=%v)", manifest, found, ok)
	}
}

func TestLoadProjectManifestResolvesFiles(t *testing.T) {
	root := t.TempDir()
	content := "[package]\nname = \"demo\"\n\n[inspect]\nfiles = [\"src/main.sw\", \"src/lib.sw\"]\n"
	if err := os.WriteFile(filepath.Join(root, "sway.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	m, ok, err := loadProjectManifest(root)
	if err != nil || !ok {
		t.Fatalf("manifest not loaded: ok=%v err=%v", ok, err)
	}
	if m.Config.Package.Name != "demo" {
		t.Fatalf("expected package name demo, got %q", m.Config.Package.Name)
	}
	paths := m.SourcePaths()
	if len(paths) != 2 || paths[0] != filepath.Join(root, "src", "main.sw") {
		t.Fatalf("unexpected source paths %v", paths)
	}
}

func TestLoadProjectManifestAbsent(t *testing.T) {
	_, ok, err := loadProjectManifest(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("no manifest expected")
	}
}

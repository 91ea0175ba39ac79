package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadNormalizesContent(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "a.sw")
	if err := os.WriteFile(p, []byte("\xEF\xBB\xBFfn main() {}\r\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	text, path, err := Load(p)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if text.String() != "fn main() {}\n" {
		t.Fatalf("expected normalized content, got %q", text.String())
	}
	if path.String() != filepath.ToSlash(p) {
		t.Fatalf("expected normalized path %q, got %q", filepath.ToSlash(p), path.String())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "absent.sw")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zhannixing/sway/internal/ir"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return p
}

func TestInspectFilesRecordsSpansPerLine(t *testing.T) {
	p := writeFixture(t, t.TempDir(), "main.sw", "contract;\n\nfn main() {}\n")
	res, err := InspectFiles([]string{p})
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	if len(res.Files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(res.Files))
	}
	f := res.Files[0]
	if len(f.Indices) != 2 {
		t.Fatalf("expected 2 records (blank line skipped), got %d", len(f.Indices))
	}
	sp, err := f.Indices[1].ToSpan(res.Ctx)
	if err != nil {
		t.Fatalf("resolving span: %v", err)
	}
	if sp.Str() != "fn main() {}" {
		t.Fatalf("expected second line span, got %q", sp.Str())
	}
	// One shared location record plus two span records.
	if res.Ctx.MetadataLen() != 3 {
		t.Fatalf("expected 3 records, got %d", res.Ctx.MetadataLen())
	}
}

func TestInspectFilesRecordsStorageAttributes(t *testing.T) {
	p := writeFixture(t, t.TempDir(), "vault.sw", "#[storage(read, write)]\nfn store_it() {}\n")
	res, err := InspectFiles([]string{p})
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}

	var effects []ir.Metadatum
	for _, mi := range res.Files[0].Indices {
		md, err := mi.Metadatum(res.Ctx)
		if err != nil {
			t.Fatalf("resolving %v: %v", mi, err)
		}
		if md.Kind == ir.MetadatumStorageAttribute {
			effects = append(effects, md)
		}
	}
	if len(effects) != 1 {
		t.Fatalf("expected 1 storage effect record, got %d", len(effects))
	}
	if effects[0].Storage != ir.StorageReadsWrites {
		t.Fatalf("expected readwrite, got %s", effects[0].Storage)
	}
}

func TestInspectFilesSharesEffectRecords(t *testing.T) {
	dir := t.TempDir()
	a := writeFixture(t, dir, "a.sw", "#[storage(read)]\nfn f() {}\n")
	b := writeFixture(t, dir, "b.sw", "#[storage(read)]\nfn g() {}\n")
	res, err := InspectFiles([]string{a, b})
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	// Indices[1] of each file is the interned effect record.
	if res.Files[0].Indices[1] != res.Files[1].Indices[1] {
		t.Fatalf("one effect tag must intern to one record across files")
	}
}

func TestInspectFilesMissingFile(t *testing.T) {
	if _, err := InspectFiles([]string{filepath.Join(t.TempDir(), "absent.sw")}); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestParseStorageAttr(t *testing.T) {
	cases := []struct {
		line string
		op   ir.StorageOperation
		ok   bool
	}{
		{"#[storage(read)]", ir.StorageReads, true},
		{"#[storage(write)]", ir.StorageWrites, true},
		{"#[storage(read, write)]", ir.StorageReadsWrites, true},
		{"  #[storage(write,read)]  ", ir.StorageReadsWrites, true},
		{"#[storage()]", 0, false},
		{"#[storage(read", 0, false},
		{"fn main() {}", 0, false},
	}
	for _, tc := range cases {
		op, ok := parseStorageAttr(tc.line)
		if ok != tc.ok || (ok && op != tc.op) {
			t.Fatalf("%q: expected (%v, %v), got (%v, %v)", tc.line, tc.op, tc.ok, op, ok)
		}
	}
}

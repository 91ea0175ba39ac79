package source

import (
	"errors"
	"testing"
)

func TestNewSpanValidatesOffsets(t *testing.T) {
	text := NewText("fn main() {}")
	if _, err := New(text, 3, 2, nil); !errors.Is(err, ErrSpanOutOfRange) {
		t.Fatalf("inverted offsets must be rejected, got %v", err)
	}
	if _, err := New(text, 0, 100, nil); !errors.Is(err, ErrSpanOutOfRange) {
		t.Fatalf("end past the text must be rejected, got %v", err)
	}
	if _, err := New(nil, 0, 0, nil); !errors.Is(err, ErrSpanOutOfRange) {
		t.Fatalf("nil text must be rejected, got %v", err)
	}
}

func TestSpanAccessors(t *testing.T) {
	text := NewText("fn main() {}")
	path := NewPath("/a.sw")
	sp, err := New(text, 3, 7, path)
	if err != nil {
		t.Fatalf("valid span rejected: %v", err)
	}
	if sp.Str() != "main" {
		t.Fatalf("expected %q, got %q", "main", sp.Str())
	}
	if sp.Len() != 4 || sp.Empty() {
		t.Fatalf("unexpected length %d", sp.Len())
	}
	if sp.Src() != text || sp.Path() != path {
		t.Fatalf("span must keep the shared allocations")
	}
	if sp.String() != "/a.sw:3-7" {
		t.Fatalf("unexpected string form %q", sp.String())
	}
}

func TestSpanCover(t *testing.T) {
	text := NewText("let x = 1;")
	a, _ := New(text, 4, 5, nil)
	b, _ := New(text, 8, 9, nil)
	c := a.Cover(b)
	if c.Start() != 4 || c.End() != 9 {
		t.Fatalf("expected cover 4..9, got %d..%d", c.Start(), c.End())
	}
	other, _ := New(NewText("other"), 0, 5, nil)
	if d := a.Cover(other); d != a {
		t.Fatalf("cover across texts must be a no-op")
	}
}

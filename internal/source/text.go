package source

import (
	"fmt"

	"fortio.org/safecast"
)

// Text holds the entire contents of one source file. It is shared by
// pointer: every span and metadata record for the file references the
// same allocation, so the text is never copied per span.
type Text struct {
	content string
	lineIdx []uint32
}

// NewText wraps normalized file contents into a shared Text allocation.
func NewText(content string) *Text {
	return &Text{
		content: content,
		lineIdx: buildLineIndex(content),
	}
}

func (t *Text) String() string { return t.content }

// Len returns the content length in bytes.
func (t *Text) Len() uint32 {
	n, err := safecast.Conv[uint32](len(t.content))
	if err != nil {
		panic(fmt.Errorf("source text length overflow: %w", err))
	}
	return n
}

// LineCol maps a byte offset to a 1-based line/column position.
func (t *Text) LineCol(off uint32) LineCol {
	return toLineCol(t.lineIdx, off)
}

// Path is a normalized source file path, shared by pointer. The metadata
// store keys its location cache on *Path identity, so callers must reuse
// one allocation per file rather than re-wrapping the same string.
type Path struct {
	name string
}

// NewPath normalizes name and wraps it into a shared Path allocation.
func NewPath(name string) *Path {
	return &Path{name: normalizePath(name)}
}

func (p *Path) String() string { return p.name }

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}

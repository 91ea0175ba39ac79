package source

import (
	"errors"
	"fmt"
)

// ErrSpanOutOfRange reports offsets that are inconsistent with the
// span's source text.
var ErrSpanOutOfRange = errors.New("span offsets out of range")

// Span is a byte range within one file's full source text. The path is
// optional: synthesized code carries none.
type Span struct {
	src   *Text
	start uint32 // inclusive
	end   uint32 // exclusive
	path  *Path
}

// New builds a span over src. It refuses offsets that do not fit the
// text, so a constructed span can always be sliced safely.
func New(src *Text, start, end uint32, path *Path) (Span, error) {
	if src == nil {
		return Span{}, fmt.Errorf("%w: nil source text", ErrSpanOutOfRange)
	}
	if start > end || end > src.Len() {
		return Span{}, fmt.Errorf("%w: %d..%d in %d bytes", ErrSpanOutOfRange, start, end, src.Len())
	}
	return Span{src: src, start: start, end: end, path: path}, nil
}

// Src returns the shared full source text the span points into.
func (s Span) Src() *Text { return s.src }

// Path returns the shared path allocation, or nil for path-less spans.
func (s Span) Path() *Path { return s.path }

func (s Span) Start() uint32 { return s.start }
func (s Span) End() uint32   { return s.end }

// Str returns the text covered by the span.
func (s Span) Str() string { return s.src.content[s.start:s.end] }

func (s Span) Empty() bool { return s.start == s.end }

func (s Span) Len() uint32 { return s.end - s.start }

func (s Span) String() string {
	name := "<unknown>"
	if s.path != nil {
		name = s.path.name
	}
	return fmt.Sprintf("%s:%d-%d", name, s.start, s.end)
}

// Cover widens s to include other. Spans over different texts are left
// untouched.
func (s Span) Cover(other Span) Span {
	if s.src != other.src {
		return s
	}
	if other.start < s.start {
		s.start = other.start
	}
	if other.end > s.end {
		s.end = other.end
	}
	return s
}

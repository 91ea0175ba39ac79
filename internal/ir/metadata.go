package ir

import (
	"fmt"

	"github.com/zhannixing/sway/internal/source"
)

// MetadatumKind discriminates the records stored in the metadata arena.
type MetadatumKind uint8

const (
	// MetadatumInvalid is the zero kind; no stored record carries it.
	MetadatumInvalid MetadatumKind = iota
	// MetadatumFileLocation pairs a source path with the file's full text.
	MetadatumFileLocation
	// MetadatumSpan is a byte range within a FileLocation record.
	MetadatumSpan
	// MetadatumStateIndex is an opaque storage slot token.
	MetadatumStateIndex
	// MetadatumStorageAttribute is a declared storage effect.
	MetadatumStorageAttribute
)

// StateIndex is an opaque token identifying a storage slot. The store
// attaches no semantics to the value.
type StateIndex uint64

// FileLocation pairs a shared source path with the file's full contents.
// Src is assumed to hold the entire file at Path; nothing validates the
// assumption.
type FileLocation struct {
	Path *source.Path
	Src  *source.Text
}

// SpanRecord is a byte range within the FileLocation record at Loc.
type SpanRecord struct {
	Loc   MetadataIndex
	Start uint32
	End   uint32
}

// Metadatum is one annotation record. Kind selects which payload field
// is meaningful.
type Metadatum struct {
	Kind MetadatumKind

	Loc     FileLocation
	Span    SpanRecord
	State   StateIndex
	Storage StorageOperation
}

// MetadataIndex is a stable handle into a Context's metadata arena.
// Handles compare by identity (slot and generation), never by the record
// they point to. The zero value resolves to nothing.
type MetadataIndex struct {
	slot uint32
	gen  uint32
}

// String renders the handle the way IR printers reference metadata.
func (mi MetadataIndex) String() string {
	return fmt.Sprintf("!%d", mi.slot)
}

// SpanMetadata records sp in the store and returns the span record's
// handle. Path-less spans are deliberately not worth recording: it
// returns false and inserts nothing. The FileLocation record is interned
// by the identity of the span's *source.Path allocation; the span record
// itself is always fresh.
func (c *Context) SpanMetadata(sp source.Span) (MetadataIndex, bool) {
	path := sp.Path()
	if path == nil {
		return MetadataIndex{}, false
	}
	locIdx, ok := c.locationCache[path]
	if !ok {
		// Assumes sp's text is the entire contents of the file at path.
		locIdx = c.metadata.insert(Metadatum{
			Kind: MetadatumFileLocation,
			Loc:  FileLocation{Path: path, Src: sp.Src()},
		})
		c.locationCache[path] = locIdx
	}
	idx := c.metadata.insert(Metadatum{
		Kind: MetadatumSpan,
		Span: SpanRecord{Loc: locIdx, Start: sp.Start(), End: sp.End()},
	})
	return idx, true
}

// ToSpan reconstructs the source span stored at mi.
func (mi MetadataIndex) ToSpan(c *Context) (source.Span, error) {
	md, ok := c.metadata.get(mi)
	if !ok || md.Kind != MetadatumSpan {
		return source.Span{}, fmt.Errorf("%w: %v is not a span record", ErrInvalidMetadatum, mi)
	}
	loc, ok := c.metadata.get(md.Span.Loc)
	if !ok || loc.Kind != MetadatumFileLocation {
		return source.Span{}, fmt.Errorf("%w: %v references %v which is not a file location", ErrInvalidMetadatum, mi, md.Span.Loc)
	}
	sp, err := source.New(loc.Loc.Src, md.Span.Start, md.Span.End, loc.Loc.Path)
	if err != nil {
		return source.Span{}, fmt.Errorf("%w: %v", ErrInvalidMetadatum, err)
	}
	return sp, nil
}

// StateMetadata records a storage slot token. Tokens are deliberately
// not deduplicated: callers may want distinct handles for one numeric
// token.
func (c *Context) StateMetadata(token StateIndex) MetadataIndex {
	return c.metadata.insert(Metadatum{Kind: MetadatumStateIndex, State: token})
}

// ToStateIndex returns the storage slot token stored at mi.
func (mi MetadataIndex) ToStateIndex(c *Context) (StateIndex, error) {
	md, ok := c.metadata.get(mi)
	if !ok || md.Kind != MetadatumStateIndex {
		return 0, fmt.Errorf("%w: %v is not a state index record", ErrInvalidMetadatum, mi)
	}
	return md.State, nil
}

// StorageMetadata returns the interned record for op. The store holds at
// most one record per effect; repeated calls return equal handles.
func (c *Context) StorageMetadata(op StorageOperation) MetadataIndex {
	if idx, ok := c.storageCache[op]; ok {
		return idx
	}
	idx := c.metadata.insert(Metadatum{Kind: MetadatumStorageAttribute, Storage: op})
	c.storageCache[op] = idx
	return idx
}

// Metadatum returns the raw record stored at mi, for dump tooling.
func (mi MetadataIndex) Metadatum(c *Context) (Metadatum, error) {
	md, ok := c.metadata.get(mi)
	if !ok {
		return Metadatum{}, fmt.Errorf("%w: stale handle %v", ErrInvalidMetadatum, mi)
	}
	return md, nil
}

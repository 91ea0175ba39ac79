// Package ir implements the metadata side-store the compiler attaches to
// IR values (instructions, arguments, constants).
//
// Metadata describes properties that code generation never needs but
// introspective tools do: source spans for diagnostics and debugging,
// opaque storage slot tokens, and declared storage effects on
// storage-backed functions. Keeping them in a side-store avoids widening
// every IR node with rarely-used fields.
//
// A Context owns one generational arena of Metadatum records plus two
// interning caches: file locations are deduplicated by the identity of
// the shared *source.Path allocation, storage effects by tag. Records
// are immutable once inserted and live until the Context is destroyed or
// Reset; resolving a handle under the wrong record kind, or after a
// Reset, fails with ErrInvalidMetadatum instead of misreading memory.
//
// Spans carry a source string and an optional path. Spans with no path
// are ignored by this store, and the source string is assumed to always
// hold the entire contents of the file at the path; nothing validates
// that assumption.
package ir

package ir

import "errors"

// ErrInvalidMetadatum is the single integrity error of the metadata
// store: a handle resolved to a record of an unexpected kind, a stale
// handle, or a span record whose offsets no longer reconstruct against
// their source text.
var ErrInvalidMetadatum = errors.New("invalid metadatum")

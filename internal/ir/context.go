package ir

import "github.com/zhannixing/sway/internal/source"

// Context owns the metadata arena and its interning caches for one
// compilation unit. It is not safe for concurrent mutation; exactly one
// pass holds it at a time.
type Context struct {
	metadata      metadataArena
	locationCache map[*source.Path]MetadataIndex
	storageCache  map[StorageOperation]MetadataIndex
}

// NewContext creates an empty metadata store.
func NewContext() *Context {
	return &Context{
		locationCache: make(map[*source.Path]MetadataIndex),
		storageCache:  make(map[StorageOperation]MetadataIndex, 3),
	}
}

// MetadataLen returns the number of live records.
func (c *Context) MetadataLen() int { return c.metadata.len() }

// Reset drops every record and both interning caches. Outstanding
// MetadataIndex handles turn stale: resolving one fails with
// ErrInvalidMetadatum.
func (c *Context) Reset() {
	c.metadata.reset()
	clear(c.locationCache)
	clear(c.storageCache)
}

package source

import (
	"bytes"
	"path/filepath"
	"sort"
)

// normalizeCRLF replaces every \r\n with \n, leaving lone \r alone.
// Returns the resulting slice and whether anything changed.
func normalizeCRLF(content []byte) ([]byte, bool) {
	// Fast path: no \r at all.
	if !bytes.ContainsRune(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false

	i := 0
	for i < len(content) {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}

	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}

	return content, false
}

// buildLineIndex records the byte offset of every \n in content.
func buildLineIndex(content string) []uint32 {
	var out []uint32
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// line counts the newlines strictly before off; the newline itself
	// still belongs to the line it terminates.
	line := sort.Search(len(lineIdx), func(i int) bool { return lineIdx[i] >= off })
	if line == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}
	startOff := lineIdx[line-1] + 1
	return LineCol{Line: uint32(line) + 1, Col: off - startOff + 1}
}

func normalizePath(p string) string {
	// one canonical form for cross-platform diffs
	return filepath.ToSlash(filepath.Clean(p))
}

package source

import (
	"fmt"
	"os"
)

// Load reads a source file from disk, normalizes CRLF line endings and a
// UTF-8 BOM, and returns shared Text and Path allocations for it.
func Load(path string) (*Text, *Path, error) {
	// #nosec G304 -- path is provided by the caller
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	content, _ := removeBOM(raw)
	content, _ = normalizeCRLF(content)
	return NewText(string(content)), NewPath(path), nil
}

package driver

import (
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/zhannixing/sway/internal/ir"
	"github.com/zhannixing/sway/internal/source"
)

// InspectedFile lists the metadata recorded for one source file, in
// insertion order.
type InspectedFile struct {
	Path    string
	Indices []ir.MetadataIndex
}

// InspectResult carries the metadata store built by one inspect run.
type InspectResult struct {
	Ctx   *ir.Context
	Files []InspectedFile
}

// InspectFiles loads every file concurrently, then builds one metadata
// store for the run: a span record per non-blank line, and a storage
// effect record per #[storage(...)] attribute line. Loading is the only
// parallel part; the Context is mutated from this goroutine alone.
func InspectFiles(paths []string) (*InspectResult, error) {
	type loadedFile struct {
		text *source.Text
		path *source.Path
	}
	files := make([]loadedFile, len(paths))

	var eg errgroup.Group
	for i, p := range paths {
		i, p := i, p
		eg.Go(func() error {
			text, path, err := source.Load(p)
			if err != nil {
				return err
			}
			files[i] = loadedFile{text: text, path: path}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	res := &InspectResult{Ctx: ir.NewContext()}
	for _, f := range files {
		entry := InspectedFile{Path: f.path.String()}
		off := uint32(0)
		for _, chunk := range strings.SplitAfter(f.text.String(), "\n") {
			line := strings.TrimSuffix(chunk, "\n")
			if strings.TrimSpace(line) != "" {
				sp, err := source.New(f.text, off, off+uint32(len(line)), f.path)
				if err != nil {
					return nil, err
				}
				if idx, ok := res.Ctx.SpanMetadata(sp); ok {
					entry.Indices = append(entry.Indices, idx)
				}
				if op, ok := parseStorageAttr(line); ok {
					entry.Indices = append(entry.Indices, res.Ctx.StorageMetadata(op))
				}
			}
			off += uint32(len(chunk))
		}
		res.Files = append(res.Files, entry)
	}
	return res, nil
}

// parseStorageAttr recognizes the attribute header placed above
// storage-backed functions, e.g. #[storage(read, write)].
func parseStorageAttr(line string) (ir.StorageOperation, bool) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), "#[storage(")
	if !ok {
		return 0, false
	}
	args, _, ok := strings.Cut(rest, ")]")
	if !ok {
		return 0, false
	}

	var reads, writes bool
	for _, arg := range strings.Split(args, ",") {
		switch strings.TrimSpace(arg) {
		case "read":
			reads = true
		case "write":
			writes = true
		}
	}
	switch {
	case reads && writes:
		return ir.StorageReadsWrites, true
	case reads:
		return ir.StorageReads, true
	case writes:
		return ir.StorageWrites, true
	}
	return 0, false
}

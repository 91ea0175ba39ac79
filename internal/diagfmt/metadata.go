// Package diagfmt renders compiler data structures for CLI consumption.
// It owns formatting only: no IO beyond the writer it is handed, no
// mutation of the structures it renders.
package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/zhannixing/sway/internal/ir"
)

// MetadataOpts controls pretty metadata rendering.
type MetadataOpts struct {
	Color        bool
	SnippetWidth int // max display width of the snippet column, 0 for default
}

const defaultSnippetWidth = 40

// FormatMetadataPretty renders one line per metadata record: handle,
// kind, and a kind-specific payload. Span payloads show file:line:col
// plus a width-truncated snippet of the covered text.
func FormatMetadataPretty(w io.Writer, ctx *ir.Context, indices []ir.MetadataIndex, opts MetadataOpts) error {
	width := opts.SnippetWidth
	if width <= 0 {
		width = defaultSnippetWidth
	}

	idxColor := color.New(color.FgCyan)
	kindColor := color.New(color.FgYellow)
	effectColor := color.New(color.FgMagenta, color.Bold)
	if !opts.Color {
		idxColor.DisableColor()
		kindColor.DisableColor()
		effectColor.DisableColor()
	}

	for _, mi := range indices {
		md, err := mi.Metadatum(ctx)
		if err != nil {
			return err
		}
		prefix := idxColor.Sprintf("%-6s", mi.String()) + " " + kindColor.Sprintf("%-9s", kindLabel(md.Kind))
		switch md.Kind {
		case ir.MetadatumSpan:
			sp, err := mi.ToSpan(ctx)
			if err != nil {
				return err
			}
			at := sp.Src().LineCol(sp.Start())
			snippet := runewidth.Truncate(sp.Str(), width, "…")
			fmt.Fprintf(w, "%s %s:%d:%d %q\n", prefix, sp.Path(), at.Line, at.Col, snippet)
		case ir.MetadatumFileLocation:
			fmt.Fprintf(w, "%s %s (%d bytes)\n", prefix, md.Loc.Path, md.Loc.Src.Len())
		case ir.MetadatumStateIndex:
			fmt.Fprintf(w, "%s slot %d\n", prefix, md.State)
		case ir.MetadatumStorageAttribute:
			fmt.Fprintf(w, "%s %s\n", prefix, effectColor.Sprint(md.Storage.String()))
		default:
			fmt.Fprintf(w, "%s ?\n", prefix)
		}
	}
	return nil
}

type metadataRow struct {
	Index  string `json:"index"`
	Kind   string `json:"kind"`
	Path   string `json:"path,omitempty"`
	Line   uint32 `json:"line,omitempty"`
	Col    uint32 `json:"col,omitempty"`
	Start  uint32 `json:"start,omitempty"`
	End    uint32 `json:"end,omitempty"`
	State  uint64 `json:"state,omitempty"`
	Effect string `json:"effect,omitempty"`
}

// FormatMetadataJSON renders the records as an indented JSON array.
func FormatMetadataJSON(w io.Writer, ctx *ir.Context, indices []ir.MetadataIndex) error {
	rows := make([]metadataRow, 0, len(indices))
	for _, mi := range indices {
		md, err := mi.Metadatum(ctx)
		if err != nil {
			return err
		}
		row := metadataRow{Index: mi.String(), Kind: kindLabel(md.Kind)}
		switch md.Kind {
		case ir.MetadatumSpan:
			sp, err := mi.ToSpan(ctx)
			if err != nil {
				return err
			}
			at := sp.Src().LineCol(sp.Start())
			row.Path = sp.Path().String()
			row.Line = at.Line
			row.Col = at.Col
			row.Start = sp.Start()
			row.End = sp.End()
		case ir.MetadatumFileLocation:
			row.Path = md.Loc.Path.String()
		case ir.MetadatumStateIndex:
			row.State = uint64(md.State)
		case ir.MetadatumStorageAttribute:
			row.Effect = md.Storage.String()
		}
		rows = append(rows, row)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func kindLabel(k ir.MetadatumKind) string {
	switch k {
	case ir.MetadatumFileLocation:
		return "location"
	case ir.MetadatumSpan:
		return "span"
	case ir.MetadatumStateIndex:
		return "state"
	case ir.MetadatumStorageAttribute:
		return "storage"
	default:
		return "invalid"
	}
}

package sheetmap

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/imposer/pkg/core/impose"
)

// Options configures sheet map rendering.
type Options struct {
	// Coordinates adds each sheet's size to its node label.
	Coordinates bool
}

// ToDOT converts a plan to Graphviz DOT.
func ToDOT(p *impose.Plan, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=plaintext, fontname=\"Helvetica\"];\n")
	buf.WriteString("  nodesep=0.3;\n")
	fmt.Fprintf(&buf, "  label=%q;\n", fmt.Sprintf("%s: %d pages on %d sheets", p.Scheme, p.TotalInputPages, len(p.Sheets)))
	buf.WriteString("\n")

	groups := signatureGroups(p)
	for gi, g := range groups {
		if len(groups) > 1 {
			fmt.Fprintf(&buf, "  subgraph cluster_%d {\n    label=%q;\n", gi, g.label)
		}
		for i := g.from; i < g.to; i++ {
			fmt.Fprintf(&buf, "  s%d [label=<%s>];\n", i, sheetLabel(i, p.Sheets[i], p.PageWidth, p.PageHeight, opts))
		}
		if len(groups) > 1 {
			buf.WriteString("  }\n")
		}
	}

	buf.WriteString("\n")
	for i := 1; i < len(p.Sheets); i++ {
		fmt.Fprintf(&buf, "  s%d -> s%d;\n", i-1, i)
	}
	buf.WriteString("}\n")
	return buf.String()
}

type group struct {
	label    string
	from, to int
}

// signatureGroups splits sheets by signature. Every spread pair of a
// signature is one sheet, so a signature of size n spans n/2 sheets.
func signatureGroups(p *impose.Plan) []group {
	if len(p.Signatures) == 0 {
		return []group{{from: 0, to: len(p.Sheets)}}
	}
	out := make([]group, 0, len(p.Signatures))
	start := 0
	for _, sig := range p.Signatures {
		end := min(start+sig.Size/2, len(p.Sheets))
		out = append(out, group{
			label: fmt.Sprintf("signature %d (%d pages)", sig.Index+1, sig.Size),
			from:  start,
			to:    end,
		})
		start = end
	}
	return out
}

// Cells lays out one sheet as text, rows top-down as the sheet is viewed.
// Blank cells read "·" and turned pages carry a "↻".
func Cells(s impose.Sheet, pw, ph float64) [][]string {
	rows, cols := shape(s, pw, ph)
	cells := make([][]string, rows)
	for r := range cells {
		cells[r] = make([]string, cols)
		for c := range cells[r] {
			cells[r][c] = "·"
		}
	}
	for _, pp := range s.Pages {
		if pp.Blank() {
			continue
		}
		x, y := pp.X, pp.Y
		if pp.Rotation == 180 {
			x, y = x-pp.Width, y-pp.Height
		}
		r, c := cellIndex(y, pp.Height, rows), cellIndex(x, pp.Width, cols)
		text := strconv.Itoa(pp.Index() + 1)
		if pp.Rotation == 180 {
			text += " ↻"
		}
		// Sheet rows count from the bottom.
		cells[rows-1-r][c] = text
	}
	return cells
}

func sheetLabel(index int, s impose.Sheet, pw, ph float64, opts Options) string {
	cells := Cells(s, pw, ph)
	cols := len(cells[0])

	var buf bytes.Buffer
	buf.WriteString(`<table border="0" cellborder="1" cellspacing="0" cellpadding="6">`)
	title := fmt.Sprintf("sheet %d", index+1)
	if opts.Coordinates {
		title += fmt.Sprintf(" (%gx%g)", s.Width, s.Height)
	}
	fmt.Fprintf(&buf, `<tr><td colspan="%d" border="0"><b>%s</b></td></tr>`, cols, title)
	for _, row := range cells {
		buf.WriteString("<tr>")
		for _, c := range row {
			fmt.Fprintf(&buf, "<td>%s</td>", c)
		}
		buf.WriteString("</tr>")
	}
	buf.WriteString("</table>")
	return buf.String()
}

func shape(s impose.Sheet, pw, ph float64) (rows, cols int) {
	rows, cols = 1, 1
	if ph > 0 {
		rows = max(1, int(math.Round(s.Height/ph)))
	}
	if pw > 0 {
		cols = max(1, int(math.Round(s.Width/pw)))
	}
	return rows, cols
}

func cellIndex(pos, size float64, n int) int {
	if size <= 0 {
		return 0
	}
	return min(max(0, int(math.Round(pos/size))), n-1)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with a
// unitless one so the diagram scales in browsers.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

package sink

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"math"

	"github.com/matzehuels/imposer/pkg/core/impose"
	"github.com/matzehuels/imposer/pkg/render/compose"
)

const proofCSS = `
    .sheet { fill: url(#blank); stroke: #333; stroke-width: 1; }
    .page { fill: #fff; stroke: #888; stroke-width: 0.75; }
    .page.turned { fill: #f4f7ff; }
    .head { stroke: #c0392b; stroke-width: 3; }
    .num { font-family: Helvetica, Arial, sans-serif; fill: #222; text-anchor: middle; dominant-baseline: central; }
    .caption { font-family: Helvetica, Arial, sans-serif; font-size: 14px; fill: #555; }`

const (
	defaultGap    = 48.0
	captionHeight = 24.0
)

// SVGOption configures an [SVGCanvas].
type SVGOption func(*SVGCanvas)

// WithTitle prefixes every sheet caption.
func WithTitle(title string) SVGOption { return func(c *SVGCanvas) { c.title = title } }

// WithGap sets the vertical gap between sheets.
func WithGap(gap float64) SVGOption {
	return func(c *SVGCanvas) {
		if gap >= 0 {
			c.gap = gap
		}
	}
}

type slot struct {
	page     int
	x, y     float64
	w, h     float64
	rotation int
}

type proofSheet struct {
	w, h  float64
	slots []slot
}

// SVGCanvas collects sheets and writes them as one SVG document.
type SVGCanvas struct {
	title  string
	gap    float64
	sheets []proofSheet
	open   bool
}

// NewSVGCanvas returns an empty proof canvas.
func NewSVGCanvas(opts ...SVGOption) *SVGCanvas {
	c := &SVGCanvas{gap: defaultGap}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BeginSheet starts a new sheet.
func (c *SVGCanvas) BeginSheet(w, h float64) error {
	if c.open {
		return fmt.Errorf("sheet %d not ended", len(c.sheets)-1)
	}
	c.sheets = append(c.sheets, proofSheet{w: w, h: h})
	c.open = true
	return nil
}

// Draw places page h. x and y are the draw origin in PDF space; for a 180°
// rotation the origin is the cell's top-right corner.
func (c *SVGCanvas) Draw(h compose.Handle, x, y, w, hgt float64, rotation int) error {
	if !c.open {
		return fmt.Errorf("draw outside a sheet")
	}
	if rotation == 180 {
		x, y = x-w, y-hgt
	}
	s := &c.sheets[len(c.sheets)-1]
	s.slots = append(s.slots, slot{page: h.Source(), x: x, y: y, w: w, h: hgt, rotation: rotation})
	return nil
}

// EndSheet closes the current sheet.
func (c *SVGCanvas) EndSheet() error {
	if !c.open {
		return fmt.Errorf("no open sheet")
	}
	c.open = false
	return nil
}

// Sheets returns the number of sheets drawn so far.
func (c *SVGCanvas) Sheets() int { return len(c.sheets) }

// Bytes writes the proof.
func (c *SVGCanvas) Bytes() []byte {
	width, height := 0.0, 0.0
	for i, s := range c.sheets {
		width = math.Max(width, s.w)
		height += s.h + captionHeight
		if i > 0 {
			height += c.gap
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	renderDefs(&buf)

	top := 0.0
	for i, s := range c.sheets {
		c.renderSheet(&buf, i, s, top)
		top += s.h + captionHeight + c.gap
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs>
    <pattern id="blank" width="12" height="12" patternUnits="userSpaceOnUse" patternTransform="rotate(45)">
      <rect width="12" height="12" fill="#fafafa"/>
      <line x1="0" y1="0" x2="0" y2="12" stroke="#ddd" stroke-width="4"/>
    </pattern>
  </defs>
`)
	fmt.Fprintf(buf, "  <style>%s\n  </style>\n", proofCSS)
}

func (c *SVGCanvas) renderSheet(buf *bytes.Buffer, index int, s proofSheet, top float64) {
	fmt.Fprintf(buf, `  <g id="sheet-%d" transform="translate(0 %.2f)">`+"\n", index+1, top)
	fmt.Fprintf(buf, `    <rect class="sheet" x="0" y="0" width="%.2f" height="%.2f"/>`+"\n", s.w, s.h)

	for _, sl := range s.slots {
		renderSlot(buf, s.h, sl)
	}

	caption := fmt.Sprintf("Sheet %d", index+1)
	if c.title != "" {
		caption = c.title + " · " + caption
	}
	fmt.Fprintf(buf, `    <text class="caption" x="0" y="%.2f">%s</text>`+"\n", s.h+captionHeight-6, html.EscapeString(caption))
	buf.WriteString("  </g>\n")
}

// renderSlot flips PDF space (y up) into SVG space (y down).
func renderSlot(buf *bytes.Buffer, sheetH float64, sl slot) {
	x, y := sl.x, sheetH-sl.y-sl.h
	cx, cy := x+sl.w/2, y+sl.h/2
	size := math.Min(sl.w, sl.h) / 4

	class := "page"
	if sl.rotation == 180 {
		class += " turned"
	}
	fmt.Fprintf(buf, `    <rect class="%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" data-page="%d"/>`+"\n",
		class, x, y, sl.w, sl.h, sl.page+1)

	headY := y + 1.5
	transform := ""
	if sl.rotation == 180 {
		headY = y + sl.h - 1.5
		transform = fmt.Sprintf(` transform="rotate(180 %.2f %.2f)"`, cx, cy)
	}
	fmt.Fprintf(buf, `    <line class="head" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n",
		x+sl.w*0.3, headY, x+sl.w*0.7, headY)
	fmt.Fprintf(buf, `    <text class="num" x="%.2f" y="%.2f" font-size="%.1f"%s>%d</text>`+"\n",
		cx, cy, size, transform, sl.page+1)
}

// RenderSVG renders plan against doc into an SVG proof.
func RenderSVG(ctx context.Context, doc compose.Document, plan *impose.Plan, opts ...SVGOption) ([]byte, error) {
	c := NewSVGCanvas(opts...)
	if err := compose.Render(ctx, doc, plan, c); err != nil {
		return nil, err
	}
	return c.Bytes(), nil
}

var _ compose.Canvas = (*SVGCanvas)(nil)

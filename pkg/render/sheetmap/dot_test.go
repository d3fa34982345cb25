package sheetmap

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/imposer/pkg/core/impose"
)

func build(t *testing.T, req impose.Request) *impose.Plan {
	t.Helper()
	p, err := impose.Build(req)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestToDOTBooklet(t *testing.T) {
	p := build(t, impose.Request{PageCount: 6, Scheme: impose.SchemeBooklet})
	dot := ToDOT(p, Options{})

	if !strings.Contains(dot, "digraph G") {
		t.Error("missing digraph declaration")
	}
	if !strings.Contains(dot, `label="booklet: 6 pages on 4 sheets"`) {
		t.Error("missing graph label")
	}
	if !strings.Contains(dot, "<tr><td>·</td><td>1</td></tr>") {
		t.Errorf("first sheet should show a blank then page 1:\n%s", dot)
	}
	if !strings.Contains(dot, "s2 -> s3;") {
		t.Error("missing print-order edge")
	}
	if strings.Contains(dot, "cluster") {
		t.Error("booklet plans should not be clustered")
	}
}

func TestToDOTRowsTopDown(t *testing.T) {
	p := build(t, impose.Request{
		PageCount: 4,
		Scheme:    impose.Scheme4Up,
		Options:   impose.Options{Rotation: 180, RotationType: "top"},
	})
	dot := ToDOT(p, Options{Coordinates: true})

	want := "<tr><td>1 ↻</td><td>2 ↻</td></tr><tr><td>3</td><td>4</td></tr>"
	if !strings.Contains(dot, want) {
		t.Errorf("expected %s in:\n%s", want, dot)
	}
	if !strings.Contains(dot, "sheet 1 (1224x1584)") {
		t.Error("missing sheet coordinates")
	}
}

func TestToDOTSignatureClusters(t *testing.T) {
	p := build(t, impose.Request{PageCount: 34, Scheme: impose.SchemeSignature, Options: impose.Options{SignatureSize: 16}})
	dot := ToDOT(p, Options{})

	if got := strings.Count(dot, "subgraph cluster_"); got != 3 {
		t.Errorf("clusters = %d, want 3", got)
	}
	if !strings.Contains(dot, `label="signature 3 (4 pages)"`) {
		t.Error("missing trailing signature cluster")
	}
}

func TestToDOTEmptyPlan(t *testing.T) {
	p := build(t, impose.Request{PageCount: 0, Scheme: impose.SchemeMerge})
	dot := ToDOT(p, Options{})
	if strings.Contains(dot, "s0") {
		t.Error("empty plan should have no sheet nodes")
	}
}

func TestRenderSVG(t *testing.T) {
	p := build(t, impose.Request{PageCount: 8, Scheme: impose.SchemeBooklet})
	svg, err := RenderSVG(context.Background(), ToDOT(p, Options{}))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Error("output is not SVG")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50">`) {
		t.Errorf("normalizeViewBox = %s", out)
	}
}

func TestCellsTentCard(t *testing.T) {
	p := build(t, impose.Request{PageCount: 2, Scheme: impose.SchemeTentCard, Options: impose.Options{Rotation: 180}})
	cells := Cells(p.Sheets[0], p.PageWidth, p.PageHeight)
	if len(cells) != 2 || len(cells[0]) != 1 {
		t.Fatalf("shape = %dx%d, want 2x1", len(cells), len(cells[0]))
	}
	if cells[0][0] != "1 ↻" || cells[1][0] != "2" {
		t.Errorf("cells = %v, want [[1 ↻] [2]]", cells)
	}
}

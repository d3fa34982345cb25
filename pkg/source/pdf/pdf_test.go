package pdf

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/imposer/pkg/errors"
)

// minimalPDF builds a two-page PDF. Page 1 inherits a Letter media box from
// the page tree; page 2 is A5 and displayed rotated by 90 degrees.
func minimalPDF() []byte {
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R 4 0 R] /Count 2 /MediaBox [0 0 612 792] >>",
		"<< /Type /Page /Parent 2 0 R /Resources << >> /Contents 5 0 R >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 420 595] /Rotate 90 /Resources << >> /Contents 5 0 R >>",
		"<< /Length 0 >>\nstream\n\nendstream",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func TestRead(t *testing.T) {
	doc, err := Read(bytes.NewReader(minimalPDF()))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if doc.PageCount() != 2 {
		t.Fatalf("PageCount = %d, want 2", doc.PageCount())
	}

	tests := []struct {
		index int
		w, h  float64
	}{
		{0, 612, 792},
		{1, 595, 420},
	}
	for _, tt := range tests {
		w, h, err := doc.PageSize(tt.index)
		if err != nil {
			t.Fatalf("PageSize(%d): %v", tt.index, err)
		}
		if w != tt.w || h != tt.h {
			t.Errorf("PageSize(%d) = %vx%v, want %vx%v", tt.index, w, h, tt.w, tt.h)
		}
	}

	if _, _, err := doc.PageSize(2); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("PageSize(2) error = %v, want INVALID_INPUT", err)
	}
}

func TestCopyPage(t *testing.T) {
	doc, err := Read(bytes.NewReader(minimalPDF()))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	h, err := doc.CopyPage(context.Background(), 1)
	if err != nil {
		t.Fatalf("CopyPage: %v", err)
	}
	page := h.(*Page)
	if page.Source() != 1 {
		t.Errorf("Source = %d, want 1", page.Source())
	}
	if w, h, _ := doc.PageSize(1); page.Width != w || page.Height != h {
		t.Errorf("page size = %gx%g, want %gx%g", page.Width, page.Height, w, h)
	}

	if _, err := doc.CopyPage(context.Background(), doc.PageCount()); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("out of range error = %v, want INVALID_INPUT", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := doc.CopyPage(ctx, 0); err == nil {
		t.Error("CopyPage with cancelled context should fail")
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.pdf")
	if err := os.WriteFile(path, minimalPDF(), 0644); err != nil {
		t.Fatal(err)
	}
	doc, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if doc.PageCount() != 2 {
		t.Errorf("PageCount = %d, want 2", doc.PageCount())
	}

	if _, err := Open(filepath.Join(dir, "missing.pdf")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestReadRejectsGarbage(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("not a pdf")))
	if !errors.Is(err, errors.ErrCodeInvalidDocument) {
		t.Errorf("error = %v, want INVALID_DOCUMENT", err)
	}
}

func TestOrient(t *testing.T) {
	tests := []struct {
		rotate int
		want   [2]float64
	}{
		{0, [2]float64{100, 200}},
		{90, [2]float64{200, 100}},
		{180, [2]float64{100, 200}},
		{270, [2]float64{200, 100}},
		{-90, [2]float64{200, 100}},
		{450, [2]float64{200, 100}},
	}
	for _, tt := range tests {
		if got := orient(100, 200, tt.rotate); got != tt.want {
			t.Errorf("orient(rotate=%d) = %v, want %v", tt.rotate, got, tt.want)
		}
	}
}

package plan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/imposer/pkg/core/impose"
	"github.com/matzehuels/imposer/pkg/errors"
)

// WriteJSON encodes p as indented JSON.
func WriteJSON(p *impose.Plan, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Marshal returns the indented JSON encoding of p.
func Marshal(p *impose.Plan) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(p, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportJSON writes p to a JSON file at path, creating missing parent
// directories.
func ExportJSON(p *impose.Plan, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(p, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadJSON decodes and verifies a plan. Decoding failures are
// INVALID_FORMAT errors; plans that decode but break an invariant are
// INVALID_PLAN errors.
func ReadJSON(r io.Reader) (*impose.Plan, error) {
	var p impose.Plan
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode plan")
	}
	if p.Sheets == nil {
		p.Sheets = []impose.Sheet{}
	}
	if err := Verify(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Unmarshal decodes and verifies a plan from data.
func Unmarshal(data []byte) (*impose.Plan, error) {
	return ReadJSON(bytes.NewReader(data))
}

// ImportJSON reads a plan from a JSON file at path.
func ImportJSON(path string) (*impose.Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "plan file %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// Package preset loads named imposition jobs from TOML.
//
// A preset binds a scheme, its options, a page size and output formats
// under a name, so a recurring job becomes `imposer render --preset zine`.
//
//	[preset.zine]
//	scheme = "booklet"
//	page_size = "a5"
//	formats = ["svg", "pdf"]
//
//	[preset.novel]
//	scheme = "signature"
//	signature_size = 16
//	width = 396
//	height = 612
//
// User presets are read from --config or from
// $XDG_CONFIG_HOME/imposer/imposer.toml and override the built-ins of the
// same name.
package preset

import (
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/imposer/pkg/core/impose"
	"github.com/matzehuels/imposer/pkg/core/rotation"
	"github.com/matzehuels/imposer/pkg/errors"
)

// Preset is one named job.
type Preset struct {
	Name          string   `toml:"-"`
	Scheme        string   `toml:"scheme"`
	Rotation      int      `toml:"rotation"`
	RotationType  string   `toml:"rotation_type"`
	SignatureSize int      `toml:"signature_size"`
	Orientation   string   `toml:"orientation"`
	PageSize      string   `toml:"page_size"`
	Width         float64  `toml:"width"`
	Height        float64  `toml:"height"`
	Formats       []string `toml:"formats"`
	Description   string   `toml:"description"`
}

// Options returns the scheme options of p.
func (p Preset) Options() impose.Options {
	return impose.Options{
		Rotation:      p.Rotation,
		RotationType:  rotation.Type(p.RotationType),
		SignatureSize: p.SignatureSize,
		Orientation:   p.Orientation,
	}
}

// Size returns the page size of p. Explicit width and height win over a
// named size; neither yields a zero size.
func (p Preset) Size() (impose.PageSize, error) {
	if p.Width != 0 || p.Height != 0 {
		return impose.PageSize{Width: p.Width, Height: p.Height}, nil
	}
	if p.PageSize == "" {
		return impose.PageSize{}, nil
	}
	return ParsePageSize(p.PageSize)
}

// Validate checks that p names a known scheme and well-formed options.
func (p Preset) Validate() error {
	if err := errors.ValidatePresetName(p.Name); err != nil {
		return err
	}
	if _, ok := impose.Lookup(p.Scheme); !ok {
		return errors.Wrap(errors.ErrCodeInvalidPreset, &errors.UnsupportedSchemeError{Scheme: p.Scheme}, "preset %s", p.Name)
	}
	size, err := p.Size()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPreset, err, "preset %s", p.Name)
	}
	if err := errors.ValidatePageSize(size.Width, size.Height); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPreset, err, "preset %s", p.Name)
	}
	if err := p.Options().Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPreset, err, "preset %s", p.Name)
	}
	return nil
}

// Set is a collection of presets keyed by name.
type Set struct {
	presets map[string]Preset
}

type file struct {
	Preset map[string]Preset `toml:"preset"`
}

// Builtin returns the presets shipped with imposer.
func Builtin() *Set {
	s := &Set{presets: make(map[string]Preset)}
	for _, p := range builtins {
		s.presets[p.Name] = p
	}
	return s
}

var builtins = []Preset{
	{Name: "zine", Scheme: impose.SchemeBooklet, PageSize: "a5", Description: "A5 saddle-stitched zine"},
	{Name: "pocket", Scheme: impose.SchemeBooklet, PageSize: "a6", Description: "A6 pocket booklet"},
	{Name: "tent", Scheme: impose.SchemeTentCard, Rotation: 180, PageSize: "a6", Description: "standing table card"},
	{Name: "greeting", Scheme: impose.SchemeSideFoldCard, Rotation: 180, RotationType: "top", PageSize: "a6", Description: "quarter-fold greeting card"},
	{Name: "novel", Scheme: impose.SchemeSignature, SignatureSize: 16, Width: 396, Height: 612, Description: "5.5x8.5in book in 16-page signatures"},
	{Name: "leaflet", Scheme: impose.SchemeTriFoldPamphlet, PageSize: "letter", Description: "letter-fold leaflet"},
}

// Parse decodes presets from TOML data.
func Parse(data []byte) (*Set, error) {
	var f file
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPreset, err, "parse presets")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidPreset, "unknown preset keys: %s", strings.Join(keys, ", "))
	}

	s := &Set{presets: make(map[string]Preset, len(f.Preset))}
	for name, p := range f.Preset {
		p.Name = name
		if err := p.Validate(); err != nil {
			return nil, err
		}
		s.presets[name] = p
	}
	return s, nil
}

// Load reads presets from path.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "preset file %s", path)
		}
		return nil, err
	}
	return Parse(data)
}

// LoadDefault returns the built-ins merged with the user file at
// [DefaultPath], if one exists.
func LoadDefault() (*Set, error) {
	s := Builtin()
	path, err := DefaultPath()
	if err != nil {
		return s, nil
	}
	user, err := Load(path)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	return s.Merge(user), nil
}

// DefaultPath returns $XDG_CONFIG_HOME/imposer/imposer.toml, falling back
// to ~/.config.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "imposer", "imposer.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "imposer", "imposer.toml"), nil
}

// Merge returns a new set holding s overridden by other.
func (s *Set) Merge(other *Set) *Set {
	out := &Set{presets: maps.Clone(s.presets)}
	if other != nil {
		maps.Copy(out.presets, other.presets)
	}
	return out
}

// Get returns the preset called name.
func (s *Set) Get(name string) (Preset, error) {
	p, ok := s.presets[name]
	if !ok {
		return Preset{}, errors.New(errors.ErrCodePresetNotFound, "no preset named %q", name)
	}
	return p, nil
}

// Names returns preset names in sorted order.
func (s *Set) Names() []string {
	return slices.Sorted(maps.Keys(s.presets))
}

// Len returns the number of presets.
func (s *Set) Len() int { return len(s.presets) }

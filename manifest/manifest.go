// Package manifest handles ink.toml project configuration.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/y-lohse/ink/format"
	"github.com/y-lohse/ink/ir"
)

// FileName is the manifest looked up by FindAndLoad.
const FileName = "ink.toml"

// Manifest represents an ink.toml project configuration.
type Manifest struct {
	Story  Story             `toml:"story"`
	Output Output            `toml:"output"`
	Check  Check             `toml:"check"`
	Lint   map[string]string `toml:"lint"`

	// Dir is the directory containing the ink.toml file (set at load time).
	Dir string `toml:"-"`
}

type Story struct {
	Name    string `toml:"name"`
	Version int    `toml:"version"`
}

// Output configures dump and view output.
type Output struct {
	Format format.Format `toml:"format"`
	Color  string        `toml:"color"`
	Dir    string        `toml:"dir"`
}

type Check struct {
	Paths bool `toml:"paths"`
}

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var ErrManifest = errors.New("bad manifest")

// Parse decodes manifest text and applies defaults.
func Parse(data []byte) (*Manifest, error) {
	m := &Manifest{}
	md, err := toml.Decode(string(data), m)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}
	if undec := md.Undecoded(); len(undec) != 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrManifest, undec[0].String())
	}
	if m.Story.Version == 0 {
		m.Story.Version = ir.CurrentVersion
	}
	switch m.Output.Color {
	case "":
		m.Output.Color = ColorAuto
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return nil, fmt.Errorf("%w: output.color %q", ErrManifest, m.Output.Color)
	}
	if !md.IsDefined("output", "format") {
		m.Output.Format = format.JSONFormat
	}
	return m, nil
}

// LoadFile parses the manifest at path.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.Dir, err = filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", path, err)
	}
	return m, nil
}

// Load parses the ink.toml file in dir.
func Load(dir string) (*Manifest, error) {
	return LoadFile(filepath.Join(dir, FileName))
}

// FindAndLoad walks up from startDir to find an ink.toml file,
// then loads and returns the manifest. Returns nil if no manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// OutputPath places name in the configured output directory.
func (m *Manifest) OutputPath(name string) string {
	if m.Output.Dir == "" {
		return name
	}
	if filepath.IsAbs(m.Output.Dir) {
		return filepath.Join(m.Output.Dir, name)
	}
	return filepath.Join(m.Dir, m.Output.Dir, name)
}

package sketch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/argand"
)

// Format is a scene file encoding.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFor picks the encoding from a file extension: .yaml and .yml are
// YAML, everything else is TOML.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// LoadScene reads and validates a scene file. Fields the file leaves out
// take their DefaultScene values.
func LoadScene(path string) (Scene, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return Scene{}, fmt.Errorf("sketch: read scene: %w", err)
	}
	s, err := DecodeScene(data, FormatFor(path))
	if err != nil {
		return Scene{}, fmt.Errorf("sketch: %s: %w", path, err)
	}
	argand.Logger().Debug("sketch: scene loaded",
		"path", path, "vectors", len(s.Vectors), "width", s.Width, "height", s.Height)
	return s, nil
}

// DecodeScene parses a scene in the given format, fills defaults and
// validates it.
func DecodeScene(data []byte, format Format) (Scene, error) {
	var s Scene
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &s); err != nil {
			return Scene{}, fmt.Errorf("TOML parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Scene{}, fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return Scene{}, fmt.Errorf("unsupported format: %s", format)
	}

	s = s.withDefaults()
	if err := s.Validate(); err != nil {
		return Scene{}, err
	}
	return s, nil
}

package sketch

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/argand"
)

// ErrInvalidScene is wrapped by every error returned from Scene.Validate.
var ErrInvalidScene = errors.New("sketch: invalid scene")

// Scene describes one Argand diagram: the canvas, the stroke style and the
// complex numbers to draw as vectors from the origin.
type Scene struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`

	// Unit is the number of pixels per unit on both axes.
	Unit float64 `yaml:"unit" toml:"unit"`

	// Background and Stroke are hex colors: RGB, RGBA, RRGGBB or RRGGBBAA,
	// with or without a leading '#'.
	Background string  `yaml:"background" toml:"background"`
	Stroke     string  `yaml:"stroke" toml:"stroke"`
	LineWidth  float64 `yaml:"lineWidth" toml:"lineWidth"`

	// Labels, when set, prints each vector's value in this form next to
	// its tip.
	Labels argand.Form `yaml:"labels,omitempty" toml:"labels,omitempty"`

	Vectors []Vector `yaml:"vectors" toml:"vectors"`
}

// Vector is one complex number in a scene, given either by its cartesian
// parts (Re, Im) or by modulus and argument (Mod, Arg). A missing member
// of the chosen pair counts as 0.
type Vector struct {
	Re  *float64 `yaml:"re,omitempty" toml:"re,omitempty"`
	Im  *float64 `yaml:"im,omitempty" toml:"im,omitempty"`
	Mod *float64 `yaml:"mod,omitempty" toml:"mod,omitempty"`
	Arg *float64 `yaml:"arg,omitempty" toml:"arg,omitempty"`
}

// Cart returns a Vector with cartesian parts re and im.
func Cart(re, im float64) Vector {
	return Vector{Re: &re, Im: &im}
}

// Polar returns a Vector with modulus mod and argument arg.
func Polar(mod, arg float64) Vector {
	return Vector{Mod: &mod, Arg: &arg}
}

// FromComplex returns the cartesian Vector for c.
func FromComplex(c argand.Complex) Vector {
	return Cart(c.Re(), c.Im())
}

func (v Vector) cartesian() bool { return v.Re != nil || v.Im != nil }
func (v Vector) polar() bool     { return v.Mod != nil || v.Arg != nil }

// Complex returns the complex number v describes.
func (v Vector) Complex() (argand.Complex, error) {
	switch {
	case v.cartesian() && v.polar():
		return argand.Complex{}, fmt.Errorf("%w: vector sets both re/im and mod/arg", ErrInvalidScene)
	case v.cartesian():
		return argand.Cartesian(deref(v.Re), deref(v.Im)), nil
	case v.polar():
		mod := deref(v.Mod)
		if mod < 0 {
			return argand.Complex{}, fmt.Errorf("%w: negative modulus %v", ErrInvalidScene, mod)
		}
		return argand.ModArg(mod, deref(v.Arg)), nil
	default:
		return argand.Complex{}, fmt.Errorf("%w: vector sets neither re/im nor mod/arg", ErrInvalidScene)
	}
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// Scene defaults: a 600x600 dark grey canvas, translucent white 2px lines
// and 10 pixels per unit.
const (
	DefaultWidth      = 600
	DefaultHeight     = 600
	DefaultUnit       = 10.0
	DefaultBackground = "#323232"
	DefaultStroke     = "#ffffff64"
	DefaultLineWidth  = 2.0
)

// DefaultVectors returns -2 + 2i, 3e^(4i) and -2 - 2i.
func DefaultVectors() []Vector {
	return []Vector{
		Cart(-2, 2),
		Polar(3, 4),
		Cart(-2, -2),
	}
}

// DefaultScene returns the default canvas drawing DefaultVectors.
func DefaultScene() Scene {
	return Scene{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Unit:       DefaultUnit,
		Background: DefaultBackground,
		Stroke:     DefaultStroke,
		LineWidth:  DefaultLineWidth,
		Vectors:    DefaultVectors(),
	}
}

// withDefaults fills every unset field from DefaultScene.
func (s Scene) withDefaults() Scene {
	d := DefaultScene()
	if s.Width == 0 {
		s.Width = d.Width
	}
	if s.Height == 0 {
		s.Height = d.Height
	}
	if s.Unit == 0 {
		s.Unit = d.Unit
	}
	if s.Background == "" {
		s.Background = d.Background
	}
	if s.Stroke == "" {
		s.Stroke = d.Stroke
	}
	if s.LineWidth == 0 {
		s.LineWidth = d.LineWidth
	}
	if s.Vectors == nil {
		s.Vectors = d.Vectors
	}
	return s
}

// Validate reports the first problem that would stop the scene from
// rendering. Returned errors wrap ErrInvalidScene.
func (s Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidScene, s.Width, s.Height)
	}
	if !positive(s.Unit) {
		return fmt.Errorf("%w: unit %v must be positive", ErrInvalidScene, s.Unit)
	}
	if !positive(s.LineWidth) {
		return fmt.Errorf("%w: line width %v must be positive", ErrInvalidScene, s.LineWidth)
	}
	if err := checkHex(s.Background); err != nil {
		return fmt.Errorf("%w: background: %v", ErrInvalidScene, err)
	}
	if err := checkHex(s.Stroke); err != nil {
		return fmt.Errorf("%w: stroke: %v", ErrInvalidScene, err)
	}
	if s.Labels != "" && !s.Labels.Valid() {
		return fmt.Errorf("%w: labels: unknown form %q", ErrInvalidScene, s.Labels)
	}
	for i, v := range s.Vectors {
		if _, err := v.Complex(); err != nil {
			return fmt.Errorf("vector %d: %w", i, err)
		}
	}
	return nil
}

// Complexes returns the scene's vectors as complex numbers.
func (s Scene) Complexes() ([]argand.Complex, error) {
	out := make([]argand.Complex, 0, len(s.Vectors))
	for i, v := range s.Vectors {
		c, err := v.Complex()
		if err != nil {
			return nil, fmt.Errorf("vector %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// checkHex accepts the color strings gg.Hex understands.
func checkHex(hex string) error {
	h := strings.TrimPrefix(hex, "#")
	switch len(h) {
	case 3, 4, 6, 8:
	default:
		return fmt.Errorf("color %q: want 3, 4, 6 or 8 hex digits", hex)
	}
	if _, err := strconv.ParseUint(h, 16, 32); err != nil {
		return fmt.Errorf("color %q: not hexadecimal", hex)
	}
	return nil
}

// positive reports whether x is finite and greater than zero.
func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

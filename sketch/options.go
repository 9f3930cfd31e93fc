package sketch

import "github.com/gogpu/argand"

// Option configures a Scene built with New.
//
// Example:
//
//	s := sketch.New(
//	    sketch.WithSize(400, 400),
//	    sketch.WithUnit(40),
//	    sketch.WithVectors(argand.Cartesian(1, 1), argand.ModArg(2, math.Pi/3)),
//	)
type Option func(*Scene)

// New returns DefaultScene with opts applied in order.
func New(opts ...Option) Scene {
	s := DefaultScene()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithSize sets the canvas size in pixels.
func WithSize(width, height int) Option {
	return func(s *Scene) {
		s.Width = width
		s.Height = height
	}
}

// WithUnit sets the number of pixels per unit.
func WithUnit(unit float64) Option {
	return func(s *Scene) {
		s.Unit = unit
	}
}

// WithBackground sets the background hex color.
func WithBackground(hex string) Option {
	return func(s *Scene) {
		s.Background = hex
	}
}

// WithStroke sets the line hex color.
func WithStroke(hex string) Option {
	return func(s *Scene) {
		s.Stroke = hex
	}
}

// WithLineWidth sets the line width in pixels.
func WithLineWidth(width float64) Option {
	return func(s *Scene) {
		s.LineWidth = width
	}
}

// WithLabels labels each vector tip with its value in form f.
func WithLabels(f argand.Form) Option {
	return func(s *Scene) {
		s.Labels = f
	}
}

// WithVectors replaces the scene's vectors.
func WithVectors(cs ...argand.Complex) Option {
	return func(s *Scene) {
		s.Vectors = make([]Vector, len(cs))
		for i, c := range cs {
			s.Vectors[i] = FromComplex(c)
		}
	}
}

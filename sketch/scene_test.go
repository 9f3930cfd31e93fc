package sketch

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/argand"
)

func TestDefaultScene(t *testing.T) {
	s := DefaultScene()
	if s.Width != 600 || s.Height != 600 {
		t.Errorf("size = %dx%d, want 600x600", s.Width, s.Height)
	}
	if s.Unit != 10 || s.LineWidth != 2 {
		t.Errorf("unit = %v, line width = %v", s.Unit, s.LineWidth)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("DefaultScene().Validate() = %v", err)
	}

	cs, err := s.Complexes()
	if err != nil {
		t.Fatalf("Complexes() = %v", err)
	}
	want := []argand.Complex{argand.Cartesian(-2, 2), argand.ModArg(3, 4), argand.Cartesian(-2, -2)}
	if len(cs) != len(want) {
		t.Fatalf("len(Complexes()) = %d, want %d", len(cs), len(want))
	}
	for i := range want {
		if cs[i] != want[i] {
			t.Errorf("vector %d = %v, want %v", i, cs[i], want[i])
		}
	}
}

func TestDefaultScene_Independent(t *testing.T) {
	a := DefaultScene()
	a.Vectors[0] = Cart(9, 9)
	b := DefaultScene()
	if *b.Vectors[0].Re != -2 {
		t.Error("DefaultScene() must return fresh vectors")
	}
}

func TestVector_Complex(t *testing.T) {
	one := 1.0
	tests := []struct {
		name    string
		v       Vector
		want    argand.Complex
		wantErr bool
	}{
		{"cartesian", Cart(3, 4), argand.Cartesian(3, 4), false},
		{"polar", Polar(2, math.Pi), argand.ModArg(2, math.Pi), false},
		{"only re", Vector{Re: &one}, argand.Cartesian(1, 0), false},
		{"only arg", Vector{Arg: &one}, argand.ModArg(0, 1), false},
		{"both pairs", Vector{Re: &one, Mod: &one}, argand.Complex{}, true},
		{"neither pair", Vector{}, argand.Complex{}, true},
		{"negative modulus", Polar(-1, 0), argand.Complex{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.v.Complex()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidScene) {
					t.Errorf("err = %v, want ErrInvalidScene", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("err = %v", err)
			}
			if got != tt.want {
				t.Errorf("Complex() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScene_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Scene)
	}{
		{"zero width", func(s *Scene) { s.Width = 0 }},
		{"negative height", func(s *Scene) { s.Height = -1 }},
		{"zero unit", func(s *Scene) { s.Unit = 0 }},
		{"negative line width", func(s *Scene) { s.LineWidth = -2 }},
		{"NaN unit", func(s *Scene) { s.Unit = math.NaN() }},
		{"infinite unit", func(s *Scene) { s.Unit = math.Inf(1) }},
		{"infinite line width", func(s *Scene) { s.LineWidth = math.Inf(1) }},
		{"bad background length", func(s *Scene) { s.Background = "#12345" }},
		{"bad stroke digits", func(s *Scene) { s.Stroke = "#gggggg" }},
		{"unknown labels", func(s *Scene) { s.Labels = "polar" }},
		{"bad vector", func(s *Scene) { s.Vectors = append(s.Vectors, Vector{}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultScene()
			tt.mutate(&s)
			if err := s.Validate(); !errors.Is(err, ErrInvalidScene) {
				t.Errorf("Validate() = %v, want ErrInvalidScene", err)
			}
		})
	}
}

func TestCheckHex(t *testing.T) {
	for _, ok := range []string{"#fff", "ffff", "#323232", "ffffff64", "#FFFFFF64"} {
		if err := checkHex(ok); err != nil {
			t.Errorf("checkHex(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"", "#", "#ff", "#12345", "#xyz", "#1234567890"} {
		if err := checkHex(bad); err == nil {
			t.Errorf("checkHex(%q) = nil, want error", bad)
		}
	}
}

func TestNew_Options(t *testing.T) {
	s := New(
		WithSize(200, 100),
		WithUnit(25),
		WithBackground("#000"),
		WithStroke("#ff0000"),
		WithLineWidth(3),
		WithLabels(argand.FormEulerPiS),
		WithVectors(argand.Cartesian(1, 1), argand.Cartesian(0, -1)),
	)
	if s.Width != 200 || s.Height != 100 || s.Unit != 25 || s.LineWidth != 3 {
		t.Errorf("scene = %+v", s)
	}
	if s.Background != "#000" || s.Stroke != "#ff0000" || s.Labels != argand.FormEulerPiS {
		t.Errorf("style = %q %q %q", s.Background, s.Stroke, s.Labels)
	}
	if len(s.Vectors) != 2 || *s.Vectors[1].Im != -1 {
		t.Errorf("vectors = %+v", s.Vectors)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestNew_NoOptions(t *testing.T) {
	s := New()
	d := DefaultScene()
	if s.Width != d.Width || s.Stroke != d.Stroke || len(s.Vectors) != len(d.Vectors) {
		t.Errorf("New() = %+v, want defaults", s)
	}
}

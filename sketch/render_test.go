package sketch

import (
	"bytes"
	"errors"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/argand"
)

func near(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func TestScene_View(t *testing.T) {
	view := DefaultScene().View(600, 600)
	tests := []struct {
		in, want gg.Point
	}{
		{gg.Pt(0, 0), gg.Pt(300, 300)},
		{gg.Pt(1, 0), gg.Pt(310, 300)},
		{gg.Pt(0, 1), gg.Pt(300, 290)},
		{gg.Pt(-2, -2), gg.Pt(280, 320)},
	}
	for _, tt := range tests {
		got := view.TransformPoint(tt.in)
		if !near(got.X, tt.want.X, 1e-9) || !near(got.Y, tt.want.Y, 1e-9) {
			t.Errorf("View(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSegments_DefaultScene(t *testing.T) {
	segs, err := Segments(DefaultScene())
	if err != nil {
		t.Fatalf("Segments() = %v", err)
	}
	if len(segs) != 3 {
		t.Fatalf("len(Segments()) = %d, want 3", len(segs))
	}

	want := []gg.Point{
		gg.Pt(280, 280),
		gg.Pt(300+30*math.Cos(4), 300-30*math.Sin(4)),
		gg.Pt(280, 320),
	}
	for i, seg := range segs {
		if seg.From != gg.Pt(300, 300) {
			t.Errorf("segment %d starts at %v, want the canvas centre", i, seg.From)
		}
		if !near(seg.To.X, want[i].X, 1e-9) || !near(seg.To.Y, want[i].Y, 1e-9) {
			t.Errorf("segment %d ends at %v, want %v", i, seg.To, want[i])
		}
	}
}

func TestSegments_SkipsNonFinite(t *testing.T) {
	s := New(WithVectors(argand.Cartesian(1, 1), argand.Cartesian(math.NaN(), 0), argand.Cartesian(math.Inf(1), 1)))
	segs, err := Segments(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(segs) != 1 {
		t.Errorf("len(Segments()) = %d, want 1", len(segs))
	}
}

func TestRenderImage(t *testing.T) {
	img, err := RenderImage(DefaultScene())
	if err != nil {
		t.Fatalf("RenderImage() = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 600 || b.Dy() != 600 {
		t.Fatalf("bounds = %v, want 600x600", b)
	}

	// Far from every vector only the background shows.
	for _, p := range [][2]int{{0, 0}, {599, 599}, {450, 100}} {
		c := img.RGBAAt(p[0], p[1])
		if !near(float64(c.R), 50, 2) || !near(float64(c.G), 50, 2) || !near(float64(c.B), 50, 2) {
			t.Errorf("pixel %v = %v, want background grey 50", p, c)
		}
	}

	// Halfway along -2 + 2i the translucent white line lightens the grey.
	if c := img.RGBAAt(290, 290); c.R < 90 {
		t.Errorf("pixel on vector = %v, want lighter than background", c)
	}
}

func TestRender_CentresOnContext(t *testing.T) {
	dc := gg.NewContext(200, 100)
	defer func() { _ = dc.Close() }()

	s := New(WithVectors(argand.Cartesian(5, 0)), WithStroke("#ffffff"), WithLineWidth(4))
	if err := Render(dc, s); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	img := toRGBA(dc.Image())
	if c := img.RGBAAt(125, 50); c.R < 200 {
		t.Errorf("pixel on vector = %v, want white", c)
	}
	if c := img.RGBAAt(75, 50); c.R > 60 {
		t.Errorf("pixel left of origin = %v, want background", c)
	}
}

func TestRender_Labels(t *testing.T) {
	plain, err := RenderImage(DefaultScene())
	if err != nil {
		t.Fatal(err)
	}
	labelled, err := RenderImage(New(WithLabels(argand.FormCartesianS)))
	if err != nil {
		t.Fatalf("RenderImage(labels) = %v", err)
	}
	if bytes.Equal(plain.Pix, labelled.Pix) {
		t.Error("labels did not change the image")
	}
}

func TestRender_Invalid(t *testing.T) {
	dc := gg.NewContext(10, 10)
	defer func() { _ = dc.Close() }()

	if err := Render(dc, New(WithUnit(-1))); !errors.Is(err, ErrInvalidScene) {
		t.Errorf("Render(invalid) = %v, want ErrInvalidScene", err)
	}
	if _, err := RenderImage(New(WithSize(0, 10))); !errors.Is(err, ErrInvalidScene) {
		t.Errorf("RenderImage(invalid) = %v, want ErrInvalidScene", err)
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, New(WithSize(64, 32))); err != nil {
		t.Fatalf("WritePNG() = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Errorf("decoded bounds = %v, want 64x32", b)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.png")
	if err := SavePNG(path, DefaultScene()); err != nil {
		t.Fatalf("SavePNG() = %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("png.DecodeConfig() = %v", err)
	}
	if cfg.Width != 600 || cfg.Height != 600 {
		t.Errorf("saved size = %dx%d, want 600x600", cfg.Width, cfg.Height)
	}
}

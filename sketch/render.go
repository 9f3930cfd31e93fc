package sketch

import (
	"fmt"
	"image"
	"io"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/argand"
)

// LabelSize is the font size of vector labels in points.
const LabelSize = 12.0

// Segment is one vector in device space, from the canvas origin to the
// tip of the complex number.
type Segment struct {
	Value    argand.Complex
	From, To gg.Point
}

// View returns the transform from the complex plane to device pixels on a
// width x height canvas: origin at the centre, imaginary axis pointing up,
// Unit pixels per unit.
func (s Scene) View(width, height int) gg.Matrix {
	return gg.Translate(float64(width)/2, float64(height)/2).
		Multiply(gg.Scale(s.Unit, -s.Unit))
}

// Segments returns the device-space lines for the scene's vectors on its
// own canvas size. Vectors with non-finite parts are skipped.
func Segments(s Scene) ([]Segment, error) {
	cs, err := s.Complexes()
	if err != nil {
		return nil, err
	}
	return segments(cs, s.View(s.Width, s.Height)), nil
}

func segments(cs []argand.Complex, view gg.Matrix) []Segment {
	origin := view.TransformPoint(gg.Pt(0, 0))
	out := make([]Segment, 0, len(cs))
	for i, c := range cs {
		if !finite(c.Re()) || !finite(c.Im()) {
			argand.Logger().Warn("sketch: skipping non-finite vector", "index", i, "value", c.String())
			continue
		}
		out = append(out, Segment{
			Value: c,
			From:  origin,
			To:    view.TransformPoint(gg.Pt(c.Re(), c.Im())),
		})
	}
	return out
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Render clears dc with the scene background and strokes one line per
// vector. The diagram is centred on dc, whatever its size.
func Render(dc *gg.Context, s Scene) error {
	if err := s.Validate(); err != nil {
		return err
	}
	cs, err := s.Complexes()
	if err != nil {
		return err
	}

	dc.ClearWithColor(gg.Hex(s.Background))

	stroke := gg.Hex(s.Stroke)
	dc.SetRGBA(stroke.R, stroke.G, stroke.B, stroke.A)
	dc.SetLineWidth(s.LineWidth)
	dc.SetLineCap(gg.LineCapRound)

	segs := segments(cs, s.View(dc.Width(), dc.Height()))
	for i, seg := range segs {
		dc.DrawLine(seg.From.X, seg.From.Y, seg.To.X, seg.To.Y)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("sketch: stroke vector %d: %w", i, err)
		}
	}

	if s.Labels != "" {
		if err := drawLabels(dc, segs, s.Labels); err != nil {
			return err
		}
	}

	argand.Logger().Debug("sketch: rendered",
		"vectors", len(segs), "width", dc.Width(), "height", dc.Height(), "labels", s.Labels.String())
	return nil
}

var (
	labelFaceOnce sync.Once
	labelFace     text.Face
	labelFaceErr  error
)

// labelFont returns the Go Regular face used for labels, parsed once.
func labelFont() (text.Face, error) {
	labelFaceOnce.Do(func() {
		source, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			labelFaceErr = fmt.Errorf("sketch: load label font: %w", err)
			return
		}
		labelFace = source.Face(LabelSize)
	})
	return labelFace, labelFaceErr
}

func drawLabels(dc *gg.Context, segs []Segment, form argand.Form) error {
	face, err := labelFont()
	if err != nil {
		return err
	}
	dc.SetFont(face)
	for _, seg := range segs {
		label, err := seg.Value.Text(form)
		if err != nil {
			return fmt.Errorf("sketch: label: %w", err)
		}
		// Anchor away from the origin so the text never covers its line.
		ax, ay := 0.0, 0.0
		if seg.To.X < seg.From.X {
			ax = 1
		}
		if seg.To.Y > seg.From.Y {
			ay = 1
		}
		dc.DrawStringAnchored(label, seg.To.X, seg.To.Y, ax, ay)
	}
	return nil
}

// RenderImage renders the scene onto a new canvas of the scene's size.
func RenderImage(s Scene) (*image.RGBA, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	dc := gg.NewContext(s.Width, s.Height)
	defer func() {
		_ = dc.Close()
	}()

	if err := Render(dc, s); err != nil {
		return nil, err
	}
	return toRGBA(dc.Image()), nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}

// WritePNG renders the scene and encodes it as PNG to w.
func WritePNG(w io.Writer, s Scene) error {
	if err := s.Validate(); err != nil {
		return err
	}
	dc := gg.NewContext(s.Width, s.Height)
	defer func() {
		_ = dc.Close()
	}()

	if err := Render(dc, s); err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// SavePNG renders the scene to a PNG file at path.
func SavePNG(path string, s Scene) error {
	if err := s.Validate(); err != nil {
		return err
	}
	dc := gg.NewContext(s.Width, s.Height)
	defer func() {
		_ = dc.Close()
	}()

	if err := Render(dc, s); err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("sketch: save %s: %w", path, err)
	}
	argand.Logger().Info("sketch: wrote PNG", "path", path, "width", s.Width, "height", s.Height)
	return nil
}

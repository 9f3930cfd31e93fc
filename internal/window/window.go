// Package window shows a sketch scene in a desktop window, redrawing it
// once per frame.
package window

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"

	"github.com/gogpu/argand"
	"github.com/gogpu/argand/sketch"
)

// Run opens a window sized to the scene and blocks until it is closed or
// Escape is pressed.
func Run(s sketch.Scene, title string) error {
	if err := s.Validate(); err != nil {
		return err
	}

	g := &game{
		scene: s,
		dc:    gg.NewContext(s.Width, s.Height),
	}
	defer func() {
		_ = g.dc.Close()
	}()

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(s.Width, s.Height)
	ebiten.SetTPS(60)
	argand.Logger().Info("window: opened", "title", title, "width", s.Width, "height", s.Height)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

type game struct {
	scene sketch.Scene
	dc    *gg.Context
	frame *ebiten.Image
	rgba  *image.RGBA
	err   error
}

func (g *game) Update() error {
	if g.err != nil {
		return g.err
	}
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if err := sketch.Render(g.dc, g.scene); err != nil {
		// Draw cannot fail; Update reports it on the next tick.
		g.err = err
		return
	}

	img := g.dc.Image()
	rgba, ok := img.(*image.RGBA)
	if !ok {
		if g.rgba == nil {
			g.rgba = image.NewRGBA(img.Bounds())
		}
		draw.Draw(g.rgba, g.rgba.Bounds(), img, img.Bounds().Min, draw.Src)
		rgba = g.rgba
	}

	if g.frame == nil {
		g.frame = ebiten.NewImage(g.scene.Width, g.scene.Height)
	}
	g.frame.WritePixels(rgba.Pix)
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.scene.Width, g.scene.Height
}

package gui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/math/f64"

	"github.com/samdwyer/gridsnake/internal/theme"
	"github.com/samdwyer/gridsnake/internal/ui"
)

// imageSize is the edge of the generated images before scaling.
const imageSize = 16

// Canvas draws onto the ebiten screen image of the current frame.
type Canvas struct {
	dst    *ebiten.Image
	source *text.GoTextFaceSource
	images map[ui.ImageID]*ebiten.Image
}

// NewCanvas loads the arcade font and generates the images in the palette's colours.
func NewCanvas(p theme.Palette) (*Canvas, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &Canvas{
		source: s,
		images: map[ui.ImageID]*ebiten.Image{
			ui.ImageFood: foodImage(p),
			ui.ImageLogo: logoImage(p),
		},
	}, nil
}

// Target sets the image drawn to by the next calls.
func (c *Canvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

func (c *Canvas) Clear(clr color.Color) {
	c.dst.Fill(clr)
}

func (c *Canvas) DrawRect(pos, size f64.Vec2, clr color.Color) {
	vector.DrawFilledRect(c.dst, float32(pos[0]), float32(pos[1]), float32(size[0]), float32(size[1]), clr, false)
}

func (c *Canvas) DrawText(s string, pos f64.Vec2, size float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(pos[0], pos[1])
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(c.dst, s, c.face(size), op)
}

func (c *Canvas) DrawImage(id ui.ImageID, pos, size f64.Vec2) {
	img, ok := c.images[id]
	if !ok {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size[0]/float64(b.Dx()), size[1]/float64(b.Dy()))
	op.GeoM.Translate(pos[0], pos[1])
	c.dst.DrawImage(img, op)
}

// MeasureText implements session.TextMeasurer. It needs no target image.
func (c *Canvas) MeasureText(s string, size float64) f64.Vec2 {
	w, h := text.Measure(s, c.face(size), 0)
	return f64.Vec2{w, h}
}

func (c *Canvas) face(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: c.source, Size: size}
}

// foodImage is a filled circle in the food colour.
func foodImage(p theme.Palette) *ebiten.Image {
	img := ebiten.NewImage(imageSize, imageSize)
	r := float32(imageSize) / 2
	vector.DrawFilledCircle(img, r, r, r-1, p.Food, true)
	return img
}

// logoImage is a three segment snake with a food cell.
func logoImage(p theme.Palette) *ebiten.Image {
	img := ebiten.NewImage(imageSize, imageSize)
	const seg = imageSize / 4
	for i := 0; i < 3; i++ {
		clr := p.Snake
		if i == 2 {
			clr = p.Head
		}
		vector.DrawFilledRect(img, float32(i*seg), float32(seg), seg-1, seg-1, clr, false)
	}
	vector.DrawFilledCircle(img, float32(3*seg)+seg/2, float32(3*seg)+seg/2, seg/2, p.Food, true)
	return img
}

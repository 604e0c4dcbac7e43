// Package preview renders pipeline output to a PNG so results can be
// inspected without driving the pointer.
package preview

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	imgdraw "github.com/flawnn/img-to-drawing"
)

const padding = 10

// Render draws the polylines onto a white canvas sized to their combined
// bounding box plus padding. Returns nil when there is nothing to draw.
func Render(polylines []imgdraw.Polyline) image.Image {
	bb, ok := boundingBox(polylines)
	if !ok {
		return nil
	}

	width := int(math.Ceil(bb.Width())) + padding*2
	height := int(math.Ceil(bb.Height())) + padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Shift so the drawing's own bounding box starts at the padding edge
	c.Translate(padding, padding)
	c.Translate(-bb.Min.X, -bb.Min.Y)

	c.SetRGB(0, 0, 0)
	c.SetLineWidth(1)
	for _, pl := range polylines {
		if len(pl) < 2 {
			continue
		}
		c.MoveTo(pl[0].X, pl[0].Y)
		for _, p := range pl[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.Stroke()
	}
	return c.Image()
}

// Save renders the polylines and writes them to a PNG file.
func Save(polylines []imgdraw.Polyline, path string) error {
	im := Render(polylines)
	if im == nil {
		return fmt.Errorf("preview: nothing to render")
	}
	return gg.SavePNG(path, im)
}

// Cat writes the PNG at path to w using the iTerm2 inline-image protocol.
func Cat(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}

func boundingBox(polylines []imgdraw.Polyline) (imgdraw.Rect, bool) {
	var bb imgdraw.Rect
	found := false
	for _, pl := range polylines {
		if len(pl) < 2 {
			continue
		}
		if !found {
			bb = pl.BoundingBox()
			found = true
			continue
		}
		bb = bb.Union(pl.BoundingBox())
	}
	return bb, found
}

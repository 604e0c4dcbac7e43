package imgdraw

import (
	"fmt"
	"image"
	"image/draw"
)

// Mask is a binary foreground/background bitmap produced by [Binarize].
// Pix is row-major; a true pixel is foreground ("ink").
type Mask struct {
	W, H int
	Pix  []bool
}

// NewMask creates an all-background mask of the given dimensions.
func NewMask(w, h int) *Mask {
	return &Mask{W: w, H: h, Pix: make([]bool, w*h)}
}

// At reports whether the pixel at (x, y) is foreground.
func (m *Mask) At(x, y int) bool {
	return m.Pix[y*m.W+x]
}

// Set marks the pixel at (x, y) as foreground or background.
func (m *Mask) Set(x, y int, v bool) {
	m.Pix[y*m.W+x] = v
}

// Foreground returns the number of foreground pixels.
func (m *Mask) Foreground() int {
	n := 0
	for _, v := range m.Pix {
		if v {
			n++
		}
	}
	return n
}

// Binarize thresholds a grayscale image into a foreground mask. A pixel is
// foreground iff its intensity is strictly less than threshold, so a pixel
// exactly at the threshold is background. Pure function.
//
// Returns [ErrInvalidInput] if the image is nil or empty, or if threshold
// is outside [0, 255].
func Binarize(img *image.Gray, threshold int) (*Mask, error) {
	if img == nil || img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrInvalidInput)
	}
	if threshold < 0 || threshold > 255 {
		return nil, fmt.Errorf("%w: threshold %d outside [0, 255]", ErrInvalidInput, threshold)
	}

	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.H; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
		for x := 0; x < m.W; x++ {
			if int(row[x]) < threshold {
				m.Pix[y*m.W+x] = true
			}
		}
	}
	return m, nil
}

// Grayscale converts any image to 8-bit grayscale. Images that are already
// *image.Gray are returned as-is.
func Grayscale(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	g := image.NewGray(b)
	draw.Draw(g, b, img, b.Min, draw.Src)
	return g
}

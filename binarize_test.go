package imgdraw

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func grayImage(w, h int, fill uint8) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, w, h))
	for i := range g.Pix {
		g.Pix[i] = fill
	}
	return g
}

func TestBinarize_ThresholdBoundary(t *testing.T) {
	// A pixel exactly at the threshold must be background: strict '<'.
	tests := []struct {
		name       string
		value      uint8
		threshold  int
		foreground bool
	}{
		{"below threshold", 127, 128, true},
		{"at threshold", 128, 128, false},
		{"above threshold", 129, 128, false},
		{"black at threshold 0", 0, 0, false},
		{"white below threshold 255", 254, 255, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Binarize(grayImage(3, 3, tt.value), tt.threshold)
			if err != nil {
				t.Fatalf("Binarize: %v", err)
			}
			if got := m.At(1, 1); got != tt.foreground {
				t.Errorf("At(1,1) = %v, want %v", got, tt.foreground)
			}
		})
	}
}

func TestBinarize_InvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		img       *image.Gray
		threshold int
	}{
		{"nil image", nil, 128},
		{"empty image", image.NewGray(image.Rect(0, 0, 0, 0)), 128},
		{"threshold too low", grayImage(2, 2, 0), -1},
		{"threshold too high", grayImage(2, 2, 0), 256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Binarize(tt.img, tt.threshold)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestBinarize_SubImage(t *testing.T) {
	// Binarization must honor non-zero bounds.
	g := grayImage(10, 10, 200)
	g.SetGray(5, 5, color.Gray{Y: 10})
	sub := g.SubImage(image.Rect(4, 4, 8, 8)).(*image.Gray)

	m, err := Binarize(sub, 128)
	if err != nil {
		t.Fatalf("Binarize: %v", err)
	}
	if m.W != 4 || m.H != 4 {
		t.Fatalf("mask size = %dx%d, want 4x4", m.W, m.H)
	}
	if !m.At(1, 1) {
		t.Error("dark pixel at sub-image (1,1) should be foreground")
	}
	if m.Foreground() != 1 {
		t.Errorf("Foreground() = %d, want 1", m.Foreground())
	}
}

func TestGrayscale(t *testing.T) {
	g := grayImage(4, 4, 42)
	if Grayscale(g) != g {
		t.Error("Grayscale should return *image.Gray unchanged")
	}

	rgba := image.NewRGBA(image.Rect(0, 0, 2, 2))
	rgba.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	out := Grayscale(rgba)
	if out.GrayAt(0, 0).Y < 250 {
		t.Errorf("white pixel converted to %d, want near 255", out.GrayAt(0, 0).Y)
	}
	if out.GrayAt(1, 1).Y > 5 {
		t.Errorf("black pixel converted to %d, want near 0", out.GrayAt(1, 1).Y)
	}
}

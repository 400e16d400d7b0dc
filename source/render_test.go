package source

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestRenderFacsimileSize(t *testing.T) {
	r := Rect{X0: 10, Y0: 20, X1: 110, Y1: 60}
	img := renderFacsimile(nil, r, 3.0)

	if w := img.Bounds().Dx(); w != 300 {
		t.Errorf("width = %d, want 300", w)
	}
	if h := img.Bounds().Dy(); h != 120 {
		t.Errorf("height = %d, want 120", h)
	}
}

func TestRenderFacsimileWhiteBackground(t *testing.T) {
	img := renderFacsimile(nil, Rect{X0: 0, Y0: 0, X1: 50, Y1: 20}, 1.0)
	if got := img.At(0, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("corner pixel = %v, want white", got)
	}
}

func TestRenderFacsimileDrawsIntersectingLines(t *testing.T) {
	lines := buildLines([]fragment{frag(10, 10, 60, "VOUT = 5 V")})
	crop := Rect{X0: 0, Y0: 0, X1: 100, Y1: 40}

	img := renderFacsimile(lines, crop, 2.0)

	// Some pixel inside the crop turned black.
	black := false
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !black; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			if cr == 0 && cg == 0 && cb == 0 {
				black = true
				break
			}
		}
	}
	if !black {
		t.Error("no text pixels drawn for an intersecting line")
	}
}

func TestRenderFacsimileDegenerateRect(t *testing.T) {
	img := renderFacsimile(nil, Rect{}, 3.0)
	if img.Bounds().Dx() < 1 || img.Bounds().Dy() < 1 {
		t.Errorf("bounds = %v, want at least 1x1", img.Bounds())
	}
}

func TestWritePNG(t *testing.T) {
	img := renderFacsimile(nil, Rect{X0: 0, Y0: 0, X1: 40, Y1: 20}, 1.0)
	out := filepath.Join(t.TempDir(), "nested", "snap.png")

	if err := writePNG(img, out); err != nil {
		t.Fatalf("writePNG: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("opening snapshot: %v", err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding snapshot: %v", err)
	}
	if decoded.Bounds().Dx() != 40 || decoded.Bounds().Dy() != 20 {
		t.Errorf("decoded bounds = %v, want 40x20", decoded.Bounds())
	}
}

package source

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// maxSnapshotDim caps snapshot width and height in pixels; degenerate or
// oversized crop rectangles would otherwise allocate unbounded images.
const maxSnapshotDim = 8192

// RenderRegion writes a PNG snapshot of the given page rectangle to
// outPath, scaled by zoom. The snapshot is a text facsimile: the region's
// text lines drawn on a white canvas at their scaled positions. There is no
// native PDF raster backend here; snapshots give reviewers a visual anchor
// for each record, they are not a faithful reproduction of the page.
// page is 0-based.
func (d *Document) RenderRegion(page int, r Rect, zoom float64, outPath string) error {
	frags, err := d.pageFragments(page)
	if err != nil {
		return err
	}
	return writePNG(renderFacsimile(buildLines(frags), r, zoom), outPath)
}

// renderFacsimile draws the lines intersecting r onto a white canvas
// sized r scaled by zoom.
func renderFacsimile(lines []line, r Rect, zoom float64) *image.RGBA {
	if zoom <= 0 {
		zoom = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, snapshotDim(r.Width(), zoom), snapshotDim(r.Height(), zoom)))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
	}
	for _, l := range lines {
		if !l.rect.intersects(r) {
			continue
		}
		drawer.Dot = fixed.P(
			int((l.rect.X0-r.X0)*zoom),
			int((l.rect.Y1-r.Y0)*zoom),
		)
		drawer.DrawString(l.text)
	}
	return img
}

// writePNG encodes img to outPath, creating the parent directory.
func writePNG(img *image.RGBA, outPath string) error {
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating snapshot dir: %w", err)
		}
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}

// snapshotDim converts a page extent to a pixel dimension, clamped to
// [1, maxSnapshotDim].
func snapshotDim(extent, zoom float64) int {
	px := int(math.Ceil(extent * zoom))
	if px < 1 {
		return 1
	}
	if px > maxSnapshotDim {
		return maxSnapshotDim
	}
	return px
}

// Package ico draws the window icon.
package ico

import (
	"image"

	"github.com/fogleman/gg"
)

// Draw returns a size by size icon of a small keyboard.
func Draw(size int) *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	dc := gg.NewContextForRGBA(rgba)
	s := float64(size)
	m := s / 8
	w := (s - 2*m) / 4
	dc.SetRGB(1, 1, 1)
	dc.DrawRoundedRectangle(m, m, s-2*m, s-2*m, m/2)
	dc.FillPreserve()
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(s / 32)
	dc.Stroke()
	for i := 1; i < 4; i++ {
		x := m + float64(i)*w
		dc.DrawLine(x, m, x, s-m)
		dc.Stroke()
		dc.DrawRectangle(x-w/4, m, w/2, (s-2*m)*.6)
		dc.Fill()
	}
	return rgba
}

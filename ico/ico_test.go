package ico

import (
	"image/color"
	"testing"
)

func TestDraw(t *testing.T) {
	for _, size := range []int{16, 32, 64} {
		img := Draw(size)
		if img.Bounds().Dx() != size || img.Bounds().Dy() != size {
			t.Fatalf("expected %dx%d icon, got %v", size, size, img.Bounds())
		}
		if c := img.RGBAAt(0, 0); c != (color.RGBA{}) {
			t.Errorf("expected transparent corner, got %v", c)
		}
		if c := img.RGBAAt(size/2, size-size/4); c.A == 0 {
			t.Errorf("expected opaque key at %d", size)
		}
	}
}

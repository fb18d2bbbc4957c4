package imguidemo

import (
	"image"
	"image/color"
)

// PreviewCell is the checkerboard cell size of PreviewImage, in pixels.
const PreviewCell = 16

// PreviewImage builds an opaque checkerboard tinted by a horizontal and
// vertical colour gradient. Both hosts upload it for the texture tab.
func PreviewImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r := uint8(x * 255 / max(width-1, 1))
			g := uint8(y * 255 / max(height-1, 1))
			b := uint8(255 - int(r)/2 - int(g)/2)
			if (x/PreviewCell+y/PreviewCell)%2 == 1 {
				r, g, b = r/2, g/2, b/2
			}
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// Premultiply converts straight-alpha RGBA bytes to premultiplied alpha in
// place. Trailing bytes that do not form a whole pixel are left alone.
func Premultiply(pix []byte) {
	for i := 0; i+3 < len(pix); i += 4 {
		a := uint16(pix[i+3])
		if a == 255 {
			continue
		}
		pix[i+0] = uint8((uint16(pix[i+0])*a + 127) / 255)
		pix[i+1] = uint8((uint16(pix[i+1])*a + 127) / 255)
		pix[i+2] = uint8((uint16(pix[i+2])*a + 127) / 255)
	}
}

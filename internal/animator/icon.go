package animator

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

const iconSize = 32

// Icon is a rendered status icon: the decoded pixels plus the PNG encoding the
// status-indicator surface consumes.
type Icon struct {
	img *image.NRGBA
	png []byte
}

// PNG returns the encoded icon bytes.
func (i *Icon) PNG() []byte {
	return i.png
}

// Bounds returns the pixel dimensions of the icon.
func (i *Icon) Bounds() image.Rectangle {
	return i.img.Bounds()
}

// LoadIcon reads a PNG icon from path. When path is empty or unreadable the
// built-in fallback icon is returned instead, so a missing icon file never
// prevents startup.
func LoadIcon(path string) (*Icon, error) {
	if path == "" {
		return fallbackIcon(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fallbackIcon(), fmt.Errorf("read icon %s: %w", path, err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return fallbackIcon(), fmt.Errorf("decode icon %s: %w", path, err)
	}
	nrgba := toNRGBA(img)
	return &Icon{img: nrgba, png: encodePNG(nrgba)}, nil
}

// fallbackIcon draws a simple package glyph: a grey box with a white
// down-arrow, matching the shape users expect from an update indicator.
func fallbackIcon() *Icon {
	img := image.NewNRGBA(image.Rect(0, 0, iconSize, iconSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.NRGBA{R: 100, G: 100, B: 100, A: 255}), image.Point{}, draw.Src)

	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	// Arrow shaft.
	for y := 6; y < 18; y++ {
		for x := 13; x < 19; x++ {
			img.SetNRGBA(x, y, white)
		}
	}
	// Arrow head.
	for dy := 0; dy < 8; dy++ {
		for x := 8 + dy; x < 24-dy; x++ {
			img.SetNRGBA(x, 18+dy, white)
		}
	}
	return &Icon{img: img, png: encodePNG(img)}
}

// withBrightness returns a copy of the icon alpha-composited to the given
// factor, the same effect as painting the icon at partial opacity.
func (i *Icon) withBrightness(factor float64) *Icon {
	bounds := i.img.Bounds()
	out := image.NewNRGBA(bounds)
	copy(out.Pix, i.img.Pix)
	for idx := 3; idx < len(out.Pix); idx += 4 {
		out.Pix[idx] = uint8(float64(out.Pix[idx]) * factor)
	}
	return &Icon{img: out, png: encodePNG(out)}
}

func toNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok {
		return nrgba
	}
	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)
	draw.Draw(out, bounds, img, bounds.Min, draw.Src)
	return out
}

func encodePNG(img *image.NRGBA) []byte {
	var buf bytes.Buffer
	// Encoding an in-memory NRGBA image cannot fail.
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

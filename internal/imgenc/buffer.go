package imgenc

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/pkg/errors"
)

// ErrImageEncoding is returned for a malformed buffer. Nothing is produced.
var ErrImageEncoding = errors.New("imgenc: malformed image buffer")

// Buffer is a packed pixel array. Channels is 1 (gray), 3 (RGB) or 4
// (non-premultiplied RGBA). Stride is the byte distance between rows.
type Buffer struct {
	Width, Height int
	Channels      int
	Stride        int
	Pix           []uint8
}

// Validate reports why b cannot be encoded.
func (b Buffer) Validate() error {
	switch {
	case b.Width <= 0 || b.Height <= 0:
		return errors.Wrapf(ErrImageEncoding, "zero dimension %dx%d", b.Width, b.Height)
	case b.Channels != 1 && b.Channels != 3 && b.Channels != 4:
		return errors.Wrapf(ErrImageEncoding, "%d channels", b.Channels)
	case b.Stride < b.Width*b.Channels:
		return errors.Wrapf(ErrImageEncoding, "stride %d shorter than a %d byte row", b.Stride, b.Width*b.Channels)
	}
	need := b.Stride*(b.Height-1) + b.Width*b.Channels
	if len(b.Pix) < need {
		return errors.Wrapf(ErrImageEncoding, "%d bytes, need %d", len(b.Pix), need)
	}
	return nil
}

// at returns the pixel at (x, y). b must be valid.
func (b Buffer) at(x, y int) color.NRGBA {
	i := y*b.Stride + x*b.Channels
	p := b.Pix[i : i+b.Channels]
	switch b.Channels {
	case 1:
		return color.NRGBA{p[0], p[0], p[0], 0xff}
	case 3:
		return color.NRGBA{p[0], p[1], p[2], 0xff}
	default:
		return color.NRGBA{p[0], p[1], p[2], p[3]}
	}
}

// NRGBA copies b into an image. b must be valid.
func (b Buffer) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	if b.Channels == 4 && b.Stride == img.Stride {
		copy(img.Pix, b.Pix)
		return img
	}
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			img.SetNRGBA(x, y, b.at(x, y))
		}
	}
	return img
}

// FromImage packs any image as a 4 channel buffer.
func FromImage(img image.Image) Buffer {
	r := img.Bounds()
	n, ok := img.(*image.NRGBA)
	if !ok || r.Min != (image.Point{}) {
		n = image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
		draw.Draw(n, n.Bounds(), img, r.Min, draw.Src)
	}
	return Buffer{
		Width:    r.Dx(),
		Height:   r.Dy(),
		Channels: 4,
		Stride:   n.Stride,
		Pix:      n.Pix,
	}
}

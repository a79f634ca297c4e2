package pixelcat

import (
	"image"
	"image/color"
)

// maskThreshold is the cutoff separating paintable from non-paintable
// pixels when a mask is derived from a layer image.
const maskThreshold = 10

// MaskSource names how the paintable mask for an item is produced.
// The three policies are evaluated in declaration order: an explicit
// masks folder wins, then derivation from the selected base layer,
// then a blank mask with no paintable region.
type MaskSource int

const (
	MaskFromFolder MaskSource = iota
	MaskFromBase
	MaskBlank
)

func (m MaskSource) String() string {
	switch m {
	case MaskFromFolder:
		return "folder"
	case MaskFromBase:
		return "base"
	default:
		return "blank"
	}
}

// MaskSpec is the resolved mask policy for one draw. File is set only
// for MaskFromFolder.
type MaskSpec struct {
	Source MaskSource
	File   string
}

// MaskFromImage derives the binary paintable-region mask from img.
// Images carrying transparency are thresholded on their alpha channel;
// fully opaque images fall back to grayscale luminance under the same
// cutoff. Strictly greater than the threshold means paintable.
func MaskFromImage(img image.Image) *image.Gray {
	b := img.Bounds()
	mask := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	useLuma := isOpaque(img)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			r, g, bl, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			var v uint32
			if useLuma {
				v = luma8(r, g, bl)
			} else {
				v = a >> 8
			}
			if v > maskThreshold {
				mask.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return mask
}

// GrayFromImage converts img to its luminance channel without
// thresholding. Explicit mask files keep their full value range so
// soft-edged masks stay soft.
func GrayFromImage(img image.Image) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			out.SetGray(x, y, color.Gray{Y: uint8(luma8(r, g, bl))})
		}
	}
	return out
}

// BlankMask is an all-zero mask: nothing is paintable.
func BlankMask(resolution int) *image.Gray {
	return image.NewGray(image.Rect(0, 0, resolution, resolution))
}

// luma8 is the ITU-R 601-2 luminance of 16-bit premultiplied channels,
// scaled to 8 bits.
func luma8(r, g, b uint32) uint32 {
	return (299*(r>>8) + 587*(g>>8) + 114*(b>>8)) / 1000
}

func isOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}

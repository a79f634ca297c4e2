package pixelcat

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pixelforge/pixelcat/utils"
)

func solidNRGBA(size int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func fullMask(size int) *image.Gray {
	mask := image.NewGray(image.Rect(0, 0, size, size))
	for i := range mask.Pix {
		mask.Pix[i] = 255
	}
	return mask
}

func writeImage(t *testing.T, path string, img image.Image) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, utils.SavePNG(img, path))
}

// writeSolidPNG writes a size x size fully opaque PNG in one color.
func writeSolidPNG(t *testing.T, path string, size int, c color.NRGBA) {
	t.Helper()
	writeImage(t, path, solidNRGBA(size, c))
}

// writeHalfAlphaPNG writes a PNG whose left half is opaque in the
// given color and whose right half is fully transparent.
func writeHalfAlphaPNG(t *testing.T, path string, size int, c color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			px := c
			if x >= size/2 {
				px.A = 0
			}
			img.SetNRGBA(x, y, px)
		}
	}
	writeImage(t, path, img)
}

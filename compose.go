package pixelcat

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	"github.com/pixelforge/pixelcat/utils"
)

// NormalizeLayer converts img to NRGBA at the square target
// resolution, resizing with nearest-neighbor when the source size
// differs. Pixel-art assets stay crisp under nearest-neighbor.
func NormalizeLayer(img image.Image, resolution int) *image.NRGBA {
	rect := image.Rect(0, 0, resolution, resolution)
	out := image.NewNRGBA(rect)
	b := img.Bounds()
	if b.Dx() == resolution && b.Dy() == resolution {
		draw.Draw(out, rect, img, b.Min, draw.Src)
		return out
	}
	xdraw.NearestNeighbor.Scale(out, rect, img, b, xdraw.Src, nil)
	return out
}

// loadLayerImage loads one asset from disk and normalizes it for
// compositing.
func loadLayerImage(path string, resolution int) (*image.NRGBA, error) {
	img, err := utils.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("layer image %s: %w", path, err)
	}
	return NormalizeLayer(img, resolution), nil
}

// ColorOverlay builds a canvas-sized layer in the tint color, fully
// opaque where the mask is bright and transparent elsewhere. The mask
// value becomes the overlay's alpha channel directly, so soft masks
// produce soft tints.
func ColorOverlay(resolution int, mask *image.Gray, tint color.NRGBA) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, resolution, resolution))
	for y := 0; y < resolution; y++ {
		for x := 0; x < resolution; x++ {
			out.SetNRGBA(x, y, color.NRGBA{R: tint.R, G: tint.G, B: tint.B, A: mask.GrayAt(x, y).Y})
		}
	}
	return out
}

// Compose flattens an accepted draw into the final canvas:
//
//	backgrounds (or transparent) -> colorized mask region -> every
//	remaining layer in configured order, source-over.
//
// The backgrounds layer seeds the canvas and the base layer only
// shapes the mask; neither is re-composited. All other layers,
// including the cat outline, composite at their configured position.
func Compose(layers map[string]*image.NRGBA, layersOrder []string, mask *image.Gray, tint color.NRGBA, resolution int) *image.NRGBA {
	rect := image.Rect(0, 0, resolution, resolution)
	canvas := image.NewNRGBA(rect)
	if bg, ok := layers[LayerBackgrounds]; ok {
		draw.Draw(canvas, rect, bg, image.Point{}, draw.Src)
	}

	overlay := ColorOverlay(resolution, mask, tint)
	draw.Draw(canvas, rect, overlay, image.Point{}, draw.Over)

	for _, layer := range layersOrder {
		if layer == LayerBackgrounds || layer == LayerBase {
			continue
		}
		if img, ok := layers[layer]; ok {
			draw.Draw(canvas, rect, img, image.Point{}, draw.Over)
		}
	}
	return canvas
}

// resolveMask materializes the mask policy of a draw. Derivation from
// the base layer reuses the already-normalized image so the mask and
// the canvas always agree on resolution.
func resolveMask(assetsRoot string, resolution int, d *Draw, layers map[string]*image.NRGBA) (*image.Gray, error) {
	switch d.Mask.Source {
	case MaskFromFolder:
		img, err := utils.LoadImage(filepath.Join(assetsRoot, LayerMasks, d.Mask.File))
		if err != nil {
			return nil, fmt.Errorf("mask image %s: %w", d.Mask.File, err)
		}
		return GrayFromImage(NormalizeLayer(img, resolution)), nil
	case MaskFromBase:
		return MaskFromImage(layers[LayerBase]), nil
	default:
		return BlankMask(resolution), nil
	}
}

package pixelcat

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorOverlayUsesMaskAsAlpha(t *testing.T) {
	mask := image.NewGray(image.Rect(0, 0, 3, 1))
	mask.SetGray(0, 0, color.Gray{Y: 0})
	mask.SetGray(1, 0, color.Gray{Y: 128})
	mask.SetGray(2, 0, color.Gray{Y: 255})

	overlay := ColorOverlay(3, mask, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 0}, overlay.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 128}, overlay.NRGBAAt(1, 0))
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, overlay.NRGBAAt(2, 0))
}

func TestComposeBackgroundSeedsCanvas(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	layers := map[string]*image.NRGBA{LayerBackgrounds: solidNRGBA(2, red)}

	canvas := Compose(layers, []string{LayerBackgrounds}, BlankMask(2), color.NRGBA{B: 255, A: 255}, 2)
	assert.Equal(t, red, canvas.NRGBAAt(0, 0), "blank mask leaves the background untinted")
}

func TestComposeTransparentCanvasWithoutBackground(t *testing.T) {
	canvas := Compose(nil, []string{LayerBackgrounds}, BlankMask(2), color.NRGBA{B: 255, A: 255}, 2)
	assert.Equal(t, color.NRGBA{}, canvas.NRGBAAt(0, 0))
}

func TestComposeTintThroughMask(t *testing.T) {
	blue := color.NRGBA{B: 255, A: 255}
	canvas := Compose(nil, nil, fullMask(2), blue, 2)
	assert.Equal(t, blue, canvas.NRGBAAt(1, 1))
}

func TestComposeOverlayOrder(t *testing.T) {
	catImg := solidNRGBA(2, color.NRGBA{G: 255, A: 255})
	eyes := solidNRGBA(2, color.NRGBA{R: 255, B: 255, A: 255})
	layers := map[string]*image.NRGBA{LayerCat: catImg, "eyes": eyes}

	canvas := Compose(layers, []string{LayerBackgrounds, LayerBase, LayerCat, "eyes"}, BlankMask(2), color.NRGBA{A: 255}, 2)
	assert.Equal(t, color.NRGBA{R: 255, B: 255, A: 255}, canvas.NRGBAAt(0, 0), "later layers win")
}

func TestComposeIncludesLayersBeforeCat(t *testing.T) {
	// A non-special layer positioned before "cat" still composites at
	// its configured position.
	ears := solidNRGBA(2, color.NRGBA{R: 255, G: 255, A: 255})
	layers := map[string]*image.NRGBA{"ears": ears}

	canvas := Compose(layers, []string{LayerBackgrounds, LayerBase, "ears", LayerCat}, BlankMask(2), color.NRGBA{A: 255}, 2)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, A: 255}, canvas.NRGBAAt(1, 0))
}

func TestComposeSkipsBaseLayer(t *testing.T) {
	base := solidNRGBA(2, color.NRGBA{R: 255, A: 255})
	layers := map[string]*image.NRGBA{LayerBase: base}

	canvas := Compose(layers, []string{LayerBase}, BlankMask(2), color.NRGBA{A: 255}, 2)
	assert.Equal(t, color.NRGBA{}, canvas.NRGBAAt(0, 0), "base only shapes the mask")
}

func TestNormalizeLayerResizesNearestNeighbor(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	a := color.NRGBA{R: 255, A: 255}
	b := color.NRGBA{B: 255, A: 255}
	src.SetNRGBA(0, 0, a)
	src.SetNRGBA(1, 0, b)
	src.SetNRGBA(0, 1, b)
	src.SetNRGBA(1, 1, a)

	out := NormalizeLayer(src, 4)
	assert.Equal(t, image.Rect(0, 0, 4, 4), out.Bounds())
	// Each source pixel becomes a 2x2 block with no blending.
	assert.Equal(t, a, out.NRGBAAt(0, 0))
	assert.Equal(t, a, out.NRGBAAt(1, 1))
	assert.Equal(t, b, out.NRGBAAt(2, 0))
	assert.Equal(t, b, out.NRGBAAt(0, 2))
	assert.Equal(t, a, out.NRGBAAt(3, 3))
}

func TestNormalizeLayerKeepsMatchingSize(t *testing.T) {
	src := solidNRGBA(3, color.NRGBA{G: 200, A: 255})
	out := NormalizeLayer(src, 3)
	assert.Equal(t, src.Pix, out.Pix)
}

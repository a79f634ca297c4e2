package pixelcat

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Draw is one sampled combination: the recorded selection plus the
// resolved mask policy and the tint color ready for compositing.
type Draw struct {
	Selection *Selection
	Mask      MaskSpec
	Color     color.NRGBA
	ColorHex  string
}

// Sampler draws candidate combinations from a catalog. The random
// source for an attempt is derived from seed XOR edition XOR attempt,
// so a run is reproducible from its seed while different attempts for
// the same edition explore different states.
//
// The generator uses math/rand rather than the CPython Mersenne
// Twister the original tool shipped with: hash sequences are stable
// across runs of this implementation, not bit-identical to the
// original's.
type Sampler struct {
	catalog     Catalog
	layersOrder []string
	paletteHex  []string
	paletteRGB  []color.NRGBA
	seed        int64
}

// NewSampler validates the palette up front so Draw itself cannot
// fail. An empty palette means colors are sampled uniformly from the
// full RGB space.
func NewSampler(catalog Catalog, layersOrder []string, palette []string, seed int64) (*Sampler, error) {
	s := &Sampler{
		catalog:     catalog,
		layersOrder: layersOrder,
		paletteHex:  palette,
		seed:        seed,
	}
	for _, hexStr := range palette {
		c, err := colorful.Hex(hexStr)
		if err != nil {
			return nil, fmt.Errorf("palette entry %q: %w", hexStr, err)
		}
		r, g, b := c.RGB255()
		s.paletteRGB = append(s.paletteRGB, color.NRGBA{R: r, G: g, B: b, A: 255})
	}
	return s, nil
}

// Draw samples one candidate combination for the given edition and
// attempt number. Layers with no assets are omitted from the selection
// entirely. The color key is always present.
func (s *Sampler) Draw(edition, attempt int) *Draw {
	rng := rand.New(rand.NewSource(s.seed ^ int64(edition) ^ int64(attempt)))

	sel := NewSelection()
	for _, layer := range s.layersOrder {
		choices := s.catalog[layer]
		if len(choices) == 0 {
			continue
		}
		sel.Set(layer, choices[rng.Intn(len(choices))])
	}

	mask := MaskSpec{Source: MaskBlank}
	if masks := s.catalog[LayerMasks]; len(masks) > 0 {
		mask = MaskSpec{Source: MaskFromFolder, File: masks[rng.Intn(len(masks))]}
		sel.Set(KeyMask, mask.File)
	} else if _, ok := sel.Get(LayerBase); ok {
		mask.Source = MaskFromBase
	}

	var tint color.NRGBA
	var hexStr string
	if len(s.paletteHex) > 0 {
		idx := rng.Intn(len(s.paletteHex))
		hexStr = s.paletteHex[idx]
		tint = s.paletteRGB[idx]
	} else {
		r := uint8(rng.Intn(256))
		g := uint8(rng.Intn(256))
		b := uint8(rng.Intn(256))
		tint = color.NRGBA{R: r, G: g, B: b, A: 255}
		hexStr = HexFromRGB(r, g, b)
	}
	sel.Set(KeyColor, hexStr)

	return &Draw{Selection: sel, Mask: mask, Color: tint, ColorHex: hexStr}
}

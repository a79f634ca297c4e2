package pixelcat

import (
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Reserved layer names with special roles during composition.
const (
	LayerBackgrounds = "backgrounds"
	LayerBase        = "base"
	LayerCat         = "cat"
	LayerMasks       = "masks"
)

// Selection keys that do not correspond to a configured layer.
const (
	KeyMask  = "mask"
	KeyColor = "color"
)

var imageExts = map[string]bool{
	".png":  true,
	".webp": true,
}

// Catalog maps each configured layer name to the sorted list of image
// filenames available for it, plus the reserved "masks" entry. It is
// built once per run and never mutated afterwards.
type Catalog map[string][]string

// ScanAssets lists the usable images under root for every configured
// layer and for the reserved masks folder. Missing or non-directory
// folders yield empty lists, never errors.
func ScanAssets(root string, layersOrder []string) Catalog {
	c := make(Catalog, len(layersOrder)+1)
	for _, layer := range layersOrder {
		c[layer] = listImages(filepath.Join(root, layer))
	}
	c[LayerMasks] = listImages(filepath.Join(root, LayerMasks))
	return c
}

// listImages returns the PNG/WebP filenames directly inside dir in
// lexicographic order. Sorting here, not filesystem enumeration order,
// is what keeps seeded runs reproducible across machines.
func listImages(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

// MaxCombinations is the theoretical number of distinct layer
// combinations: the product of max(1, count) over the configured
// layers. Empty layers are skipped during composition, so they
// contribute a neutral factor. The masks folder is not a layer and
// does not participate. The product saturates at MaxInt64.
func (c Catalog) MaxCombinations(layersOrder []string) int64 {
	total := int64(1)
	for _, layer := range layersOrder {
		n := int64(len(c[layer]))
		if n < 1 {
			n = 1
		}
		if total > math.MaxInt64/n {
			return math.MaxInt64
		}
		total *= n
	}
	return total
}

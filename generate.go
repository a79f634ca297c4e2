package pixelcat

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/pixelforge/pixelcat/utils"
)

// Defaults applied by GenerateCollection for zero-valued options.
const (
	DefaultResolution  = 400
	DefaultOutputDir   = "output"
	DefaultMaxAttempts = 200
	DefaultNamePrefix  = "Pixel Cat"
	DefaultDescription = "Programmatically generated Pixel Cat"
)

// DefaultLayersOrder is the stacking order used when none is
// configured.
func DefaultLayersOrder() []string {
	return []string{LayerBackgrounds, LayerBase, LayerCat, "eyes", "nose"}
}

// Options configures one collection run. Zero values fall back to the
// documented defaults. Logger may be left as the zero value to disable
// logging, which keeps library callers quiet by default.
type Options struct {
	AssetsRoot         string
	LayersOrder        []string
	OutputDir          string
	Count              int
	StartID            int
	Resolution         int
	Seed               int64
	Palette            []string
	MaxAttemptsPerItem int
	NamePrefix         string
	Description        string
	Logger             zerolog.Logger
}

func (o Options) withDefaults() Options {
	if len(o.LayersOrder) == 0 {
		o.LayersOrder = DefaultLayersOrder()
	}
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if o.StartID <= 0 {
		o.StartID = 1
	}
	if o.Resolution <= 0 {
		o.Resolution = DefaultResolution
	}
	if o.MaxAttemptsPerItem <= 0 {
		o.MaxAttemptsPerItem = DefaultMaxAttempts
	}
	if o.NamePrefix == "" {
		o.NamePrefix = DefaultNamePrefix
	}
	if o.Description == "" {
		o.Description = DefaultDescription
	}
	return o
}

// Result reports what a run produced.
type Result struct {
	Generated       int
	Index           []Metadata
	MaxCombinations int64
	// Stopped is true when the per-item attempt cap was exhausted and
	// the run ended before reaching the requested count.
	Stopped bool
}

// GenerateCollection runs the whole pipeline: scan assets, sample
// unique combinations, composite and write each item, then write the
// collection index. The seen-hash set and the index are owned by this
// call, so independent collections can run within one process.
//
// Execution is fully sequential. Exhausting the attempt cap stops the
// run early but still writes the index for the items completed so far.
func GenerateCollection(opts Options) (*Result, error) {
	opts = opts.withDefaults()
	log := opts.Logger

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	catalog := ScanAssets(opts.AssetsRoot, opts.LayersOrder)
	maxCombos := catalog.MaxCombinations(opts.LayersOrder)
	for _, layer := range opts.LayersOrder {
		log.Debug().Str("layer", layer).Int("assets", len(catalog[layer])).Msg("detected assets")
	}
	if n := len(catalog[LayerMasks]); n > 0 {
		log.Info().Int("count", n).Msg("using explicit masks folder")
	}
	log.Info().Int64("max_combinations", maxCombos).Msg("combination bound computed")
	if int64(opts.Count)+int64(opts.StartID)-1 > maxCombos {
		log.Warn().
			Int("requested", opts.Count).
			Int64("max_combinations", maxCombos).
			Int64("feasible", maxCombos-int64(opts.StartID-1)).
			Msg("requested more unique items than combinations allow; run will truncate")
	}

	sampler, err := NewSampler(catalog, opts.LayersOrder, opts.Palette, opts.Seed)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, opts.Count)
	index := make([]Metadata, 0, opts.Count)
	res := &Result{MaxCombinations: maxCombos}

	edition := opts.StartID
	for res.Generated < opts.Count && int64(edition-opts.StartID) < maxCombos {
		d, hash, ok := nextUnique(sampler, seen, edition, opts.MaxAttemptsPerItem)
		if !ok {
			log.Error().
				Int("edition", edition).
				Int("attempts", opts.MaxAttemptsPerItem).
				Msg("no unused combination found; stopping run early")
			res.Stopped = true
			break
		}
		seen[hash] = struct{}{}

		meta, err := renderItem(opts, d, hash, edition)
		if err != nil {
			return nil, err
		}
		index = append(index, *meta)
		res.Generated++
		log.Info().
			Int("edition", edition).
			Str("image", meta.Image).
			Str("hash", hash[:12]).
			Msg("item generated")
		edition++
	}

	res.Index = index
	if err := writeJSON(filepath.Join(opts.OutputDir, IndexFilename), index); err != nil {
		return nil, err
	}
	log.Info().Int("generated", res.Generated).Str("dir", opts.OutputDir).Msg("run complete")
	return res, nil
}

// nextUnique draws candidates for one edition until a combination's
// hash has not been produced before, bounded by maxAttempts. Rejected
// draws leave no trace.
func nextUnique(s *Sampler, seen map[string]struct{}, edition, maxAttempts int) (*Draw, string, bool) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		d := s.Draw(edition, attempt)
		hash := d.Selection.Hash()
		if _, dup := seen[hash]; dup {
			continue
		}
		return d, hash, true
	}
	return nil, "", false
}

// renderItem loads the accepted draw's images, composites the canvas
// and writes the image plus its metadata sibling.
func renderItem(opts Options, d *Draw, hash string, edition int) (*Metadata, error) {
	layers := make(map[string]*image.NRGBA, d.Selection.Len())
	for _, layer := range opts.LayersOrder {
		name, ok := d.Selection.Get(layer)
		if !ok {
			continue
		}
		img, err := loadLayerImage(filepath.Join(opts.AssetsRoot, layer, name), opts.Resolution)
		if err != nil {
			return nil, err
		}
		layers[layer] = img
	}

	mask, err := resolveMask(opts.AssetsRoot, opts.Resolution, d, layers)
	if err != nil {
		return nil, err
	}

	canvas := Compose(layers, opts.LayersOrder, mask, d.Color, opts.Resolution)

	imageName := ImageFilename(edition)
	if err := utils.SavePNG(canvas, filepath.Join(opts.OutputDir, imageName)); err != nil {
		return nil, err
	}

	meta := &Metadata{
		Name:        fmt.Sprintf("%s #%d", opts.NamePrefix, edition),
		Description: opts.Description,
		Image:       imageName,
		Edition:     edition,
		Attributes:  d.Selection.Attributes(),
		Hash:        hash,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := writeJSON(filepath.Join(opts.OutputDir, MetadataFilename(edition)), meta); err != nil {
		return nil, err
	}
	return meta, nil
}

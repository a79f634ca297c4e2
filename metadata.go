package pixelcat

import (
	"encoding/json"
	"fmt"
	"os"
)

// Attribute is one trait entry in an item's metadata: the layer name
// (or "mask"/"color") and the chosen value.
type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// Metadata is the per-item record written next to each image and
// collected into the run index. It is never mutated after creation.
type Metadata struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Edition     int         `json:"edition"`
	Attributes  []Attribute `json:"attributes"`
	Hash        string      `json:"hash"`
	GeneratedAt string      `json:"generated_at"`
}

// IndexFilename is the collection-wide index written once per run.
const IndexFilename = "metadata_index.json"

// ImageFilename names an item's image by zero-padded edition number.
func ImageFilename(edition int) string {
	return fmt.Sprintf("nft_%06d.png", edition)
}

// MetadataFilename names an item's metadata sibling.
func MetadataFilename(edition int) string {
	return fmt.Sprintf("nft_%06d.json", edition)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

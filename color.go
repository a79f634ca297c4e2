package pixelcat

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// HexFromRGB formats an RGB triple as a lowercase #rrggbb string.
func HexFromRGB(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// RGBFromHex parses a #rrggbb string back into its byte triple.
// RGBFromHex(HexFromRGB(r, g, b)) round-trips exactly.
func RGBFromHex(s string) (uint8, uint8, uint8, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("parse hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return r, g, b, nil
}

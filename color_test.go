package pixelcat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexFromRGBFormat(t *testing.T) {
	assert.Equal(t, "#ff8800", HexFromRGB(255, 136, 0))
	assert.Equal(t, "#000000", HexFromRGB(0, 0, 0))
	assert.Equal(t, "#ffffff", HexFromRGB(255, 255, 255))
	assert.Len(t, HexFromRGB(1, 2, 3), 7)
}

func TestHexRoundTrip(t *testing.T) {
	vals := []uint8{0, 1, 9, 10, 11, 16, 127, 128, 200, 254, 255}
	for _, r := range vals {
		for _, g := range vals {
			for _, b := range vals {
				hexStr := HexFromRGB(r, g, b)
				require.Len(t, hexStr, 7)
				require.Equal(t, strings.ToLower(hexStr), hexStr)

				rr, gg, bb, err := RGBFromHex(hexStr)
				require.NoError(t, err)
				require.Equal(t, [3]uint8{r, g, b}, [3]uint8{rr, gg, bb}, "round trip for %s", hexStr)
			}
		}
	}
}

func TestRGBFromHexInvalid(t *testing.T) {
	for _, s := range []string{"", "ff8800x", "#gg0000", "not-a-color"} {
		_, _, _, err := RGBFromHex(s)
		assert.Error(t, err, "input %q", s)
	}
}

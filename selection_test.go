package pixelcat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionAttributesPreserveInsertionOrder(t *testing.T) {
	sel := NewSelection()
	sel.Set("backgrounds", "sky.png")
	sel.Set("base", "round.png")
	sel.Set(KeyColor, "#ff8800")

	assert.Equal(t, []Attribute{
		{TraitType: "backgrounds", Value: "sky.png"},
		{TraitType: "base", Value: "round.png"},
		{TraitType: KeyColor, Value: "#ff8800"},
	}, sel.Attributes())
	assert.Equal(t, []string{"backgrounds", "base", KeyColor}, sel.Keys())
}

func TestSelectionHashIgnoresInsertionOrder(t *testing.T) {
	a := NewSelection()
	a.Set("backgrounds", "sky.png")
	a.Set(KeyColor, "#ff8800")

	b := NewSelection()
	b.Set(KeyColor, "#ff8800")
	b.Set("backgrounds", "sky.png")

	assert.Equal(t, a.Hash(), b.Hash())
	assert.Len(t, a.Hash(), 64)
}

func TestSelectionHashDistinguishesValues(t *testing.T) {
	a := NewSelection()
	a.Set("backgrounds", "sky.png")
	a.Set(KeyColor, "#ff8800")

	b := NewSelection()
	b.Set("backgrounds", "sky.png")
	b.Set(KeyColor, "#ff8801")

	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestSelectionSetOverwrites(t *testing.T) {
	sel := NewSelection()
	sel.Set("base", "one.png")
	sel.Set("base", "two.png")

	assert.Equal(t, 1, sel.Len())
	v, ok := sel.Get("base")
	assert.True(t, ok)
	assert.Equal(t, "two.png", v)
}

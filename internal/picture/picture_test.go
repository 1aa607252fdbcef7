package picture

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextCycles(t *testing.T) {
	assert.Equal(t, Flower, Human.Next())
	assert.Equal(t, Human, Flower.Next())
	assert.Equal(t, Human, Picture(42).Next())
}

func TestParse(t *testing.T) {
	p, err := Parse(" Flower ")
	require.NoError(t, err)
	assert.Equal(t, Flower, p)

	_, err = Parse("tree")
	assert.Error(t, err)
}

func TestScore(t *testing.T) {
	fills := map[string]color.RGBA{
		"head":      yellow,
		"body":      red,
		"left_arm":  red,
		"not_there": blue,
	}
	progress := Score(Human, fills)
	assert.Equal(t, Progress{Matched: 2, Filled: 3, Total: 6}, progress)
	assert.False(t, progress.Complete())
	assert.InDelta(t, 33.33, progress.Percent(), 0.01)

	all := map[string]color.RGBA{}
	for _, region := range RegionsFor(Flower) {
		all[region.Name] = region.Reference
	}
	assert.True(t, Score(Flower, all).Complete())
	assert.Zero(t, Progress{}.Percent())
}

package cubepack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var guillotinePresets = []Heuristic{
	GuillotineBvfSas, GuillotineBvfLas, GuillotineBvfSlas,
	GuillotineBvfLlas, GuillotineBvfMaxas, GuillotineBvfMinas,
	GuillotineBssfSas, GuillotineBssfLas, GuillotineBssfSlas,
	GuillotineBssfLlas, GuillotineBssfMaxas, GuillotineBssfMinas,
	GuillotineBlsfSas, GuillotineBlsfLas, GuillotineBlsfSlas,
	GuillotineBlsfLlas, GuillotineBlsfMaxas, GuillotineBlsfMinas,
}

func TestGuillotineExactFit(t *testing.T) {
	for _, preset := range guillotinePresets {
		p := newGuillotine(10, 10, 10, preset, false, true)

		cub := p.AddCub(10, 10, 10, "full")
		require.NotNil(t, cub, preset.String())
		assert.True(t, cub.Eq(NewCuboid(0, 0, 0, 10, 10, 10)), preset.String())
		assert.Equal(t, "full", cub.ID)
		assert.Empty(t, p.sections, preset.String())

		assert.Nil(t, p.AddCub(1, 1, 1, nil), preset.String())
	}
}

func TestGuillotineHorizontalSplit(t *testing.T) {
	p := newGuillotine(10, 10, 10, GuillotineBssfSas, false, false)

	cub := p.AddCub(4, 4, 4, nil)
	require.NotNil(t, cub)
	assert.True(t, cub.Eq(NewCuboid(0, 0, 0, 4, 4, 4)))

	want := []Cuboid{
		NewCuboid(0, 4, 0, 10, 6, 10),
		NewCuboid(4, 0, 0, 6, 4, 10),
		NewCuboid(0, 0, 4, 4, 4, 6),
	}
	assert.ElementsMatch(t, want, p.sections)
}

func TestGuillotineFitness(t *testing.T) {
	bvf := newGuillotine(10, 10, 10, GuillotineBvfSas, false, true)
	score, ok := bvf.Fitness(4, 4, 4)
	require.True(t, ok)
	assert.Equal(t, 936, score)

	bssf := newGuillotine(10, 10, 10, GuillotineBssfSas, false, true)
	score, ok = bssf.Fitness(4, 6, 4)
	require.True(t, ok)
	assert.Equal(t, 4, score)

	blsf := newGuillotine(10, 10, 10, GuillotineBlsfSas, false, true)
	score, ok = blsf.Fitness(4, 6, 4)
	require.True(t, ok)
	assert.Equal(t, 6, score)

	_, ok = bvf.Fitness(11, 1, 1)
	assert.False(t, ok)
}

func TestGuillotineUnplaceable(t *testing.T) {
	p := newGuillotine(10, 10, 10, GuillotineBssfSas, false, true)

	assert.Nil(t, p.AddCub(11, 1, 1, nil))
	assert.Zero(t, p.Len())

	// A cuboid too wide to fit upright fits once rotation is enabled.
	p = newGuillotine(10, 20, 10, GuillotineBssfSas, true, true)
	cub := p.AddCub(20, 10, 10, nil)
	require.NotNil(t, cub)
	assert.Equal(t, 10, cub.Width)
	assert.Equal(t, 20, cub.Height)
}

func TestGuillotineRotationParity(t *testing.T) {
	for _, preset := range guillotinePresets {
		a := newGuillotine(6, 2, 3, preset, true, true)
		b := newGuillotine(6, 2, 3, preset, true, true)

		assert.NotNil(t, a.AddCub(2, 6, 3, nil), preset.String())
		assert.NotNil(t, b.AddCub(6, 2, 3, nil), preset.String())
	}
}

func TestGuillotineVolumeConservation(t *testing.T) {
	items := []Size{
		NewSize(3, 4, 5), NewSize(6, 2, 2), NewSize(5, 5, 5),
		NewSize(2, 2, 2), NewSize(4, 4, 1), NewSize(1, 7, 3),
	}

	for _, preset := range guillotinePresets {
		p := newGuillotine(10, 10, 10, preset, true, true)
		for _, item := range items {
			p.AddCub(item.Width, item.Height, item.Depth, nil)
		}

		free := 0
		for i := range p.sections {
			free += p.sections[i].Volume()
		}
		assert.Equal(t, 1000, free+p.UsedVolume(), preset.String())

		for i := 0; i < len(p.sections); i++ {
			for j := i + 1; j < len(p.sections); j++ {
				assert.False(t, p.sections[i].Intersects(p.sections[j], false),
					"%s: sections %s and %s overlap", preset.String(),
					p.sections[i].String(), p.sections[j].String())
			}
		}

		assert.NoError(t, p.ValidatePacking(), preset.String())
	}
}

func TestGuillotineMerge(t *testing.T) {
	p := newGuillotine(10, 10, 10, GuillotineBvfSas, false, true)
	p.sections = p.sections[:0]

	p.addSection(NewCuboid(0, 0, 0, 5, 10, 10))
	p.addSection(NewCuboid(5, 0, 0, 5, 10, 10))

	require.Len(t, p.sections, 1)
	assert.True(t, p.sections[0].Eq(NewCuboid(0, 0, 0, 10, 10, 10)))

	// Without merging the sections stay separate.
	p = newGuillotine(10, 10, 10, GuillotineBvfSas, false, false)
	p.sections = p.sections[:0]
	p.addSection(NewCuboid(0, 0, 0, 5, 10, 10))
	p.addSection(NewCuboid(5, 0, 0, 5, 10, 10))
	assert.Len(t, p.sections, 2)
}

func TestGuillotineReset(t *testing.T) {
	p := newGuillotine(10, 10, 10, GuillotineBssfSas, false, true)
	require.NotNil(t, p.AddCub(4, 4, 4, nil))
	require.NotZero(t, p.Len())

	p.Reset()
	assert.Zero(t, p.Len())
	require.Len(t, p.sections, 1)
	assert.True(t, p.sections[0].Eq(NewCuboid(0, 0, 0, 10, 10, 10)))
}

func TestGuillotinePanicsOnBadDims(t *testing.T) {
	p := newGuillotine(10, 10, 10, GuillotineBssfSas, false, true)
	assert.Panics(t, func() { p.AddCub(0, 1, 1, nil) })
	assert.Panics(t, func() { p.Fitness(1, -1, 1) })
	assert.Panics(t, func() { newGuillotine(0, 10, 10, GuillotineBssfSas, false, true) })
}

// vim: ts=4

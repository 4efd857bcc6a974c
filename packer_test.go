package cubepack

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPackerConfig(t *testing.T) {
	_, err := NewPacker(DefaultConfig())
	assert.NoError(t, err)

	_, err = NewPacker(Config{Mode: Online, BinAlgo: Global})
	assert.ErrorIs(t, err, errGlobalMode)

	_, err = NewPacker(Config{Mode: Mode(9)})
	assert.ErrorIs(t, err, errMode)

	_, err = NewPacker(Config{BinAlgo: BinAlgo(42)})
	assert.ErrorIs(t, err, errBinAlgo)

	_, err = NewPacker(Config{Algorithm: Guillotine | BottomLeft})
	assert.Error(t, err)
}

func TestPackerBNFExhaustsBins(t *testing.T) {
	p, err := NewPacker(Config{Mode: Offline, BinAlgo: BNF, Sort: SortNone})
	require.NoError(t, err)

	p.AddBin(5, 5, 5, 1)
	p.AddBin(5, 5, 5, 1)
	for i := 0; i < 3; i++ {
		p.AddCub(5, 5, 5, i)
	}
	p.Pack()

	assert.Equal(t, 2, p.Len())
	placements := p.CubList()
	require.Len(t, placements, 2)
	assert.Equal(t, 0, placements[0].Bin)
	assert.Equal(t, 1, placements[1].Bin)
	assert.Equal(t, 0, placements[0].ID)
	assert.Equal(t, 1, placements[1].ID)
	assert.NoError(t, p.ValidatePacking())
}

func TestPackerBBFChoosesTightestBin(t *testing.T) {
	// The short-side leftover of a 5-cube is 1 in a 6-bin and 5 in a 10-bin.
	big, err := NewAlgorithm(10, 10, 10, MaxCubsBssf, false)
	require.NoError(t, err)
	small, err := NewAlgorithm(6, 6, 6, MaxCubsBssf, false)
	require.NoError(t, err)

	score, ok := big.Fitness(5, 5, 5)
	require.True(t, ok)
	assert.Equal(t, 5, score)
	score, ok = small.Fitness(5, 5, 5)
	require.True(t, ok)
	assert.Equal(t, 1, score)

	p, err := NewPacker(Config{Mode: Offline, BinAlgo: BBF, Algorithm: MaxCubsBssf, Sort: SortNone})
	require.NoError(t, err)

	p.AddBin(10, 10, 10, 1)
	p.AddBin(6, 6, 6, 1)
	p.AddCub(8, 8, 8, "a")
	p.AddCub(5, 5, 5, "b")
	p.AddCub(1, 1, 1, "c")
	p.Pack()

	require.NoError(t, p.ValidatePacking())
	placements := p.CubList()
	require.Len(t, placements, 3)

	// "a" opens the 10-bin, "b" fits only a fresh 6-bin, and "c" then picks
	// the 6-bin for its tighter fit.
	assert.Equal(t, Placement{Bin: 0, X: 0, Y: 0, Z: 0, Width: 8, Height: 8, Depth: 8, ID: "a"}, placements[0])
	assert.Equal(t, Placement{Bin: 1, X: 0, Y: 0, Z: 0, Width: 5, Height: 5, Depth: 5, ID: "b"}, placements[1])
	assert.Equal(t, Placement{Bin: 1, X: 5, Y: 0, Z: 0, Width: 1, Height: 1, Depth: 1, ID: "c"}, placements[2])
}

func TestPackerBFFRevisitsOpenBins(t *testing.T) {
	p, err := NewPacker(Config{Mode: Offline, BinAlgo: BFF, Sort: SortNone})
	require.NoError(t, err)

	p.AddBin(5, 5, 5, 2)
	p.AddCub(5, 5, 5, "first")
	p.AddCub(2, 2, 2, "second")
	p.AddCub(5, 5, 5, "dropped")
	p.Pack()

	assert.Equal(t, 2, p.Len())
	placements := p.CubList()
	require.Len(t, placements, 2)
	assert.Equal(t, "first", placements[0].ID)
	assert.Equal(t, 0, placements[0].Bin)
	assert.Equal(t, "second", placements[1].ID)
	assert.Equal(t, 1, placements[1].Bin)
}

func TestPackerGlobalReorders(t *testing.T) {
	p, err := NewPacker(Config{Mode: Offline, BinAlgo: Global, Algorithm: MaxCubsBaf, Rotation: true})
	require.NoError(t, err)

	p.AddBin(10, 10, 10, 1)
	p.AddCub(10, 1, 1, "rod")
	p.AddCub(9, 9, 9, "block")
	p.Pack()

	// The block leaves 271 of the fresh bin against the rod's 990, so it is
	// placed first despite being added last; both share the single bin.
	assert.Equal(t, 1, p.Len())
	placements := p.CubList()
	require.Len(t, placements, 2)
	assert.Equal(t, "block", placements[0].ID)
	for _, pl := range placements {
		assert.Equal(t, 0, pl.Bin)
	}
	assert.NoError(t, p.ValidatePacking())
}

func TestPackerGlobalSkipsUselessTemplates(t *testing.T) {
	p, err := NewPacker(Config{Mode: Offline, BinAlgo: Global})
	require.NoError(t, err)

	// The first template cannot hold any item and must be discarded.
	p.AddBin(1, 1, 1, 1)
	p.AddBin(6, 6, 6, 1)
	p.AddCub(4, 4, 4, nil)
	p.Pack()

	assert.Equal(t, 1, p.Len())
	require.Len(t, p.CubList(), 1)
	binSize := p.Bin(0).BinSize()
	assert.True(t, binSize.Eq(NewSize(6, 6, 6)))
}

func TestPackerOnline(t *testing.T) {
	p, err := NewPacker(Config{Mode: Online, BinAlgo: BNF})
	require.NoError(t, err)

	p.AddBin(5, 5, 5, 1)

	cub := p.AddCub(3, 3, 3, "now")
	require.NotNil(t, cub)
	assert.True(t, cub.Eq(NewCuboid(0, 0, 0, 3, 3, 3)))
	assert.Equal(t, 1, p.Len())

	// An unplaceable cuboid reports failure immediately.
	assert.Nil(t, p.AddCub(9, 9, 9, "too big"))
}

func TestPackerIndexing(t *testing.T) {
	p, err := NewPacker(Config{Mode: Offline, BinAlgo: BNF, Sort: SortNone})
	require.NoError(t, err)

	p.AddBin(5, 5, 5, 1)
	p.AddBin(6, 6, 6, 1)
	p.AddCub(5, 5, 5, nil)
	p.AddCub(6, 6, 6, nil)
	p.Pack()

	require.Equal(t, 2, p.Len())
	bin0Size := p.Bin(0).BinSize()
	bin1Size := p.Bin(1).BinSize()
	assert.True(t, bin0Size.Eq(NewSize(5, 5, 5)))
	assert.True(t, bin1Size.Eq(NewSize(6, 6, 6)))
	assert.Equal(t, p.Bin(1), p.Bin(-1))
	assert.Equal(t, p.Bin(0), p.Bin(-2))

	assert.Panics(t, func() { p.Bin(2) })
	assert.Panics(t, func() { p.Bin(-3) })

	assert.Equal(t, []Size{NewSize(5, 5, 5), NewSize(6, 6, 6)}, p.BinList())
}

func TestPackerEmptyPack(t *testing.T) {
	p, err := NewPacker(DefaultConfig())
	require.NoError(t, err)

	// No cuboids and no bins is a silent no-op.
	p.Pack()
	assert.Zero(t, p.Len())
	assert.Empty(t, p.CubList())

	p.AddBin(5, 5, 5, 1)
	p.Pack()
	assert.Zero(t, p.Len())
}

func TestPackerRotationParity(t *testing.T) {
	pack := func(width, height int) int {
		p, err := NewPacker(Config{Mode: Offline, BinAlgo: BFF, Sort: SortNone, Rotation: true})
		require.NoError(t, err)
		p.AddBin(6, 2, 3, 1)
		p.AddCub(width, height, 3, nil)
		p.Pack()
		return len(p.CubList())
	}

	assert.Equal(t, 1, pack(6, 2))
	assert.Equal(t, 1, pack(2, 6))
}

func TestPackerDeterminism(t *testing.T) {
	build := func() *Packer {
		p, err := NewPacker(Config{
			Mode:      Offline,
			BinAlgo:   BBF,
			Algorithm: MaxCubsBssf,
			Sort:      SortVolume,
			Rotation:  true,
		})
		require.NoError(t, err)

		rng := rand.New(rand.NewSource(42))
		p.AddBin(20, 20, 20, 4)
		for i := 0; i < 40; i++ {
			p.AddCub(rng.Intn(8)+1, rng.Intn(8)+1, rng.Intn(8)+1, i)
		}
		p.Pack()
		return p
	}

	first := build()
	second := build()

	require.NoError(t, first.ValidatePacking())
	assert.Equal(t, first.CubList(), second.CubList())
	assert.Equal(t, first.BinList(), second.BinList())
}

func TestPackerRandomNoOverlap(t *testing.T) {
	for _, algo := range []Heuristic{MaxCubsBssf, MaxCubsBl, GuillotineBvfMinas, GuillotineBssfSlas} {
		p, err := NewPacker(Config{
			Mode:      Offline,
			BinAlgo:   BFF,
			Algorithm: algo,
			Sort:      SortVolume,
			Rotation:  true,
		})
		require.NoError(t, err)

		rng := rand.New(rand.NewSource(7))
		p.AddBin(24, 24, 24, 3)
		total := 0
		for i := 0; i < 60; i++ {
			p.AddCub(rng.Intn(9)+1, rng.Intn(9)+1, rng.Intn(9)+1, i)
			total++
		}
		p.Pack()

		require.NoError(t, p.ValidatePacking(), algo.String())
		assert.LessOrEqual(t, len(p.CubList()), total, algo.String())
		assert.NotEmpty(t, p.CubList(), algo.String())
	}
}

func TestPackerRepack(t *testing.T) {
	p, err := NewPacker(Config{Mode: Offline, BinAlgo: BBF, Sort: SortVolume})
	require.NoError(t, err)

	p.AddBin(10, 10, 10, 2)
	p.AddCub(6, 6, 6, "a")
	p.AddCub(4, 4, 4, "b")

	p.Pack()
	first := p.CubList()
	require.NotEmpty(t, first)

	// Packing again rebuilds the same placement from the retained stage.
	p.Pack()
	assert.Equal(t, first, p.CubList())
}

// vim: ts=4

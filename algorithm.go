package cubepack

import "fmt"

// Algorithm is the contract implemented by every single-bin packing engine.
type Algorithm interface {
	// AddCub places a cuboid of the given dimensions into the bin, returning
	// the placed cuboid with its position set, or nil when it cannot be
	// placed anywhere in the current free space. Dimensions must be greater
	// than 0; violating this is a programmer error and panics.
	AddCub(width, height, depth int, id any) *Cuboid
	// Fitness returns the score the engine would assign if it placed a
	// cuboid of the given dimensions, where smaller is better. The second
	// return value is false when the cuboid cannot be placed.
	Fitness(width, height, depth int) (int, bool)
	// Reset returns the engine to its initial empty state.
	Reset()
	// UsedVolume returns the total volume of all placed cuboids.
	UsedVolume() int
	// Cuboids returns the cuboids that have been placed. The backing memory
	// is owned by the engine.
	Cuboids() []Cuboid
	// Len returns the number of placed cuboids.
	Len() int
	// BinSize returns the dimensions of the bin.
	BinSize() Size
	// ValidatePacking checks that every placed cuboid lies within the bin
	// and that no two placed cuboids overlap. A non-nil error indicates a
	// bug in the engine, not a user error.
	ValidatePacking() error

	// fitsVolume reports whether an empty bin could hold the dimensions at
	// all, accounting for rotation.
	fitsVolume(width, height, depth int) bool
}

type algorithmBase struct {
	width   int
	height  int
	depth   int
	rot     bool
	cuboids []Cuboid
}

func (p *algorithmBase) init(width, height, depth int, rot bool) {
	if width <= 0 || height <= 0 || depth <= 0 {
		panic("bin dimensions must be greater than 0")
	}
	p.width = width
	p.height = height
	p.depth = depth
	p.rot = rot
}

func (p *algorithmBase) resetBase() {
	p.cuboids = p.cuboids[:0]
}

func (p *algorithmBase) Len() int {
	return len(p.cuboids)
}

func (p *algorithmBase) Cuboids() []Cuboid {
	return p.cuboids
}

func (p *algorithmBase) BinSize() Size {
	return NewSize(p.width, p.height, p.depth)
}

func (p *algorithmBase) UsedVolume() int {
	var used int
	for i := range p.cuboids {
		used += p.cuboids[i].Volume()
	}
	return used
}

func (p *algorithmBase) fitsVolume(width, height, depth int) bool {
	checkDims(width, height, depth)
	if width <= p.width && height <= p.height && depth <= p.depth {
		return true
	}
	return p.rot && height <= p.width && width <= p.height && depth <= p.depth
}

func (p *algorithmBase) ValidatePacking() error {
	bin := NewCuboid(0, 0, 0, p.width, p.height, p.depth)

	for i := range p.cuboids {
		if !bin.Contains(p.cuboids[i]) {
			return fmt.Errorf("cuboid %s placed outside bin %s", p.cuboids[i].String(), bin.Size.String())
		}
	}

	for i := 0; i < len(p.cuboids); i++ {
		for j := i + 1; j < len(p.cuboids); j++ {
			if p.cuboids[i].Intersects(p.cuboids[j], false) {
				return fmt.Errorf("cuboid collision between %s and %s", p.cuboids[i].String(), p.cuboids[j].String())
			}
		}
	}
	return nil
}

func checkDims(width, height, depth int) {
	if width <= 0 || height <= 0 || depth <= 0 {
		panic("cuboid dimensions must be greater than 0")
	}
}

func abs(x int) int {
	if x >= 0 {
		return x
	}
	return -x
}

// newAlgorithm constructs the engine for an already validated heuristic.
func newAlgorithm(width, height, depth int, heuristic Heuristic, rotation bool) Algorithm {
	switch heuristic & typeMask {
	case MaxCubs:
		return newMaxCubs(width, height, depth, heuristic, rotation)
	default:
		return newGuillotine(width, height, depth, heuristic, rotation, true)
	}
}

// NewAlgorithm initializes a single-bin packing engine for the given bin
// dimensions and heuristic. Guillotine engines are created with section
// merging enabled; use NewGuillotine to control it.
func NewAlgorithm(width, height, depth int, heuristic Heuristic, rotation bool) (Algorithm, error) {
	if err := heuristic.Validate(); err != nil {
		return nil, err
	}
	return newAlgorithm(width, height, depth, heuristic, rotation), nil
}

// NewGuillotine initializes a guillotine engine with explicit control over
// the free-section merge pass.
func NewGuillotine(width, height, depth int, heuristic Heuristic, rotation, merge bool) (Algorithm, error) {
	if err := heuristic.Validate(); err != nil {
		return nil, err
	}
	if heuristic&typeMask != Guillotine {
		return nil, errAlgo
	}
	return newGuillotine(width, height, depth, heuristic, rotation, merge), nil
}

// vim: ts=4

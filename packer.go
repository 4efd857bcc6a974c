package cubepack

import (
	"errors"
	"fmt"
	"slices"
)

// Mode selects when cuboids are packed.
type Mode int

const (
	// Offline collects cuboids and packs them all in a single Pack call,
	// allowing the items to be sorted for efficiency first.
	Offline Mode = iota
	// Online packs each cuboid the moment it is added.
	Online
)

// BinAlgo selects the multi-bin dispatch heuristic.
type BinAlgo int

const (
	// BNF (Bin Next Fit) keeps a single open bin: when a cuboid does not
	// fit, the bin is closed and the next one is opened.
	BNF BinAlgo = iota
	// BFF (Bin First Fit) packs each cuboid into the first open bin it
	// fits, opening new bins as needed.
	BFF
	// BBF (Bin Best Fit) packs each cuboid into the open bin that gives the
	// best fitness, ties broken by insertion order.
	BBF
	// Global repeatedly packs the pending cuboid with the best fitness
	// against the current open bin, closing it when nothing more fits.
	// Offline only; item sorting is disabled.
	Global
)

// Placement locates one packed cuboid within a packer's bin sequence, as
// reported by CubList.
type Placement struct {
	Bin    int `json:"bin"`
	X      int `json:"x"`
	Y      int `json:"y"`
	Z      int `json:"z"`
	Width  int `json:"width"`
	Height int `json:"height"`
	Depth  int `json:"depth"`
	ID     any `json:"id,omitempty"`
}

// Config holds the options accepted by NewPacker. The zero value selects an
// offline BNF packer over MaxCubsBssf with volume sorting and no rotation;
// see DefaultConfig for the recommended starting point.
type Config struct {
	// Mode selects online or offline packing.
	Mode Mode
	// BinAlgo selects the multi-bin dispatch heuristic. Global requires
	// Offline mode.
	BinAlgo BinAlgo
	// Algorithm is the single-bin engine heuristic. The zero value selects
	// MaxCubsBssf.
	Algorithm Heuristic
	// Sort orders the staged cuboids before an offline Pack. nil selects
	// SortVolume; use SortNone to keep insertion order. Ignored in online
	// mode and by Global.
	Sort SortFunc
	// Rotation enables placing cuboids with width and height swapped.
	Rotation bool
}

// DefaultConfig returns the recommended packer configuration: offline
// best-fit dispatch over MaxCubsBssf with volume sorting and rotation
// enabled.
func DefaultConfig() Config {
	return Config{
		Mode:      Offline,
		BinAlgo:   BBF,
		Algorithm: MaxCubsBssf,
		Sort:      SortVolume,
		Rotation:  true,
	}
}

// binFactory lazily instantiates bins from a single template. A reference
// bin is created on first use for fitness probing without consuming
// inventory.
type binFactory struct {
	width    int
	height   int
	depth    int
	count    int
	algo     Heuristic
	rotation bool
	refBin   Algorithm
}

func (f *binFactory) ref() Algorithm {
	if f.refBin == nil {
		f.refBin = newAlgorithm(f.width, f.height, f.depth, f.algo, f.rotation)
	}
	return f.refBin
}

func (f *binFactory) fitness(width, height, depth int) (int, bool) {
	return f.ref().Fitness(width, height, depth)
}

func (f *binFactory) fitsInside(width, height, depth int) bool {
	return f.ref().fitsVolume(width, height, depth)
}

func (f *binFactory) isEmpty() bool {
	return f.count < 1
}

func (f *binFactory) newBin() Algorithm {
	if f.count < 1 {
		return nil
	}
	f.count--
	return newAlgorithm(f.width, f.height, f.depth, f.algo, f.rotation)
}

type binTemplate struct {
	width  int
	height int
	depth  int
	count  int
}

// Packer packs cuboids into a set of bins instantiated on demand from
// registered templates. Bins are exposed by integer index across closed bins
// followed by open bins; unused templates are not visible.
type Packer struct {
	mode     Mode
	binAlgo  BinAlgo
	algo     Heuristic
	sortFunc SortFunc
	rotation bool

	closedBins []Algorithm
	openBins   []Algorithm
	emptyBins  []*binFactory

	// Staged templates and cuboids, used in offline mode only.
	pendingBins []binTemplate
	pendingCubs []Size
}

var (
	errMode       = errors.New("unknown packing mode")
	errBinAlgo    = errors.New("unknown bin selection heuristic")
	errGlobalMode = errors.New("global bin selection requires offline mode")
)

// NewPacker initializes a packer from the given configuration. Invalid
// combinations (for example Global with Online) fail at construction.
func NewPacker(cfg Config) (*Packer, error) {
	if cfg.Mode != Online && cfg.Mode != Offline {
		return nil, errMode
	}

	switch cfg.BinAlgo {
	case BNF, BFF, BBF:
	case Global:
		if cfg.Mode == Online {
			return nil, errGlobalMode
		}
	default:
		return nil, errBinAlgo
	}

	algo := cfg.Algorithm
	if algo == 0 {
		algo = MaxCubsBssf
	}
	if err := algo.Validate(); err != nil {
		return nil, err
	}

	sortFunc := cfg.Sort
	if sortFunc == nil {
		sortFunc = SortVolume
	}
	if cfg.Mode == Online || cfg.BinAlgo == Global {
		sortFunc = nil
	}

	return &Packer{
		mode:     cfg.Mode,
		binAlgo:  cfg.BinAlgo,
		algo:     algo,
		sortFunc: sortFunc,
		rotation: cfg.Rotation,
	}, nil
}

// AddBin registers a bin template with the given dimensions and inventory
// count. In offline mode the template is staged until Pack is called.
func (p *Packer) AddBin(width, height, depth, count int) {
	checkDims(width, height, depth)
	if count < 1 {
		panic("bin count must be greater than 0")
	}

	if p.mode == Online {
		p.addFactory(binTemplate{width, height, depth, count})
		return
	}
	p.pendingBins = append(p.pendingBins, binTemplate{width, height, depth, count})
}

func (p *Packer) addFactory(t binTemplate) {
	p.emptyBins = append(p.emptyBins, &binFactory{
		width:    t.width,
		height:   t.height,
		depth:    t.depth,
		count:    t.count,
		algo:     p.algo,
		rotation: p.rotation,
	})
}

// AddCub adds a cuboid of the given dimensions with an optional identifier.
// In online mode the cuboid is placed immediately and the placement (or nil
// on failure) is returned; in offline mode it is staged for Pack and the
// return value is always nil.
func (p *Packer) AddCub(width, height, depth int, id any) *Cuboid {
	checkDims(width, height, depth)

	if p.mode == Online {
		return p.dispatch(width, height, depth, id)
	}
	p.pendingCubs = append(p.pendingCubs, NewSizeID(id, width, height, depth))
	return nil
}

// Pack packs all staged cuboids into bins instantiated from the staged
// templates. Packing with no staged cuboids or no templates is a no-op.
// Cuboids that fit nowhere are silently dropped; diff the inputs against
// CubList to detect them. Calling Pack on an online packer does nothing.
func (p *Packer) Pack() {
	if p.mode == Online {
		return
	}

	p.resetBins()
	if len(p.pendingCubs) == 0 || len(p.pendingBins) == 0 {
		return
	}

	for _, t := range p.pendingBins {
		p.addFactory(t)
	}

	if p.binAlgo == Global {
		p.packGlobal()
		return
	}

	cubs := slices.Clone(p.pendingCubs)
	if p.sortFunc != nil {
		slices.SortStableFunc(cubs, p.sortFunc)
	}

	for _, c := range cubs {
		p.dispatch(c.Width, c.Height, c.Depth, c.ID)
	}
}

func (p *Packer) dispatch(width, height, depth int, id any) *Cuboid {
	switch p.binAlgo {
	case BNF:
		return p.addCubBNF(width, height, depth, id)
	case BFF:
		return p.addCubBFF(width, height, depth, id)
	default: // BBF; Global never dispatches online
		return p.addCubBBF(width, height, depth, id)
	}
}

// addCubBNF keeps only the head open bin in play: a cuboid that does not fit
// closes it for good.
func (p *Packer) addCubBNF(width, height, depth int, id any) *Cuboid {
	for {
		if len(p.openBins) == 0 {
			if p.newOpenBin(width, height, depth) == nil {
				return nil
			}
		}

		if cub := p.openBins[0].AddCub(width, height, depth, id); cub != nil {
			return cub
		}

		p.closeBin(0)
	}
}

// addCubBFF tries every open bin in insertion order before opening new ones.
func (p *Packer) addCubBFF(width, height, depth int, id any) *Cuboid {
	for _, b := range p.openBins {
		if cub := b.AddCub(width, height, depth, id); cub != nil {
			return cub
		}
	}

	for {
		// newOpenBin only checks the empty-bin volume, which may accept a
		// cuboid the engine cannot actually place, so the placement has to
		// be re-checked.
		bin := p.newOpenBin(width, height, depth)
		if bin == nil {
			return nil
		}
		if cub := bin.AddCub(width, height, depth, id); cub != nil {
			return cub
		}
	}
}

// addCubBBF places into the open bin with the minimum fitness, ties broken
// by insertion order, before opening new ones.
func (p *Packer) addCubBBF(width, height, depth int, id any) *Cuboid {
	best := -1
	var bestScore int
	for i, b := range p.openBins {
		if score, ok := b.Fitness(width, height, depth); ok && (best < 0 || score < bestScore) {
			best = i
			bestScore = score
		}
	}
	if best >= 0 {
		return p.openBins[best].AddCub(width, height, depth, id)
	}

	for {
		bin := p.newOpenBin(width, height, depth)
		if bin == nil {
			return nil
		}
		if cub := bin.AddCub(width, height, depth, id); cub != nil {
			return cub
		}
	}
}

// newOpenBin materializes a bin from the first template whose empty volume
// holds the given dimensions, removing the factory once depleted.
func (p *Packer) newOpenBin(width, height, depth int) Algorithm {
	for i, f := range p.emptyBins {
		if !f.fitsInside(width, height, depth) {
			continue
		}
		bin := f.newBin()
		if bin == nil {
			continue
		}
		p.openBins = append(p.openBins, bin)
		if f.isEmpty() {
			p.emptyBins = slices.Delete(p.emptyBins, i, i+1)
		}
		return bin
	}
	return nil
}

func (p *Packer) closeBin(index int) {
	p.closedBins = append(p.closedBins, p.openBins[index])
	p.openBins = slices.Delete(p.openBins, index, index+1)
}

// packGlobal fills one bin at a time: while any pending cuboid fits the open
// bin, the one with the lowest fitness is placed; when nothing more fits the
// bin is closed and the next bin where some pending cuboid fits is opened.
func (p *Packer) packGlobal() {
	remaining := slices.Clone(p.pendingCubs)

	for len(remaining) > 0 {
		bin := p.newOpenBinGlobal(remaining)
		if bin == nil {
			break
		}

		for {
			best := -1
			var bestScore int
			for i := range remaining {
				score, ok := bin.Fitness(remaining[i].Width, remaining[i].Height, remaining[i].Depth)
				if ok && (best < 0 || score < bestScore) {
					best = i
					bestScore = score
				}
			}
			if best < 0 {
				p.closeBin(0)
				break
			}

			c := remaining[best]
			remaining = slices.Delete(remaining, best, best+1)
			p.addCubBNF(c.Width, c.Height, c.Depth, c.ID)
		}
	}
}

// newOpenBinGlobal materializes a bin from the first template that can hold
// at least one of the remaining cuboids; templates that can hold none are
// discarded.
func (p *Packer) newOpenBinGlobal(remaining []Size) Algorithm {
	for i := 0; i < len(p.emptyBins); {
		f := p.emptyBins[i]

		fits := false
		for j := range remaining {
			if f.fitsInside(remaining[j].Width, remaining[j].Height, remaining[j].Depth) {
				fits = true
				break
			}
		}
		if !fits {
			p.emptyBins = slices.Delete(p.emptyBins, i, i+1)
			continue
		}

		bin := f.newBin()
		if bin == nil {
			i++
			continue
		}
		p.openBins = append(p.openBins, bin)
		if f.isEmpty() {
			p.emptyBins = slices.Delete(p.emptyBins, i, i+1)
		}
		return bin
	}
	return nil
}

// Len returns the number of bins in use (closed plus open).
func (p *Packer) Len() int {
	return len(p.closedBins) + len(p.openBins)
}

// Bin returns the bin at the given position across closed bins followed by
// open bins. Negative indices count from the end. Indexing out of range is a
// programmer error and panics.
func (p *Packer) Bin(index int) Algorithm {
	size := p.Len()
	if index < 0 {
		index += size
	}
	if index < 0 || index >= size {
		panic(fmt.Sprintf("bin index %d out of range", index))
	}
	if index < len(p.closedBins) {
		return p.closedBins[index]
	}
	return p.openBins[index-len(p.closedBins)]
}

// Bins returns the bins in use, closed first, then open.
func (p *Packer) Bins() []Algorithm {
	bins := make([]Algorithm, 0, p.Len())
	bins = append(bins, p.closedBins...)
	return append(bins, p.openBins...)
}

// BinList returns the dimensions of the bins in use.
func (p *Packer) BinList() []Size {
	sizes := make([]Size, 0, p.Len())
	for _, b := range p.Bins() {
		sizes = append(sizes, b.BinSize())
	}
	return sizes
}

// CubList returns every placed cuboid along with the index of the bin
// holding it.
func (p *Packer) CubList() []Placement {
	var placements []Placement
	for i, b := range p.Bins() {
		for _, c := range b.Cuboids() {
			placements = append(placements, Placement{
				Bin:    i,
				X:      c.X,
				Y:      c.Y,
				Z:      c.Z,
				Width:  c.Width,
				Height: c.Height,
				Depth:  c.Depth,
				ID:     c.ID,
			})
		}
	}
	return placements
}

// ValidatePacking checks the packing invariants of every bin in use.
func (p *Packer) ValidatePacking() error {
	for _, b := range p.Bins() {
		if err := b.ValidatePacking(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Packer) resetBins() {
	p.closedBins = p.closedBins[:0]
	p.openBins = p.openBins[:0]
	p.emptyBins = p.emptyBins[:0]
}

// Reset discards all bins in use and unused factories without changing the
// packer's configuration. Cuboids and templates staged for an offline Pack
// are retained.
func (p *Packer) Reset() {
	p.resetBins()
}

// vim: ts=4

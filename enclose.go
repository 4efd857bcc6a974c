package cubepack

import "slices"

// Enclose searches for a minimum-volume container able to hold a set of
// cuboids. Candidate container widths are derived from the cuboid sides,
// each candidate is refined by an offline first-fit packing, and the result
// with the smallest volume wins.
type Enclose struct {
	// MaxWidth bounds the container width; 0 means unbounded.
	MaxWidth int
	// MaxHeight bounds the container height; 0 means unbounded.
	MaxHeight int
	// MaxDepth bounds the container depth; 0 means unbounded.
	MaxDepth int
	// Rotation enables placing cuboids with width and height swapped.
	Rotation bool
	// Algorithm is the single-bin engine used to refine candidates. The
	// zero value selects MaxCubsBssf.
	Algorithm Heuristic

	cuboids []Size
}

// AddCub adds another cuboid to be enclosed.
func (e *Enclose) AddCub(width, height, depth int) {
	checkDims(width, height, depth)
	e.cuboids = append(e.cuboids, NewSize(width, height, depth))
}

// containerCandidates generates the candidate container dimensions to
// refine: every prefix sum of the sorted cuboid sides, walked from both
// ends, bounded by the configured maximums and by the widest single cuboid.
func (e *Enclose) containerCandidates() []Size {
	if len(e.cuboids) == 0 {
		return nil
	}

	var sides []int
	var maxWidth, maxHeight, minWidth int

	var maxDepth int
	for _, c := range e.cuboids {
		maxDepth += c.Depth
	}

	if e.Rotation {
		for _, c := range e.cuboids {
			sides = append(sides, c.Width, c.Height, c.Depth)
			maxHeight += max(c.Width, c.Height)
			minWidth = max(minWidth, min(c.Width, c.Height))
		}
		maxWidth = maxHeight
	} else {
		for _, c := range e.cuboids {
			sides = append(sides, c.Width)
			maxHeight += c.Height
			minWidth = max(minWidth, c.Width)
			maxWidth += c.Width
		}
	}
	slices.Sort(sides)

	if e.MaxWidth > 0 && e.MaxWidth < maxWidth {
		maxWidth = e.MaxWidth
	}
	if e.MaxHeight > 0 && e.MaxHeight < maxHeight {
		maxHeight = e.MaxHeight
	}
	if e.MaxDepth > 0 && e.MaxDepth < maxDepth {
		maxDepth = e.MaxDepth
	}
	if maxWidth < minWidth {
		return nil
	}

	candidates := []int{maxWidth, minWidth}

	width := 0
	for i := len(sides) - 1; i >= 0; i-- {
		width += sides[i]
		candidates = append(candidates, width)
	}
	width = 0
	for _, s := range sides {
		width += s
		candidates = append(candidates, width)
	}
	candidates = append(candidates, maxWidth, minWidth)

	// Remove duplicates, keeping first occurrences, and widths out of range.
	seen := make(map[int]struct{}, len(candidates))
	unique := candidates[:0]
	for _, c := range candidates {
		if _, ok := seen[c]; ok || c > maxWidth || c < minWidth {
			continue
		}
		seen[c] = struct{}{}
		unique = append(unique, c)
	}

	// Remove candidates too small to hold all the cuboids.
	var minVolume int
	for _, c := range e.cuboids {
		minVolume += c.Volume()
	}

	var result []Size
	for _, c := range unique {
		if c*maxHeight*maxDepth >= minVolume {
			result = append(result, NewSize(c, maxHeight, maxDepth))
		}
	}
	return result
}

// refineCandidate packs the cuboids into a single bin of the candidate
// dimensions and shrinks the height and depth down to the highest and
// deepest placement. Returns false when not every cuboid fit.
func (e *Enclose) refineCandidate(candidate Size) (*Packer, Size, bool) {
	algo := e.Algorithm
	if algo == 0 {
		algo = MaxCubsBssf
	}

	packer, err := NewPacker(Config{
		Mode:      Offline,
		BinAlgo:   BFF,
		Algorithm: algo,
		Sort:      SortLongSide,
		Rotation:  e.Rotation,
	})
	if err != nil {
		return nil, Size{}, false
	}

	packer.AddBin(candidate.Width, candidate.Height, candidate.Depth, 1)
	for _, c := range e.cuboids {
		packer.AddCub(c.Width, c.Height, c.Depth, nil)
	}
	packer.Pack()

	if packer.Len() == 0 || packer.Bin(0).Len() != len(e.cuboids) {
		return nil, Size{}, false
	}

	var height, depth int
	for _, c := range packer.Bin(0).Cuboids() {
		height = max(height, c.Top())
		depth = max(depth, c.InEye())
	}
	return packer, NewSize(candidate.Width, height, depth), true
}

// Generate runs the search. It returns the packer holding the winning
// placement and the container dimensions, or false when no candidate could
// hold every cuboid.
func (e *Enclose) Generate() (*Packer, Size, bool) {
	var bestPacker *Packer
	var bestSize Size

	for _, candidate := range e.containerCandidates() {
		packer, size, ok := e.refineCandidate(candidate)
		if !ok {
			continue
		}
		if bestPacker == nil || size.Volume() < bestSize.Volume() {
			bestPacker = packer
			bestSize = size
		}
	}

	if bestPacker == nil {
		return nil, Size{}, false
	}
	return bestPacker, bestSize, true
}

// vim: ts=4

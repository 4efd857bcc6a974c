package cubepack

import "slices"

// positionFunc finds the best placement for a cuboid of the given dimensions
// among the engine's maximal cuboids. It returns the placed cuboid (origin of
// the chosen maximal cuboid, oriented dimensions) and its fitness score.
type positionFunc func(p *maxCubsPack, width, height, depth int) (cub Cuboid, score int, ok bool)

// cubScoreFunc rates how well the oriented dimensions fit a maximal cuboid.
type cubScoreFunc func(m *Cuboid, width, height, depth int) (score int, ok bool)

// maxCubsPack implements the maximal-cuboids packing algorithm: the free
// space is tracked as every maximal empty cuboid of the bin, so placements
// can be scored against the tightest region available.
type maxCubsPack struct {
	algorithmBase
	findPosition positionFunc
	scoreCub     cubScoreFunc
	maxCubs      []Cuboid
}

func newMaxCubs(width, height, depth int, heuristic Heuristic, rot bool) *maxCubsPack {
	var p maxCubsPack

	switch heuristic & fitMask {
	case BottomLeft:
		p.findPosition = findPositionBottomLeft
		p.scoreCub = scoreCubFirstFit
	case BestLongSideFit:
		p.findPosition = findPositionBestScore
		p.scoreCub = scoreCubLongSide
	case BestAreaFit:
		p.findPosition = findPositionBestScore
		p.scoreCub = scoreCubVolume
	case FirstFit:
		p.findPosition = findPositionFirstFit
		p.scoreCub = scoreCubFirstFit
	default: // BestShortSideFit
		p.findPosition = findPositionBestScore
		p.scoreCub = scoreCubShortSide
	}

	p.init(width, height, depth, rot)
	p.Reset()
	return &p
}

func (p *maxCubsPack) Reset() {
	p.resetBase()
	p.maxCubs = p.maxCubs[:0]
	p.maxCubs = append(p.maxCubs, NewCuboid(0, 0, 0, p.width, p.height, p.depth))
}

func (p *maxCubsPack) AddCub(width, height, depth int, id any) *Cuboid {
	checkDims(width, height, depth)

	cub, _, ok := p.findPosition(p, width, height, depth)
	if !ok {
		return nil
	}

	// Subdivide every maximal cuboid the placement intersects, then drop
	// any cuboid contained by another.
	p.splitMaxCubs(cub)
	p.pruneMaxCubs()

	cub.ID = id
	p.cuboids = append(p.cuboids, cub)

	placed := cub
	return &placed
}

func (p *maxCubsPack) Fitness(width, height, depth int) (int, bool) {
	checkDims(width, height, depth)

	_, score, ok := p.findPosition(p, width, height, depth)
	if !ok {
		return 0, false
	}
	return score, true
}

func scoreCubFirstFit(m *Cuboid, width, height, depth int) (int, bool) {
	if width > m.Width || height > m.Height || depth > m.Depth {
		return 0, false
	}
	return 0, true
}

func scoreCubShortSide(m *Cuboid, width, height, depth int) (int, bool) {
	if width > m.Width || height > m.Height || depth > m.Depth {
		return 0, false
	}
	return min(m.Width-width, m.Height-height, m.Depth-depth), true
}

func scoreCubLongSide(m *Cuboid, width, height, depth int) (int, bool) {
	if width > m.Width || height > m.Height || depth > m.Depth {
		return 0, false
	}
	return max(m.Width-width, m.Height-height, m.Depth-depth), true
}

func scoreCubVolume(m *Cuboid, width, height, depth int) (int, bool) {
	if width > m.Width || height > m.Height || depth > m.Depth {
		return 0, false
	}
	return m.Volume() - width*height*depth, true
}

// findPositionBestScore scans every maximal cuboid with the engine's score
// function, upright before rotated; the first strict minimum wins.
func findPositionBestScore(p *maxCubsPack, width, height, depth int) (Cuboid, int, bool) {
	var best Cuboid
	bestScore := 0
	found := false

	for i := range p.maxCubs {
		m := &p.maxCubs[i]
		if score, ok := p.scoreCub(m, width, height, depth); ok && (!found || score < bestScore) {
			best = NewCuboid(m.X, m.Y, m.Z, width, height, depth)
			bestScore = score
			found = true
		}
	}

	if p.rot {
		for i := range p.maxCubs {
			m := &p.maxCubs[i]
			if score, ok := p.scoreCub(m, height, width, depth); ok && (!found || score < bestScore) {
				best = NewCuboid(m.X, m.Y, m.Z, height, width, depth)
				bestScore = score
				found = true
			}
		}
	}

	return best, bestScore, found
}

// findPositionFirstFit returns the first maximal cuboid that holds the
// dimensions, trying the upright orientation across the whole list before
// falling back to the rotated one.
func findPositionFirstFit(p *maxCubsPack, width, height, depth int) (Cuboid, int, bool) {
	for i := range p.maxCubs {
		m := &p.maxCubs[i]
		if _, ok := p.scoreCub(m, width, height, depth); ok {
			return NewCuboid(m.X, m.Y, m.Z, width, height, depth), 0, true
		}
	}

	if p.rot {
		for i := range p.maxCubs {
			m := &p.maxCubs[i]
			if _, ok := p.scoreCub(m, height, width, depth); ok {
				return NewCuboid(m.X, m.Y, m.Z, height, width, depth), 0, true
			}
		}
	}

	return Cuboid{}, 0, false
}

// findPositionBottomLeft selects the position where the top face of the
// placed cuboid ends up lowest, breaking ties by x and then z. The reported
// fitness is 0 for any feasible placement.
func findPositionBottomLeft(p *maxCubsPack, width, height, depth int) (Cuboid, int, bool) {
	var best Cuboid
	var bestTop, bestX, bestZ int
	found := false

	better := func(top, x, z int) bool {
		if !found {
			return true
		}
		if top != bestTop {
			return top < bestTop
		}
		if x != bestX {
			return x < bestX
		}
		return z < bestZ
	}

	for i := range p.maxCubs {
		m := &p.maxCubs[i]
		if _, ok := p.scoreCub(m, width, height, depth); ok && better(m.Y+height, m.X, m.Z) {
			best = NewCuboid(m.X, m.Y, m.Z, width, height, depth)
			bestTop, bestX, bestZ = m.Y+height, m.X, m.Z
			found = true
		}
	}

	if p.rot {
		for i := range p.maxCubs {
			m := &p.maxCubs[i]
			if _, ok := p.scoreCub(m, height, width, depth); ok && better(m.Y+width, m.X, m.Z) {
				best = NewCuboid(m.X, m.Y, m.Z, height, width, depth)
				bestTop, bestX, bestZ = m.Y+width, m.X, m.Z
				found = true
			}
		}
	}

	return best, 0, found
}

// splitMaxCubs rebuilds the maximal-cuboid list after cub is placed: every
// member intersecting the placement is replaced by its successor slabs, the
// rest carry over unchanged.
func (p *maxCubsPack) splitMaxCubs(cub Cuboid) {
	next := make([]Cuboid, 0, len(p.maxCubs))
	for i := range p.maxCubs {
		if p.maxCubs[i].Intersects(cub, false) {
			next = appendSplits(next, p.maxCubs[i], cub)
		} else {
			next = append(next, p.maxCubs[i])
		}
	}
	p.maxCubs = next
}

// appendSplits emits the up-to-five slabs that remain of maximal cuboid m
// after cub is placed inside it, one per side of cub not flush with the
// matching face of m. The in-depth slab keeps the placed cuboid's x/y
// footprint rather than the parent's, so along the depth axis the result is
// empty and valid but not maximal.
func appendSplits(dst []Cuboid, m, cub Cuboid) []Cuboid {
	if cub.Left() > m.Left() {
		dst = append(dst, NewCuboid(
			m.Left(), m.Bottom(), m.OutEye(),
			cub.Left()-m.Left(), m.Height, m.Depth))
	}
	if cub.Right() < m.Right() {
		dst = append(dst, NewCuboid(
			cub.Right(), m.Bottom(), m.OutEye(),
			m.Right()-cub.Right(), m.Height, m.Depth))
	}
	if cub.Top() < m.Top() {
		dst = append(dst, NewCuboid(
			m.Left(), cub.Top(), m.OutEye(),
			m.Width, m.Top()-cub.Top(), m.Depth))
	}
	if cub.Bottom() > m.Bottom() {
		dst = append(dst, NewCuboid(
			m.Left(), m.Bottom(), m.OutEye(),
			m.Width, cub.Bottom()-m.Bottom(), m.Depth))
	}
	if cub.InEye() < m.InEye() {
		dst = append(dst, NewCuboid(
			cub.Left(), cub.Bottom(), cub.InEye(),
			cub.Width, cub.Height, m.InEye()-cub.InEye()))
	}
	return dst
}

// pruneMaxCubs removes every maximal cuboid contained by another one. Of two
// equal members the earlier survives, keeping the list stable.
func (p *maxCubsPack) pruneMaxCubs() {
	for i := 0; i < len(p.maxCubs); i++ {
		for j := i + 1; j < len(p.maxCubs); j++ {
			if p.maxCubs[i].Contains(p.maxCubs[j]) {
				p.maxCubs = slices.Delete(p.maxCubs, j, j+1)
				j--
			} else if p.maxCubs[j].Contains(p.maxCubs[i]) {
				p.maxCubs = slices.Delete(p.maxCubs, i, i+1)
				i--
				break
			}
		}
	}
}

// vim: ts=4

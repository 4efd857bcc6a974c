package cubepack

import "slices"

// scoreFunc rates how well a cuboid of the given dimensions fits a free
// section. Smaller is better; ok is false when it does not fit at all.
type scoreFunc func(section *Cuboid, width, height, depth int) (score int, ok bool)

// guillotinePack implements several variants of the guillotine packing
// algorithm. For a detailed explanation of the algorithm used, see:
// Jukka Jylanki - A Thousand Ways to Pack the Bin (February 27, 2010)
type guillotinePack struct {
	algorithmBase
	merge        bool
	splitMethod  Heuristic
	scoreSection scoreFunc
	sections     []Cuboid
}

func newGuillotine(width, height, depth int, heuristic Heuristic, rot, merge bool) *guillotinePack {
	var p guillotinePack
	p.merge = merge

	switch heuristic & fitMask {
	case BestShortSideFit:
		p.scoreSection = scoreBestShortSide
	case BestLongSideFit:
		p.scoreSection = scoreBestLongSide
	default: // BestVolumeFit
		p.scoreSection = scoreBestVolume
	}

	p.splitMethod = heuristic & splitMask
	p.init(width, height, depth, rot)
	p.Reset()
	return &p
}

func (p *guillotinePack) Reset() {
	p.resetBase()
	p.sections = p.sections[:0]
	p.addSection(NewCuboid(0, 0, 0, p.width, p.height, p.depth))
}

// addSection appends a new free section. When merging is enabled, every
// existing section that can be folded into the new one is first joined and
// removed, repeating until a fixed point is reached. Index-based iteration
// keeps the rewrite safe while the list shrinks.
func (p *guillotinePack) addSection(section Cuboid) {
	section.ID = nil

	for p.merge {
		joined := false
		for i := 0; i < len(p.sections); i++ {
			if section.Join(p.sections[i]) {
				p.sections = slices.Delete(p.sections, i, i+1)
				joined = true
				i--
			}
		}
		if !joined {
			break
		}
	}
	p.sections = append(p.sections, section)
}

// selectSection returns the index of the fittest free section for the given
// dimensions and whether the cuboid must be rotated to achieve that fit.
// Upright candidates are scanned before rotated ones, and the first strict
// minimum wins, keeping placement deterministic.
func (p *guillotinePack) selectSection(width, height, depth int) (index int, rotated, ok bool) {
	index = -1
	var best int

	for i := range p.sections {
		if score, fits := p.scoreSection(&p.sections[i], width, height, depth); fits && (index < 0 || score < best) {
			index = i
			best = score
			rotated = false
		}
	}

	if p.rot {
		for i := range p.sections {
			if score, fits := p.scoreSection(&p.sections[i], height, width, depth); fits && (index < 0 || score < best) {
				index = i
				best = score
				rotated = true
			}
		}
	}

	return index, rotated, index >= 0
}

func (p *guillotinePack) AddCub(width, height, depth int, id any) *Cuboid {
	checkDims(width, height, depth)

	index, rotated, ok := p.selectSection(width, height, depth)
	if !ok {
		return nil
	}

	if rotated {
		width, height = height, width
	}

	// Remove the chosen section before splitting so it does not interfere
	// when the offcuts are merged with the remaining free sections.
	section := p.sections[index]
	p.sections = slices.Delete(p.sections, index, index+1)
	p.split(section, width, height, depth)

	cub := NewCuboid(section.X, section.Y, section.Z, width, height, depth)
	cub.ID = id
	p.cuboids = append(p.cuboids, cub)

	placed := cub
	return &placed
}

func (p *guillotinePack) Fitness(width, height, depth int) (int, bool) {
	checkDims(width, height, depth)

	index, rotated, ok := p.selectSection(width, height, depth)
	if !ok {
		return 0, false
	}

	if rotated {
		width, height = height, width
	}
	score, _ := p.scoreSection(&p.sections[index], width, height, depth)
	return score, true
}

func scoreBestVolume(section *Cuboid, width, height, depth int) (int, bool) {
	if width > section.Width || height > section.Height || depth > section.Depth {
		return 0, false
	}
	return section.Volume() - width*height*depth, true
}

func scoreBestShortSide(section *Cuboid, width, height, depth int) (int, bool) {
	if width > section.Width || height > section.Height || depth > section.Depth {
		return 0, false
	}
	return min(section.Width-width, section.Height-height, section.Depth-depth), true
}

func scoreBestLongSide(section *Cuboid, width, height, depth int) (int, bool) {
	if width > section.Width || height > section.Height || depth > section.Depth {
		return 0, false
	}
	return max(section.Width-width, section.Height-height, section.Depth-depth), true
}

// split partitions the free volume a section retains after a cuboid of the
// given dimensions is placed in its low corner, choosing between the
// horizontal and vertical guillotine cut per the configured split method.
func (p *guillotinePack) split(section Cuboid, width, height, depth int) {
	var horizontal bool

	switch p.splitMethod {
	case SplitShorterAxis:
		// Split along the shorter total axis.
		horizontal = section.Width <= section.Height
	case SplitLongerAxis:
		// Split along the longer total axis.
		horizontal = section.Width > section.Height
	case SplitShorterLeftoverAxis:
		// Split along the shorter leftover axis.
		horizontal = section.Width-width <= section.Height-height
	case SplitLongerLeftoverAxis:
		// Split along the longer leftover axis.
		horizontal = section.Width-width > section.Height-height
	case SplitMaximizeArea:
		// Maximize the smaller offcut == minimize the larger offcut.
		// Tries to keep the offcuts even-sized.
		horizontal = width*((section.Height-height)+(section.Depth-depth)) <=
			height*((section.Width-width)+(section.Depth-depth))
	case SplitMinimizeArea:
		// Maximize the larger offcut == minimize the smaller offcut.
		// Tries to make one single big offcut.
		horizontal = width*((section.Height-height)+(section.Depth-depth)) >=
			height*((section.Width-width)+(section.Depth-depth))
	default:
		horizontal = true
	}

	if horizontal {
		p.splitHorizontal(section, width, height, depth)
	} else {
		p.splitVertical(section, width, height, depth)
	}
}

// splitHorizontal cuts along the cuboid's top face and its horizontal
// continuation: the offcut above spans the full section width, the offcut
// beside stays at the cuboid's height, and the offcut behind keeps the
// cuboid's footprint. Offcuts with no extent are not created.
//
//	+-----------------+
//	|                 |
//	|                 |
//	+-------+---------+
//	|#######|         |
//	|#######|         |
//	+-------+---------+
func (p *guillotinePack) splitHorizontal(section Cuboid, width, height, depth int) {
	if height < section.Height {
		p.addSection(NewCuboid(
			section.X, section.Y+height, section.Z,
			section.Width, section.Height-height, section.Depth))
	}
	if width < section.Width {
		p.addSection(NewCuboid(
			section.X+width, section.Y, section.Z,
			section.Width-width, height, section.Depth))
	}
	if depth < section.Depth {
		p.addSection(NewCuboid(
			section.X, section.Y, section.Z+depth,
			width, height, section.Depth-depth))
	}
}

// splitVertical cuts along the cuboid's right face and its vertical
// continuation: the offcut beside spans the full section height, the offcut
// above stays at the cuboid's width, and the offcut behind keeps the
// cuboid's footprint.
//
//	+-------+---------+
//	|       |         |
//	|       |         |
//	+-------+         |
//	|#######|         |
//	|#######|         |
//	+-------+---------+
func (p *guillotinePack) splitVertical(section Cuboid, width, height, depth int) {
	if height < section.Height {
		p.addSection(NewCuboid(
			section.X, section.Y+height, section.Z,
			width, section.Height-height, section.Depth))
	}
	if width < section.Width {
		p.addSection(NewCuboid(
			section.X+width, section.Y, section.Z,
			section.Width-width, section.Height, section.Depth))
	}
	if depth < section.Depth {
		p.addSection(NewCuboid(
			section.X, section.Y, section.Z+depth,
			width, height, section.Depth-depth))
	}
}

// vim: ts=4

package cubepack

import (
	"errors"
	"strings"
)

// Heuristic is a bitfield used for configuration of a packing engine,
// including the algorithm family, the selection method used to pick a free
// region, and (for guillotine engines) the strategy for splitting the free
// region left over after a placement. Specific combinations of values can be
// OR'ed together to achieve the desired behavior.
//
// Not all combinations are valid: each constant of this type indicates what
// it is valid with. If in doubt, simply use a preset. To test a value, use
// the Validate function, which returns an error describing the issue.
type Heuristic uint16

const (
	/**********************************************************************************************
	* Algorithm families
	**********************************************************************************************/

	// Guillotine selects the guillotine algorithm: the free space is kept as
	// a list of disjoint sections, and placing a cuboid splits its section
	// into up to three offcuts. Fast, but sensitive to choosing the right
	// selection/split methods for specific inputs.
	//
	// Type: Algorithm
	Guillotine Heuristic = 0x1

	// MaxCubs selects the maximal-cuboids algorithm: the free space is kept
	// as a list of overlapping maximal empty cuboids, subdivided and pruned
	// as cuboids are placed. Generally the most efficient packings.
	//
	// Type: Algorithm
	MaxCubs Heuristic = 0x2

	/**********************************************************************************************
	* Free-region selection
	**********************************************************************************************/

	// BestVolumeFit (BVF) places the cuboid into the free region with the
	// least volume left over.
	//
	//	* Type: Selection
	//	* Valid With: Guillotine
	BestVolumeFit = 0x00
	// BestShortSideFit (BSSF) places the cuboid where its shortest leftover
	// side is minimized.
	//
	//	* Type: Selection
	//	* Valid With: Guillotine, MaxCubs
	BestShortSideFit = 0x10
	// BestLongSideFit (BLSF) places the cuboid where its longest leftover
	// side is minimized.
	//
	//	* Type: Selection
	//	* Valid With: Guillotine, MaxCubs
	BestLongSideFit = 0x20
	// BottomLeft (BL) does the Tetris placement: lowest resulting top face
	// wins, ties broken by x and then z.
	//
	//	* Type: Selection
	//	* Valid With: MaxCubs
	BottomLeft = 0x30
	// BestAreaFit (BAF) places the cuboid into the smallest free region that
	// holds it. The leftover is measured as a volume; the name is kept for
	// parity with the 2D literature.
	//
	//	* Type: Selection
	//	* Valid With: MaxCubs
	BestAreaFit = 0x40
	// FirstFit (FF) places the cuboid into the first free region that holds
	// it, scoring every feasible placement 0.
	//
	//	* Type: Selection
	//	* Valid With: MaxCubs
	FirstFit = 0x50

	/**********************************************************************************************
	* Splitting rules (only used with guillotine engines)
	**********************************************************************************************/

	// SplitShorterAxis (SAS) splits horizontally when the section is at most
	// as wide as it is tall.
	//
	//	* Type: Split Method
	//	* Valid With: Guillotine
	SplitShorterAxis = 0x000

	// SplitLongerAxis (LAS) splits horizontally when the section is wider
	// than it is tall.
	//
	//	* Type: Split Method
	//	* Valid With: Guillotine
	SplitLongerAxis = 0x100

	// SplitShorterLeftoverAxis (SLAS) splits along the shorter leftover axis.
	//
	//	* Type: Split Method
	//	* Valid With: Guillotine
	SplitShorterLeftoverAxis = 0x200

	// SplitLongerLeftoverAxis (LLAS) splits along the longer leftover axis.
	//
	//	* Type: Split Method
	//	* Valid With: Guillotine
	SplitLongerLeftoverAxis = 0x300

	// SplitMaximizeArea (MAXAS) tries to make the offcuts as even-sized as
	// possible.
	//
	//	* Type: Split Method
	//	* Valid With: Guillotine
	SplitMaximizeArea = 0x400

	// SplitMinimizeArea (MINAS) tries to make a single big offcut at the
	// expense of making the others small.
	//
	//	* Type: Split Method
	//	* Valid With: Guillotine
	SplitMinimizeArea = 0x500

	/**********************************************************************************************
	* Masks for extracting relevant bits
	**********************************************************************************************/

	typeMask  = 0x000F
	fitMask   = 0x00F0
	splitMask = 0x0F00

	/**********************************************************************************************
	* Presets: the guillotine selection x split cross-product
	**********************************************************************************************/

	GuillotineBvfSas   = Guillotine | BestVolumeFit | SplitShorterAxis
	GuillotineBvfLas   = Guillotine | BestVolumeFit | SplitLongerAxis
	GuillotineBvfSlas  = Guillotine | BestVolumeFit | SplitShorterLeftoverAxis
	GuillotineBvfLlas  = Guillotine | BestVolumeFit | SplitLongerLeftoverAxis
	GuillotineBvfMaxas = Guillotine | BestVolumeFit | SplitMaximizeArea
	GuillotineBvfMinas = Guillotine | BestVolumeFit | SplitMinimizeArea

	GuillotineBssfSas   = Guillotine | BestShortSideFit | SplitShorterAxis
	GuillotineBssfLas   = Guillotine | BestShortSideFit | SplitLongerAxis
	GuillotineBssfSlas  = Guillotine | BestShortSideFit | SplitShorterLeftoverAxis
	GuillotineBssfLlas  = Guillotine | BestShortSideFit | SplitLongerLeftoverAxis
	GuillotineBssfMaxas = Guillotine | BestShortSideFit | SplitMaximizeArea
	GuillotineBssfMinas = Guillotine | BestShortSideFit | SplitMinimizeArea

	GuillotineBlsfSas   = Guillotine | BestLongSideFit | SplitShorterAxis
	GuillotineBlsfLas   = Guillotine | BestLongSideFit | SplitLongerAxis
	GuillotineBlsfSlas  = Guillotine | BestLongSideFit | SplitShorterLeftoverAxis
	GuillotineBlsfLlas  = Guillotine | BestLongSideFit | SplitLongerLeftoverAxis
	GuillotineBlsfMaxas = Guillotine | BestLongSideFit | SplitMaximizeArea
	GuillotineBlsfMinas = Guillotine | BestLongSideFit | SplitMinimizeArea

	/**********************************************************************************************
	* Presets: maximal cuboids
	**********************************************************************************************/

	MaxCubsBl   = MaxCubs | BottomLeft
	MaxCubsBssf = MaxCubs | BestShortSideFit
	MaxCubsBlsf = MaxCubs | BestLongSideFit
	MaxCubsBaf  = MaxCubs | BestAreaFit
	MaxCubsFf   = MaxCubs | FirstFit
)

// Algorithm returns the algorithm family portion of the bitmask.
func (e Heuristic) Algorithm() Heuristic {
	return e & typeMask
}

// Fit returns the free-region selection portion of the bitmask.
func (e Heuristic) Fit() Heuristic {
	return e & fitMask
}

// Split returns the split method portion of the bitmask.
func (e Heuristic) Split() Heuristic {
	return e & splitMask
}

var (
	errAlgo  = errors.New("invalid algorithm family specified")
	errSplit = errors.New("split method heuristic is invalid for algorithm family")
	errFit   = errors.New("selection heuristic is invalid for algorithm family")
)

// Validate tests whether the combination of heuristics is in good form. A
// value of nil is returned upon success, otherwise an error with a message
// explaining the problem.
func (e Heuristic) Validate() error {
	fit := e & fitMask
	split := e & splitMask

	switch e & typeMask {
	case Guillotine:
		switch fit {
		case BestVolumeFit, BestShortSideFit, BestLongSideFit:
		default:
			return errFit
		}
		switch split {
		case SplitShorterAxis, SplitLongerAxis, SplitShorterLeftoverAxis,
			SplitLongerLeftoverAxis, SplitMaximizeArea, SplitMinimizeArea:
		default:
			return errSplit
		}
	case MaxCubs:
		if split != 0 {
			return errSplit
		}
		switch fit {
		case BestShortSideFit, BestLongSideFit, BottomLeft, BestAreaFit, FirstFit:
		default:
			return errFit
		}
	default:
		return errAlgo
	}

	return nil
}

// String returns the string representation of the heuristic.
func (e Heuristic) String() string {
	var sb strings.Builder
	var fit, split string

	switch e & typeMask {
	case Guillotine:
		sb.WriteString("Guillotine")
		switch e & splitMask {
		case SplitShorterAxis:
			split = "SAS"
		case SplitLongerAxis:
			split = "LAS"
		case SplitShorterLeftoverAxis:
			split = "SLAS"
		case SplitLongerLeftoverAxis:
			split = "LLAS"
		case SplitMaximizeArea:
			split = "MAXAS"
		case SplitMinimizeArea:
			split = "MINAS"
		}
	case MaxCubs:
		sb.WriteString("MaxCubs")
	}

	switch e & fitMask {
	case BestVolumeFit:
		fit = "BVF"
	case BestShortSideFit:
		fit = "BSSF"
	case BestLongSideFit:
		fit = "BLSF"
	case BottomLeft:
		fit = "BL"
	case BestAreaFit:
		fit = "BAF"
	case FirstFit:
		fit = "FF"
	}

	if fit != "" {
		if sb.Len() > 0 {
			sb.WriteRune('-')
		}
		sb.WriteString(fit)
	}

	if split != "" {
		sb.WriteRune('-')
		sb.WriteString(split)
	}
	return sb.String()
}

// vim: ts=4

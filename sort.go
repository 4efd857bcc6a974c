package cubepack

import "cmp"

// SortFunc is a prototype for a function that compares two cuboid sizes,
// returning a standard comparer result of -1 for less-than, 1 for
// greater-than, or 0 for equal to. All shipped keys sort in descending order
// (greatest first) except SortNone.
type SortFunc func(a, b Size) int

// SortVolume sorts two cuboid sizes in descending order by comparing the
// total volume of each.
func SortVolume(a, b Size) int {
	return cmp.Compare(b.Volume(), a.Volume())
}

// SortSurfaceArea sorts two cuboid sizes in descending order by comparing
// the surface area of each.
func SortSurfaceArea(a, b Size) int {
	return cmp.Compare(b.SurfaceArea(), a.SurfaceArea())
}

// SortDiff sorts two cuboid sizes in descending order by comparing the
// pairwise differences between their dimensions.
func SortDiff(a, b Size) int {
	if c := cmp.Compare(abs(b.Width-b.Height), abs(a.Width-a.Height)); c != 0 {
		return c
	}
	if c := cmp.Compare(abs(b.Width-b.Depth), abs(a.Width-a.Depth)); c != 0 {
		return c
	}
	return cmp.Compare(abs(b.Height-b.Depth), abs(a.Height-a.Depth))
}

// SortShortSide sorts two cuboid sizes in descending order by comparing the
// shortest side of each, then the longest.
func SortShortSide(a, b Size) int {
	if c := cmp.Compare(b.MinSide(), a.MinSide()); c != 0 {
		return c
	}
	return cmp.Compare(b.MaxSide(), a.MaxSide())
}

// SortLongSide sorts two cuboid sizes in descending order by comparing the
// longest side of each, then the shortest.
func SortLongSide(a, b Size) int {
	if c := cmp.Compare(b.MaxSide(), a.MaxSide()); c != 0 {
		return c
	}
	return cmp.Compare(b.MinSide(), a.MinSide())
}

// SortRatio sorts two cuboid sizes in descending order by comparing the
// ratios between their dimensions.
func SortRatio(a, b Size) int {
	ratios := func(s Size) (float64, float64, float64) {
		return float64(s.Width) / float64(s.Height),
			float64(s.Width) / float64(s.Depth),
			float64(s.Height) / float64(s.Depth)
	}
	awh, awd, ahd := ratios(a)
	bwh, bwd, bhd := ratios(b)
	if c := cmp.Compare(bwh, awh); c != 0 {
		return c
	}
	if c := cmp.Compare(bwd, awd); c != 0 {
		return c
	}
	return cmp.Compare(bhd, ahd)
}

// SortNone leaves cuboids in insertion order.
func SortNone(a, b Size) int {
	return 0
}

// vim: ts=4

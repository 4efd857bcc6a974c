package cubepack

import (
	"fmt"
	"math"
)

// Point describes a location in 3D space.
type Point struct {
	// X is the location on the horizontal x-axis.
	X int `json:"x"`
	// Y is the location on the vertical y-axis.
	Y int `json:"y"`
	// Z is the location on the depth z-axis.
	Z int `json:"z"`
}

// NewPoint initializes a new point with the specified coordinates.
func NewPoint(x, y, z int) Point {
	return Point{X: x, Y: y, Z: z}
}

// Eq tests whether the receiver and another point have equal values.
func (p *Point) Eq(point Point) bool {
	return p.X == point.X && p.Y == point.Y && p.Z == point.Z
}

// String returns a string representation of the point.
func (p *Point) String() string {
	return fmt.Sprintf("<%v, %v, %v>", p.X, p.Y, p.Z)
}

// Move will move the location of the receiver to the specified absolute coordinates.
func (p *Point) Move(x, y, z int) {
	p.X = x
	p.Y = y
	p.Z = z
}

// Offset will move the location of receiver by the specified relative amount.
func (p *Point) Offset(x, y, z int) {
	p.X += x
	p.Y += y
	p.Z += z
}

// DistanceSquared returns the squared Euclidean distance to another point.
// Faster than Distance and sufficient for comparisons.
func (p *Point) DistanceSquared(point Point) int {
	dx := p.X - point.X
	dy := p.Y - point.Y
	dz := p.Z - point.Z
	return dx*dx + dy*dy + dz*dz
}

// Distance returns the Euclidean distance to another point.
func (p *Point) Distance(point Point) float64 {
	return math.Sqrt(float64(p.DistanceSquared(point)))
}

// Size describes the dimensions of an entity in 3D space.
type Size struct {
	// Width is the dimension on the horizontal x-axis.
	Width int `json:"width"`
	// Height is the dimension on the vertical y-axis.
	Height int `json:"height"`
	// Depth is the dimension on the z-axis.
	Depth int `json:"depth"`
	// ID is a user-defined identifier that can be used to differentiate this instance from others.
	ID any `json:"-"`
}

// NewSize creates a new size with specified dimensions.
func NewSize(width, height, depth int) Size {
	return Size{Width: width, Height: height, Depth: depth}
}

// NewSizeID creates a new size with specified dimensions and identifier.
func NewSizeID(id any, width, height, depth int) Size {
	return Size{ID: id, Width: width, Height: height, Depth: depth}
}

// Eq tests whether the receiver and another size have equal values. The ID field is ignored.
func (sz *Size) Eq(size Size) bool {
	return sz.Width == size.Width && sz.Height == size.Height && sz.Depth == size.Depth
}

// String returns a string representation of the size.
func (sz *Size) String() string {
	return fmt.Sprintf("<%v, %v, %v>", sz.Width, sz.Height, sz.Depth)
}

// Volume returns the total volume (width * height * depth).
func (sz *Size) Volume() int {
	return sz.Width * sz.Height * sz.Depth
}

// SurfaceArea returns the sum area of all six faces.
func (sz *Size) SurfaceArea() int {
	return 2 * (sz.Width*sz.Height + sz.Width*sz.Depth + sz.Height*sz.Depth)
}

// MaxSide returns the value of the greatest side.
func (sz *Size) MaxSide() int {
	return max(sz.Width, sz.Height, sz.Depth)
}

// MinSide returns the value of the least side.
func (sz *Size) MinSide() int {
	return min(sz.Width, sz.Height, sz.Depth)
}

// Cuboid describes a location (low corner on every axis) and size in 3D space.
type Cuboid struct {
	// Point is the location of the cuboid.
	Point
	// Size is the dimensions of the cuboid.
	Size
}

// NewCuboid initializes a new cuboid using the specified origin and size values.
func NewCuboid(x, y, z, width, height, depth int) Cuboid {
	return Cuboid{
		Point: Point{X: x, Y: y, Z: z},
		Size:  Size{Width: width, Height: height, Depth: depth},
	}
}

// Eq compares two cuboids to determine if the location and size are equal.
// Identifiers are ignored.
func (c *Cuboid) Eq(cub Cuboid) bool {
	return c.Point.Eq(cub.Point) && c.Size.Eq(cub.Size)
}

// String returns a string describing the cuboid.
func (c *Cuboid) String() string {
	return fmt.Sprintf("<%v, %v, %v, %v, %v, %v>", c.X, c.Y, c.Z, c.Width, c.Height, c.Depth)
}

// Left returns the coordinate of the left face of the cuboid on the x-axis.
func (c *Cuboid) Left() int {
	return c.X
}

// Right returns the coordinate of the right face of the cuboid on the x-axis.
func (c *Cuboid) Right() int {
	return c.X + c.Width
}

// Bottom returns the coordinate of the bottom face of the cuboid on the y-axis.
func (c *Cuboid) Bottom() int {
	return c.Y
}

// Top returns the coordinate of the top face of the cuboid on the y-axis.
func (c *Cuboid) Top() int {
	return c.Y + c.Height
}

// OutEye returns the z coordinate of the face farthest from the eye.
func (c *Cuboid) OutEye() int {
	return c.Z
}

// InEye returns the z coordinate of the face nearest to the eye.
func (c *Cuboid) InEye() int {
	return c.Z + c.Depth
}

// IsEmpty tests whether any dimension of the cuboid is less than 1.
func (c *Cuboid) IsEmpty() bool {
	return c.Width <= 0 || c.Height <= 0 || c.Depth <= 0
}

// Contains tests whether the specified cuboid lies within the closed bounds
// of the receiver on all three axes.
func (c *Cuboid) Contains(cub Cuboid) bool {
	return cub.X >= c.X &&
		cub.Y >= c.Y &&
		cub.Z >= c.Z &&
		cub.X+cub.Width <= c.X+c.Width &&
		cub.Y+cub.Height <= c.Y+c.Height &&
		cub.Z+cub.Depth <= c.Z+c.Depth
}

// ContainsPoint tests whether the specified coordinates are within the bounds
// of the receiver.
func (c *Cuboid) ContainsPoint(x, y, z int) bool {
	return c.X <= x && x < c.X+c.Width &&
		c.Y <= y && y < c.Y+c.Height &&
		c.Z <= z && z < c.Z+c.Depth
}

// Intersects tests whether the receiver has any overlap with the specified
// cuboid. When edges is false, cuboids that only share a face do not count as
// intersecting. When edges is true shared faces count, but a contact that is
// a shared corner or edge on all three axes simultaneously still does not.
func (c *Cuboid) Intersects(cub Cuboid, edges bool) bool {
	if c.Bottom() > cub.Top() || c.Top() < cub.Bottom() ||
		c.Left() > cub.Right() || c.Right() < cub.Left() ||
		c.OutEye() > cub.InEye() || c.InEye() < cub.OutEye() {
		return false
	}

	if !edges {
		if c.Bottom() == cub.Top() || c.Top() == cub.Bottom() ||
			c.Left() == cub.Right() || c.Right() == cub.Left() ||
			c.OutEye() == cub.InEye() || c.InEye() == cub.OutEye() {
			return false
		}
	}

	// A touch on all three axes at once is a corner, not an intersection.
	xTouch := c.Left() == cub.Right() || cub.Left() == c.Right()
	yTouch := c.Bottom() == cub.Top() || cub.Bottom() == c.Top()
	zTouch := c.OutEye() == cub.InEye() || cub.OutEye() == c.InEye()
	if xTouch && yTouch && zTouch {
		return false
	}

	return true
}

// Intersection returns the cuboid resulting from the overlap of the receiver
// and another cuboid. When the cuboids are only touching by their faces and
// edges is true, the returned cuboid has a volume of 0. The second return
// value reports whether any intersection was present.
func (c *Cuboid) Intersection(cub Cuboid, edges bool) (Cuboid, bool) {
	if !c.Intersects(cub, edges) {
		return Cuboid{}, false
	}

	left := max(c.Left(), cub.Left())
	bottom := max(c.Bottom(), cub.Bottom())
	outEye := max(c.OutEye(), cub.OutEye())
	right := min(c.Right(), cub.Right())
	top := min(c.Top(), cub.Top())
	inEye := min(c.InEye(), cub.InEye())

	return NewCuboid(left, bottom, outEye, right-left, top-bottom, inEye-outEye), true
}

// Join attempts to extend the receiver to the union of itself and another
// cuboid. The union must itself be a cuboid: the two must share an entire
// face of matching extent on two of the three axes, or one must contain the
// other. Returns true when successful; on failure the receiver is unchanged.
func (c *Cuboid) Join(cub Cuboid) bool {
	if c.Contains(cub) {
		return true
	}

	if cub.Contains(*c) {
		c.Point = cub.Point
		c.Width = cub.Width
		c.Height = cub.Height
		c.Depth = cub.Depth
		return true
	}

	if !c.Intersects(cub, true) {
		return false
	}

	// Other cuboid is above/below this one.
	if c.Left() == cub.Left() && c.Width == cub.Width &&
		c.OutEye() == cub.OutEye() && c.Depth == cub.Depth {
		yMin := min(c.Bottom(), cub.Bottom())
		yMax := max(c.Top(), cub.Top())
		c.Y = yMin
		c.Height = yMax - yMin
		return true
	}

	// Other cuboid is right/left of this one.
	if c.Bottom() == cub.Bottom() && c.Height == cub.Height &&
		c.OutEye() == cub.OutEye() && c.Depth == cub.Depth {
		xMin := min(c.Left(), cub.Left())
		xMax := max(c.Right(), cub.Right())
		c.X = xMin
		c.Width = xMax - xMin
		return true
	}

	// Other cuboid is in front of/behind this one.
	if c.Bottom() == cub.Bottom() && c.Height == cub.Height &&
		c.Left() == cub.Left() && c.Width == cub.Width {
		zMin := min(c.OutEye(), cub.OutEye())
		zMax := max(c.InEye(), cub.InEye())
		c.Z = zMin
		c.Depth = zMax - zMin
		return true
	}

	return false
}

// vim: ts=4

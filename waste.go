package cubepack

// WasteManager packs cuboids into externally supplied offcut regions. It
// drives a guillotine engine (volume fit, minimize-area split) whose free
// list is fed exclusively through AddSection and starts out empty; the
// supplied regions are taken as-is and never validated against one another.
type WasteManager struct {
	engine *guillotinePack
}

// NewWasteManager initializes a waste manager with no free regions.
func NewWasteManager(rotation, merge bool) *WasteManager {
	w := &WasteManager{
		engine: newGuillotine(1, 1, 1, GuillotineBvfMinas, rotation, merge),
	}
	w.engine.sections = w.engine.sections[:0]
	return w
}

// AddSection registers a new waste region at the given position.
func (w *WasteManager) AddSection(x, y, z, width, height, depth int) {
	checkDims(width, height, depth)
	w.engine.addSection(NewCuboid(x, y, z, width, height, depth))
}

// AddCub places a cuboid into one of the waste regions, returning nil when
// none can hold it.
func (w *WasteManager) AddCub(width, height, depth int, id any) *Cuboid {
	return w.engine.AddCub(width, height, depth, id)
}

// Fitness returns the score of the waste region the cuboid would be placed
// into, or false when no region can hold it.
func (w *WasteManager) Fitness(width, height, depth int) (int, bool) {
	return w.engine.Fitness(width, height, depth)
}

// Cuboids returns the cuboids placed so far.
func (w *WasteManager) Cuboids() []Cuboid {
	return w.engine.Cuboids()
}

// Len returns the number of placed cuboids.
func (w *WasteManager) Len() int {
	return w.engine.Len()
}

// Reset discards all placed cuboids and waste regions.
func (w *WasteManager) Reset() {
	w.engine.Reset()
	w.engine.sections = w.engine.sections[:0]
}

// vim: ts=4

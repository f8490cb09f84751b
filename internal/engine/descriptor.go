package engine

// A Descriptor encodes one cell's logic function in 20 bits. Bits 0..15 are
// a truth table indexed by the 4-bit neighbour tuple (east, north, west,
// south) with east least significant. Bits 16..19 choose, per compass
// direction, between the adjacent neighbour and the cell one beyond it.
type Descriptor uint32

// Compass direction indexes, in descriptor bit order.
const (
	East = iota
	North
	West
	South
)

// Table returns truth-table entry i.
func (d Descriptor) Table(i int) bool { return d>>uint(i)&1 == 1 }

// LongReach reports whether direction dir reads the cell two away instead
// of the adjacent one.
func (d Descriptor) LongReach(dir int) bool { return d>>(16+uint(dir))&1 == 1 }

package circuit

import "github.com/digumx/LogicSim/internal/engine"

// DecodePixel assembles a cell descriptor from an RGB pixel: the low
// nibble of R carries the four direction bits, G the high byte of the
// truth table, B the low byte. The upper nibble of R is reserved for
// labelling in circuit images and is masked off.
func DecodePixel(r, g, b uint8) engine.Descriptor {
	return engine.Descriptor(uint32(r&0x0f)<<16 | uint32(g)<<8 | uint32(b))
}

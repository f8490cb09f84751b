package engine

// planes hold the circuit bits rearranged for the kernel: one Wp×Hp word
// grid per descriptor bit, so a single tile fetch yields that bit for all
// 32 cells at once. The first 16 grids carry the truth table, the last 4
// the direction selects. Planes never change after construction.
type planes struct {
	wp, hp int
	table  [16][]uint32
	dir    [4][]uint32
}

// buildPlanes distributes the per-cell descriptors across the bit planes.
// Cells in the padding of the last tile row/column keep all-zero
// descriptors, so their truth tables never produce a 1.
func buildPlanes(desc []Descriptor, w, h int) *planes {
	wp, hp := tilesFor(w, tileW), tilesFor(h, tileH)
	p := &planes{wp: wp, hp: hp}
	for i := range p.table {
		p.table[i] = make([]uint32, wp*hp)
	}
	for i := range p.dir {
		p.dir[i] = make([]uint32, wp*hp)
	}
	for ty := 0; ty < hp; ty++ {
		for tx := 0; tx < wp; tx++ {
			idx := ty*wp + tx
			for sy := 0; sy < tileH; sy++ {
				for sx := 0; sx < tileW; sx++ {
					x, y := tx*tileW+sx, ty*tileH+sy
					if x >= w || y >= h {
						continue
					}
					d := uint32(desc[y*w+x])
					bit := uint(sy*tileW + sx)
					for i := range p.table {
						p.table[i][idx] |= (d >> uint(i) & 1) << bit
					}
					for i := range p.dir {
						p.dir[i][idx] |= (d >> uint(16+i) & 1) << bit
					}
				}
			}
		}
	}
	return p
}

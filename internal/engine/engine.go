package engine

// Engine owns the two packed state buffers and the circuit planes, and
// drives the simulation one tick at a time. It is single threaded: a tick
// is one kernel pass, one peripheral pass, one buffer swap.
type Engine struct {
	w, h    int
	planes  *planes
	cur     *stateBuffer
	nxt     *stateBuffer
	periphs []Peripheral
}

// New builds an engine for a w×h board. desc holds one descriptor per cell
// in row-major order; periphs are ticked in the given order. Both state
// buffers start zeroed.
func New(w, h int, desc []Descriptor, periphs []Peripheral) *Engine {
	return &Engine{
		w:       w,
		h:       h,
		planes:  buildPlanes(desc, w, h),
		cur:     newStateBuffer(w, h),
		nxt:     newStateBuffer(w, h),
		periphs: periphs,
	}
}

// Size returns the board dimensions in cells.
func (e *Engine) Size() (w, h int) { return e.w, e.h }

// State reads the current state of cell (x, y). Off-board cells read 0.
func (e *Engine) State(x, y int) bool { return e.cur.get(x, y) }

// SetState writes cell (x, y) in the buffer being prepared for the next
// tick, the same way a peripheral output does. Off-board writes are
// dropped.
func (e *Engine) SetState(x, y int, v bool) { e.nxt.set(x, y, v) }

// Tick advances the board one step: the kernel fills the next buffer from
// the current one, each peripheral reads the pre-tick state and overrides
// its output cells in the next buffer, then the buffers swap roles. The
// kernel writes every cell every tick, so the swapped-in scratch buffer
// needs no clearing.
func (e *Engine) Tick() {
	for ty := 0; ty < e.cur.hp; ty++ {
		for tx := 0; tx < e.cur.wp; tx++ {
			e.nxt.words[ty*e.cur.wp+tx] = stepTile(e.cur, e.planes, tx, ty)
		}
	}
	for _, p := range e.periphs {
		ins := p.Inputs()
		for i := range ins {
			// Off-board input pins keep whatever bit they held, so a
			// peripheral that zeroed them sees 0.
			if in := ins[i]; in.X >= 0 && in.X < e.w && in.Y >= 0 && in.Y < e.h {
				ins[i].Bit = e.cur.get(in.X, in.Y)
			}
		}
		p.Tick()
		for _, out := range p.Outputs() {
			e.nxt.set(out.X, out.Y, out.Bit)
		}
	}
	e.cur, e.nxt = e.nxt, e.cur
}

// StatePlane copies the current board into an unpacked byte grid, one cell
// per entry in row-major order, for frame rendering.
func (e *Engine) StatePlane() []uint8 {
	out := make([]uint8, e.w*e.h)
	for y := 0; y < e.h; y++ {
		for x := 0; x < e.w; x++ {
			if e.cur.get(x, y) {
				out[y*e.w+x] = 1
			}
		}
	}
	return out
}

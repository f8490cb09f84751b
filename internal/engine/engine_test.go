package engine

import "testing"

// testDriver writes a fixed level to its pins every tick.
type testDriver struct {
	pins  []Pin
	level bool
}

func (d *testDriver) Inputs() []Pin  { return nil }
func (d *testDriver) Outputs() []Pin { return d.pins }
func (d *testDriver) Tick() {
	for i := range d.pins {
		d.pins[i].Bit = d.level
	}
}

// testProbe records the bit the engine loads into its input pin each tick.
type testProbe struct {
	pins []Pin
	seen []bool
}

func (p *testProbe) Inputs() []Pin  { return p.pins }
func (p *testProbe) Outputs() []Pin { return nil }
func (p *testProbe) Tick()          { p.seen = append(p.seen, p.pins[0].Bit) }

func TestFreshEngineIsZero(t *testing.T) {
	e := New(13, 7, make([]Descriptor, 13*7), nil)
	for y := 0; y < 7; y++ {
		for x := 0; x < 13; x++ {
			if e.State(x, y) {
				t.Fatalf("cell (%d,%d) is 1 before any tick", x, y)
			}
		}
	}
}

func TestOutOfRangeAccessors(t *testing.T) {
	e := New(13, 7, make([]Descriptor, 13*7), nil)
	points := []struct{ x, y int }{
		{-1, 0}, {0, -1}, {13, 0}, {0, 7}, {-2, -2}, {100, 100},
	}
	for _, pt := range points {
		if e.State(pt.x, pt.y) {
			t.Fatalf("State(%d,%d) = 1, want 0", pt.x, pt.y)
		}
		e.SetState(pt.x, pt.y, true) // must not panic or touch the board
	}
	for y := 0; y < 7; y++ {
		for x := 0; x < 13; x++ {
			if e.nxt.get(x, y) {
				t.Fatalf("out-of-range SetState leaked into cell (%d,%d)", x, y)
			}
		}
	}
}

func TestPackedBitPositions(t *testing.T) {
	b := newStateBuffer(13, 7)
	b.set(9, 5, true)
	// Cell (9,5) lives in tile (1,1) at bit (5%4)*8 + (9%8) = 9.
	if got := b.words[1*b.wp+1]; got != 1<<9 {
		t.Fatalf("tile word = %#x, want %#x", got, uint32(1)<<9)
	}
	if !b.get(9, 5) {
		t.Fatal("set bit did not read back")
	}
	b.set(9, 5, false)
	if b.words[1*b.wp+1] != 0 {
		t.Fatal("clearing the bit left the tile dirty")
	}
}

func TestPackedRoundTrip(t *testing.T) {
	b := newStateBuffer(13, 7)
	for y := 0; y < 7; y++ {
		for x := 0; x < 13; x++ {
			if (x+y)%3 == 0 {
				b.set(x, y, true)
			}
		}
	}
	for y := 0; y < 7; y++ {
		for x := 0; x < 13; x++ {
			want := (x+y)%3 == 0
			if got := b.get(x, y); got != want {
				t.Fatalf("cell (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestPeripheralOverridesKernel(t *testing.T) {
	// The cell's truth table is all zeros, but the driver holds it high.
	sw := &testDriver{pins: []Pin{{X: 0, Y: 0}}, level: true}
	e := New(1, 1, []Descriptor{0x0000}, []Peripheral{sw})
	for tick := 1; tick <= 3; tick++ {
		e.Tick()
		if !e.State(0, 0) {
			t.Fatalf("tick %d: peripheral write lost to the kernel", tick)
		}
	}
}

func TestLastPeripheralWins(t *testing.T) {
	low := &testDriver{pins: []Pin{{X: 0, Y: 0}}, level: false}
	high := &testDriver{pins: []Pin{{X: 0, Y: 0}}, level: true}
	e := New(1, 1, []Descriptor{0x0000}, []Peripheral{high, low})
	e.Tick()
	if e.State(0, 0) {
		t.Fatal("first peripheral's write survived the second's")
	}

	e = New(1, 1, []Descriptor{0x0000}, []Peripheral{low, high})
	e.Tick()
	if !e.State(0, 0) {
		t.Fatal("second peripheral's write did not win")
	}
}

func TestPeripheralReadsPreTickState(t *testing.T) {
	// The cell turns on after the first tick; the probe must see the
	// pre-tick value each time.
	probe := &testProbe{pins: []Pin{{X: 0, Y: 0}}}
	e := New(1, 1, []Descriptor{0xffff}, []Peripheral{probe})
	e.Tick()
	e.Tick()
	if len(probe.seen) != 2 || probe.seen[0] || !probe.seen[1] {
		t.Fatalf("probe saw %v, want [false true]", probe.seen)
	}
}

func TestOutOfRangeInputPinKeepsBit(t *testing.T) {
	probe := &testProbe{pins: []Pin{{X: -1, Y: 0, Bit: true}}}
	e := New(2, 2, make([]Descriptor, 4), []Peripheral{probe})
	e.Tick()
	if !probe.seen[0] {
		t.Fatal("off-board input pin was overwritten, want untouched")
	}
}

func TestOutOfRangeOutputDropped(t *testing.T) {
	sw := &testDriver{pins: []Pin{{X: 5, Y: 5}}, level: true}
	e := New(2, 2, make([]Descriptor, 4), []Peripheral{sw})
	e.Tick()
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if e.State(x, y) {
				t.Fatalf("off-board output leaked into cell (%d,%d)", x, y)
			}
		}
	}
}

func TestStatePlane(t *testing.T) {
	e := New(3, 2, make([]Descriptor, 6), nil)
	e.cur.set(2, 1, true)
	plane := e.StatePlane()
	if len(plane) != 6 {
		t.Fatalf("plane length %d, want 6", len(plane))
	}
	for i, v := range plane {
		want := uint8(0)
		if i == 1*3+2 {
			want = 1
		}
		if v != want {
			t.Fatalf("plane[%d] = %d, want %d", i, v, want)
		}
	}
}

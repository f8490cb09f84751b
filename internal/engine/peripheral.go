package engine

// A Pin addresses one board cell a peripheral exchanges a bit with. The
// engine fills Bit from the current state before a peripheral's tick, and
// copies Bit from output pins into the next state afterwards.
type Pin struct {
	X, Y int
	Bit  bool
}

// A Peripheral is any device that exchanges bits with the board once per
// tick. After the kernel pass the engine loads the peripheral's input pins
// from the pre-tick state, runs Tick, and writes its output pins into the
// next state, overriding whatever the kernel produced at those cells.
// Peripherals run in registration order; when two write the same cell the
// later one wins.
type Peripheral interface {
	Inputs() []Pin
	Outputs() []Pin
	Tick()
}

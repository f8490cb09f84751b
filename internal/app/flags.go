package app

import "flag"

// Config represents the command-line parameters for the simulator.
type Config struct {
	SimLength   int // ticks to run; negative means unbounded
	PrintStride int // ticks between frames; <= 0 means final frame only
	FrameTime   int // milliseconds between output frames
	Scale       int // integer scale factor for output frames
}

// NewConfig returns a Config populated with the default parameters.
func NewConfig() *Config {
	return &Config{SimLength: -1, PrintStride: -1, FrameTime: 100, Scale: 2}
}

// Bind attaches the configuration to the provided FlagSet, registering
// both the short and the long spelling of every option.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.SimLength, "l", c.SimLength, "number of ticks to simulate, negative for unbounded")
	fs.IntVar(&c.SimLength, "simulation-length", c.SimLength, "number of ticks to simulate, negative for unbounded")
	fs.IntVar(&c.PrintStride, "s", c.PrintStride, "ticks between output frames, 0 or negative for final frame only")
	fs.IntVar(&c.PrintStride, "print-stride", c.PrintStride, "ticks between output frames, 0 or negative for final frame only")
	fs.IntVar(&c.FrameTime, "t", c.FrameTime, "milliseconds between frames of the output gif")
	fs.IntVar(&c.FrameTime, "frametime", c.FrameTime, "milliseconds between frames of the output gif")
	fs.IntVar(&c.Scale, "c", c.Scale, "pixel scale factor for the output gif")
	fs.IntVar(&c.Scale, "output-scale", c.Scale, "pixel scale factor for the output gif")
}

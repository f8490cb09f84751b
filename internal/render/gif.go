package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"os"

	"github.com/pkg/errors"
)

// Recorder accumulates board frames and writes them out as an animated
// GIF.
type Recorder struct {
	frames  []*image.Paletted
	delays  []int
	delay   int // per-frame delay in GIF centisecond units
	palette color.Palette
}

// NewRecorder creates a recorder whose frames play frametime milliseconds
// apart.
func NewRecorder(frametime int) *Recorder {
	if frametime < 0 {
		frametime = 0
	}
	return &Recorder{
		delay:   frametime / 10,
		palette: color.Palette{ColorOff, ColorOn},
	}
}

// Add appends one frame to the animation.
func (r *Recorder) Add(frame *image.RGBA) {
	p := image.NewPaletted(frame.Rect, r.palette)
	draw.Draw(p, p.Rect, frame, frame.Rect.Min, draw.Src)
	r.frames = append(r.frames, p)
	r.delays = append(r.delays, r.delay)
}

// Frames returns the number of frames recorded so far.
func (r *Recorder) Frames() int { return len(r.frames) }

// WriteFile encodes the animation to path.
func (r *Recorder) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output gif")
	}
	if err := gif.EncodeAll(f, &gif.GIF{Image: r.frames, Delay: r.delays}); err != nil {
		f.Close()
		return errors.Wrapf(err, "encode %s", path)
	}
	return errors.Wrapf(f.Close(), "write %s", path)
}

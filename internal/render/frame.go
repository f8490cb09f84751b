package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Frame colours for the two cell states.
var (
	ColorOff = color.RGBA{A: 255}
	ColorOn  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// FrameRenderer turns unpacked board states into RGBA frames, scaling each
// cell to a scale×scale block.
type FrameRenderer struct {
	w, h  int
	scale int
	base  *image.RGBA // 1:1 cell image, reused between frames
}

// NewFrameRenderer allocates a renderer for a w×h board at the given
// integer scale factor.
func NewFrameRenderer(w, h, scale int) *FrameRenderer {
	if scale < 1 {
		scale = 1
	}
	return &FrameRenderer{
		w:     w,
		h:     h,
		scale: scale,
		base:  image.NewRGBA(image.Rect(0, 0, w, h)),
	}
}

// Render paints the cells and returns a freshly allocated frame of size
// (w*scale, h*scale).
func (r *FrameRenderer) Render(cells []uint8) *image.RGBA {
	fillBinaryRGBA(r.base.Pix, cells, ColorOn, ColorOff)
	out := image.NewRGBA(image.Rect(0, 0, r.w*r.scale, r.h*r.scale))
	if r.scale == 1 {
		copy(out.Pix, r.base.Pix)
		return out
	}
	draw.NearestNeighbor.Scale(out, out.Rect, r.base, r.base.Rect, draw.Src, nil)
	return out
}

package circuit

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/digumx/LogicSim/internal/engine"
)

// LoadImage decodes the circuit image at path and returns the board
// dimensions plus one descriptor per pixel in row-major order.
func LoadImage(path string) (w, h int, desc []engine.Descriptor, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, nil, errors.Wrap(err, "open circuit image")
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return 0, 0, nil, errors.Wrapf(err, "decode circuit image %s", path)
	}
	if !isOpaque(img) {
		log.Printf("WARNING: circuit image %s has an alpha channel, expected plain RGB", path)
	}

	bounds := img.Bounds()
	w, h = bounds.Dx(), bounds.Dy()
	desc = make([]engine.Descriptor, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			desc[y*w+x] = DecodePixel(uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
	}
	return w, h, desc, nil
}

func isOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	return true
}

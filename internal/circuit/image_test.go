package circuit

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/digumx/LogicSim/internal/engine"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestLoadImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.NRGBA{R: 0x01, G: 0x23, B: 0x45, A: 0xff})
	img.Set(2, 1, color.NRGBA{R: 0xf2, G: 0xaa, B: 0x55, A: 0xff})

	path := filepath.Join(t.TempDir(), "board.png")
	writePNG(t, path, img)

	w, h, desc, err := LoadImage(path)
	if err != nil {
		t.Fatal(err)
	}
	if w != 3 || h != 2 {
		t.Fatalf("dimensions %dx%d, want 3x2", w, h)
	}
	if len(desc) != 6 {
		t.Fatalf("got %d descriptors, want 6", len(desc))
	}
	if desc[0] != 0x12345 {
		t.Fatalf("desc[0] = %#x, want 0x12345", desc[0])
	}
	if desc[1*3+2] != 0x2aa55 {
		t.Fatalf("desc[5] = %#x, want 0x2aa55", desc[1*3+2])
	}
	for _, i := range []int{1, 2, 3, 4} {
		if desc[i] != engine.Descriptor(0) {
			t.Fatalf("desc[%d] = %#x, want 0", i, desc[i])
		}
	}
}

func TestLoadImageMissing(t *testing.T) {
	if _, _, _, err := LoadImage(filepath.Join(t.TempDir(), "absent.png")); err == nil {
		t.Fatal("missing image did not error")
	}
}

func TestLoadImageUndecodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := LoadImage(path); err == nil {
		t.Fatal("undecodable image did not error")
	}
}

//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/digumx/LogicSim/internal/periph"
)

// ebitenKeys adapts ebiten's keyboard state to the peripheral layer's key
// codes: ASCII for letters, digits and the common control characters.
type ebitenKeys struct {
	buf []ebiten.Key
}

// NewKeys returns the live keyboard for the windowed front end.
func NewKeys() periph.Keys { return &ebitenKeys{} }

// Pressed reports whether the key bound to code is held down.
func (k *ebitenKeys) Pressed(code int) bool {
	key, ok := keyForCode(code)
	return ok && ebiten.IsKeyPressed(key)
}

// Any returns the code of some currently pressed key.
func (k *ebitenKeys) Any() (int, bool) {
	k.buf = inpututil.AppendPressedKeys(k.buf[:0])
	for _, key := range k.buf {
		if code, ok := codeForKey(key); ok {
			return code, true
		}
	}
	return 0, false
}

var letterKeys = [26]ebiten.Key{
	ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE,
	ebiten.KeyF, ebiten.KeyG, ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ,
	ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN, ebiten.KeyO,
	ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT,
	ebiten.KeyU, ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY,
	ebiten.KeyZ,
}

var digitKeys = [10]ebiten.Key{
	ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7,
	ebiten.KeyDigit8, ebiten.KeyDigit9,
}

func keyForCode(code int) (ebiten.Key, bool) {
	switch {
	case code >= 'a' && code <= 'z':
		return letterKeys[code-'a'], true
	case code >= 'A' && code <= 'Z':
		return letterKeys[code-'A'], true
	case code >= '0' && code <= '9':
		return digitKeys[code-'0'], true
	}
	switch code {
	case ' ':
		return ebiten.KeySpace, true
	case '\n', '\r':
		return ebiten.KeyEnter, true
	case '\t':
		return ebiten.KeyTab, true
	case 8, 127:
		return ebiten.KeyBackspace, true
	case 27:
		return ebiten.KeyEscape, true
	}
	return 0, false
}

func codeForKey(key ebiten.Key) (int, bool) {
	for i, k := range letterKeys {
		if k == key {
			return 'a' + i, true
		}
	}
	for i, k := range digitKeys {
		if k == key {
			return '0' + i, true
		}
	}
	switch key {
	case ebiten.KeySpace:
		return ' ', true
	case ebiten.KeyEnter:
		return '\n', true
	case ebiten.KeyTab:
		return '\t', true
	case ebiten.KeyBackspace:
		return 127, true
	}
	return 0, false
}

package periph

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"

	"github.com/digumx/LogicSim/internal/engine"
	"github.com/digumx/LogicSim/internal/ui"
)

// LEDArray samples a list of cells each tick and shows them as a labelled
// line of 0s and 1s on its console section. Cells outside the board always
// show 0.
type LEDArray struct {
	ins     []engine.Pin
	labels  []string
	section *ui.Line
}

func newLEDArray(init json.RawMessage, env Env) (engine.Peripheral, error) {
	var leds []struct {
		X, Y  int
		Label string
	}
	if err := json.Unmarshal(init, &leds); err != nil {
		return nil, errors.Wrap(err, "LEDArray initializer")
	}
	a := &LEDArray{section: env.Console.Section()}
	for _, led := range leds {
		a.ins = append(a.ins, engine.Pin{X: led.X, Y: led.Y})
		a.labels = append(a.labels, led.Label)
	}
	return a, nil
}

// Inputs returns the sampled cells.
func (a *LEDArray) Inputs() []engine.Pin { return a.ins }

// Outputs returns nil; LEDs never drive the board.
func (a *LEDArray) Outputs() []engine.Pin { return nil }

// Tick rewrites the section line from the sampled bits.
func (a *LEDArray) Tick() {
	var b strings.Builder
	b.WriteString("LEDs: ")
	for i, in := range a.ins {
		b.WriteString(a.labels[i])
		if in.Bit {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	a.section.SetText(b.String())
}

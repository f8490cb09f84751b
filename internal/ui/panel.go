//go:build ebiten

package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	lineHeight = 14
	streamRows = 4
	padX       = 4
	padBottom  = 6
)

// Panel draws a console onto the screen with the fixed bitmap font: the
// status sections first, then the tail of the character stream.
type Panel struct {
	console *Console
}

// NewPanel creates a panel for the given console.
func NewPanel(c *Console) *Panel { return &Panel{console: c} }

// Height returns the pixel height the panel occupies.
func (p *Panel) Height() int {
	return (len(p.console.Lines())+streamRows)*lineHeight + padBottom
}

// Draw paints the panel starting at offsetY.
func (p *Panel) Draw(screen *ebiten.Image, offsetY int) {
	face := basicfont.Face7x13
	y := offsetY + lineHeight
	for _, ln := range p.console.Lines() {
		text.Draw(screen, ln.Text(), face, padX, y, color.White)
		y += lineHeight
	}
	rows := strings.Split(p.console.Stream(), "\n")
	if len(rows) > streamRows {
		rows = rows[len(rows)-streamRows:]
	}
	for _, row := range rows {
		text.Draw(screen, row, face, padX, y, color.White)
		y += lineHeight
	}
}

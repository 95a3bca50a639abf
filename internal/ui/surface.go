package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/robalobadob/hangman/internal/confetti"
)

// Each terminal cell is CellW x CellH surface units, so particle motion
// stays smooth even though drawing snaps to cells.
const (
	CellW = 8
	CellH = 16
)

type mark struct {
	x, y  int
	glyph rune
	color confetti.Color
	alpha float64
}

// Surface is the confetti drawing target. Pieces are buffered per frame
// and painted over the widgets by the App.
type Surface struct {
	cols, rows int
	marks      []mark
}

// NewSurface returns a surface covering cols x rows cells.
func NewSurface(cols, rows int) *Surface {
	return &Surface{cols: cols, rows: rows}
}

// SetCells updates the covered area.
func (s *Surface) SetCells(cols, rows int) { s.cols, s.rows = cols, rows }

func (s *Surface) Size() (float64, float64) {
	return float64(s.cols * CellW), float64(s.rows * CellH)
}

func (s *Surface) Clear() { s.marks = s.marks[:0] }

func (s *Surface) DrawPiece(p confetti.Piece, alpha float64) {
	if alpha <= 0 || p.X < 0 || p.Y < 0 {
		return
	}
	x, y := int(p.X/CellW), int(p.Y/CellH)
	if x >= s.cols || y >= s.rows {
		return
	}
	s.marks = append(s.marks, mark{x: x, y: y, glyph: pieceGlyph(p.Rotation), color: p.Color, alpha: alpha})
}

// paint draws buffered pieces, fading each toward bg by its alpha.
func (s *Surface) paint(scr tcell.Screen, bg tcell.Color) {
	br, bgG, bb := bg.RGB()
	for _, m := range s.marks {
		r, g, b := m.color.RGB()
		fg := tcell.NewRGBColor(
			blend(br, r, m.alpha),
			blend(bgG, g, m.alpha),
			blend(bb, b, m.alpha),
		)
		scr.SetContent(m.x, m.y, m.glyph, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
	}
}

// pieceGlyph picks a glyph that suggests the piece's orientation.
func pieceGlyph(rotation float64) rune {
	deg := math.Mod(rotation, 180)
	if deg < 0 {
		deg += 180
	}
	switch {
	case deg < 22.5 || deg >= 157.5:
		return '▬'
	case deg < 67.5:
		return '╱'
	case deg < 112.5:
		return '▮'
	default:
		return '╲'
	}
}

func blend(from, to int32, alpha float64) int32 {
	if alpha > 1 {
		alpha = 1
	}
	return from + int32(math.Round(float64(to-from)*alpha))
}

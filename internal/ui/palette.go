package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/robalobadob/hangman/internal/theme"
)

// palette is the colour set of one theme.
type palette struct {
	bg, fg, muted, accent     tcell.Color
	correct, wrong, danger    tcell.Color
	win, lose, keyBg, keyText tcell.Color
}

var palettes = map[theme.Theme]palette{
	theme.Dark: {
		bg:      tcell.NewHexColor(0x0f172a),
		fg:      tcell.NewHexColor(0xe2e8f0),
		muted:   tcell.NewHexColor(0x475569),
		accent:  tcell.NewHexColor(0x00d4ff),
		correct: tcell.NewHexColor(0x10b981),
		wrong:   tcell.NewHexColor(0xef4444),
		danger:  tcell.NewHexColor(0xf59e0b),
		win:     tcell.NewHexColor(0x34d399),
		lose:    tcell.NewHexColor(0xf87171),
		keyBg:   tcell.NewHexColor(0x1e293b),
		keyText: tcell.NewHexColor(0xf8fafc),
	},
	theme.Light: {
		bg:      tcell.NewHexColor(0xf8fafc),
		fg:      tcell.NewHexColor(0x0f172a),
		muted:   tcell.NewHexColor(0x94a3b8),
		accent:  tcell.NewHexColor(0x7c3aed),
		correct: tcell.NewHexColor(0x059669),
		wrong:   tcell.NewHexColor(0xdc2626),
		danger:  tcell.NewHexColor(0xd97706),
		win:     tcell.NewHexColor(0x047857),
		lose:    tcell.NewHexColor(0xb91c1c),
		keyBg:   tcell.NewHexColor(0xe2e8f0),
		keyText: tcell.NewHexColor(0x0f172a),
	},
}

func paletteFor(t theme.Theme) palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[theme.Dark]
}

func (p palette) style(fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg).Background(p.bg)
}

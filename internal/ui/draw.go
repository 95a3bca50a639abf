package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/robalobadob/hangman/internal/controller"
	"github.com/robalobadob/hangman/internal/display"
	"github.com/robalobadob/hangman/internal/figure"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/keyboard"
)

// Screen rows of each widget. Anything past the bottom edge is clipped.
const (
	rowHeader   = 0
	rowCategory = 2
	rowHint     = 3
	rowFigure   = 5 // seven rows
	rowWord     = 13
	rowLives    = 15
	rowKeys     = 17 // three rows, one blank between
	rowScore    = 23
	rowNotice   = 25
)

// keyRows is the on-screen keyboard layout.
var keyRows = []string{"ABCDEFGHIJKLM", "NOPQRSTUVWXYZ", "0123456789"}

const keyWidth = 4 // "[A] "

func (a *App) draw() {
	v := a.ctrl.View()
	p := paletteFor(v.Theme)

	a.screen.SetStyle(p.style(p.fg))
	a.screen.Clear()

	a.drawHeader(v, p)
	if v.Started {
		a.drawRound(v, p)
	} else if len(v.Categories) > 0 {
		a.centered(rowCategory, "Categories: "+strings.Join(v.Categories, " · "), p.style(p.muted))
	}
	a.drawFigure(v.Figure, p)
	a.drawKeys(v.Keys, p)
	a.drawScore(v, p)
	a.drawNotice(v.Notice, p)
	a.drawHelp(v.Started, p)

	a.surface.paint(a.screen, p.bg)
	a.screen.Show()
}

func (a *App) drawHeader(v controller.Snapshot, p palette) {
	a.text(2, rowHeader, "H A N G M A N", p.style(p.accent).Bold(true))
	icon := v.Theme.Icon()
	a.text(a.width-2-runewidth.StringWidth(icon), rowHeader, icon, p.style(p.fg))
}

func (a *App) drawRound(v controller.Snapshot, p palette) {
	if v.Round.Category != "" {
		a.centered(rowCategory, "Category: "+v.Round.Category, p.style(p.accent))
	}
	if v.Round.HintVisible {
		a.centered(rowHint, "Hint: "+v.Round.Hint, p.style(p.fg).Italic(true))
	} else {
		a.centered(rowHint, "?  show hint", p.style(p.muted))
	}
	a.drawWord(v.Word, p)
	a.drawLives(v.Lives, p)
}

// drawWord lays tokens out two columns apart; a separator adds a gap.
func (a *App) drawWord(tokens []display.Token, p palette) {
	width := 0
	for _, t := range tokens {
		width += 2
		if t.Kind == display.Separator {
			width += 2
		}
	}
	x := (a.width - width) / 2
	for _, t := range tokens {
		switch t.Kind {
		case display.Separator:
			x += 4
			continue
		case display.Slot:
			a.cell(x, rowWord, '_', p.style(p.muted))
		case display.Letter:
			a.cell(x, rowWord, t.Glyph, tokenStyle(t.Style, p))
		}
		x += 2
	}
}

func tokenStyle(s display.Style, p palette) tcell.Style {
	switch s {
	case display.StyleRevealed:
		return p.style(p.fg).Bold(true)
	case display.StyleWon:
		return p.style(p.win).Bold(true)
	case display.StylePlayed:
		return p.style(p.fg)
	case display.StyleLoss:
		return p.style(p.lose).Bold(true)
	}
	return p.style(p.fg)
}

func (a *App) drawLives(l display.LivesView, p palette) {
	color := p.correct
	switch l.Band {
	case display.BandDanger:
		color = p.danger
	case display.BandDead:
		color = p.wrong
	}
	line := strings.Repeat("♥", l.Filled) + strings.Repeat("♡", l.Empty) + "  " + l.Text
	a.centered(rowLives, line, p.style(color))
}

// gallows is the frame the figure hangs from. Parts are overlaid.
var gallows = []string{
	"  +---+",
	"  |   |",
	"      |",
	"      |",
	"      |",
	"      |",
	"=========",
}

// partCells places each body part relative to the gallows origin.
var partCells = map[figure.Part]struct {
	x, y  int
	glyph rune
}{
	figure.Head:     {2, 2, 'O'},
	figure.Body:     {2, 3, '|'},
	figure.LeftArm:  {1, 3, '/'},
	figure.RightArm: {3, 3, '\\'},
	figure.LeftLeg:  {1, 4, '/'},
	figure.RightLeg: {3, 4, '\\'},
}

func (a *App) drawFigure(f figure.Snapshot, p palette) {
	x0 := (a.width - len(gallows[len(gallows)-1])) / 2
	for i, line := range gallows {
		a.text(x0, rowFigure+i, line, p.style(p.muted))
	}
	for _, st := range f.Steps {
		if !st.Visible {
			continue
		}
		c := partCells[st.Part]
		style := p.style(p.fg)
		if st.Danger {
			style = p.style(p.danger)
		}
		glyph := c.glyph
		if st.Part == figure.Head {
			switch f.Face {
			case figure.FailureFace:
				glyph, style = 'X', p.style(p.lose)
			case figure.SuccessFace:
				glyph, style = '☺', p.style(p.win)
			}
		}
		a.cell(x0+c.x, rowFigure+c.y, glyph, style)
	}
}

func (a *App) drawKeys(keys []keyboard.Key, p palette) {
	byS := make(map[game.Symbol]keyboard.Key, len(keys))
	for _, k := range keys {
		byS[k.Symbol] = k
	}
	a.hits = a.hits[:0]
	for row, line := range keyRows {
		y := rowKeys + row*2
		x := (a.width - len(line)*keyWidth) / 2
		for _, r := range line {
			k := byS[game.Symbol(r)]
			a.text(x, y, "["+string(r)+"]", keyStyle(k, p))
			a.hits = append(a.hits, hit{x: x, y: y, w: keyWidth - 1, sym: k.Symbol})
			x += keyWidth
		}
	}
}

func keyStyle(k keyboard.Key, p palette) tcell.Style {
	base := tcell.StyleDefault.Background(p.keyBg)
	switch {
	case k.Status == game.StatusCorrect:
		return base.Background(p.correct).Foreground(p.keyText).Bold(true)
	case k.Status == game.StatusWrong:
		return base.Background(p.wrong).Foreground(p.keyText).Dim(true)
	case !k.Enabled:
		return base.Foreground(p.muted)
	}
	return base.Foreground(p.keyText)
}

func (a *App) drawScore(v controller.Snapshot, p palette) {
	s := v.Score
	a.centered(rowScore, fmt.Sprintf("Wins %d   Losses %d   Streak %d", s.Wins, s.Losses, s.Streak), p.style(p.fg))
}

func (a *App) drawNotice(n controller.Notice, p palette) {
	if n.Text == "" {
		return
	}
	color := p.fg
	switch n.Kind {
	case controller.NoticeWin:
		color = p.win
	case controller.NoticeLose:
		color = p.lose
	}
	a.centered(rowNotice, n.Text, p.style(color).Bold(n.Kind != controller.NoticeInfo))
}

func (a *App) drawHelp(started bool, p palette) {
	help := "Press Enter to start"
	if started {
		help = "Enter: new game   ?: hint   Ctrl+T: theme   Esc: quit"
	}
	a.centered(a.height-1, help, p.style(p.muted))
}

func (a *App) centered(y int, s string, style tcell.Style) {
	a.text((a.width-runewidth.StringWidth(s))/2, y, s, style)
}

// text draws s from (x, y), clipping at the screen edges.
func (a *App) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		a.cell(x, y, r, style)
		x += w
	}
}

func (a *App) cell(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= a.width || y >= a.height {
		return
	}
	a.screen.SetContent(x, y, r, nil, style)
}

// Package ui is the terminal front end: one goroutine owns the screen and
// the controller, and everything else reaches them through Post.
package ui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/controller"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/keyboard"
)

// App drives the screen.
type App struct {
	screen  tcell.Screen
	surface *Surface
	ctrl    *controller.Controller
	frame   time.Duration

	post chan func()
	done chan struct{}

	width, height int
	hits          []hit
	mouseDown     bool
}

// hit is the clickable area of one on-screen key.
type hit struct {
	x, y, w int
	sym     game.Symbol
}

// New binds an App to an initialised screen. fps <= 0 means 60.
func New(screen tcell.Screen, fps int) *App {
	if fps <= 0 {
		fps = 60
	}
	w, h := screen.Size()
	return &App{
		screen:  screen,
		surface: NewSurface(w, h),
		frame:   time.Second / time.Duration(fps),
		post:    make(chan func(), 64),
		done:    make(chan struct{}),
		width:   w,
		height:  h,
	}
}

// Surface is the confetti target covering the whole screen.
func (a *App) Surface() *Surface { return a.surface }

// Attach sets the controller to render and drive.
func (a *App) Attach(c *controller.Controller) { a.ctrl = c }

// Post queues fn for the UI goroutine. It never blocks after Run returns.
func (a *App) Post(fn func()) {
	select {
	case a.post <- fn:
	case <-a.done:
	}
}

// Run is the event loop. It returns when the user quits or ctx ends.
func (a *App) Run(ctx context.Context) error {
	defer close(a.done)
	a.screen.EnableMouse()
	a.screen.HideCursor()

	ticker := time.NewTicker(a.frame)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.done:
				return
			}
		}
	}()

	a.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !a.handleEvent(ev) {
				return nil
			}
		case fn := <-a.post:
			fn()
		case <-ticker.C:
			a.ctrl.Frame()
			a.draw()
		}
	}
}

// handleEvent applies one terminal event. It returns false to quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.handleResize(ev.Size())
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyCtrlT:
		a.ctrl.ToggleTheme()
		return true
	case tcell.KeyTab:
		a.ctrl.ToggleHint()
		return true
	case tcell.KeyEnter:
		a.ctrl.Keyboard().HandleKey(keyboard.KeyEvent{
			Code: keyboard.CodeEnter,
			Mod:  translateMod(ev.Modifiers()),
		})
		return true
	case tcell.KeyRune:
		if ev.Rune() == '?' {
			a.ctrl.ToggleHint()
			return true
		}
		a.ctrl.Keyboard().HandleKey(keyboard.KeyEvent{
			Code: keyboard.CodeRune,
			Rune: ev.Rune(),
			Mod:  translateMod(ev.Modifiers()),
		})
	}
	return true
}

func translateMod(m tcell.ModMask) keyboard.Mod {
	var out keyboard.Mod
	if m&tcell.ModCtrl != 0 {
		out |= keyboard.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= keyboard.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		out |= keyboard.ModMeta
	}
	return out
}

// handleMouse presses the key under a primary-button press. Holding the
// button down does not repeat.
func (a *App) handleMouse(ev *tcell.EventMouse) {
	down := ev.Buttons()&tcell.Button1 != 0
	pressed := down && !a.mouseDown
	a.mouseDown = down
	if !pressed {
		return
	}
	x, y := ev.Position()
	for _, h := range a.hits {
		if y == h.y && x >= h.x && x < h.x+h.w {
			if !a.ctrl.Keyboard().Press(h.sym) {
				log.Debug().Str("symbol", h.sym.String()).Msg("press ignored")
			}
			return
		}
	}
}

func (a *App) handleResize(w, h int) {
	a.width, a.height = w, h
	a.surface.SetCells(w, h)
	a.ctrl.Resize(float64(w*CellW), float64(h*CellH))
	a.screen.Sync()
}

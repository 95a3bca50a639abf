// Package confetti runs the victory particle effect.
//
// An Engine paints onto a Surface. Each Launch starts a fixed-length run of
// independent pieces; the host calls Step once per frame. A run ends on its
// own after Frames steps, and Clear or a new Launch halts it immediately,
// so at most one run ever paints to the surface.
package confetti

import "math/rand/v2"

// Color is a 0xRRGGBB value.
type Color uint32

// RGB splits c into its components.
func (c Color) RGB() (r, g, b int32) {
	return int32(c >> 16 & 0xff), int32(c >> 8 & 0xff), int32(c & 0xff)
}

// Palette is the default set of piece colours.
var Palette = []Color{
	0x00d4ff,
	0x7c3aed,
	0x10b981,
	0xf59e0b,
	0xef4444,
	0xec4899,
	0x06b6d4,
	0x8b5cf6,
}

// Piece is one particle. Coordinates are surface units, rotation is in
// degrees.
type Piece struct {
	X, Y     float64
	W, H     float64
	VX, VY   float64
	Rotation float64
	Spin     float64
	Opacity  float64
	Color    Color
}

// Surface is where pieces are drawn.
type Surface interface {
	Size() (w, h float64)
	Clear()
	DrawPiece(p Piece, alpha float64)
}

// Params controls the shape of a run.
type Params struct {
	Count   int
	Frames  int
	Palette []Color
}

// DefaultParams is 120 pieces over 180 frames.
func DefaultParams() Params {
	return Params{Count: 120, Frames: 180, Palette: Palette}
}

// wrapY is where a piece re-enters after falling past the bottom edge.
const wrapY = -10

// Engine owns the active run, if any.
type Engine struct {
	surface Surface
	rng     *rand.Rand
	params  Params
	width   float64
	height  float64
	run     *run
}

type run struct {
	pieces []Piece
	tick   int
}

// New binds an engine to s. rng drives every random choice so a fixed seed
// gives a reproducible run.
func New(s Surface, rng *rand.Rand, p Params) *Engine {
	if p.Count <= 0 || p.Frames <= 0 || len(p.Palette) == 0 {
		p = DefaultParams()
	}
	e := &Engine{surface: s, rng: rng, params: p}
	e.width, e.height = s.Size()
	return e
}

// Resize updates the surface dimensions used for spawning and wrapping.
func (e *Engine) Resize(w, h float64) {
	e.width, e.height = w, h
}

// Launch halts any run in flight and starts a new one.
func (e *Engine) Launch() {
	e.Clear()
	e.width, e.height = e.surface.Size()

	pieces := make([]Piece, e.params.Count)
	for i := range pieces {
		pieces[i] = Piece{
			X:        e.rng.Float64() * e.width,
			Y:        e.rng.Float64()*e.height - e.height,
			W:        e.rng.Float64()*8 + 4,
			H:        e.rng.Float64()*5 + 2,
			Color:    e.params.Palette[e.rng.IntN(len(e.params.Palette))],
			VY:       e.rng.Float64()*2 + 1.5,
			VX:       e.rng.Float64()*2 - 1,
			Rotation: e.rng.Float64() * 360,
			Spin:     e.rng.Float64()*8 - 4,
			Opacity:  e.rng.Float64()*0.5 + 0.5,
		}
	}
	e.run = &run{pieces: pieces}
}

// Step advances the active run by one frame and reports whether the run is
// still going. Without an active run it does nothing.
func (e *Engine) Step() bool {
	r := e.run
	if r == nil {
		return false
	}
	if r.tick >= e.params.Frames {
		e.Clear()
		return false
	}

	e.surface.Clear()
	fade := 1 - float64(r.tick)/float64(e.params.Frames)
	for i := range r.pieces {
		p := &r.pieces[i]
		e.surface.DrawPiece(*p, p.Opacity*fade)

		p.Y += p.VY
		p.X += p.VX
		p.Rotation += p.Spin
		if p.Y > e.height {
			p.Y = wrapY
			p.X = e.rng.Float64() * e.width
		}
	}
	r.tick++
	return true
}

// Clear halts the active run and wipes the surface.
func (e *Engine) Clear() {
	e.run = nil
	e.surface.Clear()
}

// Running reports whether a run is active.
func (e *Engine) Running() bool { return e.run != nil }

// Tick returns the frame index of the active run, or -1.
func (e *Engine) Tick() int {
	if e.run == nil {
		return -1
	}
	return e.run.tick
}

// Pieces returns a copy of the active run's pieces.
func (e *Engine) Pieces() []Piece {
	if e.run == nil {
		return nil
	}
	out := make([]Piece, len(e.run.pieces))
	copy(out, e.run.pieces)
	return out
}

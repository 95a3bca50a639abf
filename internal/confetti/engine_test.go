package confetti

import (
	"math/rand/v2"
	"testing"
)

type fakeSurface struct {
	w, h   float64
	clears int
	draws  int
	alphas []float64
}

func (f *fakeSurface) Size() (float64, float64) { return f.w, f.h }
func (f *fakeSurface) Clear() {
	f.clears++
	f.draws = 0
	f.alphas = f.alphas[:0]
}
func (f *fakeSurface) DrawPiece(p Piece, alpha float64) {
	f.draws++
	f.alphas = append(f.alphas, alpha)
}

func newEngine(s *fakeSurface) *Engine {
	return New(s, rand.New(rand.NewPCG(1, 2)), DefaultParams())
}

func TestEngine_LaunchAllocatesBatch(t *testing.T) {
	s := &fakeSurface{w: 800, h: 600}
	e := newEngine(s)
	e.Launch()

	pieces := e.Pieces()
	if len(pieces) != 120 {
		t.Fatalf("pieces %d, want 120", len(pieces))
	}
	for _, p := range pieces {
		if p.X < 0 || p.X >= 800 {
			t.Errorf("x %v out of viewport", p.X)
		}
		if p.Y < -600 || p.Y >= 0 {
			t.Errorf("y %v should start above the top edge", p.Y)
		}
		if p.Opacity < 0.5 || p.Opacity >= 1 {
			t.Errorf("opacity %v", p.Opacity)
		}
		if p.VY < 1.5 || p.VY >= 3.5 {
			t.Errorf("vy %v", p.VY)
		}
	}
}

func TestEngine_RunIsBounded(t *testing.T) {
	s := &fakeSurface{w: 800, h: 600}
	e := newEngine(s)
	e.Launch()

	frames := 0
	for e.Step() {
		frames++
		if s.draws != 120 {
			t.Fatalf("frame %d drew %d pieces", frames, s.draws)
		}
		if frames > 1000 {
			t.Fatal("run did not terminate")
		}
	}
	if frames != 180 {
		t.Errorf("frames %d, want 180", frames)
	}
	if e.Running() {
		t.Error("engine still running after final frame")
	}
	if s.draws != 0 {
		t.Errorf("surface not cleared at end: %d draws", s.draws)
	}
	if e.Step() {
		t.Error("Step after the run should be a no-op")
	}
}

func TestEngine_LinearFade(t *testing.T) {
	s := &fakeSurface{w: 100, h: 100}
	e := newEngine(s)
	e.Launch()
	first := e.Pieces()[0]

	e.Step()
	if got := s.alphas[0]; got != first.Opacity {
		t.Errorf("tick 0 alpha %v, want %v", got, first.Opacity)
	}
	for i := 1; i < 90; i++ {
		e.Step()
	}
	want := first.Opacity * (1 - 89.0/180)
	if got := s.alphas[0]; got < want-1e-9 || got > want+1e-9 {
		t.Errorf("tick 89 alpha %v, want %v", got, want)
	}
}

func TestEngine_WrapsBelowBottom(t *testing.T) {
	s := &fakeSurface{w: 100, h: 10}
	e := newEngine(s)
	e.Launch()
	for i := 0; i < 50; i++ {
		e.Step()
		for _, p := range e.Pieces() {
			if p.Y > 10 {
				t.Fatalf("piece below bottom edge: %+v", p)
			}
		}
	}
}

func TestEngine_ClearHaltsRun(t *testing.T) {
	s := &fakeSurface{w: 800, h: 600}
	e := newEngine(s)
	e.Launch()
	e.Step()
	e.Step()

	e.Clear()
	if e.Running() {
		t.Error("still running after Clear")
	}
	for i := 0; i < 5; i++ {
		e.Step()
	}
	if s.draws != 0 {
		t.Errorf("leftover pieces drawn after Clear: %d", s.draws)
	}
}

func TestEngine_LaunchReplacesRun(t *testing.T) {
	s := &fakeSurface{w: 800, h: 600}
	e := newEngine(s)
	e.Launch()
	for i := 0; i < 100; i++ {
		e.Step()
	}
	e.Launch()
	if e.Tick() != 0 {
		t.Errorf("tick %d, want 0 after relaunch", e.Tick())
	}
	e.Step()
	if s.draws != 120 {
		t.Errorf("draws %d, want a single run of 120", s.draws)
	}
}

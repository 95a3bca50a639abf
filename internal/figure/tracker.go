// Package figure tracks the progressive reveal of the hangman figure.
//
// The figure has a fixed sequence of steps, one per wrong guess, and two
// terminal face overlays. State only moves forward until Reset.
package figure

// Part names one reveal step.
type Part int

const (
	Head Part = iota
	Body
	LeftArm
	RightArm
	LeftLeg
	RightLeg
)

// Steps is the reveal order.
var Steps = [...]Part{Head, Body, LeftArm, RightArm, LeftLeg, RightLeg}

// StepCount is the number of reveal steps.
const StepCount = len(Steps)

// dangerFrom is the first step index drawn in the danger colour.
const dangerFrom = 4

func (p Part) String() string {
	switch p {
	case Head:
		return "head"
	case Body:
		return "body"
	case LeftArm:
		return "left-arm"
	case RightArm:
		return "right-arm"
	case LeftLeg:
		return "left-leg"
	case RightLeg:
		return "right-leg"
	}
	return "unknown"
}

// Face is a terminal overlay on the head.
type Face int

const (
	NoFace Face = iota
	FailureFace
	SuccessFace
)

// Step is the visibility of one part.
type Step struct {
	Part    Part
	Visible bool
	Danger  bool
}

// Snapshot is a copy of the tracker state for rendering.
type Snapshot struct {
	Steps [StepCount]Step
	Face  Face
}

// Tracker holds the figure state for the current round.
type Tracker struct {
	steps [StepCount]Step
	face  Face
}

// New returns an empty tracker.
func New() *Tracker {
	t := &Tracker{}
	t.Reset()
	return t
}

// RecordWrongGuess reveals step index. Indexes outside the step range are
// ignored; a revealed step stays revealed.
func (t *Tracker) RecordWrongGuess(index int) {
	if index < 0 || index >= StepCount {
		return
	}
	t.steps[index].Visible = true
	if index >= dangerFrom {
		t.steps[index].Danger = true
	}
}

// Reset hides every step and face overlay.
func (t *Tracker) Reset() {
	for i, p := range Steps {
		t.steps[i] = Step{Part: p}
	}
	t.face = NoFace
}

// RenderFailureFace shows the failure overlay. It does not check how many
// steps are visible.
func (t *Tracker) RenderFailureFace() { t.face = FailureFace }

// RenderSuccessFace shows the success overlay, but only once the head is
// visible; a round that never progressed gets no face.
func (t *Tracker) RenderSuccessFace() {
	if t.steps[0].Visible {
		t.face = SuccessFace
	}
}

// Visible returns the number of revealed steps.
func (t *Tracker) Visible() int {
	n := 0
	for _, s := range t.steps {
		if s.Visible {
			n++
		}
	}
	return n
}

// Face returns the current overlay.
func (t *Tracker) Face() Face { return t.face }

// Snapshot copies the current state.
func (t *Tracker) Snapshot() Snapshot {
	return Snapshot{Steps: t.steps, Face: t.face}
}

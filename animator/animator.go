// Package animator moves a rotating random subset of scene objects along z.
//
// Selection and frame application are both driven from the game's update
// callback, so the active set is never touched from two goroutines.
package animator

import (
	"github.com/milk9111/cubefield/common"
)

const (
	// DefaultCount is how many draws each interval makes.
	DefaultCount = 10

	// MinMagnitude and MaxMagnitude bound the per-frame z step.
	MinMagnitude = 0.3
	MaxMagnitude = 0.6
)

// Target is a scene object the animator can move. The animator never owns it.
type Target interface {
	PositionZ() float64
	TranslateZ(dz float64)
}

// Action is one object's motion for the current interval.
type Action struct {
	Target Target
	Index  int
	Delta  float64
}

// Apply moves the target by Delta.
func (a Action) Apply() {
	if a.Target == nil {
		return
	}
	a.Target.TranslateZ(a.Delta)
}

// Animator holds the active set between interval ticks.
type Animator struct {
	rng    common.Random
	active []Action
}

// New returns an animator with an empty active set that draws from rng.
func New(rng common.Random) *Animator {
	return &Animator{rng: rng}
}

// TickSelection replaces the active set with k draws from objects.
// Draws are with replacement: index = round(rand * (n-1)). Each action moves
// its object back toward z = 0, judged by z at this instant only.
func (a *Animator) TickSelection(objects []Target, k int) {
	if a == nil {
		return
	}
	for i := range a.active {
		a.active[i] = Action{}
	}
	a.active = a.active[:0]

	n := len(objects)
	if n == 0 || k <= 0 {
		return
	}

	for range k {
		idx := common.RoundIndex(a.rng, n)
		obj := objects[idx]
		mag := common.MapRand(a.rng, MinMagnitude, MaxMagnitude, false)
		if obj.PositionZ() >= 0 {
			mag = -mag
		}
		a.active = append(a.active, Action{Target: obj, Index: idx, Delta: mag})
	}
}

// ApplyFrame applies every current action once.
func (a *Animator) ApplyFrame() {
	if a == nil {
		return
	}
	for _, act := range a.active {
		act.Apply()
	}
}

// Actions returns a copy of the active set.
func (a *Animator) Actions() []Action {
	if a == nil {
		return nil
	}
	return append([]Action(nil), a.active...)
}

// Len returns the active set size.
func (a *Animator) Len() int {
	if a == nil {
		return 0
	}
	return len(a.active)
}

// Clear drops the active set.
func (a *Animator) Clear() {
	if a == nil {
		return
	}
	a.TickSelection(nil, 0)
}

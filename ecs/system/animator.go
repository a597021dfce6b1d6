package system

import (
	"time"

	"github.com/milk9111/cubefield/animator"
	"github.com/milk9111/cubefield/ecs"
	"github.com/milk9111/cubefield/ecs/component"
)

// AnimatorSystem reselects the animated cubes on every interval tick and
// applies the active set once per frame.
type AnimatorSystem struct {
	animator *animator.Animator
	ticker   *animator.Ticker
	count    int
	ticks    int
}

func NewAnimatorSystem(a *animator.Animator, ticker *animator.Ticker, count int) *AnimatorSystem {
	return &AnimatorSystem{animator: a, ticker: ticker, count: count}
}

func (s *AnimatorSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.animator == nil {
		return
	}

	if s.ticker.Poll() {
		s.animator.TickSelection(cubeTargets(w), s.count)
		s.ticks++
		w.Events().Push(ecs.Event{Kind: ecs.EventSelection, Data: s.animator.Len()})
	}

	s.animator.ApplyFrame()
}

// Reset drops the active set, e.g. after the scene was rebuilt.
func (s *AnimatorSystem) Reset() {
	if s == nil {
		return
	}
	s.animator.Clear()
}

func (s *AnimatorSystem) Count() int {
	return s.count
}

// SetCount changes how many cubes the next selection picks.
func (s *AnimatorSystem) SetCount(k int) {
	if k < 0 {
		k = 0
	}
	s.count = k
}

func (s *AnimatorSystem) Interval() time.Duration {
	return s.ticker.Interval()
}

func (s *AnimatorSystem) SetInterval(d time.Duration) {
	s.ticker.Reset(d)
}

// Ticks is the number of selections made so far.
func (s *AnimatorSystem) Ticks() int {
	return s.ticks
}

func (s *AnimatorSystem) Animator() *animator.Animator {
	return s.animator
}

// cubeTargets returns the grid transforms in creation order.
func cubeTargets(w *ecs.World) []animator.Target {
	cubes := ecs.Query(w, component.CubeTagComponent.Kind())
	targets := make([]animator.Target, 0, len(cubes))
	for _, e := range cubes {
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			targets = append(targets, t)
		}
	}
	return targets
}

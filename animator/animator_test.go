package animator

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type point struct {
	z float64
}

func (p *point) PositionZ() float64    { return p.z }
func (p *point) TranslateZ(dz float64) { p.z += dz }

type scripted struct {
	draws []float64
}

func (s *scripted) Float64() float64 {
	v := s.draws[0]
	s.draws = s.draws[1:]
	return v
}

func grid(n int, z func(i int) float64) ([]*point, []Target) {
	pts := make([]*point, n)
	targets := make([]Target, n)
	for i := range pts {
		pts[i] = &point{z: z(i)}
		targets[i] = pts[i]
	}
	return pts, targets
}

func TestTickSelectionSizeAndRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, n := range []int{1, 2, 7, 60} {
		_, targets := grid(n, func(i int) float64 { return float64(i%5) - 2 })
		a := New(rng)
		for range 50 {
			a.TickSelection(targets, 10)
			acts := a.Actions()
			require.Len(t, acts, 10)
			for _, act := range acts {
				require.GreaterOrEqual(t, act.Index, 0)
				require.LessOrEqual(t, act.Index, n-1)
				require.Same(t, targets[act.Index], act.Target)
			}
		}
	}
}

func TestDirectionBiasTowardOrigin(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	pts, targets := grid(60, func(i int) float64 { return float64(i) - 30 })
	a := New(rng)
	for range 100 {
		a.TickSelection(targets, 10)
		for _, act := range a.Actions() {
			z := pts[act.Index].z
			if z >= 0 {
				require.Negative(t, act.Delta, "z=%v", z)
			} else {
				require.Positive(t, act.Delta, "z=%v", z)
			}
			mag := act.Delta
			if mag < 0 {
				mag = -mag
			}
			require.GreaterOrEqual(t, mag, MinMagnitude)
			require.LessOrEqual(t, mag, MaxMagnitude)
		}
	}
}

func TestZeroCountsAsNonNegative(t *testing.T) {
	_, targets := grid(1, func(int) float64 { return 0 })
	a := New(&scripted{draws: []float64{0.5, 0.5}})
	a.TickSelection(targets, 1)
	require.InDelta(t, -0.45, a.Actions()[0].Delta, 1e-12)
}

func TestScriptedDrawOrder(t *testing.T) {
	_, targets := grid(5, func(i int) float64 { return float64(i) - 2 })
	// (index draw, magnitude draw) pairs
	a := New(&scripted{draws: []float64{0, 0, 0.49, 1, 0.5, 0.5}})
	a.TickSelection(targets, 3)

	acts := a.Actions()
	require.Len(t, acts, 3)
	require.Equal(t, 0, acts[0].Index) // z=-2
	require.InDelta(t, 0.3, acts[0].Delta, 1e-12)
	require.Equal(t, 2, acts[1].Index) // round(1.96) = 2, z=0
	require.InDelta(t, -0.6, acts[1].Delta, 1e-12)
	require.Equal(t, 2, acts[2].Index) // duplicates allowed
	require.InDelta(t, -0.45, acts[2].Delta, 1e-12)
}

func TestApplyFrameLeavesUnselectedAlone(t *testing.T) {
	pts, targets := grid(60, func(i int) float64 { return float64(i%7) - 3 })
	a := New(rand.New(rand.NewPCG(3, 4)))
	a.TickSelection(targets, 10)

	selected := map[int]bool{}
	for _, act := range a.Actions() {
		selected[act.Index] = true
	}
	before := make([]float64, len(pts))
	for i, p := range pts {
		before[i] = p.z
	}

	for range 30 {
		a.ApplyFrame()
	}
	for i, p := range pts {
		if !selected[i] {
			require.Equal(t, before[i], p.z, "object %d moved without being selected", i)
		}
	}
}

func TestApplyFrameAccumulates(t *testing.T) {
	pts, targets := grid(1, func(int) float64 { return -1 })
	a := New(&scripted{draws: []float64{0, 0.5}})
	a.TickSelection(targets, 1)

	for range 30 {
		a.ApplyFrame()
	}
	require.InDelta(t, -1+13.5, pts[0].z, 1e-9)
}

func TestSignHeldFixedAcrossZero(t *testing.T) {
	pts, targets := grid(1, func(int) float64 { return 0.2 })
	a := New(&scripted{draws: []float64{0, 1}})
	a.TickSelection(targets, 1)

	for range 5 {
		a.ApplyFrame()
	}
	require.InDelta(t, 0.2-3.0, pts[0].z, 1e-9)
}

func TestTickSelectionClearsPreviousSet(t *testing.T) {
	_, targets := grid(4, func(int) float64 { return 1 })
	a := New(rand.New(rand.NewPCG(5, 6)))
	a.TickSelection(targets, 10)
	old := a.active[:cap(a.active)]

	a.TickSelection(targets, 2)
	require.Equal(t, 2, a.Len())
	for i := 2; i < 10; i++ {
		require.Nil(t, old[i].Target, "slot %d kept a stale action", i)
	}
}

func TestEmptyInputs(t *testing.T) {
	_, targets := grid(3, func(int) float64 { return 1 })
	a := New(rand.New(rand.NewPCG(1, 1)))
	a.TickSelection(targets, 3)

	a.TickSelection(nil, 10)
	require.Zero(t, a.Len())

	a.TickSelection(targets, 0)
	require.Zero(t, a.Len())

	a.TickSelection(targets, 3)
	a.Clear()
	require.Zero(t, a.Len())
	a.ApplyFrame()
}

func TestTickerPollDrainsBacklog(t *testing.T) {
	c := make(chan time.Time, 4)
	tk := NewManualTicker(c, time.Second)
	require.False(t, tk.Poll())

	c <- time.Now()
	c <- time.Now()
	require.True(t, tk.Poll())
	require.False(t, tk.Poll())

	tk.Reset(500 * time.Millisecond)
	require.Equal(t, 500*time.Millisecond, tk.Interval())
	tk.Reset(0)
	require.Equal(t, 500*time.Millisecond, tk.Interval())
}

func TestNewTickerDefaultsInterval(t *testing.T) {
	tk := NewTicker(0)
	defer tk.Stop()
	require.Equal(t, DefaultInterval, tk.Interval())
}

package main

import (
	"fmt"
	"log"
	"sync"

	"github.com/milk9111/cubefield/animator"
	"github.com/milk9111/cubefield/ecs"
	"github.com/milk9111/cubefield/ecs/component"
	"github.com/milk9111/cubefield/ecs/entity"
	"github.com/milk9111/cubefield/prefabs"
	"golang.design/x/clipboard"
)

// Snapshot is the live scene state copied to the clipboard with C.
type Snapshot struct {
	Camera     prefabs.Vec3Spec     `yaml:"camera"`
	PointLight prefabs.Vec3Spec     `yaml:"point_light"`
	Animator   prefabs.AnimatorSpec `yaml:"animator"`
	Active     []ActiveEntry        `yaml:"active"`
}

type ActiveEntry struct {
	Index int     `yaml:"index"`
	Z     float64 `yaml:"z"`
	Delta float64 `yaml:"delta"`
}

// TakeSnapshot reads camera and light positions from scene and the active set from a.
func TakeSnapshot(scene *entity.Scene, a *animator.Animator, count, intervalMs int) Snapshot {
	snap := Snapshot{Animator: prefabs.AnimatorSpec{Count: count, IntervalMs: intervalMs}}
	if t, ok := ecs.Get(scene.World, scene.Camera, component.TransformComponent.Kind()); ok {
		snap.Camera = prefabs.Vec3Spec{X: t.X, Y: t.Y, Z: t.Z}
	}
	if t, ok := ecs.Get(scene.World, scene.Lights.Point, component.TransformComponent.Kind()); ok {
		snap.PointLight = prefabs.Vec3Spec{X: t.X, Y: t.Y, Z: t.Z}
	}
	for _, act := range a.Actions() {
		entry := ActiveEntry{Index: act.Index, Delta: act.Delta}
		if act.Target != nil {
			entry.Z = act.Target.PositionZ()
		}
		snap.Active = append(snap.Active, entry)
	}
	return snap
}

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

func (g *Game) copySnapshot() {
	snap := TakeSnapshot(g.scene, g.animSys.Animator(), g.animSys.Count(), int(g.animSys.Interval().Milliseconds()))
	data, err := prefabs.Marshal(snap)
	if err != nil {
		log.Printf("snapshot: %v", err)
		return
	}

	clipboardOnce.Do(func() { clipboardErr = clipboard.Init() })
	if clipboardErr != nil {
		log.Printf("snapshot: clipboard unavailable: %v", clipboardErr)
		fmt.Println(string(data))
		g.flash("snapshot printed")
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	g.flash("snapshot copied")
}

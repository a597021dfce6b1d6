// Command simulate runs the cube animator headless and prints the final
// z layout as YAML, for checking scene files without opening a window.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/milk9111/cubefield/animator"
	"github.com/milk9111/cubefield/ecs"
	"github.com/milk9111/cubefield/ecs/component"
	"github.com/milk9111/cubefield/ecs/entity"
	"github.com/milk9111/cubefield/ecs/system"
	"github.com/milk9111/cubefield/prefabs"
)

type result struct {
	Scene      string    `yaml:"scene"`
	Seed       uint64    `yaml:"seed"`
	Selections int       `yaml:"selections"`
	Frames     int       `yaml:"frames"`
	MinZ       float64   `yaml:"min_z"`
	MaxZ       float64   `yaml:"max_z"`
	Z          []float64 `yaml:"z,flow"`
}

func main() {
	sceneFile := flag.String("scene", "", "scene file in prefabs/ (default scene.yaml)")
	seed := flag.Uint64("seed", 1, "random seed")
	seconds := flag.Float64("seconds", 10, "simulated wall-clock seconds")
	tps := flag.Int("tps", 60, "frames per simulated second")
	flag.Parse()

	res, err := run(*sceneFile, *seed, *seconds, *tps)
	if err != nil {
		log.Fatal(err)
	}
	data, err := prefabs.Marshal(res)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := os.Stdout.Write(data); err != nil {
		log.Fatal(err)
	}
}

func run(sceneFile string, seed uint64, seconds float64, tps int) (*result, error) {
	if tps <= 0 {
		return nil, fmt.Errorf("simulate: tps must be positive, got %d", tps)
	}
	spec, err := prefabs.LoadSceneSpec(sceneFile)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	scene, err := entity.BuildScene(spec, rng)
	if err != nil {
		return nil, err
	}

	// simulated clock: one tick every interval worth of frames
	ticks := make(chan time.Time, 1)
	interval := time.Duration(spec.Animator.IntervalMs) * time.Millisecond
	sys := system.NewAnimatorSystem(animator.New(rng), animator.NewManualTicker(ticks, interval), spec.Animator.Count)
	sched := ecs.NewScheduler(sys)

	frames := int(seconds * float64(tps))
	framesPerTick := int(interval.Seconds() * float64(tps))
	if framesPerTick <= 0 {
		framesPerTick = 1
	}
	for f := 1; f <= frames; f++ {
		if f%framesPerTick == 0 {
			ticks <- time.Time{}
		}
		sched.Update(scene.World)
	}

	res := &result{Scene: spec.Name, Seed: seed, Selections: sys.Ticks(), Frames: frames}
	for i, e := range scene.Cubes {
		t, ok := ecs.Get(scene.World, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		if i == 0 || t.Z < res.MinZ {
			res.MinZ = t.Z
		}
		if i == 0 || t.Z > res.MaxZ {
			res.MaxZ = t.Z
		}
		res.Z = append(res.Z, t.Z)
	}
	return res, nil
}

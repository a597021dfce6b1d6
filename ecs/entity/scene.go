package entity

import (
	"fmt"

	"github.com/milk9111/cubefield/common"
	"github.com/milk9111/cubefield/ecs"
	"github.com/milk9111/cubefield/prefabs"
)

// Scene is a fully built world plus handles to its notable entities.
type Scene struct {
	World  *ecs.World
	Spec   *prefabs.SceneSpec
	Camera ecs.Entity
	Lights Lights
	Axes   ecs.Entity
	Cubes  []ecs.Entity
}

// BuildScene creates every entity described by spec in a fresh world.
func BuildScene(spec *prefabs.SceneSpec, rng common.Random) (*Scene, error) {
	if spec == nil {
		return nil, fmt.Errorf("scene: nil spec")
	}
	w := ecs.NewWorld()
	s := &Scene{World: w, Spec: spec}

	var err error
	if s.Camera, err = NewCamera(w, spec.Camera); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if s.Lights, err = NewLights(w, spec.Lights); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if s.Cubes, err = NewGrid(w, spec.Grid, rng); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if s.Axes, err = NewAxes(w, spec.Axes); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return s, nil
}

package entity

import (
	"fmt"
	"math"

	"github.com/milk9111/cubefield/ecs"
	"github.com/milk9111/cubefield/ecs/component"
	"github.com/milk9111/cubefield/prefabs"
)

// NewCamera creates the perspective camera and its orbit control.
func NewCamera(w *ecs.World, spec prefabs.CameraSpec) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.NameComponent.Kind(), &component.Name{Value: "camera"}); err != nil {
		return 0, fmt.Errorf("camera: add name: %w", err)
	}

	pos := spec.Position
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{
		X: pos.X, Y: pos.Y, Z: pos.Z,
	}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		FOV:     spec.FOV,
		Near:    spec.Near,
		Far:     spec.Far,
		TargetX: spec.Target.X,
		TargetY: spec.Target.Y,
		TargetZ: spec.Target.Z,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	dx := pos.X - spec.Target.X
	dy := pos.Y - spec.Target.Y
	dz := pos.Z - spec.Target.Z
	dist := math.Sqrt(dx*dx + dy*dy + dz*dz)
	polar := math.Pi / 2
	if dist > 0 {
		polar = math.Acos(dy / dist)
	}
	if err := ecs.Add(w, camera, component.OrbitControlComponent.Kind(), &component.OrbitControl{
		Azimuth:     math.Atan2(dx, dz),
		Polar:       polar,
		Distance:    dist,
		MinDistance: spec.Orbit.MinDistance,
		MaxDistance: spec.Orbit.MaxDistance,
		RotateSpeed: spec.Orbit.RotateSpeed,
		ZoomSpeed:   spec.Orbit.ZoomSpeed,
		Damping:     spec.Orbit.Damping,
	}); err != nil {
		return 0, fmt.Errorf("camera: add orbit control: %w", err)
	}

	return camera, nil
}

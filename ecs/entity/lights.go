package entity

import (
	"fmt"

	"github.com/milk9111/cubefield/ecs"
	"github.com/milk9111/cubefield/ecs/component"
	"github.com/milk9111/cubefield/prefabs"
)

// Lights are the entities created by NewLights.
type Lights struct {
	Ambient     ecs.Entity
	Point       ecs.Entity
	Directional ecs.Entity
}

func NewLights(w *ecs.World, spec prefabs.LightsSpec) (Lights, error) {
	var out Lights

	ambientColor, err := prefabs.ParseHexColor(spec.Ambient.Color)
	if err != nil {
		return out, fmt.Errorf("lights: ambient: %w", err)
	}
	out.Ambient = ecs.CreateEntity(w)
	if err := ecs.Add(w, out.Ambient, component.AmbientLightComponent.Kind(), &component.AmbientLight{
		Color:     ambientColor,
		Intensity: spec.Ambient.Intensity,
	}); err != nil {
		return out, fmt.Errorf("lights: add ambient: %w", err)
	}

	pointColor, err := prefabs.ParseHexColor(spec.Point.Color)
	if err != nil {
		return out, fmt.Errorf("lights: point: %w", err)
	}
	out.Point, err = positioned(w, "point_light", spec.Point.Position)
	if err != nil {
		return out, fmt.Errorf("lights: point: %w", err)
	}
	if err := ecs.Add(w, out.Point, component.PointLightComponent.Kind(), &component.PointLight{
		Color:      pointColor,
		Intensity:  spec.Point.Intensity,
		Distance:   spec.Point.Distance,
		Decay:      spec.Point.Decay,
		CastShadow: spec.Point.CastShadow,
		ShadowMapW: spec.Point.ShadowMap.Width,
		ShadowMapH: spec.Point.ShadowMap.Height,
		Helper:     spec.Point.Helper,
	}); err != nil {
		return out, fmt.Errorf("lights: add point: %w", err)
	}

	dirColor, err := prefabs.ParseHexColor(spec.Directional.Color)
	if err != nil {
		return out, fmt.Errorf("lights: directional: %w", err)
	}
	out.Directional, err = positioned(w, "directional_light", spec.Directional.Position)
	if err != nil {
		return out, fmt.Errorf("lights: directional: %w", err)
	}
	if err := ecs.Add(w, out.Directional, component.DirectionalLightComponent.Kind(), &component.DirectionalLight{
		Color:     dirColor,
		Intensity: spec.Directional.Intensity,
		Helper:    spec.Directional.Helper,
	}); err != nil {
		return out, fmt.Errorf("lights: add directional: %w", err)
	}

	return out, nil
}

func positioned(w *ecs.World, name string, pos prefabs.Vec3Spec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: name}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y, Z: pos.Z}); err != nil {
		return 0, err
	}
	return e, nil
}

// NewAxes creates the axes helper.
func NewAxes(w *ecs.World, spec prefabs.AxesSpec) (ecs.Entity, error) {
	axes := ecs.CreateEntity(w)
	if err := ecs.Add(w, axes, component.AxesHelperComponent.Kind(), &component.AxesHelper{Length: spec.Length}); err != nil {
		return 0, fmt.Errorf("axes: add helper: %w", err)
	}
	return axes, nil
}

package entity

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/cubefield/common"
	"github.com/milk9111/cubefield/ecs"
	"github.com/milk9111/cubefield/ecs/component"
	"github.com/milk9111/cubefield/prefabs"
)

const (
	MaterialMain = "main"
	MaterialSub  = "sub"
)

// cellLayout picks the material and z offset of one grid cell.
type cellLayout func(x, y int) (material string, z float64, err error)

// NewGrid creates spec.XNum*spec.YNum cubes, row by row from the bottom.
// The returned slice keeps creation order.
func NewGrid(w *ecs.World, spec prefabs.GridSpec, rng common.Random) ([]ecs.Entity, error) {
	mainColor, err := prefabs.ParseHexColor(spec.Colors.Main)
	if err != nil {
		return nil, fmt.Errorf("grid: main color: %w", err)
	}
	subColor, err := prefabs.ParseHexColor(spec.Colors.Sub)
	if err != nil {
		return nil, fmt.Errorf("grid: sub color: %w", err)
	}

	layout := defaultLayout(spec, rng)
	if strings.TrimSpace(spec.Script) != "" {
		src, err := prefabs.LoadScript(spec.Script)
		if err != nil {
			return nil, fmt.Errorf("grid: load script %s: %w", spec.Script, err)
		}
		layout, err = scriptLayout(src, spec, rng)
		if err != nil {
			return nil, fmt.Errorf("grid: compile script %s: %w", spec.Script, err)
		}
	}

	width := float64(spec.XNum) * spec.Scale
	height := float64(spec.YNum) * spec.Scale

	cubes := make([]ecs.Entity, 0, spec.XNum*spec.YNum)
	for y := 0; y < spec.YNum; y++ {
		for x := 0; x < spec.XNum; x++ {
			material, z, err := layout(x, y)
			if err != nil {
				return nil, fmt.Errorf("grid: cell %d,%d: %w", x, y, err)
			}
			clr := mainColor
			if material == MaterialSub {
				clr = subColor
			}

			cube := ecs.CreateEntity(w)
			if err := ecs.Add(w, cube, component.TransformComponent.Kind(), &component.Transform{
				X:      float64(x)*spec.Scale - width/2,
				Y:      float64(y)*spec.Scale - height/2,
				Z:      z,
				ScaleX: spec.BoxScale,
				ScaleY: spec.BoxScale,
				ScaleZ: spec.BoxScale,
			}); err != nil {
				return nil, fmt.Errorf("grid: add transform: %w", err)
			}
			if err := ecs.Add(w, cube, component.BoxComponent.Kind(), &component.Box{
				Size:          spec.Scale,
				Color:         clr,
				Material:      material,
				CastShadow:    true,
				ReceiveShadow: true,
			}); err != nil {
				return nil, fmt.Errorf("grid: add box: %w", err)
			}
			if err := ecs.Add(w, cube, component.CubeTagComponent.Kind(), &component.CubeTag{Row: y, Column: x}); err != nil {
				return nil, fmt.Errorf("grid: add tag: %w", err)
			}
			cubes = append(cubes, cube)
		}
	}
	return cubes, nil
}

// defaultLayout draws the material first, then the z jitter, for every cell.
func defaultLayout(spec prefabs.GridSpec, rng common.Random) cellLayout {
	return func(x, y int) (string, float64, error) {
		material := MaterialMain
		if rng.Float64() < spec.SubRatio {
			material = MaterialSub
		}
		return material, common.MapRand(rng, -spec.ZJitter, spec.ZJitter, false), nil
	}
}

// scriptLayout compiles a tengo script once and runs it per cell. The script
// reads x, y, x_num, y_num, scale and rand, and assigns material and z.
func scriptLayout(src []byte, spec prefabs.GridSpec, rng common.Random) (cellLayout, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	for name, v := range map[string]any{
		"x":        0,
		"y":        0,
		"x_num":    spec.XNum,
		"y_num":    spec.YNum,
		"scale":    spec.Scale,
		"rand":     0.0,
		"material": MaterialMain,
		"z":        0.0,
	} {
		if err := script.Add(name, v); err != nil {
			return nil, err
		}
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}

	return func(x, y int) (string, float64, error) {
		for name, v := range map[string]any{
			"x":        x,
			"y":        y,
			"rand":     rng.Float64(),
			"material": MaterialMain,
			"z":        0.0,
		} {
			if err := compiled.Set(name, v); err != nil {
				return "", 0, err
			}
		}
		if err := compiled.Run(); err != nil {
			return "", 0, err
		}
		material := compiled.Get("material").String()
		if material != MaterialSub {
			material = MaterialMain
		}
		return material, compiled.Get("z").Float(), nil
	}, nil
}

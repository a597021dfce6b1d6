package system

import (
	"math"

	"github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/cubefield/common"
	"github.com/milk9111/cubefield/ecs"
	"github.com/milk9111/cubefield/ecs/component"
)

// polar angle stays this far from the poles so the view basis never degenerates
const polarEpsilon = 0.01

// Pointer is the mouse state the orbit controls read.
type Pointer interface {
	CursorPosition() (int, int)
	Dragging() bool
	Wheel() float64
}

type ebitenPointer struct{}

func (ebitenPointer) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

// Dragging ignores presses that land on the slider panel.
func (ebitenPointer) Dragging() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && !input.UIHovered
}

func (ebitenPointer) Wheel() float64 {
	if input.UIHovered {
		return 0
	}
	_, dy := ebiten.Wheel()
	return dy
}

// OrbitSystem rotates the camera around its target on drag and dollies on wheel.
type OrbitSystem struct {
	pointer Pointer
}

func NewOrbitSystem() *OrbitSystem {
	return &OrbitSystem{pointer: ebitenPointer{}}
}

func NewOrbitSystemWithPointer(p Pointer) *OrbitSystem {
	return &OrbitSystem{pointer: p}
}

func (o *OrbitSystem) Update(w *ecs.World) {
	if o == nil || w == nil || o.pointer == nil {
		return
	}

	ecs.ForEach3(w, component.CameraComponent.Kind(), component.OrbitControlComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, cam *component.Camera, orbit *component.OrbitControl, t *component.Transform) {
			o.handleInput(orbit)
			step(orbit)
			place(cam, orbit, t)
		})
}

func (o *OrbitSystem) handleInput(orbit *component.OrbitControl) {
	cx, cy := o.pointer.CursorPosition()
	if o.pointer.Dragging() {
		if orbit.Dragging {
			dx := float64(cx - orbit.LastCursorX)
			dy := float64(cy - orbit.LastCursorY)
			orbit.AzimuthVel -= dx * orbit.RotateSpeed
			orbit.PolarVel -= dy * orbit.RotateSpeed
		}
		orbit.Dragging = true
	} else {
		orbit.Dragging = false
	}
	orbit.LastCursorX, orbit.LastCursorY = cx, cy

	if wheel := o.pointer.Wheel(); wheel != 0 {
		orbit.Distance *= math.Pow(1-orbit.ZoomSpeed, wheel)
	}
}

// step applies the pending rotation and decays it by the damping factor.
func step(orbit *component.OrbitControl) {
	damping := orbit.Damping
	if damping <= 0 || damping > 1 {
		damping = 1
	}
	orbit.Azimuth += orbit.AzimuthVel * damping
	orbit.Polar += orbit.PolarVel * damping
	orbit.AzimuthVel *= 1 - damping
	orbit.PolarVel *= 1 - damping

	orbit.Polar = common.Clamp(orbit.Polar, polarEpsilon, math.Pi-polarEpsilon)

	lo, hi := orbit.MinDistance, orbit.MaxDistance
	if hi <= 0 {
		hi = math.MaxFloat64
	}
	orbit.Distance = common.Clamp(orbit.Distance, lo, hi)
}

func place(cam *component.Camera, orbit *component.OrbitControl, t *component.Transform) {
	sinP := math.Sin(orbit.Polar)
	t.X = cam.TargetX + orbit.Distance*sinP*math.Sin(orbit.Azimuth)
	t.Y = cam.TargetY + orbit.Distance*math.Cos(orbit.Polar)
	t.Z = cam.TargetZ + orbit.Distance*sinP*math.Cos(orbit.Azimuth)
}

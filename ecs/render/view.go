package render

import "github.com/chewxy/math32"

// View is a perspective camera looking from Eye at Target with +Y up.
type View struct {
	Eye     Vec3
	Target  Vec3
	Right   Vec3
	Up      Vec3
	Forward Vec3

	Near   float32
	Far    float32
	Width  float32
	Height float32

	focal float32
}

// NewView builds a view. fovDeg is the vertical field of view.
func NewView(eye, target Vec3, fovDeg, near, far, width, height float32) View {
	forward := target.Sub(eye).Normalize()
	worldUp := Vec3{Y: 1}
	right := forward.Cross(worldUp).Normalize()
	// looking straight up or down
	if right.Length() < 1e-6 {
		right = Vec3{X: 1}
	}
	up := right.Cross(forward).Normalize()

	return View{
		Eye:     eye,
		Target:  target,
		Right:   right,
		Up:      up,
		Forward: forward,
		Near:    near,
		Far:     far,
		Width:   width,
		Height:  height,
		focal:   1 / math32.Tan(fovDeg*math32.Pi/360),
	}
}

// Aspect is width over height.
func (v View) Aspect() float32 {
	if v.Height == 0 {
		return 1
	}
	return v.Width / v.Height
}

// ToCamera maps a world point into camera space: x right, y up, z distance ahead.
func (v View) ToCamera(p Vec3) Vec3 {
	d := p.Sub(v.Eye)
	return Vec3{X: d.Dot(v.Right), Y: d.Dot(v.Up), Z: d.Dot(v.Forward)}
}

// Project maps a world point to screen pixels. ok is false outside the near/far range.
func (v View) Project(p Vec3) (x, y, depth float32, ok bool) {
	c := v.ToCamera(p)
	if c.Z <= v.Near || c.Z >= v.Far {
		return 0, 0, c.Z, false
	}
	x, y = v.screen(c)
	return x, y, c.Z, true
}

// screen maps a camera-space point with Z > 0 to pixels.
func (v View) screen(c Vec3) (x, y float32) {
	ndcX := c.X * v.focal / v.Aspect() / c.Z
	ndcY := c.Y * v.focal / c.Z
	return (ndcX + 1) / 2 * v.Width, (1 - ndcY) / 2 * v.Height
}

package component

// Transform is a scene object's placement. Position is mutated in place by
// the animator, so it is always stored and shared by pointer.
type Transform struct {
	X      float64
	Y      float64
	Z      float64
	ScaleX float64
	ScaleY float64
	ScaleZ float64
}

var TransformComponent = NewComponent[Transform]()

// PositionZ returns the z coordinate.
func (t *Transform) PositionZ() float64 {
	return t.Z
}

// TranslateZ moves the transform along z.
func (t *Transform) TranslateZ(dz float64) {
	t.Z += dz
}

// Scale returns the per-axis scale, treating zero as 1.
func (t *Transform) Scale() (float64, float64, float64) {
	sx, sy, sz := t.ScaleX, t.ScaleY, t.ScaleZ
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if sz == 0 {
		sz = 1
	}
	return sx, sy, sz
}

package render

// Face is one side of a box, corners wound counter-clockwise seen from outside.
type Face struct {
	Corners [4]Vec3
	Normal  Vec3
	Center  Vec3
}

var boxNormals = [6]Vec3{
	{X: 1}, {X: -1},
	{Y: 1}, {Y: -1},
	{Z: 1}, {Z: -1},
}

// BoxFaces returns the six faces of an axis-aligned box.
func BoxFaces(center, half Vec3) [6]Face {
	var faces [6]Face
	for i, n := range boxNormals {
		// two axes spanning the face, ordered so u x v == n
		var u, v Vec3
		switch {
		case n.X != 0:
			u, v = Vec3{Y: n.X}, Vec3{Z: 1}
		case n.Y != 0:
			u, v = Vec3{Z: n.Y}, Vec3{X: 1}
		default:
			u, v = Vec3{X: n.Z}, Vec3{Y: 1}
		}
		fc := center.Add(mul(n, half))
		hu := mul(u, half)
		hv := mul(v, half)
		faces[i] = Face{
			Corners: [4]Vec3{
				fc.Sub(hu).Sub(hv),
				fc.Add(hu).Sub(hv),
				fc.Add(hu).Add(hv),
				fc.Sub(hu).Add(hv),
			},
			Normal: n,
			Center: fc,
		}
	}
	return faces
}

func mul(a, b Vec3) Vec3 {
	return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

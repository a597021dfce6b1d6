package render

import "sort"

// Box is a cube instance ready for drawing.
type Box struct {
	Center Vec3
	Half   Vec3
	Color  RGB
}

// Quad is a projected, shaded face. Clipping at the near plane can leave it
// with three to five points, drawn as a convex fan.
type Quad struct {
	Points [][2]float32
	Color  RGB
	Depth  float32
}

// BuildQuads culls back faces, shades and projects every box face and returns
// the quads sorted far to near for painter's-order drawing.
func BuildQuads(view View, lighting Lighting, boxes []Box) []Quad {
	quads := make([]Quad, 0, len(boxes)*3)
	for _, b := range boxes {
		for _, f := range BoxFaces(b.Center, b.Half) {
			if f.Normal.Dot(view.Eye.Sub(f.Center)) <= 0 {
				continue
			}
			q, ok := projectFace(view, f)
			if !ok {
				continue
			}
			q.Color = lighting.Shade(b.Color, f.Center, f.Normal)
			quads = append(quads, q)
		}
	}
	sort.SliceStable(quads, func(i, j int) bool {
		return quads[i].Depth > quads[j].Depth
	})
	return quads
}

func projectFace(view View, f Face) (Quad, bool) {
	cam := make([]Vec3, 0, 5)
	for _, c := range f.Corners {
		cam = append(cam, view.ToCamera(c))
	}
	cam = clipNear(cam, view.Near)
	if len(cam) < 3 || allBeyond(cam, view.Far) {
		return Quad{}, false
	}
	q := Quad{Points: make([][2]float32, len(cam))}
	for i, c := range cam {
		x, y := view.screen(c)
		q.Points[i] = [2]float32{x, y}
	}
	q.Depth = view.ToCamera(f.Center).Z
	return q, true
}

// clipNear keeps the part of a convex camera-space polygon with Z >= near.
func clipNear(poly []Vec3, near float32) []Vec3 {
	out := make([]Vec3, 0, len(poly)+1)
	for i, cur := range poly {
		prev := poly[(i+len(poly)-1)%len(poly)]
		curIn, prevIn := cur.Z >= near, prev.Z >= near
		if curIn != prevIn {
			out = append(out, nearPoint(prev, cur, near))
		}
		if curIn {
			out = append(out, cur)
		}
	}
	return out
}

// nearPoint is where segment a-b crosses Z == near.
func nearPoint(a, b Vec3, near float32) Vec3 {
	t := (near - a.Z) / (b.Z - a.Z)
	p := a.Add(b.Sub(a).Scale(t))
	p.Z = near
	return p
}

func allBeyond(poly []Vec3, far float32) bool {
	for _, c := range poly {
		if c.Z < far {
			return false
		}
	}
	return true
}

// Segment is a projected line.
type Segment struct {
	X0, Y0, X1, Y1 float32
}

// ProjectSegment clips the line at the near plane. ok is false when nothing
// of it lies in front of the camera or all of it lies past the far plane.
func ProjectSegment(view View, a, b Vec3) (Segment, bool) {
	ca, cb := view.ToCamera(a), view.ToCamera(b)
	near := view.Near
	switch {
	case ca.Z < near && cb.Z < near:
		return Segment{}, false
	case ca.Z >= view.Far && cb.Z >= view.Far:
		return Segment{}, false
	case ca.Z < near:
		ca = nearPoint(ca, cb, near)
	case cb.Z < near:
		cb = nearPoint(ca, cb, near)
	}
	x0, y0 := view.screen(ca)
	x1, y1 := view.screen(cb)
	return Segment{X0: x0, Y0: y0, X1: x1, Y1: y1}, true
}

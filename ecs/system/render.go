package system

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/cubefield/ecs"
	"github.com/milk9111/cubefield/ecs/component"
	"github.com/milk9111/cubefield/ecs/render"
)

var (
	axisColors = [3]color.RGBA{
		{R: 0xff, G: 0x00, B: 0x00, A: 0xff},
		{R: 0x00, G: 0xff, B: 0x00, A: 0xff},
		{R: 0x00, G: 0x00, B: 0xff, A: 0xff},
	}
	helperSize = 4.0
)

// Line is a projected line with its color.
type Line struct {
	render.Segment
	Color color.RGBA
}

// Frame is everything the render system draws, already projected.
type Frame struct {
	Quads []render.Quad
	Lines []Line
}

// RenderSystem draws the cube grid, the axes and the light helpers.
type RenderSystem struct {
	camEntity ecs.Entity

	vertices []ebiten.Vertex
	indices  []uint16
	white    *ebiten.Image
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Build projects the scene for a width x height target.
func (r *RenderSystem) Build(w *ecs.World, width, height int) (Frame, bool) {
	if r == nil || w == nil || width <= 0 || height <= 0 {
		return Frame{}, false
	}

	if !ecs.IsAlive(w, r.camEntity) {
		camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
		if !ok {
			return Frame{}, false
		}
		r.camEntity = camEntity
	}
	cam, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind())
	if !ok {
		return Frame{}, false
	}
	camT, ok := ecs.Get(w, r.camEntity, component.TransformComponent.Kind())
	if !ok {
		return Frame{}, false
	}

	view := render.NewView(
		render.V3(camT.X, camT.Y, camT.Z),
		render.V3(cam.TargetX, cam.TargetY, cam.TargetZ),
		float32(cam.FOV), float32(cam.Near), float32(cam.Far),
		float32(width), float32(height),
	)

	lighting := collectLighting(w)

	var boxes []render.Box
	ecs.ForEach2(w, component.BoxComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, b *component.Box, t *component.Transform) {
		sx, sy, sz := t.Scale()
		half := b.Size / 2
		boxes = append(boxes, render.Box{
			Center: render.V3(t.X, t.Y, t.Z),
			Half:   render.V3(half*sx, half*sy, half*sz),
			Color:  render.FromColor(b.Color),
		})
	})

	frame := Frame{Quads: render.BuildQuads(view, lighting, boxes)}

	ecs.ForEach(w, component.AxesHelperComponent.Kind(), func(_ ecs.Entity, a *component.AxesHelper) {
		l := float32(a.Length)
		ends := [3]render.Vec3{{X: l}, {Y: l}, {Z: l}}
		for i, end := range ends {
			if seg, ok := render.ProjectSegment(view, render.Vec3{}, end); ok {
				frame.Lines = append(frame.Lines, Line{Segment: seg, Color: axisColors[i]})
			}
		}
	})

	ecs.ForEach2(w, component.PointLightComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, pl *component.PointLight, t *component.Transform) {
		if pl.Helper {
			frame.Lines = append(frame.Lines, helperCross(view, render.V3(t.X, t.Y, t.Z), pl.Color)...)
		}
	})
	ecs.ForEach2(w, component.DirectionalLightComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, dl *component.DirectionalLight, t *component.Transform) {
		if !dl.Helper {
			return
		}
		pos := render.V3(t.X, t.Y, t.Z)
		frame.Lines = append(frame.Lines, helperCross(view, pos, dl.Color)...)
		if seg, ok := render.ProjectSegment(view, pos, render.Vec3{}); ok {
			frame.Lines = append(frame.Lines, Line{Segment: seg, Color: dl.Color})
		}
	})

	return frame, true
}

// Draw renders the current frame onto screen.
func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || screen == nil {
		return
	}
	b := screen.Bounds()
	frame, ok := r.Build(w, b.Dx(), b.Dy())
	if !ok {
		return
	}

	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	for _, q := range frame.Quads {
		// uint16 indices; flush before overflowing
		if len(r.vertices)+len(q.Points) > 65535 {
			r.flush(screen)
		}
		base := uint16(len(r.vertices))
		for _, p := range q.Points {
			r.vertices = append(r.vertices, ebiten.Vertex{
				DstX: p[0], DstY: p[1],
				SrcX: 1, SrcY: 1,
				ColorR: q.Color.R, ColorG: q.Color.G, ColorB: q.Color.B, ColorA: 1,
			})
		}
		for i := uint16(1); int(i)+1 < len(q.Points); i++ {
			r.indices = append(r.indices, base, base+i, base+i+1)
		}
	}
	r.flush(screen)

	for _, l := range frame.Lines {
		vector.StrokeLine(screen, l.X0, l.Y0, l.X1, l.Y1, 1, l.Color, true)
	}
}

func (r *RenderSystem) flush(screen *ebiten.Image) {
	if len(r.indices) == 0 {
		return
	}
	if r.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		r.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(r.vertices, r.indices, r.white, op)
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
}

func collectLighting(w *ecs.World) render.Lighting {
	var l render.Lighting
	ecs.ForEach(w, component.AmbientLightComponent.Kind(), func(_ ecs.Entity, a *component.AmbientLight) {
		l.Ambient = l.Ambient.Add(render.FromColor(a.Color).Scale(float32(a.Intensity)))
	})
	ecs.ForEach2(w, component.DirectionalLightComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, d *component.DirectionalLight, t *component.Transform) {
		l.Directional = append(l.Directional, render.DirectionalLight{
			Position:  render.V3(t.X, t.Y, t.Z),
			Color:     render.FromColor(d.Color),
			Intensity: float32(d.Intensity),
		})
	})
	ecs.ForEach2(w, component.PointLightComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.PointLight, t *component.Transform) {
		l.Points = append(l.Points, render.PointLight{
			Position:  render.V3(t.X, t.Y, t.Z),
			Color:     render.FromColor(p.Color),
			Intensity: float32(p.Intensity),
			Distance:  float32(p.Distance),
			Decay:     float32(p.Decay),
		})
	})
	return l
}

func helperCross(view render.View, pos render.Vec3, clr color.RGBA) []Line {
	x, y, _, ok := view.Project(pos)
	if !ok {
		return nil
	}
	s := float32(helperSize)
	return []Line{
		{Segment: render.Segment{X0: x - s, Y0: y - s, X1: x + s, Y1: y + s}, Color: clr},
		{Segment: render.Segment{X0: x - s, Y0: y + s, X1: x + s, Y1: y - s}, Color: clr},
	}
}

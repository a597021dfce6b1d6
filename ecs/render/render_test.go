package render

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func defaultView() View {
	return NewView(Vec3{Z: 90}, Vec3{}, 75, 0.1, 1000, 1280, 720)
}

func TestViewBasis(t *testing.T) {
	v := defaultView()
	require.InDelta(t, 1, v.Right.X, 1e-6)
	require.InDelta(t, 1, v.Up.Y, 1e-6)
	require.InDelta(t, -1, v.Forward.Z, 1e-6)
}

func TestViewLookingStraightDown(t *testing.T) {
	v := NewView(Vec3{Y: 50}, Vec3{}, 75, 0.1, 1000, 100, 100)
	require.InDelta(t, 1, v.Right.Length(), 1e-5)
	require.InDelta(t, 1, v.Up.Length(), 1e-5)
}

func TestProject(t *testing.T) {
	v := defaultView()
	cases := []struct {
		name  string
		p     Vec3
		ok    bool
		check func(t *testing.T, x, y float32)
		wantZ float32
	}{
		{
			name:  "origin_is_screen_center",
			p:     Vec3{},
			ok:    true,
			wantZ: 90,
			check: func(t *testing.T, x, y float32) {
				require.InDelta(t, 640, x, 1e-3)
				require.InDelta(t, 360, y, 1e-3)
			},
		},
		{
			name:  "positive_x_goes_right_positive_y_goes_up",
			p:     Vec3{X: 10, Y: 10},
			ok:    true,
			wantZ: 90,
			check: func(t *testing.T, x, y float32) {
				require.Greater(t, x, float32(640))
				require.Less(t, y, float32(360))
			},
		},
		{
			name: "behind_camera",
			p:    Vec3{Z: 100},
			ok:   false,
		},
		{
			name: "beyond_far_plane",
			p:    Vec3{Z: -2000},
			ok:   false,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, y, depth, ok := v.Project(c.p)
			require.Equal(t, c.ok, ok)
			if !ok {
				return
			}
			require.InDelta(t, c.wantZ, depth, 1e-3)
			c.check(t, x, y)
		})
	}
}

func TestBoxFacesOutwardWinding(t *testing.T) {
	faces := BoxFaces(Vec3{X: 5}, Vec3{X: 1, Y: 2, Z: 3})
	for _, f := range faces {
		e1 := f.Corners[1].Sub(f.Corners[0])
		e2 := f.Corners[2].Sub(f.Corners[1])
		n := e1.Cross(e2).Normalize()
		require.InDelta(t, 1, n.Dot(f.Normal), 1e-5, "face %+v wound inward", f.Normal)
		require.Greater(t, f.Center.Sub(Vec3{X: 5}).Dot(f.Normal), float32(0))
	}
}

func TestShade(t *testing.T) {
	white := RGB{1, 1, 1}
	t.Run("ambient_only", func(t *testing.T) {
		l := Lighting{Ambient: RGB{0.5, 0.5, 0.5}}
		got := l.Shade(white, Vec3{}, Vec3{Z: 1})
		require.InDelta(t, 0.5, got.R, 1e-6)
	})
	t.Run("directional_facing_away_adds_nothing", func(t *testing.T) {
		l := Lighting{Directional: []DirectionalLight{{Position: Vec3{Z: 1}, Color: white, Intensity: 0.4}}}
		got := l.Shade(white, Vec3{}, Vec3{Z: -1})
		require.InDelta(t, 0, got.G, 1e-6)
		got = l.Shade(white, Vec3{}, Vec3{Z: 1})
		require.InDelta(t, 0.4, got.G, 1e-6)
	})
	t.Run("point_light_fades_with_distance", func(t *testing.T) {
		l := Lighting{Points: []PointLight{{Position: Vec3{Z: 100}, Color: white, Intensity: 1, Distance: 200, Decay: 1}}}
		near := l.Shade(white, Vec3{Z: 50}, Vec3{Z: 1})
		far := l.Shade(white, Vec3{Z: -50}, Vec3{Z: 1})
		require.InDelta(t, 0.75, near.B, 1e-5)
		require.InDelta(t, 0.25, far.B, 1e-5)
	})
	t.Run("clamped", func(t *testing.T) {
		l := Lighting{Ambient: RGB{3, 3, 3}}
		require.Equal(t, RGB{1, 1, 1}, l.Shade(white, Vec3{}, Vec3{Z: 1}))
	})
}

func TestAttenuation(t *testing.T) {
	require.Equal(t, float32(1), Attenuation(1000, 0, 1))
	require.Equal(t, float32(0), Attenuation(600, 500, 1))
	require.InDelta(t, 0.25, Attenuation(250, 500, 2), 1e-6)
}

func TestBuildQuadsCullsAndSorts(t *testing.T) {
	v := defaultView()
	boxes := []Box{
		{Center: Vec3{Z: -50}, Half: Vec3{5, 5, 5}, Color: RGB{1, 1, 1}},
		{Center: Vec3{Z: 0}, Half: Vec3{5, 5, 5}, Color: RGB{1, 1, 1}},
	}
	quads := BuildQuads(v, Lighting{Ambient: RGB{1, 1, 1}}, boxes)

	// each box centred on the view axis shows exactly its +Z face
	require.Len(t, quads, 2)
	require.Greater(t, quads[0].Depth, quads[1].Depth)
}

func TestBuildQuadsDropsBoxesBehindCamera(t *testing.T) {
	v := defaultView()
	quads := BuildQuads(v, Lighting{}, []Box{{Center: Vec3{Z: 200}, Half: Vec3{5, 5, 5}}})
	require.Empty(t, quads)
}

func TestBuildQuadsClipsFaceCrossingNearPlane(t *testing.T) {
	v := defaultView()
	// spans z 80..100 around the eye at z=90; only its -X face points at the eye
	boxes := []Box{{Center: Vec3{X: 30, Z: 90}, Half: Vec3{10, 10, 10}, Color: RGB{1, 1, 1}}}
	quads := BuildQuads(v, Lighting{Ambient: RGB{1, 1, 1}}, boxes)

	require.Len(t, quads, 1)
	require.Len(t, quads[0].Points, 4)
	for _, p := range quads[0].Points {
		require.Greater(t, p[0], float32(640))
	}
}

func TestProjectSegment(t *testing.T) {
	v := defaultView()

	t.Run("axis_through_eye", func(t *testing.T) {
		seg, ok := ProjectSegment(v, Vec3{}, Vec3{Z: 100})
		require.True(t, ok)
		require.InDelta(t, 640, seg.X0, 1e-3)
		require.InDelta(t, 360, seg.Y1, 1e-3)
	})

	t.Run("clipped_end_moves_outward", func(t *testing.T) {
		seg, ok := ProjectSegment(v, Vec3{X: 10}, Vec3{X: 10, Z: 100})
		require.True(t, ok)
		require.Greater(t, seg.X1, seg.X0)
	})

	t.Run("behind_camera", func(t *testing.T) {
		_, ok := ProjectSegment(v, Vec3{Z: 95}, Vec3{Z: 100})
		require.False(t, ok)
	})

	t.Run("past_far_plane", func(t *testing.T) {
		_, ok := ProjectSegment(v, Vec3{Z: -2000}, Vec3{X: 5, Z: -2000})
		require.False(t, ok)
	})
}

func TestColorRoundTrip(t *testing.T) {
	c := FromColor(RGB{}.RGBA())
	require.Equal(t, RGB{}, c)
	require.Equal(t, uint8(0xff), RGB{2, 0, 0}.RGBA().R)
}

package component

import "image/color"

type AmbientLight struct {
	Color     color.RGBA
	Intensity float64
}

var AmbientLightComponent = NewComponent[AmbientLight]()

// PointLight radiates from its entity's Transform. Distance 0 means no falloff.
type PointLight struct {
	Color      color.RGBA
	Intensity  float64
	Distance   float64
	Decay      float64
	CastShadow bool
	ShadowMapW int
	ShadowMapH int
	Helper     bool
}

var PointLightComponent = NewComponent[PointLight]()

// DirectionalLight shines from its entity's Transform position toward the origin.
type DirectionalLight struct {
	Color     color.RGBA
	Intensity float64
	Helper    bool
}

var DirectionalLightComponent = NewComponent[DirectionalLight]()

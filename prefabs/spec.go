package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultSceneFile = "scene.yaml"

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type OrbitSpec struct {
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
	RotateSpeed float64 `yaml:"rotate_speed"`
	ZoomSpeed   float64 `yaml:"zoom_speed"`
	Damping     float64 `yaml:"damping"`
}

type CameraSpec struct {
	FOV      float64   `yaml:"fov"`
	Near     float64   `yaml:"near"`
	Far      float64   `yaml:"far"`
	Position Vec3Spec  `yaml:"position"`
	Target   Vec3Spec  `yaml:"target"`
	Orbit    OrbitSpec `yaml:"orbit"`
}

type AmbientLightSpec struct {
	Color     string  `yaml:"color"`
	Intensity float64 `yaml:"intensity"`
}

type ShadowMapSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type PointLightSpec struct {
	Color      string        `yaml:"color"`
	Intensity  float64       `yaml:"intensity"`
	Distance   float64       `yaml:"distance"`
	Decay      float64       `yaml:"decay"`
	Position   Vec3Spec      `yaml:"position"`
	CastShadow bool          `yaml:"cast_shadow"`
	ShadowMap  ShadowMapSpec `yaml:"shadow_map"`
	Helper     bool          `yaml:"helper"`
}

type DirectionalLightSpec struct {
	Color     string   `yaml:"color"`
	Intensity float64  `yaml:"intensity"`
	Position  Vec3Spec `yaml:"position"`
	Helper    bool     `yaml:"helper"`
}

type LightsSpec struct {
	Ambient     AmbientLightSpec     `yaml:"ambient"`
	Point       PointLightSpec       `yaml:"point"`
	Directional DirectionalLightSpec `yaml:"directional"`
}

type GridColorsSpec struct {
	Main string `yaml:"main"`
	Sub  string `yaml:"sub"`
}

type GridSpec struct {
	XNum     int            `yaml:"x_num"`
	YNum     int            `yaml:"y_num"`
	Scale    float64        `yaml:"scale"`
	BoxScale float64        `yaml:"box_scale"`
	ZJitter  float64        `yaml:"z_jitter"`
	SubRatio float64        `yaml:"sub_ratio"`
	Colors   GridColorsSpec `yaml:"colors"`
	Script   string         `yaml:"script"`
}

type AxesSpec struct {
	Length float64 `yaml:"length"`
}

type AnimatorSpec struct {
	Count      int `yaml:"count"`
	IntervalMs int `yaml:"interval_ms"`
}

// SceneSpec describes everything the scene builder creates.
type SceneSpec struct {
	Name     string       `yaml:"name"`
	Camera   CameraSpec   `yaml:"camera"`
	Lights   LightsSpec   `yaml:"lights"`
	Grid     GridSpec     `yaml:"grid"`
	Axes     AxesSpec     `yaml:"axes"`
	Animator AnimatorSpec `yaml:"animator"`
}

// LoadSpec decodes a prefab file over base. Keys the file omits keep base's values.
func LoadSpec[T any](filename string, base T) (T, error) {
	data, err := Load(filename)
	if err != nil {
		return base, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	spec := base
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return base, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// DefaultSceneSpec returns the stock scene. Scene files are decoded on top of
// it, so any key a file leaves out keeps these values.
func DefaultSceneSpec() *SceneSpec {
	return &SceneSpec{
		Name: "cubefield",
		Camera: CameraSpec{
			FOV:      75,
			Near:     0.1,
			Far:      1000,
			Position: Vec3Spec{Z: 90},
			Orbit: OrbitSpec{
				MinDistance: 10,
				MaxDistance: 600,
				RotateSpeed: 0.005,
				ZoomSpeed:   0.1,
				Damping:     0.05,
			},
		},
		Lights: LightsSpec{
			Ambient: AmbientLightSpec{Color: "#ffffff", Intensity: 0.5},
			Point: PointLightSpec{
				Color:      "#ffffff",
				Intensity:  1.5,
				Distance:   500,
				Decay:      1,
				Position:   Vec3Spec{X: -26, Y: 7, Z: 100},
				CastShadow: true,
				ShadowMap:  ShadowMapSpec{Width: 1024, Height: 1024},
				Helper:     true,
			},
			Directional: DirectionalLightSpec{
				Color:     "#ffffff",
				Intensity: 0.4,
				Position:  Vec3Spec{Z: 1},
				Helper:    true,
			},
		},
		Grid: GridSpec{
			XNum:     10,
			YNum:     6,
			Scale:    30,
			BoxScale: 0.98,
			ZJitter:  10,
			SubRatio: 0.2,
			Colors:   GridColorsSpec{Main: "#f3f4f6", Sub: "#60a5fa"},
		},
		Axes:     AxesSpec{Length: 100},
		Animator: AnimatorSpec{Count: 10, IntervalMs: 2000},
	}
}

// LoadSceneSpec reads a scene file over the stock defaults.
func LoadSceneSpec(filename string) (*SceneSpec, error) {
	if filename == "" {
		filename = DefaultSceneFile
	}
	spec, err := LoadSpec(filename, *DefaultSceneSpec())
	if err != nil {
		return nil, err
	}
	spec.normalize()
	return &spec, nil
}

// ParseSceneSpec decodes a scene from raw YAML over the stock defaults.
func ParseSceneSpec(data []byte) (*SceneSpec, error) {
	spec := DefaultSceneSpec()
	if err := yaml.Unmarshal(data, spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal scene: %w", err)
	}
	spec.normalize()
	return spec, nil
}

// normalize clamps values that would break the builders. Explicit zeros are kept.
func (s *SceneSpec) normalize() {
	def := DefaultSceneSpec()
	if strings.TrimSpace(s.Lights.Ambient.Color) == "" {
		s.Lights.Ambient.Color = def.Lights.Ambient.Color
	}
	if strings.TrimSpace(s.Lights.Point.Color) == "" {
		s.Lights.Point.Color = def.Lights.Point.Color
	}
	if strings.TrimSpace(s.Lights.Directional.Color) == "" {
		s.Lights.Directional.Color = def.Lights.Directional.Color
	}
	if strings.TrimSpace(s.Grid.Colors.Main) == "" {
		s.Grid.Colors.Main = def.Grid.Colors.Main
	}
	if strings.TrimSpace(s.Grid.Colors.Sub) == "" {
		s.Grid.Colors.Sub = def.Grid.Colors.Sub
	}
	s.Grid.XNum = max(s.Grid.XNum, 0)
	s.Grid.YNum = max(s.Grid.YNum, 0)
	s.Animator.Count = max(s.Animator.Count, 0)
	// the ticker needs a positive period
	if s.Animator.IntervalMs <= 0 {
		s.Animator.IntervalMs = def.Animator.IntervalMs
	}
}

// ParseHexColor parses "#rgb" or "#rrggbb" into an opaque RGBA.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("prefabs: invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("prefabs: invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// Marshal encodes a spec as YAML.
func Marshal(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("prefabs: marshal: %w", err)
	}
	return data, nil
}

package component

// Camera is a perspective camera placed by its entity's Transform.
type Camera struct {
	FOV     float64 // vertical, degrees
	Near    float64
	Far     float64
	TargetX float64
	TargetY float64
	TargetZ float64
}

var CameraComponent = NewComponent[Camera]()

// OrbitControl rotates and dollies a camera around its target.
// Angles are radians; Polar is measured from +Y.
type OrbitControl struct {
	Azimuth     float64
	Polar       float64
	Distance    float64
	MinDistance float64
	MaxDistance float64
	RotateSpeed float64
	ZoomSpeed   float64
	Damping     float64

	// pending deltas, decayed by Damping every frame
	AzimuthVel  float64
	PolarVel    float64
	Dragging    bool
	LastCursorX int
	LastCursorY int
}

var OrbitControlComponent = NewComponent[OrbitControl]()

// AxesHelper draws the x, y and z axes from the origin.
type AxesHelper struct {
	Length float64
}

var AxesHelperComponent = NewComponent[AxesHelper]()

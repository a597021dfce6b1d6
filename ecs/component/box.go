package component

import "image/color"

// Box is an axis-aligned cube mesh with a Lambert material.
type Box struct {
	Size          float64
	Color         color.RGBA
	Material      string
	CastShadow    bool
	ReceiveShadow bool
}

var BoxComponent = NewComponent[Box]()

// CubeTag marks boxes that belong to the animated grid.
type CubeTag struct {
	Row    int
	Column int
}

var CubeTagComponent = NewComponent[CubeTag]()

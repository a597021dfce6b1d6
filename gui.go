package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const (
	pointLightMinX = -500
	pointLightMaxX = 500

	maxCount = 60

	intervalStep     = 250 * time.Millisecond
	minIntervalSteps = 1
	maxIntervalSteps = 20
)

var (
	panelColor  = color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 220}
	trackColor  = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	handleColor = color.NRGBA{R: 0x60, G: 0xa5, B: 0xfa, A: 0xff}
	labelColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	folderColor = color.NRGBA{R: 0xa0, G: 0xa0, B: 0xa0, A: 0xff}
)

// Panel is the debug slider panel in the top-right corner.
type Panel struct {
	root *widget.Container
	face ebtext.Face

	lightX   *widget.Text
	count    *widget.Text
	interval *widget.Text
}

// NewPanel builds the "PointLight" and "Animator" folders for the current scene.
func NewPanel(g *Game) *Panel {
	p := &Panel{face: ebtext.NewGoXFace(basicfont.Face7x13)}

	p.root = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	lightX := 0
	if t := g.pointLight(); t != nil {
		lightX = clampInt(int(t.X), pointLightMinX, pointLightMaxX)
	}

	p.root.AddChild(p.text("PointLight", folderColor))
	p.lightX = p.text(pointLightLabel(lightX), labelColor)
	p.root.AddChild(p.lightX)
	p.root.AddChild(p.slider(pointLightMinX, pointLightMaxX, lightX, func(v int) {
		p.lightX.Label = pointLightLabel(v)
		g.setPointLightX(float64(v))
	}))

	p.root.AddChild(p.text("Animator", folderColor))
	p.count = p.text(countLabel(g.animSys.Count()), labelColor)
	p.root.AddChild(p.count)
	p.root.AddChild(p.slider(0, maxCount, clampInt(g.animSys.Count(), 0, maxCount), func(v int) {
		p.count.Label = countLabel(v)
		g.animSys.SetCount(v)
	}))

	steps := intervalToSteps(g.animSys.Interval())
	p.interval = p.text(intervalLabel(stepsToInterval(steps)), labelColor)
	p.root.AddChild(p.interval)
	p.root.AddChild(p.slider(minIntervalSteps, maxIntervalSteps, steps, func(v int) {
		d := stepsToInterval(v)
		p.interval.Label = intervalLabel(d)
		g.animSys.SetInterval(d)
	}))

	return p
}

// UI wraps the panel in a full-screen anchor layout.
func (p *Panel) UI() *ebitenui.UI {
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(p.root)
	return &ebitenui.UI{Container: root}
}

func (p *Panel) text(label string, clr color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, &p.face, clr),
	)
}

func (p *Panel) slider(min, max, current int, onChange func(int)) *widget.Slider {
	s := widget.NewSlider(
		widget.SliderOpts.Direction(widget.DirectionHorizontal),
		widget.SliderOpts.MinMax(min, max),
		widget.SliderOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 8)),
		widget.SliderOpts.Images(
			&widget.SliderTrackImage{
				Idle:  imageui.NewNineSliceColor(trackColor),
				Hover: imageui.NewNineSliceColor(trackColor),
			},
			&widget.ButtonImage{
				Idle:    imageui.NewNineSliceColor(handleColor),
				Hover:   imageui.NewNineSliceColor(handleColor),
				Pressed: imageui.NewNineSliceColor(handleColor),
			},
		),
		widget.SliderOpts.FixedHandleSize(8),
		widget.SliderOpts.TrackOffset(0),
		widget.SliderOpts.PageSizeFunc(func() int { return 1 }),
	)
	s.Current = current
	s.ChangedEvent.AddHandler(func(args any) {
		if a, ok := args.(*widget.SliderChangedEventArgs); ok {
			onChange(a.Current)
		}
	})
	return s
}

func pointLightLabel(x int) string {
	return fmt.Sprintf("x: %d", x)
}

func countLabel(k int) string {
	return fmt.Sprintf("count: %d", k)
}

func intervalLabel(d time.Duration) string {
	return fmt.Sprintf("interval: %dms", d.Milliseconds())
}

func stepsToInterval(steps int) time.Duration {
	return time.Duration(clampInt(steps, minIntervalSteps, maxIntervalSteps)) * intervalStep
}

// intervalToSteps rounds to the nearest slider step.
func intervalToSteps(d time.Duration) int {
	steps := int((d + intervalStep/2) / intervalStep)
	return clampInt(steps, minIntervalSteps, maxIntervalSteps)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

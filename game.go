package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand/v2"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/cubefield/animator"
	"github.com/milk9111/cubefield/common"
	"github.com/milk9111/cubefield/ecs"
	"github.com/milk9111/cubefield/ecs/component"
	"github.com/milk9111/cubefield/ecs/entity"
	"github.com/milk9111/cubefield/ecs/system"
	"github.com/milk9111/cubefield/prefabs"
)

const (
	baseWidth  = common.BaseWidth
	baseHeight = common.BaseHeight
)

var background = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}

type Options struct {
	SceneFile string
	Seed      uint64
	Debug     bool
	Watch     bool
}

type Game struct {
	opts Options
	rng  *rand.Rand

	scene     *entity.Scene
	scheduler *ecs.Scheduler
	ticker    *animator.Ticker
	animSys   *system.AnimatorSystem
	renderSys *system.RenderSystem

	watcher *prefabs.Watcher
	ui      *ebitenui.UI
	panel   *Panel
	showGUI bool

	lastSelection time.Time
	status        string
	statusUntil   time.Time
}

func NewGame(opts Options) (*Game, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g := &Game{
		opts:    opts,
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		showGUI: true,
	}

	spec, err := prefabs.LoadSceneSpec(opts.SceneFile)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	scene, err := entity.BuildScene(spec, g.rng)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g.ticker = animator.NewTicker(time.Duration(spec.Animator.IntervalMs) * time.Millisecond)
	g.animSys = system.NewAnimatorSystem(animator.New(g.rng), g.ticker, spec.Animator.Count)
	g.renderSys = system.NewRenderSystem()
	g.scheduler = ecs.NewScheduler(system.NewOrbitSystem(), g.animSys)
	g.setScene(scene)

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			log.Printf("prefabs: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

func (g *Game) setScene(scene *entity.Scene) {
	g.scene = scene
	g.animSys.Reset()
	g.animSys.SetCount(scene.Spec.Animator.Count)
	g.animSys.SetInterval(time.Duration(scene.Spec.Animator.IntervalMs) * time.Millisecond)
	g.panel = NewPanel(g)
	g.ui = g.panel.UI()
}

func (g *Game) reload() {
	spec, err := prefabs.LoadSceneSpec(g.opts.SceneFile)
	if err != nil {
		log.Printf("scene: reload: %v", err)
		g.flash("reload failed")
		return
	}
	scene, err := entity.BuildScene(spec, g.rng)
	if err != nil {
		log.Printf("scene: rebuild: %v", err)
		g.flash("reload failed")
		return
	}
	g.setScene(scene)
	g.flash("scene reloaded")
}

// toggleGUI shows or hides the slider panel. A hidden panel stops updating,
// so its hover flag is cleared or the orbit controls would keep ignoring input.
func (g *Game) toggleGUI() {
	g.showGUI = !g.showGUI
	if !g.showGUI {
		input.UIHovered = false
	}
}

func (g *Game) Update() error {
	if changed := g.watcher.Poll(); len(changed) > 0 {
		log.Printf("scene: %d prefab file(s) changed, rebuilding", len(changed))
		g.reload()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.toggleGUI()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copySnapshot()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reload()
	}

	if g.showGUI {
		g.ui.Update()
	}

	for _, evt := range g.scheduler.Update(g.scene.World) {
		switch evt.Kind {
		case ecs.EventSelection:
			g.lastSelection = time.Now()
		case ecs.EventPointLightMoved:
			if g.opts.Debug {
				log.Printf("scene: point light x=%v", evt.Data)
			}
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.renderSys.Draw(g.scene.World, screen)

	if g.showGUI {
		g.ui.Draw(screen)
	}

	if g.opts.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  TPS: %.2f\nactive: %d  selections: %d  last: %s ago",
			ebiten.ActualFPS(), ebiten.ActualTPS(),
			g.animSys.Animator().Len(), g.animSys.Ticks(), time.Since(g.lastSelection).Truncate(100*time.Millisecond)),
			10, screen.Bounds().Dy()-40)
	}
	if g.status != "" && time.Now().Before(g.statusUntil) {
		ebitenutil.DebugPrintAt(screen, g.status, screen.Bounds().Dx()-160, screen.Bounds().Dy()-20)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return baseWidth, baseHeight
	}
	return outsideWidth, outsideHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close stops the interval ticker and the file watcher.
func (g *Game) Close() {
	g.ticker.Stop()
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("prefabs: close watcher: %v", err)
		}
	}
}

func (g *Game) flash(msg string) {
	g.status = msg
	g.statusUntil = time.Now().Add(2 * time.Second)
}

// pointLight returns the transform moved by the PointLight slider.
func (g *Game) pointLight() *component.Transform {
	t, ok := ecs.Get(g.scene.World, g.scene.Lights.Point, component.TransformComponent.Kind())
	if !ok {
		return nil
	}
	return t
}

func (g *Game) setPointLightX(x float64) {
	if t := g.pointLight(); t != nil {
		t.X = x
		g.scene.World.Events().Push(ecs.Event{Kind: ecs.EventPointLightMoved, Data: x})
	}
}

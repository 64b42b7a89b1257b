// internal/state/menu_state.go
package state

import (
	"image/color"
	"log"

	"laser-defense/internal/config"
	"laser-defense/internal/types"
	"laser-defense/internal/utils"
	"laser-defense/internal/vfx"
	"laser-defense/pkg/geom"
	"laser-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// menuOwner - владелец фонового эффекта меню в собственном менеджере.
const menuOwner types.EntityID = 1

// MenuState - заставка с фоном из искр и бегущей рамкой. Пробел или клик
// начинают игру.
type MenuState struct {
	sm      *StateMachine
	newGame SessionFactory
	canvas  *render.Canvas
	fx      *vfx.Manager
	err     string
}

func NewMenuState(sm *StateMachine, newGame SessionFactory, rng utils.Random) *MenuState {
	fx := vfx.NewManager()
	fx.AddEffect(menuOwner, vfx.NewMenuBackgroundEffect(rng, config.BackgroundColor), true)
	// рамка вокруг заголовка
	fx.AddEffect(menuOwner, vfx.NewGradientLineEffect(vfx.GradientLineData{
		Path:         []geom.Vec{{X: 0.35, Y: 0.4}, {X: 0.65, Y: 0.4}, {X: 0.65, Y: 0.6}, {X: 0.35, Y: 0.6}, {X: 0.35, Y: 0.4}},
		LineLength:   0.2,
		LoopDuration: config.PathTraceLoopTime,
		LoopCount:    -1,
		Color:        config.SelectedColor,
	}, rng), false)
	fx.Transform(menuOwner, geom.Vec{}, geom.V(config.ScreenWidth, config.ScreenHeight))
	return &MenuState{sm: sm, newGame: newGame, canvas: render.NewCanvas(), fx: fx}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	m.fx.Update(deltaTime)
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) && !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	gs, err := NewGameState(m.sm, m.newGame)
	if err != nil {
		log.Printf("[Menu] Failed to start game: %v", err)
		m.err = err.Error()
		return
	}
	m.sm.SetState(gs)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	c := m.canvas.Bind(screen)
	m.fx.Render(menuOwner, c)

	center := geom.V(config.ScreenWidth/2, config.ScreenHeight/2)
	drawCentered(c, "LASER DEFENSE", center.Sub(geom.V(0, 20)), config.TextLightColor)
	drawCentered(c, "press space to start", center.Add(geom.V(0, 10)), render.DarkenColor(config.TextLightColor))
	if m.err != "" {
		drawCentered(c, m.err, center.Add(geom.V(0, 40)), config.TextWarnColor)
	}
}

func (m *MenuState) Exit() {}

func drawCentered(s vfx.Surface, text string, center geom.Vec, clr color.Color) {
	s.DrawText(text, center.Sub(vfx.MeasureText(text).Scale(0.5)), clr)
}

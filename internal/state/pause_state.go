// internal/state/pause_state.go
package state

import (
	"image/color"

	"laser-defense/internal/config"
	"laser-defense/pkg/geom"
	"laser-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает игру целиком, включая эффекты, и рисует
// затемненный последний кадр. Обычная пауза (пробел) остается в GameState:
// там останавливается только симуляция.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	canvas        *render.Canvas
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		canvas:        render.NewCanvas(),
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	c := s.canvas.Bind(screen)
	c.FillRect(geom.Rect{W: config.ScreenWidth, H: config.ScreenHeight}, color.RGBA{0, 0, 0, 128})
	center := geom.V(config.ScreenWidth/2, config.ScreenHeight/2)
	drawCentered(c, "PAUSED", center, config.TextLightColor)
	drawCentered(c, "esc to resume", center.Add(geom.V(0, 20)), render.DarkenColor(config.TextLightColor))
}

func (s *PauseState) Exit() {}

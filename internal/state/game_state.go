// internal/state/game_state.go
package state

import (
	"fmt"
	"log"
	"time"

	"laser-defense/internal/app"
	"laser-defense/internal/config"
	"laser-defense/internal/ui"
	"laser-defense/pkg/geom"
	"laser-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// SessionFactory собирает новую сессию. Меню и перезапуск берут сессию из нее.
type SessionFactory func() (*app.Session, error)

// panSpeed - скорость прокрутки камеры стрелками, пикселей в секунду
const panSpeed = 400.0

// towerKeys выбирают турель магазина по номеру
var towerKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// GameState - состояние игры: сессия, HUD и камера над картой.
type GameState struct {
	sm            *StateMachine
	newGame       SessionFactory
	session       *app.Session
	hud           *ui.HUD
	camera        *app.Camera
	canvas        *render.Canvas
	mouse         geom.Vec
	lastClickTime time.Time
}

func NewGameState(sm *StateMachine, newGame SessionFactory) (*GameState, error) {
	session, err := newGame()
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}
	world := session.World
	hud := ui.NewHUD(config.ScreenWidth, session.Towers.All(), world.VFX, world.NewEntity())
	camera := app.NewCamera(
		geom.V(0, config.HUDHeight),
		geom.V(config.ScreenWidth, config.ScreenHeight-config.HUDHeight),
		session.Level.Size,
	)
	return &GameState{
		sm:            sm,
		newGame:       newGame,
		session:       session,
		hud:           hud,
		camera:        camera,
		canvas:        render.NewCanvas(),
		lastClickTime: time.Now(),
	}, nil
}

// Session возвращает текущую сессию.
func (g *GameState) Session() *app.Session {
	return g.session
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	x, y := ebiten.CursorPosition()
	g.mouse = geom.V(float64(x), float64(y))

	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.session.Preview() != nil {
			g.session.CancelPlacement()
		} else {
			g.sm.SetState(NewPauseState(g.sm, g))
			return
		}
	}
	if g.session.Phase() != app.Playing && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.restart()
		return
	}

	g.handleKeys(deltaTime)
	g.handleMouse()

	g.session.Update(deltaTime)
	g.hud.Update(deltaTime, g.mouse, g.status())
}

func (g *GameState) handleKeys(deltaTime float64) {
	s := g.session
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		s.SlowDown()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.SpeedUp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.StartNextWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		if err := s.SaveSnapshot(); err != nil {
			log.Printf("[Game] %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		if mode, ok := s.CycleAimMode(); ok {
			log.Printf("[Game] Aim mode of selected turret: %s", mode)
		}
	}
	towers := s.Towers.All()
	for i, key := range towerKeys {
		if i < len(towers) && inpututil.IsKeyJustPressed(key) {
			g.selectTower(towers[i].ID)
		}
	}

	var pan geom.Vec
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		pan.X -= panSpeed * deltaTime
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		pan.X += panSpeed * deltaTime
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		pan.Y -= panSpeed * deltaTime
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		pan.Y += panSpeed * deltaTime
	}
	if !pan.IsZero() {
		g.camera.Pan(pan)
	}
}

func (g *GameState) handleMouse() {
	if g.camera.InView(g.mouse) {
		g.session.MovePreview(g.previewCenter())
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.session.CancelPlacement()
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	if time.Since(g.lastClickTime) < config.ClickDebounceTime*time.Millisecond {
		return
	}
	g.lastClickTime = time.Now()

	if g.hud.Contains(g.mouse) {
		g.handleUIClick()
		return
	}
	if !g.camera.InView(g.mouse) {
		return
	}
	if g.session.Preview() != nil {
		if res := g.session.Place(g.previewCenter()); res == app.Blocked {
			log.Printf("[Game] Cannot build here")
		}
		return
	}
	g.session.SelectAt(g.camera.ScreenToMap(g.mouse))
}

// previewCenter - точка карты под курсором; призрак турели центрируется на ней.
func (g *GameState) previewCenter() geom.Vec {
	return g.camera.ScreenToMap(g.mouse)
}

func (g *GameState) handleUIClick() {
	action, towerID := g.hud.Click(g.mouse)
	switch action {
	case ui.ActionSpeed:
		g.session.CycleSpeed()
	case ui.ActionPause:
		g.session.TogglePause()
	case ui.ActionNextWave:
		g.session.StartNextWave()
	case ui.ActionBuy:
		g.selectTower(towerID)
	}
}

func (g *GameState) selectTower(id string) {
	if p := g.session.Preview(); p != nil && p.Def.ID == id {
		g.session.CancelPlacement()
		return
	}
	if err := g.session.SelectTurret(id); err != nil {
		log.Printf("[Game] %v", err)
		return
	}
	g.session.MovePreview(g.previewCenter())
}

func (g *GameState) restart() {
	next, err := NewGameState(g.sm, g.newGame)
	if err != nil {
		log.Printf("[Game] Failed to restart: %v", err)
		return
	}
	g.sm.SetState(next)
}

func (g *GameState) status() ui.Status {
	s := g.session
	last, _ := s.WaveSystem.Schedule().Last()
	st := ui.Status{
		Coins:        s.Coins(),
		Lives:        s.Lives(),
		MaxLives:     s.World.Tuning.Session.StartingLives,
		Wave:         s.Wave(),
		LastWave:     s.Wave() == last,
		SpeedIndex:   s.SpeedIndex(),
		Paused:       s.Paused(),
		CanStartWave: s.CanStartNextWave(),
	}
	if p := s.Preview(); p != nil {
		st.Selected = p.Def.ID
	}
	return st
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	c := g.canvas.Bind(screen)
	g.session.Render(g.camera.Surface(c))
	g.hud.Draw(c)
	if g.session.Phase() != app.Playing {
		drawCentered(c, "press R to play again", geom.V(config.ScreenWidth/2, config.ScreenHeight-20), config.TextLightColor)
	}
}

func (g *GameState) Exit() {}

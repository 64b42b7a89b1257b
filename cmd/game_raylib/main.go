// cmd/game_raylib/main.go
package main

import (
	"flag"
	"image/color"
	"log"
	"time"

	"laser-defense/internal/app"
	"laser-defense/internal/assets"
	"laser-defense/internal/config"
	"laser-defense/internal/defs"
	"laser-defense/internal/ui"
	"laser-defense/internal/utils"
	"laser-defense/pkg/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// fontSize подобран так, чтобы ширина символа была близка к vfx.MeasureText
const fontSize = 13

// surface рисует примитивы vfx.Surface средствами raylib.
type surface struct{}

func toRL(c color.Color) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return rl.NewColor(n.R, n.G, n.B, n.A)
}

func vec(p geom.Vec) rl.Vector2 { return rl.NewVector2(float32(p.X), float32(p.Y)) }

func rect(r geom.Rect) rl.Rectangle {
	return rl.NewRectangle(float32(r.X), float32(r.Y), float32(r.W), float32(r.H))
}

func (surface) FillCircle(center geom.Vec, radius float64, clr color.Color) {
	rl.DrawCircleV(vec(center), float32(radius), toRL(clr))
}

func (surface) FillRect(r geom.Rect, clr color.Color) {
	rl.DrawRectangleRec(rect(r), toRL(clr))
}

func (surface) StrokeRect(r geom.Rect, width float64, clr color.Color) {
	rl.DrawRectangleLinesEx(rect(r), float32(width), toRL(clr))
}

func (surface) StrokeLine(a, b geom.Vec, width float64, clr color.Color) {
	rl.DrawLineEx(vec(a), vec(b), float32(width), toRL(clr))
}

func (surface) FillPolygon(points []geom.Vec, clr color.Color) {
	if len(points) < 3 {
		return
	}
	pts := make([]rl.Vector2, len(points))
	for i, p := range points {
		pts[i] = vec(p)
	}
	rl.DrawTriangleFan(pts, toRL(clr))
}

func (surface) DrawText(s string, pos geom.Vec, clr color.Color) {
	rl.DrawText(s, int32(pos.X), int32(pos.Y), fontSize, toRL(clr))
}

func (s surface) DrawSprite(sprite string, frame int, dst geom.Rect, rotation float64, alpha float64) {
	assets.PaintSprite(s, sprite, frame, dst, rotation, alpha)
}

func main() {
	wavesPath := flag.String("waves", "assets/data/waves.json", "wave schedule document")
	levelPath := flag.String("level", "", "level document (built-in level when empty)")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	snapshot := flag.String("snapshot", "", "wave snapshot file: resumed at start when present, written with F5")
	flag.Parse()

	schedule, err := defs.LoadWaveSchedule(*wavesPath)
	if err != nil {
		log.Fatal(err)
	}
	opts := app.Options{Schedule: schedule, Rng: utils.NewPRNGService(*seed), SnapshotPath: *snapshot}
	if *levelPath != "" {
		if opts.Level, err = defs.LoadLevel(*levelPath); err != nil {
			log.Fatal(err)
		}
	}
	session, err := app.NewSession(opts)
	if err != nil {
		log.Fatal(err)
	}

	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Laser Defense")
	defer rl.CloseWindow()
	rl.SetTargetFPS(config.TargetFPS)
	// многоугольники спрайтов идут по часовой стрелке
	rl.DisableBackfaceCulling()
	rl.SetExitKey(0) // Escape отменяет постройку, а не закрывает окно

	hud := ui.NewHUD(config.ScreenWidth, session.Towers.All(), session.World.VFX, session.World.NewEntity())
	camera := app.NewCamera(
		geom.V(0, config.HUDHeight),
		geom.V(config.ScreenWidth, config.ScreenHeight-config.HUDHeight),
		session.Level.Size,
	)
	var screen surface
	towerKeys := []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour, rl.KeyFive}

	for !rl.WindowShouldClose() {
		deltaTime := min(float64(rl.GetFrameTime()), config.MaxDeltaTime)
		mouse := geom.V(float64(rl.GetMouseX()), float64(rl.GetMouseY()))

		switch {
		case rl.IsKeyPressed(rl.KeySpace):
			session.TogglePause()
		case rl.IsKeyPressed(rl.KeyO):
			session.SlowDown()
		case rl.IsKeyPressed(rl.KeyP):
			session.SpeedUp()
		case rl.IsKeyPressed(rl.KeyEnter):
			session.StartNextWave()
		case rl.IsKeyPressed(rl.KeyA):
			session.CycleAimMode()
		case rl.IsKeyPressed(rl.KeyEscape):
			session.CancelPlacement()
		case rl.IsKeyPressed(rl.KeyF5):
			if err := session.SaveSnapshot(); err != nil {
				log.Printf("[Game] %v", err)
			}
		}
		towers := session.Towers.All()
		for i, key := range towerKeys {
			if i < len(towers) && rl.IsKeyPressed(key) {
				if err := session.SelectTurret(towers[i].ID); err != nil {
					log.Printf("[Game] %v", err)
				}
			}
		}

		if camera.InView(mouse) {
			session.MovePreview(camera.ScreenToMap(mouse))
		}
		if rl.IsMouseButtonPressed(rl.MouseRightButton) {
			session.CancelPlacement()
		}
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			switch {
			case hud.Contains(mouse):
				switch action, id := hud.Click(mouse); action {
				case ui.ActionSpeed:
					session.CycleSpeed()
				case ui.ActionPause:
					session.TogglePause()
				case ui.ActionNextWave:
					session.StartNextWave()
				case ui.ActionBuy:
					if err := session.SelectTurret(id); err != nil {
						log.Printf("[Game] %v", err)
					}
				}
			case camera.InView(mouse):
				session.Click(camera.ScreenToMap(mouse))
			}
		}

		session.Update(deltaTime)
		last, _ := session.WaveSystem.Schedule().Last()
		st := ui.Status{
			Coins:        session.Coins(),
			Lives:        session.Lives(),
			MaxLives:     session.World.Tuning.Session.StartingLives,
			Wave:         session.Wave(),
			LastWave:     session.Wave() == last,
			SpeedIndex:   session.SpeedIndex(),
			Paused:       session.Paused(),
			CanStartWave: session.CanStartNextWave(),
		}
		if p := session.Preview(); p != nil {
			st.Selected = p.Def.ID
		}
		hud.Update(deltaTime, mouse, st)

		rl.BeginDrawing()
		rl.ClearBackground(config.BackgroundColor)
		session.Render(camera.Surface(screen))
		hud.Draw(screen)
		rl.EndDrawing()
	}
}

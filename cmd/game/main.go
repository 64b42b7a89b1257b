// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"laser-defense/internal/app"
	"laser-defense/internal/assets"
	"laser-defense/internal/config"
	"laser-defense/internal/defs"
	"laser-defense/internal/state"
	"laser-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	wavesPath := flag.String("waves", "assets/data/waves.json", "wave schedule document")
	levelPath := flag.String("level", "", "level document (built-in level when empty)")
	towersPath := flag.String("towers", "", "tower definitions (built-in shop when empty)")
	tuningPath := flag.String("tuning", "", "gameplay tuning overrides")
	animPath := flag.String("animations", "", "animation overrides")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	menu := flag.Bool("menu", false, "start from the menu instead of the game")
	snapshot := flag.String("snapshot", "", "wave snapshot file: resumed at start when present, written with F5")
	flag.Parse()

	opts, err := loadOptions(*wavesPath, *levelPath, *towersPath, *tuningPath, *animPath)
	if err != nil {
		log.Fatal(err)
	}
	rng := utils.NewPRNGService(*seed)
	newGame := func() (*app.Session, error) {
		o := opts
		o.Rng = rng
		o.SnapshotPath = *snapshot
		return app.NewSession(o)
	}

	sm := state.NewStateMachine()
	if *menu {
		sm.SetState(state.NewMenuState(sm, newGame, rng))
	} else {
		gs, err := state.NewGameState(sm, newGame)
		if err != nil {
			log.Fatal(err)
		}
		sm.SetState(gs)
	}
	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Laser Defense")
	ebiten.SetTPS(config.TargetFPS)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// loadOptions читает файлы данных. Пустой путь оставляет встроенное значение.
func loadOptions(wavesPath, levelPath, towersPath, tuningPath, animPath string) (app.Options, error) {
	var opts app.Options
	schedule, err := defs.LoadWaveSchedule(wavesPath)
	if err != nil {
		return opts, err
	}
	opts.Schedule = schedule
	if levelPath != "" {
		if opts.Level, err = defs.LoadLevel(levelPath); err != nil {
			return opts, err
		}
	}
	if towersPath != "" {
		if opts.Towers, err = defs.LoadTowerDefinitions(towersPath); err != nil {
			return opts, err
		}
	}
	if tuningPath != "" {
		tuning, err := config.LoadTuning(tuningPath)
		if err != nil {
			return opts, err
		}
		opts.Tuning = &tuning
	}
	if animPath != "" {
		if opts.Assets, err = assets.LoadRegistry(animPath); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

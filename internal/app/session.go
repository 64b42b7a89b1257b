// internal/app/session.go
package app

import (
	"errors"
	"fmt"
	"log"
	"os"

	"laser-defense/internal/assets"
	"laser-defense/internal/config"
	"laser-defense/internal/defs"
	"laser-defense/internal/entity"
	"laser-defense/internal/event"
	"laser-defense/internal/system"
	"laser-defense/internal/types"
	"laser-defense/internal/utils"
	"laser-defense/internal/vfx"
	"laser-defense/pkg/geom"
)

// Phase - итог сессии
type Phase int

const (
	Playing Phase = iota
	Won
	Lost
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "Playing"
	case Won:
		return "Won"
	case Lost:
		return "Lost"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// PlaceResult - результат попытки построить турель
type PlaceResult int

const (
	NoSelection PlaceResult = iota // турель для постройки не выбрана
	Placed
	Blocked // нет монет, вне зоны застройки или место занято
)

var (
	ErrNoSchedule   = errors.New("session needs a wave schedule")
	ErrUnknownTower = errors.New("unknown tower")

	// ErrNoSnapshotPath - сессия создана без файла снимка
	ErrNoSnapshotPath = errors.New("session has no snapshot path")
)

// Options - зависимости сессии. Незаданные поля получают значения по умолчанию,
// кроме расписания волн.
type Options struct {
	Level    *defs.LevelDefinition
	Schedule *defs.WaveSchedule
	Towers   *defs.TowerCatalog
	Tuning   *config.Tuning
	Assets   *assets.Registry
	Rng      utils.Random

	// SnapshotPath - файл снимка волны. Если он есть, сессия продолжает
	// сохраненную волну; SaveSnapshot пишет в него.
	SnapshotPath string
}

// Session связывает мир, системы и экономику одной игры.
type Session struct {
	World           *entity.World
	Level           *defs.LevelDefinition
	Towers          *defs.TowerCatalog
	EventDispatcher *event.Dispatcher

	WaveSystem         *system.WaveSystem
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	VisualEffectSystem *system.VisualEffectSystem
	RenderSystem       *system.RenderSystem

	coins      int
	lives      int
	speeds     []float64
	speedIndex int
	paused     bool
	phase      Phase
	gameTime   float64

	preview      *entity.PreviewTurret
	selected     types.EntityID
	snapshotPath string

	backdrop  types.EntityID // фон и подсветка пути
	mapOwner  types.EntityID // числа урона, взрывы, оверлеи
	pathTrace vfx.Effect
	lastWave  system.WavePhase
}

// NewSession собирает сессию и запускает фоновые эффекты.
func NewSession(opts Options) (*Session, error) {
	if opts.Schedule == nil || opts.Schedule.Len() == 0 {
		return nil, ErrNoSchedule
	}
	tuning := config.Default()
	if opts.Tuning != nil {
		tuning = *opts.Tuning
	}
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	level := opts.Level
	if level == nil {
		level = DefaultLevel()
	}
	if len(level.Paths) == 0 {
		return nil, fmt.Errorf("failed to create session: level %q has no paths", level.Name)
	}
	towers := opts.Towers
	if towers == nil {
		catalog, err := defs.NewTowerCatalog(defs.DefaultTowers())
		if err != nil {
			return nil, fmt.Errorf("failed to create session: %w", err)
		}
		towers = catalog
	}
	registry := opts.Assets
	if registry == nil {
		registry = assets.DefaultRegistry()
	}
	rng := opts.Rng
	if rng == nil {
		rng = utils.NewPRNGService(1)
	}

	dispatcher := event.NewDispatcher()
	world := entity.NewWorld(registry, tuning, vfx.NewManager(), rng)
	s := &Session{
		World:           world,
		Level:           level,
		Towers:          towers,
		EventDispatcher: dispatcher,
		coins:           tuning.Session.StartingCoins,
		lives:           tuning.Session.StartingLives,
		speeds:          tuning.Session.SpeedOptions,
		phase:           Playing,
		snapshotPath:    opts.SnapshotPath,
		backdrop:        world.NewEntity(),
		mapOwner:        world.NewEntity(),
	}
	s.WaveSystem = system.NewWaveSystem(world, opts.Schedule, level.Paths, dispatcher)
	s.MovementSystem = system.NewMovementSystem(world)
	s.CombatSystem = system.NewCombatSystem(world)
	s.VisualEffectSystem = system.NewVisualEffectSystem(world, s.mapOwner)
	s.RenderSystem = system.NewRenderSystem(world, level, s.backdrop, s.mapOwner)
	s.lastWave = s.WaveSystem.Phase()

	dispatcher.Subscribe(event.GameWon, event.ListenerFunc(func(event.Event) { s.win() }))

	world.VFX.AddEffect(s.backdrop, vfx.NewInGameBackgroundEffect(rng), true)
	world.VFX.AddEffect(s.mapOwner, vfx.NewBlendInEffect(config.BackgroundColor, config.BlendInDuration), true)
	if err := s.resume(); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	s.showPathTrace()
	s.transformOwners()

	log.Printf("[Session] Started on level %q: %d waves, %d coins, %d lives", level.Name, opts.Schedule.Len(), s.coins, s.lives)
	return s, nil
}

func (s *Session) Coins() int                     { return s.coins }
func (s *Session) Lives() int                     { return s.lives }
func (s *Session) Phase() Phase                   { return s.phase }
func (s *Session) Paused() bool                   { return s.paused }
func (s *Session) Speed() float64                 { return s.speeds[s.speedIndex] }
func (s *Session) SpeedIndex() int                { return s.speedIndex }
func (s *Session) GameTime() float64              { return s.gameTime }
func (s *Session) Wave() int                      { return s.WaveSystem.Wave() }
func (s *Session) WavePhase() system.WavePhase    { return s.WaveSystem.Phase() }
func (s *Session) Preview() *entity.PreviewTurret { return s.preview }
func (s *Session) Selected() types.EntityID       { return s.selected }
func (s *Session) MapOwner() types.EntityID       { return s.mapOwner }
func (s *Session) CanStartNextWave() bool         { return s.phase == Playing && s.WaveSystem.CanStartNextWave() }

// EffectiveDelta переводит реальное время в игровое: скорость, ноль на паузе.
func (s *Session) EffectiveDelta(realDt float64) float64 {
	if s.paused {
		return 0
	}
	return realDt * s.Speed()
}

// Update продвигает игру на realDt секунд реального времени. Симуляция идет
// с учетом скорости и стоит на паузе целиком, эффекты всегда получают
// реальное время.
func (s *Session) Update(realDt float64) {
	dt := s.EffectiveDelta(realDt)
	if s.phase == Playing && !s.paused {
		s.gameTime += dt
		s.WaveSystem.Update(dt)

		outcomes := s.MovementSystem.Update(dt)
		outcomes = append(outcomes, s.CombatSystem.Update(dt)...)
		s.consume(outcomes)
		s.World.PruneDead()
		if _, ok := s.World.Turrets[s.selected]; !ok {
			s.selected = 0
		}

		if s.lives <= 0 && s.phase == Playing {
			s.lose()
		}
		s.trackWavePhase()
	}
	if s.preview != nil {
		s.preview.Check(s.coins, s.Level.Zones, s.World.TurretRects())
	}
	s.transformOwners()
	s.World.VFX.Update(realDt)
}

// consume применяет итоги боя к экономике и эффектам.
func (s *Session) consume(outcomes []entity.Outcome) {
	for _, o := range outcomes {
		stats := defs.TierStats(o.Tier)
		data := event.EnemyData{ID: uint64(o.Enemy), Tier: o.Tier, Reward: stats.Reward, Cost: stats.LifeCost}
		switch o.Kind {
		case entity.Killed:
			s.coins += stats.Reward
			s.EventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: data})
		case entity.Leaked:
			s.lives -= stats.LifeCost
			s.EventDispatcher.Dispatch(event.Event{Type: event.EnemyLeaked, Data: data})
		case entity.DamageFlushed:
			s.EventDispatcher.Dispatch(event.Event{Type: event.DamageFlushed, Data: event.DamageData{ID: uint64(o.Enemy), Amount: o.Amount}})
		}
	}
	s.VisualEffectSystem.Apply(outcomes)
}

func (s *Session) trackWavePhase() {
	current := s.WaveSystem.Phase()
	if current == s.lastWave {
		return
	}
	if s.lastWave == system.WaveActive && current == system.WaveIdle {
		s.overlay(fmt.Sprintf("Wave %d complete", s.Wave()+1), config.OverlayDuration)
		s.showPathTrace()
	}
	s.lastWave = current
}

func (s *Session) win() {
	if s.phase != Playing {
		return
	}
	s.phase = Won
	log.Printf("[Session] Won after wave %d with %d lives left", s.Wave(), s.lives)
	s.World.VFX.AddEffect(s.mapOwner, vfx.NewWinCelebrationEffect(s.World.Rng), true)
	s.overlay("Victory", -1)
}

func (s *Session) lose() {
	s.phase = Lost
	s.lives = max(s.lives, 0)
	log.Printf("[Session] Lost on wave %d", s.Wave())
	s.EventDispatcher.Dispatch(event.Event{Type: event.GameLost, Data: event.WaveData{Wave: s.Wave()}})
	s.overlay("Game Over", -1)
}

func (s *Session) overlay(text string, duration float64) {
	s.World.VFX.AddEffect(s.mapOwner, vfx.NewOverlayFadeEffect(vfx.OverlayFadeData{
		Text:      text,
		TextColor: config.TextLightColor,
		BoxColor:  config.HUDColor,
		BoxSize:   geom.V(320, 64),
		Duration:  duration,
		Delay:     config.OverlayDelay,
	}), true)
}

// showPathTrace пускает бегущую линию по первому пути, пока можно начать волну.
func (s *Session) showPathTrace() {
	if s.pathTrace != nil || !s.CanStartNextWave() {
		return
	}
	path := s.Level.Paths[0]
	half := geom.V(config.EnemySize/2, config.EnemySize/2)
	rel := make([]geom.Vec, len(path))
	for i, p := range path {
		c := p.Add(half)
		rel[i] = geom.V(c.X/s.Level.Size.X, c.Y/s.Level.Size.Y)
	}
	trace := vfx.NewGradientLineEffect(vfx.GradientLineData{
		Path:         rel,
		LineLength:   config.PathTraceLength,
		LoopDuration: config.PathTraceLoopTime,
		LoopCount:    -1,
		Color:        config.SelectedColor,
	}, s.World.Rng)
	s.World.VFX.AddEffect(s.backdrop, trace, false)
	s.pathTrace = trace
}

func (s *Session) hidePathTrace() {
	if s.pathTrace == nil {
		return
	}
	s.World.VFX.RemoveEffect(s.backdrop, s.pathTrace)
	s.pathTrace = nil
}

func (s *Session) transformOwners() {
	s.World.VFX.Transform(s.backdrop, geom.Vec{}, s.Level.Size)
	s.World.VFX.Transform(s.mapOwner, geom.Vec{}, s.Level.Size)
}

// StartNextWave запускает следующую волну, если текущая уже выпущена.
func (s *Session) StartNextWave() bool {
	if !s.CanStartNextWave() {
		return false
	}
	if !s.WaveSystem.RequestNextWave() {
		return false
	}
	s.lastWave = s.WaveSystem.Phase()
	s.hidePathTrace()
	return true
}

// CycleSpeed переключает скорость на следующую по кругу.
func (s *Session) CycleSpeed() float64 {
	s.speedIndex = (s.speedIndex + 1) % len(s.speeds)
	return s.Speed()
}

// SpeedUp и SlowDown меняют скорость без перехода по кругу.
func (s *Session) SpeedUp()  { s.speedIndex = min(s.speedIndex+1, len(s.speeds)-1) }
func (s *Session) SlowDown() { s.speedIndex = max(s.speedIndex-1, 0) }

// TogglePause ставит или снимает паузу.
func (s *Session) TogglePause() bool {
	s.paused = !s.paused
	return s.paused
}

// SelectTurret выбирает вид турели для постройки.
func (s *Session) SelectTurret(towerID string) error {
	def, ok := s.Towers.Get(towerID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTower, towerID)
	}
	s.unselect()
	s.preview = entity.NewPreviewTurret(def)
	s.preview.Check(s.coins, s.Level.Zones, s.World.TurretRects())
	return nil
}

// CancelPlacement убирает призрак без постройки.
func (s *Session) CancelPlacement() {
	s.preview = nil
}

// MovePreview двигает призрак в точку карты и пересчитывает коллизию.
func (s *Session) MovePreview(pos geom.Vec) {
	if s.preview == nil {
		return
	}
	s.preview.MoveTo(pos)
	s.preview.Check(s.coins, s.Level.Zones, s.World.TurretRects())
}

// Place пытается построить выбранную турель с центром в pos. Попытка
// снимает выбор, даже если место оказалось занято.
func (s *Session) Place(pos geom.Vec) PlaceResult {
	if s.preview == nil || s.phase != Playing {
		return NoSelection
	}
	preview := s.preview
	s.preview = nil

	preview.MoveTo(pos)
	if preview.Check(s.coins, s.Level.Zones, s.World.TurretRects()) {
		return Blocked
	}
	id := preview.Place(s.World)
	if id == 0 {
		return Blocked
	}
	def := preview.Def
	s.coins -= def.Cost
	log.Printf("[Session] Placed %s #%d at %v, %d coins left", def.ID, id, s.World.Positions[id].TopLeft, s.coins)
	s.EventDispatcher.Dispatch(event.Event{Type: event.TurretPlaced, Data: event.TurretData{ID: uint64(id), Tower: def.ID, Cost: def.Cost}})
	return Placed
}

// SelectAt выделяет турель под точкой pos. Повторный выбор той же турели
// снимает выделение. Возвращает 0, если ничего не выделено.
func (s *Session) SelectAt(pos geom.Vec) types.EntityID {
	hit := s.World.TurretAt(pos)
	if hit == 0 || hit == s.selected {
		s.unselect()
		return 0
	}
	s.unselect()
	s.World.Turrets[hit].Overlay = true
	s.selected = hit
	return hit
}

func (s *Session) unselect() {
	if t, ok := s.World.Turrets[s.selected]; ok {
		t.Overlay = false
	}
	s.selected = 0
}

// Click - основное действие мыши: строит выбранную турель или выделяет
// стоящую.
func (s *Session) Click(pos geom.Vec) {
	if s.preview != nil {
		s.Place(pos)
		return
	}
	s.SelectAt(pos)
}

// SetAimMode меняет режим прицеливания турели id.
func (s *Session) SetAimMode(id types.EntityID, mode defs.AimMode) bool {
	t, ok := s.World.Turrets[id]
	if !ok || !mode.Valid() {
		return false
	}
	t.AimMode = mode
	return true
}

// CycleAimMode переключает режим выделенной турели.
func (s *Session) CycleAimMode() (defs.AimMode, bool) {
	t, ok := s.World.Turrets[s.selected]
	if !ok {
		return 0, false
	}
	t.AimMode = t.AimMode.Next()
	return t.AimMode, true
}

// Snapshot кодирует прогресс текущей волны.
func (s *Session) Snapshot() ([]byte, error) {
	return s.WaveSystem.Snapshot()
}

// Restore продолжает волну из снимка Snapshot. Враги, выпущенные до снимка,
// не воссоздаются.
func (s *Session) Restore(data []byte) error {
	if err := s.WaveSystem.Restore(data); err != nil {
		return err
	}
	s.lastWave = s.WaveSystem.Phase()
	if s.lastWave == system.WaveActive {
		s.hidePathTrace()
	} else {
		s.showPathTrace()
	}
	return nil
}

// SaveSnapshot пишет снимок волны в файл Options.SnapshotPath.
func (s *Session) SaveSnapshot() error {
	if s.snapshotPath == "" {
		return ErrNoSnapshotPath
	}
	data, err := s.Snapshot()
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	if err := os.WriteFile(s.snapshotPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	log.Printf("[Session] Saved wave %d to %s", s.Wave(), s.snapshotPath)
	return nil
}

// resume восстанавливает волну из файла снимка, если он существует.
func (s *Session) resume() error {
	if s.snapshotPath == "" {
		return nil
	}
	data, err := os.ReadFile(s.snapshotPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}
	if err := s.Restore(data); err != nil {
		return fmt.Errorf("failed to restore %s: %w", s.snapshotPath, err)
	}
	return nil
}

// Render рисует карту, сущности, призрак и эффекты.
func (s *Session) Render(surface vfx.Surface) {
	s.RenderSystem.Draw(surface, s.preview)
}

// internal/system/wave.go
package system

import (
	"errors"
	"fmt"
	"log"
	"math"

	"laser-defense/internal/defs"
	"laser-defense/internal/entity"
	"laser-defense/internal/event"
	"laser-defense/internal/types"
	"laser-defense/internal/utils"
	"laser-defense/pkg/geom"
)

// WavePhase - фаза планировщика волн
type WavePhase int

const (
	WaveIdle   WavePhase = iota // ждет команды на следующую волну
	WaveActive                  // враги волны выпускаются
	WaveWon                     // последняя волна выпущена и зачищена
)

func (p WavePhase) String() string {
	switch p {
	case WaveIdle:
		return "Idle"
	case WaveActive:
		return "WaveActive"
	case WaveWon:
		return "Won"
	}
	return fmt.Sprintf("WavePhase(%d)", int(p))
}

// ErrBadSnapshot возвращается Restore, если снимок не подходит к расписанию.
var ErrBadSnapshot = errors.New("wave snapshot does not match the schedule")

// spawnEpsilon гасит ошибку накопления dt: 60 шагов по 1/60 дают 0.9999999999999999.
const spawnEpsilon = 1e-9

// WaveSystem выпускает врагов по расписанию волн. Для каждой ячейки
// (импульс, длительность, уровень) к моменту t выпущено
// floor(count * clamp((t - pulse) / duration, 0, 1)) врагов; повторный вызов
// с тем же временем ничего не добавляет.
type WaveSystem struct {
	world           *entity.World
	schedule        *defs.WaveSchedule
	progress        *defs.WaveProgress
	paths           [][]geom.Vec
	eventDispatcher *event.Dispatcher

	wave      int // -1 до первой волны
	phase     WavePhase
	elapsed   float64
	nextPath  int
	completed bool // WaveCompleted уже отправлено для текущей волны
}

// NewWaveSystem создает планировщик. Враги выходят на пути по очереди.
func NewWaveSystem(world *entity.World, schedule *defs.WaveSchedule, paths [][]geom.Vec, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		world:           world,
		schedule:        schedule,
		progress:        defs.NewWaveProgress(),
		paths:           paths,
		eventDispatcher: eventDispatcher,
		wave:            -1,
		phase:           WaveIdle,
	}
}

func (s *WaveSystem) Phase() WavePhase             { return s.phase }
func (s *WaveSystem) Wave() int                    { return s.wave }
func (s *WaveSystem) Elapsed() float64             { return s.elapsed }
func (s *WaveSystem) Progress() *defs.WaveProgress { return s.progress }
func (s *WaveSystem) Schedule() *defs.WaveSchedule { return s.schedule }

// CanStartNextWave сообщает, примет ли RequestNextWave команду.
func (s *WaveSystem) CanStartNextWave() bool {
	return s.phase == WaveIdle && s.schedule.Len() > 0
}

// RequestNextWave переводит Idle в WaveActive со следующим номером волны.
// Если волн дальше нет, номер остается на последней волне.
func (s *WaveSystem) RequestNextWave() bool {
	if !s.CanStartNextWave() {
		return false
	}
	if next, ok := s.schedule.Next(s.wave); ok {
		s.wave = next
	} else if last, ok := s.schedule.Last(); ok {
		s.wave = last
	}
	s.phase = WaveActive
	s.elapsed = 0
	s.completed = false
	s.progress.Reset()

	log.Printf("[WaveSystem] Starting wave %d", s.wave)
	s.dispatch(event.WaveStarted, event.WaveData{Wave: s.wave})
	return true
}

// Update продвигает время волны и выпускает положенных врагов.
// Возвращает врагов, созданных на этом шаге.
func (s *WaveSystem) Update(dt float64) []types.EntityID {
	if s.phase != WaveActive {
		return nil
	}
	def, ok := s.schedule.Wave(s.wave)
	if !ok {
		s.phase = WaveIdle
		return nil
	}

	s.elapsed += dt
	var spawned []types.EntityID
	for _, cell := range def.Cells {
		if s.elapsed < cell.Pulse {
			continue
		}
		due := DueCount(cell, s.elapsed)
		for range s.progress.Advance(cell.SpawnKey, due) {
			spawned = append(spawned, s.spawnEnemy(cell.Tier))
		}
	}

	s.checkCompletion(def)
	return spawned
}

// DueCount возвращает, сколько врагов ячейки должно быть выпущено к моменту
// elapsed от начала волны. Нулевая длительность выпускает всех сразу.
func DueCount(cell defs.SpawnCell, elapsed float64) int {
	if elapsed < cell.Pulse {
		return 0
	}
	ratio := 1.0
	if cell.Duration > 0 {
		ratio = utils.Clamp((elapsed-cell.Pulse)/cell.Duration, 0, 1)
	}
	return min(cell.Count, int(math.Floor(float64(cell.Count)*ratio+spawnEpsilon)))
}

func (s *WaveSystem) checkCompletion(def *defs.WaveDefinition) {
	if !s.progress.Complete(def) {
		return
	}
	if !s.completed {
		s.completed = true
		log.Printf("[WaveSystem] Wave %d fully spawned (%d enemies)", s.wave, s.progress.Total())
		s.dispatch(event.WaveCompleted, event.WaveData{Wave: s.wave})
	}

	last, _ := s.schedule.Last()
	if s.wave != last {
		s.phase = WaveIdle
		return
	}
	if s.world.HasEnemies() {
		return
	}
	s.phase = WaveWon
	log.Printf("[WaveSystem] Last wave %d cleared", s.wave)
	s.dispatch(event.GameWon, event.WaveData{Wave: s.wave})
}

func (s *WaveSystem) spawnEnemy(tier int) types.EntityID {
	var path []geom.Vec
	if len(s.paths) > 0 {
		path = s.paths[s.nextPath%len(s.paths)]
		s.nextPath++
	}
	tuning := s.world.Tuning.Enemy
	id := s.world.CreateEnemy(tier, path, tuning.Speed, tuning.FlushThreshold)

	stats := s.world.EnemyStats(id)
	s.dispatch(event.EnemySpawned, event.EnemyData{ID: uint64(id), Tier: stats.Tier, Reward: stats.Reward, Cost: stats.LifeCost})
	return id
}

func (s *WaveSystem) dispatch(t event.EventType, data any) {
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: t, Data: data})
	}
}

// Snapshot кодирует текущую волну, ее время и выпущенные количества.
func (s *WaveSystem) Snapshot() ([]byte, error) {
	return defs.MarshalProgress(defs.ProgressSnapshot{
		Wave:    s.wave,
		Active:  s.phase == WaveActive,
		Elapsed: s.elapsed,
		Cells:   s.progress.Records(),
	})
}

// Restore возобновляет волну из снимка Snapshot. Уже выпущенные враги
// повторно не создаются: следующий Update добавит ровно недостающую разницу.
func (s *WaveSystem) Restore(data []byte) error {
	snap, err := defs.UnmarshalProgress(data)
	if err != nil {
		return err
	}
	if snap.Elapsed < 0 || math.IsNaN(snap.Elapsed) {
		return fmt.Errorf("%w: elapsed %v", ErrBadSnapshot, snap.Elapsed)
	}
	if snap.Wave != -1 {
		def, ok := s.schedule.Wave(snap.Wave)
		if !ok {
			return fmt.Errorf("%w: unknown wave %d", ErrBadSnapshot, snap.Wave)
		}
		for _, r := range snap.Cells {
			key := defs.SpawnKey{Pulse: r.Pulse, Duration: r.Duration, Tier: r.Tier}
			if r.Spawned > def.Count(key) {
				return fmt.Errorf("%w: %d spawned for tier %d, only %d scheduled", ErrBadSnapshot, r.Spawned, r.Tier, def.Count(key))
			}
		}
	} else if snap.Active {
		return fmt.Errorf("%w: active snapshot without a wave", ErrBadSnapshot)
	}
	progress, err := defs.ProgressFromRecords(snap.Cells)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}

	s.wave = snap.Wave
	s.elapsed = snap.Elapsed
	s.progress = progress
	s.completed = false
	s.phase = WaveIdle
	if snap.Active {
		s.phase = WaveActive
	}
	log.Printf("[WaveSystem] Restored wave %d at %.2fs (%d enemies issued)", s.wave, s.elapsed, progress.Total())
	return nil
}

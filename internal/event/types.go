// internal/event/types.go
package event

const (
	WaveStarted   EventType = "WaveStarted"   // Волна началась, Data: WaveData
	WaveCompleted EventType = "WaveCompleted" // Все враги волны выпущены, Data: WaveData
	EnemySpawned  EventType = "EnemySpawned"  // Data: EnemyData
	EnemyKilled   EventType = "EnemyKilled"   // Data: EnemyData
	EnemyLeaked   EventType = "EnemyLeaked"   // Data: EnemyData
	DamageFlushed EventType = "DamageFlushed" // Data: DamageData
	TurretPlaced  EventType = "TurretPlaced"  // Data: TurretData
	GameWon       EventType = "GameWon"
	GameLost      EventType = "GameLost"
)

// WaveData - номер волны
type WaveData struct {
	Wave int
}

// EnemyData - враг и связанные с ним изменения экономики
type EnemyData struct {
	ID     uint64
	Tier   int
	Reward int // монеты за убийство
	Cost   int // жизни за прорыв
}

// DamageData - сброшенный буфер урона
type DamageData struct {
	ID     uint64
	Amount float64
}

// TurretData - построенная турель
type TurretData struct {
	ID    uint64
	Tower string
	Cost  int
}

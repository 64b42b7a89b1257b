// internal/component/combat.go
package component

// Health - компонент здоровья. Нанесенный урон копится в Buffer, пока
// не будет показан одним числом.
type Health struct {
	Max       float64
	Value     float64
	Buffer    float64
	Threshold float64 // буфер больше порога сбрасывается
	Killed    bool
}

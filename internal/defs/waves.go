// internal/defs/waves.go
package defs

import "sort"

// SpawnKey identifies one ramp of a wave: enemies of Tier appearing linearly
// over Duration seconds starting Pulse seconds after the wave began.
type SpawnKey struct {
	Pulse    float64
	Duration float64
	Tier     int
}

// SpawnCell is a SpawnKey together with the number of enemies it produces.
type SpawnCell struct {
	SpawnKey
	Count int
}

// WaveDefinition описывает все импульсы появления врагов одной волны.
type WaveDefinition struct {
	Index int
	Cells []SpawnCell // отсортированы по (Pulse, Duration, Tier)
}

// Total возвращает общее число врагов волны.
func (w *WaveDefinition) Total() int {
	total := 0
	for _, c := range w.Cells {
		total += c.Count
	}
	return total
}

// Count возвращает запланированное число врагов для ключа.
func (w *WaveDefinition) Count(k SpawnKey) int {
	for _, c := range w.Cells {
		if c.SpawnKey == k {
			return c.Count
		}
	}
	return 0
}

func (w *WaveDefinition) sortCells() {
	sort.Slice(w.Cells, func(i, j int) bool {
		a, b := w.Cells[i], w.Cells[j]
		if a.Pulse != b.Pulse {
			return a.Pulse < b.Pulse
		}
		if a.Duration != b.Duration {
			return a.Duration < b.Duration
		}
		return a.Tier < b.Tier
	})
}

// WaveSchedule maps wave index to its definition. Indices need not be contiguous.
type WaveSchedule struct {
	waves map[int]*WaveDefinition
	order []int
}

// NewWaveSchedule builds a schedule from wave definitions. Later definitions
// with an already used index replace earlier ones. Cells of one wave sharing
// a SpawnKey (keys "1" and "1.0" parse to the same pulse) are merged into one
// cell with the summed count.
func NewWaveSchedule(waves ...WaveDefinition) *WaveSchedule {
	s := &WaveSchedule{waves: make(map[int]*WaveDefinition, len(waves))}
	for i := range waves {
		w := waves[i]
		w.Cells = mergeCells(w.Cells)
		w.sortCells()
		if _, exists := s.waves[w.Index]; !exists {
			s.order = append(s.order, w.Index)
		}
		s.waves[w.Index] = &w
	}
	sort.Ints(s.order)
	return s
}

// mergeCells returns a copy of cells with one entry per SpawnKey.
func mergeCells(cells []SpawnCell) []SpawnCell {
	merged := make([]SpawnCell, 0, len(cells))
	index := make(map[SpawnKey]int, len(cells))
	for _, c := range cells {
		if i, ok := index[c.SpawnKey]; ok {
			merged[i].Count += c.Count
			continue
		}
		index[c.SpawnKey] = len(merged)
		merged = append(merged, c)
	}
	return merged
}

// Wave returns the definition of wave i.
func (s *WaveSchedule) Wave(i int) (*WaveDefinition, bool) {
	w, ok := s.waves[i]
	return w, ok
}

// Len returns the number of scheduled waves.
func (s *WaveSchedule) Len() int {
	return len(s.order)
}

// Indices returns the scheduled wave indices in ascending order.
func (s *WaveSchedule) Indices() []int {
	return append([]int(nil), s.order...)
}

// Next returns the smallest scheduled index greater than after.
func (s *WaveSchedule) Next(after int) (int, bool) {
	i := sort.SearchInts(s.order, after+1)
	if i >= len(s.order) {
		return 0, false
	}
	return s.order[i], true
}

// Last returns the highest scheduled index.
func (s *WaveSchedule) Last() (int, bool) {
	if len(s.order) == 0 {
		return 0, false
	}
	return s.order[len(s.order)-1], true
}

// WaveProgress mirrors a wave definition and records how many enemies of
// every cell have already been issued. Counts only ever grow.
type WaveProgress struct {
	spawned map[SpawnKey]int
}

// NewWaveProgress returns an empty progress record.
func NewWaveProgress() *WaveProgress {
	return &WaveProgress{spawned: make(map[SpawnKey]int)}
}

// Spawned returns the number of enemies already issued for k.
func (p *WaveProgress) Spawned(k SpawnKey) int {
	return p.spawned[k]
}

// Advance raises the issued count of k to n and returns how many enemies that adds.
// Lower values leave the record untouched and return 0.
func (p *WaveProgress) Advance(k SpawnKey, n int) int {
	cur := p.spawned[k]
	if n <= cur {
		return 0
	}
	p.spawned[k] = n
	return n - cur
}

// Complete reports whether every cell of w has been fully issued.
func (p *WaveProgress) Complete(w *WaveDefinition) bool {
	for _, c := range w.Cells {
		if p.spawned[c.SpawnKey] != c.Count {
			return false
		}
	}
	return true
}

// Total returns the number of enemies issued so far.
func (p *WaveProgress) Total() int {
	total := 0
	for _, n := range p.spawned {
		total += n
	}
	return total
}

// Reset forgets everything issued so far.
func (p *WaveProgress) Reset() {
	p.spawned = make(map[SpawnKey]int)
}

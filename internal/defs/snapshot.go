// internal/defs/snapshot.go
package defs

import (
	"fmt"
	"sort"

	"github.com/vmihailenco/msgpack/v5"
)

// ProgressSnapshot is the serializable form of a running wave.
type ProgressSnapshot struct {
	Wave    int           `msgpack:"wave"`
	Active  bool          `msgpack:"active"`
	Elapsed float64       `msgpack:"elapsed"`
	Cells   []SpawnRecord `msgpack:"cells"`
}

// SpawnRecord is one issued count of a ProgressSnapshot.
type SpawnRecord struct {
	Pulse    float64 `msgpack:"pulse"`
	Duration float64 `msgpack:"duration"`
	Tier     int     `msgpack:"tier"`
	Spawned  int     `msgpack:"spawned"`
}

// Records returns the issued counts of p in a stable order.
func (p *WaveProgress) Records() []SpawnRecord {
	records := make([]SpawnRecord, 0, len(p.spawned))
	for k, n := range p.spawned {
		records = append(records, SpawnRecord{Pulse: k.Pulse, Duration: k.Duration, Tier: k.Tier, Spawned: n})
	}
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Pulse != b.Pulse {
			return a.Pulse < b.Pulse
		}
		if a.Duration != b.Duration {
			return a.Duration < b.Duration
		}
		return a.Tier < b.Tier
	})
	return records
}

// ProgressFromRecords rebuilds a progress record.
func ProgressFromRecords(records []SpawnRecord) (*WaveProgress, error) {
	p := NewWaveProgress()
	for _, r := range records {
		if r.Spawned < 0 {
			return nil, fmt.Errorf("negative spawn count %d for tier %d", r.Spawned, r.Tier)
		}
		p.spawned[SpawnKey{Pulse: r.Pulse, Duration: r.Duration, Tier: r.Tier}] = r.Spawned
	}
	return p, nil
}

// MarshalProgress encodes a snapshot with msgpack.
func MarshalProgress(s ProgressSnapshot) ([]byte, error) {
	data, err := msgpack.Marshal(&s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode wave progress: %w", err)
	}
	return data, nil
}

// UnmarshalProgress decodes a snapshot produced by MarshalProgress.
func UnmarshalProgress(data []byte) (ProgressSnapshot, error) {
	var s ProgressSnapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return ProgressSnapshot{}, fmt.Errorf("failed to decode wave progress: %w", err)
	}
	return s, nil
}

// internal/defs/loader.go
package defs

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"

	"laser-defense/pkg/geom"

	"gopkg.in/yaml.v3"
)

// ErrEmptySchedule is returned when a wave document holds no usable wave.
var ErrEmptySchedule = errors.New("wave schedule has no waves")

// LoadWaveSchedule reads the wave document at path.
// The document is a nested mapping wave -> pulse start -> pulse duration -> tier -> count
// with all keys written as strings, e.g. {"0": {"0": {"1": {"0": "5"}}}}. JSON documents
// are valid YAML and load the same way.
func LoadWaveSchedule(path string) (*WaveSchedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wave schedule file: %w", err)
	}
	schedule, err := ParseWaveSchedule(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load wave schedule %s: %w", path, err)
	}
	log.Printf("[Loader] Loaded %d waves from %s", schedule.Len(), path)
	return schedule, nil
}

// ParseWaveSchedule decodes a wave document. Entries with unreadable keys or counts
// are skipped and logged; the rest of the document still loads.
func ParseWaveSchedule(data []byte) (*WaveSchedule, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse wave schedule: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, ErrEmptySchedule
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("wave schedule must be a mapping, got %s", nodeKind(doc))
	}

	var waves []WaveDefinition
	forEachPair(doc, "wave", func(waveKey string, waveNode *yaml.Node) {
		index, err := strconv.Atoi(waveKey)
		if err != nil || index < 0 {
			log.Printf("[Loader] skipping wave %q: index is not a non-negative integer", waveKey)
			return
		}
		wave := WaveDefinition{Index: index}
		forEachPair(waveNode, "pulse", func(pulseKey string, pulseNode *yaml.Node) {
			pulse, ok := parseSeconds(pulseKey)
			if !ok {
				log.Printf("[Loader] skipping pulse %q of wave %d", pulseKey, index)
				return
			}
			forEachPair(pulseNode, "duration", func(durationKey string, durationNode *yaml.Node) {
				duration, ok := parseSeconds(durationKey)
				if !ok {
					log.Printf("[Loader] skipping duration %q of wave %d pulse %v", durationKey, index, pulse)
					return
				}
				forEachPair(durationNode, "tier", func(tierKey string, countNode *yaml.Node) {
					tier, err := strconv.Atoi(tierKey)
					if err != nil || tier < 0 {
						log.Printf("[Loader] skipping tier %q of wave %d", tierKey, index)
						return
					}
					count, err := strconv.Atoi(countNode.Value)
					if countNode.Kind != yaml.ScalarNode || err != nil || count < 0 {
						log.Printf("[Loader] skipping count %q of wave %d tier %d", countNode.Value, index, tier)
						return
					}
					wave.Cells = append(wave.Cells, SpawnCell{
						SpawnKey: SpawnKey{Pulse: pulse, Duration: duration, Tier: tier},
						Count:    count,
					})
				})
			})
		})
		waves = append(waves, wave)
	})

	if len(waves) == 0 {
		return nil, ErrEmptySchedule
	}
	return NewWaveSchedule(waves...), nil
}

func forEachPair(node *yaml.Node, what string, fn func(key string, value *yaml.Node)) {
	if node.Kind != yaml.MappingNode {
		log.Printf("[Loader] skipping %s entry at line %d: expected a mapping, got %s", what, node.Line, nodeKind(node))
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		fn(node.Content[i].Value, node.Content[i+1])
	}
}

func parseSeconds(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}

// LoadTowerDefinitions reads the tower configuration file and builds a catalog.
func LoadTowerDefinitions(path string) (*TowerCatalog, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := yaml.Unmarshal(file, &towerDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	catalog, err := NewTowerCatalog(towerDefs)
	if err != nil {
		return nil, fmt.Errorf("invalid tower definitions: %w", err)
	}
	log.Printf("[Loader] Loaded %d tower definitions", len(catalog.All()))
	return catalog, nil
}

// LevelDefinition is the map data the simulation consumes: enemy paths and the
// rectangles turrets may be built on.
type LevelDefinition struct {
	Name  string
	Size  geom.Vec
	Paths [][]geom.Vec
	Zones []geom.Rect
}

type levelDocument struct {
	Name   string         `yaml:"name"`
	Width  float64        `yaml:"width"`
	Height float64        `yaml:"height"`
	Paths  [][][2]float64 `yaml:"paths"`
	Zones  []struct {
		X float64 `yaml:"x"`
		Y float64 `yaml:"y"`
		W float64 `yaml:"w"`
		H float64 `yaml:"h"`
	} `yaml:"zones"`
}

// LoadLevel reads a level document from path.
func LoadLevel(path string) (*LevelDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file: %w", err)
	}
	level, err := ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load level %s: %w", path, err)
	}
	return level, nil
}

// ParseLevel decodes a level document.
func ParseLevel(data []byte) (*LevelDefinition, error) {
	var doc levelDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse level YAML: %w", err)
	}
	if doc.Width <= 0 || doc.Height <= 0 {
		return nil, fmt.Errorf("level size must be positive, got %vx%v", doc.Width, doc.Height)
	}
	level := &LevelDefinition{Name: doc.Name, Size: geom.V(doc.Width, doc.Height)}
	for i, raw := range doc.Paths {
		if len(raw) < 2 {
			return nil, fmt.Errorf("path %d needs at least two waypoints, got %d", i, len(raw))
		}
		path := make([]geom.Vec, len(raw))
		for j, p := range raw {
			path[j] = geom.V(p[0], p[1])
		}
		level.Paths = append(level.Paths, path)
	}
	if len(level.Paths) == 0 {
		return nil, fmt.Errorf("level has no enemy paths")
	}
	for _, z := range doc.Zones {
		level.Zones = append(level.Zones, geom.Rect{X: z.X, Y: z.Y, W: z.W, H: z.H})
	}
	return level, nil
}

// internal/app/level.go
package app

import (
	"laser-defense/internal/config"
	"laser-defense/internal/defs"
	"laser-defense/pkg/geom"
)

// DefaultLevel - встроенная карта на случай, если файл уровня не задан:
// одна змейка через все поле и зоны застройки между ее коленами.
func DefaultLevel() *defs.LevelDefinition {
	const tile = config.TileSize
	p := func(x, y float64) geom.Vec { return geom.V(x*tile, y*tile) }
	z := func(x, y, w, h float64) geom.Rect { return geom.Rect{X: x * tile, Y: y * tile, W: w * tile, H: h * tile} }
	return &defs.LevelDefinition{
		Name: "Serpentine",
		Size: geom.V(config.ScreenWidth, config.ScreenHeight-config.HUDHeight),
		Paths: [][]geom.Vec{{
			p(-1, 2), p(27, 2), p(27, 7), p(4, 7), p(4, 12), p(32, 12),
		}},
		Zones: []geom.Rect{
			z(1, 3.5, 25, 2.5),
			z(5, 8.5, 25, 2.5),
			z(0, 14, 32, 2),
		},
	}
}

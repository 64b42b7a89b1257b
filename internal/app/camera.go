// internal/app/camera.go
package app

import (
	"laser-defense/internal/utils"
	"laser-defense/internal/vfx"
	"laser-defense/pkg/geom"
)

// Camera показывает часть карты в окне View, расположенном на экране с
// отступом Origin (под HUD). Pan сдвигает видимую область, не выходя за карту.
type Camera struct {
	Origin geom.Vec // левый верхний угол окна на экране
	View   geom.Vec // размер окна
	World  geom.Vec // размер карты
	scroll geom.Vec // левый верхний угол видимой части карты
}

func NewCamera(origin, view, world geom.Vec) *Camera {
	return &Camera{Origin: origin, View: view, World: world}
}

// Pan сдвигает видимую область на d пикселей карты.
func (c *Camera) Pan(d geom.Vec) {
	c.scroll = geom.V(
		utils.Clamp(c.scroll.X+d.X, 0, max(0, c.World.X-c.View.X)),
		utils.Clamp(c.scroll.Y+d.Y, 0, max(0, c.World.Y-c.View.Y)),
	)
}

func (c *Camera) Scroll() geom.Vec { return c.scroll }

// ScreenToMap переводит точку экрана в координаты карты.
func (c *Camera) ScreenToMap(p geom.Vec) geom.Vec {
	return p.Sub(c.Origin).Add(c.scroll)
}

// MapToScreen - обратное преобразование.
func (c *Camera) MapToScreen(p geom.Vec) geom.Vec {
	return p.Sub(c.scroll).Add(c.Origin)
}

// InView сообщает, попадает ли точка экрана в окно камеры.
func (c *Camera) InView(p geom.Vec) bool {
	return geom.RectAt(c.Origin, c.View).ContainsPoint(p)
}

// Surface оборачивает экранную поверхность так, чтобы рисовать в координатах карты.
func (c *Camera) Surface(screen vfx.Surface) vfx.Surface {
	return vfx.OffsetSurface{Target: screen, Offset: c.Origin.Sub(c.scroll)}
}

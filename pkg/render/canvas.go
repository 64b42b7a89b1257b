// pkg/render/canvas.go
package render

import (
	"image/color"

	"laser-defense/internal/assets"
	"laser-defense/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// fontAscent смещение базовой линии basicfont.Face7x13 от верхнего края строки.
const fontAscent = 11

// Canvas рисует примитивы vfx.Surface на изображении Ebiten.
type Canvas struct {
	target  *ebiten.Image
	fillImg *ebiten.Image
	vs      []ebiten.Vertex
	is      []uint16
}

// NewCanvas создает холст. Один холст переиспользуется между кадрами через Bind.
func NewCanvas() *Canvas {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &Canvas{
		fillImg: fillImg,
		vs:      make([]ebiten.Vertex, 0, 16),
		is:      make([]uint16, 0, 16),
	}
}

// Bind направляет следующие вызовы на target.
func (c *Canvas) Bind(target *ebiten.Image) *Canvas {
	c.target = target
	return c
}

func (c *Canvas) FillCircle(center geom.Vec, radius float64, clr color.Color) {
	if radius <= 0 {
		return
	}
	vector.DrawFilledCircle(c.target, float32(center.X), float32(center.Y), float32(radius), clr, true)
}

func (c *Canvas) FillRect(r geom.Rect, clr color.Color) {
	vector.DrawFilledRect(c.target, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func (c *Canvas) StrokeRect(r geom.Rect, width float64, clr color.Color) {
	vector.StrokeRect(c.target, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), float32(width), clr, false)
}

func (c *Canvas) StrokeLine(a, b geom.Vec, width float64, clr color.Color) {
	vector.StrokeLine(c.target, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), clr, true)
}

func (c *Canvas) FillPolygon(points []geom.Vec, clr color.Color) {
	if len(points) < 3 {
		return
	}
	path := vector.Path{}
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	cr, cg, cb, ca := straight(clr)
	c.vs, c.is = path.AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])
	for i := range c.vs {
		c.vs[i].SrcX, c.vs[i].SrcY = 0, 0
		c.vs[i].ColorR = cr
		c.vs[i].ColorG = cg
		c.vs[i].ColorB = cb
		c.vs[i].ColorA = ca
	}
	c.target.DrawTriangles(c.vs, c.is, c.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// DrawText рисует строку моноширинным шрифтом; pos задает левый верхний угол.
func (c *Canvas) DrawText(s string, pos geom.Vec, clr color.Color) {
	text.Draw(c.target, s, basicfont.Face7x13, int(pos.X), int(pos.Y)+fontAscent, clr)
}

func (c *Canvas) DrawSprite(sprite string, frame int, dst geom.Rect, rotation float64, alpha float64) {
	assets.PaintSprite(c, sprite, frame, dst, rotation, alpha)
}

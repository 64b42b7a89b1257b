// internal/vfx/effects.go
package vfx

import (
	"image/color"

	"laser-defense/internal/utils"
	"laser-defense/pkg/geom"
)

// BackgroundEffect бесконечный эмиттер, заполняющий прямоугольник владельца.
type BackgroundEffect struct {
	effectBase
	emitter *Emitter
}

// NewMenuBackgroundEffect крупные тусклые круги, плывущие к центру экрана.
func NewMenuBackgroundEffect(rng utils.Random, background color.RGBA) *BackgroundEffect {
	p := DefaultParticleData()
	p.Lifetime = 30
	p.InitialColor = color.RGBA{32, 30, 44, 255}
	p.FinalColor = background
	p.InitialSize, p.FinalSize = 256, 0
	p.InitialSpeed, p.FinalSpeed = 120, 0
	return &BackgroundEffect{emitter: NewEmitter(EmitterData{
		Particle:     p,
		Area:         &geom.Rect{},
		AreaMode:     AreaTowardCenter,
		MaxParticles: 60,
		Rate:         0.5,
		AngleTo:      360,
	}, rng)}
}

// NewInGameBackgroundEffect редкие тлеющие искры над картой.
func NewInGameBackgroundEffect(rng utils.Random) *BackgroundEffect {
	p := DefaultParticleData()
	p.Lifetime = 5
	p.InitialColor = color.RGBA{191, 63, 0, 255}
	p.FinalColor = color.RGBA{255, 0, 0, 255}
	p.InitialSize, p.FinalSize = 3, 0
	p.InitialSpeed, p.FinalSpeed = 128, 32
	return &BackgroundEffect{emitter: NewEmitter(EmitterData{
		Particle:     p,
		Area:         &geom.Rect{},
		MaxParticles: 25,
		Rate:         2,
		AngleTo:      360,
	}, rng)}
}

func (e *BackgroundEffect) Update(dt float64, pos, size geom.Vec) {
	e.setParent(pos, size)
	area := e.parentRect()
	e.emitter.Data.Area = &area
	e.emitter.Update(dt)
}

func (e *BackgroundEffect) Render(s Surface) { e.emitter.Render(s) }

// BlendInEffect заливает прямоугольник владельца цветом, который растворяется за Duration.
type BlendInEffect struct {
	effectBase
	Color    color.RGBA
	Duration float64
	elapsed  float64
	alpha    float64
}

func NewBlendInEffect(c color.RGBA, duration float64) *BlendInEffect {
	return &BlendInEffect{Color: c, Duration: duration, alpha: 255}
}

func (e *BlendInEffect) Update(dt float64, pos, size geom.Vec) {
	e.setParent(pos, size)
	e.elapsed += dt
	if e.elapsed > e.Duration {
		e.done = true
		return
	}
	e.alpha = 255 - e.elapsed/e.Duration*255
}

func (e *BlendInEffect) Render(s Surface) {
	s.FillRect(e.parentRect(), WithAlpha(e.Color, e.alpha))
}

// OverlayFadeData параметры надписи-оверлея по центру владельца.
type OverlayFadeData struct {
	Text       string
	TextColor  color.RGBA
	BoxColor   color.RGBA
	BoxSize    geom.Vec
	Duration   float64 // -1: висит, пока эффект не снимут
	Delay      float64 // время полной непрозрачности до начала затухания
	StartAlpha float64
}

// OverlayFadeEffect показывает плашку с текстом и гасит ее после задержки.
type OverlayFadeEffect struct {
	effectBase
	data    OverlayFadeData
	elapsed float64
	alpha   float64
}

func NewOverlayFadeEffect(data OverlayFadeData) *OverlayFadeEffect {
	if data.StartAlpha == 0 {
		data.StartAlpha = 255
	}
	return &OverlayFadeEffect{data: data, alpha: data.StartAlpha}
}

func (e *OverlayFadeEffect) Update(dt float64, pos, size geom.Vec) {
	e.setParent(pos, size)
	e.elapsed += dt

	rel := 0.0
	if e.data.Duration != -1 {
		span := e.data.Duration - e.data.Delay
		if span <= 0 {
			rel = 1
		} else {
			rel = max(0, e.elapsed-e.data.Delay) / span
		}
	}
	if rel >= 1 {
		e.done = true
		return
	}
	e.alpha = (1 - rel) * e.data.StartAlpha
}

func (e *OverlayFadeEffect) Render(s Surface) {
	box := geom.RectCentered(e.parentRect().Center(), e.data.BoxSize)
	s.FillRect(box, WithAlpha(e.data.BoxColor, e.alpha*float64(e.data.BoxColor.A)/255))
	textPos := box.Center().Sub(MeasureText(e.data.Text).Scale(0.5))
	s.DrawText(e.data.Text, textPos, WithAlpha(e.data.TextColor, e.alpha))
}

const (
	charWidth  = 7.0
	charHeight = 13.0
)

// TextParticleData параметры всплывающей надписи (например, числа урона).
type TextParticleData struct {
	Text         string
	Position     geom.Vec // смещение от позиции владельца в момент первого обновления
	AngleFrom    float64
	AngleTo      float64
	Lifetime     float64
	InitialColor color.RGBA
	FinalColor   color.RGBA
	InitialSpeed float64
	FinalSpeed   float64
	Gravity      float64
}

// DefaultTextParticleData белый текст, 60→0 px/s в случайную сторону, 1 с.
func DefaultTextParticleData(text string) TextParticleData {
	return TextParticleData{
		Text:         text,
		AngleTo:      360,
		Lifetime:     1,
		InitialColor: color.RGBA{255, 255, 255, 255},
		FinalColor:   color.RGBA{255, 255, 255, 255},
		InitialSpeed: 60,
	}
}

// TextParticleEffect надпись, которая разлетается, меняет цвет и гаснет.
type TextParticleEffect struct {
	effectBase
	data      TextParticleData
	origin    geom.Vec
	position  geom.Vec
	direction geom.Vec
	color     color.RGBA
	alpha     float64
	age       float64
	started   bool
}

func NewTextParticleEffect(data TextParticleData, rng utils.Random) *TextParticleEffect {
	return &TextParticleEffect{
		data:      data,
		position:  data.Position,
		direction: geom.DirectionDeg(utils.Range(rng, data.AngleFrom, data.AngleTo)),
		color:     data.InitialColor,
		alpha:     255,
	}
}

func (e *TextParticleEffect) Update(dt float64, pos, size geom.Vec) {
	e.setParent(pos, size)
	if !e.started {
		e.origin = pos
		e.started = true
	}
	e.age += dt
	rel := e.age / e.data.Lifetime

	e.alpha = 255 - min(255, 255*rel)
	e.color = LerpColor(e.data.InitialColor, e.data.FinalColor, rel)

	step := dt * utils.Lerp(e.data.InitialSpeed, e.data.FinalSpeed, rel)
	e.direction.Y += dt * e.data.Gravity * 0.5
	e.position = e.position.Add(e.direction.Scale(step))

	if e.age > e.data.Lifetime {
		e.done = true
	}
}

func (e *TextParticleEffect) Render(s Surface) {
	s.DrawText(e.data.Text, e.origin.Add(e.position), WithAlpha(e.color, e.alpha))
}

// Text возвращает отображаемый текст.
func (e *TextParticleEffect) Text() string { return e.data.Text }

// Color возвращает текущий цвет текста.
func (e *TextParticleEffect) Color() color.RGBA { return e.color }

// SpriteSequenceEffect проигрывает кадры спрайта равномерно за Duration.
type SpriteSequenceEffect struct {
	effectBase
	Sprite   string
	Frames   int
	Duration float64
	Bounds   geom.Rect
	elapsed  float64
	frame    int
}

func NewSpriteSequenceEffect(sprite string, frames int, duration float64, bounds geom.Rect) *SpriteSequenceEffect {
	return &SpriteSequenceEffect{Sprite: sprite, Frames: frames, Duration: duration, Bounds: bounds}
}

func (e *SpriteSequenceEffect) Update(dt float64, pos, size geom.Vec) {
	e.setParent(pos, size)
	e.elapsed += dt
	if e.elapsed > e.Duration {
		e.done = true
		return
	}
	e.frame = min(e.Frames-1, int(e.elapsed/e.Duration*float64(e.Frames)))
}

func (e *SpriteSequenceEffect) Render(s Surface) {
	s.DrawSprite(e.Sprite, e.frame, e.Bounds, 0, 1)
}

// Frame возвращает текущий кадр.
func (e *SpriteSequenceEffect) Frame() int { return e.frame }

// BeamShootEffect искры у основания луча. После Duration эмиттер замолкает,
// а эффект завершается, когда догорят последние частицы.
type BeamShootEffect struct {
	effectBase
	Duration float64
	emitter  *Emitter
	elapsed  float64
}

func NewBeamShootEffect(duration float64, rng utils.Random) *BeamShootEffect {
	p := DefaultParticleData()
	p.Lifetime = 0.25
	p.Texture = TextureLine
	p.InitialColor = color.RGBA{255, 0, 0, 255}
	p.FinalColor = color.RGBA{192, 128, 0, 255}
	p.InitialSize, p.FinalSize = 5, 0
	p.InitialSpeed, p.FinalSpeed = 198, 64
	return &BeamShootEffect{
		Duration: duration,
		emitter: NewEmitter(EmitterData{
			Particle:     p,
			MaxParticles: 8,
			Rate:         15,
			AngleFrom:    135,
			AngleTo:      225,
		}, rng),
	}
}

// Aim направляет искры в сектор ±45° вокруг угла луча.
func (e *BeamShootEffect) Aim(angle float64) {
	e.emitter.Data.AngleFrom = angle - 45
	e.emitter.Data.AngleTo = angle + 45
}

// Finish прекращает выпуск новых частиц.
func (e *BeamShootEffect) Finish() {
	e.Duration = 0
}

func (e *BeamShootEffect) Update(dt float64, pos, size geom.Vec) {
	e.setParent(pos, size)
	e.elapsed += dt
	if e.elapsed > e.Duration {
		e.emitter.Data.Rate = 0
		if e.emitter.ParticleCount() == 0 {
			e.done = true
		}
	}
	if !pos.IsZero() {
		e.emitter.Data.Position = pos
	}
	e.emitter.Update(dt)
}

func (e *BeamShootEffect) Render(s Surface) { e.emitter.Render(s) }

// HighlightEffect расходящиеся рамки вокруг владельца: две с интервалом 0.5 с, затем пауза 2 с.
type HighlightEffect struct {
	effectBase
	Color   color.RGBA
	rings   []highlightRing
	elapsed float64
	counter int
}

type highlightRing struct {
	offset float64
	alpha  float64
}

func NewHighlightEffect(c color.RGBA) *HighlightEffect {
	return &HighlightEffect{Color: c}
}

func (e *HighlightEffect) Update(dt float64, pos, size geom.Vec) {
	e.setParent(pos, size)
	e.elapsed += dt

	if e.counter == 2 && e.elapsed > 2 {
		e.elapsed -= 2
		e.rings = append(e.rings, highlightRing{alpha: 255})
		e.counter = 0
	} else if e.counter != 2 && e.elapsed > 0.5 {
		e.elapsed -= 0.5
		e.rings = append(e.rings, highlightRing{alpha: 255})
		e.counter++
	}

	kept := e.rings[:0]
	for _, r := range e.rings {
		r.offset += 16 * dt
		r.alpha -= 512 * dt
		if r.alpha > 0 {
			kept = append(kept, r)
		}
	}
	e.rings = kept
}

func (e *HighlightEffect) Render(s Surface) {
	for _, r := range e.rings {
		box := geom.Rect{
			X: e.parentPos.X - r.offset,
			Y: e.parentPos.Y - r.offset,
			W: e.parentSize.X + r.offset*2 + 2,
			H: e.parentSize.Y + r.offset*2 + 2,
		}
		s.StrokeRect(box, 2, WithAlpha(e.Color, r.alpha))
	}
}

// Rings возвращает число видимых рамок.
func (e *HighlightEffect) Rings() int { return len(e.rings) }

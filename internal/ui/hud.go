// internal/ui/hud.go
package ui

import (
	"laser-defense/internal/config"
	"laser-defense/internal/defs"
	"laser-defense/internal/types"
	"laser-defense/internal/vfx"
	"laser-defense/pkg/geom"
)

// Action - команда, которую HUD вернул на клик
type Action int

const (
	ActionNone Action = iota
	ActionSpeed
	ActionPause
	ActionNextWave
	ActionBuy // Tower содержит выбранную турель
)

// Status - то, что HUD показывает. Заполняется из сессии каждый кадр.
type Status struct {
	Coins        int
	Lives        int
	MaxLives     int
	Wave         int // с нуля; -1 до первой волны
	LastWave     bool
	SpeedIndex   int
	Paused       bool
	CanStartWave bool
	Selected     string // турель, выбранная для постройки
}

// HUD - верхняя полоса: жизни, монеты, волна, магазин и кнопки управления.
// Кнопка следующей волны подсвечивается, пока волну можно начать.
type HUD struct {
	Rect     geom.Rect
	Lives    *LivesIndicator
	Coins    *StatIndicator
	Wave     *WaveIndicator
	Shop     *Shop
	Speed    *SpeedButton
	Pause    *PauseButton
	NextWave *Button

	fx     *vfx.Manager
	owner  types.EntityID
	status Status
}

// NewHUD раскладывает виджеты по полосе ширины width. owner - владелец
// эффекта подсветки в менеджере fx.
func NewHUD(width float64, towers []defs.TowerDefinition, fx *vfx.Manager, owner types.EntityID) *HUD {
	const pad = config.HUDPadding
	mid := config.HUDHeight / 2

	h := &HUD{
		Rect:  geom.Rect{W: width, H: config.HUDHeight},
		Lives: NewLivesIndicator(pad, mid-LivesPipRadius),
		Wave:  NewWaveIndicator(width/2, mid-vfx.MeasureText("X").Y/2, config.TextLightColor),
		fx:    fx,
		owner: owner,
	}
	h.Coins = NewStatIndicator(geom.V(pad*2+h.Lives.Width(), mid-6), 6, config.CoinColor)

	next := geom.Rect{X: width - pad - config.NextWaveButtonW, Y: mid - config.NextWaveButtonH/2, W: config.NextWaveButtonW, H: config.NextWaveButtonH}
	h.NextWave = NewButton(next, "Next wave")
	h.Pause = NewPauseButton(geom.V(next.X-pad-config.PauseButtonSize/2, mid), config.PauseButtonSize, config.TextLightColor, config.TextLightColor)
	h.Speed = NewSpeedButton(geom.V(h.Pause.Center.X-config.PauseButtonSize-pad-config.SpeedButtonSize/2, mid), config.SpeedButtonSize/2, config.SpeedButtonColors)

	shopW := float64(len(towers))*(config.ShopSlotSize+4) - 4
	shopX := h.Speed.Center.X - config.SpeedButtonSize*1.5 - pad - shopW
	h.Shop = NewShop(geom.V(shopX, (config.HUDHeight-config.ShopSlotSize)/2), towers)
	return h
}

// Update синхронизирует виджеты с состоянием игры и ведет подсветку кнопки волны.
func (h *HUD) Update(dt float64, mouse geom.Vec, st Status) {
	h.status = st
	h.Coins.SetValue(st.Coins)
	h.Coins.Update(dt)
	h.Speed.SetState(st.SpeedIndex)
	h.Speed.Update(dt)
	h.Pause.SetPaused(st.Paused)
	h.Pause.Update(dt)
	h.NextWave.Disabled = !st.CanStartWave
	h.NextWave.Update(dt, mouse)

	if h.fx == nil {
		return
	}
	h.fx.Transform(h.owner, h.NextWave.Rect.TopLeft(), h.NextWave.Rect.Size())
	switch {
	case st.CanStartWave && h.fx.Count(h.owner) == 0:
		h.fx.AddEffect(h.owner, vfx.NewHighlightEffect(config.SelectedColor), true)
	case !st.CanStartWave && h.fx.Count(h.owner) > 0:
		h.fx.ClearEffects(h.owner)
	}
}

// Contains сообщает, попадает ли точка в полосу HUD.
func (h *HUD) Contains(mouse geom.Vec) bool {
	return h.Rect.ContainsPoint(mouse)
}

// Click переводит клик в команду. Для ActionBuy возвращает идентификатор турели.
func (h *HUD) Click(mouse geom.Vec) (Action, string) {
	switch {
	case h.NextWave.IsClicked(mouse):
		h.NextWave.Click()
		return ActionNextWave, ""
	case h.Pause.IsClicked(mouse):
		return ActionPause, ""
	case h.Speed.IsClicked(mouse):
		return ActionSpeed, ""
	}
	if id, ok := h.Shop.TowerAt(mouse); ok {
		return ActionBuy, id
	}
	return ActionNone, ""
}

// Draw отрисовывает полосу и виджеты.
func (h *HUD) Draw(s vfx.Surface) {
	st := h.status
	s.FillRect(h.Rect, config.HUDColor)
	h.Lives.Draw(s, st.Lives, st.MaxLives, config.LifeColor)
	h.Coins.Draw(s)
	h.Wave.Draw(s, st.Wave+1, st.LastWave)
	h.Shop.Draw(s, st.Coins, st.Selected)
	h.Speed.Draw(s)
	h.Pause.Draw(s)
	h.NextWave.Draw(s)
	if h.fx != nil {
		h.fx.Render(h.owner, s)
	}
}

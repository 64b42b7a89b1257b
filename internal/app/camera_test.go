package app

import (
	"testing"

	"laser-defense/pkg/geom"
)

func TestCameraConvertsAndClamps(t *testing.T) {
	c := NewCamera(geom.V(0, 40), geom.V(400, 300), geom.V(1000, 300))

	if got := c.ScreenToMap(geom.V(10, 50)); got != geom.V(10, 10) {
		t.Errorf("ScreenToMap = %v, want (10, 10)", got)
	}
	c.Pan(geom.V(250, 80))
	if got := c.Scroll(); got != geom.V(250, 0) {
		t.Errorf("Scroll = %v, want (250, 0)", got)
	}
	c.Pan(geom.V(1000, 0))
	if got := c.Scroll(); got != geom.V(600, 0) {
		t.Errorf("Scroll = %v, want it clamped to (600, 0)", got)
	}
	p := geom.V(123, 45)
	if got := c.ScreenToMap(c.MapToScreen(p)); got != p {
		t.Errorf("round trip = %v, want %v", got, p)
	}
	if c.InView(geom.V(10, 20)) || !c.InView(geom.V(10, 60)) {
		t.Error("InView should exclude the HUD strip")
	}
}

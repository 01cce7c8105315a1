package core

import "testing"

func TestRuntimeConfigWithDefaults(t *testing.T) {
	got := RuntimeConfig{ScreenW: 70, ScreenH: 30}.WithDefaults()
	if got.Seed == 0 {
		t.Error("zero seed should be replaced")
	}
	if got.TickRate != DefaultTickRate {
		t.Errorf("TickRate = %d, expected %d", got.TickRate, DefaultTickRate)
	}
	if got.ScreenW != 70 || got.ScreenH != 30 {
		t.Errorf("screen size changed to %dx%d", got.ScreenW, got.ScreenH)
	}

	set := RuntimeConfig{TickRate: 120, Seed: 7}.WithDefaults()
	if set.Seed != 7 || set.TickRate != 120 {
		t.Errorf("explicit values overwritten: %+v", set)
	}
}

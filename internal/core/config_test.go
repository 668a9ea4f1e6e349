package core

import "testing"

func TestRuntimeConfigWithDefaults(t *testing.T) {
	got := RuntimeConfig{ScreenW: -1, TickRate: 0, Seed: 9}.WithDefaults()
	want := RuntimeConfig{ScreenW: DefaultScreenW, ScreenH: DefaultScreenH, TickRate: DefaultTickRate, Seed: 9}
	if got != want {
		t.Errorf("WithDefaults() = %+v, want %+v", got, want)
	}

	custom := RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 30}
	if got := custom.WithDefaults(); got != custom {
		t.Errorf("WithDefaults() changed a complete config: %+v", got)
	}
}

package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func TestRenderScreenKeepsRowsAndText(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.DrawTextColored(0, 0, "Score", core.ColorBrightWhite)
	s.DrawTextColored(6, 0, "100", core.ColorBrightYellow)
	s.SetColored(5, 2, '▲', core.ColorBrightCyan)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for _, want := range []string{"Score", "100", "▲"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for _, c := range allColors {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for colour %d", c)
		}
	}
}

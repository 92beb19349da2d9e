package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/eggroll/internal/core"
)

func TestRenderScreenSkipsWideContinuation(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawText(0, 0, "🥚ab")

	out := RenderScreen(s)
	if strings.ContainsRune(out, 0) {
		t.Error("continuation cells must not be written")
	}
	if strings.Count(out, "🥚") != 1 || !strings.Contains(out, "ab") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for _, c := range []core.Color{core.ColorDefault, core.ColorBrown, core.ColorGray, core.ColorBrightYellow} {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("missing style for color %d", c)
		}
	}
}

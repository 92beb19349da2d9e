package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/eggroll/internal/games/eggroll"
	"github.com/vovakirdan/eggroll/internal/games/eggroll/engine"
	"github.com/vovakirdan/eggroll/internal/games/eggroll/levels"
)

func newTestConsole(t *testing.T, levelID string, out *bytes.Buffer) console {
	t.Helper()
	lvl, err := levels.Builtin().LoadByID(levelID)
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	return console{
		driver: eggroll.NewDriver(engine.New(lvl.Initial())),
		out:    out,
	}
}

func TestConsolePlaysUntilGameOver(t *testing.T) {
	var out bytes.Buffer
	c := newTestConsole(t, "01-first-roll", &out)

	score, err := c.play(strings.NewReader("x L\n"))
	if err != nil {
		t.Fatalf("play() failed: %v", err)
	}
	if score != 11 {
		t.Errorf("score = %d, expected 11", score)
	}

	text := out.String()
	if !strings.Contains(text, "Enter move/s: ") {
		t.Error("missing move prompt")
	}
	if !strings.Contains(text, "Rolling: ←") {
		t.Error("expected intermediate roll frames")
	}
	if !strings.HasSuffix(text, "Game Over! Score: 11\n") {
		t.Errorf("unexpected ending:\n%s", text)
	}
	if strings.Contains(text, clearScreen) {
		t.Error("screen should not be cleared when clear is off")
	}
}

func TestConsoleStopsAtEndOfInput(t *testing.T) {
	var out bytes.Buffer
	c := newTestConsole(t, "01-first-roll", &out)

	score, err := c.play(strings.NewReader("u\n"))
	if err != nil || score != 0 {
		t.Fatalf("play() = %d, %v; expected 0, nil", score, err)
	}
	if !strings.Contains(out.String(), "Stopped. Score: 0") {
		t.Errorf("expected stop message:\n%s", out.String())
	}
}

func TestStatusTextASCII(t *testing.T) {
	lvl, err := levels.Builtin().LoadByID("01-first-roll")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	text := statusText(lvl.Initial(), true)
	if !strings.HasPrefix(text, "######\n#U..o#\n######\n") {
		t.Errorf("unexpected ASCII status:\n%s", text)
	}
	if !strings.Contains(text, "Remaining moves: 2") {
		t.Errorf("status lines missing:\n%s", text)
	}
}

func TestPortOf(t *testing.T) {
	if got := portOf(":23234"); got != "23234" {
		t.Errorf("portOf(:23234) = %q", got)
	}
	if got := portOf("localhost:2222"); got != "2222" {
		t.Errorf("portOf(localhost:2222) = %q", got)
	}
}

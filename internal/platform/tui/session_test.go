package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/eggroll/internal/config"
	"github.com/vovakirdan/eggroll/internal/core"
	"github.com/vovakirdan/eggroll/internal/games/eggroll/levels"
	"github.com/vovakirdan/eggroll/internal/storage"
)

func newTestSession(t *testing.T, store *storage.Store) SessionModel {
	t.Helper()
	lvls, err := levels.Builtin().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	game := config.DefaultEggRollConfig()
	game.Pace.RollEvery = 0

	return NewSessionModel(SessionOptions{
		Levels:  lvls,
		Store:   store,
		Player:  "tester",
		Game:    game,
		Runtime: core.DefaultConfig(),
	})
}

func send(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestSessionPlayLevelAndReturn(t *testing.T) {
	store, err := storage.Open(t.TempDir() + "/scores.db")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	m := newTestSession(t, store)
	if !strings.Contains(m.View(), "First Roll") {
		t.Fatalf("menu should list the first level:\n%s", m.View())
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("screen = %v, expected game", m.screen)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = send(t, m, TickMsg(time.Now()))
	if !m.gameModel.gameState.GameOver || m.gameModel.gameState.Score != 11 {
		t.Fatalf("unexpected state after rolling left: %+v", m.gameModel.gameState)
	}

	saved := m.gameModel.Saved()
	if saved == nil || saved.Player != "tester" || saved.LevelID != "01-first-roll" || saved.Nested != 1 {
		t.Fatalf("run was not recorded: %+v (err %v)", saved, m.gameModel.SaveErr())
	}

	m = send(t, m, runeKey("b"))
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, expected menu after back", m.screen)
	}
	if !strings.Contains(m.View(), "best 11") {
		t.Errorf("menu should show the new high score:\n%s", m.View())
	}

	// The game's last tick is dropped
	m = send(t, m, TickMsg(time.Now()))
	if m.staleTick {
		t.Error("stale tick should be consumed")
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := newTestSession(t, nil)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen = %v, expected scores", m.screen)
	}
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Errorf("empty scoreboard notice missing:\n%s", m.View())
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("screen = %v, expected menu", m.screen)
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession(t, nil)

	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if next.(SessionModel).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

package core

import "testing"

func TestInputFrameKeepsPressOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionPause)
	f.Set(ActionUp)
	f.Set(ActionLeft)

	got := f.Directions()
	expected := []Action{ActionLeft, ActionUp, ActionLeft}
	if len(got) != len(expected) {
		t.Fatalf("Directions() = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("direction %d = %v, expected %v", i, got[i], expected[i])
		}
	}

	if !f.Has(ActionPause) || f.Has(ActionRestart) {
		t.Error("Has should reflect pressed actions only")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionDown)
	f.Set(ActionPause)

	f.Clear()
	if f.Has(ActionDown) || f.Has(ActionPause) || len(f.Directions()) != 0 {
		t.Error("Clear should drop all actions")
	}

	f.Set(ActionRight)
	if got := f.Directions(); len(got) != 1 || got[0] != ActionRight {
		t.Errorf("Directions() after reuse = %v, expected [Right]", got)
	}
}

func TestActionIsDirection(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if !a.IsDirection() {
			t.Errorf("%v should be a direction", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionConfirm, ActionPause, ActionRestart} {
		if a.IsDirection() {
			t.Errorf("%v should not be a direction", a)
		}
	}
}

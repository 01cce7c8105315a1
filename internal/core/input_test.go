package core

import "testing"

func TestKeyStatePressRelease(t *testing.T) {
	k := NewKeyState()

	if k.IsHeld(ActionUp) {
		t.Fatal("new KeyState should hold nothing")
	}

	k.Press(ActionUp)
	k.Press(ActionDown)
	if !k.IsHeld(ActionUp) || !k.IsHeld(ActionDown) {
		t.Error("pressed actions should be held")
	}

	// Pressed actions survive ticks
	for i := 0; i < 100; i++ {
		k.Advance()
	}
	if !k.IsHeld(ActionUp) {
		t.Error("Advance should not release pressed actions")
	}

	k.Release(ActionUp)
	if k.IsHeld(ActionUp) {
		t.Error("released action should not be held")
	}
	if !k.IsHeld(ActionDown) {
		t.Error("releasing one action should not affect another")
	}
	if k.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", k.Len())
	}

	// Releasing twice is harmless
	k.Release(ActionUp)
}

func TestKeyStateLatch(t *testing.T) {
	k := NewKeyState()
	k.Latch(ActionDown, 3)

	for tick := 1; tick <= 3; tick++ {
		if !k.IsHeld(ActionDown) {
			t.Fatalf("latched action should be held on tick %d", tick)
		}
		k.Advance()
	}

	if k.IsHeld(ActionDown) {
		t.Error("latch should expire after its tick count")
	}
}

func TestKeyStateLatchExtends(t *testing.T) {
	k := NewKeyState()
	k.Latch(ActionUp, 2)
	k.Advance()
	k.Latch(ActionUp, 2) // auto-repeat arrives before expiry
	k.Advance()

	if !k.IsHeld(ActionUp) {
		t.Error("re-latching should extend the hold")
	}

	// A shorter latch does not cut an existing longer one
	k.Latch(ActionDown, 5)
	k.Latch(ActionDown, 1)
	k.Advance()
	if !k.IsHeld(ActionDown) {
		t.Error("shorter latch should not shorten a longer one")
	}
}

func TestKeyStateLatchKeepsPress(t *testing.T) {
	k := NewKeyState()
	k.Press(ActionUp)
	k.Latch(ActionUp, 1)
	k.Advance()
	k.Advance()

	if !k.IsHeld(ActionUp) {
		t.Error("latch should not turn a press into an expiring hold")
	}

	k.Latch(ActionPause, 0)
	if k.IsHeld(ActionPause) {
		t.Error("zero-length latch should be ignored")
	}
}

func TestKeyStateClear(t *testing.T) {
	k := NewKeyState()
	k.Press(ActionUp)
	k.Latch(ActionDown, 10)
	k.Clear()

	if k.IsHeld(ActionUp) || k.IsHeld(ActionDown) || k.Len() != 0 {
		t.Error("Clear should release everything")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionUp, "Up"},
		{ActionDown, "Down"},
		{ActionPause, "Pause"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if tc.action.String() != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", int(tc.action), tc.action.String(), tc.expected)
		}
	}
}

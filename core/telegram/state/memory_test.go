package state

import "testing"

func TestMemoryManagerLifecycle(t *testing.T) {
	m := NewMemoryManager()

	if m.HasState(1) {
		t.Fatal("fresh manager should have no state")
	}
	if got := m.GetState(1); got != StateIdle {
		t.Fatalf("GetState = %q, want idle", got)
	}

	m.SetState(1, State("await_slot_text"))
	if !m.InProgress(1) {
		t.Fatal("expected in-progress after SetState")
	}
	if got := m.GetState(1); got != State("await_slot_text") {
		t.Fatalf("GetState = %q", got)
	}

	// another user is unaffected
	if m.InProgress(2) {
		t.Fatal("user 2 should be idle")
	}

	m.ClearState(1)
	if m.HasState(1) {
		t.Fatal("expected state cleared")
	}
}

func TestMemoryManagerSetIdleClears(t *testing.T) {
	m := NewMemoryManager()
	m.SetState(5, State("await_portfolio_photo"))
	m.SetState(5, StateIdle)
	if m.InProgress(5) {
		t.Fatal("setting idle should clear in-progress flag")
	}
}

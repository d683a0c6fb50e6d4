package core

import (
	"sync"
	"testing"
)

func TestIntentFlagsPressRelease(t *testing.T) {
	var f IntentFlags

	f.Press(ActionUp)
	f.Press(ActionRight)
	f.Press(ActionPause) // not a direction, ignored

	got := f.Snapshot()
	expected := Intent{Up: true, Right: true}
	if got != expected {
		t.Errorf("Snapshot() = %+v, expected %+v", got, expected)
	}

	f.Release(ActionUp)
	got = f.Snapshot()
	if got.Up || !got.Right {
		t.Errorf("after Release(Up) Snapshot() = %+v", got)
	}

	f.Clear()
	if f.Snapshot().Any() {
		t.Error("Clear should release every direction")
	}
}

func TestIntentFlagsConcurrentWriters(t *testing.T) {
	var f IntentFlags
	var wg sync.WaitGroup

	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		wg.Add(1)
		go func(a Action) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				f.Press(a)
				f.Release(a)
			}
			f.Press(a)
		}(a)
	}

	wg.Wait()

	got := f.Snapshot()
	if !(got.Up && got.Down && got.Left && got.Right) {
		t.Errorf("Snapshot() = %+v, expected all directions held", got)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionUp, "Up"},
		{ActionLeft, "Left"},
		{ActionRestart, "Restart"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}

	if !ActionRight.IsDirection() || ActionPause.IsDirection() {
		t.Error("IsDirection classification is wrong")
	}
}

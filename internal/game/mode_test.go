package game

import (
	"testing"
	"time"
)

func TestModeIDs(t *testing.T) {
	if m := Marathon(); m.ID != "marathon" || m.TargetLines != 0 || m.TimeLimit != 0 {
		t.Errorf("Marathon() = %+v", m)
	}

	if m := Sprint(40); m.ID != "sprint-40" || m.TargetLines != 40 {
		t.Errorf("Sprint(40) = %+v", m)
	}

	if m := Ultra(2 * time.Minute); m.ID != "ultra-120" || m.TimeLimit != 2*time.Minute {
		t.Errorf("Ultra(2m) = %+v", m)
	}
}

func TestUltraLabel(t *testing.T) {
	if m := Ultra(2 * time.Minute); m.Name != "Ultra (2 min)" {
		t.Errorf("whole-minute label = %q", m.Name)
	}
	if m := Ultra(90 * time.Second); m.Name != "Ultra (90 s)" {
		t.Errorf("odd-second label = %q", m.Name)
	}
}

func TestPresetsStable(t *testing.T) {
	presets := Presets()
	if len(presets) != 3 {
		t.Fatalf("expected 3 preset modes, got %d", len(presets))
	}
	ids := []string{"marathon", "sprint-40", "ultra-120"}
	for i, want := range ids {
		if presets[i].ID != want {
			t.Errorf("preset %d = %q, want %q", i, presets[i].ID, want)
		}
	}
}

func TestRulesFromSanitizes(t *testing.T) {
	rules := DefaultRules()
	if rules.BoardWidth != 12 || rules.VisibleHeight != 24 || rules.HiddenRows != 2 {
		t.Errorf("default board dimensions wrong: %+v", rules)
	}
	if rules.GravityStart != 800*time.Millisecond {
		t.Errorf("GravityStart = %v, want 800ms", rules.GravityStart)
	}
	if rules.LockDelay != 500*time.Millisecond {
		t.Errorf("LockDelay = %v, want 500ms", rules.LockDelay)
	}
}

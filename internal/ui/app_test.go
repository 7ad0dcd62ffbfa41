package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tabatui/tabata/internal/timer"
)

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return got
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	t.Setenv("HOME", t.TempDir()) // keep theme prefs out of the real home
	m := New(Options{})
	return update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
}

func TestStartKey_ArmsTickSubscription(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, keyPress('s'))
	if m.snap.Phase != timer.PhaseStart {
		t.Fatalf("Phase = %v, want start after pressing s", m.snap.Phase)
	}
	if m.tickGen != 1 {
		t.Fatalf("tickGen = %d, want 1 after first start", m.tickGen)
	}

	m = update(t, m, tickMsg{gen: 1})
	if m.snap.Remaining != 4 {
		t.Fatalf("Remaining = %d, want 4 after one tick", m.snap.Remaining)
	}
}

func TestTick_StaleGenerationIsDiscarded(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, keyPress('s'))
	before := m.snap

	m = update(t, m, tickMsg{gen: 0})
	if m.snap != before {
		t.Fatalf("stale tick mutated state: %+v -> %+v", before, m.snap)
	}
}

func TestTick_IgnoredWhilePaused(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, keyPress('s'))
	m = update(t, m, tickMsg{gen: 1})
	m = update(t, m, keyPress('s')) // toggles to stop
	if m.snap.Phase != timer.PhasePaused {
		t.Fatalf("Phase = %v, want paused", m.snap.Phase)
	}
	before := m.snap

	m = update(t, m, tickMsg{gen: 1})
	if m.snap != before {
		t.Fatalf("tick while paused mutated state: %+v -> %+v", before, m.snap)
	}
}

func TestRestart_BumpsGenerationSoOldTicksDie(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, keyPress('s')) // gen 1
	m = update(t, m, keyPress('s')) // pause
	m = update(t, m, keyPress('s')) // resume, gen 2
	if m.tickGen != 2 {
		t.Fatalf("tickGen = %d, want 2 after resume", m.tickGen)
	}

	before := m.snap
	m = update(t, m, tickMsg{gen: 1})
	if m.snap != before {
		t.Fatalf("tick from superseded subscription mutated state")
	}
	m = update(t, m, tickMsg{gen: 2})
	if m.snap == before {
		t.Fatalf("tick from live subscription was dropped")
	}
}

func TestResetKey_StopsCountdown(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, keyPress('s'))
	m = update(t, m, tickMsg{gen: 1})

	m = update(t, m, keyPress('r'))
	if m.snap.Phase != timer.PhaseIdle {
		t.Fatalf("Phase = %v, want idle after reset", m.snap.Phase)
	}
	if m.snap.TickActive {
		t.Fatalf("TickActive = true after reset")
	}
}

func TestSettingsFlow_ApplyResetsRun(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, keyPress('s'))
	m = update(t, m, tickMsg{gen: 1})

	m = update(t, m, keyPress('e'))
	if m.currentView != ViewSettings {
		t.Fatalf("currentView = %v, want settings", m.currentView)
	}
	if len(m.inputs) != 7 {
		t.Fatalf("inputs = %d, want 7", len(m.inputs))
	}

	// Work seconds is the third field; set it to 45.
	m.inputs[2].input.SetValue("45")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.currentView != ViewTimer {
		t.Fatalf("currentView = %v, want timer after apply", m.currentView)
	}
	if m.snap.Phase != timer.PhaseIdle {
		t.Fatalf("Phase = %v, want idle after settings apply", m.snap.Phase)
	}
	if got := m.engine.Config().DurationOn; got != 45 {
		t.Fatalf("DurationOn = %d, want 45", got)
	}
}

func TestSettingsFlow_EscapeLeavesEngineUntouched(t *testing.T) {
	m := newTestModel(t)
	before := m.engine.Config()

	m = update(t, m, keyPress('e'))
	m.inputs[2].input.SetValue("59")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.currentView != ViewTimer {
		t.Fatalf("currentView = %v, want timer after escape", m.currentView)
	}
	if got := m.engine.Config(); got != before {
		t.Fatalf("Config changed on escape: %+v -> %+v", before, got)
	}
}

func TestView_TimerShowsClockAndCycles(t *testing.T) {
	m := newTestModel(t)
	out := m.View()
	if !strings.Contains(out, "00:00:20") {
		t.Fatalf("timer view missing clock face:\n%s", out)
	}
	if !strings.Contains(out, "0/8 cycles") {
		t.Fatalf("timer view missing cycle count:\n%s", out)
	}
	if !strings.Contains(out, "tabata") {
		t.Fatalf("timer view missing logo:\n%s", out)
	}
}

func TestThemeCycle_WrapsAround(t *testing.T) {
	name := themeOrder[0]
	seen := map[string]bool{}
	for i := 0; i < len(themeOrder); i++ {
		seen[name] = true
		name = NextTheme(name)
	}
	if name != themeOrder[0] {
		t.Fatalf("NextTheme cycle ended at %q, want %q", name, themeOrder[0])
	}
	if len(seen) != len(themeOrder) {
		t.Fatalf("cycle visited %d themes, want %d", len(seen), len(themeOrder))
	}
}

func TestGetTheme_UnknownFallsBack(t *testing.T) {
	if got := GetTheme("NoSuchTheme"); got.Name != "Nightfox" {
		t.Fatalf("GetTheme fallback = %q, want Nightfox", got.Name)
	}
}

func TestRingRadius_Bounds(t *testing.T) {
	if got := ringRadius(20, 10); got != 4 {
		t.Fatalf("ringRadius small window = %d, want minimum 4", got)
	}
	if got := ringRadius(500, 200); got != 12 {
		t.Fatalf("ringRadius huge window = %d, want cap 12", got)
	}
	if got := ringRadius(80, 30); got < 4 || got > 12 {
		t.Fatalf("ringRadius(80,30) = %d, want within [4,12]", got)
	}
}

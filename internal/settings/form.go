// Package settings turns raw user input into validated timer settings.
//
// Each clock component (hours, minutes, seconds per interval, plus the cycle
// count) is edited independently. A field that fails to parse or falls
// outside its range is silently ignored and the previous value kept; no error
// surfaces to the user. This permissive policy is deliberate: a half-typed
// field never corrupts the other components.
package settings

import (
	"strconv"
	"strings"

	"github.com/tabatui/tabata/internal/timer"
)

// Field bounds, matching the slider ranges of the settings form.
const (
	MaxHours   = 23
	MaxMinutes = 59
	MaxSeconds = 59
	MinCycles  = 1
	MaxCycles  = 100
)

// Form accumulates interval settings as total seconds per side plus a cycle
// count. The zero value is unusable; use New.
type Form struct {
	on     uint64
	off    uint64
	cycles uint32
}

// New builds a form pre-filled from the given timer configuration.
func New(cfg timer.Config) Form {
	cycles := cfg.Cycles
	if cycles < MinCycles {
		cycles = MinCycles
	}
	return Form{on: cfg.DurationOn, off: cfg.DurationOff, cycles: cycles}
}

// On returns the work interval in seconds.
func (f Form) On() uint64 { return f.on }

// Off returns the rest interval in seconds.
func (f Form) Off() uint64 { return f.off }

// Cycles returns the cycle count.
func (f Form) Cycles() uint32 { return f.cycles }

// Command returns the SetTimer command carrying the current settings.
func (f Form) Command() timer.SetTimer {
	return timer.SetTimer{On: f.on, Off: f.off, Cycles: f.cycles}
}

// SetOnHours replaces the hours component of the work interval.
func (f *Form) SetOnHours(v string) {
	if h, ok := parseField(v, MaxHours); ok {
		f.on = f.on%3600 + h*3600
	}
}

// SetOnMinutes replaces the minutes component of the work interval.
func (f *Form) SetOnMinutes(v string) {
	if m, ok := parseField(v, MaxMinutes); ok {
		f.on = f.on - timer.Minutes(f.on)*60 + m*60
	}
}

// SetOnSeconds replaces the seconds component of the work interval.
func (f *Form) SetOnSeconds(v string) {
	if s, ok := parseField(v, MaxSeconds); ok {
		f.on = f.on - timer.Seconds(f.on) + s
	}
}

// SetOffHours replaces the hours component of the rest interval.
func (f *Form) SetOffHours(v string) {
	if h, ok := parseField(v, MaxHours); ok {
		f.off = f.off%3600 + h*3600
	}
}

// SetOffMinutes replaces the minutes component of the rest interval.
func (f *Form) SetOffMinutes(v string) {
	if m, ok := parseField(v, MaxMinutes); ok {
		f.off = f.off - timer.Minutes(f.off)*60 + m*60
	}
}

// SetOffSeconds replaces the seconds component of the rest interval.
func (f *Form) SetOffSeconds(v string) {
	if s, ok := parseField(v, MaxSeconds); ok {
		f.off = f.off - timer.Seconds(f.off) + s
	}
}

// SetCycles replaces the cycle count.
func (f *Form) SetCycles(v string) {
	if c, ok := parseField(v, MaxCycles); ok && c >= MinCycles {
		f.cycles = uint32(c)
	}
}

// parseField parses a non-negative integer no greater than max. The ok result
// is false for unparseable or out-of-range input.
func parseField(v string, max uint64) (uint64, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
	if err != nil || n > max {
		return 0, false
	}
	return n, true
}

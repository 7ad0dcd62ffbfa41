package timer

import "strconv"

// Phase is one discrete mode of the timer.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseStart
	PhaseOn
	PhaseOff
	PhasePaused
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseStart:
		return "start"
	case PhaseOn:
		return "on"
	case PhaseOff:
		return "off"
	case PhasePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Active reports whether the phase consumes ticks.
func (p Phase) Active() bool {
	return p == PhaseStart || p == PhaseOn || p == PhaseOff
}

// Cue is a discrete audio trigger emitted near phase boundaries.
type Cue int

const (
	CueNone Cue = iota
	CueBeep
	CueLongBeep
)

const (
	// leadInSeconds is the fixed countdown before the first work interval.
	leadInSeconds = 5
	// beepWindow is how many trailing seconds of a phase emit a short beep.
	beepWindow = 4
)

// Command is a discrete input to the engine. The closed set of variants is
// Start, Stop, Reset, SetTimer and Tick.
type Command interface{ command() }

// Start begins a run from idle or resumes a paused one.
type Start struct{}

// Stop pauses an active run, preserving remaining time and phase.
type Stop struct{}

// Reset forces the timer back to idle with the configured work duration.
type Reset struct{}

// SetTimer replaces the whole configuration atomically and resets the run.
// Values are assumed validated by the caller (cycles >= 1).
type SetTimer struct {
	On     uint64
	Off    uint64
	Cycles uint32
}

// Tick advances an active countdown by one second.
type Tick struct{}

func (Start) command()    {}
func (Stop) command()     {}
func (Reset) command()    {}
func (SetTimer) command() {}
func (Tick) command()     {}

// Config holds the interval settings. All three fields are replaced together
// by SetTimer; the engine never applies a partial update.
type Config struct {
	DurationOn  uint64 // seconds of each work interval
	DurationOff uint64 // seconds of each rest interval
	Cycles      uint32 // number of on/off pairs
}

// DefaultConfig returns the classic tabata settings.
func DefaultConfig() Config {
	return Config{DurationOn: 20, DurationOff: 10, Cycles: 8}
}

// State is the mutable timer state. It is a plain value so transitions stay
// pure and trivially testable.
type State struct {
	Phase      Phase
	SavedPhase Phase  // phase to resume into after a pause
	Remaining  uint64 // seconds left in the current phase
	Completed  uint32 // full work intervals finished
	Message    string
}

// initialState returns the idle state for the given config.
func initialState(cfg Config) State {
	return State{Phase: PhaseIdle, Remaining: cfg.DurationOn, Message: "Get ready!"}
}

// Transition applies one command to the state and returns the successor state
// together with any audio cue to fire. It performs no I/O and owns no ticker;
// the caller drives tick delivery based on Phase.Active.
func Transition(cfg Config, st State, cmd Command) (Config, State, Cue) {
	switch cmd := cmd.(type) {
	case Start:
		switch st.Phase {
		case PhaseIdle:
			st.Completed = 0
			st.Remaining = leadInSeconds
			st.Phase = PhaseStart
			st.Message = "Get ready!"
		case PhasePaused:
			st.Phase = st.SavedPhase
			st.Message = "Timer resumed"
		}
		// Already running: starting again is a no-op so a second tick
		// subscription can never be requested.
		return cfg, st, CueNone

	case Stop:
		if st.Phase.Active() {
			st.SavedPhase = st.Phase
			st.Phase = PhasePaused
			st.Message = "Timer stopped"
		}
		return cfg, st, CueNone

	case Reset:
		return cfg, initialStateWithMessage(cfg, "Reset"), CueNone

	case SetTimer:
		cfg = Config{DurationOn: cmd.On, DurationOff: cmd.Off, Cycles: cmd.Cycles}
		return cfg, initialStateWithMessage(cfg, "Reset"), CueNone

	case Tick:
		return tick(cfg, st)
	}

	return cfg, st, CueNone
}

func initialStateWithMessage(cfg Config, msg string) State {
	st := initialState(cfg)
	st.Message = msg
	return st
}

// tick advances an active countdown by one second. Ticks arriving while idle
// or paused are ignored; the tick source contract says they should not be
// delivered, and dropping them keeps a late tick harmless.
func tick(cfg Config, st State) (Config, State, Cue) {
	if !st.Phase.Active() {
		return cfg, st, CueNone
	}

	if st.Remaining > 0 {
		st.Remaining--
	}
	if st.Remaining > 0 {
		if st.Remaining <= beepWindow {
			return cfg, st, CueBeep
		}
		return cfg, st, CueNone
	}

	// Phase boundary: the countdown just hit zero.
	switch st.Phase {
	case PhaseStart:
		st.Phase = PhaseOn
		st.Remaining = cfg.DurationOn
		st.Message = "Timer started"
	case PhaseOn:
		st.Completed++
		if st.Completed < cfg.Cycles {
			st.Phase = PhaseOff
			st.Remaining = cfg.DurationOff
		} else {
			// Run complete. The trailing rest interval is skipped: the
			// completion check only happens after a work interval ends.
			st.Phase = PhaseIdle
			st.Remaining = cfg.DurationOn
			st.Message = "Done, nice work!"
		}
	case PhaseOff:
		st.Phase = PhaseOn
		st.Remaining = cfg.DurationOn
	}
	return cfg, st, CueLongBeep
}

// Snapshot is the read-only projection of engine state handed to renderers.
type Snapshot struct {
	Phase      Phase
	Remaining  uint64
	Completed  uint32
	Cycles     uint32
	Message    string
	Display    string  // lead-in shows the bare integer, otherwise HH:MM:SS
	Progress   float64 // completed cycles as a fraction of the total
	Darken     bool    // true during rest intervals
	TickActive bool    // true while a tick subscription should exist
	Cue        Cue     // cue fired by the command that produced this snapshot
}

// Engine owns the timer config and state and applies commands one at a time.
// It is not safe for concurrent use; drive it from a single event loop.
type Engine struct {
	cfg Config
	st  State
}

// New builds an engine with the default tabata configuration.
func New() *Engine {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig builds an engine idle at the given configuration.
func NewWithConfig(cfg Config) *Engine {
	return &Engine{cfg: cfg, st: initialState(cfg)}
}

// Handle processes one command and returns the resulting snapshot.
func (e *Engine) Handle(cmd Command) Snapshot {
	var cue Cue
	e.cfg, e.st, cue = Transition(e.cfg, e.st, cmd)
	return e.snapshot(cue)
}

// Snapshot returns the current state without applying a command.
func (e *Engine) Snapshot() Snapshot {
	return e.snapshot(CueNone)
}

// Config returns the current interval settings.
func (e *Engine) Config() Config {
	return e.cfg
}

func (e *Engine) snapshot(cue Cue) Snapshot {
	display := FormatClock(e.st.Remaining)
	if e.st.Phase == PhaseStart {
		display = strconv.FormatUint(e.st.Remaining, 10)
	}

	progress := 0.0
	if e.cfg.Cycles > 0 {
		progress = float64(e.st.Completed) / float64(e.cfg.Cycles)
	}

	return Snapshot{
		Phase:      e.st.Phase,
		Remaining:  e.st.Remaining,
		Completed:  e.st.Completed,
		Cycles:     e.cfg.Cycles,
		Message:    e.st.Message,
		Display:    display,
		Progress:   progress,
		Darken:     e.st.Phase == PhaseOff,
		TickActive: e.st.Phase.Active(),
		Cue:        cue,
	}
}

// Package ui provides the terminal user interface for the tabata timer.
//
// The UI is a Bubble Tea program. The root Model owns a timer.Engine and is
// the only component that touches it, so the engine's single-event-loop
// contract holds by construction.
//
// # Tick ownership
//
// The engine is a pure state machine and never schedules its own ticks. The
// Model drives it: after any command that leaves the engine in an active
// phase, the Model arms a one-second tea.Tick, and each delivered tick is
// both checked against the snapshot's TickActive flag and stamped with a
// generation number. Stop, Reset, and natural completion simply stop re-arming;
// the generation counter makes a tick already in flight harmless, and a
// restart bumps the generation so exactly one subscription is live at a time.
//
// # Views
//
//   - Timer view: progress ring with the clock face centered inside, a cycle
//     progress bar, the status message, and key hints. The ring fills with
//     completed cycles, not the running countdown, and the clock text greys
//     out during rest intervals.
//   - Settings view: seven fields (hours/minutes/seconds per interval plus
//     the cycle count). Enter applies the whole form atomically and resets
//     the run; fields that fail to parse keep their previous values.
//
// Audio cues map to the terminal bell: a short beep in the last four seconds
// of a phase and a double bell on every phase boundary.
package ui

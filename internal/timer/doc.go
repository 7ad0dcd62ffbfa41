// Package timer implements the interval timer state machine.
//
// The engine owns a Config (work duration, rest duration, cycle count) and a
// State (phase, remaining seconds, completed cycles). Commands and once-per-
// second ticks are applied by a pure Transition function, so every phase
// change is testable without stubbing a clock or any I/O.
//
// Phases form a small closed machine:
//
//	Idle → Start (5s lead-in) → On ⇄ Off → ... → Idle
//	               any active phase ⇄ Paused
//
// A cycle is one On+Off pair and is counted once, when the On portion ends.
// Because completion is only checked after that increment, the rest interval
// following the final work interval is skipped: the run ends On → Idle.
//
// The engine holds no ticker. Snapshots expose a TickActive flag and the
// driving event loop owns the subscription, which keeps cancellation races
// out of the state machine entirely.
package timer

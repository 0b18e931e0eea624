// Package timer holds the transient session and break state machines. State
// lives only in memory: a restart mid-session leaves the persisted row open,
// which is accepted, not repaired.
package timer

import "time"

type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseRunning Phase = "running"
)

// SessionState is Idle or Running. Ended is not a variant: ending a session
// persists the end timestamp and returns the machine to Idle.
type SessionState struct {
	Phase           Phase
	SessionID       string
	TaskID          string
	Mode            string
	DurationMinutes int
	StartedAt       time.Time
}

// BreakState mirrors SessionState for the untracked break countdown. Breaks
// are never persisted.
type BreakState struct {
	Phase     Phase
	Minutes   int
	StartedAt time.Time
}

func IdleSession() SessionState {
	return SessionState{Phase: PhaseIdle}
}

func IdleBreak() BreakState {
	return BreakState{Phase: PhaseIdle}
}

func (s SessionState) Running() bool { return s.Phase == PhaseRunning }
func (b BreakState) Running() bool   { return b.Phase == PhaseRunning }

func (s SessionState) RemainingSeconds(now time.Time) int {
	return remainingSeconds(now, s.StartedAt, s.DurationMinutes*60)
}

func (s SessionState) PercentComplete(now time.Time) int {
	return percentComplete(now, s.StartedAt, s.DurationMinutes*60)
}

func (b BreakState) RemainingSeconds(now time.Time) int {
	return remainingSeconds(now, b.StartedAt, b.Minutes*60)
}

func (b BreakState) PercentComplete(now time.Time) int {
	return percentComplete(now, b.StartedAt, b.Minutes*60)
}

// remainingSeconds derives the countdown from wall clock alone. Nothing is
// stored and decremented, so successive reads cannot drift; the value clamps
// at zero.
func remainingSeconds(now, startedAt time.Time, durationSeconds int) int {
	elapsed := elapsedSeconds(now, startedAt)
	remaining := durationSeconds - elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

func percentComplete(now, startedAt time.Time, durationSeconds int) int {
	if durationSeconds <= 0 {
		return 100
	}
	elapsed := elapsedSeconds(now, startedAt)
	if elapsed > durationSeconds {
		elapsed = durationSeconds
	}
	return 100 * elapsed / durationSeconds
}

func elapsedSeconds(now, startedAt time.Time) int {
	elapsed := int(now.Sub(startedAt).Seconds())
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

package model

import "time"

// Session modes. Each mode implies a fixed planned duration; the duration is
// copied onto the session row at start so history survives any future change
// to the mapping.
const (
	ModePomodoro  = "Pomodoro 25/5"
	ModeTimebox45 = "Timebox 45"
	ModeTimebox60 = "Timebox 60"
)

const (
	EnergyLow    = "Low"
	EnergyMedium = "Medium"
	EnergyHigh   = "High"
)

var modeDurations = map[string]int{
	ModePomodoro:  25,
	ModeTimebox45: 45,
	ModeTimebox60: 60,
}

// ModeDurationMinutes returns the planned minutes for a mode, false for an
// unknown mode.
func ModeDurationMinutes(mode string) (int, bool) {
	d, ok := modeDurations[mode]
	return d, ok
}

func IsValidEnergy(energy string) bool {
	return energy == EnergyLow || energy == EnergyMedium || energy == EnergyHigh
}

type Session struct {
	ID              string     `json:"id"`
	TaskID          string     `json:"taskId"`
	Mode            string     `json:"mode"`
	DurationMinutes int        `json:"durationMin"`
	StartedAt       time.Time  `json:"startedAt"`
	EndedAt         *time.Time `json:"endedAt,omitempty"`
	Energy          string     `json:"energy"`
	Note            string     `json:"note"`
}

// Completed reports whether the session was properly closed. Rows abandoned
// across a process restart keep an empty end timestamp forever.
func (s *Session) Completed() bool {
	return s.EndedAt != nil
}

type Interruption struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Timestamp time.Time `json:"ts"`
	Content   string    `json:"content"`
}

package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "focuscontrol/internal/errors"
	"focuscontrol/internal/model"
	"focuscontrol/internal/notify"
	"focuscontrol/internal/repository"
	"focuscontrol/internal/timer"
)

// FocusService owns the transient session and break state machines and the
// session rows behind them. The logical model is a single writer driven by a
// once-per-second refresh tick; the mutex only guards against the HTTP server
// delivering that tick concurrently with an action.
type FocusService struct {
	sessions      *repository.SessionRepository
	interruptions *repository.InterruptionRepository
	tasks         *repository.TaskRepository
	notifier      *notify.Notifier

	autoBreakEnabled bool
	autoBreakMinutes int
	alarmAudioURL    string

	mu      sync.Mutex
	session timer.SessionState
	brk     timer.BreakState

	now func() time.Time
}

type StartSessionInput struct {
	TaskID string
	Mode   string
	Energy string
	Note   string
}

type SessionView struct {
	ID               string    `json:"id"`
	TaskID           string    `json:"taskId"`
	Mode             string    `json:"mode"`
	DurationMinutes  int       `json:"durationMin"`
	StartedAt        time.Time `json:"startedAt"`
	RemainingSeconds int       `json:"remainingSeconds"`
	PercentComplete  int       `json:"percentComplete"`
}

type BreakView struct {
	Minutes          int       `json:"minutes"`
	StartedAt        time.Time `json:"startedAt"`
	RemainingSeconds int       `json:"remainingSeconds"`
	PercentComplete  int       `json:"percentComplete"`
}

// StateView is what the refresh tick polls. SessionCompleted and
// BreakCompleted flag a timeout observed by this read, so the presentation
// layer can fire its completion cues exactly once.
type StateView struct {
	Session          *SessionView `json:"session,omitempty"`
	Break            *BreakView   `json:"break,omitempty"`
	SessionCompleted bool         `json:"sessionCompleted"`
	BreakCompleted   bool         `json:"breakCompleted"`
	AlarmAudioURL    string       `json:"alarmAudioUrl,omitempty"`
	ServerTime       time.Time    `json:"serverTime"`
}

type SessionSummary struct {
	StartedAt       time.Time `json:"startedAt"`
	Mode            string    `json:"mode"`
	DurationMinutes int       `json:"durationMin"`
	Energy          string    `json:"energy"`
	Completed       bool      `json:"completed"`
}

type DailySummary struct {
	TotalPlannedMinutes int              `json:"totalPlannedMinutes"`
	CompletedSessions   int              `json:"completedSessions"`
	Sessions            []SessionSummary `json:"sessions"`
}

func NewFocusService(
	sessions *repository.SessionRepository,
	interruptions *repository.InterruptionRepository,
	tasks *repository.TaskRepository,
	notifier *notify.Notifier,
	autoBreakEnabled bool,
	autoBreakMinutes int,
	alarmAudioURL string,
) *FocusService {
	return &FocusService{
		sessions:         sessions,
		interruptions:    interruptions,
		tasks:            tasks,
		notifier:         notifier,
		autoBreakEnabled: autoBreakEnabled,
		autoBreakMinutes: autoBreakMinutes,
		alarmAudioURL:    alarmAudioURL,
		session:          timer.IdleSession(),
		brk:              timer.IdleBreak(),
		now:              func() time.Time { return time.Now().UTC() },
	}
}

// Start begins a focus session on a task. The planned duration comes from the
// fixed mode mapping, never from the caller.
func (s *FocusService) Start(ctx context.Context, input StartSessionInput) (*StateView, *apperrors.APIError) {
	duration, ok := model.ModeDurationMinutes(input.Mode)
	if !ok {
		return nil, apperrors.BadRequest("invalid_mode", "mode must be one of Pomodoro 25/5, Timebox 45, Timebox 60")
	}
	if !model.IsValidEnergy(input.Energy) {
		return nil, apperrors.BadRequest("invalid_energy", "energy must be one of Low, Medium, High")
	}

	task, err := s.tasks.GetByID(ctx, input.TaskID)
	if err == repository.ErrNotFound {
		return nil, apperrors.NotFound("task_not_found", "task not found")
	}
	if err != nil {
		return nil, apperrors.Internal("failed to look up task")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if apiErr := s.tick(ctx, now); apiErr != nil {
		return nil, apiErr
	}
	if s.session.Running() {
		return nil, apperrors.Conflict("session_active", "a focus session is already running")
	}

	session := model.Session{
		ID:              uuid.NewString(),
		TaskID:          task.ID,
		Mode:            input.Mode,
		DurationMinutes: duration,
		StartedAt:       now,
		Energy:          input.Energy,
		Note:            strings.TrimSpace(input.Note),
	}
	if err := s.sessions.Create(ctx, &session); err != nil {
		return nil, apperrors.Internal("failed to create session")
	}

	s.session = timer.SessionState{
		Phase:           timer.PhaseRunning,
		SessionID:       session.ID,
		TaskID:          session.TaskID,
		Mode:            session.Mode,
		DurationMinutes: session.DurationMinutes,
		StartedAt:       now,
	}

	view := s.stateView(now, false, false)
	return &view, nil
}

// End terminates the running session early. A manual end never starts a
// break, whatever the mode.
func (s *FocusService) End(ctx context.Context) (*StateView, *apperrors.APIError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if apiErr := s.tick(ctx, now); apiErr != nil {
		return nil, apiErr
	}
	if !s.session.Running() {
		return nil, apperrors.Conflict("no_active_session", "no focus session is running")
	}

	ended := s.session
	if err := s.sessions.SetEnded(ctx, ended.SessionID, now); err != nil {
		return nil, apperrors.Internal("failed to end session")
	}
	s.session = timer.IdleSession()

	s.notifier.Send(ctx, notify.Event{
		Event:           notify.EventSessionEndedEarly,
		SessionID:       ended.SessionID,
		TaskID:          ended.TaskID,
		DurationMinutes: ended.DurationMinutes,
		EndedAt:         now,
	})

	view := s.stateView(now, false, false)
	return &view, nil
}

// LogInterruption records a distraction against the running session. Content
// that trims to nothing is rejected without touching the store.
func (s *FocusService) LogInterruption(ctx context.Context, content string) (*model.Interruption, *apperrors.APIError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if apiErr := s.tick(ctx, now); apiErr != nil {
		return nil, apiErr
	}
	if !s.session.Running() {
		return nil, apperrors.Conflict("no_active_session", "no focus session is running")
	}

	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, apperrors.BadRequest("content_required", "describe what pulled your attention")
	}

	interruption := model.Interruption{
		ID:        uuid.NewString(),
		SessionID: s.session.SessionID,
		Timestamp: now,
		Content:   trimmed,
	}
	if err := s.interruptions.Create(ctx, &interruption); err != nil {
		return nil, apperrors.Internal("failed to log interruption")
	}

	return &interruption, nil
}

// SkipBreak cancels a running break with no completion signal.
func (s *FocusService) SkipBreak(ctx context.Context) (*StateView, *apperrors.APIError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if apiErr := s.tick(ctx, now); apiErr != nil {
		return nil, apiErr
	}
	if !s.brk.Running() {
		return nil, apperrors.Conflict("no_active_break", "no break is running")
	}

	s.brk = timer.IdleBreak()
	view := s.stateView(now, false, false)
	return &view, nil
}

// State is the refresh tick. Reading it applies any timeout that has come
// due since the last read; countdowns are recomputed from wall clock on
// every call.
func (s *FocusService) State(ctx context.Context) (*StateView, *apperrors.APIError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sessionCompleted, breakCompleted, apiErr := s.tickFlags(ctx, now)
	if apiErr != nil {
		return nil, apiErr
	}

	view := s.stateView(now, sessionCompleted, breakCompleted)
	return &view, nil
}

// SummaryToday aggregates sessions whose start falls within the current UTC
// calendar day. Due timeouts are applied first so a session that ran out
// since the last poll already counts as completed.
func (s *FocusService) SummaryToday(ctx context.Context) (*DailySummary, *apperrors.APIError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if apiErr := s.tick(ctx, now); apiErr != nil {
		return nil, apiErr
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	nextDay := dayStart.AddDate(0, 0, 1)

	sessions, err := s.sessions.ListStartedBetween(ctx, dayStart, nextDay)
	if err != nil {
		return nil, apperrors.Internal("failed to load today's sessions")
	}

	summary := DailySummary{Sessions: make([]SessionSummary, 0, len(sessions))}
	for _, session := range sessions {
		summary.TotalPlannedMinutes += session.DurationMinutes
		if session.Completed() {
			summary.CompletedSessions++
		}
		summary.Sessions = append(summary.Sessions, SessionSummary{
			StartedAt:       session.StartedAt,
			Mode:            session.Mode,
			DurationMinutes: session.DurationMinutes,
			Energy:          session.Energy,
			Completed:       session.Completed(),
		})
	}

	return &summary, nil
}

// tick applies due timeouts, discarding the completion flags.
func (s *FocusService) tick(ctx context.Context, now time.Time) *apperrors.APIError {
	_, _, apiErr := s.tickFlags(ctx, now)
	return apiErr
}

// tickFlags checks both machines against the clock. A session that has run
// out is persisted as ended and signalled; if its mode is the Pomodoro preset
// and auto-break is on, the break machine starts. A break that has run out
// simply returns to idle.
func (s *FocusService) tickFlags(ctx context.Context, now time.Time) (sessionCompleted, breakCompleted bool, apiErr *apperrors.APIError) {
	if s.session.Running() && s.session.RemainingSeconds(now) == 0 {
		ended := s.session
		if err := s.sessions.SetEnded(ctx, ended.SessionID, now); err != nil {
			return false, false, apperrors.Internal("failed to complete session")
		}
		s.session = timer.IdleSession()
		sessionCompleted = true

		s.notifier.Send(ctx, notify.Event{
			Event:           notify.EventSessionComplete,
			SessionID:       ended.SessionID,
			TaskID:          ended.TaskID,
			DurationMinutes: ended.DurationMinutes,
			EndedAt:         now,
		})

		if s.autoBreakEnabled && ended.Mode == model.ModePomodoro {
			s.brk = timer.BreakState{
				Phase:     timer.PhaseRunning,
				Minutes:   s.autoBreakMinutes,
				StartedAt: now,
			}
		}
	}

	if s.brk.Running() && s.brk.RemainingSeconds(now) == 0 {
		s.brk = timer.IdleBreak()
		breakCompleted = true
	}

	return sessionCompleted, breakCompleted, nil
}

func (s *FocusService) stateView(now time.Time, sessionCompleted, breakCompleted bool) StateView {
	view := StateView{
		SessionCompleted: sessionCompleted,
		BreakCompleted:   breakCompleted,
		AlarmAudioURL:    s.alarmAudioURL,
		ServerTime:       now,
	}

	if s.session.Running() {
		view.Session = &SessionView{
			ID:               s.session.SessionID,
			TaskID:           s.session.TaskID,
			Mode:             s.session.Mode,
			DurationMinutes:  s.session.DurationMinutes,
			StartedAt:        s.session.StartedAt,
			RemainingSeconds: s.session.RemainingSeconds(now),
			PercentComplete:  s.session.PercentComplete(now),
		}
	}

	if s.brk.Running() {
		view.Break = &BreakView{
			Minutes:          s.brk.Minutes,
			StartedAt:        s.brk.StartedAt,
			RemainingSeconds: s.brk.RemainingSeconds(now),
			PercentComplete:  s.brk.PercentComplete(now),
		}
	}

	return view
}

package service

import (
	"context"
	"fmt"

	apperrors "focuscontrol/internal/errors"
	"focuscontrol/internal/model"
)

const (
	CoachKindNudge   = "nudge"
	CoachKindRefocus = "refocus"
)

const (
	nudgeSystemPrompt = "You are a warm, concise ADHD focus coach. Keep messages under 120 words."
	nudgeUserPrompt   = "Energy: %s. Give one tiny next action to begin without perfectionism and one sentence of encouragement."

	refocusSystemPrompt = "You are a warm ADHD focus coach. Two sentences max. Encourage returning to the task."
	refocusUserPrompt   = "Give a gentle re-focus reminder that reduces shame."
)

// ChatClient is the coach endpoint. It returns text unconditionally; a
// failing endpoint answers with a placeholder, not an error.
type ChatClient interface {
	Chat(ctx context.Context, systemPrompt, userPrompt string) string
}

type CoachService struct {
	client ChatClient
}

func NewCoachService(client ChatClient) *CoachService {
	return &CoachService{client: client}
}

// Message composes the prompt pair for the requested kind and asks the coach.
// The nudge is keyed by the user's current energy; the refocus reminder is
// fixed.
func (s *CoachService) Message(ctx context.Context, kind, energy string) (string, *apperrors.APIError) {
	switch kind {
	case CoachKindNudge:
		if energy == "" {
			energy = model.EnergyMedium
		}
		if !model.IsValidEnergy(energy) {
			return "", apperrors.BadRequest("invalid_energy", "energy must be one of Low, Medium, High")
		}
		return s.client.Chat(ctx, nudgeSystemPrompt, fmt.Sprintf(nudgeUserPrompt, energy)), nil
	case CoachKindRefocus:
		return s.client.Chat(ctx, refocusSystemPrompt, refocusUserPrompt), nil
	default:
		return "", apperrors.BadRequest("invalid_kind", "kind must be nudge or refocus")
	}
}

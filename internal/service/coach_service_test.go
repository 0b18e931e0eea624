package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focuscontrol/internal/model"
)

type stubChatClient struct {
	lastSystem string
	lastUser   string
	reply      string
}

func (s *stubChatClient) Chat(_ context.Context, systemPrompt, userPrompt string) string {
	s.lastSystem = systemPrompt
	s.lastUser = userPrompt
	return s.reply
}

func TestCoachNudgeUsesEnergy(t *testing.T) {
	stub := &stubChatClient{reply: "One tiny step: open the doc."}
	svc := NewCoachService(stub)

	message, apiErr := svc.Message(context.Background(), CoachKindNudge, model.EnergyLow)
	require.Nil(t, apiErr)
	assert.Equal(t, "One tiny step: open the doc.", message)
	assert.Contains(t, stub.lastUser, "Energy: Low")
	assert.Contains(t, stub.lastSystem, "ADHD focus coach")
}

func TestCoachNudgeDefaultsToMediumEnergy(t *testing.T) {
	stub := &stubChatClient{reply: "ok"}
	svc := NewCoachService(stub)

	_, apiErr := svc.Message(context.Background(), CoachKindNudge, "")
	require.Nil(t, apiErr)
	assert.Contains(t, stub.lastUser, "Energy: Medium")
}

func TestCoachRefocus(t *testing.T) {
	stub := &stubChatClient{reply: "Come back gently."}
	svc := NewCoachService(stub)

	message, apiErr := svc.Message(context.Background(), CoachKindRefocus, "")
	require.Nil(t, apiErr)
	assert.Equal(t, "Come back gently.", message)
	assert.Contains(t, stub.lastUser, "re-focus")
}

func TestCoachInvalidInputs(t *testing.T) {
	svc := NewCoachService(&stubChatClient{})

	_, apiErr := svc.Message(context.Background(), "pep-talk", "")
	require.NotNil(t, apiErr)
	assert.Equal(t, "invalid_kind", apiErr.Code)

	_, apiErr = svc.Message(context.Background(), CoachKindNudge, "Exhausted")
	require.NotNil(t, apiErr)
	assert.Equal(t, "invalid_energy", apiErr.Code)
}

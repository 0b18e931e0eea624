package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"focuscontrol/internal/service"
)

type CoachHandler struct {
	coachService *service.CoachService
}

type coachRequest struct {
	Kind   string `json:"kind"`
	Energy string `json:"energy"`
}

func NewCoachHandler(coachService *service.CoachService) *CoachHandler {
	return &CoachHandler{coachService: coachService}
}

// Message always answers 200 for a well-formed request: an unreachable coach
// endpoint degrades to placeholder text, not an error.
func (h *CoachHandler) Message(c *gin.Context) {
	var req coachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}

	message, apiErr := h.coachService.Message(c.Request.Context(), req.Kind, req.Energy)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

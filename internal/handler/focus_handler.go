package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"focuscontrol/internal/service"
)

type FocusHandler struct {
	focusService *service.FocusService
}

type startSessionRequest struct {
	TaskID string `json:"taskId"`
	Mode   string `json:"mode"`
	Energy string `json:"energy"`
	Note   string `json:"note"`
}

type interruptionRequest struct {
	Content string `json:"content"`
}

func NewFocusHandler(focusService *service.FocusService) *FocusHandler {
	return &FocusHandler{focusService: focusService}
}

// State serves the once-per-second refresh tick.
func (h *FocusHandler) State(c *gin.Context) {
	state, apiErr := h.focusService.State(c.Request.Context())
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state})
}

func (h *FocusHandler) Start(c *gin.Context) {
	var req startSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}

	state, apiErr := h.focusService.Start(c.Request.Context(), service.StartSessionInput{
		TaskID: req.TaskID,
		Mode:   req.Mode,
		Energy: req.Energy,
		Note:   req.Note,
	})
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state})
}

func (h *FocusHandler) End(c *gin.Context) {
	state, apiErr := h.focusService.End(c.Request.Context())
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state})
}

func (h *FocusHandler) LogInterruption(c *gin.Context) {
	var req interruptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}

	interruption, apiErr := h.focusService.LogInterruption(c.Request.Context(), req.Content)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"interruption": interruption})
}

func (h *FocusHandler) SkipBreak(c *gin.Context) {
	state, apiErr := h.focusService.SkipBreak(c.Request.Context())
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state})
}

func (h *FocusHandler) SummaryToday(c *gin.Context) {
	summary, apiErr := h.focusService.SummaryToday(c.Request.Context())
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

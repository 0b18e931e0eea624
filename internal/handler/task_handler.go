package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"focuscontrol/internal/service"
)

type TaskHandler struct {
	taskService *service.TaskService
}

type createTaskRequest struct {
	Title           string `json:"title"`
	Context         string `json:"context"`
	EstimateMinutes int    `json:"estMinutes"`
	Tag             string `json:"tag"`
	Priority        int    `json:"priority"`
}

func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}

	task, apiErr := h.taskService.Create(c.Request.Context(), service.CreateTaskInput{
		Title:           req.Title,
		Context:         req.Context,
		EstimateMinutes: req.EstimateMinutes,
		Tag:             req.Tag,
		Priority:        req.Priority,
	})
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"task": task})
}

func (h *TaskHandler) ListOpen(c *gin.Context) {
	limit := 100
	if rawLimit := c.Query("limit"); rawLimit != "" {
		if parsed, err := strconv.Atoi(rawLimit); err == nil {
			limit = parsed
		}
	}

	tasks, apiErr := h.taskService.ListOpen(c.Request.Context(), limit)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

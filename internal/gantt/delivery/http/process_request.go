package http

import (
	"github.com/gin-gonic/gin"

	"project-management/internal/gantt"
)

func (h *handler) processProjectID(c *gin.Context) (string, error) {
	id := c.Param("projectId")
	if id == "" {
		return "", gantt.ErrEmptyID
	}
	return id, nil
}

// processUpdateDatesReq binds the body and resolves both date expressions.
func (h *handler) processUpdateDatesReq(c *gin.Context) (gantt.UpdateTaskDatesInput, error) {
	var req updateDatesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return gantt.UpdateTaskDatesInput{}, err
	}
	req.TaskID = c.Param("taskId")
	if req.TaskID == "" {
		return gantt.UpdateTaskDatesInput{}, gantt.ErrEmptyID
	}

	target, err := gantt.NewDateTarget(gantt.TaskKind(req.TaskType), req.TaskID)
	if err != nil {
		return gantt.UpdateTaskDatesInput{}, err
	}

	now := h.now()
	start, err := h.dates.ParseDate(req.StartDate, now)
	if err != nil {
		return gantt.UpdateTaskDatesInput{}, err
	}
	end, err := h.dates.ParseDate(req.EndDate, now)
	if err != nil {
		return gantt.UpdateTaskDatesInput{}, err
	}

	return gantt.UpdateTaskDatesInput{Target: target, StartDate: start, EndDate: end}, nil
}

// processUpdateProgressReq binds the body and resolves the progress target.
func (h *handler) processUpdateProgressReq(c *gin.Context) (gantt.UpdateTaskProgressInput, error) {
	var req updateProgressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return gantt.UpdateTaskProgressInput{}, err
	}
	req.TaskID = c.Param("taskId")
	if req.TaskID == "" {
		return gantt.UpdateTaskProgressInput{}, gantt.ErrEmptyID
	}
	return req.toInput()
}

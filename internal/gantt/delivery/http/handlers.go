package http

import (
	"github.com/gin-gonic/gin"

	"project-management/pkg/response"
)

// GetSchedule godoc
// @Summary     Get Gantt schedule
// @Description Rebuilds the project's tasks and finish-to-start links from its phases and work packages.
// @Tags        Gantt
// @Produce     json
// @Param       projectId path string true "Project ID"
// @Success     200 {object} response.Resp{data=scheduleResp}
// @Failure     404 {object} response.Resp "Project not found"
// @Failure     422 {object} response.Resp "Records without planned dates"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects/{projectId}/gantt [GET]
func (h *handler) GetSchedule(c *gin.Context) {
	ctx := c.Request.Context()

	projectID, err := h.processProjectID(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	schedule, err := h.uc.GetSchedule(ctx, projectID)
	if err != nil {
		h.l.Errorf(ctx, "gantt.http.GetSchedule: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newScheduleResp(schedule))
}

// GetCriticalPath godoc
// @Summary     Get critical path
// @Description Runs the critical path method over the project's schedule and returns slack per task.
// @Tags        Gantt
// @Produce     json
// @Param       projectId path string true "Project ID"
// @Success     200 {object} response.Resp{data=criticalPathResp}
// @Failure     404 {object} response.Resp "Project not found"
// @Failure     422 {object} response.Resp "Records without planned dates"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects/{projectId}/gantt/critical-path [GET]
func (h *handler) GetCriticalPath(c *gin.Context) {
	ctx := c.Request.Context()

	projectID, err := h.processProjectID(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	result, err := h.uc.GetCriticalPath(ctx, projectID)
	if err != nil {
		h.l.Errorf(ctx, "gantt.http.GetCriticalPath: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCriticalPathResp(result))
}

// UpdateTaskDates godoc
// @Summary     Update task dates
// @Description Writes new planned dates of a phase or work package. Dates accept YYYY-MM-DD, RFC 3339 or relative forms like "in 2 weeks".
// @Tags        Gantt
// @Accept      json
// @Produce     json
// @Param       projectId path string         true "Project ID"
// @Param       taskId    path string         true "Phase or work package ID"
// @Param       body      body updateDatesReq true "New planned range"
// @Success     200 {object} response.Resp{data=ackResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Task not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects/{projectId}/gantt/tasks/{taskId}/dates [PUT]
func (h *handler) UpdateTaskDates(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processUpdateDatesReq(c)
	if err != nil {
		h.l.Warnf(ctx, "gantt.http.UpdateTaskDates.processUpdateDatesReq: %v", err)
		response.ValidationError(c, err)
		return
	}

	if err := h.uc.UpdateTaskDates(ctx, input); err != nil {
		h.l.Errorf(ctx, "gantt.http.UpdateTaskDates: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, ackResp{Success: true})
}

// UpdateTaskProgress godoc
// @Summary     Update task progress
// @Description Writes the progress (0 to 1) of a project, phase or work package. Parents are not re-aggregated.
// @Tags        Gantt
// @Accept      json
// @Produce     json
// @Param       projectId path string            true "Project ID"
// @Param       taskId    path string            true "Task ID"
// @Param       body      body updateProgressReq true "New progress"
// @Success     200 {object} response.Resp{data=ackResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Task not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects/{projectId}/gantt/tasks/{taskId}/progress [PUT]
func (h *handler) UpdateTaskProgress(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processUpdateProgressReq(c)
	if err != nil {
		h.l.Warnf(ctx, "gantt.http.UpdateTaskProgress.processUpdateProgressReq: %v", err)
		response.ValidationError(c, err)
		return
	}

	if err := h.uc.UpdateTaskProgress(ctx, input); err != nil {
		h.l.Errorf(ctx, "gantt.http.UpdateTaskProgress: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, ackResp{Success: true})
}

package handlers

import (
	"errors"
	"net/http"

	"classtrack/models"
	schedule "classtrack/services/schedule"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler exposes schedule management endpoints.
type ScheduleHandler struct {
	Service schedule.ScheduleService
}

func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// respondScheduleError maps the service error taxonomy onto HTTP status codes.
// NotFound and Conflict are expected outcomes; anything else is a server error.
func respondScheduleError(c *gin.Context, err error) {
	var notFound schedule.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
		return
	}

	var conflict schedule.ConflictError
	if errors.As(err, &conflict) {
		resp := gin.H{"error": conflict.Message}
		if len(conflict.Conflicts) > 0 {
			resp["conflicts"] = conflict.Conflicts
		}
		c.JSON(http.StatusConflict, resp)
		return
	}

	var invalid schedule.InvalidRangeError
	if errors.As(err, &invalid) {
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
		return
	}

	if errors.Is(err, schedule.ErrEmptyBatch) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	getLogger(c).Error("schedule operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

func (h *ScheduleHandler) CreateScheduleHandler(c *gin.Context) {
	var req models.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	created, err := h.Service.CreateSchedule(c.Request.Context(), req)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"schedule": created})
}

func (h *ScheduleHandler) UpdateScheduleHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing schedule ID in path"})
		return
	}

	var req models.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	updated, err := h.Service.UpdateSchedule(c.Request.Context(), id, req)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": updated})
}

func (h *ScheduleHandler) DeleteScheduleHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing schedule ID in path"})
		return
	}

	if err := h.Service.DeleteSchedule(c.Request.Context(), id); err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted successfully"})
}

func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing schedule ID in path"})
		return
	}

	detail, err := h.Service.GetSchedule(c.Request.Context(), id)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *ScheduleHandler) ListSchedulesHandler(c *gin.Context) {
	classID := c.Param("classID")
	if classID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing class ID in path"})
		return
	}

	var q models.ListSchedulesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters", "message": err.Error()})
		return
	}

	resp, err := h.Service.ListSchedules(c.Request.Context(), classID, q)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BulkCreateSchedulesHandler accepts a batch of candidates. A partial success
// returns 201 with both the created subset and the skip list.
func (h *ScheduleHandler) BulkCreateSchedulesHandler(c *gin.Context) {
	var req models.BulkCreateSchedulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	result, err := h.Service.CreateBulk(c.Request.Context(), req)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *ScheduleHandler) WeeklyOverviewHandler(c *gin.Context) {
	classID := c.Param("classID")
	if classID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing class ID in path"})
		return
	}

	overview, err := h.Service.WeeklyOverview(c.Request.Context(), classID)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

func (h *ScheduleHandler) ScheduleStatsHandler(c *gin.Context) {
	classID := c.Param("classID")
	if classID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing class ID in path"})
		return
	}

	stats, err := h.Service.Stats(c.Request.Context(), classID)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

package handlers

import (
	"net/http"

	"classtrack/models"

	"github.com/gin-gonic/gin"
)

func (h *ScheduleHandler) CreateExceptionHandler(c *gin.Context) {
	var req models.CreateExceptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	created, err := h.Service.CreateException(c.Request.Context(), req)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"exception": created})
}

func (h *ScheduleHandler) UpdateExceptionHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing exception ID in path"})
		return
	}

	var req models.UpdateExceptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	updated, err := h.Service.UpdateException(c.Request.Context(), id, req)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exception": updated})
}

func (h *ScheduleHandler) DeleteExceptionHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing exception ID in path"})
		return
	}

	if err := h.Service.DeleteException(c.Request.Context(), id); err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Exception deleted successfully"})
}

func (h *ScheduleHandler) ListExceptionsHandler(c *gin.Context) {
	scheduleID := c.Param("id")
	if scheduleID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing schedule ID in path"})
		return
	}

	exceptions, err := h.Service.ListExceptions(c.Request.Context(), scheduleID)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exceptions": exceptions})
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"classtrack/models"
	classService "classtrack/services/class"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClassHandler exposes class management endpoints.
type ClassHandler struct {
	Service classService.ClassService
}

func NewClassHandler(svc classService.ClassService) *ClassHandler {
	return &ClassHandler{Service: svc}
}

func (h *ClassHandler) CreateClassHandler(c *gin.Context) {
	var req models.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	created, err := h.Service.CreateClass(c.Request.Context(), req)
	if err != nil {
		getLogger(c).Error("Failed to create class", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create class"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"class": created})
}

func (h *ClassHandler) GetClassHandler(c *gin.Context) {
	id := c.Param("classID")

	class, err := h.Service.GetClass(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, classService.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
			return
		}
		getLogger(c).Error("Failed to get class", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get class"})
		return
	}
	c.JSON(http.StatusOK, class)
}

func (h *ClassHandler) UpdateClassHandler(c *gin.Context) {
	id := c.Param("classID")

	var req models.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	updated, err := h.Service.UpdateClass(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, classService.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
			return
		}
		getLogger(c).Error("Failed to update class", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update class"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"class": updated})
}

func (h *ClassHandler) DeleteClassHandler(c *gin.Context) {
	id := c.Param("classID")

	if err := h.Service.DeleteClass(c.Request.Context(), id); err != nil {
		if errors.Is(err, classService.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
			return
		}
		getLogger(c).Error("Failed to delete class", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete class"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Class deleted successfully"})
}

func (h *ClassHandler) ListClassesHandler(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	resp, err := h.Service.ListClasses(c.Request.Context(), page, limit)
	if err != nil {
		getLogger(c).Error("Failed to list classes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list classes"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

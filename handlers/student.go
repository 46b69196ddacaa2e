package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"classtrack/models"
	studentService "classtrack/services/student"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StudentHandler exposes student, grade and attendance endpoints.
type StudentHandler struct {
	Service studentService.StudentService
}

func NewStudentHandler(svc studentService.StudentService) *StudentHandler {
	return &StudentHandler{Service: svc}
}

func respondStudentError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, studentService.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
	case errors.Is(err, studentService.ErrClassNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
	default:
		getLogger(c).Error("Student operation failed", zap.String("op", op), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + op})
	}
}

func (h *StudentHandler) CreateStudentHandler(c *gin.Context) {
	var req models.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	created, err := h.Service.CreateStudent(c.Request.Context(), req)
	if err != nil {
		respondStudentError(c, err, "create student")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"student": created})
}

func (h *StudentHandler) GetStudentHandler(c *gin.Context) {
	student, err := h.Service.GetStudent(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStudentError(c, err, "get student")
		return
	}
	c.JSON(http.StatusOK, student)
}

func (h *StudentHandler) UpdateStudentHandler(c *gin.Context) {
	var req models.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	updated, err := h.Service.UpdateStudent(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondStudentError(c, err, "update student")
		return
	}
	c.JSON(http.StatusOK, gin.H{"student": updated})
}

func (h *StudentHandler) DeleteStudentHandler(c *gin.Context) {
	if err := h.Service.DeleteStudent(c.Request.Context(), c.Param("id")); err != nil {
		respondStudentError(c, err, "delete student")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student deleted successfully"})
}

func (h *StudentHandler) ListStudentsHandler(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	resp, err := h.Service.ListStudents(c.Request.Context(), c.Param("classID"), page, limit)
	if err != nil {
		respondStudentError(c, err, "list students")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StudentHandler) AddGradeHandler(c *gin.Context) {
	var req models.AddGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	grade, err := h.Service.AddGrade(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondStudentError(c, err, "record grade")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"grade": grade})
}

func (h *StudentHandler) ListGradesHandler(c *gin.Context) {
	grades, err := h.Service.ListGrades(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStudentError(c, err, "list grades")
		return
	}
	c.JSON(http.StatusOK, gin.H{"grades": grades})
}

func (h *StudentHandler) MarkAttendanceHandler(c *gin.Context) {
	var req models.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	record, err := h.Service.MarkAttendance(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondStudentError(c, err, "record attendance")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"attendance": record})
}

func (h *StudentHandler) ListAttendanceHandler(c *gin.Context) {
	records, err := h.Service.ListAttendance(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStudentError(c, err, "list attendance")
		return
	}
	c.JSON(http.StatusOK, gin.H{"attendance": records})
}

package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kisan-backend/internal/models"
	"kisan-backend/internal/tasks"
)

type TaskHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Generate(c *gin.Context)
}

type taskHandler struct {
	tasks  *tasks.Service
	logger *zap.Logger
}

func NewTaskHandler(taskService *tasks.Service, logger *zap.Logger) TaskHandler {
	return &taskHandler{tasks: taskService, logger: logger}
}

type GenerateTasksRequest struct {
	CropType string       `json:"crop_type"`
	Region   string       `json:"region"`
	Date     *models.Date `json:"date,omitempty"`
	Language string       `json:"language"`
}

const msgTaskNotFound = "Task not found"

// List handles GET /api/v1/tasks?date=YYYY-MM-DD
func (h *taskHandler) List(c *gin.Context) {
	var date *models.Date
	if raw := c.Query("date"); raw != "" {
		d, err := models.ParseDate(raw)
		if err != nil {
			badRequest(c, err)
			return
		}
		date = &d
	}
	c.JSON(http.StatusOK, gin.H{"tasks": h.tasks.GetTasks(c.Request.Context(), currentUserID(c), date)})
}

// Create handles POST /api/v1/tasks
func (h *taskHandler) Create(c *gin.Context) {
	var req models.TaskCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	req.UserID = currentUserID(c)
	if err := req.Validate(); err != nil {
		badRequest(c, err)
		return
	}

	task, err := h.tasks.CreateTask(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("Failed to create task", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}
	c.JSON(http.StatusCreated, task)
}

// Update handles PUT /api/v1/tasks/:id
func (h *taskHandler) Update(c *gin.Context) {
	var req models.TaskUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if req.Priority != nil && !req.Priority.Valid() {
		badRequest(c, models.ErrInvalidPriority)
		return
	}
	if !h.owned(c) {
		return
	}

	task := h.tasks.UpdateTask(c.Request.Context(), c.Param("id"), req)
	if task == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": msgTaskNotFound})
		return
	}
	c.JSON(http.StatusOK, task)
}

// Delete handles DELETE /api/v1/tasks/:id
func (h *taskHandler) Delete(c *gin.Context) {
	if !h.owned(c) {
		return
	}
	if !h.tasks.DeleteTask(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": msgTaskNotFound})
		return
	}
	c.Status(http.StatusNoContent)
}

// Generate handles POST /api/v1/tasks/generate
func (h *taskHandler) Generate(c *gin.Context) {
	var req GenerateTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	date := models.NewDate(time.Now())
	if req.Date != nil && !req.Date.IsZero() {
		date = *req.Date
	}
	list := h.tasks.GenerateCropTasks(c.Request.Context(), currentUserID(c), req.CropType, req.Region, date, req.Language)
	c.JSON(http.StatusOK, gin.H{"tasks": list})
}

// owned writes a 404 unless the task exists and belongs to the caller.
func (h *taskHandler) owned(c *gin.Context) bool {
	task := h.tasks.GetTask(c.Request.Context(), c.Param("id"))
	if task == nil || task.UserID != currentUserID(c) {
		c.JSON(http.StatusNotFound, gin.H{"error": msgTaskNotFound})
		return false
	}
	return true
}

package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tasktrackr/models"
	"tasktrackr/repository"
)

// LegacyController serves the read-mostly v1 surface, kept byte-compatible
// for clients that never migrated off it.
type LegacyController struct {
	Tasks *repository.TaskRepository
}

// legacyRecord keeps the original v1 key spelling, spaces and all.
func legacyRecord(t models.Task) gin.H {
	return gin.H{
		"task_id":     t.TaskID,
		"task_name":   t.Name,
		"due_date":    t.DueDate.Format("2006-01-02"),
		"priority":    t.Priority,
		"posted date": t.PostedDate.Format("2006-01-02"),
		"status":      t.Status,
		"user id":     t.UserID,
	}
}

func (lc *LegacyController) ListTasks(c *gin.Context) {
	tasks, err := lc.Tasks.List(c.Request.Context(), repository.DefaultPageSize, 0)
	if err != nil {
		internalError(c, "list tasks", err)
		return
	}

	items := make([]gin.H, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, legacyRecord(t))
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (lc *LegacyController) GetTask(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("task_id"), 10, 64)
	if err != nil {
		elementDoesNotExist(c)
		return
	}

	task, err := lc.Tasks.FindByID(c.Request.Context(), uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		elementDoesNotExist(c)
		return
	}
	if err != nil {
		internalError(c, "get task", err)
		return
	}

	c.JSON(http.StatusOK, legacyRecord(*task))
}

type legacyAddInput struct {
	Task string `json:"task"`
}

// AddTask acknowledges the payload without persisting anything, exactly
// as v1 always behaved.
func (lc *LegacyController) AddTask(c *gin.Context) {
	var input legacyAddInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":      "POST was received",
		"task_to_add": input.Task,
	})
}

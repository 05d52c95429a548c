package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tasktrackr/constants"
	"tasktrackr/middleware"
	"tasktrackr/models"
	"tasktrackr/repository"
)

const dueDateLayout = "01/02/2006"

type TaskController struct {
	Tasks *repository.TaskRepository
}

type taskInput struct {
	Name    string `json:"name" binding:"required"`
	DueDate string `json:"due_date" binding:"required"`
	// Pointer so priority 0 still binds; required only rejects absence.
	Priority *int `json:"priority" binding:"required"`
}

func taskRecord(t models.Task) gin.H {
	return gin.H{
		"task_id":     t.TaskID,
		"name":        t.Name,
		"due_date":    t.DueDate.Format("2006-01-02"),
		"priority":    t.Priority,
		"posted_date": t.PostedDate.Format("2006-01-02"),
		"status":      t.Status,
		"user_id":     t.UserID,
	}
}

func elementDoesNotExist(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Element does not exist"})
}

func internalError(c *gin.Context, op string, err error) {
	log.Printf("%s: %v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func (tc *TaskController) ListTasks(c *gin.Context) {
	tasks, err := tc.Tasks.List(c.Request.Context(), repository.DefaultPageSize, 0)
	if err != nil {
		internalError(c, "list tasks", err)
		return
	}

	records := make([]gin.H, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, taskRecord(t))
	}

	c.JSON(http.StatusOK, records)
}

func (tc *TaskController) GetTask(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("task_id"), 10, 64)
	if err != nil {
		elementDoesNotExist(c)
		return
	}

	task, err := tc.Tasks.FindByID(c.Request.Context(), uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		elementDoesNotExist(c)
		return
	}
	if err != nil {
		internalError(c, "get task", err)
		return
	}

	c.JSON(http.StatusOK, taskRecord(*task))
}

func (tc *TaskController) CreateTask(c *gin.Context) {
	var input taskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	due, err := time.Parse(dueDateLayout, input.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "due_date must match MM/DD/YYYY"})
		return
	}

	user := middleware.CurrentUser(c)

	task := models.Task{
		Name:       input.Name,
		DueDate:    due,
		Priority:   *input.Priority,
		PostedDate: time.Now().UTC(),
		Status:     constants.TaskStatusOpen,
		UserID:     user.ID,
	}

	if err := tc.Tasks.Create(c.Request.Context(), &task); err != nil {
		internalError(c, "create task", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":     "Entry was successfully posted",
		"task added": task.Name,
	})
}

func (tc *TaskController) UpdateTask(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("task_id"), 10, 64)
	if err != nil {
		elementDoesNotExist(c)
		return
	}

	var input taskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	due, err := time.Parse(dueDateLayout, input.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "due_date must match MM/DD/YYYY"})
		return
	}

	task, err := tc.Tasks.FindByID(c.Request.Context(), uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		elementDoesNotExist(c)
		return
	}
	if err != nil {
		internalError(c, "update task", err)
		return
	}

	// Full replace of the user-supplied fields; status and owner stay.
	task.Name = input.Name
	task.DueDate = due
	task.Priority = *input.Priority
	task.PostedDate = time.Now().UTC()

	rows, err := tc.Tasks.Update(c.Request.Context(), task)
	if err != nil {
		internalError(c, "update task", err)
		return
	}
	if rows == 0 {
		elementDoesNotExist(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "task updated successfully"})
}

func (tc *TaskController) DeleteTask(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("task_id"), 10, 64)
	if err != nil {
		elementDoesNotExist(c)
		return
	}

	rows, err := tc.Tasks.Delete(c.Request.Context(), uint(id))
	if err != nil {
		internalError(c, "delete task", err)
		return
	}
	if rows == 0 {
		elementDoesNotExist(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "task deleted"})
}

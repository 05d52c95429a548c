package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tasktrackr/constants"
	"tasktrackr/models"
)

// DefaultPageSize caps the collection listing, matching the legacy API.
const DefaultPageSize = 10

// TaskRepository handles CRUD for tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (r *TaskRepository) List(ctx context.Context, limit, offset int) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.WithContext(ctx).Limit(limit).Offset(offset).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, taskID uint) (*models.Task, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).Where("task_id = ?", taskID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Update replaces the mutable fields of a task and reports how many rows
// were written. Zero rows means the task was gone by the time we wrote.
func (r *TaskRepository) Update(ctx context.Context, task *models.Task) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Task{}).
		Where("task_id = ?", task.TaskID).
		Updates(map[string]any{
			"name":        task.Name,
			"due_date":    task.DueDate,
			"priority":    task.Priority,
			"posted_date": task.PostedDate,
		})
	if res.Error != nil {
		return 0, fmt.Errorf("update task: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// Delete removes a task by id and reports how many rows went away.
func (r *TaskRepository) Delete(ctx context.Context, taskID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("task_id = ?", taskID).Delete(&models.Task{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete task: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// OpenTasks lists tasks still open, soonest due first.
func (r *TaskRepository) OpenTasks(ctx context.Context) ([]models.Task, error) {
	return r.byStatus(ctx, constants.TaskStatusOpen)
}

// ClosedTasks lists completed tasks, soonest due first.
func (r *TaskRepository) ClosedTasks(ctx context.Context) ([]models.Task, error) {
	return r.byStatus(ctx, constants.TaskStatusClosed)
}

func (r *TaskRepository) byStatus(ctx context.Context, status int) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.WithContext(ctx).Where("status = ?", status).
		Order("due_date asc").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

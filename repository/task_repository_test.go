package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tasktrackr/constants"
	"tasktrackr/models"
)

func newTestRepo(t *testing.T) *TaskRepository {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Task{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return NewTaskRepository(db)
}

func mustCreate(t *testing.T, repo *TaskRepository, task models.Task) models.Task {
	t.Helper()
	if err := repo.Create(context.Background(), &task); err != nil {
		t.Fatalf("create task %q: %v", task.Name, err)
	}
	return task
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestOpenAndClosedTasksOrderByDueDate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	mustCreate(t, repo, models.Task{Name: "done", DueDate: day(2016, 1, 1), Priority: 1, Status: constants.TaskStatusClosed})
	mustCreate(t, repo, models.Task{Name: "later", DueDate: day(2016, 3, 1), Priority: 1, Status: constants.TaskStatusOpen})
	mustCreate(t, repo, models.Task{Name: "sooner", DueDate: day(2016, 2, 1), Priority: 1, Status: constants.TaskStatusOpen})

	open, err := repo.OpenTasks(ctx)
	if err != nil {
		t.Fatalf("open tasks: %v", err)
	}
	if len(open) != 2 {
		t.Fatalf("open=%d, want 2", len(open))
	}
	if open[0].Name != "sooner" || open[1].Name != "later" {
		t.Fatalf("open tasks out of order: %v, %v", open[0].Name, open[1].Name)
	}

	closed, err := repo.ClosedTasks(ctx)
	if err != nil {
		t.Fatalf("closed tasks: %v", err)
	}
	if len(closed) != 1 || closed[0].Name != "done" {
		t.Fatalf("unexpected closed tasks: %+v", closed)
	}
}

func TestCreatePersistsClosedStatus(t *testing.T) {
	repo := newTestRepo(t)

	task := mustCreate(t, repo, models.Task{Name: "already done", DueDate: day(2016, 1, 1), Priority: 1, Status: constants.TaskStatusClosed})

	got, err := repo.FindByID(context.Background(), task.TaskID)
	if err != nil {
		t.Fatalf("reload task: %v", err)
	}
	if got.Status != constants.TaskStatusClosed {
		t.Fatalf("status=%d after creating a closed task, want %d", got.Status, constants.TaskStatusClosed)
	}
}

func TestListHonorsLimitAndOffset(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < DefaultPageSize+2; i++ {
		mustCreate(t, repo, models.Task{
			Name:     fmt.Sprintf("task %d", i),
			DueDate:  day(2016, 1, 1+i),
			Priority: 1,
			Status:   constants.TaskStatusOpen,
		})
	}

	page, err := repo.List(ctx, DefaultPageSize, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page) != DefaultPageSize {
		t.Fatalf("page=%d, want %d", len(page), DefaultPageSize)
	}

	rest, err := repo.List(ctx, DefaultPageSize, DefaultPageSize)
	if err != nil {
		t.Fatalf("list offset: %v", err)
	}
	if len(rest) != 2 {
		t.Fatalf("rest=%d, want 2", len(rest))
	}
}

func TestUpdateReportsMissingRow(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	ghost := models.Task{TaskID: 99, Name: "ghost", DueDate: day(2016, 1, 1), Priority: 1}
	rows, err := repo.Update(ctx, &ghost)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if rows != 0 {
		t.Fatalf("rows=%d for missing task, want 0", rows)
	}
}

func TestDeleteReportsMissingRow(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	task := mustCreate(t, repo, models.Task{Name: "one shot", DueDate: day(2016, 1, 1), Priority: 1, Status: constants.TaskStatusOpen})

	rows, err := repo.Delete(ctx, task.TaskID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if rows != 1 {
		t.Fatalf("rows=%d, want 1", rows)
	}

	rows, err = repo.Delete(ctx, task.TaskID)
	if err != nil {
		t.Fatalf("repeat delete: %v", err)
	}
	if rows != 0 {
		t.Fatalf("rows=%d on repeat delete, want 0", rows)
	}
}

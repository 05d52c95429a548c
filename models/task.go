package models

import "time"

// Task is a single to-do item. Due and posted dates travel as strings on
// the wire (MM/DD/YYYY in, ISO out) and are stored as date values.
type Task struct {
	TaskID     uint      `gorm:"primaryKey;column:task_id" json:"task_id"`
	Name       string    `gorm:"not null" json:"name"`
	DueDate    time.Time `gorm:"type:date;not null" json:"due_date"`
	Priority   int       `gorm:"not null" json:"priority"`
	PostedDate time.Time `gorm:"type:date" json:"posted_date"`
	Status     int       `gorm:"not null" json:"status"`
	UserID     uint      `gorm:"index" json:"user_id"`
}

func (Task) TableName() string {
	return "tasks"
}

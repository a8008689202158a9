package models

import "time"

type TaskStatus string

// Conventional statuses. The column is free-form; nothing below is enforced
// at the storage layer.
const (
	TaskStatusNew        TaskStatus = "NEW"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
)

type Task struct {
	ID        uint64     `gorm:"primarykey" json:"id"`
	ProjectID uint64     `gorm:"not null;index" json:"project_id"`
	Name      string     `gorm:"type:varchar(255);not null" json:"name"`
	Status    TaskStatus `gorm:"type:varchar(20)" json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}

package repository

import (
	"github.com/eqb/projects-api/internal/models"
)

// Absent rows surface as gorm.ErrRecordNotFound from every lookup; callers
// treat that as a normal outcome, not a failure.

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID
	FindByID(id uint64) (*models.Project, error)

	// List retrieves all projects, optionally windowed by offset/limit
	// (limit <= 0 means no window)
	List(offset, limit int) ([]models.Project, int64, error)

	// Update persists changes to a project
	Update(project *models.Project) error

	// Delete deletes a project and its tasks in one transaction
	Delete(id uint64) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// ListByProject retrieves all tasks belonging to a project
	ListByProject(projectID uint64) ([]models.Task, error)

	// Update persists changes to a task
	Update(task *models.Task) error

	// Delete deletes a task
	Delete(id uint64) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// FindByToken finds a user holding the given token string
	FindByToken(token string) (*models.User, error)

	// List retrieves all users ordered by username, optionally windowed
	List(offset, limit int) ([]models.User, int64, error)

	// Update persists changes to a user
	Update(user *models.User) error

	// Delete deletes a user
	Delete(id uint64) error
}

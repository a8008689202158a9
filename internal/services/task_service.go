package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/eqb/projects-api/internal/models"
	"github.com/eqb/projects-api/internal/repository"
)

// ErrTaskNotFound covers both a missing task and a task reached through the
// wrong project: an update naming an existing task under a mismatched
// project path must not reveal or touch it.
var ErrTaskNotFound = errors.New("task not found")

// TaskService handles task business logic
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
	}
}

// CreateTask creates a new task under a project
func (s *TaskService) CreateTask(projectID uint64, name string, status models.TaskStatus) (*models.Task, error) {
	if err := s.ensureProjectExists(projectID); err != nil {
		return nil, err
	}

	task := &models.Task{
		ProjectID: projectID,
		Name:      name,
		Status:    status,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// ListTasks returns all tasks belonging to a project
func (s *TaskService) ListTasks(projectID uint64) ([]models.Task, error) {
	if err := s.ensureProjectExists(projectID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.ListByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// UpdateTaskStatus mutates a task's status. The stored row is only touched
// when its project_id matches the supplied one.
func (s *TaskService) UpdateTaskStatus(projectID, taskID uint64, status models.TaskStatus) (*models.Task, error) {
	task, err := s.findInProject(projectID, taskID)
	if err != nil {
		return nil, err
	}

	task.Status = status

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// DeleteTask deletes a task, subject to the same project-matching rule as
// status updates
func (s *TaskService) DeleteTask(projectID, taskID uint64) error {
	task, err := s.findInProject(projectID, taskID)
	if err != nil {
		return err
	}

	if err := s.taskRepo.Delete(task.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

func (s *TaskService) findInProject(projectID, taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if task.ProjectID != projectID {
		return nil, ErrTaskNotFound
	}

	return task, nil
}

func (s *TaskService) ensureProjectExists(projectID uint64) error {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to find project: %w", err)
	}
	return nil
}

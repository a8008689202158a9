package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eqb/projects-api/internal/models"
	"github.com/eqb/projects-api/internal/repository"
)

type taskServiceEnv struct {
	tasks    *TaskService
	projects *ProjectService
}

func newTaskServiceEnv(t *testing.T) taskServiceEnv {
	t.Helper()

	taskRepo := repository.NewMemoryTaskRepository()
	projectRepo := repository.NewMemoryProjectRepository(taskRepo)

	return taskServiceEnv{
		tasks:    NewTaskService(taskRepo, projectRepo),
		projects: NewProjectService(projectRepo),
	}
}

func TestTaskService_CreateAndList(t *testing.T) {
	env := newTaskServiceEnv(t)

	project, err := env.projects.CreateProject("P", "")
	require.NoError(t, err)

	task, err := env.tasks.CreateTask(project.ID, "T", models.TaskStatusNew)
	require.NoError(t, err)
	require.NotZero(t, task.ID)

	tasks, err := env.tasks.ListTasks(project.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "T", tasks[0].Name)
	require.Equal(t, models.TaskStatusNew, tasks[0].Status)
}

func TestTaskService_Create_ProjectMissing(t *testing.T) {
	env := newTaskServiceEnv(t)

	_, err := env.tasks.CreateTask(42, "T", models.TaskStatusNew)
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestTaskService_List_ProjectMissing(t *testing.T) {
	env := newTaskServiceEnv(t)

	_, err := env.tasks.ListTasks(42)
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestTaskService_UpdateStatus(t *testing.T) {
	env := newTaskServiceEnv(t)

	project, err := env.projects.CreateProject("P", "")
	require.NoError(t, err)

	task, err := env.tasks.CreateTask(project.ID, "T", models.TaskStatusNew)
	require.NoError(t, err)

	updated, err := env.tasks.UpdateTaskStatus(project.ID, task.ID, models.TaskStatusCompleted)
	require.NoError(t, err)
	require.Equal(t, models.TaskStatusCompleted, updated.Status)
}

func TestTaskService_UpdateStatus_ProjectMismatch(t *testing.T) {
	env := newTaskServiceEnv(t)

	owner, err := env.projects.CreateProject("Owner", "")
	require.NoError(t, err)
	other, err := env.projects.CreateProject("Other", "")
	require.NoError(t, err)

	task, err := env.tasks.CreateTask(owner.ID, "T", models.TaskStatusNew)
	require.NoError(t, err)

	// Reaching an existing task through the wrong project must not reveal
	// or mutate it.
	_, err = env.tasks.UpdateTaskStatus(other.ID, task.ID, models.TaskStatusCompleted)
	require.ErrorIs(t, err, ErrTaskNotFound)

	tasks, err := env.tasks.ListTasks(owner.ID)
	require.NoError(t, err)
	require.Equal(t, models.TaskStatusNew, tasks[0].Status)
}

func TestTaskService_UpdateStatus_TaskMissing(t *testing.T) {
	env := newTaskServiceEnv(t)

	project, err := env.projects.CreateProject("P", "")
	require.NoError(t, err)

	_, err = env.tasks.UpdateTaskStatus(project.ID, 42, models.TaskStatusCompleted)
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskService_Delete(t *testing.T) {
	env := newTaskServiceEnv(t)

	project, err := env.projects.CreateProject("P", "")
	require.NoError(t, err)

	task, err := env.tasks.CreateTask(project.ID, "T", models.TaskStatusNew)
	require.NoError(t, err)

	require.NoError(t, env.tasks.DeleteTask(project.ID, task.ID))

	tasks, err := env.tasks.ListTasks(project.ID)
	require.NoError(t, err)
	require.Empty(t, tasks)
}

func TestTaskService_Delete_ProjectMismatch(t *testing.T) {
	env := newTaskServiceEnv(t)

	owner, err := env.projects.CreateProject("Owner", "")
	require.NoError(t, err)
	other, err := env.projects.CreateProject("Other", "")
	require.NoError(t, err)

	task, err := env.tasks.CreateTask(owner.ID, "T", models.TaskStatusNew)
	require.NoError(t, err)

	require.ErrorIs(t, env.tasks.DeleteTask(other.ID, task.ID), ErrTaskNotFound)

	tasks, err := env.tasks.ListTasks(owner.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
}

package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/eqb/projects-api/internal/models"
)

func TestGormProjectRepository_CRUD(t *testing.T) {
	repo := NewProjectRepository(setupTestDB(t))

	project := &models.Project{Name: "Apollo", Description: "Moonshot"}
	require.NoError(t, repo.Create(project))
	require.NotZero(t, project.ID)

	found, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	require.Equal(t, "Apollo", found.Name)
	require.Equal(t, "Moonshot", found.Description)

	found.Name = "Artemis"
	require.NoError(t, repo.Update(found))

	updated, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	require.Equal(t, "Artemis", updated.Name)

	require.NoError(t, repo.Delete(project.ID))

	_, err = repo.FindByID(project.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGormProjectRepository_DeleteCascadesTasks(t *testing.T) {
	db := setupTestDB(t)
	projects := NewProjectRepository(db)
	tasks := NewTaskRepository(db)

	project := &models.Project{Name: "Apollo"}
	require.NoError(t, projects.Create(project))

	other := &models.Project{Name: "Gemini"}
	require.NoError(t, projects.Create(other))

	require.NoError(t, tasks.Create(&models.Task{ProjectID: project.ID, Name: "Build rocket", Status: models.TaskStatusNew}))
	require.NoError(t, tasks.Create(&models.Task{ProjectID: project.ID, Name: "Launch", Status: models.TaskStatusNew}))
	require.NoError(t, tasks.Create(&models.Task{ProjectID: other.ID, Name: "Dock", Status: models.TaskStatusNew}))

	require.NoError(t, projects.Delete(project.ID))

	orphans, err := tasks.ListByProject(project.ID)
	require.NoError(t, err)
	require.Empty(t, orphans)

	kept, err := tasks.ListByProject(other.ID)
	require.NoError(t, err)
	require.Len(t, kept, 1)
}

func TestGormProjectRepository_List(t *testing.T) {
	repo := NewProjectRepository(setupTestDB(t))

	require.NoError(t, repo.Create(&models.Project{Name: "One"}))
	require.NoError(t, repo.Create(&models.Project{Name: "Two"}))
	require.NoError(t, repo.Create(&models.Project{Name: "Three"}))

	all, total, err := repo.List(0, 0)
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Len(t, all, 3)

	page, total, err := repo.List(2, 2)
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Len(t, page, 1)
	require.Equal(t, "Three", page[0].Name)
}

package repository

import (
	"sort"
	"sync"

	"gorm.io/gorm"

	"github.com/eqb/projects-api/internal/models"
)

// In-memory repository implementations with the same error contract as the
// GORM ones: gorm.ErrRecordNotFound for absent rows, gorm.ErrDuplicatedKey
// for unique-index violations. Tests substitute these for the real storage.

// MemoryProjectRepository holds projects in a map keyed by ID.
type MemoryProjectRepository struct {
	mu     sync.Mutex
	nextID uint64
	rows   map[uint64]models.Project

	tasks *MemoryTaskRepository
}

// NewMemoryProjectRepository creates an in-memory ProjectRepository. The
// task repository is used for cascading deletes; nil disables the cascade.
func NewMemoryProjectRepository(tasks *MemoryTaskRepository) *MemoryProjectRepository {
	return &MemoryProjectRepository{
		nextID: 1,
		rows:   make(map[uint64]models.Project),
		tasks:  tasks,
	}
}

func (r *MemoryProjectRepository) Create(project *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	project.ID = r.nextID
	r.nextID++
	r.rows[project.ID] = *project
	return nil
}

func (r *MemoryProjectRepository) FindByID(id uint64) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *MemoryProjectRepository) List(offset, limit int) ([]models.Project, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	projects := make([]models.Project, 0, len(r.rows))
	for _, row := range r.rows {
		projects = append(projects, row)
	}
	sort.Slice(projects, func(i, j int) bool { return projects[i].ID < projects[j].ID })

	total := int64(len(projects))
	return window(projects, offset, limit), total, nil
}

func (r *MemoryProjectRepository) Update(project *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows[project.ID] = *project
	return nil
}

func (r *MemoryProjectRepository) Delete(id uint64) error {
	r.mu.Lock()
	delete(r.rows, id)
	r.mu.Unlock()

	if r.tasks != nil {
		r.tasks.deleteByProject(id)
	}
	return nil
}

// MemoryTaskRepository holds tasks in a map keyed by ID.
type MemoryTaskRepository struct {
	mu     sync.Mutex
	nextID uint64
	rows   map[uint64]models.Task
}

// NewMemoryTaskRepository creates an in-memory TaskRepository.
func NewMemoryTaskRepository() *MemoryTaskRepository {
	return &MemoryTaskRepository{
		nextID: 1,
		rows:   make(map[uint64]models.Task),
	}
}

func (r *MemoryTaskRepository) Create(task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task.ID = r.nextID
	r.nextID++
	r.rows[task.ID] = *task
	return nil
}

func (r *MemoryTaskRepository) FindByID(id uint64) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *MemoryTaskRepository) ListByProject(projectID uint64) ([]models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var tasks []models.Task
	for _, row := range r.rows {
		if row.ProjectID == projectID {
			tasks = append(tasks, row)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

func (r *MemoryTaskRepository) Update(task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows[task.ID] = *task
	return nil
}

func (r *MemoryTaskRepository) Delete(id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.rows, id)
	return nil
}

func (r *MemoryTaskRepository) deleteByProject(projectID uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, row := range r.rows {
		if row.ProjectID == projectID {
			delete(r.rows, id)
		}
	}
}

// MemoryUserRepository holds users in a map keyed by ID and emulates the
// unique indexes on username, email and token.
type MemoryUserRepository struct {
	mu     sync.Mutex
	nextID uint64
	rows   map[uint64]models.User
}

// NewMemoryUserRepository creates an in-memory UserRepository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		nextID: 1,
		rows:   make(map[uint64]models.User),
	}
}

func (r *MemoryUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.rows {
		if row.Username == user.Username || row.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
		if user.Token != nil && row.Token != nil && *row.Token == *user.Token {
			return gorm.ErrDuplicatedKey
		}
	}

	user.ID = r.nextID
	r.nextID++
	r.rows[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) FindByID(id uint64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *MemoryUserRepository) FindByUsername(username string) (*models.User, error) {
	return r.findBy(func(u models.User) bool { return u.Username == username })
}

func (r *MemoryUserRepository) FindByEmail(email string) (*models.User, error) {
	return r.findBy(func(u models.User) bool { return u.Email == email })
}

func (r *MemoryUserRepository) FindByToken(token string) (*models.User, error) {
	return r.findBy(func(u models.User) bool { return u.Token != nil && *u.Token == token })
}

func (r *MemoryUserRepository) List(offset, limit int) ([]models.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]models.User, 0, len(r.rows))
	for _, row := range r.rows {
		users = append(users, row)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })

	total := int64(len(users))
	return window(users, offset, limit), total, nil
}

func (r *MemoryUserRepository) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) Delete(id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.rows, id)
	return nil
}

func (r *MemoryUserRepository) findBy(match func(models.User) bool) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.rows {
		if match(row) {
			user := row
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func window[T any](rows []T, offset, limit int) []T {
	if limit <= 0 {
		return rows
	}
	if offset >= len(rows) {
		return []T{}
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}

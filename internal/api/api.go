package api

import (
	"nelo/internal/domain"
	"nelo/internal/errors"
	"nelo/internal/repository"
	"nelo/internal/session"
	"nelo/internal/view"
)

// API defines the interface for all session and task operations. Task
// operations require an authenticated session; calls made while signed
// out fail with a permission error and never touch the collection.
type API interface {
	// Session operations
	Login(creds domain.Credentials) (domain.Principal, error)
	Logout() error
	Restore() (domain.Principal, bool)
	CurrentPrincipal() (domain.Principal, bool)

	// Task operations
	AddTask(title string, opts repository.AddOptions) (domain.Task, error)
	UpdateTask(id string, patch domain.TaskPatch) (domain.Task, error)
	ToggleTask(id string) (domain.Task, error)
	DeleteTask(id string) error
	ClearCompleted() (int, error)
	ListTasks() ([]domain.Task, error)
	QueryTasks(query view.Query) ([]domain.Task, error)
	PendingTitles() ([]string, error)
}

type apiImpl struct {
	sessions *session.Controller
	tasks    *repository.TaskRepository
}

// New creates a new API instance over the given session controller and
// task repository.
func New(sessions *session.Controller, tasks *repository.TaskRepository) API {
	return &apiImpl{
		sessions: sessions,
		tasks:    tasks,
	}
}

// requireSession gates every task operation.
func (a *apiImpl) requireSession() error {
	if !a.sessions.Authenticated() {
		return errors.NewPermissionError("access", "tasks")
	}
	return nil
}

func (a *apiImpl) Login(creds domain.Credentials) (domain.Principal, error) {
	return a.sessions.Login(creds)
}

func (a *apiImpl) Logout() error {
	return a.sessions.Logout()
}

func (a *apiImpl) Restore() (domain.Principal, bool) {
	return a.sessions.Restore()
}

func (a *apiImpl) CurrentPrincipal() (domain.Principal, bool) {
	return a.sessions.Principal()
}

func (a *apiImpl) AddTask(title string, opts repository.AddOptions) (domain.Task, error) {
	if err := a.requireSession(); err != nil {
		return domain.Task{}, err
	}
	return a.tasks.Add(title, opts)
}

func (a *apiImpl) UpdateTask(id string, patch domain.TaskPatch) (domain.Task, error) {
	if err := a.requireSession(); err != nil {
		return domain.Task{}, err
	}
	return a.tasks.Update(id, patch)
}

func (a *apiImpl) ToggleTask(id string) (domain.Task, error) {
	if err := a.requireSession(); err != nil {
		return domain.Task{}, err
	}
	return a.tasks.ToggleCompleted(id)
}

func (a *apiImpl) DeleteTask(id string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	return a.tasks.Delete(id)
}

func (a *apiImpl) ClearCompleted() (int, error) {
	if err := a.requireSession(); err != nil {
		return 0, err
	}
	return a.tasks.ClearCompleted()
}

func (a *apiImpl) ListTasks() ([]domain.Task, error) {
	if err := a.requireSession(); err != nil {
		return nil, err
	}
	return a.tasks.List(), nil
}

func (a *apiImpl) QueryTasks(query view.Query) ([]domain.Task, error) {
	if err := a.requireSession(); err != nil {
		return nil, err
	}
	return view.Compute(a.tasks.List(), query), nil
}

// PendingTitles returns the titles of the open tasks, for the reminder
// ticker. Gated like every other task read: a signed-out watcher sees
// nothing.
func (a *apiImpl) PendingTitles() ([]string, error) {
	if err := a.requireSession(); err != nil {
		return nil, err
	}
	var titles []string
	for _, task := range a.tasks.List() {
		if !task.Completed {
			titles = append(titles, task.Title)
		}
	}
	return titles, nil
}

package repository

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"nelo/internal/domain"
	"nelo/internal/errors"
	"nelo/internal/logging"
	"nelo/internal/store"
	"nelo/internal/validation"
)

// timeNow and newID are variables so tests can pin ids and timestamps
var (
	timeNow = time.Now
	newID   = uuid.NewString
)

// AddOptions carries the optional fields of a new task. The zero value
// yields a medium-priority task with no description and no due date.
type AddOptions struct {
	Description string
	Priority    domain.Priority
	DueDate     *domain.Date
}

// TaskRepository owns the in-memory task collection and mirrors every
// mutation to the persistent store as one whole-collection write. The
// mutex makes each read-modify-write plus its mirror atomic, so the
// persisted blob always reflects the last applied mutation.
type TaskRepository struct {
	mu            sync.Mutex
	store         store.Store
	key           string
	tasks         []domain.Task
	taskValidator *validation.TaskValidator
}

// New creates a repository backed by the given store, loading the
// collection once from the configured key. A missing or unparsable blob
// degrades to an empty collection; the caller never sees a read error.
func New(s store.Store, key string) *TaskRepository {
	r := &TaskRepository{
		store:         s,
		key:           key,
		taskValidator: validation.NewTaskValidator(),
	}
	r.tasks = r.load()
	return r
}

// load reads the persisted collection, recovering to empty on any error.
func (r *TaskRepository) load() []domain.Task {
	data, ok, err := r.store.Get(r.key)
	if err != nil {
		logging.Debugf("task blob read failed, starting empty: %v\n", err)
		return []domain.Task{}
	}
	if !ok {
		return []domain.Task{}
	}

	var tasks []domain.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		logging.Debugf("task blob unparsable, starting empty: %v\n", err)
		return []domain.Task{}
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks
}

// List returns a snapshot of the collection in storage (insertion,
// newest-first) order. The caller may not observe later mutations
// through the returned slice.
func (r *TaskRepository) List() []domain.Task {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

// Count returns the number of tasks in the collection.
func (r *TaskRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tasks)
}

// Add validates the title, constructs a task with a fresh unique id and
// the current timestamp, prepends it (newest first) and persists. A
// validation failure leaves the collection unchanged and writes nothing.
func (r *TaskRepository) Add(title string, opts AddOptions) (domain.Task, error) {
	priority := opts.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	if err := r.taskValidator.ValidateTaskForCreation(title, priority); err != nil {
		return domain.Task{}, errors.NewValidationError("invalid task", err)
	}
	cleanedTitle, err := r.taskValidator.GetValidTitle(title)
	if err != nil {
		return domain.Task{}, errors.NewValidationError("invalid task", err)
	}

	task := domain.Task{
		ID:          newID(),
		Title:       cleanedTitle,
		Description: opts.Description,
		Completed:   false,
		Priority:    priority,
		CreatedAt:   timeNow(),
	}
	if opts.DueDate != nil {
		due := *opts.DueDate
		task.DueDate = &due
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]domain.Task, 0, len(r.tasks)+1)
	next = append(next, task)
	next = append(next, r.tasks...)

	if err := r.persistLocked(next); err != nil {
		return domain.Task{}, err
	}
	r.tasks = next
	return task, nil
}

// Update applies a partial patch to the task with the given id and
// persists. The title, if patched, must pass the same validation as on
// creation. Returns the updated task.
func (r *TaskRepository) Update(id string, patch domain.TaskPatch) (domain.Task, error) {
	if err := r.taskValidator.ValidatePatch(patch); err != nil {
		return domain.Task{}, errors.NewValidationError("invalid task update", err)
	}
	if patch.Title != nil {
		cleaned, err := r.taskValidator.GetValidTitle(*patch.Title)
		if err != nil {
			return domain.Task{}, errors.NewValidationError("invalid task update", err)
		}
		patch.Title = &cleaned
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	index := r.indexOfLocked(id)
	if index < 0 {
		return domain.Task{}, errors.NewNotFoundError("task", id)
	}

	next := r.snapshotLocked()
	next[index] = patch.Apply(next[index])

	if err := r.persistLocked(next); err != nil {
		return domain.Task{}, err
	}
	r.tasks = next
	return next[index], nil
}

// ToggleCompleted flips the completed flag of the task with the given
// id and persists. Returns the updated task.
func (r *TaskRepository) ToggleCompleted(id string) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	index := r.indexOfLocked(id)
	if index < 0 {
		return domain.Task{}, errors.NewNotFoundError("task", id)
	}

	next := r.snapshotLocked()
	next[index].Completed = !next[index].Completed

	if err := r.persistLocked(next); err != nil {
		return domain.Task{}, err
	}
	r.tasks = next
	return next[index], nil
}

// Delete removes the task with the given id. Deleting a missing id is
// a no-op: the user-visible outcome (task absent) is already satisfied.
// No write is issued unless something was removed.
func (r *TaskRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	index := r.indexOfLocked(id)
	if index < 0 {
		return nil
	}

	next := make([]domain.Task, 0, len(r.tasks)-1)
	next = append(next, r.tasks[:index]...)
	next = append(next, r.tasks[index+1:]...)

	if err := r.persistLocked(next); err != nil {
		return err
	}
	r.tasks = next
	return nil
}

// ClearCompleted removes every completed task and returns how many were
// removed. Nothing is written when there was nothing to remove.
func (r *TaskRepository) ClearCompleted() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]domain.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		if !task.Completed {
			next = append(next, task)
		}
	}

	removed := len(r.tasks) - len(next)
	if removed == 0 {
		return 0, nil
	}

	if err := r.persistLocked(next); err != nil {
		return 0, err
	}
	r.tasks = next
	return removed, nil
}

// indexOfLocked finds a task by id. Callers must hold the mutex.
func (r *TaskRepository) indexOfLocked(id string) int {
	for i, task := range r.tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}

// snapshotLocked copies the collection. Callers must hold the mutex.
func (r *TaskRepository) snapshotLocked() []domain.Task {
	snapshot := make([]domain.Task, len(r.tasks))
	copy(snapshot, r.tasks)
	return snapshot
}

// persistLocked writes the full collection to the store. The in-memory
// collection is only replaced after a successful write, so memory and
// mirror never diverge.
func (r *TaskRepository) persistLocked(tasks []domain.Task) error {
	data, err := json.Marshal(tasks)
	if err != nil {
		return errors.NewStorageError("encode tasks", err)
	}
	if err := r.store.Put(r.key, data); err != nil {
		return errors.NewStorageError("write tasks", err)
	}
	return nil
}

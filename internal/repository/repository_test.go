package repository

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nelo/internal/domain"
	"nelo/internal/errors"
	"nelo/internal/store"
)

const tasksKey = "tasks"

// countingStore wraps a Store and counts Put calls so tests can assert
// on the exactly-one-write-per-mutation contract.
type countingStore struct {
	store.Store
	puts int
}

func (c *countingStore) Put(key string, value []byte) error {
	c.puts++
	return c.Store.Put(key, value)
}

func newTestRepo(t *testing.T) (*TaskRepository, *countingStore) {
	t.Helper()
	counting := &countingStore{Store: store.NewMemory()}
	return New(counting, tasksKey), counting
}

func TestAddThenList(t *testing.T) {
	repo, counting := newTestRepo(t)

	task, err := repo.Add("Buy milk", AddOptions{})
	require.NoError(t, err)

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "Buy milk", task.Title)
	assert.False(t, task.Completed)
	assert.Equal(t, domain.PriorityMedium, task.Priority)
	assert.False(t, task.CreatedAt.IsZero())
	assert.Equal(t, 1, counting.puts)

	tasks := repo.List()
	require.Len(t, tasks, 1)
	assert.Equal(t, task.ID, tasks[0].ID)
}

func TestAddPrependsNewestFirst(t *testing.T) {
	repo, _ := newTestRepo(t)

	first, err := repo.Add("First", AddOptions{})
	require.NoError(t, err)
	second, err := repo.Add("Second", AddOptions{})
	require.NoError(t, err)

	tasks := repo.List()
	require.Len(t, tasks, 2)
	assert.Equal(t, second.ID, tasks[0].ID)
	assert.Equal(t, first.ID, tasks[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestAddTrimsTitle(t *testing.T) {
	repo, _ := newTestRepo(t)

	task, err := repo.Add("  Buy milk  ", AddOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", task.Title)
}

func TestAddRejectsEmptyTitle(t *testing.T) {
	repo, counting := newTestRepo(t)

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := repo.Add(title, AddOptions{})
		require.Error(t, err, "title %q should be rejected", title)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
	}

	// A failed validation causes zero writes and no state change.
	assert.Equal(t, 0, counting.puts)
	assert.Empty(t, repo.List())
}

func TestAddWithOptions(t *testing.T) {
	repo, _ := newTestRepo(t)

	due := domain.NewDate(2024, time.July, 1)
	task, err := repo.Add("Pay rent", AddOptions{
		Description: "bank transfer",
		Priority:    domain.PriorityHigh,
		DueDate:     &due,
	})
	require.NoError(t, err)

	assert.Equal(t, "bank transfer", task.Description)
	assert.Equal(t, domain.PriorityHigh, task.Priority)
	require.NotNil(t, task.DueDate)
	assert.True(t, task.DueDate.Equal(due))
}

func TestUpdateAppliesPatch(t *testing.T) {
	repo, counting := newTestRepo(t)

	task, err := repo.Add("Original", AddOptions{})
	require.NoError(t, err)
	putsBefore := counting.puts

	newTitle := "Renamed"
	newPriority := domain.PriorityLow
	updated, err := repo.Update(task.ID, domain.TaskPatch{Title: &newTitle, Priority: &newPriority})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, domain.PriorityLow, updated.Priority)
	assert.Equal(t, task.ID, updated.ID)
	assert.True(t, updated.CreatedAt.Equal(task.CreatedAt))
	assert.Equal(t, putsBefore+1, counting.puts)
}

func TestUpdateRejectsEmptyTitle(t *testing.T) {
	repo, counting := newTestRepo(t)

	task, err := repo.Add("Original", AddOptions{})
	require.NoError(t, err)
	putsBefore := counting.puts

	empty := "   "
	_, err = repo.Update(task.ID, domain.TaskPatch{Title: &empty})
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))

	assert.Equal(t, putsBefore, counting.puts)
	assert.Equal(t, "Original", repo.List()[0].Title)
}

func TestUpdateUnknownID(t *testing.T) {
	repo, _ := newTestRepo(t)

	title := "New title"
	_, err := repo.Update("missing-id", domain.TaskPatch{Title: &title})
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestToggleCompletedTwiceRestores(t *testing.T) {
	repo, _ := newTestRepo(t)

	task, err := repo.Add("Buy milk", AddOptions{})
	require.NoError(t, err)

	toggled, err := repo.ToggleCompleted(task.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	restored, err := repo.ToggleCompleted(task.ID)
	require.NoError(t, err)
	assert.False(t, restored.Completed)
}

func TestToggleCompletedUnknownID(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.ToggleCompleted("missing-id")
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestDeleteIsIdempotent(t *testing.T) {
	repo, counting := newTestRepo(t)

	task, err := repo.Add("Buy milk", AddOptions{})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(task.ID))
	assert.Empty(t, repo.List())
	putsAfterFirst := counting.puts

	// Second delete of the same id: same resulting collection, no write.
	require.NoError(t, repo.Delete(task.ID))
	assert.Empty(t, repo.List())
	assert.Equal(t, putsAfterFirst, counting.puts)
}

func TestClearCompleted(t *testing.T) {
	repo, counting := newTestRepo(t)

	done1, err := repo.Add("Done one", AddOptions{})
	require.NoError(t, err)
	_, err = repo.Add("Still open", AddOptions{})
	require.NoError(t, err)
	done2, err := repo.Add("Done two", AddOptions{})
	require.NoError(t, err)

	_, err = repo.ToggleCompleted(done1.ID)
	require.NoError(t, err)
	_, err = repo.ToggleCompleted(done2.ID)
	require.NoError(t, err)

	removed, err := repo.ClearCompleted()
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	tasks := repo.List()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Still open", tasks[0].Title)

	// Nothing left to clear: count zero and no extra write.
	putsBefore := counting.puts
	removed, err = repo.ClearCompleted()
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
	assert.Equal(t, putsBefore, counting.puts)
}

func TestLoadFromCorruptBlob(t *testing.T) {
	backing := store.NewMemory()
	require.NoError(t, backing.Put(tasksKey, []byte("{not json")))

	repo := New(backing, tasksKey)
	assert.Empty(t, repo.List())

	// The repository still works after recovering.
	_, err := repo.Add("Fresh start", AddOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.Count())
}

func TestLoadFromMissingBlob(t *testing.T) {
	repo := New(store.NewMemory(), tasksKey)
	assert.Empty(t, repo.List())
}

func TestPersistenceRoundTrip(t *testing.T) {
	backing := store.NewMemory()

	first := New(backing, tasksKey)
	task, err := first.Add("Buy milk", AddOptions{Priority: domain.PriorityHigh})
	require.NoError(t, err)
	_, err = first.ToggleCompleted(task.ID)
	require.NoError(t, err)

	// A fresh repository over the same store sees the persisted state.
	second := New(backing, tasksKey)
	tasks := second.List()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Title)
	assert.True(t, tasks[0].Completed)
	assert.Equal(t, domain.PriorityHigh, tasks[0].Priority)
	assert.Equal(t, task.ID, tasks[0].ID)
}

func TestPersistedBlobShape(t *testing.T) {
	backing := store.NewMemory()
	repo := New(backing, tasksKey)

	due := domain.NewDate(2024, time.January, 2)
	_, err := repo.Add("Shaped", AddOptions{DueDate: &due})
	require.NoError(t, err)

	data, ok, err := backing.Get(tasksKey)
	require.NoError(t, err)
	require.True(t, ok)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Shaped", decoded[0]["title"])
	assert.Equal(t, "2024-01-02", decoded[0]["dueDate"])
	assert.Equal(t, "medium", decoded[0]["priority"])
}

func TestListReturnsSnapshot(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.Add("Buy milk", AddOptions{})
	require.NoError(t, err)

	tasks := repo.List()
	tasks[0].Title = "Mutated by caller"

	assert.Equal(t, "Buy milk", repo.List()[0].Title)
}

func TestUniqueIDsAcrossAdds(t *testing.T) {
	repo, _ := newTestRepo(t)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		task, err := repo.Add("Task", AddOptions{})
		require.NoError(t, err)
		assert.False(t, seen[task.ID], "duplicate id %s", task.ID)
		seen[task.ID] = true
	}
}

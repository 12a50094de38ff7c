package view

import (
	"fmt"
	"sort"
	"strings"

	"nelo/internal/domain"
)

// FilterMode selects which completion states a view includes.
type FilterMode string

const (
	FilterAll       FilterMode = "all"
	FilterActive    FilterMode = "active"
	FilterCompleted FilterMode = "completed"
)

// ParseFilterMode parses a filter mode, accepting any casing. The empty
// string means "all".
func ParseFilterMode(s string) (FilterMode, error) {
	switch FilterMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterActive:
		return FilterActive, nil
	case FilterCompleted:
		return FilterCompleted, nil
	default:
		return "", fmt.Errorf("invalid filter %q: expected all, active or completed", s)
	}
}

// Query describes one derived view of the task collection.
type Query struct {
	Filter FilterMode
	Search string
}

// Compute derives the visible task list from the full collection: filter
// by completion state, narrow by case-insensitive substring match on
// title and description, then order by priority and due date. The input
// slice is never modified and the result is freshly allocated.
func Compute(tasks []domain.Task, query Query) []domain.Task {
	filter := query.Filter
	if filter == "" {
		filter = FilterAll
	}
	needle := strings.ToLower(strings.TrimSpace(query.Search))

	visible := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if !matchesFilter(task, filter) {
			continue
		}
		if needle != "" && !matchesSearch(task, needle) {
			continue
		}
		visible = append(visible, task)
	}

	// Stable so tasks that compare equal keep their collection order.
	sort.SliceStable(visible, func(i, j int) bool {
		return lessTask(visible[i], visible[j])
	})
	return visible
}

func matchesFilter(task domain.Task, filter FilterMode) bool {
	switch filter {
	case FilterActive:
		return !task.Completed
	case FilterCompleted:
		return task.Completed
	default:
		return true
	}
}

func matchesSearch(task domain.Task, needle string) bool {
	return strings.Contains(strings.ToLower(task.Title), needle) ||
		strings.Contains(strings.ToLower(task.Description), needle)
}

// lessTask orders by priority rank (high before medium before low),
// then by due date ascending with dated tasks before undated ones.
func lessTask(a, b domain.Task) bool {
	if a.Priority.Rank() != b.Priority.Rank() {
		return a.Priority.Rank() < b.Priority.Rank()
	}
	switch {
	case a.DueDate != nil && b.DueDate != nil:
		return a.DueDate.Before(*b.DueDate)
	case a.DueDate != nil:
		return true
	case b.DueDate != nil:
		return false
	default:
		return false
	}
}

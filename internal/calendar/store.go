package calendar

import (
	"fmt"
	"slices"
	"sort"
	"sync"
)

// Store is an in-memory, concurrency-safe holder of tasks keyed by date.
// Task data is lost when the process stops.
//
// A single lock covers both the date map and the id counter, so ids stay
// unique and strictly increasing across dates.
type Store struct {
	mu     sync.RWMutex
	byDate map[string][]Task
	next   int64
}

// NewStore returns an empty Store whose first task id is 1.
func NewStore() *Store {
	return &Store{
		byDate: make(map[string][]Task),
		next:   1,
	}
}

// ListAll returns a deep copy of every date and its tasks, ordered by date key.
// Dates whose tasks were all deleted are still listed with an empty slice.
func (s *Store) ListAll() Month {
	s.mu.RLock()
	defer s.mu.RUnlock()

	days := make([]Day, 0, len(s.byDate))
	for date, tasks := range s.byDate {
		cp := make([]Task, len(tasks))
		copy(cp, tasks)
		days = append(days, Day{Date: date, Tasks: cp})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	return Month{Days: days}
}

// CreateTask appends a new task to date and returns it.
// Both date and text must be non-empty.
func (s *Store) CreateTask(date, text string) (Task, error) {
	if date == "" {
		return Task{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if text == "" {
		return Task{}, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := Task{ID: s.next, Text: text}
	s.next++
	s.byDate[date] = append(s.byDate[date], task)

	return task, nil
}

// UpdateTask replaces the text of the task with the given id under date.
// The lookup is scoped to date: a valid id under another date is not found.
// It reports whether a task was updated.
func (s *Store) UpdateTask(id int64, date, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, ok := s.byDate[date]
	if !ok {
		return false
	}
	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Text = text
			return true
		}
	}
	return false
}

// DeleteTask removes the task with the given id from whichever date holds it.
// A missing id is not an error; the result only reports whether a task was removed.
func (s *Store) DeleteTask(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for date, tasks := range s.byDate {
		for i := range tasks {
			if tasks[i].ID != id {
				continue
			}
			s.byDate[date] = slices.Delete(tasks, i, i+1)
			return true
		}
	}
	return false
}

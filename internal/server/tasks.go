package server

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a search task.
type Status string

const (
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

// Task is one background search. Result holds the raw markup answer once
// the task completes; Err holds a user-facing message when it fails.
type Task struct {
	ID        string
	Query     string
	Status    Status
	Result    string
	Err       string
	CreatedAt time.Time
}

const taskTTL = 24 * time.Hour

// taskStore keeps in-flight and recent tasks in memory. Results are kept
// for taskTTL so a bookmarked /results link keeps working for a day.
type taskStore struct {
	mu    sync.Mutex
	tasks map[string]*Task
}

func newTaskStore() *taskStore {
	return &taskStore{tasks: make(map[string]*Task)}
}

func (s *taskStore) create(query string) *Task {
	task := &Task{
		ID:        uuid.NewString(),
		Query:     query,
		Status:    StatusProcessing,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.tasks[task.ID] = task
	s.mu.Unlock()

	return task
}

// get returns a copy so callers never see a task mid-update.
func (s *taskStore) get(id string) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return Task{}, false
	}

	return *task, true
}

func (s *taskStore) complete(id, result string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if task, ok := s.tasks[id]; ok {
		task.Status = StatusCompleted
		task.Result = result
	}
}

func (s *taskStore) fail(id, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if task, ok := s.tasks[id]; ok {
		task.Status = StatusError
		task.Err = message
	}
}

func (s *taskStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.tasks)
}

// prune drops every task older than taskTTL and returns how many went.
func (s *taskStore) prune(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := 0
	for id, task := range s.tasks {
		if now.Sub(task.CreatedAt) > taskTTL {
			delete(s.tasks, id)
			pruned++
		}
	}

	return pruned
}

// janitor prunes expired tasks hourly until ctx is cancelled.
func (s *taskStore) janitor(ctx context.Context, interval time.Duration, onPrune func(count int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if count := s.prune(now); count > 0 && onPrune != nil {
				onPrune(count)
			}
		}
	}
}

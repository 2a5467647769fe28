package task

import (
	"errors"
	"strings"
	"sync"
)

var ErrNotFound = errors.New("task not found")

// Store holds the ordered task list plus the single edit-mode marker.
// Tasks keep insertion order; there is no reordering. Mutations arrive from
// HTTP handlers, so everything is mutex-guarded even though the interaction
// model is one user clicking one thing at a time.
type Store struct {
	mu        sync.RWMutex
	tasks     []Task
	editingID int64 // 0 = nothing in edit mode
}

func NewStore() *Store {
	return &Store{}
}

// Add appends a new task. Blank titles (after trimming) are a silent no-op,
// matching the page behavior: nothing is reported, nothing changes.
func (s *Store) Add(title string) (Task, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := NewTask(title)
	s.tasks = append(s.tasks, t)
	return t, true
}

func (s *Store) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			if s.editingID == id {
				s.editingID = 0
			}
			return true
		}
	}
	return false
}

// StartEdit marks the task for edit-mode rendering. At most one task is in
// edit mode; starting an edit on a second task moves the marker.
func (s *Store) StartEdit(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.find(id); !ok {
		return false
	}
	s.editingID = id
	return true
}

func (s *Store) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingID = 0
}

// SaveEdit always leaves edit mode, whether or not the new title is usable;
// a blank save otherwise left the page stuck in edit mode. The title change
// itself applies only when the trimmed title is non-blank: it replaces the
// title, clears completion state, and sets the modified timestamp.
func (s *Store) SaveEdit(id int64, title string) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.editingID = 0

	i, ok := s.find(id)
	if !ok {
		return Task{}, false
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return s.tasks[i], false
	}

	s.tasks[i].Rename(title)
	return s.tasks[i], true
}

// Complete is idempotent: completing a completed task changes nothing,
// including its completion timestamp.
func (s *Store) Complete(id int64) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.find(id)
	if !ok {
		return Task{}, false
	}
	s.tasks[i].MarkComplete()
	return s.tasks[i], true
}

func (s *Store) Get(id int64) (Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.find(id)
	if !ok {
		return Task{}, false
	}
	return s.tasks[i], true
}

// List returns a snapshot copy in insertion order.
func (s *Store) List() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// Remaining counts tasks not yet completed.
func (s *Store) Remaining() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, t := range s.tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}

// EditingID reports the task currently in edit mode, 0 if none.
func (s *Store) EditingID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.editingID
}

// ReplaceAll swaps the whole list for the given tasks, as the seed fetch
// does on success. The edit marker is cleared and the id floor is raised
// above the largest seeded id so later adds stay unique.
func (s *Store) ReplaceAll(tasks []Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = append([]Task(nil), tasks...)
	s.editingID = 0
	for _, t := range s.tasks {
		bumpID(t.ID)
	}
}

// find returns the index for id. Caller holds the lock.
func (s *Store) find(id int64) (int, bool) {
	for i, t := range s.tasks {
		if t.ID == id {
			return i, true
		}
	}
	return 0, false
}

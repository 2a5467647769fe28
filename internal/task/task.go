package task

import (
	"sync/atomic"
	"time"
)

// TimeLayout is how task timestamps are shown. They are display text only;
// nothing parses them back.
const TimeLayout = "2006-01-02 15:04:05"

type Task struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Completed     bool   `json:"completed"`
	CompletedTime string `json:"completedTime,omitempty"`
	ModifiedTime  string `json:"modifiedTime,omitempty"`
}

var lastID atomic.Int64

// nextID derives ids from the creation clock in unix milliseconds, bumping
// past the previous id so two adds inside the same millisecond stay unique.
func nextID(now time.Time) int64 {
	for {
		prev := lastID.Load()
		id := now.UnixMilli()
		if id <= prev {
			id = prev + 1
		}
		if lastID.CompareAndSwap(prev, id) {
			return id
		}
	}
}

// bumpID raises the id floor, so ids minted after a seed load stay above
// everything the seed brought in.
func bumpID(id int64) {
	for {
		prev := lastID.Load()
		if id <= prev || lastID.CompareAndSwap(prev, id) {
			return
		}
	}
}

func NewTask(title string) Task {
	now := time.Now()

	return Task{
		ID:           nextID(now),
		Title:        title,
		Completed:    false,
		ModifiedTime: now.Format(TimeLayout),
	}
}

// MarkComplete is one-way: completing an already-completed task keeps the
// original completion time.
func (t *Task) MarkComplete() {
	if t.Completed {
		return
	}
	t.Completed = true
	t.CompletedTime = time.Now().Format(TimeLayout)
}

// Rename replaces the title and revives the task: completion state and its
// timestamp are cleared, the modified timestamp is refreshed.
func (t *Task) Rename(title string) {
	t.Title = title
	t.Completed = false
	t.CompletedTime = ""
	t.ModifiedTime = time.Now().Format(TimeLayout)
}

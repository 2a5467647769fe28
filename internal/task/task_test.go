package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTask(t *testing.T) {
	task := NewTask("pick up eggs")

	assert.NotZero(t, task.ID)
	assert.Equal(t, "pick up eggs", task.Title)
	assert.False(t, task.Completed)
	assert.Empty(t, task.CompletedTime)
	assert.NotEmpty(t, task.ModifiedTime)
}

func TestNewTask_UniqueMonotonicIDs(t *testing.T) {
	seen := map[int64]bool{}
	var prev int64
	for range 100 {
		task := NewTask("x")
		assert.False(t, seen[task.ID])
		assert.Greater(t, task.ID, prev)
		seen[task.ID] = true
		prev = task.ID
	}
}

func TestNewTask_IDTracksCreationTime(t *testing.T) {
	before := time.Now().UnixMilli()
	task := NewTask("clock check")

	// Ids are creation-time based; allow the same-millisecond bump.
	assert.GreaterOrEqual(t, task.ID, before)
}

func TestMarkComplete(t *testing.T) {
	task := NewTask("slay dragon")
	task.MarkComplete()

	assert.True(t, task.Completed)
	assert.NotEmpty(t, task.CompletedTime)
}

func TestMarkComplete_KeepsOriginalTimestamp(t *testing.T) {
	task := NewTask("one way door")
	task.MarkComplete()
	first := task.CompletedTime

	task.MarkComplete()

	assert.Equal(t, first, task.CompletedTime)
}

func TestRename_RevivesCompletedTask(t *testing.T) {
	task := NewTask("old title")
	task.MarkComplete()

	task.Rename("new title")

	assert.Equal(t, "new title", task.Title)
	assert.False(t, task.Completed)
	assert.Empty(t, task.CompletedTime)
	assert.NotEmpty(t, task.ModifiedTime)
}

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/internal/model"
)

func TestTaskStats(t *testing.T) {
	tasks := []model.Task{
		{Status: model.StatusWaiting},
		{Status: model.StatusInProgress},
		{Status: model.StatusInProgress},
		{Status: model.StatusDone},
		{Status: "bogus"}, // unknown status is ignored
	}

	stats := TaskStats(tasks)
	assert.Equal(t, 1, stats[model.StatusWaiting])
	assert.Equal(t, 2, stats[model.StatusInProgress])
	assert.Equal(t, 1, stats[model.StatusDone])
	assert.Equal(t, 0, stats[model.StatusOnHold])
	assert.Len(t, stats, 4, "all four buckets always present")
}

func TestTaskStatsEmpty(t *testing.T) {
	stats := TaskStats(nil)
	assert.Len(t, stats, 4)
	for _, count := range stats {
		assert.Zero(t, count)
	}
}

func TestCompletionRate(t *testing.T) {
	assert.Equal(t, 0, CompletionRate(TaskStats(nil)), "no tasks is 0, not NaN")

	tasks := []model.Task{
		{Status: model.StatusDone},
		{Status: model.StatusDone},
		{Status: model.StatusInProgress},
	}
	assert.Equal(t, 67, CompletionRate(TaskStats(tasks)), "2/3 rounds to 67")

	allDone := []model.Task{{Status: model.StatusDone}}
	assert.Equal(t, 100, CompletionRate(TaskStats(allDone)))
}

func TestKSTDay(t *testing.T) {
	// 2025-05-14 16:30 UTC is already 2025-05-15 01:30 in UTC+9.
	late := time.Date(2025, 5, 14, 16, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-05-15", KSTDay(late))

	early := time.Date(2025, 5, 14, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-05-14", KSTDay(early))
}

func TestTodayTasks(t *testing.T) {
	now := time.Date(2025, 5, 14, 10, 0, 0, 0, time.UTC) // 2025-05-14 in UTC+9

	tasks := []model.Task{
		{ID: 1, Status: model.StatusInProgress, StartDate: "2025-05-10", EndDate: "2025-05-20"},
		{ID: 2, Status: model.StatusDone, StartDate: "2025-05-10", EndDate: "2025-05-20"},
		{ID: 3, Status: model.StatusWaiting, StartDate: "2025-05-15", EndDate: "2025-05-20"},
		{ID: 4, Status: model.StatusWaiting},
	}

	today := TodayTasks(tasks, now)
	require.Len(t, today, 1)
	assert.Equal(t, 1, today[0].ID)
}

func TestTodayTasksKSTBoundary(t *testing.T) {
	// Late UTC evening already counts as the next day's tasks in UTC+9.
	now := time.Date(2025, 5, 14, 16, 0, 0, 0, time.UTC) // 2025-05-15 KST

	tasks := []model.Task{
		{ID: 1, Status: model.StatusWaiting, StartDate: "2025-05-15", EndDate: "2025-05-15"},
		{ID: 2, Status: model.StatusWaiting, StartDate: "2025-05-14", EndDate: "2025-05-14"},
	}

	today := TodayTasks(tasks, now)
	require.Len(t, today, 1)
	assert.Equal(t, 1, today[0].ID)
}

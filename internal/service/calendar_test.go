package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/internal/model"
)

func TestMonthWindow(t *testing.T) {
	first, last, err := MonthWindow("2025-05")
	require.NoError(t, err)
	assert.Equal(t, "2025-05-01", first)
	assert.Equal(t, "2025-05-31", last)

	first, last, err = MonthWindow("2024-02")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", first)
	assert.Equal(t, "2024-02-29", last, "leap year February")

	_, _, err = MonthWindow("2025-5")
	assert.Error(t, err)
	_, _, err = MonthWindow("not-a-month")
	assert.Error(t, err)
	_, _, err = MonthWindow("")
	assert.Error(t, err)
}

func TestBucketByDay(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, StartDate: "2025-05-02", EndDate: "2025-05-03"},
		{ID: 2, StartDate: "2025-04-28", EndDate: "2025-05-01"}, // spills in from April
		{ID: 3}, // undated, never shown
	}

	days, err := BucketByDay(tasks, "2025-05")
	require.NoError(t, err)
	require.Len(t, days, 31)

	assert.Equal(t, "2025-05-01", days[0].Date)
	require.Len(t, days[0].Tasks, 1)
	assert.Equal(t, 2, days[0].Tasks[0].ID)

	require.Len(t, days[1].Tasks, 1)
	assert.Equal(t, 1, days[1].Tasks[0].ID)
	require.Len(t, days[2].Tasks, 1)

	assert.Empty(t, days[3].Tasks)
	assert.Zero(t, days[3].Overflow)
}

func TestBucketByDayOverflow(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, StartDate: "2025-05-10", EndDate: "2025-05-10"},
		{ID: 2, StartDate: "2025-05-10", EndDate: "2025-05-10"},
		{ID: 3, StartDate: "2025-05-10", EndDate: "2025-05-10"},
		{ID: 4, StartDate: "2025-05-10", EndDate: "2025-05-10"},
		{ID: 5, StartDate: "2025-05-10", EndDate: "2025-05-10"},
	}

	days, err := BucketByDay(tasks, "2025-05")
	require.NoError(t, err)

	day10 := days[9]
	assert.Equal(t, "2025-05-10", day10.Date)
	assert.Len(t, day10.Tasks, 3, "display capped at three entries")
	assert.Equal(t, 2, day10.Overflow)
}

func TestBucketByDayInvalidMonth(t *testing.T) {
	_, err := BucketByDay(nil, "May 2025")
	assert.Error(t, err)
}

package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []TaskStatus{StatusWaiting, StatusInProgress, StatusDone, StatusOnHold} {
		assert.True(t, ValidStatus(s), string(s))
	}
	assert.False(t, ValidStatus("archived"))
	assert.False(t, ValidStatus(""))
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to TaskStatus
		want     bool
	}{
		{StatusWaiting, StatusInProgress, true},
		{StatusWaiting, StatusDone, false},
		{StatusWaiting, StatusOnHold, false},
		{StatusInProgress, StatusDone, true},
		{StatusInProgress, StatusOnHold, true},
		{StatusInProgress, StatusWaiting, false},
		{StatusOnHold, StatusInProgress, true},
		{StatusOnHold, StatusDone, false},
		{StatusDone, StatusInProgress, false},
		{StatusDone, StatusWaiting, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestCanTransitionSelf(t *testing.T) {
	for _, s := range []TaskStatus{StatusWaiting, StatusInProgress, StatusDone, StatusOnHold} {
		assert.True(t, CanTransition(s, s), string(s))
	}
}

func TestCanTransitionInvalidStatus(t *testing.T) {
	assert.False(t, CanTransition("bogus", StatusDone))
	assert.False(t, CanTransition(StatusWaiting, "bogus"))
	assert.False(t, CanTransition("bogus", "bogus"))
}

func TestPriorityRank(t *testing.T) {
	assert.Equal(t, 3, PriorityRank(PriorityHigh))
	assert.Equal(t, 2, PriorityRank(PriorityNormal))
	assert.Equal(t, 1, PriorityRank(PriorityLow))
	assert.Equal(t, 0, PriorityRank(""))
	assert.Equal(t, 0, PriorityRank("urgent"))
}

func TestCompletionStampAt(t *testing.T) {
	now := time.Date(2025, 5, 14, 10, 0, 0, 0, time.UTC)

	t.Run("first transition to done stamps now", func(t *testing.T) {
		task := Task{Status: StatusInProgress}
		stamp := task.CompletionStampAt(StatusDone, now)
		require.NotNil(t, stamp)
		assert.Equal(t, now, *stamp)
	})

	t.Run("repeat done keeps the original stamp", func(t *testing.T) {
		first := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
		task := Task{Status: StatusDone, CompletedAt: &first}
		stamp := task.CompletionStampAt(StatusDone, now)
		require.NotNil(t, stamp)
		assert.Equal(t, first, *stamp)
	})

	t.Run("non-done transition leaves the stamp empty", func(t *testing.T) {
		task := Task{Status: StatusWaiting}
		assert.Nil(t, task.CompletionStampAt(StatusInProgress, now))
		assert.Nil(t, task.CompletionStampAt(StatusOnHold, now))
	})

	t.Run("existing stamp survives any transition", func(t *testing.T) {
		first := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
		task := Task{Status: StatusDone, CompletedAt: &first}
		stamp := task.CompletionStampAt(StatusInProgress, now)
		require.NotNil(t, stamp)
		assert.Equal(t, first, *stamp)
	})
}

func TestConfirmationDateAt(t *testing.T) {
	now := time.Date(2025, 5, 14, 10, 0, 0, 0, time.UTC)

	unconfirmed := Task{}
	assert.Equal(t, "2025-05-14", unconfirmed.ConfirmationDateAt(now))

	confirmed := Task{PMConfirmed: true, PMConfirmedDate: "2025-05-01"}
	assert.Equal(t, "2025-05-01", confirmed.ConfirmationDateAt(now),
		"repeat confirmation keeps the original date")
}

func TestCoversDay(t *testing.T) {
	task := Task{StartDate: "2025-08-04", EndDate: "2025-08-22"}

	assert.True(t, task.CoversDay("2025-08-04"))
	assert.True(t, task.CoversDay("2025-08-15"))
	assert.True(t, task.CoversDay("2025-08-22"))
	assert.False(t, task.CoversDay("2025-08-03"))
	assert.False(t, task.CoversDay("2025-08-23"))

	undated := Task{}
	assert.False(t, undated.CoversDay("2025-08-15"))

	openEnded := Task{StartDate: "2025-08-04"}
	assert.False(t, openEnded.CoversDay("2025-08-15"))
}

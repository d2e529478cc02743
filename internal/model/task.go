package model

import "time"

type TaskStatus string

const (
	StatusWaiting    TaskStatus = "waiting"
	StatusInProgress TaskStatus = "in-progress"
	StatusDone       TaskStatus = "done"
	StatusOnHold     TaskStatus = "on-hold"
)

// ValidStatus reports whether s is one of the four task statuses.
func ValidStatus(s TaskStatus) bool {
	switch s {
	case StatusWaiting, StatusInProgress, StatusDone, StatusOnHold:
		return true
	}
	return false
}

// transitions holds the allowed status graph. Self-transitions are always
// permitted so that repeating a terminal update stays idempotent.
var transitions = map[TaskStatus][]TaskStatus{
	StatusWaiting:    {StatusInProgress},
	StatusInProgress: {StatusDone, StatusOnHold},
	StatusOnHold:     {StatusInProgress},
	StatusDone:       {},
}

// CanTransition reports whether a task may move from one status to another.
func CanTransition(from, to TaskStatus) bool {
	if !ValidStatus(from) || !ValidStatus(to) {
		return false
	}
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type TaskPriority string

const (
	PriorityHigh   TaskPriority = "high"
	PriorityNormal TaskPriority = "normal"
	PriorityLow    TaskPriority = "low"
)

// PriorityRank orders priorities high > normal > low > unknown.
func PriorityRank(p TaskPriority) int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityNormal:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

type Task struct {
	ID              int          `json:"id"`
	ProjectID       int          `json:"projectId"`
	Title           string       `json:"title"`
	Description     string       `json:"description,omitempty"`
	Month           string       `json:"month"`
	Category        string       `json:"category"`
	Part            string       `json:"part"`
	AssigneeID      *int         `json:"assigneeId"`
	AssigneeName    string       `json:"assigneeName,omitempty"`
	Status          TaskStatus   `json:"status"`
	Priority        TaskPriority `json:"priority,omitempty"`
	StartDate       string       `json:"startDate,omitempty"`
	EndDate         string       `json:"endDate,omitempty"`
	PMConfirmed     bool         `json:"pmConfirmed"`
	PMConfirmedDate string       `json:"pmConfirmedDate,omitempty"`
	CompletedAt     *time.Time   `json:"completedAt,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`

	// Joined project fields, present on list responses.
	ProjectName string `json:"projectName,omitempty"`
	PMName      string `json:"pmName,omitempty"`
	StartMonth  string `json:"startMonth,omitempty"`
	EndMonth    string `json:"endMonth,omitempty"`

	// Joined assignee position, present on report task lists.
	AssigneePosition string `json:"assigneePosition,omitempty"`
}

// CoversDay reports whether day (YYYY-MM-DD) falls inside the task's
// [startDate, endDate] window. Tasks without both dates cover nothing.
func (t *Task) CoversDay(day string) bool {
	if t.StartDate == "" || t.EndDate == "" {
		return false
	}
	return t.StartDate <= day && day <= t.EndDate
}

// CompletionStampAt returns the completed_at value a move to the given
// status should store: the existing stamp when one is already set, now on
// the first transition into done, nil otherwise. Repeating a done update
// never moves the stamp.
func (t *Task) CompletionStampAt(to TaskStatus, now time.Time) *time.Time {
	if t.CompletedAt != nil {
		return t.CompletedAt
	}
	if to == StatusDone {
		return &now
	}
	return nil
}

// ConfirmationDateAt returns the pm_confirmed_date a confirmation should
// store: the existing date when already confirmed, today otherwise.
func (t *Task) ConfirmationDateAt(now time.Time) string {
	if t.PMConfirmedDate != "" {
		return t.PMConfirmedDate
	}
	return now.Format("2006-01-02")
}

package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"taskhub/internal/model"
	"taskhub/internal/repository"
)

// calendarDayCap is how many entries a day shows before collapsing the
// rest into an overflow count.
const calendarDayCap = 3

type CalendarDay struct {
	Date     string       `json:"date"`
	Tasks    []model.Task `json:"tasks"`
	Overflow int          `json:"overflow"`
}

// MonthWindow returns the first and last calendar day of a YYYY-MM month.
func MonthWindow(month string) (first, last string, err error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return "", "", fmt.Errorf("invalid month %q: %w", month, err)
	}
	firstDay := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)
	return firstDay.Format(dateLayout), lastDay.Format(dateLayout), nil
}

// BucketByDay assigns each task to every day of the month its date window
// covers, capping displayed entries per day.
func BucketByDay(tasks []model.Task, month string) ([]CalendarDay, error) {
	first, last, err := MonthWindow(month)
	if err != nil {
		return nil, err
	}

	days := []CalendarDay{}
	cursor, _ := time.Parse(dateLayout, first)
	for {
		day := cursor.Format(dateLayout)
		if day > last {
			break
		}

		entry := CalendarDay{Date: day, Tasks: []model.Task{}}
		for _, t := range tasks {
			if !t.CoversDay(day) {
				continue
			}
			if len(entry.Tasks) < calendarDayCap {
				entry.Tasks = append(entry.Tasks, t)
			} else {
				entry.Overflow++
			}
		}
		days = append(days, entry)
		cursor = cursor.AddDate(0, 0, 1)
	}
	return days, nil
}

type CalendarService struct {
	tasks  *repository.TaskRepository
	logger *zap.Logger
}

func NewCalendarService(tasks *repository.TaskRepository, logger *zap.Logger) *CalendarService {
	return &CalendarService{tasks: tasks, logger: logger}
}

// Month returns the month's task buckets, optionally restricted to one
// assignee.
func (s *CalendarService) Month(ctx context.Context, month string, assigneeID *int) ([]CalendarDay, error) {
	first, last, err := MonthWindow(month)
	if err != nil {
		return nil, err
	}

	tasks, err := s.tasks.ListInWindow(ctx, first, last, assigneeID)
	if err != nil {
		return nil, err
	}
	return BucketByDay(tasks, month)
}

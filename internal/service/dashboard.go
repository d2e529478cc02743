package service

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"taskhub/internal/model"
	"taskhub/internal/repository"
)

// kstOffset normalizes timestamps to the team's calendar day (UTC+9).
const kstOffset = 9 * time.Hour

// KSTDay returns the calendar day (YYYY-MM-DD) of t in UTC+9.
func KSTDay(t time.Time) string {
	return t.UTC().Add(kstOffset).Format(dateLayout)
}

// TaskStats folds tasks into the fixed four-bucket status histogram.
// All buckets are present even when zero.
func TaskStats(tasks []model.Task) map[model.TaskStatus]int {
	stats := map[model.TaskStatus]int{
		model.StatusWaiting:    0,
		model.StatusInProgress: 0,
		model.StatusDone:       0,
		model.StatusOnHold:     0,
	}
	for _, t := range tasks {
		if _, ok := stats[t.Status]; ok {
			stats[t.Status]++
		}
	}
	return stats
}

// CompletionRate is done/total as a percentage rounded to the nearest
// integer, and 0 when there are no tasks.
func CompletionRate(stats map[model.TaskStatus]int) int {
	total := 0
	for _, count := range stats {
		total += count
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(stats[model.StatusDone]) / float64(total) * 100))
}

// TodayTasks filters to tasks whose date window contains today (in UTC+9)
// and which are not yet done.
func TodayTasks(tasks []model.Task, now time.Time) []model.Task {
	today := KSTDay(now)
	out := []model.Task{}
	for _, t := range tasks {
		if t.Status != model.StatusDone && t.CoversDay(today) {
			out = append(out, t)
		}
	}
	return out
}

type DashboardSummary struct {
	TotalTasks      int `json:"totalTasks"`
	CompletionRate  int `json:"completionRate"`
	TodayTaskCount  int `json:"todayTaskCount"`
	InProgressCount int `json:"inProgressCount"`
}

type DashboardData struct {
	User       model.MemberInfo         `json:"user"`
	TodayTasks []model.Task             `json:"todayTasks"`
	MyTasks    []model.Task             `json:"myTasks"`
	TaskStats  map[model.TaskStatus]int `json:"taskStats"`
	Summary    DashboardSummary         `json:"summary"`
}

type DashboardService struct {
	users  *repository.UserRepository
	tasks  *repository.TaskRepository
	logger *zap.Logger

	now func() time.Time
}

func NewDashboardService(users *repository.UserRepository, tasks *repository.TaskRepository, logger *zap.Logger) *DashboardService {
	return &DashboardService{users: users, tasks: tasks, logger: logger, now: time.Now}
}

// Personal computes one user's dashboard from their tasks across all
// projects. Everything here is derived per request; nothing is stored.
func (s *DashboardService) Personal(ctx context.Context, userID int) (*DashboardData, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.tasks.ListByAssignee(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := TaskStats(tasks)
	today := TodayTasks(tasks, s.now())

	return &DashboardData{
		User:       model.MemberInfo{ID: u.ID, Name: u.Name, Position: u.Position},
		TodayTasks: today,
		MyTasks:    tasks,
		TaskStats:  stats,
		Summary: DashboardSummary{
			TotalTasks:      len(tasks),
			CompletionRate:  CompletionRate(stats),
			TodayTaskCount:  len(today),
			InProgressCount: stats[model.StatusInProgress],
		},
	}, nil
}

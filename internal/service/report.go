package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"

	"taskhub/internal/model"
	"taskhub/internal/repository"
	"taskhub/pkg/metrics"
)

var ErrProjectNotFound = errors.New("project not found")

// upcomingHorizon is how far ahead the "upcoming" bucket looks.
const upcomingHorizon = 7 * 24 * time.Hour

const dateLayout = "2006-01-02"

// ReportWindow is an inclusive [Start, End] date range (YYYY-MM-DD).
type ReportWindow struct {
	Start string
	End   string
}

// MemberContribution tallies one assignee's completed and in-progress
// tasks. Keyed by assignee id, not display name, so homonyms stay apart;
// the name is carried for presentation only.
type MemberContribution struct {
	AssigneeID int    `json:"assigneeId"`
	Name       string `json:"name"`
	Completed  int    `json:"completed"`
	InProgress int    `json:"inProgress"`
}

// ProjectSection is one project's slice of a report.
type ProjectSection struct {
	Project    repository.ProjectMeta `json:"project"`
	Completed  []model.Task           `json:"completedTasks"`
	InProgress []model.Task           `json:"inProgressTasks"`
	Upcoming   []model.Task           `json:"upcomingTasks"`
}

type ReportSummary struct {
	TotalCompleted  int `json:"totalCompleted"`
	TotalInProgress int `json:"totalInProgress"`
	TotalUpcoming   int `json:"totalUpcoming"`
	TotalProjects   int `json:"totalProjects"`
}

// ReportResult carries the generated text together with the structured
// task lists it was built from.
type ReportResult struct {
	Period        string                   `json:"period"`
	Projects      []repository.ProjectMeta `json:"projects"`
	Completed     []model.Task             `json:"completedTasks"`
	InProgress    []model.Task             `json:"inProgressTasks"`
	Upcoming      []model.Task             `json:"upcomingTasks"`
	Contributions []MemberContribution     `json:"contributions"`
	WeeklyReport  string                   `json:"weeklyReport"`
	Summary       ReportSummary            `json:"summary"`
}

// ClassifyTasks splits a project's tasks into the three report buckets:
//   - completed: status done, updated within the window (inclusive);
//   - in-progress: status in-progress, regardless of date;
//   - upcoming: status waiting or in-progress, starting within seven days
//     of now.
func ClassifyTasks(tasks []model.Task, window ReportWindow, now time.Time) (completed, inProgress, upcoming []model.Task) {
	completed = []model.Task{}
	inProgress = []model.Task{}
	upcoming = []model.Task{}

	horizon := now.Add(upcomingHorizon).Format(dateLayout)

	for _, t := range tasks {
		switch t.Status {
		case model.StatusDone:
			day := t.UpdatedAt.Format(dateLayout)
			if window.Start <= day && day <= window.End {
				completed = append(completed, t)
			}
		case model.StatusInProgress:
			inProgress = append(inProgress, t)
		}

		if (t.Status == model.StatusWaiting || t.Status == model.StatusInProgress) &&
			t.StartDate != "" && t.StartDate <= horizon {
			upcoming = append(upcoming, t)
		}
	}

	sort.SliceStable(completed, func(i, j int) bool {
		if completed[i].ProjectName != completed[j].ProjectName {
			return completed[i].ProjectName < completed[j].ProjectName
		}
		return completed[i].UpdatedAt.After(completed[j].UpdatedAt)
	})
	sort.SliceStable(inProgress, func(i, j int) bool {
		ri, rj := model.PriorityRank(inProgress[i].Priority), model.PriorityRank(inProgress[j].Priority)
		if ri != rj {
			return ri > rj
		}
		return inProgress[i].EndDate < inProgress[j].EndDate
	})
	sort.SliceStable(upcoming, func(i, j int) bool {
		if upcoming[i].StartDate != upcoming[j].StartDate {
			return upcoming[i].StartDate < upcoming[j].StartDate
		}
		return model.PriorityRank(upcoming[i].Priority) > model.PriorityRank(upcoming[j].Priority)
	})

	return completed, inProgress, upcoming
}

// TallyContributions counts completed and in-progress tasks per assignee.
// Tasks without an assignee are skipped. The result is ordered by name,
// then id, for stable output.
func TallyContributions(completed, inProgress []model.Task) []MemberContribution {
	byID := map[int]*MemberContribution{}

	add := func(t model.Task, done bool) {
		if t.AssigneeID == nil {
			return
		}
		c, ok := byID[*t.AssigneeID]
		if !ok {
			c = &MemberContribution{AssigneeID: *t.AssigneeID, Name: t.AssigneeName}
			byID[*t.AssigneeID] = c
		}
		if done {
			c.Completed++
		} else {
			c.InProgress++
		}
	}

	for _, t := range completed {
		add(t, true)
	}
	for _, t := range inProgress {
		add(t, false)
	}

	out := make([]MemberContribution, 0, len(byID))
	for _, c := range byID {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].AssigneeID < out[j].AssigneeID
	})
	return out
}

// GroupByProject splits the three buckets per project, in the order of
// the given project metas.
func GroupByProject(projects []repository.ProjectMeta, completed, inProgress, upcoming []model.Task) []ProjectSection {
	sections := make([]ProjectSection, 0, len(projects))
	pick := func(tasks []model.Task, projectID int) []model.Task {
		out := []model.Task{}
		for _, t := range tasks {
			if t.ProjectID == projectID {
				out = append(out, t)
			}
		}
		return out
	}

	for _, p := range projects {
		sections = append(sections, ProjectSection{
			Project:    p,
			Completed:  pick(completed, p.ID),
			InProgress: pick(inProgress, p.ID),
			Upcoming:   pick(upcoming, p.ID),
		})
	}
	return sections
}

type ReportService struct {
	projects  *repository.ProjectRepository
	tasks     *repository.TaskRepository
	generator TextGenerator
	logger    *zap.Logger

	// now is swappable for tests.
	now func() time.Time
}

func NewReportService(projects *repository.ProjectRepository, tasks *repository.TaskRepository, generator TextGenerator, logger *zap.Logger) *ReportService {
	return &ReportService{
		projects:  projects,
		tasks:     tasks,
		generator: generator,
		logger:    logger,
		now:       time.Now,
	}
}

// ProjectReport assembles and generates the weekly report for a single
// project.
func (s *ReportService) ProjectReport(ctx context.Context, projectID int, window ReportWindow) (*ReportResult, error) {
	return s.build(ctx, "project", []int{projectID}, window, nil)
}

// CombinedReport assembles and generates a cross-project weekly report,
// optionally restricted to one assignee.
func (s *ReportService) CombinedReport(ctx context.Context, projectIDs []int, window ReportWindow, assigneeID *int) (*ReportResult, error) {
	return s.build(ctx, "combined", projectIDs, window, assigneeID)
}

func (s *ReportService) build(ctx context.Context, scope string, projectIDs []int, window ReportWindow, assigneeID *int) (*ReportResult, error) {
	start := time.Now()

	metas, err := s.projects.ListMeta(ctx, projectIDs)
	if err != nil {
		return nil, err
	}
	if len(metas) == 0 {
		return nil, ErrProjectNotFound
	}

	ids := make([]int, len(metas))
	for i, m := range metas {
		ids[i] = m.ID
	}

	tasks, err := s.tasks.ListByProjects(ctx, ids, assigneeID)
	if err != nil {
		return nil, err
	}

	completed, inProgress, upcoming := ClassifyTasks(tasks, window, s.now())
	contributions := TallyContributions(completed, inProgress)
	sections := GroupByProject(metas, completed, inProgress, upcoming)

	var prompt string
	if scope == "project" {
		prompt = BuildProjectPrompt(sections[0], window, contributions)
	} else {
		prompt = BuildCombinedPrompt(sections, window)
	}

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		metrics.RecordReportGeneration(scope, "error", time.Since(start))
		s.logger.Error("Report generation failed",
			zap.String("scope", scope),
			zap.Ints("project_ids", ids),
			zap.Error(err),
		)
		return nil, err
	}

	metrics.RecordReportGeneration(scope, "success", time.Since(start))
	s.logger.Info("Report generated",
		zap.String("scope", scope),
		zap.Ints("project_ids", ids),
		zap.Int("completed", len(completed)),
		zap.Int("in_progress", len(inProgress)),
		zap.Int("upcoming", len(upcoming)),
	)

	return &ReportResult{
		Period:        window.Start + " ~ " + window.End,
		Projects:      metas,
		Completed:     completed,
		InProgress:    inProgress,
		Upcoming:      upcoming,
		Contributions: contributions,
		WeeklyReport:  text,
		Summary: ReportSummary{
			TotalCompleted:  len(completed),
			TotalInProgress: len(inProgress),
			TotalUpcoming:   len(upcoming),
			TotalProjects:   len(metas),
		},
	}, nil
}

package service

import (
	"fmt"
	"strings"

	"taskhub/internal/model"
)

// The prompt pins the exact output format so the model fills in a meeting
// report instead of free-forming commentary.

func taskLine(t model.Task) string {
	line := "- " + t.Title
	if t.Part != "" {
		line += " (" + t.Part + ")"
	}
	if t.AssigneeName != "" {
		line += " - " + t.AssigneeName
		if t.AssigneePosition != "" {
			line += " (" + t.AssigneePosition + ")"
		}
	}
	return line
}

func listOrNone(b *strings.Builder, tasks []model.Task, line func(model.Task) string) {
	if len(tasks) == 0 {
		b.WriteString("(none)\n")
		return
	}
	for _, t := range tasks {
		b.WriteString(line(t))
		b.WriteString("\n")
	}
}

func titlesByPriority(tasks []model.Task, p model.TaskPriority) string {
	titles := []string{}
	for _, t := range tasks {
		if t.Priority == p {
			titles = append(titles, t.Title)
		}
	}
	if len(titles) == 0 {
		return "none"
	}
	return strings.Join(titles, ", ")
}

// BuildProjectPrompt assembles the single-project weekly report prompt,
// including priority buckets and per-member contribution tallies.
func BuildProjectPrompt(section ProjectSection, window ReportWindow, contributions []MemberContribution) string {
	p := section.Project
	var b strings.Builder

	fmt.Fprintf(&b, "Project: %s\n", p.Name)
	if p.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", p.Description)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "=== Completed this week (%s ~ %s) ===\n", window.Start, window.End)
	listOrNone(&b, section.Completed, taskLine)

	b.WriteString("\n=== Currently in progress ===\n")
	listOrNone(&b, section.InProgress, func(t model.Task) string {
		line := taskLine(t)
		if t.Priority != "" {
			line += " - priority: " + string(t.Priority)
		}
		return line
	})

	b.WriteString("\n=== Scheduled within the next 7 days ===\n")
	listOrNone(&b, section.Upcoming, func(t model.Task) string {
		line := taskLine(t)
		if t.StartDate != "" {
			line += " - starts: " + t.StartDate
		}
		return line
	})

	b.WriteString("\nWrite a weekly meeting report from the information above, using exactly this format:\n\n")
	fmt.Fprintf(&b, "# %s Weekly Report\n", p.Name)
	fmt.Fprintf(&b, "**Period**: %s ~ %s\n\n", window.Start, window.End)

	b.WriteString("## 1. Work in Progress\n\n")
	fmt.Fprintf(&b, "- **Active projects**:\n    - %s\n\n", p.Name)

	b.WriteString("## 2. Results and Issues\n\n- Results:\n")
	fmt.Fprintf(&b, "    - **%s**\n", p.Name)
	for _, t := range section.Completed {
		fmt.Fprintf(&b, "        - %s (%s)\n", t.Title, t.Part)
	}
	b.WriteString("\n- Issues:\n")
	if len(section.InProgress) > 0 {
		b.WriteString("    - **Still in progress**\n")
		for _, t := range section.InProgress {
			fmt.Fprintf(&b, "        - %s (%s) - %s\n", t.Title, t.Part, t.AssigneeName)
		}
	} else {
		b.WriteString("    - No notable issues this week\n")
	}

	b.WriteString("\n---\n\n## 3. Plan for Next Week\n\n- **Goals**:\n")
	fmt.Fprintf(&b, "    - **%s**\n", p.Name)
	for _, t := range section.Upcoming {
		fmt.Fprintf(&b, "        - %s (%s) - %s\n", t.Title, t.Part, t.AssigneeName)
	}

	b.WriteString("\n- **Priorities**:\n")
	fmt.Fprintf(&b, "    - High: %s\n", titlesByPriority(section.Upcoming, model.PriorityHigh))
	fmt.Fprintf(&b, "    - Normal: %s\n", titlesByPriority(section.Upcoming, model.PriorityNormal))
	fmt.Fprintf(&b, "    - Low: %s\n", titlesByPriority(section.Upcoming, model.PriorityLow))

	b.WriteString("\n---\n\n## 4. Member Contributions\n\n")
	for _, c := range contributions {
		fmt.Fprintf(&b, "- **%s**: %d tasks (completed: %d, in progress: %d)\n",
			c.Name, c.Completed+c.InProgress, c.Completed, c.InProgress)
	}

	b.WriteString("\n---\n\n## 5. Key Points for Next Week\n\n")
	if len(section.Upcoming) == 0 {
		b.WriteString("- No tasks scheduled for next week\n")
	} else {
		limit := len(section.Upcoming)
		if limit > 3 {
			limit = 3
		}
		for _, t := range section.Upcoming[:limit] {
			fmt.Fprintf(&b, "- %s (%s)\n", t.Title, t.StartDate)
		}
	}

	return b.String()
}

// BuildCombinedPrompt assembles the cross-project weekly report prompt.
// The format instruction forbids extra commentary so the response comes
// back as the report alone.
func BuildCombinedPrompt(sections []ProjectSection, window ReportWindow) string {
	var b strings.Builder

	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = s.Project.Name
	}
	fmt.Fprintf(&b, "Projects: %s\n", strings.Join(names, ", "))
	fmt.Fprintf(&b, "Period: %s ~ %s\n\n", window.Start, window.End)

	withProject := func(t model.Task) string {
		return fmt.Sprintf("- %s (%s)", t.Title, t.ProjectName)
	}

	var completed, inProgress, upcoming []model.Task
	for _, s := range sections {
		completed = append(completed, s.Completed...)
		inProgress = append(inProgress, s.InProgress...)
		upcoming = append(upcoming, s.Upcoming...)
	}

	b.WriteString("=== Completed tasks ===\n")
	listOrNone(&b, completed, withProject)
	b.WriteString("\n=== Tasks in progress ===\n")
	listOrNone(&b, inProgress, withProject)
	b.WriteString("\n=== Scheduled within the next 7 days ===\n")
	listOrNone(&b, upcoming, withProject)

	b.WriteString("\nWrite a weekly meeting report from the information above, using exactly the following format. Do not add any explanation or interpretation:\n\n")
	b.WriteString("# Weekly Report\n")
	fmt.Fprintf(&b, "**Period**: %s ~ %s\n\n", window.Start, window.End)

	b.WriteString("## 1. Work in Progress\n\n- **Active projects**:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "    - %s\n", name)
	}

	b.WriteString("\n## 2. Results and Issues\n\n- Results:\n")
	for _, s := range sections {
		if len(s.Completed) == 0 {
			continue
		}
		fmt.Fprintf(&b, "    - **%s**\n", s.Project.Name)
		for _, t := range s.Completed {
			fmt.Fprintf(&b, "        - %s\n", t.Title)
		}
	}

	b.WriteString("\n---\n\n## 3. Plan for This Week\n\n- **Goals**:\n")
	for _, s := range sections {
		if len(s.Upcoming) == 0 {
			continue
		}
		fmt.Fprintf(&b, "    - **%s**\n", s.Project.Name)
		for _, t := range s.Upcoming {
			fmt.Fprintf(&b, "        - %s\n", t.Title)
		}
	}

	return b.String()
}

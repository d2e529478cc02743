package model

import "time"

type Project struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	StartMonth  string    `json:"startMonth"`
	EndMonth    string    `json:"endMonth"`
	PMID        int       `json:"pmId"`
	PMName      string    `json:"pmName"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	FrontendMembers []int `json:"frontendMembers"`
	BackendMembers  []int `json:"backendMembers"`
	DesignerMembers []int `json:"designerMembers"`
	UXMembers       []int `json:"uxMembers"`
	AppMembers      []int `json:"appMembers"`
	AIMembers       []int `json:"aiMembers"`

	// Aggregated task counts, recomputed per request and never stored.
	TaskCount       int `json:"taskCount"`
	WaitingTasks    int `json:"waitingTasks"`
	InProgressTasks int `json:"inProgressTasks"`
	CompletedTasks  int `json:"completedTasks"`
	OnHoldTasks     int `json:"onHoldTasks"`
}

// ActiveOn reports whether the project is still active on the given day:
// active until the last calendar day of endMonth, inclusive.
func (p *Project) ActiveOn(now time.Time) bool {
	return p.EndMonth >= now.Format("2006-01")
}

// MemberIDs collects the ids from all six role arrays, in role order.
// Duplicates across roles are preserved; membership is a set check, not
// a count.
func (p *Project) MemberIDs() []int {
	ids := make([]int, 0,
		len(p.FrontendMembers)+len(p.BackendMembers)+len(p.DesignerMembers)+
			len(p.UXMembers)+len(p.AppMembers)+len(p.AIMembers))
	ids = append(ids, p.FrontendMembers...)
	ids = append(ids, p.BackendMembers...)
	ids = append(ids, p.DesignerMembers...)
	ids = append(ids, p.UXMembers...)
	ids = append(ids, p.AppMembers...)
	ids = append(ids, p.AIMembers...)
	return ids
}

// HasParticipant reports whether a user is the PM or appears in any
// role array.
func (p *Project) HasParticipant(userID int) bool {
	if userID == p.PMID {
		return true
	}
	for _, id := range p.MemberIDs() {
		if id == userID {
			return true
		}
	}
	return false
}

// FilterProjects narrows a project list by lifecycle status ("active" or
// "completed" relative to now; anything else keeps all) and, when memberID
// is set, to projects the user participates in.
func FilterProjects(projects []Project, status string, memberID *int, now time.Time) []Project {
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		switch status {
		case "active":
			if !p.ActiveOn(now) {
				continue
			}
		case "completed":
			if p.ActiveOn(now) {
				continue
			}
		}
		if memberID != nil && !p.HasParticipant(*memberID) {
			continue
		}
		out = append(out, p)
	}
	return out
}

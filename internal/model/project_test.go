package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestActiveOn(t *testing.T) {
	p := Project{StartMonth: "2025-01", EndMonth: "2025-06"}

	lastDay := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	assert.True(t, p.ActiveOn(lastDay), "active through the last day of endMonth")

	nextDay := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	assert.False(t, p.ActiveOn(nextDay), "completed from the first day after endMonth")

	wayBefore := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	assert.True(t, p.ActiveOn(wayBefore))
}

func TestMemberIDs(t *testing.T) {
	p := Project{
		FrontendMembers: []int{2},
		BackendMembers:  []int{3, 4},
		DesignerMembers: []int{5},
		AIMembers:       []int{2}, // same user in two roles
	}
	assert.Equal(t, []int{2, 3, 4, 5, 2}, p.MemberIDs())

	empty := Project{}
	assert.Empty(t, empty.MemberIDs())
}

func TestFilterProjects(t *testing.T) {
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	// project 1 ended in June; 2 and 3 are still active on July 1st.
	projects := []Project{
		{ID: 1, EndMonth: "2025-06", PMID: 1},
		{ID: 2, EndMonth: "2025-07", PMID: 2},
		{ID: 3, EndMonth: "2025-12", PMID: 3, BackendMembers: []int{2}},
	}

	ids := func(ps []Project) []int {
		out := make([]int, len(ps))
		for i, p := range ps {
			out[i] = p.ID
		}
		return out
	}

	assert.Equal(t, []int{2, 3}, ids(FilterProjects(projects, "active", nil, now)))
	assert.Equal(t, []int{1}, ids(FilterProjects(projects, "completed", nil, now)))
	assert.Equal(t, []int{1, 2, 3}, ids(FilterProjects(projects, "all", nil, now)))
	assert.Equal(t, []int{1, 2, 3}, ids(FilterProjects(projects, "", nil, now)))

	member := 2
	assert.Equal(t, []int{2, 3}, ids(FilterProjects(projects, "", &member, now)),
		"PM of one project, backend member of another")
	assert.Equal(t, []int{2, 3}, ids(FilterProjects(projects, "active", &member, now)))

	outsider := 9
	assert.Empty(t, FilterProjects(projects, "", &outsider, now))
}

func TestHasParticipant(t *testing.T) {
	p := Project{
		PMID:            1,
		FrontendMembers: []int{2},
		UXMembers:       []int{7},
	}

	assert.True(t, p.HasParticipant(1), "PM is a participant")
	assert.True(t, p.HasParticipant(2))
	assert.True(t, p.HasParticipant(7))
	assert.False(t, p.HasParticipant(9))
}

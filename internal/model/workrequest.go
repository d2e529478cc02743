package model

import "time"

// WorkRequest is the legacy request-tracking record, independent of the
// project/task model.
type WorkRequest struct {
	ID              int       `json:"id"`
	Number          string    `json:"number"`
	Division        string    `json:"division,omitempty"`
	Company         string    `json:"company"`
	RequestDate     string    `json:"requestDate"`
	MaterialDate    string    `json:"materialDate,omitempty"`
	ManagerMD       string    `json:"managerMd,omitempty"`
	Requester       string    `json:"requester"`
	TaskName        string    `json:"taskName"`
	Content         string    `json:"content,omitempty"`
	WorkNotes       string    `json:"workNotes,omitempty"`
	RequesterURL    string    `json:"requesterUrl,omitempty"`
	Memo            string    `json:"memo,omitempty"`
	Status          string    `json:"status"`
	DesignStartDate string    `json:"designStartDate,omitempty"`
	DesignEndDate   string    `json:"designEndDate,omitempty"`
	Designer        string    `json:"designer,omitempty"`
	ReviewDone      int       `json:"reviewDone"`
	Effort          int       `json:"effort"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

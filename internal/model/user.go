package model

import "time"

type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Position     string    `json:"position"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserSearchResult is the shape returned by name/email search.
type UserSearchResult struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Part        string `json:"part"`
	DisplayName string `json:"displayName"`
}

// MemberInfo is the compact shape used for project member listings and
// batch lookups.
type MemberInfo struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
}

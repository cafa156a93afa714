package entities

import "github.com/aarondl/null/v8"

type Worker struct {
	ID       int64       `json:"id"`
	FullName string      `json:"full_name"`
	Phone    null.String `json:"phone"`
	Position null.String `json:"position"`
	Login    string      `json:"login"`
	IsActive bool        `json:"is_active"`
}

package entities

import "github.com/aarondl/null/v8"

// Contract - договор, привязывающий категорию клиентов к своему прайсу.
type Contract struct {
	ID             int64       `json:"id"`
	Number         string      `json:"number"`
	Name           string      `json:"name"`
	ClientCategory null.String `json:"client_category"`
	StartDate      null.Time   `json:"start_date"`
	EndDate        null.Time   `json:"end_date"`
	IsActive       bool        `json:"is_active"`
}

package entities

import "github.com/aarondl/null/v8"

type Vehicle struct {
	ID        int64       `json:"id"`
	ClientID  int64       `json:"client_id"`
	Number    string      `json:"number"`
	Brand     null.String `json:"brand"`
	Model     null.String `json:"model"`
	TruckType null.String `json:"truck_type"`
}

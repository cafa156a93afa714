package entities

import "github.com/shopspring/decimal"

type Statistics struct {
	OrdersCount   int64            `json:"orders_count"`
	Revenue       decimal.Decimal  `json:"revenue"`
	AverageCheck  decimal.Decimal  `json:"average_check"`
	ByWorker      []WorkerStat     `json:"by_worker,omitempty"`
	ByService     []ServiceStat    `json:"by_service,omitempty"`
	SalaryBalance *decimal.Decimal `json:"salary_balance,omitempty"`
}

type WorkerStat struct {
	WorkerID    int64           `json:"worker_id"`
	FullName    string          `json:"full_name"`
	OrdersCount int64           `json:"orders_count"`
	Revenue     decimal.Decimal `json:"revenue"`
}

type ServiceStat struct {
	ServiceID int64           `json:"service_id"`
	Name      string          `json:"name"`
	Count     int64           `json:"count"`
	Revenue   decimal.Decimal `json:"revenue"`
}

package dto

type AppointmentCounts struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Cancelled int64 `json:"cancelled"`
	Upcoming  int64 `json:"upcoming"`
	Today     int64 `json:"today"`
}

type ServiceCounts struct {
	Total        int64   `json:"total"`
	Active       int64   `json:"active"`
	AveragePrice float64 `json:"averagePrice"`
}

type Financials struct {
	PotentialRevenue float64 `json:"potentialRevenue"`
}

type Summary struct {
	Appointments AppointmentCounts `json:"appointments"`
	Services     ServiceCounts     `json:"services"`
	Financials   Financials        `json:"financials"`
}

type HealthCounts struct {
	Categories   int64 `json:"categories"`
	Services     int64 `json:"services"`
	Appointments int64 `json:"appointments"`
}

type Health struct {
	Status    string       `json:"status"`
	Timestamp string       `json:"timestamp"`
	Counts    HealthCounts `json:"counts"`
}

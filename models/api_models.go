// models/api_models.go
package models

import "time"

// DepartmentResponse is the JSON body for /api/department/{name}.
type DepartmentResponse struct {
	Data  interface{} `json:"data"`
	Count int         `json:"count"`
}

// RefreshResponse is the JSON body for /api/refresh.
type RefreshResponse struct {
	Status string `json:"status"`
}

// HealthResponse is the JSON body for /health.
type HealthResponse struct {
	Status            string     `json:"status"`
	SchedulerRunning  bool       `json:"scheduler_running"`
	RefreshInProgress bool       `json:"refresh_in_progress"`
	LastUpdate        *time.Time `json:"last_update"`
}

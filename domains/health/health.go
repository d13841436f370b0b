package health

import "context"

type Status string

const (
	StatusOk       Status = "OK"
	StatusDegraded Status = "DEGRADED"
	StatusError    Status = "ERROR"
)

type Component struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// Report covers the two backing services independently. A degraded cache
// never fails the probe: the API keeps serving straight from the database.
type Report struct {
	Status   Status    `json:"status"`
	Database Component `json:"database"`
	Cache    Component `json:"cache"`
}

type IHealthUsecase interface {
	Check(ctx context.Context) Report
}

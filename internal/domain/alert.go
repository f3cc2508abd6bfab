package domain

import "time"

type AlertPriority string

const (
	AlertPriorityLow      AlertPriority = "LOW"
	AlertPriorityMedium   AlertPriority = "MEDIUM"
	AlertPriorityHigh     AlertPriority = "HIGH"
	AlertPriorityCritical AlertPriority = "CRITICAL"
)

func (p AlertPriority) Valid() bool {
	switch p {
	case AlertPriorityLow, AlertPriorityMedium, AlertPriorityHigh, AlertPriorityCritical:
		return true
	}
	return false
}

// Alert flags a tool needing attention. Alerts are produced by the monitoring
// jobs and only read by the lifecycle core.
type Alert struct {
	ID          int32         `json:"id"`
	ToolID      int32         `json:"tool_id"`
	Description string        `json:"description"`
	Priority    AlertPriority `json:"priority"`
	CreatedOn   time.Time     `json:"created_on"`
}

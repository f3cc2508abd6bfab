package domain

import "time"

type ToolStatus string

const (
	ToolStatusAvailable   ToolStatus = "AVAILABLE"
	ToolStatusUnavailable ToolStatus = "UNAVAILABLE"
	ToolStatusMaintenance ToolStatus = "MAINTENANCE"
)

func (s ToolStatus) Valid() bool {
	switch s {
	case ToolStatusAvailable, ToolStatusUnavailable, ToolStatusMaintenance:
		return true
	}
	return false
}

type ToolCondition string

const (
	ToolConditionGood         ToolCondition = "GOOD"
	ToolConditionDeteriorated ToolCondition = "DETERIORATED"
	ToolConditionBad          ToolCondition = "BAD"
)

func (c ToolCondition) Valid() bool {
	switch c {
	case ToolConditionGood, ToolConditionDeteriorated, ToolConditionBad:
		return true
	}
	return false
}

type Tool struct {
	ID                  int32         `json:"id"`
	Name                string        `json:"name"`
	Code                string        `json:"code,omitempty"`
	Description         string        `json:"description"`
	ImageURL            *string       `json:"image_url,omitempty"`
	Status              ToolStatus    `json:"status"`
	Condition           ToolCondition `json:"condition"`
	Category            string        `json:"category"`
	Location            string        `json:"location"`
	AcquisitionDate     *string       `json:"acquisition_date,omitempty"`
	LastMaintenanceDate *string       `json:"last_maintenance_date,omitempty"`
	Notes               string        `json:"notes"`
	CreatedOn           time.Time     `json:"created_on"`
}

package domain

// ToolUsage aggregates how long a tool has been out across reservations.
// Active reservations count from their start date up to the report date.
type ToolUsage struct {
	ToolID           int32  `json:"tool_id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	TotalDays        int32  `json:"total_days"`
	ReservationCount int32  `json:"reservation_count"`
}

// UserUsage aggregates how long a user has held tools across reservations.
type UserUsage struct {
	UserID           int32  `json:"user_id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	TotalDays        int32  `json:"total_days"`
	ReservationCount int32  `json:"reservation_count"`
}

// ToolRequestCount ranks tools by how often they are reserved.
type ToolRequestCount struct {
	ToolID int32  `json:"tool_id"`
	Name   string `json:"name"`
	Count  int32  `json:"count"`
}

// UserRequestCount ranks users by how often they reserve tools.
type UserRequestCount struct {
	UserID int32  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Count  int32  `json:"count"`
}

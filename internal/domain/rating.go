package domain

import "time"

// Rating is the closeout record written when an admin receives a tool back.
type Rating struct {
	ID            int32         `json:"id"`
	ReservationID int32         `json:"reservation_id"`
	ToolID        int32         `json:"tool_id"`
	UserID        int32         `json:"user_id"`
	ToolCondition ToolCondition `json:"tool_condition"`
	UserRating    int32         `json:"user_rating"` // 1-5
	Comments      string        `json:"comments"`
	RatedBy       int32         `json:"rated_by"`
	CreatedOn     time.Time     `json:"created_on"`
}

package fiber

// CreateEventRequest represents event creation payload
// @Description Event creation DTO
type CreateEventRequest struct {
	ID        string `json:"id" example:"6f1c3a4e-1b2d-4c5e-8f90-0a1b2c3d4e5f"`
	Statistic string `json:"statistic" example:"orders"`
	Type      string `json:"type" example:"change" enums:"set,change"`
	Value     int64  `json:"value" example:"1"`
	Timestamp *int64 `json:"timestamp,omitempty" example:"1577836800"`
}

// EventResponse echoes the stored event.
type EventResponse struct {
	Status    string `json:"status" example:"created"`
	ID        string `json:"id"`
	Statistic string `json:"statistic"`
	Type      string `json:"type"`
	Value     int64  `json:"value"`
	Timestamp int64  `json:"timestamp"`
}

type BulkCreateEventsRequest struct {
	Events []CreateEventRequest `json:"events"`
}

type BulkCreateEventsResponse struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
}

// AdjustRequest is the payload for increase and decrease.
type AdjustRequest struct {
	Amount    *int64 `json:"amount,omitempty" example:"1"`
	Timestamp *int64 `json:"timestamp,omitempty"`
	ID        string `json:"id,omitempty"`
}

type SetRequest struct {
	Value     int64  `json:"value" example:"42"`
	Timestamp *int64 `json:"timestamp,omitempty"`
	ID        string `json:"id,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_event"`
	Message string `json:"message" example:"Event payload is invalid"`
}

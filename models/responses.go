package models

// Response statuses.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Response is the JSON envelope of every API response.
//
//	{"status": "success", "results": 2, "total": 10, "data": {"users": [...]}}
type Response struct {
	// Status is "success", "fail" (client error) or "error" (server error).
	Status string `json:"status"`

	// Results is the number of items in Data for list responses.
	Results *int `json:"results,omitempty"`

	// Total is the number of items matching the request across all pages.
	Total *int64 `json:"total,omitempty"`

	// RequestedAt is the time the request entered the server.
	RequestedAt string `json:"requestedAt,omitempty"`

	// Data carries the payload.
	Data any `json:"data,omitempty"`

	// Message describes a failure.
	Message string `json:"message,omitempty"`

	// Error and Stack carry diagnostic details in development mode only.
	Error any    `json:"error,omitempty"`
	Stack string `json:"stack,omitempty"`
}

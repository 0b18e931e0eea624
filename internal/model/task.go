package model

import "time"

const (
	TaskStatusOpen   = "open"
	TaskStatusClosed = "closed"
)

const (
	DefaultEstimateMinutes = 25
	DefaultPriority        = 3
)

// Tags is the fixed set the capture form offers. The first entry doubles as
// the default when capture omits a tag.
var Tags = []string{"Deep Work", "Shallow Work", "Admin", "Outreach", "Personal"}

type Task struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Context         string    `json:"context"`
	EstimateMinutes int       `json:"estMinutes"`
	Tag             string    `json:"tag"`
	Priority        int       `json:"priority"`
	CreatedAt       time.Time `json:"createdAt"`
	Status          string    `json:"status"`
}

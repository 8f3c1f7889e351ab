package entity

import "time"

// Subscriber statuses.
const (
	StatusActive       = "active"
	StatusUnsubscribed = "unsubscribed"
)

// Subscriber represents a newsletter signup without infrastructure
// concerns.
type Subscriber struct {
	ID        string
	Email     string
	Source    string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

package activity

import "time"

// Log is an append-only record of a mutating API call.
type Log struct {
	ID         int64
	UserID     *int64
	Action     string
	EntityType *string
	EntityID   *int64
	Details    *string
	IPAddress  *string
	CreatedAt  time.Time

	// Join
	UserEmail *string
}

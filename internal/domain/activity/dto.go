package activity

import (
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/utils"
)

type LogFilter struct {
	UserID     *int64
	EntityType *string
	Action     *string
	Page       int
	Limit      int
}

type LogResponse struct {
	ID         int64     `json:"id"`
	UserID     *int64    `json:"user_id"`
	UserEmail  *string   `json:"user_email,omitempty"`
	Action     string    `json:"action"`
	EntityType *string   `json:"entity_type"`
	EntityID   *int64    `json:"entity_id"`
	Details    *string   `json:"details"`
	IPAddress  *string   `json:"ip_address"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewLogResponse(l Log) LogResponse {
	return LogResponse{
		ID:         l.ID,
		UserID:     l.UserID,
		UserEmail:  l.UserEmail,
		Action:     l.Action,
		EntityType: l.EntityType,
		EntityID:   l.EntityID,
		Details:    l.Details,
		IPAddress:  l.IPAddress,
		CreatedAt:  l.CreatedAt,
	}
}

type ListLogResponse struct {
	Logs       []LogResponse    `json:"logs"`
	Pagination utils.Pagination `json:"pagination"`
}

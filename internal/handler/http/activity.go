package http

import (
	"net/http"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/activity"
	"github.com/hrms-suite/hrms-backend-go/internal/handler/http/response"
)

type ActivityHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type activityHandlerImpl struct {
	activityService activity.Service
}

func NewActivityHandler(activityService activity.Service) ActivityHandler {
	return &activityHandlerImpl{activityService: activityService}
}

// List pages through the audit trail.
func (h *activityHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := activity.LogFilter{
		UserID:     q.Int64("user_id"),
		EntityType: q.String("entity_type"),
		Action:     q.String("action"),
		Page:       intOrZero(q.Int("page")),
		Limit:      intOrZero(q.Int("limit")),
	}
	if err := q.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.activityService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

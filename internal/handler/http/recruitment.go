package http

import (
	"net/http"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/recruitment"
	"github.com/hrms-suite/hrms-backend-go/internal/handler/http/response"
)

type RecruitmentHandler interface {
	ListPostings(w http.ResponseWriter, r *http.Request)
	GetPosting(w http.ResponseWriter, r *http.Request)
	CreatePosting(w http.ResponseWriter, r *http.Request)
	UpdatePosting(w http.ResponseWriter, r *http.Request)
	DeletePosting(w http.ResponseWriter, r *http.Request)
	Apply(w http.ResponseWriter, r *http.Request)
	ListApplications(w http.ResponseWriter, r *http.Request)
	GetApplication(w http.ResponseWriter, r *http.Request)
	UpdateApplicationStatus(w http.ResponseWriter, r *http.Request)
}

type recruitmentHandlerImpl struct {
	recruitmentService recruitment.RecruitmentService
}

func NewRecruitmentHandler(recruitmentService recruitment.RecruitmentService) RecruitmentHandler {
	return &recruitmentHandlerImpl{recruitmentService: recruitmentService}
}

func (h *recruitmentHandlerImpl) ListPostings(w http.ResponseWriter, r *http.Request) {
	result, err := h.recruitmentService.ListPostings(r.Context(), newQueryParams(r).String("status"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *recruitmentHandlerImpl) GetPosting(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.recruitmentService.GetPosting(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *recruitmentHandlerImpl) CreatePosting(w http.ResponseWriter, r *http.Request) {
	var req recruitment.CreatePostingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.recruitmentService.CreatePosting(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Job posting created successfully", result)
}

func (h *recruitmentHandlerImpl) UpdatePosting(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req recruitment.UpdatePostingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.recruitmentService.UpdatePosting(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Job posting updated successfully", result)
}

func (h *recruitmentHandlerImpl) DeletePosting(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.recruitmentService.DeletePosting(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Job posting deleted successfully", nil)
}

func (h *recruitmentHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var req recruitment.ApplyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.recruitmentService.Apply(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Application submitted successfully", result)
}

func (h *recruitmentHandlerImpl) ListApplications(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := recruitment.ApplicationFilter{
		Status:       q.String("status"),
		JobPostingID: q.Int64("job_posting_id"),
	}
	if err := q.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.recruitmentService.ListApplications(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *recruitmentHandlerImpl) GetApplication(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.recruitmentService.GetApplication(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *recruitmentHandlerImpl) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req recruitment.UpdateApplicationStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.recruitmentService.UpdateApplicationStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Application status updated successfully", result)
}

package http

import (
	"net/http"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/jobtitle"
	"github.com/hrms-suite/hrms-backend-go/internal/handler/http/response"
)

type JobTitleHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type jobTitleHandlerImpl struct {
	jobTitleService jobtitle.JobTitleService
}

func NewJobTitleHandler(jobTitleService jobtitle.JobTitleService) JobTitleHandler {
	return &jobTitleHandlerImpl{jobTitleService: jobTitleService}
}

func (h *jobTitleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	departmentID := q.Int64("department_id")
	if err := q.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.jobTitleService.ListJobTitles(r.Context(), departmentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *jobTitleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.jobTitleService.GetJobTitle(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *jobTitleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req jobtitle.CreateJobTitleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.jobTitleService.CreateJobTitle(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Job title created successfully", result)
}

func (h *jobTitleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req jobtitle.UpdateJobTitleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.jobTitleService.UpdateJobTitle(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Job title updated successfully", result)
}

func (h *jobTitleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.jobTitleService.DeleteJobTitle(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Job title deleted successfully", nil)
}

package http

import (
	"net/http"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/training"
	"github.com/hrms-suite/hrms-backend-go/internal/handler/http/response"
)

type TrainingHandler interface {
	ListPrograms(w http.ResponseWriter, r *http.Request)
	GetProgram(w http.ResponseWriter, r *http.Request)
	CreateProgram(w http.ResponseWriter, r *http.Request)
	UpdateProgram(w http.ResponseWriter, r *http.Request)
	DeleteProgram(w http.ResponseWriter, r *http.Request)
	Enroll(w http.ResponseWriter, r *http.Request)
	UpdateEnrollment(w http.ResponseWriter, r *http.Request)
	Unenroll(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type trainingHandlerImpl struct {
	trainingService training.TrainingService
}

func NewTrainingHandler(trainingService training.TrainingService) TrainingHandler {
	return &trainingHandlerImpl{trainingService: trainingService}
}

func (h *trainingHandlerImpl) ListPrograms(w http.ResponseWriter, r *http.Request) {
	result, err := h.trainingService.ListPrograms(r.Context(), newQueryParams(r).String("status"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *trainingHandlerImpl) GetProgram(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.trainingService.GetProgram(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *trainingHandlerImpl) CreateProgram(w http.ResponseWriter, r *http.Request) {
	var req training.CreateProgramRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.trainingService.CreateProgram(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Training program created successfully", result)
}

func (h *trainingHandlerImpl) UpdateProgram(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req training.UpdateProgramRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.trainingService.UpdateProgram(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Training program updated successfully", result)
}

func (h *trainingHandlerImpl) DeleteProgram(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.trainingService.DeleteProgram(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Training program deleted successfully", nil)
}

// Enroll adds an employee to the program in the {id} path parameter.
func (h *trainingHandlerImpl) Enroll(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req training.EnrollRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ProgramID = id

	result, err := h.trainingService.Enroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Employee enrolled successfully", result)
}

func (h *trainingHandlerImpl) UpdateEnrollment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req training.UpdateEnrollmentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.trainingService.UpdateEnrollment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Enrollment updated successfully", result)
}

func (h *trainingHandlerImpl) Unenroll(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.trainingService.Unenroll(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Enrollment removed successfully", nil)
}

func (h *trainingHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	result, err := h.trainingService.GetStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

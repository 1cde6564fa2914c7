package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/labourhub/labour-backend-go/internal/domain/deduction"
	"github.com/labourhub/labour-backend-go/internal/handler/http/response"
)

type DeductionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListByLabour(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type deductionHandlerImpl struct {
	deductionService deduction.DeductionService
}

func NewDeductionHandler(deductionService deduction.DeductionService) DeductionHandler {
	return &deductionHandlerImpl{deductionService: deductionService}
}

func (h *deductionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req deduction.CreateDeductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateDeduction decode error", "error", err)
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.deductionService.Create(r.Context(), req)
	if err != nil {
		slog.Error("CreateDeduction service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Deduction created successfully", created)
}

func (h *deductionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.deductionService.List(r.Context(), optionalQuery(r, "month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *deductionHandlerImpl) ListByLabour(w http.ResponseWriter, r *http.Request) {
	result, err := h.deductionService.ListByLabour(r.Context(), chi.URLParam(r, "labourId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *deductionHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req deduction.UpdateDeductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	updated, err := h.deductionService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Deduction updated successfully", updated)
}

func (h *deductionHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.deductionService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Deduction deleted successfully", nil)
}

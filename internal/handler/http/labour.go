package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/labourhub/labour-backend-go/internal/domain/labour"
	"github.com/labourhub/labour-backend-go/internal/handler/http/response"
)

type LabourHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type labourHandlerImpl struct {
	labourService labour.LabourService
}

func NewLabourHandler(labourService labour.LabourService) LabourHandler {
	return &labourHandlerImpl{labourService: labourService}
}

// Create implements LabourHandler.
func (h *labourHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req labour.CreateLabourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateLabour decode error", "error", err)
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.labourService.Create(r.Context(), req)
	if err != nil {
		slog.Error("CreateLabour service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Labour created successfully", created)
}

// List implements LabourHandler.
func (h *labourHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter labour.LabourFilter

	query := r.URL.Query()
	filter.Search = optionalQuery(r, "search")
	filter.Status = optionalQuery(r, "status")
	if p := query.Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			filter.Page = pageNum
		}
	}
	if l := query.Get("limit"); l != "" {
		if limitNum, err := strconv.Atoi(l); err == nil && limitNum > 0 {
			filter.Limit = limitNum
		}
	}
	filter.SortBy = query.Get("sort_by")
	filter.SortDir = query.Get("sort_dir")

	result, err := h.labourService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Labours, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// Get implements LabourHandler.
func (h *labourHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.labourService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Update implements LabourHandler.
func (h *labourHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req labour.UpdateLabourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	updated, err := h.labourService.Update(r.Context(), id, req)
	if err != nil {
		slog.Error("UpdateLabour service error", "error", err, "labour_id", id)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Labour updated successfully", updated)
}

// Delete implements LabourHandler.
func (h *labourHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.labourService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Labour deleted successfully", nil)
}

// optionalQuery returns nil when the query parameter is absent or empty.
func optionalQuery(r *http.Request, key string) *string {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil
	}
	return &value
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kiliclub/clubdesk/internal/api/request"
	"github.com/kiliclub/clubdesk/internal/api/response"
	"github.com/kiliclub/clubdesk/internal/model"
	"github.com/kiliclub/clubdesk/internal/services/location"
)

// LocationHandler handles court location endpoints
type LocationHandler struct {
	locations *location.Service
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locations *location.Service) *LocationHandler {
	return &LocationHandler{locations: locations}
}

func locationParams(req request.LocationRequest) location.Params {
	params := location.Params{
		Name:       req.Name,
		SessionFee: req.SessionFee,
		Currency:   req.Currency,
	}
	if req.CourtCharges != nil {
		params.CourtCharges = make([]model.CourtCharge, 0, len(req.CourtCharges))
		for _, c := range req.CourtCharges {
			params.CourtCharges = append(params.CourtCharges, model.CourtCharge{Duration: c.Duration, Amount: c.Amount})
		}
	}
	if req.PlayerLimits != nil {
		params.PlayerLimits = make([]model.PlayerLimit, 0, len(req.PlayerLimits))
		for _, l := range req.PlayerLimits {
			params.PlayerLimits = append(params.PlayerLimits, model.PlayerLimit{Courts: l.Courts, MaxPlayers: l.MaxPlayers})
		}
	}
	return params
}

// Create handles POST /api/v1/locations
func (h *LocationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	loc, err := h.locations.Create(r.Context(), locationParams(req))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.LocationFromModel(loc))
}

// List handles GET /api/v1/locations
func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	locations, err := h.locations.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LocationListFromModels(locations))
}

// Get handles GET /api/v1/locations/{id}
func (h *LocationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.LocationID(mux.Vars(r)["id"])

	loc, err := h.locations.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LocationFromModel(loc))
}

// Update handles PUT /api/v1/locations/{id}
func (h *LocationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.LocationID(mux.Vars(r)["id"])

	var req request.LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	loc, err := h.locations.Update(r.Context(), id, locationParams(req))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LocationFromModel(loc))
}

// Delete handles DELETE /api/v1/locations/{id}
func (h *LocationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.LocationID(mux.Vars(r)["id"])

	if err := h.locations.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

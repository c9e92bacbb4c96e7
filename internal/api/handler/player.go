package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/kiliclub/clubdesk/internal/api/request"
	"github.com/kiliclub/clubdesk/internal/api/response"
	"github.com/kiliclub/clubdesk/internal/model"
	"github.com/kiliclub/clubdesk/internal/services/player"
)

// DefaultPageSize is applied when a listing request names no page size
const DefaultPageSize = 10

// PlayerHandler handles player endpoints
type PlayerHandler struct {
	players *player.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(players *player.Service) *PlayerHandler {
	return &PlayerHandler{players: players}
}

func playerParams(req request.PlayerRequest) (player.Params, error) {
	var birth *time.Time
	if req.BirthDate != "" {
		t, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			return player.Params{}, NewInvalidRequestError("birth_date must be YYYY-MM-DD")
		}
		birth = &t
	}
	return player.Params{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		BirthDate:     birth,
		ContactNumber: req.ContactNumber,
		CountryCode:   req.CountryCode,
		DuprID:        req.DuprID,
		Role:          req.Role,
		Notes:         req.Notes,
	}, nil
}

// Create handles POST /api/v1/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.PlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.FirstName == "" {
		WriteError(w, NewInvalidRequestError("first_name is required"))
		return
	}
	if req.LastName == "" {
		WriteError(w, NewInvalidRequestError("last_name is required"))
		return
	}

	params, err := playerParams(req)
	if err != nil {
		WriteError(w, err)
		return
	}

	p, err := h.players.Create(r.Context(), params)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(p))
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := model.PlayerFilter{
		Status:  model.StatusFilter(q.Get("status")),
		Balance: model.BalanceFilter(q.Get("balance")),
		Search:  q.Get("search"),
	}
	page, pageSize := pagination(q.Get("page"), q.Get("page_size"))

	players, total, err := h.players.List(r.Context(), filter, page, pageSize)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerListFromModels(players, total, page, pageSize))
}

// Get handles GET /api/v1/players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	p, err := h.players.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
}

// Update handles PUT /api/v1/players/{id}
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	var req request.PlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.FirstName == "" {
		WriteError(w, NewInvalidRequestError("first_name is required"))
		return
	}
	if req.LastName == "" {
		WriteError(w, NewInvalidRequestError("last_name is required"))
		return
	}

	params, err := playerParams(req)
	if err != nil {
		WriteError(w, err)
		return
	}

	p, err := h.players.Update(r.Context(), id, params)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
}

// SetActive handles PATCH /api/v1/players/{id}/status
func (h *PlayerHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	var req request.SetActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	p, err := h.players.SetActive(r.Context(), id, req.Active)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
}

// Delete handles DELETE /api/v1/players/{id}
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	if err := h.players.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// DeleteAll handles DELETE /api/v1/players
func (h *PlayerHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.players.DeleteAll(r.Context()); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// pagination parses page/page_size query values, falling back to defaults
func pagination(pageRaw, sizeRaw string) (page, pageSize int) {
	page = 1
	pageSize = DefaultPageSize
	if n, err := strconv.Atoi(pageRaw); err == nil && n > 0 {
		page = n
	}
	if n, err := strconv.Atoi(sizeRaw); err == nil && n > 0 {
		pageSize = n
	}
	return page, pageSize
}

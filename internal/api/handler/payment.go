package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/kiliclub/clubdesk/internal/api/request"
	"github.com/kiliclub/clubdesk/internal/api/response"
	"github.com/kiliclub/clubdesk/internal/model"
	"github.com/kiliclub/clubdesk/internal/services/payment"
)

// PaymentHandler handles payment endpoints
type PaymentHandler struct {
	payments *payment.Service
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(payments *payment.Service) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// Create handles POST /api/v1/payments
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Type == "" {
		WriteError(w, NewInvalidRequestError("type is required"))
		return
	}

	p, err := h.payments.Create(r.Context(), payment.CreateParams{
		Type:     model.PaymentType(req.Type),
		PlayerID: model.PlayerID(req.PlayerID),
		Amount:   req.Amount,
		Currency: req.Currency,
		Notes:    req.Notes,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PaymentFromModel(p))
}

// List handles GET /api/v1/payments
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := model.PaymentFilter{
		Type:            model.PaymentType(q.Get("type")),
		PlayerID:        model.PlayerID(q.Get("player_id")),
		IncludeArchived: q.Get("include_archived") == "true",
		ArchivedOnly:    q.Get("archived_only") == "true",
		Search:          q.Get("search"),
	}
	if raw := q.Get("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			WriteError(w, NewInvalidRequestError("from must be RFC 3339"))
			return
		}
		filter.From = t
	}
	if raw := q.Get("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			WriteError(w, NewInvalidRequestError("to must be RFC 3339"))
			return
		}
		filter.To = t
	}

	page, pageSize := pagination(q.Get("page"), q.Get("page_size"))

	payments, total, err := h.payments.List(r.Context(), filter, page, pageSize)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PaymentListFromModels(payments, total, page, pageSize))
}

// Get handles GET /api/v1/payments/{id}
func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.PaymentID(mux.Vars(r)["id"])

	p, err := h.payments.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PaymentFromModel(p))
}

// Update handles PUT /api/v1/payments/{id}
func (h *PaymentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.PaymentID(mux.Vars(r)["id"])

	var req request.UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	p, err := h.payments.Update(r.Context(), id, payment.UpdateParams{
		Type:     model.PaymentType(req.Type),
		PlayerID: model.PlayerID(req.PlayerID),
		Amount:   req.Amount,
		Notes:    req.Notes,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PaymentFromModel(p))
}

// SetArchived handles PATCH /api/v1/payments/{id}/archive
func (h *PaymentHandler) SetArchived(w http.ResponseWriter, r *http.Request) {
	id := model.PaymentID(mux.Vars(r)["id"])

	var req request.SetArchivedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	p, err := h.payments.SetArchived(r.Context(), id, req.Archived)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PaymentFromModel(p))
}

// Delete handles DELETE /api/v1/payments/{id}
func (h *PaymentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.PaymentID(mux.Vars(r)["id"])

	if err := h.payments.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// DeleteAll handles DELETE /api/v1/payments
func (h *PaymentHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.payments.DeleteAll(r.Context()); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

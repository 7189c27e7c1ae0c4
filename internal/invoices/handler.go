package invoices

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/freightdesk/freightdesk/internal/platform/httpx"
	"github.com/freightdesk/freightdesk/internal/shared"
)

// Handler serves invoice and vendor-bill endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers invoice routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/next-number", h.nextNumber)
	r.Get("/{id}", h.show)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.remove)
	r.Post("/{id}/payments", h.recordPayment)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := ListInvoicesRequest{
		PartyType: PartyType(q.Get("party_type")),
		Status:    Status(q.Get("status")),
	}
	if v := q.Get("party_id"); v != "" {
		req.PartyID, _ = strconv.ParseInt(v, 10, 64)
	}
	if v := q.Get("limit"); v != "" {
		req.Limit, _ = strconv.Atoi(v)
	}
	if v := q.Get("offset"); v != "" {
		req.Offset, _ = strconv.Atoi(v)
	}

	items, total, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("list invoices", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if items == nil {
		items = []Invoice{}
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"invoices": items,
		"total":    total,
	})
}

func (h *Handler) nextNumber(w http.ResponseWriter, r *http.Request) {
	partyType := PartyType(r.URL.Query().Get("party_type"))
	if partyType != PartyCustomer && partyType != PartyVendor {
		partyType = PartyCustomer
	}
	number, err := h.service.NextNumber(r.Context(), partyType)
	if err != nil {
		h.logger.Error("next invoice number", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"number": number})
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid invoice id")
		return
	}
	inv, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Problem(w, http.StatusNotFound, "Not Found", "invoice not found")
			return
		}
		h.logger.Error("get invoice", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, inv)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateInvoiceRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	if err := shared.Validate(req); err != nil {
		respondValidation(w, err)
		return
	}

	inv, err := h.service.Create(r.Context(), req, shared.UserIDFromContext(r.Context()))
	if err != nil {
		if errors.Is(err, ErrDuplicateNumber) {
			httpx.Problem(w, http.StatusConflict, "Duplicate", "invoice number already exists")
			return
		}
		h.logger.Error("create invoice", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, inv)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid invoice id")
		return
	}
	var req UpdateInvoiceRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	if err := shared.Validate(req); err != nil {
		respondValidation(w, err)
		return
	}

	inv, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Problem(w, http.StatusNotFound, "Not Found", "invoice not found")
			return
		}
		h.logger.Error("update invoice", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, inv)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid invoice id")
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Problem(w, http.StatusNotFound, "Not Found", "invoice not found")
			return
		}
		h.logger.Error("delete invoice", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) recordPayment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid invoice id")
		return
	}
	var req RecordPaymentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	if err := shared.Validate(req); err != nil {
		respondValidation(w, err)
		return
	}

	inv, err := h.service.RecordPayment(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Problem(w, http.StatusNotFound, "Not Found", "invoice not found")
			return
		}
		h.logger.Error("record payment", slog.Any("error", err), slog.Int64("id", id))
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, inv)
}

func respondValidation(w http.ResponseWriter, err error) {
	var verr *shared.ValidationError
	if errors.As(err, &verr) {
		httpx.FieldProblem(w, "invoice invalid", verr.Fields)
		return
	}
	httpx.RespondError(w, err)
}

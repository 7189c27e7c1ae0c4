package ledger

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/freightdesk/freightdesk/internal/platform/httpx"
	"github.com/freightdesk/freightdesk/internal/shared"
)

// Handler serves ledger endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers ledger routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.show)
	r.Delete("/{id}", h.remove)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := ListEntriesRequest{
		PartyType: PartyType(q.Get("party_type")),
		Type:      EntryType(q.Get("type")),
	}
	if p := q.Get("party_id"); p != "" {
		req.PartyID, _ = strconv.ParseInt(p, 10, 64)
	}
	if f := q.Get("from"); f != "" {
		if t, err := time.Parse(time.RFC3339, f); err == nil {
			req.From = &t
		}
	}
	if to := q.Get("to"); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			req.To = &t
		}
	}
	if l := q.Get("limit"); l != "" {
		req.Limit, _ = strconv.Atoi(l)
	}
	if o := q.Get("offset"); o != "" {
		req.Offset, _ = strconv.Atoi(o)
	}

	items, totals, total, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("list ledger entries", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if items == nil {
		items = []Entry{}
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"entries": items,
		"totals":  totals,
		"total":   total,
	})
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid entry id")
		return
	}
	entry, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Problem(w, http.StatusNotFound, "Not Found", "ledger entry not found")
			return
		}
		h.logger.Error("get ledger entry", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, entry)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateEntryRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	if err := shared.Validate(req); err != nil {
		var verr *shared.ValidationError
		if errors.As(err, &verr) {
			httpx.FieldProblem(w, "ledger entry invalid", verr.Fields)
			return
		}
		httpx.RespondError(w, err)
		return
	}

	entry, err := h.service.Create(r.Context(), req, shared.UserIDFromContext(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, ErrBothSides), errors.Is(err, ErrNoAmount), errors.Is(err, ErrNegativeAmount):
			httpx.FieldProblem(w, "ledger entry invalid", map[string]string{"debit": err.Error()})
		default:
			h.logger.Error("create ledger entry", slog.Any("error", err))
			httpx.RespondError(w, err)
		}
		return
	}
	httpx.JSON(w, http.StatusCreated, entry)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid entry id")
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Problem(w, http.StatusNotFound, "Not Found", "ledger entry not found")
			return
		}
		h.logger.Error("delete ledger entry", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

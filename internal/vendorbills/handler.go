package vendorbills

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/freightdesk/freightdesk/internal/platform/httpx"
	"github.com/freightdesk/freightdesk/internal/shared"
)

// Handler serves vendor bill endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers vendor bill routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.show)
	r.Put("/{id}", h.update)
	r.Post("/{id}/pay", h.markPaid)
	r.Delete("/{id}", h.remove)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := ListVendorBillsRequest{Status: Status(q.Get("status"))}
	if v := q.Get("vendor_id"); v != "" {
		req.VendorID, _ = strconv.ParseInt(v, 10, 64)
	}
	if l := q.Get("limit"); l != "" {
		req.Limit, _ = strconv.Atoi(l)
	}
	if o := q.Get("offset"); o != "" {
		req.Offset, _ = strconv.Atoi(o)
	}

	items, total, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("list vendor bills", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if items == nil {
		items = []VendorBill{}
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"vendor_bills": items, "total": total})
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid bill id")
		return
	}
	bill, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Problem(w, http.StatusNotFound, "Not Found", "vendor bill not found")
			return
		}
		h.logger.Error("get vendor bill", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, bill)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateVendorBillRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	if err := shared.Validate(req); err != nil {
		respondValidation(w, err)
		return
	}

	bill, err := h.service.Create(r.Context(), req, shared.UserIDFromContext(r.Context()))
	if err != nil {
		if errors.Is(err, ErrDuplicateNumber) {
			httpx.Problem(w, http.StatusConflict, "Duplicate", "bill number already exists for vendor")
			return
		}
		h.logger.Error("create vendor bill", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, bill)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid bill id")
		return
	}
	var req UpdateVendorBillRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	if err := shared.Validate(req); err != nil {
		respondValidation(w, err)
		return
	}

	bill, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Problem(w, http.StatusNotFound, "Not Found", "vendor bill not found")
			return
		}
		h.logger.Error("update vendor bill", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, bill)
}

func (h *Handler) markPaid(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid bill id")
		return
	}
	bill, err := h.service.MarkPaid(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.Problem(w, http.StatusNotFound, "Not Found", "vendor bill not found")
		case errors.Is(err, ErrAlreadyPaid):
			httpx.Problem(w, http.StatusConflict, "Conflict", "vendor bill already paid")
		default:
			h.logger.Error("mark vendor bill paid", slog.Any("error", err), slog.Int64("id", id))
			httpx.RespondError(w, err)
		}
		return
	}
	httpx.JSON(w, http.StatusOK, bill)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid bill id")
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Problem(w, http.StatusNotFound, "Not Found", "vendor bill not found")
			return
		}
		h.logger.Error("delete vendor bill", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respondValidation(w http.ResponseWriter, err error) {
	var verr *shared.ValidationError
	if errors.As(err, &verr) {
		httpx.FieldProblem(w, "vendor bill invalid", verr.Fields)
		return
	}
	httpx.RespondError(w, err)
}

package reports

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/freightdesk/freightdesk/internal/platform/httpx"
	"github.com/freightdesk/freightdesk/internal/shipments"
)

// Handler serves report endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers report routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/balance-sheet", h.balanceSheet)
	r.Get("/shipments", h.shipmentDetail)
	r.Get("/expenses", h.expenseSummary)
	r.Get("/vendor-bills", h.vendorBillSummary)
}

func displayCurrency(r *http.Request) string {
	if c := r.URL.Query().Get("currency"); c != "" {
		return c
	}
	return "USD"
}

func (h *Handler) balanceSheet(w http.ResponseWriter, r *http.Request) {
	sheet, err := h.service.BalanceSheet(r.Context(), displayCurrency(r))
	if err != nil {
		h.logger.Error("balance sheet", slog.Any("error", err))
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"sheet":   sheet,
		"display": sheet.Display(),
	})
}

func (h *Handler) shipmentDetail(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := shipments.ListShipmentsRequest{
		Direction: shipments.Direction(q.Get("direction")),
		Mode:      q.Get("mode"),
	}
	if c := q.Get("customer_id"); c != "" {
		req.CustomerID, _ = strconv.ParseInt(c, 10, 64)
	}

	report, err := h.service.ShipmentDetail(r.Context(), req, displayCurrency(r))
	if err != nil {
		h.logger.Error("shipment report", slog.Any("error", err))
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, report)
}

func (h *Handler) expenseSummary(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.ExpenseSummary(r.Context(), displayCurrency(r))
	if err != nil {
		h.logger.Error("expense report", slog.Any("error", err))
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, report)
}

func (h *Handler) vendorBillSummary(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.VendorBillSummary(r.Context(), displayCurrency(r))
	if err != nil {
		h.logger.Error("vendor bill report", slog.Any("error", err))
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, report)
}

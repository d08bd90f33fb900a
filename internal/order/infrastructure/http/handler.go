package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmehra2102/bookstore-services/internal/order/application"
	"github.com/dmehra2102/bookstore-services/pkg/httpx"
)

type Handler struct {
	log     *slog.Logger
	service *application.Service
	tracer  trace.Tracer
}

func NewHandler(log *slog.Logger, service *application.Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
		tracer:  otel.Tracer("order-http"),
	}
}

type createOrderReq struct {
	BookID       int64  `json:"book_id"`
	CustomerName string `json:"customer_name"`
	Quantity     int    `json:"quantity"`
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", h.health)
	r.Route("/api/orders", func(r chi.Router) {
		r.Get("/", h.listOrders)
		r.Post("/", h.createOrder)
	})
	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "order-service"})
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "CreateOrder")
	defer span.End()

	var req createOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid body", err.Error())
		return
	}
	if req.BookID <= 0 || req.CustomerName == "" {
		httpx.WriteError(w, http.StatusBadRequest, "book_id and customer_name are required", "")
		return
	}
	if req.Quantity < 0 {
		httpx.WriteError(w, http.StatusBadRequest, "quantity must not be negative", "")
		return
	}

	order, err := h.service.CreateOrder(ctx, req.BookID, req.CustomerName, req.Quantity)
	switch {
	case errors.Is(err, application.ErrBookNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Cannot order: Book does not exist", "")
	case errors.Is(err, application.ErrCatalogUnreachable):
		h.log.Error("existence check failed", "book_id", req.BookID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Communication error with book-service or database", "")
	case errors.Is(err, application.ErrStoreFailure):
		h.log.Error("order insert failed", "book_id", req.BookID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Communication error with book-service or database", err.Error())
	case err != nil:
		h.log.Error("order creation failed", "book_id", req.BookID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Communication error with book-service or database", "")
	default:
		httpx.WriteJSON(w, http.StatusCreated, order)
	}
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		h.log.Error("list orders failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "database error", err.Error())
		return
	}
	httpx.WriteJSON(w, http.StatusOK, orders)
}

package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmehra2102/bookstore-services/internal/catalog/application"
	"github.com/dmehra2102/bookstore-services/internal/catalog/domain"
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
		tracer:  otel.Tracer("catalog-http"),
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", h.health)
	r.Route("/api/books", func(r chi.Router) {
		r.Get("/", h.listBooks)
		r.Post("/", h.createBook)
		r.Get("/{id}", h.getBook)
		r.Put("/{id}", h.updateBook)
		r.Delete("/{id}", h.deleteBook)
	})
	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "book-service"})
}

func bookID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.ListBooks(r.Context())
	if err != nil {
		h.log.Error("list books failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "database error", err.Error())
		return
	}
	httpx.WriteJSON(w, http.StatusOK, books)
}

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GetBook")
	defer span.End()

	id, err := bookID(r)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid book id", "")
		return
	}
	book, err := h.service.GetBook(ctx, id)
	switch {
	case errors.Is(err, application.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Book not found", "")
	case err != nil:
		h.log.Error("get book failed", "id", id, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "database error", err.Error())
	default:
		httpx.WriteJSON(w, http.StatusOK, book)
	}
}

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	// BookPatch doubles as the create payload: pointer fields keep an
	// absent price distinguishable from an explicit zero.
	var body domain.BookPatch
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid body", err.Error())
		return
	}
	if body.Title == nil || *body.Title == "" || body.Author == nil || *body.Author == "" || body.Price == nil {
		httpx.WriteError(w, http.StatusBadRequest, "title, author, and price are required", "")
		return
	}

	book := domain.Book{Title: *body.Title, Author: *body.Author, Price: *body.Price}
	if body.Stock != nil {
		book.Stock = *body.Stock
	}
	created, err := h.service.CreateBook(r.Context(), book)
	if err != nil {
		h.log.Error("create book failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "database error", err.Error())
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateBook(w http.ResponseWriter, r *http.Request) {
	id, err := bookID(r)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid book id", "")
		return
	}
	var patch domain.BookPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid body", err.Error())
		return
	}
	book, err := h.service.UpdateBook(r.Context(), id, patch)
	switch {
	case errors.Is(err, application.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Book not found", "")
	case err != nil:
		h.log.Error("update book failed", "id", id, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "database error", err.Error())
	default:
		httpx.WriteJSON(w, http.StatusOK, book)
	}
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := bookID(r)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid book id", "")
		return
	}
	book, err := h.service.DeleteBook(r.Context(), id)
	switch {
	case errors.Is(err, application.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Book not found", "")
	case err != nil:
		h.log.Error("delete book failed", "id", id, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "database error", err.Error())
	default:
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"message": "Book deleted", "book": book})
	}
}

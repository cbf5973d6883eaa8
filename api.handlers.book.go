package main

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// Health answers liveness probes with a constant plain text body.
//
//	@Summary	Liveness probe
//	@Tags		health
//	@Produce	plain
//	@Success	200	{string}	string	"OK"
//	@Router		/api/health [get]
func (api *APIHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		api.GetLoggerFromContext(r.Context()).Error("failed to send health response", zap.Error(err))
	}
}

// GetOneBook returns the catalog book for the requested id. An id which is
// not an unsigned integer is rejected the same way an unknown route is.
//
//	@Summary	Get a book by id
//	@Tags		books
//	@Produce	json
//	@Param		id	path		integer	true	"Book id"	minimum(0)
//	@Success	200	{object}	main.Book
//	@Failure	404	{string}	string	"404 page not found"
//	@Router		/books/{id} [get]
func (api *APIHandler) GetOneBook(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	logger := api.GetLoggerFromContext(r.Context())
	rawID := ps.ByName("id")
	// A single leading plus sign is accepted like an unsigned integer literal.
	id, err := strconv.ParseUint(strings.TrimPrefix(rawID, "+"), 10, 64)
	if err != nil {
		logger.Debug("book id is not an unsigned integer", zap.String("book.id", rawID), zap.Error(err))
		http.NotFound(w, r)
		return
	}

	book, err := api.bookService.GetOne(r.Context(), id)
	if err != nil {
		logger.Error("failed to get book", zap.Uint64("book.id", id), zap.Error(err))
		errResp := NewAPIError(GetValueFromContext(r.Context(), RequestIDContextKey), http.StatusInternalServerError, "failed to get the book", EmptyData)
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			logger.Error("failed to send error response", zap.Error(err))
		}
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(book); err != nil {
		logger.Error("failed to send book response", zap.Uint64("book.id", id), zap.Error(err))
	}
}

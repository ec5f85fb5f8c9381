package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/TavernSim_Go/internal/domain"
	"github.com/osse101/TavernSim_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// bufferPool reduces allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and answers with the mapped status and message
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgOperationFailed, "operation", opName, "error", err)
	} else {
		log.Warn(LogMsgOperationFailed, "operation", opName, "error", err)
	}
	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages that do not leak internals.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughGoldError
	case errors.Is(err, domain.ErrInsufficientQuantity):
		return http.StatusBadRequest, ErrMsgNotEnoughStockError
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrSlotOutOfRange):
		return http.StatusBadRequest, ErrMsgSlotOutOfRangeError
	case errors.Is(err, domain.ErrRecipeNotDiscovered):
		return http.StatusForbidden, ErrMsgRecipeUnknownError
	case errors.Is(err, domain.ErrUnknownID):
		return http.StatusNotFound, ErrMsgUnknownIDError
	case errors.Is(err, domain.ErrEventNotFound):
		return http.StatusNotFound, ErrMsgEventNotFoundError
	case errors.Is(err, domain.ErrCustomerNotFound):
		return http.StatusNotFound, ErrMsgCustomerNotFoundError
	case errors.Is(err, domain.ErrSlotEmpty):
		return http.StatusNotFound, ErrMsgSlotEmptyError
	case errors.Is(err, domain.ErrQueueFull):
		return http.StatusConflict, ErrMsgTavernFullError
	case errors.Is(err, domain.ErrNoEligibleCustomer):
		return http.StatusConflict, ErrMsgNoCustomerTypeError
	case errors.Is(err, domain.ErrMalformedSave):
		return http.StatusUnprocessableEntity, ErrMsgMalformedSaveError
	case errors.Is(err, domain.ErrStoreNotFound):
		return http.StatusServiceUnavailable, ErrMsgStoreUnavailableError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

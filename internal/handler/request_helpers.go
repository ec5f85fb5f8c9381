package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/TavernSim_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error the response has already been written.
//
// Example usage:
//
//	var req CraftRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Craft potion"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf(LogMsgDecodeFailed, actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf(LogMsgRequestDecoded, actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetPathParam returns a chi URL parameter, answering 400 when it is empty.
func GetPathParam(r *http.Request, w http.ResponseWriter, name string) (string, bool) {
	value := chi.URLParam(r, name)
	if value == "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingPathParam, name))
		return "", false
	}
	return value, true
}

// GetSlotParam parses the {slot} path parameter and checks it against the slot count.
func GetSlotParam(r *http.Request, w http.ResponseWriter, slots int) (int, bool) {
	raw, ok := GetPathParam(r, w, ParamSlot)
	if !ok {
		return 0, false
	}
	slot, err := strconv.Atoi(raw)
	if err != nil || slot < 0 || slot >= slots {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidSlot)
		return 0, false
	}
	return slot, true
}

// GetOptionalQueryParam returns a query parameter or defaultValue when it is missing.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetOptionalIntQueryParam parses an optional non-negative integer query
// parameter, answering 400 with errMsg when it is malformed.
func GetOptionalIntQueryParam(r *http.Request, w http.ResponseWriter, paramName string, defaultValue int, errMsg string) (int, bool) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return defaultValue, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		respondError(w, http.StatusBadRequest, errMsg)
		return 0, false
	}
	return v, true
}

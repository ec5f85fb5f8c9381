package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/TavernSim_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantMsg    string
	}{
		{domain.ErrInsufficientFunds, http.StatusBadRequest, ErrMsgNotEnoughGoldError},
		{fmt.Errorf("%w: no healing in stock", domain.ErrInsufficientQuantity), http.StatusBadRequest, ErrMsgNotEnoughStockError},
		{domain.ErrInvalidQuantity, http.StatusBadRequest, ErrMsgInvalidInputError},
		{domain.ErrRecipeNotDiscovered, http.StatusForbidden, ErrMsgRecipeUnknownError},
		{domain.ErrUnknownID, http.StatusNotFound, ErrMsgUnknownIDError},
		{domain.ErrEventNotFound, http.StatusNotFound, ErrMsgEventNotFoundError},
		{domain.ErrCustomerNotFound, http.StatusNotFound, ErrMsgCustomerNotFoundError},
		{domain.ErrSlotEmpty, http.StatusNotFound, ErrMsgSlotEmptyError},
		{domain.ErrQueueFull, http.StatusConflict, ErrMsgTavernFullError},
		{domain.ErrNoEligibleCustomer, http.StatusConflict, ErrMsgNoCustomerTypeError},
		{domain.ErrMalformedSave, http.StatusUnprocessableEntity, ErrMsgMalformedSaveError},
		{domain.ErrStoreNotFound, http.StatusServiceUnavailable, ErrMsgStoreUnavailableError},
		{errors.New("disk on fire"), http.StatusInternalServerError, ErrMsgGenericServerError},
		{nil, http.StatusInternalServerError, ErrMsgUnknownError},
	}

	for _, tt := range tests {
		status, msg := mapServiceErrorToUserMessage(tt.err)
		assert.Equal(t, tt.wantStatus, status, "%v", tt.err)
		assert.Equal(t, tt.wantMsg, msg, "%v", tt.err)
	}
}

func TestRespondJSON_EncodeFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	respondJSON(rec, http.StatusOK, func() {})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgGenericServerError)
}

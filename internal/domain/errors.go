package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Ledger errors
	ErrMsgInsufficientFunds    = "insufficient funds"
	ErrMsgInsufficientQuantity = "insufficient quantity"
	ErrMsgInvalidQuantity      = "quantity must be positive"

	// Catalog errors
	ErrMsgUnknownID = "unknown id"

	// Recipe errors
	ErrMsgRecipeNotDiscovered = "recipe not discovered"

	// World event errors
	ErrMsgEventNotFound = "event not found"

	// Customer errors
	ErrMsgNoEligibleCustomer = "no eligible customer type"
	ErrMsgCustomerNotFound   = "customer not found"
	ErrMsgQueueFull          = "customer queue is full"

	// Save errors
	ErrMsgSlotEmpty       = "save slot is empty"
	ErrMsgSlotOutOfRange  = "save slot out of range"
	ErrMsgMalformedSave   = "malformed save data"
	ErrMsgStoreNotFound   = "key not found in store"
	ErrMsgVersionMismatch = "save version mismatch"

	// Bus errors
	ErrMsgPayloadType = "unexpected payload type"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInsufficientFunds    = errors.New(ErrMsgInsufficientFunds)
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)
	ErrInvalidQuantity      = errors.New(ErrMsgInvalidQuantity)

	ErrUnknownID = errors.New(ErrMsgUnknownID)

	ErrRecipeNotDiscovered = errors.New(ErrMsgRecipeNotDiscovered)

	ErrEventNotFound = errors.New(ErrMsgEventNotFound)

	ErrNoEligibleCustomer = errors.New(ErrMsgNoEligibleCustomer)
	ErrCustomerNotFound   = errors.New(ErrMsgCustomerNotFound)
	ErrQueueFull          = errors.New(ErrMsgQueueFull)

	ErrSlotEmpty       = errors.New(ErrMsgSlotEmpty)
	ErrSlotOutOfRange  = errors.New(ErrMsgSlotOutOfRange)
	ErrMalformedSave   = errors.New(ErrMsgMalformedSave)
	ErrStoreNotFound   = errors.New(ErrMsgStoreNotFound)
	ErrVersionMismatch = errors.New(ErrMsgVersionMismatch)

	ErrPayloadType = errors.New(ErrMsgPayloadType)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

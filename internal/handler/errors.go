package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	ErrMsgMissingPathParam = "Missing %s path parameter"
	ErrMsgInvalidSlot      = "Invalid save slot"
	ErrMsgInvalidLimit     = "Invalid limit parameter"
	ErrMsgInvalidAfter     = "Invalid after parameter"

	ErrMsgSaveFailed   = "Save failed"
	ErrMsgLoadFailed   = "Load failed"
	ErrMsgDeleteFailed = "Delete failed"
	ErrMsgImportFailed = "Import rejected"
)

// User-facing error messages for domain errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgNotEnoughGoldError    = "Not enough gold"
	ErrMsgNotEnoughStockError   = "Not enough in stock"
	ErrMsgInvalidInputError     = "Invalid request. Please check your inputs."
	ErrMsgUnknownIDError        = "Unknown id"
	ErrMsgRecipeUnknownError    = "Recipe not discovered yet"
	ErrMsgEventNotFoundError    = "Event not found"
	ErrMsgCustomerNotFoundError = "Customer not found"
	ErrMsgTavernFullError       = "The tavern is full"
	ErrMsgNoCustomerTypeError   = "Nobody wants to visit right now"
	ErrMsgSlotEmptyError        = "Save slot is empty"
	ErrMsgSlotOutOfRangeError   = "Save slot out of range"
	ErrMsgMalformedSaveError    = "Save data is malformed"
	ErrMsgStoreUnavailableError = "Save storage is unavailable"
)

// Success messages for API responses
const (
	MsgSaved            = "Game saved"
	MsgLoaded           = "Game loaded"
	MsgDeleted          = "Save deleted"
	MsgImported         = "Save imported"
	MsgEventRecorded    = "Event result recorded"
	MsgEventActivated   = "Event activated"
	MsgCustomerLeft     = "Customer left without buying"
	MsgStaffFired       = "Staff member dismissed"
	MsgTavernUpgraded   = "Tavern upgraded"
	MsgSettingsUpdated  = "Settings updated"
	MsgBattleRecorded   = "Battle recorded"
	MsgTimeControlSaved = "Time control updated"
)

// Health check values
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgStoreFailed    = "save store unreachable"
)

// Log messages
const (
	LogMsgReadinessFailed = "Readiness check failed"
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgDecodeFailed    = "Failed to decode %s request"
	LogMsgRequestDecoded  = "%s request decoded"
	LogMsgOperationFailed = "Operation failed"
)

// Path and query parameter names
const (
	ParamID    = "id"
	ParamSlot  = "slot"
	ParamType  = "type"
	ParamAfter = "after"
	ParamLimit = "limit"
)

// DefaultNotificationLimit caps /notifications when no limit is given
const DefaultNotificationLimit = 50

package handler

// Generic HTTP error messages for client responses.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
)

// User-facing messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgItemNotFoundError  = "Item not found"
	ErrMsgEnemyNotFoundError = "Enemy not found"
	ErrMsgStatNotFoundError  = "Stat not found"
	ErrMsgNoRecordError      = "No record with that name"
	ErrMsgKeyItemError       = "Key items cannot be removed"
	ErrMsgUnknownCollection  = "Unknown collection. Valid options: inventory, enemies, stats"
)

// Success messages for API responses
const (
	MsgItemAdded    = "Item added"
	MsgItemMerged   = "Item merged into existing record"
	MsgItemsRemoved = "Inventory updated"
	MsgEnemyLogged  = "Enemy logged"
	MsgStatAdjusted = "Stat adjusted"
)

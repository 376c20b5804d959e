package inventory

// Error messages
const (
	ErrMsgNameRequired   = "item name is required"
	ErrMsgCountPositive  = "count must be at least 1"
	ErrMsgIncompleteItem = "new items need every field"
	ErrMsgCountTooLarge  = "count would exceed %d"
	ErrMsgLoadFailed     = "failed to load inventory: %w"
	ErrMsgSaveFailed     = "failed to save inventory: %w"
)

// Field names reported when a new item is incomplete
const (
	FieldDescription = "description"
	FieldActivity    = "activeOrPassive"
	FieldKey         = "key"
)

// Log messages
const (
	LogMsgItemMerged        = "Merged item into existing inventory record"
	LogMsgItemAdded         = "Added new inventory record"
	LogMsgItemIncomplete    = "Rejected incomplete new item"
	LogMsgItemRemoved       = "Removed inventory record"
	LogMsgItemDecremented   = "Updated inventory count"
	LogMsgKeyItemProtected  = "Refused to delete key item"
	LogMsgItemNotFound      = "No inventory record matched"
	LogMsgInventoryLoadFail = "Failed to load inventory"
	LogMsgInventorySaveFail = "Failed to save inventory"
)

package stats

// ============================================================================
// Limits
// ============================================================================

// MaxAbsValue bounds stored stat values and single adjustments
const MaxAbsValue = 1_000_000

// ============================================================================
// Error Messages
// ============================================================================

// Validation error messages
const (
	ErrMsgNameRequired = "stat name is required"
	ErrMsgValueRange   = "value must be between -1000000 and 1000000"
)

// Storage error messages
const (
	ErrMsgLoadFailed = "failed to load stats: %w"
	ErrMsgSaveFailed = "failed to save stats: %w"
)

// ============================================================================
// Log Messages
// ============================================================================

// Service operation log messages
const (
	LogMsgStatCreated  = "Created stat"
	LogMsgStatAdjusted = "Adjusted stat"
	LogMsgStatSet      = "Set stat"
	LogMsgStatRemoved  = "Removed stat"
)

// Error log messages
const (
	LogMsgFailedToLoadStats = "Failed to load stats"
	LogMsgFailedToSaveStats = "Failed to save stats"
)

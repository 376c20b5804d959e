package enemy

// Error messages
const (
	ErrMsgNameRequired        = "enemy name is required"
	ErrMsgDescriptionRequired = "enemy description is required"
	ErrMsgLoadFailed          = "failed to load enemy log: %w"
	ErrMsgSaveFailed          = "failed to save enemy log: %w"
)

// Log messages
const (
	LogMsgEnemyLogged   = "Logged enemy"
	LogMsgEnemyRejected = "Rejected incomplete enemy"
	LogMsgEnemyLoadFail = "Failed to load enemy log"
	LogMsgEnemySaveFail = "Failed to save enemy log"
)

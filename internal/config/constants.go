package config

// Environment variable names
const (
	EnvDataDir     = "SCRIBBLE_DATA_DIR"
	EnvPort        = "PORT"
	EnvLogLevel    = "LOG_LEVEL"
	EnvLogFormat   = "LOG_FORMAT"
	EnvEnvironment = "ENVIRONMENT"
	EnvServiceName = "SERVICE_NAME"
	EnvVersion     = "VERSION"
	EnvAPIKey      = "API_KEY"
)

// Defaults
const (
	DefaultDataDir     = "data-base"
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultServiceName = "scribble"
	DefaultVersion     = "dev"
)

// MemoryDataDir as SCRIBBLE_DATA_DIR keeps every collection in memory for the
// life of the process
const MemoryDataDir = ":memory:"

// Environment names
const (
	EnvironmentDev         = "dev"
	EnvironmentDevelopment = "development"
	EnvironmentStaging     = "staging"
	EnvironmentProduction  = "prod"
	EnvironmentTest        = "test"
)

// Port bounds
const (
	MinPort = 1
	MaxPort = 65535
)

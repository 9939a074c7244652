package message

const (
	InvalidInput = "Invalid input."
	ServerError  = "Something went wrong."
	DBHealthy    = "Database connection is healthy."
	DBError      = "Database connection error."
	EnvErrFmt    = "environment variable is not set: %s"
)

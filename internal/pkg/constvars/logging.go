package constvars

type ContextKey string

const CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"

const (
	LoggingRequestIDKey     = "request_id"
	LoggingPatientIDKey     = "patient_id"
	LoggingCoverageIDKey    = "coverage_id"
	LoggingNationalIDKey    = "national_id"
	LoggingPatientCountKey  = "patient_count"
	LoggingCoverageCountKey = "coverage_count"
	LoggingStatusCodeKey    = "status_code"
	LoggingActionKey        = "action"
)

package constvars

// Client messages are shown to the operator; dev messages land in the logs.
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "something went wrong with the application"
	ErrClientPatientNotFound               = "no patient found with that national identifier"
	ErrClientResourceMissingServerID       = "the matching record has no server id and cannot be edited"
	ErrClientRepositoryUnavailable         = "the clinical repository did not respond in time"
)

const (
	ErrDevCreateHTTPRequest  = "failed to create HTTP request"
	ErrDevSendHTTPRequest    = "failed to send HTTP request"
	ErrDevCannotMarshalJSON  = "cannot convert struct or other data types to JSON"
	ErrDevReadResponseBody   = "failed to read HTTP response body"
	ErrDevValidationFailed   = "validation failed"
	ErrDevInvalidInput       = "invalid input"
	ErrDevServerProcess      = "internal process failed"
	ErrDevMissingServerID    = "resource fetched by identifier carries no server-assigned id"
	ErrDevPatientNotFound    = "no Patient matched the supplied identifier"
	ErrDevUnexpectedDeadline = "request exceeded the configured repository timeout"
)

const (
	ErrDevHapiCreateFHIRResource         = "failed to create FHIR %s on the HAPI repository"
	ErrDevHapiUpdateFHIRResource         = "failed to update FHIR %s on the HAPI repository"
	ErrDevHapiDeleteFHIRResource         = "failed to delete FHIR %s on the HAPI repository"
	ErrDevHapiGetFHIRResource            = "failed to get FHIR %s from the HAPI repository"
	ErrDevHapiSearchFHIRResource         = "failed to search FHIR %s on the HAPI repository"
	ErrDevHapiDecodeFHIRResourceResponse = "failed to decode FHIR %s response from the HAPI repository"
	ErrDevHapiUnexpectedStatus           = "HAPI repository answered %s with status %d: %s"
)

const ResponseUnknown = "unknown"

var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"numeric":      "must contain digits only",
	"oneof":        "must be one of: %s",
	"min":          "must be at least %s characters",
	"max":          "must be at most %s characters",
	"fhir_date":    "must be a valid date in YYYY-MM-DD format",
	"phone_number": "must be a valid phone number",
	"national_id":  "must be 7 or 8 digits",
}

var TagsWithParams = map[string]bool{
	"oneof": true,
	"min":   true,
	"max":   true,
}

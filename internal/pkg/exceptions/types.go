package exceptions

import (
	"fmt"

	"padron-service/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusGatewayTimeout, constvars.ErrClientRepositoryUnavailable, constvars.ErrDevUnexpectedDeadline)
	}

	// HTTP plumbing
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevSendHTTPRequest)
	}
	ErrReadResponseBody = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevReadResponseBody)
	}

	// FHIR repository
	ErrCreateFHIRResource = func(err error, resource string) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevHapiCreateFHIRResource, resource))
	}
	ErrUpdateFHIRResource = func(err error, resource string) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevHapiUpdateFHIRResource, resource))
	}
	ErrDeleteFHIRResource = func(err error, resource string) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevHapiDeleteFHIRResource, resource))
	}
	ErrGetFHIRResource = func(err error, resource string) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevHapiGetFHIRResource, resource))
	}
	ErrSearchFHIRResource = func(err error, resource string) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevHapiSearchFHIRResource, resource))
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevHapiDecodeFHIRResourceResponse, resource))
	}

	// ErrUnexpectedStatus carries the repository's HTTP status and response
	// body so the operator sees exactly what the server rejected.
	ErrUnexpectedStatus = func(resource string, statusCode int, body string) *CustomError {
		return WrapWithoutError(statusCode, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevHapiUnexpectedStatus, resource, statusCode, body))
	}

	// Reconciliation workflow
	ErrPatientNotFound = func(nationalID string) *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientPatientNotFound, fmt.Sprintf("%s: %s", constvars.ErrDevPatientNotFound, nationalID))
	}
	ErrMissingServerID = func(resource string) *CustomError {
		return WrapWithoutError(constvars.StatusInternalServerError, constvars.ErrClientResourceMissingServerID, fmt.Sprintf("%s (%s)", constvars.ErrDevMissingServerID, resource))
	}
)

// IsNotFound reports whether err represents a lookup that matched nothing.
func IsNotFound(err error) bool {
	customErr, ok := err.(*CustomError)
	return ok && customErr.StatusCode == constvars.StatusNotFound
}

package responses

import "padron-service/internal/pkg/fhir_dto"

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
	ActionAborted = "aborted"
)

// PatientOutcome reports what the patient upsert did. Patient holds the
// re-fetched server state after a create or update; MatchCount surfaces
// ambiguity when the identifier lookup returned more than one resource.
type PatientOutcome struct {
	Action     string            `json:"action"`
	Patient    *fhir_dto.Patient `json:"patient,omitempty"`
	MatchCount int               `json:"match_count"`
}

// CoverageOutcome reports what the coverage upsert did. DeletedCoverageID is
// set only when Action is ActionDeleted.
type CoverageOutcome struct {
	Action            string             `json:"action"`
	Coverage          *fhir_dto.Coverage `json:"coverage,omitempty"`
	DeletedCoverageID string             `json:"deleted_coverage_id,omitempty"`
}

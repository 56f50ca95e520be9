package contracts

import (
	"padron-service/internal/pkg/dto/requests"
	"padron-service/internal/pkg/fhir_dto"
)

// OperatorPrompt is the workflow's view of the interactive operator. The
// reconciliation usecases drive their confirmation gates and field
// collection through it, which keeps the console concern out of the
// decision logic and lets tests script the operator.
type OperatorPrompt interface {
	// ConfirmPatientEdit shows the existing matches and asks whether to
	// proceed with an edit of the first one.
	ConfirmPatientEdit(existing []fhir_dto.Patient) (bool, error)

	CollectPatientFields() (*requests.PatientFields, error)

	// SelectCoverageTarget lists existing coverages with a stable 1-based
	// index and returns the id of the selected one, or an empty string when
	// the operator chose to create a new coverage instead.
	SelectCoverageTarget(existing []fhir_dto.Coverage) (string, error)

	ConfirmCoverageDelete(coverageID string) (bool, error)

	CollectCoverageFields() (*requests.CoverageFields, error)
}

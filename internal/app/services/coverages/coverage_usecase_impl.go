package coverages

import (
	"context"

	"padron-service/internal/app/contracts"
	"padron-service/internal/pkg/constvars"
	"padron-service/internal/pkg/dto/responses"
	"padron-service/internal/pkg/exceptions"
	"padron-service/internal/pkg/fhir_dto"
	"padron-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type coverageUsecase struct {
	CoverageFhirClient contracts.CoverageFhirClient
	PatientFhirClient  contracts.PatientFhirClient
	Prompt             contracts.OperatorPrompt
	NationalIDSystem   string
	Defaults           utils.CoverageDefaults
	Log                *zap.Logger
}

func NewCoverageUsecase(
	coverageFhirClient contracts.CoverageFhirClient,
	patientFhirClient contracts.PatientFhirClient,
	prompt contracts.OperatorPrompt,
	nationalIDSystem string,
	defaults utils.CoverageDefaults,
	logger *zap.Logger,
) contracts.CoverageUsecase {
	return &coverageUsecase{
		CoverageFhirClient: coverageFhirClient,
		PatientFhirClient:  patientFhirClient,
		Prompt:             prompt,
		NationalIDSystem:   nationalIDSystem,
		Defaults:           defaults,
		Log:                logger,
	}
}

// UpsertCoverage walks the coverage reconciliation state machine: resolve
// the patient, list existing coverages, let the operator pick an edit target
// or create a new one, offer deletion on an edit target, then persist and
// re-fetch. Deletion is terminal for the operation.
func (uc *coverageUsecase) UpsertCoverage(ctx context.Context, nationalID string) (*responses.CoverageOutcome, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	patientID, err := uc.resolvePatientID(ctx, nationalID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.CoverageFhirClient.FindCoverageByBeneficiary(ctx, constvars.ResourcePatient, patientID)
	if err != nil {
		return nil, err
	}

	var editTargetID string
	if len(existing) > 0 {
		editTargetID, err = uc.Prompt.SelectCoverageTarget(existing)
		if err != nil {
			return nil, err
		}
	}

	if editTargetID != "" {
		deleteConfirmed, err := uc.Prompt.ConfirmCoverageDelete(editTargetID)
		if err != nil {
			return nil, err
		}
		if deleteConfirmed {
			if err := uc.CoverageFhirClient.DeleteCoverageByID(ctx, editTargetID); err != nil {
				// Reported once; no rollback and no retry.
				return nil, err
			}
			uc.Log.Info("coverageUsecase.UpsertCoverage coverage deleted",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCoverageIDKey, editTargetID),
			)
			return &responses.CoverageOutcome{
				Action:            responses.ActionDeleted,
				DeletedCoverageID: editTargetID,
			}, nil
		}
	}

	fields, err := uc.Prompt.CollectCoverageFields()
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(fields); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	coverage := utils.BuildCoverageResource(fields, constvars.ResourcePatient, patientID, uc.Defaults)

	var persistedID string
	if editTargetID != "" {
		coverage.ID = editTargetID
		updated, err := uc.CoverageFhirClient.UpdateCoverage(ctx, coverage)
		if err != nil {
			return nil, err
		}
		persistedID = updated.ID
	} else {
		created, err := uc.CoverageFhirClient.CreateCoverage(ctx, coverage)
		if err != nil {
			return nil, err
		}
		persistedID = created.ID
	}

	refetched, err := uc.CoverageFhirClient.FindCoverageByID(ctx, persistedID)
	if err != nil {
		return nil, err
	}

	action := responses.ActionCreated
	if editTargetID != "" {
		action = responses.ActionUpdated
	}
	uc.Log.Info("coverageUsecase.UpsertCoverage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCoverageIDKey, persistedID),
		zap.String(constvars.LoggingActionKey, action),
	)
	return &responses.CoverageOutcome{
		Action:   action,
		Coverage: refetched,
	}, nil
}

// ListCoveragesForPatient resolves the patient and projects the coverages
// referencing it; zero results are an informational outcome, not an error.
func (uc *coverageUsecase) ListCoveragesForPatient(ctx context.Context, nationalID string) ([]fhir_dto.Coverage, error) {
	patientID, err := uc.resolvePatientID(ctx, nationalID)
	if err != nil {
		return nil, err
	}
	return uc.CoverageFhirClient.FindCoverageByBeneficiary(ctx, constvars.ResourcePatient, patientID)
}

// resolvePatientID maps a national identifier to the server id of the first
// matching patient. No disambiguation happens beyond taking index 0.
func (uc *coverageUsecase) resolvePatientID(ctx context.Context, nationalID string) (string, error) {
	matches, err := uc.PatientFhirClient.FindPatientByIdentifier(ctx, uc.NationalIDSystem, nationalID)
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", exceptions.ErrPatientNotFound(nationalID)
	}
	if matches[0].ID == "" {
		return "", exceptions.ErrMissingServerID(constvars.ResourcePatient)
	}
	return matches[0].ID, nil
}

package patients

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

type patientUsecase struct {
	PatientFhirClient contracts.PatientFhirClient
	Prompt            contracts.OperatorPrompt
	NationalIDSystem  string
	Log               *zap.Logger
}

func NewPatientUsecase(
	patientFhirClient contracts.PatientFhirClient,
	prompt contracts.OperatorPrompt,
	nationalIDSystem string,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientFhirClient: patientFhirClient,
		Prompt:            prompt,
		NationalIDSystem:  nationalIDSystem,
		Log:               logger,
	}
}

// UpsertPatient reconciles operator-entered demographics against the
// repository. An existing patient with the same national identifier leads to
// a full-replace update (after operator confirmation); otherwise a new
// patient is created. Either way the final server state is re-fetched for
// confirmation display.
func (uc *patientUsecase) UpsertPatient(ctx context.Context, nationalID string) (*responses.PatientOutcome, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	existing, err := uc.PatientFhirClient.FindPatientByIdentifier(ctx, uc.NationalIDSystem, nationalID)
	if err != nil {
		return nil, err
	}

	editing := len(existing) > 0
	if editing {
		if len(existing) > 1 {
			// Known simplification: multiple matches are surfaced but the
			// workflow always edits the first one.
			uc.Log.Warn("patientUsecase.UpsertPatient ambiguous identifier match",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingNationalIDKey, nationalID),
				zap.Int(constvars.LoggingPatientCountKey, len(existing)),
			)
		}

		confirmed, err := uc.Prompt.ConfirmPatientEdit(existing)
		if err != nil {
			return nil, err
		}
		if !confirmed {
			uc.Log.Info("patientUsecase.UpsertPatient edit declined",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingNationalIDKey, nationalID),
			)
			return &responses.PatientOutcome{Action: responses.ActionAborted, MatchCount: len(existing)}, nil
		}
		if existing[0].ID == "" {
			return nil, exceptions.ErrMissingServerID(constvars.ResourcePatient)
		}
	}

	fields, err := uc.Prompt.CollectPatientFields()
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(fields); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	patient := utils.BuildPatientResource(fields)
	patient.Identifier = []fhir_dto.Identifier{
		{
			System: uc.NationalIDSystem,
			Value:  nationalID,
		},
	}

	var persistedID string
	if editing {
		patient.ID = existing[0].ID
		updated, err := uc.PatientFhirClient.UpdatePatient(ctx, patient)
		if err != nil {
			return nil, err
		}
		persistedID = updated.ID
	} else {
		created, err := uc.PatientFhirClient.CreatePatient(ctx, patient)
		if err != nil {
			return nil, err
		}
		persistedID = created.ID
	}

	// Confirmation display always reflects the server's view, not the
	// locally built resource.
	refetched, err := uc.PatientFhirClient.FindPatientByID(ctx, persistedID)
	if err != nil {
		return nil, err
	}

	action := responses.ActionCreated
	if editing {
		action = responses.ActionUpdated
	}
	uc.Log.Info("patientUsecase.UpsertPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, persistedID),
		zap.String(constvars.LoggingActionKey, action),
	)
	return &responses.PatientOutcome{
		Action:     action,
		Patient:    refetched,
		MatchCount: len(existing),
	}, nil
}

// SearchPatientByNationalID is a read-only projection; zero, one or many
// matches are all reported to the caller without further branching.
func (uc *patientUsecase) SearchPatientByNationalID(ctx context.Context, nationalID string) ([]fhir_dto.Patient, error) {
	return uc.PatientFhirClient.FindPatientByIdentifier(ctx, uc.NationalIDSystem, nationalID)
}

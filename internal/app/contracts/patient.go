package contracts

import (
	"context"

	"padron-service/internal/pkg/dto/responses"
	"padron-service/internal/pkg/fhir_dto"
)

type PatientFhirClient interface {
	CreatePatient(ctx context.Context, request *fhir_dto.Patient) (*fhir_dto.Patient, error)
	UpdatePatient(ctx context.Context, request *fhir_dto.Patient) (*fhir_dto.Patient, error)
	FindPatientByID(ctx context.Context, patientID string) (*fhir_dto.Patient, error)
	FindPatientByIdentifier(ctx context.Context, system, value string) ([]fhir_dto.Patient, error)
}

type PatientUsecase interface {
	UpsertPatient(ctx context.Context, nationalID string) (*responses.PatientOutcome, error)
	SearchPatientByNationalID(ctx context.Context, nationalID string) ([]fhir_dto.Patient, error)
}

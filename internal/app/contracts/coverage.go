package contracts

import (
	"context"

	"padron-service/internal/pkg/dto/responses"
	"padron-service/internal/pkg/fhir_dto"
)

type CoverageFhirClient interface {
	CreateCoverage(ctx context.Context, request *fhir_dto.Coverage) (*fhir_dto.Coverage, error)
	UpdateCoverage(ctx context.Context, request *fhir_dto.Coverage) (*fhir_dto.Coverage, error)
	DeleteCoverageByID(ctx context.Context, coverageID string) error
	FindCoverageByID(ctx context.Context, coverageID string) (*fhir_dto.Coverage, error)
	FindCoverageByBeneficiary(ctx context.Context, beneficiaryType, beneficiaryID string) ([]fhir_dto.Coverage, error)
}

type CoverageUsecase interface {
	UpsertCoverage(ctx context.Context, nationalID string) (*responses.CoverageOutcome, error)
	ListCoveragesForPatient(ctx context.Context, nationalID string) ([]fhir_dto.Coverage, error)
}

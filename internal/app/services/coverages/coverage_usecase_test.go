package coverages

import (
	"context"
	"testing"

	"padron-service/internal/pkg/constvars"
	"padron-service/internal/pkg/dto/requests"
	"padron-service/internal/pkg/dto/responses"
	"padron-service/internal/pkg/exceptions"
	"padron-service/internal/pkg/fhir_dto"
	"padron-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeCoverageFhirClient struct {
	existing []fhir_dto.Coverage
	byID     map[string]*fhir_dto.Coverage

	created []*fhir_dto.Coverage
	updated []*fhir_dto.Coverage
	deleted []string
}

func (f *fakeCoverageFhirClient) CreateCoverage(_ context.Context, request *fhir_dto.Coverage) (*fhir_dto.Coverage, error) {
	f.created = append(f.created, request)
	persisted := *request
	persisted.ID = "c-new"
	if f.byID == nil {
		f.byID = map[string]*fhir_dto.Coverage{}
	}
	f.byID[persisted.ID] = &persisted
	return &persisted, nil
}

func (f *fakeCoverageFhirClient) UpdateCoverage(_ context.Context, request *fhir_dto.Coverage) (*fhir_dto.Coverage, error) {
	f.updated = append(f.updated, request)
	persisted := *request
	if f.byID == nil {
		f.byID = map[string]*fhir_dto.Coverage{}
	}
	f.byID[persisted.ID] = &persisted
	return &persisted, nil
}

func (f *fakeCoverageFhirClient) DeleteCoverageByID(_ context.Context, coverageID string) error {
	f.deleted = append(f.deleted, coverageID)
	return nil
}

func (f *fakeCoverageFhirClient) FindCoverageByID(_ context.Context, coverageID string) (*fhir_dto.Coverage, error) {
	if coverage, ok := f.byID[coverageID]; ok {
		return coverage, nil
	}
	return nil, exceptions.ErrUnexpectedStatus(constvars.ResourceCoverage, constvars.StatusNotFound, "not found")
}

func (f *fakeCoverageFhirClient) FindCoverageByBeneficiary(_ context.Context, _, _ string) ([]fhir_dto.Coverage, error) {
	return f.existing, nil
}

type stubPatientFhirClient struct {
	matches []fhir_dto.Patient
}

func (s *stubPatientFhirClient) CreatePatient(_ context.Context, _ *fhir_dto.Patient) (*fhir_dto.Patient, error) {
	return nil, nil
}

func (s *stubPatientFhirClient) UpdatePatient(_ context.Context, _ *fhir_dto.Patient) (*fhir_dto.Patient, error) {
	return nil, nil
}

func (s *stubPatientFhirClient) FindPatientByID(_ context.Context, _ string) (*fhir_dto.Patient, error) {
	return nil, nil
}

func (s *stubPatientFhirClient) FindPatientByIdentifier(_ context.Context, _, _ string) ([]fhir_dto.Patient, error) {
	return s.matches, nil
}

type scriptedCoveragePrompt struct {
	target       string
	deleteAnswer bool
	fields       *requests.CoverageFields

	selectCalled        bool
	deleteAsked         bool
	collectFieldsCalled bool
}

func (s *scriptedCoveragePrompt) ConfirmPatientEdit(_ []fhir_dto.Patient) (bool, error) {
	return false, nil
}

func (s *scriptedCoveragePrompt) CollectPatientFields() (*requests.PatientFields, error) {
	return nil, nil
}

func (s *scriptedCoveragePrompt) SelectCoverageTarget(_ []fhir_dto.Coverage) (string, error) {
	s.selectCalled = true
	return s.target, nil
}

func (s *scriptedCoveragePrompt) ConfirmCoverageDelete(_ string) (bool, error) {
	s.deleteAsked = true
	return s.deleteAnswer, nil
}

func (s *scriptedCoveragePrompt) CollectCoverageFields() (*requests.CoverageFields, error) {
	s.collectFieldsCalled = true
	return s.fields, nil
}

func TestUpsertCoverage(t *testing.T) {
	ctx := context.Background()
	patient := fhir_dto.Patient{ID: "p1"}
	fields := &requests.CoverageFields{TypeCode: constvars.FhirCoverageTypeExtendedHealthcare, Status: constvars.FhirCoverageStatusActive}
	twoExisting := []fhir_dto.Coverage{{ID: "c1"}, {ID: "c2"}}

	t.Run("Unknown Patient Stops The Workflow", func(t *testing.T) {
		patients := &stubPatientFhirClient{}
		client := &fakeCoverageFhirClient{}
		prompt := &scriptedCoveragePrompt{}
		uc := NewCoverageUsecase(client, patients, prompt, constvars.FhirNationalIDSystem, utils.NewCoverageDefaults(), zap.NewNop())

		outcome, err := uc.UpsertCoverage(ctx, "12345678")

		assert.Nil(t, outcome)
		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientPatientNotFound, customErr.ClientMessage)
		assert.False(t, prompt.selectCalled)
	})

	t.Run("No Existing Coverages Skips Target Selection And Creates", func(t *testing.T) {
		patients := &stubPatientFhirClient{matches: []fhir_dto.Patient{patient}}
		client := &fakeCoverageFhirClient{}
		prompt := &scriptedCoveragePrompt{fields: fields}
		uc := NewCoverageUsecase(client, patients, prompt, constvars.FhirNationalIDSystem, utils.NewCoverageDefaults(), zap.NewNop())

		outcome, err := uc.UpsertCoverage(ctx, "12345678")

		assert.NoError(t, err)
		assert.Equal(t, responses.ActionCreated, outcome.Action)
		assert.False(t, prompt.selectCalled, "nothing to select from")
		assert.False(t, prompt.deleteAsked, "delete is only offered on an edit target")
		assert.Len(t, client.created, 1)
		assert.Equal(t, "Patient/p1", client.created[0].Beneficiary.Reference)
		assert.Equal(t, "c-new", outcome.Coverage.ID)
	})

	t.Run("Selected Target Takes The Edit Branch", func(t *testing.T) {
		patients := &stubPatientFhirClient{matches: []fhir_dto.Patient{patient}}
		client := &fakeCoverageFhirClient{existing: twoExisting}
		prompt := &scriptedCoveragePrompt{target: "c2", fields: fields}
		uc := NewCoverageUsecase(client, patients, prompt, constvars.FhirNationalIDSystem, utils.NewCoverageDefaults(), zap.NewNop())

		outcome, err := uc.UpsertCoverage(ctx, "12345678")

		assert.NoError(t, err)
		assert.Equal(t, responses.ActionUpdated, outcome.Action)
		assert.True(t, prompt.deleteAsked, "the delete gate precedes field collection")
		assert.Empty(t, client.created)
		assert.Len(t, client.updated, 1)
		assert.Equal(t, "c2", client.updated[0].ID, "replacement carries the selected server id")
		assert.Equal(t, "c2", outcome.Coverage.ID)
	})

	t.Run("Empty Selection Means Create Even With Existing Coverages", func(t *testing.T) {
		patients := &stubPatientFhirClient{matches: []fhir_dto.Patient{patient}}
		client := &fakeCoverageFhirClient{existing: twoExisting}
		prompt := &scriptedCoveragePrompt{target: "", fields: fields}
		uc := NewCoverageUsecase(client, patients, prompt, constvars.FhirNationalIDSystem, utils.NewCoverageDefaults(), zap.NewNop())

		outcome, err := uc.UpsertCoverage(ctx, "12345678")

		assert.NoError(t, err)
		assert.Equal(t, responses.ActionCreated, outcome.Action)
		assert.True(t, prompt.selectCalled)
		assert.False(t, prompt.deleteAsked)
		assert.Len(t, client.created, 1)
		assert.Empty(t, client.updated)
	})

	t.Run("Confirmed Delete Is Terminal", func(t *testing.T) {
		patients := &stubPatientFhirClient{matches: []fhir_dto.Patient{patient}}
		client := &fakeCoverageFhirClient{existing: twoExisting}
		prompt := &scriptedCoveragePrompt{target: "c1", deleteAnswer: true}
		uc := NewCoverageUsecase(client, patients, prompt, constvars.FhirNationalIDSystem, utils.NewCoverageDefaults(), zap.NewNop())

		outcome, err := uc.UpsertCoverage(ctx, "12345678")

		assert.NoError(t, err)
		assert.Equal(t, responses.ActionDeleted, outcome.Action)
		assert.Equal(t, "c1", outcome.DeletedCoverageID)
		assert.Nil(t, outcome.Coverage)
		assert.Equal(t, []string{"c1"}, client.deleted)
		assert.False(t, prompt.collectFieldsCalled, "no fields are collected after a delete")
		assert.Empty(t, client.created)
		assert.Empty(t, client.updated)
	})

	t.Run("Declined Delete Continues Into The Edit", func(t *testing.T) {
		patients := &stubPatientFhirClient{matches: []fhir_dto.Patient{patient}}
		client := &fakeCoverageFhirClient{existing: twoExisting}
		prompt := &scriptedCoveragePrompt{target: "c1", deleteAnswer: false, fields: fields}
		uc := NewCoverageUsecase(client, patients, prompt, constvars.FhirNationalIDSystem, utils.NewCoverageDefaults(), zap.NewNop())

		outcome, err := uc.UpsertCoverage(ctx, "12345678")

		assert.NoError(t, err)
		assert.Equal(t, responses.ActionUpdated, outcome.Action)
		assert.Empty(t, client.deleted)
		assert.Len(t, client.updated, 1)
	})

	t.Run("Patient Match Without Server Id Stops The Workflow", func(t *testing.T) {
		patients := &stubPatientFhirClient{matches: []fhir_dto.Patient{{ID: ""}}}
		client := &fakeCoverageFhirClient{}
		uc := NewCoverageUsecase(client, patients, &scriptedCoveragePrompt{}, constvars.FhirNationalIDSystem, utils.NewCoverageDefaults(), zap.NewNop())

		outcome, err := uc.UpsertCoverage(ctx, "12345678")

		assert.Nil(t, outcome)
		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientResourceMissingServerID, customErr.ClientMessage)
	})
}

func TestListCoveragesForPatient(t *testing.T) {
	ctx := context.Background()

	t.Run("Projects The Beneficiary Search", func(t *testing.T) {
		patients := &stubPatientFhirClient{matches: []fhir_dto.Patient{{ID: "p1"}}}
		client := &fakeCoverageFhirClient{existing: []fhir_dto.Coverage{{ID: "c1"}}}
		uc := NewCoverageUsecase(client, patients, &scriptedCoveragePrompt{}, constvars.FhirNationalIDSystem, utils.NewCoverageDefaults(), zap.NewNop())

		coverages, err := uc.ListCoveragesForPatient(ctx, "12345678")

		assert.NoError(t, err)
		assert.Len(t, coverages, 1)
	})

	t.Run("Empty List Is Not An Error", func(t *testing.T) {
		patients := &stubPatientFhirClient{matches: []fhir_dto.Patient{{ID: "p1"}}}
		client := &fakeCoverageFhirClient{}
		uc := NewCoverageUsecase(client, patients, &scriptedCoveragePrompt{}, constvars.FhirNationalIDSystem, utils.NewCoverageDefaults(), zap.NewNop())

		coverages, err := uc.ListCoveragesForPatient(ctx, "12345678")

		assert.NoError(t, err)
		assert.Empty(t, coverages)
	})

	t.Run("Unknown Patient Is An Error", func(t *testing.T) {
		patients := &stubPatientFhirClient{}
		client := &fakeCoverageFhirClient{}
		uc := NewCoverageUsecase(client, patients, &scriptedCoveragePrompt{}, constvars.FhirNationalIDSystem, utils.NewCoverageDefaults(), zap.NewNop())

		coverages, err := uc.ListCoveragesForPatient(ctx, "12345678")

		assert.Nil(t, coverages)
		assert.Error(t, err)
	})
}

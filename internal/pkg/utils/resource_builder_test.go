package utils

import (
	"testing"

	"padron-service/internal/pkg/constvars"
	"padron-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func presenceSet(t *testing.T, resource interface{}) map[string]bool {
	t.Helper()
	raw, err := json.Marshal(resource)
	assert.NoError(t, err)
	var fields map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(raw, &fields))
	present := make(map[string]bool, len(fields))
	for key := range fields {
		present[key] = true
	}
	return present
}

func TestBuildPatientResource(t *testing.T) {
	t.Run("Full Fields", func(t *testing.T) {
		patient := BuildPatientResource(&requests.PatientFields{
			FamilyName: "Quiroga",
			GivenName:  "Ana",
			Gender:     "female",
			BirthDate:  "1989-04-03",
			Phone:      "+5491155550000",
		})

		assert.Equal(t, constvars.ResourcePatient, patient.ResourceType)
		assert.Equal(t, "Quiroga", patient.Name[0].Family)
		assert.Equal(t, []string{"Ana"}, patient.Name[0].Given)
		assert.Equal(t, "female", patient.Gender)
		assert.Equal(t, "1989-04-03", patient.BirthDate)
		assert.Equal(t, constvars.FhirContactPointSystemPhone, patient.Telecom[0].System)
		assert.Equal(t, constvars.FhirContactPointUseMobile, patient.Telecom[0].Use)
		assert.Equal(t, "+5491155550000", patient.Telecom[0].Value)
	})

	t.Run("Empty Optional Fields Leave No Placeholder Structures", func(t *testing.T) {
		patient := BuildPatientResource(&requests.PatientFields{
			FamilyName: "Quiroga",
			GivenName:  "Ana",
		})

		assert.Nil(t, patient.Telecom)
		assert.Empty(t, patient.Gender)
		assert.Empty(t, patient.BirthDate)

		present := presenceSet(t, patient)
		assert.True(t, present["name"])
		assert.False(t, present["telecom"])
		assert.False(t, present["gender"])
		assert.False(t, present["birthDate"])
		assert.False(t, present["identifier"])
	})

	t.Run("Name Attached When Only One Part Is Set", func(t *testing.T) {
		patient := BuildPatientResource(&requests.PatientFields{FamilyName: "Quiroga"})

		assert.Len(t, patient.Name, 1)
		assert.Equal(t, "Quiroga", patient.Name[0].Family)
		assert.Nil(t, patient.Name[0].Given)
	})

	t.Run("Presence Set Survives A Serialization Round Trip", func(t *testing.T) {
		patient := BuildPatientResource(&requests.PatientFields{
			FamilyName: "Quiroga",
			GivenName:  "Ana",
			Phone:      "+5491155550000",
		})

		before := presenceSet(t, patient)

		raw, err := json.Marshal(patient)
		assert.NoError(t, err)
		var decoded map[string]json.RawMessage
		assert.NoError(t, json.Unmarshal(raw, &decoded))
		reencoded, err := json.Marshal(decoded)
		assert.NoError(t, err)
		var roundTripped map[string]json.RawMessage
		assert.NoError(t, json.Unmarshal(reencoded, &roundTripped))

		after := make(map[string]bool, len(roundTripped))
		for key := range roundTripped {
			after[key] = true
		}
		assert.Equal(t, before, after)
	})
}

func TestBuildCoverageResource(t *testing.T) {
	defaults := NewCoverageDefaults()

	t.Run("Full Fields", func(t *testing.T) {
		coverage := BuildCoverageResource(&requests.CoverageFields{
			TypeCode:     constvars.FhirCoverageTypeDentalProgram,
			TypeDisplay:  constvars.FhirCoverageTypeDentalProgramDisplay,
			Status:       constvars.FhirCoverageStatusDraft,
			PolicyNumber: "POL-778",
			SubscriberID: "SUB-12",
			StartDate:    "2024-01-01",
			EndDate:      "2024-12-31",
		}, constvars.ResourcePatient, "p42", defaults)

		assert.Equal(t, constvars.ResourceCoverage, coverage.ResourceType)
		assert.Equal(t, constvars.FhirCoverageStatusDraft, coverage.Status)
		assert.Equal(t, constvars.FhirCoverageKindInsurance, coverage.Kind)
		assert.Equal(t, "Patient/p42", coverage.Beneficiary.Reference)
		assert.Equal(t, constvars.ResourcePatient, coverage.Beneficiary.Type)
		assert.Equal(t, constvars.FhirActCodeSystem, coverage.Type.Coding[0].System)
		assert.Equal(t, constvars.FhirCoverageTypeDentalProgram, coverage.Type.Coding[0].Code)
		assert.Equal(t, constvars.FhirCoverageTypeDentalProgramDisplay, coverage.Type.Coding[0].Display)
		assert.Equal(t, constvars.FhirPolicyNumberSystem, coverage.Identifier[0].System)
		assert.Equal(t, "POL-778", coverage.Identifier[0].Value)
		assert.Equal(t, "SUB-12", coverage.SubscriberID)
		assert.Equal(t, "2024-01-01", coverage.Period.Start)
		assert.Equal(t, "2024-12-31", coverage.Period.End)
	})

	t.Run("Defaults Fill Kind And Status", func(t *testing.T) {
		coverage := BuildCoverageResource(&requests.CoverageFields{
			TypeCode: constvars.FhirCoverageTypeExtendedHealthcare,
		}, constvars.ResourcePatient, "p42", defaults)

		assert.Equal(t, constvars.FhirCoverageKindInsurance, coverage.Kind)
		assert.Equal(t, constvars.FhirCoverageStatusActive, coverage.Status)
	})

	t.Run("Empty Optional Fields Leave No Placeholder Structures", func(t *testing.T) {
		coverage := BuildCoverageResource(&requests.CoverageFields{
			TypeCode: constvars.FhirCoverageTypePublicHealthcare,
			Status:   constvars.FhirCoverageStatusActive,
		}, constvars.ResourcePatient, "p42", defaults)

		assert.Nil(t, coverage.Identifier)
		assert.Nil(t, coverage.Period)
		assert.Empty(t, coverage.SubscriberID)

		present := presenceSet(t, coverage)
		assert.True(t, present["type"])
		assert.True(t, present["beneficiary"])
		assert.False(t, present["identifier"])
		assert.False(t, present["period"])
		assert.False(t, present["subscriberId"])
	})

	t.Run("Period Attached When Only One Bound Is Set", func(t *testing.T) {
		coverage := BuildCoverageResource(&requests.CoverageFields{
			TypeCode:  constvars.FhirCoverageTypePublicHealthcare,
			StartDate: "2024-02-01",
		}, constvars.ResourcePatient, "p42", defaults)

		assert.NotNil(t, coverage.Period)
		assert.Equal(t, "2024-02-01", coverage.Period.Start)
		assert.Empty(t, coverage.Period.End)
	})

	t.Run("Display Omitted From Coding When Empty", func(t *testing.T) {
		coverage := BuildCoverageResource(&requests.CoverageFields{
			TypeCode: constvars.FhirCoverageTypePublicHealthcare,
		}, constvars.ResourcePatient, "p42", defaults)

		assert.Empty(t, coverage.Type.Coding[0].Display)
	})
}

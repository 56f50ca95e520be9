package utils

import (
	"fmt"

	"padron-service/internal/pkg/constvars"
	"padron-service/internal/pkg/dto/requests"
	"padron-service/internal/pkg/fhir_dto"
)

// CoverageDefaults names the fixed terminology systems and default codes a
// built Coverage carries. Callers assemble it from configuration constants
// so the builders stay free of hidden state.
type CoverageDefaults struct {
	Kind               string
	Status             string
	TypeSystem         string
	PolicyNumberSystem string
}

func NewCoverageDefaults() CoverageDefaults {
	return CoverageDefaults{
		Kind:               constvars.FhirCoverageKindInsurance,
		Status:             constvars.FhirCoverageStatusActive,
		TypeSystem:         constvars.FhirActCodeSystem,
		PolicyNumberSystem: constvars.FhirPolicyNumberSystem,
	}
}

// BuildPatientResource assembles a transient Patient from the collected
// fields. A compound sub-structure (name, contact point) is attached only
// when at least one of its constituent fields is non-empty, so the resource
// never carries empty placeholder structures. The caller attaches the
// national identifier and the server id.
func BuildPatientResource(fields *requests.PatientFields) *fhir_dto.Patient {
	patient := &fhir_dto.Patient{
		ResourceType: constvars.ResourcePatient,
	}

	if fields.FamilyName != "" || fields.GivenName != "" {
		name := fhir_dto.HumanName{Family: fields.FamilyName}
		if fields.GivenName != "" {
			name.Given = []string{fields.GivenName}
		}
		patient.Name = []fhir_dto.HumanName{name}
	}
	if fields.Gender != "" {
		patient.Gender = fields.Gender
	}
	if fields.BirthDate != "" {
		patient.BirthDate = fields.BirthDate
	}
	if fields.Phone != "" {
		patient.Telecom = []fhir_dto.ContactPoint{
			{
				System: constvars.FhirContactPointSystemPhone,
				Value:  fields.Phone,
				Use:    constvars.FhirContactPointUseMobile,
			},
		}
	}

	return patient
}

// BuildCoverageResource assembles a transient Coverage referencing the given
// beneficiary. Status defaults when the operator skipped it, kind always
// comes from defaults, and optional sub-structures (policy identifier,
// period) are attached only when at least one constituent field is set.
func BuildCoverageResource(fields *requests.CoverageFields, beneficiaryType, beneficiaryID string, defaults CoverageDefaults) *fhir_dto.Coverage {
	status := fields.Status
	if status == "" {
		status = defaults.Status
	}

	coding := fhir_dto.Coding{
		System: defaults.TypeSystem,
		Code:   fields.TypeCode,
	}
	if fields.TypeDisplay != "" {
		coding.Display = fields.TypeDisplay
	}

	coverage := &fhir_dto.Coverage{
		ResourceType: constvars.ResourceCoverage,
		Status:       status,
		Kind:         defaults.Kind,
		Type:         &fhir_dto.CodeableConcept{Coding: []fhir_dto.Coding{coding}},
		Beneficiary: fhir_dto.Reference{
			Reference: fmt.Sprintf("%s/%s", beneficiaryType, beneficiaryID),
			Type:      beneficiaryType,
		},
	}

	if fields.PolicyNumber != "" {
		coverage.Identifier = []fhir_dto.Identifier{
			{
				System: defaults.PolicyNumberSystem,
				Value:  fields.PolicyNumber,
			},
		}
	}
	if fields.SubscriberID != "" {
		coverage.SubscriberID = fields.SubscriberID
	}
	if fields.StartDate != "" || fields.EndDate != "" {
		coverage.Period = &fhir_dto.Period{
			Start: fields.StartDate,
			End:   fields.EndDate,
		}
	}

	return coverage
}

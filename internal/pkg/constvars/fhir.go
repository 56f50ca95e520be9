package constvars

const (
	ResourcePatient  = "Patient"
	ResourceCoverage = "Coverage"
)

// Terminology systems carried on outgoing resources. The national identifier
// system matches what the upstream registry publishes for DNI numbers.
const (
	FhirNationalIDSystem   = "http://www.renaper.gob.ar/dni"
	FhirActCodeSystem      = "http://terminology.hl7.org/CodeSystem/v3-ActCode"
	FhirPolicyNumberSystem = "http://example.org/policy-numbers"
)

const (
	FhirCoverageKindInsurance = "insurance"

	FhirCoverageStatusActive         = "active"
	FhirCoverageStatusCancelled      = "cancelled"
	FhirCoverageStatusDraft          = "draft"
	FhirCoverageStatusEnteredInError = "entered-in-error"
)

const (
	FhirCoverageTypeExtendedHealthcare = "EHCPOL"
	FhirCoverageTypePublicHealthcare   = "PUBLICPOL"
	FhirCoverageTypeDentalProgram      = "DENTPRG"

	FhirCoverageTypeExtendedHealthcareDisplay = "Extended healthcare policy"
	FhirCoverageTypePublicHealthcareDisplay   = "Public healthcare policy"
	FhirCoverageTypeDentalProgramDisplay      = "Dental program"
)

// Administrative gender codes; an omitted gender stays off the resource.
const (
	FhirGenderMale   = "male"
	FhirGenderFemale = "female"
)

const (
	FhirContactPointSystemPhone = "phone"
	FhirContactPointUseMobile   = "mobile"
)

type CoverageTypeOption struct {
	Code    string
	Display string
}

// CoverageTypeOptions is the closed set of coverage type codings offered to
// the operator, in menu order.
var CoverageTypeOptions = []CoverageTypeOption{
	{Code: FhirCoverageTypeExtendedHealthcare, Display: FhirCoverageTypeExtendedHealthcareDisplay},
	{Code: FhirCoverageTypePublicHealthcare, Display: FhirCoverageTypePublicHealthcareDisplay},
	{Code: FhirCoverageTypeDentalProgram, Display: FhirCoverageTypeDentalProgramDisplay},
}

// CoverageStatusOptions in menu order.
var CoverageStatusOptions = []string{
	FhirCoverageStatusActive,
	FhirCoverageStatusCancelled,
	FhirCoverageStatusDraft,
	FhirCoverageStatusEnteredInError,
}

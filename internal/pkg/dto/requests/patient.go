package requests

// PatientFields carries the demographic data collected from the operator.
// Name parts are mandatory at the prompt; everything else may be skipped.
type PatientFields struct {
	FamilyName string `json:"family_name" validate:"required"`
	GivenName  string `json:"given_name" validate:"required"`
	Gender     string `json:"gender" validate:"omitempty,oneof=male female"`
	BirthDate  string `json:"birth_date" validate:"omitempty,fhir_date"`
	Phone      string `json:"phone" validate:"omitempty,phone_number"`
}

package requests

// CoverageFields carries the coverage data collected from the operator.
// Type and status come from closed menus, so their values are already
// members of the domain sets when this struct is populated.
type CoverageFields struct {
	TypeCode     string `json:"type_code" validate:"required,oneof=EHCPOL PUBLICPOL DENTPRG"`
	TypeDisplay  string `json:"type_display" validate:"omitempty"`
	Status       string `json:"status" validate:"required,oneof=active cancelled draft entered-in-error"`
	PolicyNumber string `json:"policy_number" validate:"omitempty"`
	SubscriberID string `json:"subscriber_id" validate:"omitempty"`
	StartDate    string `json:"start_date" validate:"omitempty,fhir_date"`
	EndDate      string `json:"end_date" validate:"omitempty,fhir_date"`
}

package fhir_dto

type Coverage struct {
	ID           string           `json:"id,omitempty"`
	ResourceType string           `json:"resourceType,omitempty"`
	Status       string           `json:"status" validate:"required,oneof=active cancelled draft entered-in-error"`
	Kind         string           `json:"kind" validate:"required"`
	Type         *CodeableConcept `json:"type,omitempty"`
	Beneficiary  Reference        `json:"beneficiary" validate:"required"`
	Identifier   []Identifier     `json:"identifier,omitempty"`
	SubscriberID string           `json:"subscriberId,omitempty"`
	Period       *Period          `json:"period,omitempty"`
}

// TypeCode returns the first type coding code, if any.
func (c *Coverage) TypeCode() string {
	if c.Type == nil || len(c.Type.Coding) == 0 {
		return ""
	}
	return c.Type.Coding[0].Code
}

package fhir_dto

type Patient struct {
	ID           string         `json:"id,omitempty"`
	ResourceType string         `json:"resourceType,omitempty"`
	Active       bool           `json:"active,omitempty"`
	Identifier   []Identifier   `json:"identifier,omitempty"`
	Name         []HumanName    `json:"name,omitempty"`
	Telecom      []ContactPoint `json:"telecom,omitempty"`
	Gender       string         `json:"gender,omitempty"`
	BirthDate    string         `json:"birthDate,omitempty"`
}

// NationalID returns the value of the patient's national identifier for the
// given system, or an empty string when none is attached.
func (p *Patient) NationalID(system string) string {
	for _, identifier := range p.Identifier {
		if identifier.System == system {
			return identifier.Value
		}
	}
	return ""
}

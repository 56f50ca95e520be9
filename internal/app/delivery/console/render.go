package console

import (
	"fmt"
	"io"
	"sort"

	"padron-service/internal/pkg/constvars"
	"padron-service/internal/pkg/fhir_dto"

	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
)

func RenderPatients(w io.Writer, patients []fhir_dto.Patient) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "ID", "DNI", "Family", "Given", "Gender", "Birth date", "Phone"})
	for i, patient := range patients {
		family, given := "", ""
		if len(patient.Name) > 0 {
			family = patient.Name[0].Family
			if len(patient.Name[0].Given) > 0 {
				given = patient.Name[0].Given[0]
			}
		}
		phone := ""
		for _, telecom := range patient.Telecom {
			if telecom.System == constvars.FhirContactPointSystemPhone {
				phone = telecom.Value
				break
			}
		}
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			patient.ID,
			patient.NationalID(constvars.FhirNationalIDSystem),
			family,
			given,
			patient.Gender,
			patient.BirthDate,
			phone,
		})
	}
	table.Render()
}

func RenderCoverages(w io.Writer, coverages []fhir_dto.Coverage) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "ID", "Type", "Status", "Kind", "Subscriber", "Start", "End"})
	for i, coverage := range coverages {
		start, end := "", ""
		if coverage.Period != nil {
			start = coverage.Period.Start
			end = coverage.Period.End
		}
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			coverage.ID,
			coverage.TypeCode(),
			coverage.Status,
			coverage.Kind,
			coverage.SubscriberID,
			start,
			end,
		})
	}
	table.Render()
}

// RenderResourceDetails prints every populated top-level field of a resource
// as key: value lines, the confirmation display shown after a mutation.
func RenderResourceDetails(w io.Writer, resource interface{}) {
	raw, err := json.Marshal(resource)
	if err != nil {
		fmt.Fprintf(w, "could not render resource: %v\n", err)
		return
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		fmt.Fprintf(w, "could not render resource: %v\n", err)
		return
	}
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(w, "%s: %s\n", key, string(fields[key]))
	}
}

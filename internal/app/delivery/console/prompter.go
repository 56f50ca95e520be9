package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"padron-service/internal/app/contracts"
	"padron-service/internal/pkg/constvars"
	"padron-service/internal/pkg/dto/requests"
	"padron-service/internal/pkg/fhir_dto"
	"padron-service/internal/pkg/utils"
)

// Prompter owns every interactive read. Format checks are delegated to the
// pure validation helpers in utils; the prompter only loops until one of
// them accepts the input or the operator skips an optional field.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (p *Prompter) readLine(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// InputNationalID is non-skippable: it loops until 7 or 8 digits arrive.
func (p *Prompter) InputNationalID() (string, error) {
	for {
		value, err := p.readLine("Enter the patient's national identifier (DNI): ")
		if err != nil {
			return "", err
		}
		if err := utils.ValidateNationalID(value); err != nil {
			fmt.Fprintf(p.out, "Invalid identifier: %v\n", err)
			continue
		}
		return value, nil
	}
}

// InputDate accepts YYYY-MM-DD or an empty line to skip.
func (p *Prompter) InputDate(label string) (string, error) {
	for {
		value, err := p.readLine(label + " (YYYY-MM-DD, Enter to skip): ")
		if err != nil {
			return "", err
		}
		if value == "" {
			return "", nil
		}
		if err := utils.ValidateDate(value); err != nil {
			fmt.Fprintf(p.out, "Invalid date: %v\n", err)
			continue
		}
		return value, nil
	}
}

// InputGender maps M/F to the administrative gender codes; Enter skips.
func (p *Prompter) InputGender() (string, error) {
	for {
		value, err := p.readLine("Enter the patient's gender (M/F, Enter to skip): ")
		if err != nil {
			return "", err
		}
		switch strings.ToUpper(value) {
		case "M":
			return constvars.FhirGenderMale, nil
		case "F":
			return constvars.FhirGenderFemale, nil
		case "":
			return "", nil
		}
		fmt.Fprintln(p.out, "Invalid gender, must be 'M' or 'F'.")
	}
}

func (p *Prompter) InputPhone() (string, error) {
	for {
		value, err := p.readLine("Enter the patient's phone number (Enter to skip): ")
		if err != nil {
			return "", err
		}
		if value == "" {
			return "", nil
		}
		if err := utils.ValidatePhoneNumber(value); err != nil {
			fmt.Fprintf(p.out, "Invalid phone number: %v\n", err)
			continue
		}
		return value, nil
	}
}

// InputNonEmpty loops until a non-empty value arrives.
func (p *Prompter) InputNonEmpty(label string) (string, error) {
	for {
		value, err := p.readLine(label)
		if err != nil {
			return "", err
		}
		if value != "" {
			return value, nil
		}
		fmt.Fprintln(p.out, "The value cannot be empty, try again.")
	}
}

func (p *Prompter) InputOptional(label string) (string, error) {
	return p.readLine(label + " (Enter to skip): ")
}

// InputCoverageType offers the closed set of coverage type codings.
func (p *Prompter) InputCoverageType() (constvars.CoverageTypeOption, error) {
	fmt.Fprintln(p.out, "\nSelect the coverage type:")
	for i, option := range constvars.CoverageTypeOptions {
		fmt.Fprintf(p.out, "%d. %s (%s)\n", i+1, option.Display, option.Code)
	}
	for {
		value, err := p.readLine(fmt.Sprintf("Enter your choice (1-%d): ", len(constvars.CoverageTypeOptions)))
		if err != nil {
			return constvars.CoverageTypeOption{}, err
		}
		choice, convErr := strconv.Atoi(value)
		if convErr != nil || choice < 1 || choice > len(constvars.CoverageTypeOptions) {
			fmt.Fprintf(p.out, "Invalid option, must be between 1 and %d.\n", len(constvars.CoverageTypeOptions))
			continue
		}
		return constvars.CoverageTypeOptions[choice-1], nil
	}
}

func (p *Prompter) InputCoverageStatus() (string, error) {
	fmt.Fprintln(p.out, "\nSelect the coverage status:")
	for i, status := range constvars.CoverageStatusOptions {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, status)
	}
	for {
		value, err := p.readLine(fmt.Sprintf("Enter your choice (1-%d): ", len(constvars.CoverageStatusOptions)))
		if err != nil {
			return "", err
		}
		choice, convErr := strconv.Atoi(value)
		if convErr != nil || choice < 1 || choice > len(constvars.CoverageStatusOptions) {
			fmt.Fprintf(p.out, "Invalid option, must be between 1 and %d.\n", len(constvars.CoverageStatusOptions))
			continue
		}
		return constvars.CoverageStatusOptions[choice-1], nil
	}
}

func (p *Prompter) confirm(label string) (bool, error) {
	for {
		value, err := p.readLine(label + " (y/n): ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(value) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Answer 'y' or 'n'.")
	}
}

var _ contracts.OperatorPrompt = (*Prompter)(nil)

func (p *Prompter) ConfirmPatientEdit(existing []fhir_dto.Patient) (bool, error) {
	if len(existing) > 1 {
		fmt.Fprintf(p.out, "Warning: %d patients share this identifier; the first one will be edited.\n", len(existing))
	}
	RenderPatients(p.out, existing)
	return p.confirm("A patient with this identifier already exists. Edit it?")
}

func (p *Prompter) CollectPatientFields() (*requests.PatientFields, error) {
	familyName, err := p.InputNonEmpty("Enter the patient's family name: ")
	if err != nil {
		return nil, err
	}
	givenName, err := p.InputNonEmpty("Enter the patient's given name: ")
	if err != nil {
		return nil, err
	}
	gender, err := p.InputGender()
	if err != nil {
		return nil, err
	}
	birthDate, err := p.InputDate("Enter the patient's birth date")
	if err != nil {
		return nil, err
	}
	phone, err := p.InputPhone()
	if err != nil {
		return nil, err
	}
	return &requests.PatientFields{
		FamilyName: familyName,
		GivenName:  givenName,
		Gender:     gender,
		BirthDate:  birthDate,
		Phone:      phone,
	}, nil
}

func (p *Prompter) SelectCoverageTarget(existing []fhir_dto.Coverage) (string, error) {
	fmt.Fprintln(p.out, "The patient already has coverage(s):")
	RenderCoverages(p.out, existing)
	fmt.Fprintln(p.out, "Select a coverage to edit, or press Enter to add a new one.")
	for {
		value, err := p.readLine(fmt.Sprintf("Enter your choice (1-%d, Enter for new): ", len(existing)))
		if err != nil {
			return "", err
		}
		if value == "" {
			return "", nil
		}
		choice, convErr := strconv.Atoi(value)
		if convErr != nil || choice < 1 || choice > len(existing) {
			fmt.Fprintf(p.out, "Invalid option, must be between 1 and %d or Enter.\n", len(existing))
			continue
		}
		return existing[choice-1].ID, nil
	}
}

func (p *Prompter) ConfirmCoverageDelete(coverageID string) (bool, error) {
	return p.confirm(fmt.Sprintf("Delete coverage %s?", coverageID))
}

func (p *Prompter) CollectCoverageFields() (*requests.CoverageFields, error) {
	typeOption, err := p.InputCoverageType()
	if err != nil {
		return nil, err
	}
	status, err := p.InputCoverageStatus()
	if err != nil {
		return nil, err
	}
	policyNumber, err := p.InputOptional("Enter the policy number")
	if err != nil {
		return nil, err
	}
	subscriberID, err := p.InputOptional("Enter the subscriber id")
	if err != nil {
		return nil, err
	}
	startDate, err := p.InputDate("Enter the coverage start date")
	if err != nil {
		return nil, err
	}
	var endDate string
	for {
		endDate, err = p.InputDate("Enter the coverage end date")
		if err != nil {
			return nil, err
		}
		if periodErr := utils.ValidatePeriod(startDate, endDate); periodErr != nil {
			fmt.Fprintf(p.out, "Invalid period: %v\n", periodErr)
			continue
		}
		break
	}
	return &requests.CoverageFields{
		TypeCode:     typeOption.Code,
		TypeDisplay:  typeOption.Display,
		Status:       status,
		PolicyNumber: policyNumber,
		SubscriberID: subscriberID,
		StartDate:    startDate,
		EndDate:      endDate,
	}, nil
}

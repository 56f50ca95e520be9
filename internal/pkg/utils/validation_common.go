package utils

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"padron-service/internal/pkg/constvars"
)

const DateLayoutYYYYMMDD = "2006-01-02"

var (
	nationalIDPattern = regexp.MustCompile(constvars.RegexNationalID)
	phonePattern      = regexp.MustCompile(constvars.RegexPhoneNumberE164)
)

// ValidateNationalID accepts 7 or 8 numeric digits, nothing else.
func ValidateNationalID(value string) error {
	if !nationalIDPattern.MatchString(value) {
		return errors.New("national identifier must be 7 or 8 digits")
	}
	return nil
}

// ValidateDate accepts calendar dates in YYYY-MM-DD form. A value that
// matches the pattern but names an impossible date (month 13) is rejected.
func ValidateDate(value string) error {
	if _, err := time.Parse(DateLayoutYYYYMMDD, value); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return nil
}

func ValidatePhoneNumber(value string) error {
	if !phonePattern.MatchString(value) {
		return errors.New("phone number must be in E.164 format")
	}
	return nil
}

// ValidatePeriod enforces start <= end when both bounds are present. Either
// bound may be empty; callers validate the individual dates beforehand.
func ValidatePeriod(start, end string) error {
	if start == "" || end == "" {
		return nil
	}
	startDate, err := time.Parse(DateLayoutYYYYMMDD, start)
	if err != nil {
		return fmt.Errorf("invalid period start %q", start)
	}
	endDate, err := time.Parse(DateLayoutYYYYMMDD, end)
	if err != nil {
		return fmt.Errorf("invalid period end %q", end)
	}
	if endDate.Before(startDate) {
		return errors.New("period end must not precede period start")
	}
	return nil
}

package utils

import (
	"regexp"
	"time"

	"padron-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("fhir_date", validateFhirDate)
	validate.RegisterValidation("national_id", validateNationalID)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(constvars.RegexPhoneNumberE164)
	return re.MatchString(fl.Field().String())
}

func validateFhirDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayoutYYYYMMDD, fl.Field().String())
	return err == nil
}

func validateNationalID(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(constvars.RegexNationalID)
	return re.MatchString(fl.Field().String())
}

package validator

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// phoneRegex accepts an optional leading "+" followed by at least ten
// digits, spaces, hyphens or parentheses.
var phoneRegex = regexp.MustCompile(`^\+?[\d\s\-()]{10,}$`)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("phone", validatePhone)

	return &CustomValidator{
		validator: v,
	}
}

func validatePhone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "phone":
				errors[field] = field + " must be a valid phone number"
			case "datetime":
				errors[field] = field + " must match the format " + e.Param()
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}

// PatientForm holds the raw intake fields checked by ValidatePatientForm.
// Reason is optional and never validated.
type PatientForm struct {
	Name   string `validate:"required"`
	Email  string `validate:"required,email"`
	Phone  string `validate:"required,phone"`
	Reason string
}

// ValidatePatientForm checks the patient-info fields and returns a
// field-to-message map. The map is empty iff the form is valid.
// Fields are trimmed first so whitespace-only input fails required.
func (cv *CustomValidator) ValidatePatientForm(form *PatientForm) map[string]string {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	form.Phone = strings.TrimSpace(form.Phone)

	err := cv.validator.Struct(form)
	if err == nil {
		return map[string]string{}
	}

	return cv.FormatValidationErrors(err)
}

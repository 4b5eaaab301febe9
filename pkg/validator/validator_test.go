package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"+919539581258", true},
		{"9539581258", true},
		{"+1 (555) 123-4567", true},
		{"555 123 4567 890", true},
		{"12345", false},
		{"", false},
		{"not-a-phone", false},
		{"+91abc9539581", false},
	}
	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.want, phoneRegex.MatchString(tt.phone))
		})
	}
}

func TestValidatePatientForm_Valid(t *testing.T) {
	cv := NewValidator()

	form := &PatientForm{
		Name:  "Asha Nair",
		Email: "asha@example.com",
		Phone: "+919539581258",
	}

	errs := cv.ValidatePatientForm(form)
	assert.Empty(t, errs)
}

func TestValidatePatientForm_ReasonOptional(t *testing.T) {
	cv := NewValidator()

	form := &PatientForm{
		Name:   "Asha Nair",
		Email:  "asha@example.com",
		Phone:  "+919539581258",
		Reason: "",
	}

	assert.Empty(t, cv.ValidatePatientForm(form))
}

func TestValidatePatientForm_MissingFields(t *testing.T) {
	cv := NewValidator()

	errs := cv.ValidatePatientForm(&PatientForm{})
	require.Len(t, errs, 3)
	assert.Equal(t, "Name is required", errs["Name"])
	assert.Equal(t, "Email is required", errs["Email"])
	assert.Equal(t, "Phone is required", errs["Phone"])
}

func TestValidatePatientForm_WhitespaceOnlyFailsRequired(t *testing.T) {
	cv := NewValidator()

	form := &PatientForm{
		Name:  "   ",
		Email: "asha@example.com",
		Phone: "+919539581258",
	}

	errs := cv.ValidatePatientForm(form)
	require.Len(t, errs, 1)
	assert.Equal(t, "Name is required", errs["Name"])
}

func TestValidatePatientForm_TrimsFields(t *testing.T) {
	cv := NewValidator()

	form := &PatientForm{
		Name:  "  Asha Nair  ",
		Email: " asha@example.com ",
		Phone: " +919539581258 ",
	}

	require.Empty(t, cv.ValidatePatientForm(form))
	assert.Equal(t, "Asha Nair", form.Name)
	assert.Equal(t, "asha@example.com", form.Email)
	assert.Equal(t, "+919539581258", form.Phone)
}

func TestValidatePatientForm_BadEmailAndPhone(t *testing.T) {
	cv := NewValidator()

	form := &PatientForm{
		Name:  "Asha Nair",
		Email: "not-an-email",
		Phone: "123",
	}

	errs := cv.ValidatePatientForm(form)
	require.Len(t, errs, 2)
	assert.Equal(t, "Email must be a valid email address", errs["Email"])
	assert.Equal(t, "Phone must be a valid phone number", errs["Phone"])
}

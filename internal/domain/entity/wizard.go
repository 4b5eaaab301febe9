package entity

// WizardStep identifies the booking wizard's current step
type WizardStep int

const (
	StepPatientInfo WizardStep = 1
	StepDateTime    WizardStep = 2
	StepConfirmed   WizardStep = 3
)

// String returns the display name of a wizard step
func (s WizardStep) String() string {
	switch s {
	case StepPatientInfo:
		return "patient_info"
	case StepDateTime:
		return "date_time"
	case StepConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// Selection holds the patient's date/time pick within the wizard.
// Validity is derived, never stored: both fields must be present.
type Selection struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// IsValid reports whether both date and time have been chosen
func (s Selection) IsValid() bool {
	return s.Date != "" && s.Time != ""
}

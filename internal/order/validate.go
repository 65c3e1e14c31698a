package order

import (
	"fmt"
	"regexp"
	"strings"

	"incorply/internal/catalog"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ().-]{5,19}$`)
)

// FieldError is a validation failure on a single field, surfaced to the UI
// as an inline error.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors aggregates the field errors of one validation pass.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return strings.Join(msgs, "; ")
}

// ValidateIdentity checks the contact identity block. It runs before any
// prefill call so malformed input never reaches the recommendation provider.
func ValidateIdentity(id Identity) ValidationErrors {
	var errs ValidationErrors

	switch {
	case id.Email == "":
		errs = append(errs, FieldError{Field: "identity.email", Message: "email is required"})
	case !emailPattern.MatchString(id.Email):
		errs = append(errs, FieldError{Field: "identity.email", Message: "email is not valid"})
	}

	switch {
	case id.Phone == "":
		errs = append(errs, FieldError{Field: "identity.phone", Message: "phone is required"})
	case !phonePattern.MatchString(id.Phone):
		errs = append(errs, FieldError{Field: "identity.phone", Message: "phone is not valid"})
	}

	return errs
}

// ValidateNeedsAssessment checks the needs block. It runs before any
// recommendation call.
func ValidateNeedsAssessment(na NeedsAssessment, cat *catalog.Catalog) ValidationErrors {
	var errs ValidationErrors

	switch {
	case na.Region == "":
		errs = append(errs, FieldError{Field: "needs_assessment.region", Message: "region is required"})
	case !cat.ValidRegion(na.Region):
		errs = append(errs, FieldError{Field: "needs_assessment.region", Message: "unknown region"})
	}

	if len(na.BusinessActivities) == 0 {
		errs = append(errs, FieldError{Field: "needs_assessment.business_activities", Message: "select at least one activity"})
	}
	if len(na.StrategicObjectives) == 0 {
		errs = append(errs, FieldError{Field: "needs_assessment.strategic_objectives", Message: "select at least one objective"})
	}

	return errs
}

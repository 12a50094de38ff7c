package validation

import (
	"nelo/internal/domain"
)

// CredentialsValidator provides validation for login credentials.
// The check is presence only: the login gate is a mock, not a security
// boundary.
type CredentialsValidator struct {
	validator *Validator
}

// NewCredentialsValidator creates a new credentials validator
func NewCredentialsValidator() *CredentialsValidator {
	return &CredentialsValidator{
		validator: NewValidator(),
	}
}

// ValidateCredentials validates a login attempt
func (cv *CredentialsValidator) ValidateCredentials(creds domain.Credentials) error {
	validationError := NewValidationError()

	if !cv.validator.IsNonEmptyString(creds.Identifier) {
		validationError.AddRequiredError("identifier")
	}

	if !cv.validator.IsNonEmptyString(creds.Secret) {
		validationError.AddRequiredError("secret")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

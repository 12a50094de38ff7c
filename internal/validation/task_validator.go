package validation

import (
	"nelo/internal/domain"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateTitle validates a task title for creation or update
func (tv *TaskValidator) ValidateTitle(title string) error {
	validationError := NewValidationError()

	// Trim whitespace
	trimmedTitle := tv.validator.TrimAndValidateString(title)

	// Check if title is empty
	if !tv.validator.IsNonEmptyString(trimmedTitle) {
		validationError.AddRequiredError("title")
		return validationError
	}

	// Check length constraints (1-255 characters)
	if !tv.validator.IsValidStringLength(trimmedTitle, 1, 255) {
		validationError.AddInvalidLengthError("title", trimmedTitle, 1, 255)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidatePriority validates a priority value
func (tv *TaskValidator) ValidatePriority(priority domain.Priority) error {
	if !priority.IsValid() {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("priority", string(priority), "must be one of high, medium, low")
		return validationError
	}
	return nil
}

// ValidateTaskForCreation validates the fields of a new task
func (tv *TaskValidator) ValidateTaskForCreation(title string, priority domain.Priority) error {
	validationError := NewValidationError()

	if titleErr := tv.ValidateTitle(title); titleErr != nil {
		if titleValidationErr, ok := titleErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, titleValidationErr.Errors...)
		}
	}

	if priorityErr := tv.ValidatePriority(priority); priorityErr != nil {
		if priorityValidationErr, ok := priorityErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, priorityValidationErr.Errors...)
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidatePatch validates a partial update. Only fields present in the
// patch are checked; a title, if provided, must pass the same rules as
// on creation.
func (tv *TaskValidator) ValidatePatch(patch domain.TaskPatch) error {
	validationError := NewValidationError()

	if patch.Title != nil {
		if titleErr := tv.ValidateTitle(*patch.Title); titleErr != nil {
			if titleValidationErr, ok := titleErr.(*ValidationError); ok {
				validationError.Errors = append(validationError.Errors, titleValidationErr.Errors...)
			}
		}
	}

	if patch.Priority != nil {
		if priorityErr := tv.ValidatePriority(*patch.Priority); priorityErr != nil {
			if priorityValidationErr, ok := priorityErr.(*ValidationError); ok {
				validationError.Errors = append(validationError.Errors, priorityValidationErr.Errors...)
			}
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskID validates a task identifier
func (tv *TaskValidator) ValidateTaskID(id string) error {
	if !tv.validator.IsNonEmptyString(id) {
		validationError := NewValidationError()
		validationError.AddRequiredError("task_id")
		return validationError
	}
	return nil
}

// GetValidTitle returns a cleaned task title if valid
func (tv *TaskValidator) GetValidTitle(title string) (string, error) {
	if err := tv.ValidateTitle(title); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(title), nil
}

package validation

import (
	"strings"
	"testing"

	"nelo/internal/domain"
)

func TestTaskValidator_ValidateTitle(t *testing.T) {
	validator := NewTaskValidator()

	tests := []struct {
		name        string
		input       string
		expectError bool
		errorType   ValidationErrorType
	}{
		{"Valid title", "Buy milk", false, ""},
		{"Empty title", "", true, ErrorTypeRequired},
		{"Whitespace only", "   ", true, ErrorTypeRequired},
		{"Too long title", strings.Repeat("a", 256), true, ErrorTypeInvalidLength},
		{"Valid long title", strings.Repeat("a", 255), false, ""},
		{"Valid with punctuation", "Ship it! (today)", false, ""},
		{"Leading and trailing spaces", "  Buy milk  ", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateTitle(tt.input)

			if tt.expectError {
				if err == nil {
					t.Errorf("ValidateTitle(%q) expected error but got nil", tt.input)
					return
				}

				validationErr, ok := err.(*ValidationError)
				if !ok {
					t.Errorf("ValidateTitle(%q) expected ValidationError but got %T", tt.input, err)
					return
				}

				if len(validationErr.Errors) == 0 {
					t.Errorf("ValidateTitle(%q) expected validation errors but got none", tt.input)
					return
				}

				if validationErr.Errors[0].Type != tt.errorType {
					t.Errorf("ValidateTitle(%q) expected error type %v but got %v", tt.input, tt.errorType, validationErr.Errors[0].Type)
				}
			} else {
				if err != nil {
					t.Errorf("ValidateTitle(%q) expected no error but got %v", tt.input, err)
				}
			}
		})
	}
}

func TestTaskValidator_ValidateTaskForCreation(t *testing.T) {
	validator := NewTaskValidator()

	tests := []struct {
		name        string
		title       string
		priority    domain.Priority
		expectError bool
	}{
		{"Valid task", "Buy milk", domain.PriorityMedium, false},
		{"Valid high priority", "Pay rent", domain.PriorityHigh, false},
		{"Empty title", "", domain.PriorityMedium, true},
		{"Whitespace title", "   ", domain.PriorityLow, true},
		{"Unknown priority", "Buy milk", domain.Priority("urgent"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateTaskForCreation(tt.title, tt.priority)

			if tt.expectError && err == nil {
				t.Errorf("ValidateTaskForCreation(%q, %q) expected error but got nil", tt.title, tt.priority)
			}
			if !tt.expectError && err != nil {
				t.Errorf("ValidateTaskForCreation(%q, %q) expected no error but got %v", tt.title, tt.priority, err)
			}
		})
	}
}

func TestTaskValidator_ValidatePatch(t *testing.T) {
	validator := NewTaskValidator()

	emptyTitle := "  "
	validTitle := "Renamed"
	badPriority := domain.Priority("urgent")
	goodPriority := domain.PriorityLow

	tests := []struct {
		name        string
		patch       domain.TaskPatch
		expectError bool
	}{
		{"Empty patch is fine", domain.TaskPatch{}, false},
		{"Valid title change", domain.TaskPatch{Title: &validTitle}, false},
		{"Empty title rejected", domain.TaskPatch{Title: &emptyTitle}, true},
		{"Valid priority change", domain.TaskPatch{Priority: &goodPriority}, false},
		{"Bad priority rejected", domain.TaskPatch{Priority: &badPriority}, true},
		{"Clear due date only", domain.TaskPatch{ClearDueDate: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidatePatch(tt.patch)

			if tt.expectError && err == nil {
				t.Errorf("ValidatePatch(%+v) expected error but got nil", tt.patch)
			}
			if !tt.expectError && err != nil {
				t.Errorf("ValidatePatch(%+v) expected no error but got %v", tt.patch, err)
			}
		})
	}
}

func TestTaskValidator_GetValidTitle(t *testing.T) {
	validator := NewTaskValidator()

	title, err := validator.GetValidTitle("  Buy milk  ")
	if err != nil {
		t.Fatalf("GetValidTitle returned error: %v", err)
	}
	if title != "Buy milk" {
		t.Errorf("GetValidTitle trimmed = %q, want %q", title, "Buy milk")
	}

	if _, err := validator.GetValidTitle("   "); err == nil {
		t.Error("GetValidTitle expected error for whitespace title")
	}
}

func TestTaskValidator_ValidateTaskID(t *testing.T) {
	validator := NewTaskValidator()

	if err := validator.ValidateTaskID("abc-123"); err != nil {
		t.Errorf("ValidateTaskID expected no error but got %v", err)
	}
	if err := validator.ValidateTaskID(""); err == nil {
		t.Error("ValidateTaskID expected error for empty id")
	}
}

package group

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidafit-backend/internal/domain"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 1000
)

// CreateGroupInput holds the parameters for creating a group.
type CreateGroupInput struct {
	Name        string
	Description string
	Type        domain.GroupType
}

// Validate checks all fields and collects all errors.
func (i CreateGroupInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateName(i.Name)...)
	if len(strings.TrimSpace(i.Description)) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 1000 characters"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be PUBLIC or PRIVATE"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EditGroupInput holds the fields that may change on a group.
// Nil means unchanged. Members and the administrator are not editable.
type EditGroupInput struct {
	GroupID     uuid.UUID
	Name        *string
	Description *string
	Type        *domain.GroupType
}

// Validate checks all fields and collects all errors.
func (i EditGroupInput) Validate() error {
	var errs []domain.FieldError

	if i.GroupID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "group_id", Message: "required"})
	}
	if i.Name == nil && i.Description == nil && i.Type == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = append(errs, validateName(*i.Name)...)
	}
	if i.Description != nil && len(strings.TrimSpace(*i.Description)) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 1000 characters"})
	}
	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be PUBLIC or PRIVATE"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return []domain.FieldError{{Field: "name", Message: "required"}}
	}
	if len(name) > maxNameLength {
		return []domain.FieldError{{Field: "name", Message: "max 100 characters"}}
	}
	return nil
}

// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "mesa/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// requestValidator validates bound request DTOs against their struct tags.
type requestValidator struct {
	validate *playground.Validate
}

// New creates an echo-compatible request validator.
func New() *requestValidator {
	return &requestValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Tag violations surface as the
// standard validation AppError so the error middleware maps them to 400.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

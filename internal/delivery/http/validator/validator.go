// Package validator wires go-playground/validator as the echo request
// validator.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates the echo validator.
func New() echo.Validator {
	return &echoValidator{
		validate: validator.New(),
	}
}

// Validate validates the bound request struct against its tags.
func (v *echoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

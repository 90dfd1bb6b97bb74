// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator wraps a validator instance so Echo can call it on bound input.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates the validator used by the Echo servers.
func New() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate checks struct tags and converts failures into a 400 response.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}

package validators

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate(req).
type CustomValidator struct {
	validate *validator.Validate
}

// NewValidator builds the validator with all custom rules registered.
func NewValidator() *CustomValidator {
	v := validator.New()
	// pastyear: integer field must not exceed the current calendar year.
	// Used for Book.PublicationYear.
	_ = v.RegisterValidation("pastyear", func(fl validator.FieldLevel) bool {
		return int(fl.Field().Int()) <= time.Now().Year()
	})
	return &CustomValidator{validate: v}
}

// Validate implements echo.Validator. Failures surface as 400s with the
// validator's field-level detail in the message.
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

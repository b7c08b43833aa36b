package config

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig validates the configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	if err := validate.Struct(c); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err)...)
	}

	if c.SaveTo != "" && c.SaveTo == c.AllowHosts {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "saveTo",
			Message:   "must differ from allowHosts",
		})
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			// e.Field() returns the TOML tag name because we registered TagNameFunc
			validationErrors = append(validationErrors, ValidationError{
				FieldPath: e.Field(),
				Message:   getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

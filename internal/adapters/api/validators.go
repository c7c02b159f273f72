package api

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"weathernow.app/pkg/errors"
	"weathernow.app/pkg/validation"
)

// RegisterValidators installs the custom binding rules on gin's validator engine
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.NewConfigurationError("unexpected binding validator engine", nil)
	}
	if err := v.RegisterValidation("units", validateUnits); err != nil {
		return errors.NewConfigurationError("register units validator", err)
	}
	return nil
}

// validateUnits accepts the measurement system names
func validateUnits(fl validator.FieldLevel) bool {
	return validation.IsValidMeasurementSystem(fl.Field().String())
}

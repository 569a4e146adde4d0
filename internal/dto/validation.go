package dto

import (
	"github.com/buffetjuniors/buffet_management_app/internal/utils"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations installs the custom binding rules used by the request
// DTOs on the given validator engine. Registered once at startup.
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("hhmm", validTimeOfDay)
}

func validTimeOfDay(fl validator.FieldLevel) bool {
	_, err := utils.ParseTimeOfDay(fl.Field().String())
	return err == nil
}

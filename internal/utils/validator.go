package utils

import (
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	if Validate != nil {
		return
	}
	Validate = validator.New()
	_ = Validate.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := ParseCalendarDate(fl.Field().String(), nil)
		return err == nil
	})
}

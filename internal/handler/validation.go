package handler

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/qingliul/huangbinhong-backend-go/internal/aggregation"
)

const tagCSVInts = "csvints"

// RegisterValidators adds the custom binding rules and reports fields by
// their query parameter name.
func RegisterValidators(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v.RegisterValidation(tagCSVInts, validateCSVInts)
}

// validateCSVInts accepts "1,2, 3"; every element must be a positive integer.
func validateCSVInts(fl validator.FieldLevel) bool {
	_, err := aggregation.ParseIDList(fl.Field().String())
	return err == nil
}

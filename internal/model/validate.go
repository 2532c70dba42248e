package model

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidateStruct checks the validate tags of any model.
func ValidateStruct(v interface{}) error {
	return validate.Struct(v)
}

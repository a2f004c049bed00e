// file: internals/helpers/validator.go
package helper

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs validator.v10 tags and returns per-field messages,
// shaped for JsonValidationError. Nil means valid.
func ValidateStruct(s any) map[string][]string {
	if err := validate.Struct(s); err != nil {
		ve, ok := err.(validator.ValidationErrors)
		if !ok {
			return map[string][]string{"_": {err.Error()}}
		}
		out := make(map[string][]string, len(ve))
		for _, fe := range ve {
			out[fe.Field()] = append(out[fe.Field()], fe.Tag())
		}
		return out
	}
	return nil
}

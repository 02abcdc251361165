// Package validator checks request structs that carry constraints gin's
// binding tags don't express on their own, like the credential rules on
// registration payloads.
package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate returns nil when v passes, otherwise a field-to-rule map
// suitable as an error details payload. The rule keeps its parameter
// ("min=8") so the client can tell which bound was broken.
func Validate(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		fields[fe.Field()] = rule
	}
	return fields
}

package validate

import "github.com/go-playground/validator/v10"

var v = validator.New()

// Struct checks the `validate` tags on a request body; a nil return
// means every required field is present and non-empty.
func Struct(s any) error {
	return v.Struct(s)
}

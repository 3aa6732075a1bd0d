// Package validate builds the validator instance used by the HTTP
// handlers. Field names in validation errors are taken from the json
// struct tags so that the per-field error map uses wire names.
package validate

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator"
)

// New returns a validator that reports fields by their json tag name.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

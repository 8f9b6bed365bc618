package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Struct validates v against its `validate` tags and returns field errors
// keyed by JSON path, e.g. "items[0].id". An empty map means v is valid.
func Struct(v any) map[string]string {
	errs := map[string]string{}
	err := validate.Struct(v)
	if err == nil {
		return errs
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		errs["_"] = err.Error()
		return errs
	}
	for _, fe := range ves {
		field := fieldPath(fe.Namespace())
		errs[field] = message(field, fe)
	}
	return errs
}

// fieldPath drops the struct type name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be > %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	default:
		return field + " is invalid"
	}
}

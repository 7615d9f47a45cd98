package request

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a decoded request body against its validate tags and
// returns a human-readable description of the first failures, or nil.
func Validate(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var details strings.Builder
	for _, fe := range errs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch fe.Tag() {
		case "required":
			details.WriteString(fmt.Sprintf("%s is required", fieldName(fe)))
		case "min":
			details.WriteString(fmt.Sprintf("%s must not be blank", fieldName(fe)))
		default:
			details.WriteString(fmt.Sprintf("%s failed %s validation", fieldName(fe), fe.Tag()))
		}
	}
	return fmt.Errorf("%s", details.String())
}

// fieldName lowercases the leading letter so messages match the JSON keys
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

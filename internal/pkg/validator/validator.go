package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate runs struct-tag validation and returns field -> failed tag,
// or nil when the value is valid.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	return fieldMap(err)
}

// Details turns a binding error into response details: a field -> tag map
// for validation failures, the raw message for anything else (malformed
// JSON, type mismatches).
func Details(err error) interface{} {
	if m := fieldMap(err); m != nil {
		return m
	}
	return err.Error()
}

func fieldMap(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}

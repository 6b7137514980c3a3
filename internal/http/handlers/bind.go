package handlers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BindJSON binds the request body into out and answers 400 itself on
// failure, so handlers can early-return on a false result.
func BindJSON(ctx *gin.Context, out interface{}) bool {
	err := ctx.ShouldBindJSON(out)

	if err != nil {
		RespondBadRequest(ctx, bindErrorMessage(err, out))

		return false
	}

	return true
}

func bindErrorMessage(err error, out interface{}) string {
	var validatorErrs validator.ValidationErrors

	if !errors.As(err, &validatorErrs) {
		return "Invalid request body"
	}

	var missing, invalid []string

	for _, fe := range validatorErrs {
		name := jsonFieldName(out, fe.Field())

		if fe.Tag() == "required" {
			missing = append(missing, name)
		} else {
			invalid = append(invalid, name)
		}
	}

	switch {
	case len(missing) > 0 && len(invalid) > 0:
		return "Missing required fields: " + strings.Join(missing, ", ") +
			"; invalid fields: " + strings.Join(invalid, ", ")
	case len(missing) > 0:
		return "Missing required fields: " + strings.Join(missing, ", ")
	default:
		return "Invalid fields: " + strings.Join(invalid, ", ")
	}
}

// jsonFieldName maps a struct field name back to its json tag so errors
// speak the wire format, not Go naming.
func jsonFieldName(out interface{}, fieldName string) string {
	t := reflect.TypeOf(out)

	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == nil || t.Kind() != reflect.Struct {
		return fieldName
	}

	sf, ok := t.FieldByName(fieldName)

	if !ok {
		return fieldName
	}

	tag, _, _ := strings.Cut(sf.Tag.Get("json"), ",")

	if tag == "" || tag == "-" {
		return fieldName
	}

	return tag
}

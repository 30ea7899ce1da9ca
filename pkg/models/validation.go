package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"projetos/pkg/utils"
)

var (
	validate        = newValidator()
	usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}_.@+-]+$`)
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields under their JSON names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	err := v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
	return v
}

// DecodeInput unmarshals body into input and checks its validate tags. Failures are
// reported as a 400 keyed by JSON field name.
func DecodeInput(body []byte, input interface{}) *utils.GenericError {
	if err := json.Unmarshal(body, input); err != nil {
		return decodeError(err)
	}

	// keys the client actually sent, to tell a missing field from a blank one
	sent := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &sent); err != nil {
		sent = nil
	}

	if normalizer, ok := input.(interface{ Normalize() }); ok {
		normalizer.Normalize()
	}

	return validateInput(input, sent)
}

func ValidateInput(input interface{}) *utils.GenericError {
	return validateInput(input, nil)
}

func validateInput(input interface{}, sent map[string]json.RawMessage) *utils.GenericError {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}

	fields := map[string][]string{}
	for _, fieldError := range validationErrors {
		fields[fieldError.Field()] = append(fields[fieldError.Field()], validationMessage(fieldError, sent))
	}
	return utils.ValidationError(fields)
}

func validationMessage(fieldError validator.FieldError, sent map[string]json.RawMessage) string {
	switch fieldError.Tag() {
	case "required":
		raw, ok := sent[fieldError.Field()]
		switch {
		case !ok:
			return "This field is required."
		case string(bytes.TrimSpace(raw)) == "null":
			return "This field may not be null."
		case fieldError.Kind() == reflect.String:
			return "This field may not be blank."
		default:
			return "This field is required."
		}
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fieldError.Param())
	case "email":
		return "Enter a valid email address."
	case "username":
		return "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	default:
		return fmt.Sprintf("Failed on the '%s' rule.", fieldError.Tag())
	}
}

func decodeError(err error) *utils.GenericError {
	var typeError *json.UnmarshalTypeError
	if errors.As(err, &typeError) {
		if typeError.Field == "" {
			return utils.ValidationError(map[string][]string{
				utils.NonFieldErrorsKey: {fmt.Sprintf("Invalid data. Expected a dictionary, but got %s.", jsonKindName(typeError.Value))},
			})
		}
		return utils.ValidationError(map[string][]string{
			typeError.Field: {typeMessage(typeError.Type)},
		})
	}

	return utils.HTTPGenericError(http.StatusBadRequest, fmt.Sprintf("JSON parse error - %s", err.Error()))
}

func typeMessage(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "A valid integer is required."
	case reflect.Bool:
		return "Must be a valid boolean."
	case reflect.String:
		return "Not a valid string."
	default:
		return "Invalid value."
	}
}

func jsonKindName(value string) string {
	switch value {
	case "array":
		return "list"
	case "string":
		return "str"
	case "number":
		return "int"
	default:
		return value
	}
}

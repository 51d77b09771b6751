package service

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/SamandarAsiydinov/FirestoreFull/internal/model"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParsePerson builds a Person from raw form fields. Names are trimmed and all
// three fields are required.
func ParsePerson(firstName, lastName, age string) (model.Person, error) {
	p := model.Person{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
	}
	if err := ValidatePerson(p); err != nil {
		return model.Person{}, err
	}

	raw := strings.TrimSpace(age)
	if raw == "" {
		return model.Person{}, model.NewValidationError(model.FieldAge, "is required")
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return model.Person{}, model.NewValidationError(model.FieldAge, "must be an integer")
	}
	p.Age = n

	if err := ValidatePerson(p); err != nil {
		return model.Person{}, err
	}
	return p, nil
}

// ParseFields builds a partial update from raw form fields. Blank inputs are
// left out of the result.
func ParseFields(firstName, lastName, age string) (model.Fields, error) {
	var f model.Fields

	if v := strings.TrimSpace(firstName); v != "" {
		f.FirstName = &v
	}
	if v := strings.TrimSpace(lastName); v != "" {
		f.LastName = &v
	}
	if raw := strings.TrimSpace(age); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return model.Fields{}, model.NewValidationError(model.FieldAge, "must be an integer")
		}
		f.Age = &n
	}

	if err := ValidateFields(f); err != nil {
		return model.Fields{}, err
	}
	return f, nil
}

// ValidatePerson checks the creation rules of a Person.
func ValidatePerson(p model.Person) error {
	return toValidationError(validate.Struct(p))
}

// ValidateFields checks a partial update; an empty one is rejected.
func ValidateFields(f model.Fields) error {
	if f.IsEmpty() {
		return model.NewValidationError("", "nothing to update")
	}
	return toValidationError(validate.Struct(f))
}

func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return model.NewValidationError("", err.Error())
	}

	fe := fieldErrs[0]
	var reason string
	switch fe.Tag() {
	case "required":
		reason = "is required"
	case "min":
		reason = "must not be empty"
	case "gte":
		reason = "must be at least " + fe.Param()
	default:
		reason = "is invalid"
	}
	return model.NewValidationError(fe.Field(), reason)
}

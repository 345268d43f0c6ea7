package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/venue-admin/internal/domain"
	apperrors "github.com/venue-admin/internal/pkg/errors"
)

var validate *validator.Validate

var (
	hhmmRe       = regexp.MustCompile(`^\d{2}:\d{2}$`)
	priceRe      = regexp.MustCompile(`^\d*\.?\d{0,2}$`)
	coordinateRe = regexp.MustCompile(`^[-+]?\d*\.?\d*$`)
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// report json names so errors line up with form fields
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister("hhmm", func(fl validator.FieldLevel) bool {
		return hhmmRe.MatchString(fl.Field().String())
	})
	mustRegister("price", func(fl validator.FieldLevel) bool {
		return priceRe.MatchString(fl.Field().String())
	})
	mustRegister("coordinate", func(fl validator.FieldLevel) bool {
		return coordinateRe.MatchString(fl.Field().String())
	})
	mustRegister("sport_type", func(fl validator.FieldLevel) bool {
		return domain.SportType(fl.Field().String()).Valid()
	})
	mustRegister("venue_status", func(fl validator.FieldLevel) bool {
		return domain.VenueStatus(fl.Field().String()).Valid()
	})
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// Validate - валидация структуры. Ошибки полей возвращаются как
// VALIDATION_FAILED с картой поле -> сообщение в Details.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.ErrInvalidRequest.Wrap(err)
	}

	details := make(map[string]interface{}, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fieldPath(fe)] = message(fe)
	}
	return apperrors.ErrValidationFailed.WithDetails(details)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

// fieldPath drops the top-level struct name: "VenueForm.working_hours[1].open"
// becomes "working_hours[1].open".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters.", fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Select at least %s.", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s.", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters.", fe.Param())
	case "len":
		return fmt.Sprintf("Must be exactly %s characters.", fe.Param())
	case "email":
		return "Please enter a valid email address."
	case "hhmm":
		return "Use HH:MM"
	case "price":
		return "Invalid price format."
	case "coordinate":
		return "Invalid coordinate format."
	case "sport_type":
		return "Unknown sport type."
	case "venue_status":
		return "Unknown venue status."
	case "url":
		return "Must be a valid URL."
	case "gtefield":
		return fmt.Sprintf("Must not be before %s.", fe.Param())
	default:
		return fmt.Sprintf("Failed on %s.", fe.Tag())
	}
}

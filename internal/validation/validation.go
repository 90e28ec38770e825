// Package validation checks service inputs with go-playground/validator
// and converts failures into domain.ValidationError.
//
// Besides the built-in tags it registers notblank and one tag per domain
// enum: category, role, priority, status, dimension, scope.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/fixure/fixure-backend/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonName)

	_ = validate.RegisterValidation("notblank", validators.NotBlank)
	_ = validate.RegisterValidation("category", enum(func(s string) bool { return domain.Category(s).IsValid() }))
	_ = validate.RegisterValidation("role", enum(func(s string) bool { return domain.Role(s).IsValid() }))
	_ = validate.RegisterValidation("priority", enum(func(s string) bool { return domain.Priority(s).IsValid() }))
	_ = validate.RegisterValidation("status", enum(func(s string) bool { return domain.Status(s).IsValid() }))
	_ = validate.RegisterValidation("dimension", enum(func(s string) bool { return domain.Dimension(s).IsValid() }))
	_ = validate.RegisterValidation("scope", enum(func(s string) bool { return domain.DashboardScope(s).IsValid() }))
}

func enum(valid func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return valid(fl.Field().String())
	}
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// Struct validates v and returns a *domain.ValidationError listing every
// failing field, or nil.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{
			Field:   fieldPath(fe),
			Message: message(fe),
		})
	}
	return domain.NewValidationErrors(fields)
}

// fieldPath drops the top-level struct name from the namespace,
// e.g. "SubmitInput.responses[growth]" becomes "responses[growth]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "category":
		return "unknown category"
	case "role":
		return "unknown role"
	case "priority":
		return "must be one of low, medium, high, urgent"
	case "status":
		return "must be one of pending, in-progress, resolved"
	case "dimension":
		return "unknown pulse dimension"
	case "scope":
		return "must be one of all, team_lead, hr"
	default:
		return "invalid value"
	}
}

package http

import (
	"errors"
	"reflect"
	"strings"

	"peerlend-backend/pkg/id"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

// validID checks path params against the public id format.
var validID = id.Valid

var (
	maxMoney = decimal.RequireFromString("9999999999.99")
	maxRate  = decimal.NewFromInt(100)
)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json names so clients see the field they sent.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	// Decimals validate as their canonical string.
	v.RegisterCustomTypeFunc(func(f reflect.Value) interface{} {
		d, ok := f.Interface().(decimal.Decimal)
		if !ok {
			return nil
		}
		return d.String()
	}, decimal.Decimal{})

	_ = v.RegisterValidation("hex32", func(fl validator.FieldLevel) bool {
		return id.Valid(fl.Field().String())
	})
	// money: positive, at most 2 decimal places, fits decimal(12,2)
	_ = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		d, ok := fieldDecimal(fl)
		return ok && d.IsPositive() && d.Equal(d.Truncate(2)) && d.LessThanOrEqual(maxMoney)
	})
	// rate: percentage in (0, 100], at most 2 decimal places
	_ = v.RegisterValidation("rate", func(fl validator.FieldLevel) bool {
		d, ok := fieldDecimal(fl)
		return ok && d.IsPositive() && d.Equal(d.Truncate(2)) && d.LessThanOrEqual(maxRate)
	})

	return &CustomValidator{v: v}
}

func fieldDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(fl.Field().String())
	return d, err == nil
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// ToFieldErrors maps validator.ValidationErrors to readable field messages.
func ToFieldErrors(err error) []FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "hex32":
			out = append(out, FieldError{Field: field, Message: "must be 32-char lowercase hex"})
		case "money":
			out = append(out, FieldError{Field: field, Message: "must be a positive amount with at most 2 decimal places"})
		case "rate":
			out = append(out, FieldError{Field: field, Message: "must be a percentage above 0 and at most 100 with at most 2 decimal places"})
		case "oneof":
			out = append(out, FieldError{Field: field, Message: "must be one of: " + e.Param()})
		case "gte", "min":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte", "max":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	MsgSplitPercentageTotal = "Split Percentages Must Total 100%"
	MsgSplitPercentageScale = "Split Percentage Must Have At Most 6 Decimal Places"
)

// FieldError - ошибка поля формы. Пустое Field - ошибка всей формы.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result накапливает ошибки полей и перекрестных правил.
type Result struct {
	errs []FieldError
}

func (r *Result) Add(field, message string) {
	r.errs = append(r.errs, FieldError{Field: field, Message: message})
}

func (r Result) Valid() bool {
	return len(r.errs) == 0
}

func (r Result) Errors() []FieldError {
	return append([]FieldError(nil), r.errs...)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	// decimal сравнивается в правилах gte/lte как число
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// Struct проверяет поля по тегам validate.
func Struct(v any) (Result, error) {
	var result Result
	err := validate.Struct(v)
	if err == nil {
		return result, nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return result, err
	}
	for _, fieldErr := range errs {
		result.Add(fieldPath(fieldErr), message(fieldErr))
	}
	return result, nil
}

// payment_term1.split_percentage вместо OrderViewModel.payment_term1.split_percentage
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	}
	return "is invalid"
}

package orders

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("order not found")
)

// ValidationError detalla qué campos fallaron. errors.Is(err, ErrInvalidInput) es true.
type ValidationError struct {
	Fields []string
}

func NewValidationError(msgs ...string) *ValidationError {
	return &ValidationError{Fields: msgs}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrInvalidInput.Error()
	}
	return strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

var fieldNames = map[string]string{
	"Name":          "name",
	"Email":         "email",
	"Phone":         "phone",
	"Pets":          "pets",
	"PetCount":      "petCount",
	"StartDate":     "startDate",
	"EndDate":       "endDate",
	"DailyTime":     "time",
	"Description":   "description",
	"EstimatedCost": "estimatedCost",
}

// fromValidator traduce los errores de validator a nombres del payload JSON.
func fromValidator(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name, ok := fieldNames[fe.Field()]
		if !ok {
			name = fe.Field()
		}
		msgs = append(msgs, fmt.Sprintf("%s %s", name, ruleText(fe)))
	}
	return NewValidationError(msgs...)
}

func ruleText(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "gte":
		return "must be >= " + fe.Param()
	case "lte":
		return "must be <= " + fe.Param()
	case "gtefield":
		return "must not be before startDate"
	case "max":
		return "is too long"
	default:
		return "is invalid"
	}
}

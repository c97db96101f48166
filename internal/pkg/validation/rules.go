package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/yigit/aceup/internal/pkg/apperrors"
)

// Grade item input limits
var (
	NameMinLength = 1
	NameMaxLength = 100

	// Weight is a percentage; it must be above WeightMin and at most WeightMax.
	WeightMin = 0.0
	WeightMax = 100.0

	GradeMin = 0.0
)

// String validation
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    strings.TrimSpace(value),
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Required && v.Value == "" {
		return false
	}
	if !v.Required && v.Value == "" {
		return true
	}

	n := utf8.RuneCountInString(v.Value)
	if v.MinLen > 0 && n < v.MinLen {
		return false
	}
	if v.MaxLen > 0 && n > v.MaxLen {
		return false
	}
	return true
}

// Numeric validation
type NumericValidation struct {
	Value        float64
	Min          float64
	Max          float64
	HasMax       bool
	MinExclusive bool
}

// NewNumericValidation creates a new numeric validation with a lower bound of 0
func NewNumericValidation(value float64) *NumericValidation {
	return &NumericValidation{Value: value}
}

// WithMin sets minimum value
func (v *NumericValidation) WithMin(min float64, exclusive bool) *NumericValidation {
	v.Min = min
	v.MinExclusive = exclusive
	return v
}

// WithMax sets maximum value
func (v *NumericValidation) WithMax(max float64) *NumericValidation {
	v.Max = max
	v.HasMax = true
	return v
}

// Validate performs validation
func (v *NumericValidation) Validate() bool {
	if math.IsNaN(v.Value) || math.IsInf(v.Value, 0) {
		return false
	}
	if v.MinExclusive && v.Value <= v.Min {
		return false
	}
	if !v.MinExclusive && v.Value < v.Min {
		return false
	}
	if v.HasMax && v.Value > v.Max {
		return false
	}
	return true
}

func invalid(field, format string, args ...interface{}) error {
	return apperrors.NewCustomError(apperrors.ErrValidationFailed, fmt.Sprintf(format, args...)).
		WithDetails(map[string]interface{}{"field": field})
}

// ParseNumber parses user-entered text into a finite number.
func ParseNumber(field, text string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, invalid(field, "%s must be a number, got %q", field, text)
	}
	return value, nil
}

// GradeItemInput is a validated grade item entered as text.
type GradeItemInput struct {
	Name   string
	Weight float64
	Grade  float64
}

// ParseGradeItemInput validates raw name, weight and grade text.
func ParseGradeItemInput(name, weightText, gradeText string) (*GradeItemInput, error) {
	nameRule := NewStringValidation(name).WithMinLength(NameMinLength).WithMaxLength(NameMaxLength)
	if !nameRule.Validate() {
		return nil, invalid("name", "name must be between %d and %d characters", NameMinLength, NameMaxLength)
	}

	weight, err := ParseNumber("weight", weightText)
	if err != nil {
		return nil, err
	}
	if !NewNumericValidation(weight).WithMin(WeightMin, true).WithMax(WeightMax).Validate() {
		return nil, invalid("weight", "weight must be greater than %g and at most %g", WeightMin, WeightMax)
	}

	grade, err := ParseNumber("grade", gradeText)
	if err != nil {
		return nil, err
	}
	if !NewNumericValidation(grade).WithMin(GradeMin, false).Validate() {
		return nil, invalid("grade", "grade must be at least %g", GradeMin)
	}

	return &GradeItemInput{Name: nameRule.Value, Weight: weight, Grade: grade}, nil
}

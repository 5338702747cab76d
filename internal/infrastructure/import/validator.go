package csvimport

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// FieldType represents the expected type of a field
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeInt     FieldType = "int"
	TypeDecimal FieldType = "decimal"
	TypeDate    FieldType = "date"
)

// FieldRule defines validation rules for a field
type FieldRule struct {
	Column     string
	Type       FieldType
	Required   bool
	MaxLength  int
	MinValue   *decimal.Decimal
	MaxValue   *decimal.Decimal
	DateFormat string
	CustomFunc func(value string) error
}

// FieldRuleBuilder helps build field rules fluently
type FieldRuleBuilder struct {
	rule FieldRule
}

// Field creates a new field rule builder
func Field(column string) *FieldRuleBuilder {
	return &FieldRuleBuilder{
		rule: FieldRule{
			Column:     column,
			Type:       TypeString,
			DateFormat: "2006-01-02", // Default date format
		},
	}
}

// Required marks the field as required
func (b *FieldRuleBuilder) Required() *FieldRuleBuilder {
	b.rule.Required = true
	return b
}

// String sets the field type to string
func (b *FieldRuleBuilder) String() *FieldRuleBuilder {
	b.rule.Type = TypeString
	return b
}

// Int sets the field type to integer
func (b *FieldRuleBuilder) Int() *FieldRuleBuilder {
	b.rule.Type = TypeInt
	return b
}

// Decimal sets the field type to decimal
func (b *FieldRuleBuilder) Decimal() *FieldRuleBuilder {
	b.rule.Type = TypeDecimal
	return b
}

// Date sets the field type to date
func (b *FieldRuleBuilder) Date() *FieldRuleBuilder {
	b.rule.Type = TypeDate
	return b
}

// DateFormat sets the expected date format
func (b *FieldRuleBuilder) DateFormat(format string) *FieldRuleBuilder {
	b.rule.DateFormat = format
	return b
}

// MaxLength sets the maximum length
func (b *FieldRuleBuilder) MaxLength(n int) *FieldRuleBuilder {
	b.rule.MaxLength = n
	return b
}

// MinValue sets the minimum numeric value
func (b *FieldRuleBuilder) MinValue(v decimal.Decimal) *FieldRuleBuilder {
	b.rule.MinValue = &v
	return b
}

// MaxValue sets the maximum numeric value
func (b *FieldRuleBuilder) MaxValue(v decimal.Decimal) *FieldRuleBuilder {
	b.rule.MaxValue = &v
	return b
}

// Range sets both min and max values
func (b *FieldRuleBuilder) Range(min, max decimal.Decimal) *FieldRuleBuilder {
	b.rule.MinValue = &min
	b.rule.MaxValue = &max
	return b
}

// Custom sets a custom validation function
func (b *FieldRuleBuilder) Custom(fn func(value string) error) *FieldRuleBuilder {
	b.rule.CustomFunc = fn
	return b
}

// Build returns the built field rule
func (b *FieldRuleBuilder) Build() FieldRule {
	return b.rule
}

// FieldValidator validates fields according to rules
type FieldValidator struct {
	rules  []FieldRule
	errors *ErrorCollection
}

// NewFieldValidator creates a new field validator
func NewFieldValidator(rules []FieldRule, maxErrors int) *FieldValidator {
	return &FieldValidator{
		rules:  rules,
		errors: NewErrorCollection(maxErrors),
	}
}

// ValidateRow validates all fields in a row
func (v *FieldValidator) ValidateRow(row *Row) bool {
	hasError := false

	for _, rule := range v.rules {
		value := row.Get(rule.Column)

		if rule.Required && value == "" {
			v.errors.AddRequiredError(row.LineNumber, rule.Column)
			hasError = true
			continue
		}

		// Skip further validation for empty optional fields
		if value == "" {
			continue
		}

		if err := validateType(value, rule.Type, rule.DateFormat); err != nil {
			v.errors.AddTypeError(row.LineNumber, rule.Column, string(rule.Type), value)
			hasError = true
			continue
		}

		if rule.MaxLength > 0 && len(value) > rule.MaxLength {
			v.errors.AddLengthError(row.LineNumber, rule.Column, rule.MaxLength)
			hasError = true
		}

		if rule.Type == TypeInt || rule.Type == TypeDecimal {
			if !validateRange(value, rule.MinValue, rule.MaxValue) {
				min, max := "-inf", "+inf"
				if rule.MinValue != nil {
					min = rule.MinValue.String()
				}
				if rule.MaxValue != nil {
					max = rule.MaxValue.String()
				}
				v.errors.AddRangeError(row.LineNumber, rule.Column, min, max)
				hasError = true
			}
		}

		if rule.CustomFunc != nil {
			if err := rule.CustomFunc(value); err != nil {
				v.errors.AddValidationError(row.LineNumber, rule.Column, ErrCodeImportValidation, err.Error())
				hasError = true
			}
		}
	}

	return !hasError
}

// validateType validates a value against expected type
func validateType(value string, fieldType FieldType, dateFormat string) error {
	switch fieldType {
	case TypeString:
		return nil
	case TypeInt:
		_, err := strconv.ParseInt(value, 10, 64)
		return err
	case TypeDecimal:
		_, err := decimal.NewFromString(value)
		return err
	case TypeDate:
		_, err := time.Parse(dateFormat, value)
		return err
	}
	return nil
}

// validateRange validates numeric value against min/max
func validateRange(value string, min, max *decimal.Decimal) bool {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return false
	}

	if min != nil && d.LessThan(*min) {
		return false
	}
	if max != nil && d.GreaterThan(*max) {
		return false
	}
	return true
}

// Errors returns the error collection
func (v *FieldValidator) Errors() *ErrorCollection {
	return v.errors
}

// Reset clears the validator state for reuse
func (v *FieldValidator) Reset() {
	v.errors.Clear()
}

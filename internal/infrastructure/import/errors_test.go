package csvimport

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowError(t *testing.T) {
	t.Run("Error with column", func(t *testing.T) {
		err := NewRowError(5, "Date", ErrCodeImportInvalidType, "expected date")
		assert.Equal(t, "row 5, column 'Date': expected date", err.Error())
	})

	t.Run("Error without column", func(t *testing.T) {
		err := NewRowError(10, "", ErrCodeImportCSVParsing, "malformed row")
		assert.Equal(t, "row 10: malformed row", err.Error())
	})

	t.Run("Error with value", func(t *testing.T) {
		err := NewRowErrorWithValue(3, "Sleep Hours", ErrCodeImportInvalidType, "expected decimal", "abc")
		assert.Equal(t, "abc", err.Value)
		assert.Equal(t, 3, err.Row)
	})
}

func TestErrorCollection(t *testing.T) {
	t.Run("Add errors within limit", func(t *testing.T) {
		ec := NewErrorCollection(10)

		ec.Add(NewRowError(1, "Date", ErrCodeImportValidation, "error 1"))
		ec.Add(NewRowError(2, "Mood", ErrCodeImportValidation, "error 2"))

		assert.Equal(t, 2, ec.Count())
		assert.Equal(t, 2, ec.TotalCount())
		assert.True(t, ec.HasErrors())
		assert.False(t, ec.IsTruncated())
	})

	t.Run("Truncates beyond limit", func(t *testing.T) {
		ec := NewErrorCollection(2)

		for i := 1; i <= 5; i++ {
			ec.Add(NewRowError(i, "Date", ErrCodeImportValidation, "error"))
		}

		assert.Equal(t, 2, ec.Count())
		assert.Equal(t, 5, ec.TotalCount())
		assert.True(t, ec.IsTruncated())
	})

	t.Run("Zero max uses default limit", func(t *testing.T) {
		ec := NewErrorCollection(0)
		ec.Add(NewRowError(1, "", ErrCodeImportValidation, "error"))
		assert.Equal(t, 1, ec.Count())
	})

	t.Run("Helpers set codes", func(t *testing.T) {
		ec := NewErrorCollection(10)
		ec.AddRequiredError(2, "Date")
		ec.AddTypeError(3, "Sleep Hours", "decimal", "abc")
		ec.AddLengthError(4, "Notes", 5000)
		ec.AddRangeError(5, "Sleep Hours", "0", "24")

		errs := ec.Errors()
		assert.Equal(t, ErrCodeImportRequiredField, errs[0].Code)
		assert.Equal(t, ErrCodeImportInvalidType, errs[1].Code)
		assert.Equal(t, ErrCodeImportInvalidLength, errs[2].Code)
		assert.Equal(t, ErrCodeImportInvalidRange, errs[3].Code)
	})

	t.Run("Clear resets state", func(t *testing.T) {
		ec := NewErrorCollection(10)
		ec.Add(NewRowError(1, "", ErrCodeImportValidation, "error"))
		ec.Clear()

		assert.False(t, ec.HasErrors())
		assert.Equal(t, 0, ec.Count())
	})

	t.Run("String summarizes errors", func(t *testing.T) {
		ec := NewErrorCollection(10)
		assert.Equal(t, "no errors", ec.String())

		ec.Add(NewRowError(2, "Date", ErrCodeImportRequiredField, "field 'Date' is required"))
		s := ec.String()
		assert.True(t, strings.Contains(s, "1 error(s) found"))
		assert.True(t, strings.Contains(s, "row 2, column 'Date'"))
	})
}

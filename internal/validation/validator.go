// =============================================================================
// CFDI Report - Amount Validation
// =============================================================================
//
// Invoice amounts arrive as attribute strings. Before they can be added to the
// running totals each one is parsed as a decimal number; a value that does not
// parse is reported as a ValidationError naming the field and the value.
//
// ACCEPTED FORMS:
//   "100", "100.00", "-3.5", "1e3", " 42.10 " (surrounding spaces trimmed)
//
// =============================================================================

package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/cfdi-report/internal/types"
)

// ErrNonNumericTotal classifies amounts that are not decimal numbers.
var ErrNonNumericTotal = errors.New("non-numeric total")

// =============================================================================
// VALIDATION ERROR TYPES
// =============================================================================

// ValidationError represents a single amount that failed to parse.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string

	// Value is the actual value that failed validation.
	Value string

	// Message is a human-readable error message.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q: %s (value: '%s')", e.Field, e.Message, e.Value)
}

// Is matches ErrNonNumericTotal.
func (e *ValidationError) Is(target error) bool {
	return target == ErrNonNumericTotal
}

// =============================================================================
// AMOUNT PARSING
// =============================================================================

// ParseAmount parses a single amount value.
func ParseAmount(field, value string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return decimal.Zero, &ValidationError{Field: field, Value: value, Message: "value is empty"}
	}

	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, &ValidationError{Field: field, Value: value, Message: "value is not a valid decimal number"}
	}

	return amount, nil
}

// Amounts parses the named fields of record, in the order given.
//
// RETURNS:
//   - One amount per name.
//   - A *ValidationError for the first field that is missing or does not
//     parse.
func Amounts(record types.Record, fields []string) ([]decimal.Decimal, error) {
	amounts := make([]decimal.Decimal, len(fields))

	for i, name := range fields {
		value, ok := record.Get(name)
		if !ok {
			return nil, &ValidationError{Field: name, Message: "field not present in record"}
		}

		amount, err := ParseAmount(name, value)
		if err != nil {
			return nil, err
		}
		amounts[i] = amount
	}

	return amounts, nil
}

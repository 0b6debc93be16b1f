// =============================================================================
// CFDI Report - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - extractor
//   - report
//   - processor
//
// =============================================================================

package types

// =============================================================================
// RECORD TYPES
// =============================================================================

// Field is a single extracted value together with its output name.
type Field struct {
	// Name is the descriptor name (e.g. "fecha", "subtotal").
	Name string

	// Value is the literal attribute value found in the document.
	Value string
}

// Record is the ordered set of fields extracted from one invoice.
// Fields keep the order of the descriptors that produced them.
type Record struct {
	Fields []Field
}

// Set appends a field, or replaces the value of an existing field with the
// same name in place so the original position is kept.
func (r *Record) Set(name, value string) {
	for i := range r.Fields {
		if r.Fields[i].Name == name {
			r.Fields[i].Value = value
			return
		}
	}
	r.Fields = append(r.Fields, Field{Name: name, Value: value})
}

// Get returns the value stored under name.
func (r Record) Get(name string) (string, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Values returns the field values in insertion order.
func (r Record) Values() []string {
	values := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		values[i] = f.Value
	}
	return values
}

// Len returns the number of fields in the record.
func (r Record) Len() int {
	return len(r.Fields)
}

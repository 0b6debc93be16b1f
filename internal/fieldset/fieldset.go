// =============================================================================
// CFDI Report - Field Descriptors
// =============================================================================
//
// A field descriptor maps an output field name to the path used to reach its
// value inside an invoice document. Every segment of the path except the last
// names a child element; the last segment names an attribute on the element
// reached so far.
//
// DEFAULT DESCRIPTOR SET:
//
//   | name      | path                                  |
//   |-----------|---------------------------------------|
//   | fecha     | Fecha                                 |
//   | emisor    | Emisor / Nombre                       |
//   | receptor  | Receptor / Nombre                     |
//   | subtotal  | SubTotal                              |
//   | impuestos | Impuestos / TotalImpuestosTrasladados |
//   | total     | Total                                 |
//
// =============================================================================

package fieldset

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Names of the fields that feed the running totals.
const (
	FieldSubtotal  = "subtotal"
	FieldImpuestos = "impuestos"
	FieldTotal     = "total"
)

// PathSeparator separates path segments in templates and YAML shorthand.
const PathSeparator = "/"

// =============================================================================
// DESCRIPTOR
// =============================================================================

// Descriptor describes one field to extract.
type Descriptor struct {
	// Name is the output key.
	Name string `yaml:"name"`

	// Path is the ordered list of element names followed by the attribute
	// name. It always has at least one element.
	Path []string `yaml:"path"`
}

// Attribute returns the terminal path segment.
func (d Descriptor) Attribute() string {
	return d.Path[len(d.Path)-1]
}

// Elements returns the child element segments that precede the attribute.
func (d Descriptor) Elements() []string {
	return d.Path[:len(d.Path)-1]
}

// String renders the descriptor as "name: A/B/C".
func (d Descriptor) String() string {
	return d.Name + ": " + strings.Join(d.Path, PathSeparator)
}

// UnmarshalYAML accepts the path either as a sequence of segments or as a
// single "/"-separated string:
//
//	- name: emisor
//	  path: [Emisor, Nombre]
//	- name: receptor
//	  path: Receptor/Nombre
func (d *Descriptor) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Name string    `yaml:"name"`
		Path yaml.Node `yaml:"path"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	switch raw.Path.Kind {
	case yaml.ScalarNode:
		*d = New(raw.Name, raw.Path.Value)
	case yaml.SequenceNode:
		var segments []string
		if err := raw.Path.Decode(&segments); err != nil {
			return fmt.Errorf("field %q: %w", raw.Name, err)
		}
		*d = Descriptor{Name: strings.TrimSpace(raw.Name), Path: segments}
	case 0:
		*d = Descriptor{Name: strings.TrimSpace(raw.Name)}
	default:
		return fmt.Errorf("field %q: path must be a string or a list (line %d)", raw.Name, raw.Path.Line)
	}

	return nil
}

// New builds a descriptor from a name and a "/"-separated path.
func New(name, path string) Descriptor {
	segments := strings.Split(path, PathSeparator)
	for i := range segments {
		segments[i] = strings.TrimSpace(segments[i])
	}
	return Descriptor{Name: strings.TrimSpace(name), Path: segments}
}

// =============================================================================
// DEFAULT SET
// =============================================================================

// Default returns a fresh copy of the built-in descriptor set. Callers may
// modify the returned slice freely.
func Default() []Descriptor {
	return []Descriptor{
		{Name: "fecha", Path: []string{"Fecha"}},
		{Name: "emisor", Path: []string{"Emisor", "Nombre"}},
		{Name: "receptor", Path: []string{"Receptor", "Nombre"}},
		{Name: FieldSubtotal, Path: []string{"SubTotal"}},
		{Name: FieldImpuestos, Path: []string{"Impuestos", "TotalImpuestosTrasladados"}},
		{Name: FieldTotal, Path: []string{"Total"}},
	}
}

// TotalFields lists the fields summed across invoices, in summary order.
func TotalFields() []string {
	return []string{FieldSubtotal, FieldImpuestos, FieldTotal}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks that a descriptor set can be resolved against a document:
// at least one descriptor, every name non-empty and unique, every path
// non-empty with no blank segment.
func Validate(descriptors []Descriptor) error {
	if len(descriptors) == 0 {
		return fmt.Errorf("descriptor set is empty")
	}

	seen := make(map[string]bool, len(descriptors))
	for i, d := range descriptors {
		if d.Name == "" {
			return fmt.Errorf("descriptor %d: name is empty", i+1)
		}
		if seen[d.Name] {
			return fmt.Errorf("descriptor %q: duplicate name", d.Name)
		}
		seen[d.Name] = true

		if len(d.Path) == 0 {
			return fmt.Errorf("descriptor %q: path is empty", d.Name)
		}
		for j, segment := range d.Path {
			if strings.TrimSpace(segment) == "" {
				return fmt.Errorf("descriptor %q: path segment %d is empty", d.Name, j+1)
			}
		}
	}

	return nil
}

// RequireTotals checks that every field summed by the report is present.
func RequireTotals(descriptors []Descriptor) error {
	names := make(map[string]bool, len(descriptors))
	for _, d := range descriptors {
		names[d.Name] = true
	}
	for _, name := range TotalFields() {
		if !names[name] {
			return fmt.Errorf("descriptor set has no %q field", name)
		}
	}
	return nil
}

// =============================================================================
// CFDI Report - Field Extractor
// =============================================================================
//
// The extractor resolves field descriptors against a parsed invoice document.
//
// RESOLUTION:
//   A cursor starts at the document root element and walks the descriptor
//   path one segment at a time:
//     - every segment but the last moves the cursor to the FIRST child
//       element with that local name in the invoice namespace
//     - the last segment reads an un-prefixed attribute on the cursor
//
//   <cfdi:Comprobante Fecha="..." SubTotal="..." Total="...">
//     <cfdi:Emisor Nombre="..."/>        <- [Emisor, Nombre]
//     <cfdi:Receptor Nombre="..."/>      <- [Receptor, Nombre]
//     <cfdi:Impuestos TotalImpuestosTrasladados="..."/>
//   </cfdi:Comprobante>
//
// =============================================================================

package extractor

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/ginjaninja78/cfdi-report/internal/fieldset"
	"github.com/ginjaninja78/cfdi-report/internal/types"
)

// NamespaceCFDI3 is the namespace of CFDI 3.x invoice elements.
const NamespaceCFDI3 = "http://www.sat.gob.mx/cfd/3"

// =============================================================================
// EXTRACTOR
// =============================================================================

// Extractor resolves descriptors against documents of a single namespace.
type Extractor struct {
	namespace string
}

// New creates an Extractor for the given element namespace. An empty
// namespace selects NamespaceCFDI3.
func New(namespace string) *Extractor {
	if namespace == "" {
		namespace = NamespaceCFDI3
	}
	return &Extractor{namespace: namespace}
}

// Namespace returns the namespace children are matched in.
func (e *Extractor) Namespace() string {
	return e.namespace
}

// Extract resolves every descriptor against root, in order, using the CFDI 3
// namespace.
func Extract(root *xmlquery.Node, descriptors []fieldset.Descriptor) (types.Record, error) {
	return New(NamespaceCFDI3).Extract(root, descriptors)
}

// Extract resolves every descriptor against root, in order. The first
// failing descriptor stops extraction.
func (e *Extractor) Extract(root *xmlquery.Node, descriptors []fieldset.Descriptor) (types.Record, error) {
	record := types.Record{Fields: make([]types.Field, 0, len(descriptors))}

	for _, d := range descriptors {
		value, err := e.Resolve(root, d)
		if err != nil {
			return types.Record{}, err
		}
		record.Set(d.Name, value)
	}

	return record, nil
}

// Resolve walks a single descriptor path starting at root.
func (e *Extractor) Resolve(root *xmlquery.Node, d fieldset.Descriptor) (string, error) {
	if len(d.Path) == 0 {
		return "", fmt.Errorf("descriptor %q has an empty path", d.Name)
	}

	current := root
	if current == nil {
		return "", &Error{Kind: ErrMissingElement, Field: d.Name, Segment: d.Path[0], Path: d.Path}
	}

	for _, tag := range d.Elements() {
		current = e.firstChild(current, tag)
		if current == nil {
			return "", &Error{Kind: ErrMissingElement, Field: d.Name, Segment: tag, Path: d.Path}
		}
	}

	attr := d.Attribute()
	value, ok := attribute(current, attr)
	if !ok {
		return "", &Error{Kind: ErrMissingAttribute, Field: d.Name, Segment: attr, Path: d.Path}
	}

	return value, nil
}

// firstChild returns the first element child of n named tag in the
// extractor's namespace, or nil.
func (e *Extractor) firstChild(n *xmlquery.Node, tag string) *xmlquery.Node {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != xmlquery.ElementNode {
			continue
		}
		if child.Data == tag && child.NamespaceURI == e.namespace {
			return child
		}
	}
	return nil
}

// attribute looks up an un-namespaced attribute by local name.
func attribute(n *xmlquery.Node, name string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Name.Local == name && attr.NamespaceURI == "" {
			return attr.Value, true
		}
	}
	return "", false
}

// =============================================================================
// DOCUMENT PARSING
// =============================================================================

// Parse reads an XML document and returns its root element.
//
// The document must hold exactly one top-level element. Text outside it
// (other than whitespace) or a second top-level element makes the document
// malformed; the declaration, comments and processing instructions are
// allowed anywhere at the top level.
func Parse(r io.Reader) (*xmlquery.Node, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, &Error{Kind: ErrMalformedDocument, Err: err}
	}

	var root *xmlquery.Node
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		switch n.Type {
		case xmlquery.ElementNode:
			if root != nil {
				return nil, &Error{Kind: ErrMalformedDocument, Err: fmt.Errorf("junk after document element: <%s>", n.Data)}
			}
			root = n
		case xmlquery.TextNode, xmlquery.CharDataNode:
			if strings.TrimSpace(n.Data) == "" {
				continue
			}
			if root != nil {
				return nil, &Error{Kind: ErrMalformedDocument, Err: fmt.Errorf("junk after document element: %q", strings.TrimSpace(n.Data))}
			}
			return nil, &Error{Kind: ErrMalformedDocument, Err: fmt.Errorf("text before document element: %q", strings.TrimSpace(n.Data))}
		}
	}

	if root == nil {
		return nil, &Error{Kind: ErrMalformedDocument, Err: fmt.Errorf("document has no root element")}
	}

	return root, nil
}

// ParseFile opens and parses the XML document at path.
func ParseFile(path string) (*xmlquery.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

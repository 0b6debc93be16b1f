// =============================================================================
// CFDI Report - Report Renderer
// =============================================================================
//
// The renderer produces the fixed-width plain-text report written to stdout.
//
// REPORT LAYOUT:
//
//   ================================================================ (80)
//                                   Procesamiento
//   ================================================================ (80)
//
//   => Procesando facturas/a.xml
//
//   * 2018-03-01T12:00:00
//   * ACME SA DE CV
//   * A VERY LONG RECEIVER NAME THAT DOES NOT FIT ON A SINGLE LINE OF THE REPO
//     RT IS WRAPPED BY CHARACTER COUNT
//   ...
//
// Output is byte-for-byte compatible with the reports produced by the earlier
// tooling, including the trailing pad after the last line of every item and
// the asymmetric padding of banner titles.
//
// =============================================================================

package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/ginjaninja78/cfdi-report/internal/types"
)

// Defaults used by the report.
const (
	DefaultWidth  = 80
	DefaultBullet = "*"
)

// ErrWrite marks failures of the underlying output stream.
var ErrWrite = errors.New("failed to write report")

// =============================================================================
// RENDERER
// =============================================================================

// Renderer writes report sections to an output stream.
type Renderer struct {
	writer io.Writer
	width  int
	bullet string
}

// Options configure a Renderer. Zero values select the defaults.
type Options struct {
	Width  int
	Bullet string
}

// NewRenderer creates a renderer with the default width and bullet.
func NewRenderer(writer io.Writer) *Renderer {
	return NewRendererWithOptions(writer, Options{})
}

// NewRendererWithOptions creates a renderer with custom options.
func NewRendererWithOptions(writer io.Writer, opts Options) *Renderer {
	if writer == nil {
		writer = os.Stdout
	}
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Bullet == "" {
		opts.Bullet = DefaultBullet
	}
	return &Renderer{writer: writer, width: opts.Width, bullet: opts.Bullet}
}

// Width returns the report width.
func (r *Renderer) Width() int {
	return r.width
}

// Banner prints a centred section title between two rules.
func (r *Renderer) Banner(title string) error {
	return r.write(FormatBanner(title, r.width))
}

// Item prints content as a bulleted, character-wrapped block.
func (r *Renderer) Item(content, bullet string, width int) error {
	text, err := FormatItem(content, bullet, width)
	if err != nil {
		return err
	}
	return r.write(text)
}

// Record prints every value of record with the default bullet, then a blank
// line. Field names are not printed.
func (r *Renderer) Record(record types.Record) error {
	return r.Values(record.Values()...)
}

// Values prints each value as an item, then a blank line.
func (r *Renderer) Values(values ...string) error {
	for _, v := range values {
		if err := r.Item(v, r.bullet, r.width); err != nil {
			return err
		}
	}
	return r.Blank()
}

// Blank prints an empty line.
func (r *Renderer) Blank() error {
	return r.write("\n")
}

func (r *Renderer) write(s string) error {
	if _, err := io.WriteString(r.writer, s); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// =============================================================================
// FORMATTING
// =============================================================================

// FormatBanner returns the banner text for title.
//
// The title line is built as:
//
//	half spaces, " ", title, pad spaces, half spaces
//
// where half = (width - len(title) + 2) / 2 and pad is 2 for titles of even
// length and 1 for odd length.
func FormatBanner(title string, width int) string {
	length := utf8.RuneCountInString(title)

	half := (width - length + 2) / 2
	if half < 0 {
		half = 0
	}
	pad := 1
	if length%2 == 0 {
		pad = 2
	}

	rule := strings.Repeat("=", width)

	var b strings.Builder
	b.WriteString(rule)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", half))
	b.WriteByte(' ')
	b.WriteString(title)
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(strings.Repeat(" ", half))
	b.WriteByte('\n')
	b.WriteString(rule)
	b.WriteByte('\n')
	b.WriteByte('\n')
	return b.String()
}

// FormatItem returns the item text for content.
//
// Content is cut into chunks of width-len(bullet)-1 characters with no regard
// for word boundaries. The first line starts with bullet and a space,
// continuation lines with the same number of spaces, and the last line is
// followed by len(bullet)+1 spaces. Empty content still yields one line.
func FormatItem(content, bullet string, width int) (string, error) {
	bulletLen := utf8.RuneCountInString(bullet)
	effective := width - bulletLen - 1
	if effective < 1 {
		return "", fmt.Errorf("width %d leaves no room for content after bullet %q", width, bullet)
	}

	runes := []rune(content)
	lines := (len(runes) + effective - 1) / effective
	if lines == 0 {
		lines = 1
	}

	indent := strings.Repeat(" ", bulletLen+1)

	var b strings.Builder
	for i := 0; i < lines; i++ {
		if i == 0 {
			b.WriteString(bullet)
			b.WriteByte(' ')
		} else {
			b.WriteString(indent)
		}

		start := i * effective
		end := start + effective
		if i == lines-1 || end > len(runes) {
			end = len(runes)
		}
		b.WriteString(string(runes[start:end]))

		if i == lines-1 {
			b.WriteString(indent)
		}
		b.WriteByte('\n')
	}

	return b.String(), nil
}

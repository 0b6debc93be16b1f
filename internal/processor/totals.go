package processor

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Totals are the running sums of subtotal, impuestos and total.
type Totals struct {
	Subtotal  decimal.Decimal
	Impuestos decimal.Decimal
	Total     decimal.Decimal

	// invoices counts the Add calls. With no invoices the sums print as
	// the bare integer 0.
	invoices int
}

// NewTotals returns zeroed totals.
func NewTotals() Totals {
	return Totals{
		Subtotal:  decimal.Zero,
		Impuestos: decimal.Zero,
		Total:     decimal.Zero,
	}
}

// Add adds one invoice's amounts.
func (t *Totals) Add(subtotal, impuestos, total decimal.Decimal) {
	t.Subtotal = t.Subtotal.Add(subtotal)
	t.Impuestos = t.Impuestos.Add(impuestos)
	t.Total = t.Total.Add(total)
	t.invoices++
}

// Strings returns the totals formatted for the summary block.
//
// Once an invoice has been added every sum carries a fractional part:
// 150.5 prints as "150.5" and 100 as "100.0". Before that the sums print
// as "0".
func (t Totals) Strings() []string {
	return []string{t.format(t.Subtotal), t.format(t.Impuestos), t.format(t.Total)}
}

func (t Totals) format(d decimal.Decimal) string {
	s := d.String()
	if t.invoices > 0 && !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Package money formats computed figures for display.
//
// Figures stay float64 through every calculation. Rounding to cents happens
// only here, once per displayed value, so many items never compound rounding
// error in a subtotal.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RoundingMode selects how a figure is rounded to two decimals.
type RoundingMode string

const (
	// HalfUp rounds ties away from zero: 0.125 -> 0.13.
	HalfUp RoundingMode = "half-up"
	// HalfEven rounds ties to the even cent: 0.125 -> 0.12.
	HalfEven RoundingMode = "half-even"
)

// ParseRoundingMode parses a mode name, case-insensitively.
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch mode := RoundingMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case HalfUp, HalfEven:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown rounding mode %q (want %q or %q)", s, HalfUp, HalfEven)
	}
}

// Formatter renders figures with exactly two decimals in the en-US locale.
type Formatter struct {
	mode    RoundingMode
	printer *message.Printer
}

// NewFormatter returns a formatter using mode. An empty mode means HalfUp.
func NewFormatter(mode RoundingMode) *Formatter {
	if mode == "" {
		mode = HalfUp
	}
	return &Formatter{
		mode:    mode,
		printer: message.NewPrinter(language.AmericanEnglish),
	}
}

// Mode returns the rounding mode in use.
func (f *Formatter) Mode() RoundingMode {
	return f.mode
}

// Round rounds x to cents. Ties are judged on the shortest decimal form of x,
// so 1.005 is treated as exactly 1.005 rather than its binary neighbour.
// This differs from fixed-point float formatting for values like 2.675,
// which Round renders as 2.68 where strconv.FormatFloat(x, 'f', 2, 64)
// gives 2.67.
func (f *Formatter) Round(x float64) decimal.Decimal {
	d := decimal.NewFromFloat(x)
	if f.mode == HalfEven {
		return d.RoundBank(2)
	}
	return d.Round(2)
}

// Amount renders x with two decimals and no grouping, e.g. "1234.50".
func (f *Formatter) Amount(x float64) string {
	return f.Round(x).StringFixed(2)
}

// Currency renders x as US dollars, e.g. "$1,234.50".
func (f *Formatter) Currency(x float64) string {
	rounded := f.Round(x)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}
	// The value is already an exact cent amount, so %.2f only adds grouping.
	return sign + "$" + f.printer.Sprintf("%.2f", rounded.InexactFloat64())
}

// Percent renders a tax rate without trailing zeros, e.g. "7.5%".
func (f *Formatter) Percent(rate float64) string {
	return decimal.NewFromFloat(rate).String() + "%"
}

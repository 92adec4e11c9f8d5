package interest

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ErrInvalidNumber is returned by ParseAmount for text that is not a number.
var ErrInvalidNumber = errors.New("interest: invalid number")

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatAmount renders v with two decimals using pt-BR separators (1.234,56).
func FormatAmount(v float64) string {
	return brPrinter.Sprint(number.Decimal(v, number.Scale(2)))
}

// FormatBRL renders v as a Brazilian real amount, e.g. "R$ 1.126,83".
func FormatBRL(v float64) string {
	return "R$ " + FormatAmount(v)
}

// FormatPercent renders a percentage with pt-BR separators, e.g. "1,5%".
func FormatPercent(v float64) string {
	return brPrinter.Sprint(number.Decimal(v, number.MaxFractionDigits(4))) + "%"
}

// ParseAmount parses user text in pt-BR notation (1.234,56). A dot followed
// by exactly three digits is a thousands separator; any other single dot with
// no comma is read as a decimal point (1234.56). A dot after the comma is
// rejected. A leading "R$" and a trailing "%" are ignored.
func ParseAmount(s string) (float64, error) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimPrefix(raw, "R$")
	raw = strings.TrimSuffix(raw, "%")
	raw = strings.ReplaceAll(raw, " ", "")
	if raw == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidNumber)
	}
	if comma := strings.Index(raw, ","); comma >= 0 {
		if strings.Contains(raw[comma:], ".") {
			return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
		}
		raw = strings.ReplaceAll(raw, ".", "")
		raw = strings.Replace(raw, ",", ".", 1)
	} else if groups := strings.Split(raw, "."); len(groups) > 1 && isGrouped(groups) {
		raw = strings.Join(groups, "")
	} else if len(groups) > 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return v, nil
}

// isGrouped reports whether every group after the first has exactly three digits.
func isGrouped(groups []string) bool {
	for _, g := range groups[1:] {
		if len(g) != 3 || strings.Trim(g, "0123456789") != "" {
			return false
		}
	}
	return true
}

// Package coerce normalizes raw, possibly-blank field values into typed
// values with documented defaults. Every function is total: empty, absent or
// unparsable input resolves to the default, never to an error. Numbers are
// parsed with '.' decimal separator and no thousands grouping — field values
// are wire data, not locale-formatted text.
package coerce

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatoFecha is the only date layout accepted and emitted (yyyy-MM-dd).
const FormatoFecha = "2006-01-02"

// Entero parses raw as a base-10 integer, returning def on blank or bad input.
func Entero(raw string, def int64) int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return def
	}
	return n
}

// Monto parses raw as a decimal amount, returning def on blank or bad input.
func Monto(raw string, def decimal.Decimal) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return def
	}
	return d
}

// Texto returns raw unless it is blank, in which case def.
func Texto(raw, def string) string {
	if raw == "" {
		return def
	}
	return raw
}

// FechaISO validates raw against FormatoFecha and returns it normalized.
// Blank or malformed input yields the current date.
func FechaISO(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw != "" {
		if t, err := time.Parse(FormatoFecha, raw); err == nil {
			return t.Format(FormatoFecha)
		}
	}
	return time.Now().Format(FormatoFecha)
}

// Package currency holds the static catalog of currencies the converter UI
// offers, plus code normalization shared by the conversion path.
package currency

import (
	"fmt"
	"strings"

	"github.com/swiftflow/swiftflow/pkg/domain"
)

// Meta describes a currency for display purposes.
type Meta struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Flag   string `json:"flag"`
}

// catalog is fixed at build time. The conversion path deliberately does NOT
// restrict itself to this set; only the supported-currencies endpoint does.
var catalog = map[string]Meta{
	"USD": {Name: "US Dollar", Symbol: "$", Flag: "🇺🇸"},
	"EUR": {Name: "Euro", Symbol: "€", Flag: "🇪🇺"},
	"GBP": {Name: "British Pound", Symbol: "£", Flag: "🇬🇧"},
	"JPY": {Name: "Japanese Yen", Symbol: "¥", Flag: "🇯🇵"},
	"AUD": {Name: "Australian Dollar", Symbol: "A$", Flag: "🇦🇺"},
	"CAD": {Name: "Canadian Dollar", Symbol: "C$", Flag: "🇨🇦"},
	"CHF": {Name: "Swiss Franc", Symbol: "Fr", Flag: "🇨🇭"},
	"CNY": {Name: "Chinese Yuan", Symbol: "¥", Flag: "🇨🇳"},
	"SEK": {Name: "Swedish Krona", Symbol: "kr", Flag: "🇸🇪"},
	"NZD": {Name: "New Zealand Dollar", Symbol: "NZ$", Flag: "🇳🇿"},
	"MXN": {Name: "Mexican Peso", Symbol: "$", Flag: "🇲🇽"},
	"SGD": {Name: "Singapore Dollar", Symbol: "S$", Flag: "🇸🇬"},
	"HKD": {Name: "Hong Kong Dollar", Symbol: "HK$", Flag: "🇭🇰"},
	"NOK": {Name: "Norwegian Krone", Symbol: "kr", Flag: "🇳🇴"},
	"INR": {Name: "Indian Rupee", Symbol: "₹", Flag: "🇮🇳"},
	"BRL": {Name: "Brazilian Real", Symbol: "R$", Flag: "🇧🇷"},
	"RUB": {Name: "Russian Ruble", Symbol: "₽", Flag: "🇷🇺"},
	"KRW": {Name: "South Korean Won", Symbol: "₩", Flag: "🇰🇷"},
	"TRY": {Name: "Turkish Lira", Symbol: "₺", Flag: "🇹🇷"},
	"ZAR": {Name: "South African Rand", Symbol: "R", Flag: "🇿🇦"},
	"PLN": {Name: "Polish Zloty", Symbol: "zł", Flag: "🇵🇱"},
	"DKK": {Name: "Danish Krone", Symbol: "kr", Flag: "🇩🇰"},
	"CZK": {Name: "Czech Koruna", Symbol: "Kč", Flag: "🇨🇿"},
	"HUF": {Name: "Hungarian Forint", Symbol: "Ft", Flag: "🇭🇺"},
	"ILS": {Name: "Israeli Shekel", Symbol: "₪", Flag: "🇮🇱"},
	"CLP": {Name: "Chilean Peso", Symbol: "$", Flag: "🇨🇱"},
	"PHP": {Name: "Philippine Peso", Symbol: "₱", Flag: "🇵🇭"},
	"AED": {Name: "UAE Dirham", Symbol: "د.إ", Flag: "🇦🇪"},
	"COP": {Name: "Colombian Peso", Symbol: "$", Flag: "🇨🇴"},
	"SAR": {Name: "Saudi Riyal", Symbol: "﷼", Flag: "🇸🇦"},
	"MYR": {Name: "Malaysian Ringgit", Symbol: "RM", Flag: "🇲🇾"},
	"RON": {Name: "Romanian Leu", Symbol: "lei", Flag: "🇷🇴"},
	"THB": {Name: "Thai Baht", Symbol: "฿", Flag: "🇹🇭"},
	"BGN": {Name: "Bulgarian Lev", Symbol: "лв", Flag: "🇧🇬"},
	"HRK": {Name: "Croatian Kuna", Symbol: "kn", Flag: "🇭🇷"},
	"ISK": {Name: "Icelandic Krona", Symbol: "kr", Flag: "🇮🇸"},
	"UYU": {Name: "Uruguayan Peso", Symbol: "$U", Flag: "🇺🇾"},
}

// Supported returns the full catalog. A copy is returned so callers cannot
// mutate the shared table.
func Supported() map[string]Meta {
	out := make(map[string]Meta, len(catalog))
	for code, meta := range catalog {
		out[code] = meta
	}
	return out
}

// Count returns the number of catalog entries.
func Count() int {
	return len(catalog)
}

// IsSupported reports whether a code is in the catalog.
func IsSupported(code string) bool {
	_, ok := catalog[strings.ToUpper(code)]
	return ok
}

// Normalize upper-cases a currency code and rejects anything that is not
// exactly three letters. It does not check membership in the catalog.
func Normalize(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return "", fmt.Errorf("%w: currency code must be 3 letters", domain.ErrInvalidInput)
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("%w: currency code must be 3 letters", domain.ErrInvalidInput)
		}
	}
	return code, nil
}

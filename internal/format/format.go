package format

import (
	"fmt"
	"strconv"
	"strings"
)

// FmtCurrency formats an amount in minor units.
// Example: FmtCurrency(4999, "USD", "en") => "$49.99"
func FmtCurrency(minor int64, currency, lang string) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	switch currency {
	case "JPY":
		return signed(minor, "¥", func(v int64) string { return thousandSep(v) })
	case "USD", "":
		return signed(minor, "$", decimal)
	case "EUR":
		if strings.EqualFold(lang, "en") {
			return signed(minor, "€", decimal)
		}
		return signed(minor, "", decimal) + " €"
	case "INR":
		return signed(minor, "₹", decimal)
	default:
		return fmt.Sprintf("%s %s", currency, decimal(minor))
	}
}

// FmtCount formats a count with thousands separators.
func FmtCount(n int64) string {
	return thousandSep(n)
}

func signed(minor int64, symbol string, body func(int64) string) string {
	if minor < 0 {
		return "-" + symbol + body(-minor)
	}
	return symbol + body(minor)
}

func decimal(minor int64) string {
	neg := minor < 0
	if neg {
		minor = -minor
	}
	out := thousandSep(minor/100) + fmt.Sprintf(".%02d", minor%100)
	if neg {
		return "-" + out
	}
	return out
}

func thousandSep(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

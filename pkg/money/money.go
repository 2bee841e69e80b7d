// Package money handles monetary amounts as int64 minor units (cents).
// Amounts cross the API boundary as decimal strings ("199.90") and are
// converted here; no floating point is involved at any step.
package money

import (
	"errors"
	"fmt"
	"strings"
)

// RoundingPolicy documents how fractional cents produced by discount
// arithmetic are resolved: round half away from zero to the nearest cent.
const RoundingPolicy = "ROUND_HALF_UP"

// BpsDenominator is the basis-point scale used for percentages (100% == 10000).
const BpsDenominator int64 = 10_000

// MaxCents caps parsed amounts at 999,999,999,999.99 so cents*BpsDenominator
// stays inside int64 for any amount this package admits.
const MaxCents int64 = 99_999_999_999_999

var (
	ErrInvalidAmount = errors.New("invalid_amount")
	ErrInvalidBps    = errors.New("invalid_bps")
)

// ParseCents converts a decimal string with up to two fraction digits
// ("49", "49.9", "49.90") into cents. Negative amounts and amounts above
// MaxCents are rejected.
func ParseCents(value string) (int64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "+") {
		return 0, ErrInvalidAmount
	}

	whole := trimmed
	frac := ""
	if idx := strings.IndexByte(trimmed, '.'); idx >= 0 {
		whole = trimmed[:idx]
		frac = trimmed[idx+1:]
	}
	if whole == "" || len(frac) > 2 {
		return 0, ErrInvalidAmount
	}
	for len(frac) < 2 {
		frac += "0"
	}

	var cents int64
	for _, r := range whole + frac {
		if r < '0' || r > '9' {
			return 0, ErrInvalidAmount
		}
		cents = cents*10 + int64(r-'0')
		if cents > MaxCents {
			return 0, ErrInvalidAmount
		}
	}
	return cents, nil
}

// FormatCents renders cents as a decimal string with two fraction digits.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// ParseBps converts a percentage decimal string ("15", "12.5", "12.50")
// into basis points. The result is bounded to [0, 10000].
func ParseBps(value string) (int64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, ErrInvalidBps
	}
	// Percent with two fraction digits is exactly basis points.
	cents, err := ParseCents(trimmed)
	if err != nil {
		return 0, ErrInvalidBps
	}
	if cents > BpsDenominator {
		return 0, ErrInvalidBps
	}
	return cents, nil
}

// FormatBps renders basis points as a percentage decimal string.
func FormatBps(bps int64) string {
	if bps%100 == 0 {
		return fmt.Sprintf("%d", bps/100)
	}
	return strings.TrimRight(fmt.Sprintf("%d.%02d", bps/100, bps%100), "0")
}

// ApplyDiscountBps returns cents reduced by the given basis points, rounding
// half up per RoundingPolicy. Out-of-range bps values leave the amount
// untouched; validation belongs to the admin forms upstream.
func ApplyDiscountBps(cents, bps int64) int64 {
	if bps <= 0 || bps > BpsDenominator || cents <= 0 {
		return cents
	}
	remaining := BpsDenominator - bps
	return (cents*remaining + BpsDenominator/2) / BpsDenominator
}

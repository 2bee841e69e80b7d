package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCents(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"100.00", 10000, false},
		{"49.9", 4990, false},
		{"49", 4900, false},
		{" 12.50 ", 1250, false},
		{"0.05", 5, false},
		{"", 0, true},
		{"-1.00", 0, true},
		{"1.999", 0, true},
		{"abc", 0, true},
		{".50", 0, true},
		{"999999999999.99", MaxCents, false},
		{"1000000000000.00", 0, true},
		{"999999999999999999999", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseCents(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "100.00", FormatCents(10000))
	assert.Equal(t, "0.05", FormatCents(5))
	assert.Equal(t, "-3.20", FormatCents(-320))
}

func TestParseBps(t *testing.T) {
	got, err := ParseBps("15")
	assert.NoError(t, err)
	assert.Equal(t, int64(1500), got)

	got, err = ParseBps("12.5")
	assert.NoError(t, err)
	assert.Equal(t, int64(1250), got)

	_, err = ParseBps("101")
	assert.Error(t, err)

	_, err = ParseBps("")
	assert.Error(t, err)
}

func TestApplyDiscountBps(t *testing.T) {
	// 15% off 200.00 -> 170.00
	assert.Equal(t, int64(17000), ApplyDiscountBps(20000, 1500))
	// 20% off 50.00 -> 40.00
	assert.Equal(t, int64(4000), ApplyDiscountBps(5000, 2000))
	// Half-cent rounds up: 12.5% off 0.99 = 0.86625 -> 0.87
	assert.Equal(t, int64(87), ApplyDiscountBps(99, 1250))
	// Zero and out-of-range bps leave the amount untouched.
	assert.Equal(t, int64(5000), ApplyDiscountBps(5000, 0))
	assert.Equal(t, int64(5000), ApplyDiscountBps(5000, 10_001))
	// 100% discount empties the amount.
	assert.Equal(t, int64(0), ApplyDiscountBps(5000, 10_000))
	// The largest parseable amount still discounts without wrapping.
	assert.Equal(t, int64(89_999_999_999_999), ApplyDiscountBps(MaxCents, 1000))
}

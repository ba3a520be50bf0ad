//go:build unit

package booking_test

import (
	"testing"
	"time"

	"raga-booking/internal/domain/booking"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTotalPrice(t *testing.T) {
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	d := func(s string) decimal.Decimal {
		return decimal.RequireFromString(s)
	}

	cases := []struct {
		name       string
		rate       decimal.Decimal
		start, end string
		addOns     []decimal.Decimal
		want       decimal.Decimal
	}{
		{
			name:  "two hours at flat rate",
			rate:  d("450000"),
			start: "10:00", end: "12:00",
			want: d("900000"),
		},
		{
			name:  "two hours plus one add-on",
			rate:  d("450000"),
			start: "10:00", end: "12:00",
			addOns: []decimal.Decimal{d("150000")},
			want:   d("1050000"),
		},
		{
			name:  "ninety minutes",
			rate:  d("450000"),
			start: "10:00", end: "11:30",
			want: d("675000"),
		},
		{
			name:  "fractional rate rounds to cents",
			rate:  d("99.99"),
			start: "09:00", end: "10:30",
			want: d("149.99"), // 99.99 * 1.5 = 149.985, rounds half away from zero
		},
		{
			name:  "twenty minutes rounds duration",
			rate:  d("300"),
			start: "10:00", end: "10:20",
			want: d("99.00"), // 20/60 = 0.333... -> 0.33 hours
		},
		{
			name:  "multiple add-ons",
			rate:  d("450000"),
			start: "10:00", end: "11:00",
			addOns: []decimal.Decimal{d("150000"), d("75000.50")},
			want:   d("675000.50"),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			slot := mustSlot(t, date, c.start, c.end)
			got := booking.TotalPrice(c.rate, slot, c.addOns)
			assert.True(t, c.want.Equal(got), "want %s, got %s", c.want, got)
		})
	}
}

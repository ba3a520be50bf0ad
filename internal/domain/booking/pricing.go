package booking

import (
	"time"

	"github.com/shopspring/decimal"
)

// TotalPrice computes the charge for a slot at the venue's hourly rate plus
// the selected add-ons. Duration in hours and the base price are each rounded
// to 2 decimal places, half away from zero. All arithmetic is exact decimal;
// monetary totals must be correct to the cent.
func TotalPrice(pricePerHour decimal.Decimal, slot Slot, addOnPrices []decimal.Decimal) decimal.Decimal {
	seconds := decimal.NewFromInt(int64(slot.Duration() / time.Second))
	hours := seconds.Div(decimal.NewFromInt(3600)).Round(2)
	total := pricePerHour.Mul(hours).Round(2)
	for _, p := range addOnPrices {
		total = total.Add(p)
	}
	return total
}

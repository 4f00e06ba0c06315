package flight

import "math"

const (
	feeRate    = 0.10
	minimumFee = 40.0
	feeDigits  = 4
)

// NewPriceQuote derives fees and total from the fare. Upstream fees/total
// are never trusted.
func NewPriceQuote(fare float64) PriceQuote {
	fees := math.Max(roundTo(fare*feeRate, feeDigits), minimumFee)
	return PriceQuote{
		Fare:  fare,
		Fees:  fees,
		Total: fare + fees,
	}
}

func roundTo(v float64, digits int) float64 {
	p := math.Pow10(digits)
	return math.Round(v*p) / p
}

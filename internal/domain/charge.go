package domain

import "math"

// Charge is the final amount breakdown for a booking
type Charge struct {
	Price  float64
	GST    float64
	Amount float64
}

// ComputeCharge calculates the charge for a pre-tax price.
// GST is a flat 18% policy rate, not configurable per booking.
// Values are rounded to 2 decimal places.
func ComputeCharge(price float64) Charge {
	gst := round2(price * GSTRate)
	return Charge{
		Price:  round2(price),
		GST:    gst,
		Amount: round2(price + gst),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

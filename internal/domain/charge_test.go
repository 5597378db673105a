package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeCharge(t *testing.T) {
	tests := []struct {
		name       string
		price      float64
		wantGST    float64
		wantAmount float64
	}{
		{name: "round price", price: 1500, wantGST: 270, wantAmount: 1770},
		{name: "fractional price", price: 999.99, wantGST: 180, wantAmount: 1179.99},
		{name: "zero price", price: 0, wantGST: 0, wantAmount: 0},
		{name: "small price rounds", price: 0.1, wantGST: 0.02, wantAmount: 0.12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			charge := ComputeCharge(tt.price)
			assert.InDelta(t, tt.wantGST, charge.GST, 0.001)
			assert.InDelta(t, tt.wantAmount, charge.Amount, 0.001)
		})
	}
}

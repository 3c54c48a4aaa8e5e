package services

import "github.com/shopspring/decimal"

// round2 rounds v to two decimal places for reporting.
func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

package utils

import "math"

// Baseline prediction coefficients, tuned heuristically. The predictor is a
// deliberate placeholder: no learned parameters, no model state.
const (
	salesGrowthFactor    = 1.05
	marketingSalesFactor = 0.5
	orderGrowthFactor    = 1.03
	marketingOrderFactor = 0.02
)

// BaselinePredict estimates next-period sales and orders with a naive linear
// combination of the current period's numbers. Outputs are clamped to zero;
// inputs are accepted as-is.
func BaselinePredict(sales float64, orders int, marketingSpend float64) (float64, int) {
	predictedSales := sales*salesGrowthFactor + marketingSpend*marketingSalesFactor
	predictedOrders := int(math.Floor(float64(orders)*orderGrowthFactor + marketingSpend*marketingOrderFactor))

	if predictedSales < 0 {
		predictedSales = 0
	}
	if predictedOrders < 0 {
		predictedOrders = 0
	}
	return predictedSales, predictedOrders
}

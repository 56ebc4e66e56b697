package services

import (
	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shopspring/decimal"
)

// ComputeTotal returns the total cost of an order: the sum of
// product price × quantity over positions, rounded half-up to two decimal
// places at the final sum, not per line.
//
// It is a pure function of the current product prices and quantities and is
// recomputed from scratch on every position-affecting write; nothing is
// accumulated incrementally, so partial updates cannot drift the total.
func ComputeTotal(positions []models.OrderPosition) decimal.Decimal {
	total := decimal.Zero
	for _, pos := range positions {
		total = total.Add(pos.Product.Price.Mul(decimal.NewFromInt(int64(pos.Quantity))))
	}
	return total.Round(2)
}

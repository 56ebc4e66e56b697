package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/storefront/app/models"
)

func position(price string, qty int) models.OrderPosition {
	return models.OrderPosition{
		Product:  models.Product{Price: decimal.RequireFromString(price)},
		Quantity: qty,
	}
}

func TestComputeTotal(t *testing.T) {
	cases := []struct {
		name      string
		positions []models.OrderPosition
		want      string
	}{
		{"empty", nil, "0"},
		{"single", []models.OrderPosition{position("19.99", 3)}, "59.97"},
		{"mixed", []models.OrderPosition{position("19.99", 2), position("9.99", 2)}, "59.96"},
		{"exact cents survive", []models.OrderPosition{position("0.10", 3)}, "0.30"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeTotal(tc.positions)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "want %s got %s", tc.want, got)
		})
	}
}

func TestComputeTotalRoundsFinalSum(t *testing.T) {
	// Sums land on two decimal places, whatever the intermediate products.
	got := ComputeTotal([]models.OrderPosition{position("1.555", 1), position("1.555", 1)})
	assert.True(t, got.Equal(decimal.RequireFromString("3.11")), "got %s", got)
}

package delivery

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNegativeCost is returned when a calculator is configured with a negative factor.
var ErrNegativeCost = errors.New("delivery cost factors must not be negative")

// Counts exposes the cart aggregates a delivery method prices on.
type Counts interface {
	DeliveryCount() int
	ProductCount() int
}

// Method models a delivery pricing strategy.
type Method interface {
	CalculateFor(c Counts) decimal.Decimal
}

// CostCalculator charges per distinct category, per distinct product and a fixed fee.
type CostCalculator struct {
	CostPerDelivery decimal.Decimal
	CostPerProduct  decimal.Decimal
	FixedCost       decimal.Decimal
}

// NewCostCalculator validates the factors and returns a calculator.
func NewCostCalculator(costPerDelivery, costPerProduct, fixedCost decimal.Decimal) (*CostCalculator, error) {
	if costPerDelivery.IsNegative() || costPerProduct.IsNegative() || fixedCost.IsNegative() {
		return nil, ErrNegativeCost
	}
	return &CostCalculator{
		CostPerDelivery: costPerDelivery,
		CostPerProduct:  costPerProduct,
		FixedCost:       fixedCost,
	}, nil
}

// CalculateFor prices delivery for the given counts. The fixed cost is
// charged even when both counts are zero.
func (c *CostCalculator) CalculateFor(counts Counts) decimal.Decimal {
	if c == nil || counts == nil {
		return decimal.Zero
	}
	deliveries := decimal.NewFromInt(int64(counts.DeliveryCount()))
	products := decimal.NewFromInt(int64(counts.ProductCount()))
	return c.CostPerDelivery.Mul(deliveries).
		Add(c.CostPerProduct.Mul(products)).
		Add(c.FixedCost)
}

package delivery_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/cartprice/internal/cart"
	"github.com/noah-isme/cartprice/internal/catalog"
	"github.com/noah-isme/cartprice/internal/delivery"
)

type fixedCounts struct {
	deliveries int
	products   int
}

func (f fixedCounts) DeliveryCount() int { return f.deliveries }
func (f fixedCounts) ProductCount() int  { return f.products }

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestCalculateFor(t *testing.T) {
	t.Parallel()

	calc, err := delivery.NewCostCalculator(dec("1.5"), dec("0.5"), dec("5.99"))
	require.NoError(t, err)

	require.True(t, calc.CalculateFor(nil).IsZero())

	c := cart.New(nil, calc)
	require.True(t, dec("5.99").Equal(calc.CalculateFor(c)))

	c.AddItem(&catalog.Product{Title: "The Lord Of The Rings", Price: dec("20"), Category: "Books"}, 1)
	c.AddItem(&catalog.Product{Title: "Da Vinci Code", Price: dec("15"), Category: "Books"}, 2)
	require.True(t, dec("8.49").Equal(calc.CalculateFor(c)))

	c.AddItem(&catalog.Product{Title: "Fight Club", Price: dec("7.99"), Category: "Movies"}, 3)
	require.True(t, dec("10.49").Equal(calc.CalculateFor(c)))
}

func TestCalculateForCounts(t *testing.T) {
	t.Parallel()

	calc := &delivery.CostCalculator{CostPerDelivery: dec("2.0"), CostPerProduct: dec("0.5"), FixedCost: dec("2.99")}
	got := calc.CalculateFor(fixedCounts{deliveries: 1, products: 2})
	require.True(t, dec("5.99").Equal(got), "got %s", got)
}

func TestCalculateForZeroCountsChargesFixedCost(t *testing.T) {
	t.Parallel()

	calc := &delivery.CostCalculator{CostPerDelivery: dec("2.0"), CostPerProduct: dec("0.5"), FixedCost: dec("2.99")}
	require.True(t, dec("2.99").Equal(calc.CalculateFor(fixedCounts{})))

	c := cart.New(nil, calc)
	require.True(t, c.IsEmpty())
	require.True(t, dec("2.99").Equal(c.DeliveryCost()))
}

func TestNilCalculatorIsFree(t *testing.T) {
	t.Parallel()

	var calc *delivery.CostCalculator
	require.True(t, calc.CalculateFor(fixedCounts{deliveries: 1, products: 1}).IsZero())
}

func TestNewCostCalculatorRejectsNegative(t *testing.T) {
	t.Parallel()

	_, err := delivery.NewCostCalculator(dec("-1"), dec("0.5"), dec("2.99"))
	require.ErrorIs(t, err, delivery.ErrNegativeCost)
	_, err = delivery.NewCostCalculator(dec("1"), dec("0.5"), dec("-0.01"))
	require.ErrorIs(t, err, delivery.ErrNegativeCost)
}

package scenario_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/cartprice/internal/catalog"
	"github.com/noah-isme/cartprice/internal/delivery"
	"github.com/noah-isme/cartprice/internal/discount"
	"github.com/noah-isme/cartprice/internal/scenario"
)

const booksYAML = `
categories:
  - name: Main
  - name: Books
    parent: Main
products:
  - title: Book A
    price: "20.00"
    category: Books
  - title: Book B
    price: "15"
    category: Books
items:
  - product: Book A
    quantity: 3
  - product: Book B
    quantity: 2
campaigns:
  - category: Books
    discount: "20"
    min_item_count: 4
    type: rate
coupon:
  min_price_total: "72"
  discount: "5"
  type: AMOUNT
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestLoadAndBuild(t *testing.T) {
	t.Parallel()

	s, err := scenario.Load(writeScenario(t, booksYAML))
	require.NoError(t, err)
	require.Len(t, s.Categories, 2)
	require.NotNil(t, s.Coupon)

	calc := &delivery.CostCalculator{CostPerDelivery: dec("2.0"), CostPerProduct: dec("0.5"), FixedCost: dec("2.99")}
	c, err := s.Build(calc)
	require.NoError(t, err)

	require.Equal(t, 2, c.ProductCount())
	require.True(t, dec("90").Equal(c.TotalPrice()))
	require.True(t, dec("18").Equal(c.CampaignDiscount()))
	require.True(t, dec("5").Equal(c.CouponDiscount()))
	require.True(t, dec("5.99").Equal(c.DeliveryCost()))
	require.True(t, dec("72.99").Equal(c.FinalPrice()))

	coupon, ok := c.Coupon()
	require.True(t, ok)
	require.Equal(t, discount.Amount, coupon.Type)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := scenario.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadRejectsInvalidPrice(t *testing.T) {
	t.Parallel()

	body := `
categories:
  - name: Books
products:
  - title: Book A
    price: "twenty"
    category: Books
`
	_, err := scenario.Load(writeScenario(t, body))
	require.ErrorIs(t, err, scenario.ErrInvalidScenario)
}

func TestBuildUnknownReferences(t *testing.T) {
	t.Parallel()

	s := &scenario.Scenario{
		Categories: []scenario.CategorySpec{{Name: "Books"}},
		Products:   []scenario.ProductSpec{{Title: "Book A", Price: "10", Category: "Books"}},
		Items:      []scenario.ItemSpec{{Product: "Book Z", Quantity: 1}},
	}
	_, err := s.Build(nil)
	require.ErrorIs(t, err, scenario.ErrUnknownProduct)

	s.Products[0].Category = "Comics"
	_, err = s.Build(nil)
	require.ErrorIs(t, err, scenario.ErrUnknownCategory)

	s.Categories = []scenario.CategorySpec{{Name: "Books", Parent: "Media"}}
	_, err = s.Build(nil)
	require.ErrorIs(t, err, catalog.ErrUnknownParent)
}

func TestBuildRejectsUnknownDiscountType(t *testing.T) {
	t.Parallel()

	s := &scenario.Scenario{
		Categories: []scenario.CategorySpec{{Name: "Books"}},
		Campaigns:  []scenario.CampaignSpec{{Category: "Books", Discount: "5", Type: "bogo"}},
	}
	_, err := s.Build(nil)
	require.ErrorIs(t, err, discount.ErrUnknownType)
}

func TestSample(t *testing.T) {
	t.Parallel()

	s := scenario.Sample()
	require.NoError(t, s.Validate())

	c, err := s.Build(nil)
	require.NoError(t, err)
	require.Equal(t, 8, c.ProductCount())
	require.Equal(t, 3, c.DeliveryCount())
	require.True(t, dec("402.91").Equal(c.TotalPrice()))
	require.True(t, dec("38").Equal(c.CampaignDiscount()))
	require.True(t, dec("36.491").Equal(c.CouponDiscount()))
}

package receipt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/noah-isme/cartprice/internal/cart"
	"github.com/noah-isme/cartprice/internal/pricing"
)

const (
	lineFormat  = "%-25s%-10sx%-5d%s\n"
	priceFormat = "%-20s%s\n"
	emptyCart   = "Your cart is empty."
)

// Renderer prints cart contents and quoted totals as plain text.
type Renderer struct {
	Currency currency.Unit
	Tag      language.Tag
}

// New returns a renderer for the given ISO currency code and language tag.
func New(code string, tag language.Tag) (Renderer, error) {
	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return Renderer{}, fmt.Errorf("parse currency %q: %w", code, err)
	}
	return Renderer{Currency: unit, Tag: tag}, nil
}

func (r Renderer) unit() currency.Unit {
	if r.Currency == (currency.Unit{}) {
		return currency.USD
	}
	return r.Currency
}

// FormatMoney rounds value to the currency's minor unit and prefixes its
// symbol. A negative value keeps its sign in front: -$5.00.
func (r Renderer) FormatMoney(value decimal.Decimal) string {
	unit := r.unit()
	scale, _ := currency.Standard.Rounding(unit)
	symbol := message.NewPrinter(r.Tag).Sprint(currency.Symbol(unit))
	amount := value.Round(int32(scale))
	if amount.IsNegative() {
		return "-" + symbol + amount.Neg().StringFixed(int32(scale))
	}
	return symbol + amount.StringFixed(int32(scale))
}

// Render writes the grouped cart lines followed by the summary totals.
func (r Renderer) Render(w io.Writer, c *cart.Cart, s pricing.Summary) error {
	bw := bufio.NewWriter(w)
	if c.IsEmpty() {
		fmt.Fprintln(bw, emptyCart)
		return bw.Flush()
	}

	for _, group := range c.Groups() {
		fmt.Fprintf(bw, "%s:\n", group.Category)
		fmt.Fprintln(bw, strings.Repeat("-", 30))
		for _, line := range group.Lines {
			fmt.Fprintf(bw, lineFormat,
				line.Product.Title,
				r.FormatMoney(line.Product.Price),
				line.Quantity,
				r.FormatMoney(line.Subtotal),
			)
		}
		fmt.Fprintln(bw)
	}

	fmt.Fprintf(bw, priceFormat, "Total Price:", r.FormatMoney(s.Subtotal))
	if s.CampaignDiscount.IsPositive() {
		fmt.Fprintf(bw, priceFormat, "Campaign Discount:", r.FormatMoney(s.CampaignDiscount))
	}
	if s.CouponDiscount.IsPositive() {
		fmt.Fprintf(bw, priceFormat, "Coupon Discount:", r.FormatMoney(s.CouponDiscount))
	}
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, priceFormat, "Shipping Price:", r.FormatMoney(s.Shipping))
	fmt.Fprintf(bw, priceFormat, "Final Price:", r.FormatMoney(s.Total))
	return bw.Flush()
}

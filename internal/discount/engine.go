package discount

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrUnknownType is returned when a discount type string cannot be parsed.
var ErrUnknownType = errors.New("unknown discount type")

// Epsilon is the tolerance used when comparing a cart total against a coupon threshold.
var Epsilon = decimal.RequireFromString("0.001")

var hundred = decimal.NewFromInt(100)

// Type selects how a discount magnitude is interpreted.
type Type string

const (
	// Rate treats the magnitude as a percentage on a 0-100 scale.
	Rate Type = "rate"
	// Amount treats the magnitude as an absolute currency value.
	Amount Type = "amount"
)

// ParseType converts a case-insensitive string into a Type.
func ParseType(value string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(Rate), "percent":
		return Rate, nil
	case string(Amount), "fixed":
		return Amount, nil
	default:
		return "", fmt.Errorf("%q: %w", value, ErrUnknownType)
	}
}

// Campaign discounts a single category once enough items of it are in the cart.
type Campaign struct {
	Category     string
	Discount     decimal.Decimal
	MinItemCount int
	Type         Type
}

// Eligible reports whether itemCount clears the campaign floor. The floor is exclusive.
func (c Campaign) Eligible(itemCount int) bool {
	return itemCount > c.MinItemCount
}

// Evaluate returns the discount for a category holding itemCount items worth categoryTotal.
func (c Campaign) Evaluate(itemCount int, categoryTotal decimal.Decimal) decimal.Decimal {
	if !c.Eligible(itemCount) {
		return decimal.Zero
	}
	return Compute(c.Type, c.Discount, categoryTotal)
}

// Coupon discounts the whole cart once its post-campaign total reaches MinPriceTotal.
type Coupon struct {
	MinPriceTotal decimal.Decimal
	Discount      decimal.Decimal
	Type          Type
}

// Eligible reports whether total reaches the coupon minimum, within Epsilon.
func (c Coupon) Eligible(total decimal.Decimal) bool {
	if total.GreaterThanOrEqual(c.MinPriceTotal) {
		return true
	}
	return total.Sub(c.MinPriceTotal).Abs().LessThan(Epsilon)
}

// Evaluate returns the coupon discount for a post-campaign total.
func (c Coupon) Evaluate(total decimal.Decimal) decimal.Decimal {
	if !c.Eligible(total) {
		return decimal.Zero
	}
	return Compute(c.Type, c.Discount, total)
}

// Compute applies a magnitude of the given type to base.
// Rate yields base*magnitude/100, Amount yields magnitude regardless of base.
func Compute(t Type, magnitude, base decimal.Decimal) decimal.Decimal {
	switch t {
	case Rate:
		return base.Mul(magnitude).Div(hundred)
	case Amount:
		return magnitude
	default:
		return decimal.Zero
	}
}

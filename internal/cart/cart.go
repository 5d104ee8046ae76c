package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/cartprice/internal/catalog"
	"github.com/noah-isme/cartprice/internal/delivery"
	"github.com/noah-isme/cartprice/internal/discount"
)

// Line is a product held in the cart with its accumulated quantity.
type Line struct {
	Product  catalog.Product
	Quantity int
	// Subtotal is the sum of price*count over every addition of this product.
	Subtotal decimal.Decimal
}

// Group collects the lines whose product sits directly in Category.
type Group struct {
	Category string
	Lines    []Line
}

// CategoryAggregate holds the item count and price sum of a category,
// including every purchase made in its descendants.
type CategoryAggregate struct {
	ItemCount  int
	TotalPrice decimal.Decimal
}

// CampaignResult reports how a single applied campaign evaluated.
type CampaignResult struct {
	Campaign discount.Campaign
	Eligible bool
	Amount   decimal.Decimal
}

// Cart holds product quantities and the discounts applied to them.
// A Cart is not safe for concurrent use.
type Cart struct {
	ID uuid.UUID

	tree      *catalog.Tree
	method    delivery.Method
	lines     map[string]*Line
	order     []string
	campaigns []discount.Campaign
	coupon    *discount.Coupon
	total     decimal.Decimal
}

// New creates an empty cart. A nil tree treats every category as a root,
// a nil method makes delivery free.
func New(tree *catalog.Tree, method delivery.Method) *Cart {
	return &Cart{
		ID:     uuid.New(),
		tree:   tree,
		method: method,
		lines:  make(map[string]*Line),
		total:  decimal.Zero,
	}
}

// AddItem puts count units of p into the cart. A nil product or a
// non-positive count is ignored.
func (c *Cart) AddItem(p *catalog.Product, count int) {
	if p == nil || count <= 0 {
		return
	}
	if c.lines == nil {
		c.lines = make(map[string]*Line)
	}
	amount := p.Price.Mul(decimal.NewFromInt(int64(count)))
	if line, ok := c.lines[p.Title]; ok {
		line.Quantity += count
		line.Subtotal = line.Subtotal.Add(amount)
	} else {
		c.lines[p.Title] = &Line{Product: *p, Quantity: count, Subtotal: amount}
		c.order = append(c.order, p.Title)
	}
	c.total = c.total.Add(amount)
}

// ApplyDiscounts appends campaigns in order. Nil campaigns are skipped.
func (c *Cart) ApplyDiscounts(campaigns ...*discount.Campaign) {
	for _, campaign := range campaigns {
		if campaign != nil {
			c.campaigns = append(c.campaigns, *campaign)
		}
	}
}

// ApplyCoupon replaces the applied coupon. Passing nil removes it.
func (c *Cart) ApplyCoupon(coupon *discount.Coupon) {
	if coupon == nil {
		c.coupon = nil
		return
	}
	applied := *coupon
	c.coupon = &applied
}

// Coupon returns the applied coupon, if any.
func (c *Cart) Coupon() (discount.Coupon, bool) {
	if c.coupon == nil {
		return discount.Coupon{}, false
	}
	return *c.coupon, true
}

// Campaigns returns the applied campaigns in application order.
func (c *Cart) Campaigns() []discount.Campaign {
	out := make([]discount.Campaign, len(c.campaigns))
	copy(out, c.campaigns)
	return out
}

// TotalPrice is the undiscounted sum of every addition.
func (c *Cart) TotalPrice() decimal.Decimal {
	return c.total
}

// ProductCount is the number of distinct products.
func (c *Cart) ProductCount() int {
	if c == nil {
		return 0
	}
	return len(c.lines)
}

// DeliveryCount is the number of distinct immediate categories. Ancestors are not counted.
func (c *Cart) DeliveryCount() int {
	if c == nil {
		return 0
	}
	seen := make(map[string]struct{}, len(c.lines))
	for _, line := range c.lines {
		seen[line.Product.Category] = struct{}{}
	}
	return len(seen)
}

// IsEmpty reports whether no product has been added.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.lines) == 0
}

// Quantity returns how many units of the titled product the cart holds.
func (c *Cart) Quantity(title string) int {
	if line, ok := c.lines[title]; ok {
		return line.Quantity
	}
	return 0
}

// Lines returns the cart lines in the order products were first added.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.order))
	for _, title := range c.order {
		out = append(out, *c.lines[title])
	}
	return out
}

// Groups returns the lines grouped by immediate category, in first-seen order.
func (c *Cart) Groups() []Group {
	index := make(map[string]int)
	var groups []Group
	for _, line := range c.Lines() {
		name := line.Product.Category
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, Group{Category: name})
		}
		groups[i].Lines = append(groups[i].Lines, line)
	}
	return groups
}

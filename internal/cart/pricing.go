package cart

import (
	"github.com/shopspring/decimal"
)

// Aggregates derives the per-category totals from the current lines.
// Each line counts towards its own category and every ancestor.
func (c *Cart) Aggregates() map[string]CategoryAggregate {
	out := make(map[string]CategoryAggregate)
	for _, title := range c.order {
		line := c.lines[title]
		for _, name := range c.tree.Lineage(line.Product.Category) {
			agg, ok := out[name]
			if !ok {
				agg.TotalPrice = decimal.Zero
			}
			agg.ItemCount += line.Quantity
			agg.TotalPrice = agg.TotalPrice.Add(line.Subtotal)
			out[name] = agg
		}
	}
	return out
}

// Aggregate returns the totals for a single category.
func (c *Cart) Aggregate(category string) (CategoryAggregate, bool) {
	agg, ok := c.Aggregates()[category]
	return agg, ok
}

// CampaignBreakdown evaluates every applied campaign in order.
func (c *Cart) CampaignBreakdown() []CampaignResult {
	if len(c.campaigns) == 0 {
		return nil
	}
	aggregates := c.Aggregates()
	results := make([]CampaignResult, 0, len(c.campaigns))
	for _, campaign := range c.campaigns {
		res := CampaignResult{Campaign: campaign, Amount: decimal.Zero}
		if agg, ok := aggregates[campaign.Category]; ok && campaign.Eligible(agg.ItemCount) {
			res.Eligible = true
			res.Amount = campaign.Evaluate(agg.ItemCount, agg.TotalPrice)
		}
		results = append(results, res)
	}
	return results
}

// CampaignDiscount sums the discount of every applied campaign.
// Campaigns on a category and on its ancestors all count.
func (c *Cart) CampaignDiscount() decimal.Decimal {
	total := decimal.Zero
	for _, res := range c.CampaignBreakdown() {
		total = total.Add(res.Amount)
	}
	return total
}

// CouponDiscount evaluates the applied coupon against the post-campaign total.
func (c *Cart) CouponDiscount() decimal.Decimal {
	if c.coupon == nil {
		return decimal.Zero
	}
	return c.coupon.Evaluate(c.total.Sub(c.CampaignDiscount()))
}

// TotalAfterDiscounts is the total price minus campaign and coupon discounts.
func (c *Cart) TotalAfterDiscounts() decimal.Decimal {
	return c.total.Sub(c.CampaignDiscount()).Sub(c.CouponDiscount())
}

// DeliveryCost prices delivery with the bound method, or zero without one.
func (c *Cart) DeliveryCost() decimal.Decimal {
	if c.method == nil {
		return decimal.Zero
	}
	return c.method.CalculateFor(c)
}

// FinalPrice is the amount payable: discounted total plus delivery.
func (c *Cart) FinalPrice() decimal.Decimal {
	return c.TotalAfterDiscounts().Add(c.DeliveryCost())
}

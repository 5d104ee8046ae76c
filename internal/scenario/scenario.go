package scenario

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/cartprice/internal/cart"
	"github.com/noah-isme/cartprice/internal/catalog"
	"github.com/noah-isme/cartprice/internal/delivery"
	"github.com/noah-isme/cartprice/internal/discount"
)

var (
	// ErrUnknownProduct is returned when an item references a product that is not defined.
	ErrUnknownProduct = errors.New("unknown product")
	// ErrUnknownCategory is returned when a product references a category that is not defined.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrInvalidScenario wraps validation failures of a scenario document.
	ErrInvalidScenario = errors.New("invalid scenario")
)

// CategorySpec declares a category and its optional parent.
type CategorySpec struct {
	Name   string `koanf:"name" validate:"required"`
	Parent string `koanf:"parent"`
}

// ProductSpec declares a product. Price is a decimal string.
type ProductSpec struct {
	Title    string `koanf:"title" validate:"required"`
	Price    string `koanf:"price" validate:"required,numeric"`
	Category string `koanf:"category" validate:"required"`
}

// ItemSpec puts Quantity units of the titled product into the cart.
type ItemSpec struct {
	Product  string `koanf:"product" validate:"required"`
	Quantity int    `koanf:"quantity"`
}

// CampaignSpec declares a category campaign.
type CampaignSpec struct {
	Category     string `koanf:"category" validate:"required"`
	Discount     string `koanf:"discount" validate:"required,numeric"`
	MinItemCount int    `koanf:"min_item_count" validate:"gte=0"`
	Type         string `koanf:"type" validate:"required"`
}

// CouponSpec declares the cart coupon.
type CouponSpec struct {
	MinPriceTotal string `koanf:"min_price_total" validate:"required,numeric"`
	Discount      string `koanf:"discount" validate:"required,numeric"`
	Type          string `koanf:"type" validate:"required"`
}

// Scenario is a complete description of a cart to price.
type Scenario struct {
	Categories []CategorySpec `koanf:"categories" validate:"dive"`
	Products   []ProductSpec  `koanf:"products" validate:"dive"`
	Items      []ItemSpec     `koanf:"items" validate:"dive"`
	Campaigns  []CampaignSpec `koanf:"campaigns" validate:"dive"`
	Coupon     *CouponSpec    `koanf:"coupon"`
}

var validate = validator.New()

// Load reads a YAML scenario file.
func Load(path string) (*Scenario, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load scenario %s: %w", path, err)
	}
	var s Scenario
	if err := k.Unmarshal("", &s); err != nil {
		return nil, fmt.Errorf("decode scenario %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks required fields and numeric formats.
func (s *Scenario) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	return nil
}

// Build registers the scenario's categories and products and returns a
// populated cart bound to method.
func (s *Scenario) Build(method delivery.Method) (*cart.Cart, error) {
	tree := catalog.NewTree()
	for _, spec := range s.Categories {
		if _, err := tree.Add(spec.Name, spec.Parent); err != nil {
			return nil, fmt.Errorf("category: %w", err)
		}
	}

	products := make(map[string]*catalog.Product, len(s.Products))
	for _, spec := range s.Products {
		price, err := decimal.NewFromString(spec.Price)
		if err != nil {
			return nil, fmt.Errorf("product %s price: %w", spec.Title, err)
		}
		if _, ok := tree.Get(spec.Category); !ok {
			return nil, fmt.Errorf("product %s: category %s: %w", spec.Title, spec.Category, ErrUnknownCategory)
		}
		p, err := catalog.NewProduct(spec.Title, price, spec.Category)
		if err != nil {
			return nil, fmt.Errorf("product: %w", err)
		}
		products[p.Title] = p
	}

	c := cart.New(tree, method)
	for _, item := range s.Items {
		p, ok := products[item.Product]
		if !ok {
			return nil, fmt.Errorf("item %s: %w", item.Product, ErrUnknownProduct)
		}
		c.AddItem(p, item.Quantity)
	}

	for _, spec := range s.Campaigns {
		campaign, err := spec.campaign()
		if err != nil {
			return nil, err
		}
		c.ApplyDiscounts(campaign)
	}

	if s.Coupon != nil {
		coupon, err := s.Coupon.coupon()
		if err != nil {
			return nil, err
		}
		c.ApplyCoupon(coupon)
	}
	return c, nil
}

func (spec CampaignSpec) campaign() (*discount.Campaign, error) {
	kind, err := discount.ParseType(spec.Type)
	if err != nil {
		return nil, fmt.Errorf("campaign %s: %w", spec.Category, err)
	}
	amount, err := decimal.NewFromString(spec.Discount)
	if err != nil {
		return nil, fmt.Errorf("campaign %s discount: %w", spec.Category, err)
	}
	return &discount.Campaign{
		Category:     spec.Category,
		Discount:     amount,
		MinItemCount: spec.MinItemCount,
		Type:         kind,
	}, nil
}

func (spec CouponSpec) coupon() (*discount.Coupon, error) {
	kind, err := discount.ParseType(spec.Type)
	if err != nil {
		return nil, fmt.Errorf("coupon: %w", err)
	}
	minTotal, err := decimal.NewFromString(spec.MinPriceTotal)
	if err != nil {
		return nil, fmt.Errorf("coupon min price total: %w", err)
	}
	amount, err := decimal.NewFromString(spec.Discount)
	if err != nil {
		return nil, fmt.Errorf("coupon discount: %w", err)
	}
	return &discount.Coupon{MinPriceTotal: minTotal, Discount: amount, Type: kind}, nil
}

package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyName is returned when a category is registered without a name.
	ErrEmptyName = errors.New("category name required")
	// ErrDuplicateCategory indicates the category name is already registered.
	ErrDuplicateCategory = errors.New("category already registered")
	// ErrUnknownParent indicates the parent category has not been registered yet.
	ErrUnknownParent = errors.New("parent category not registered")
	// ErrEmptyTitle is returned when a product is created without a title.
	ErrEmptyTitle = errors.New("product title required")
	// ErrNegativePrice is returned when a product price is below zero.
	ErrNegativePrice = errors.New("product price must not be negative")
)

// Category is a node in the category tree. An empty Parent marks a root.
type Category struct {
	Name   string
	Parent string
}

// Tree is a registry of categories indexed by name.
//
// A parent has to be registered before its children, which keeps every
// parent chain finite.
type Tree struct {
	nodes map[string]Category
}

// NewTree returns an empty category registry.
func NewTree() *Tree {
	return &Tree{nodes: make(map[string]Category)}
}

// Add registers a category under the given parent. Pass an empty parent for a root.
func (t *Tree) Add(name, parent string) (Category, error) {
	name = strings.TrimSpace(name)
	parent = strings.TrimSpace(parent)
	if name == "" {
		return Category{}, ErrEmptyName
	}
	if _, ok := t.nodes[name]; ok {
		return Category{}, fmt.Errorf("%s: %w", name, ErrDuplicateCategory)
	}
	if parent != "" {
		if _, ok := t.nodes[parent]; !ok {
			return Category{}, fmt.Errorf("%s: %w", parent, ErrUnknownParent)
		}
	}
	c := Category{Name: name, Parent: parent}
	if t.nodes == nil {
		t.nodes = make(map[string]Category)
	}
	t.nodes[name] = c
	return c, nil
}

// MustAdd behaves like Add but panics on error. Useful for fixtures.
func (t *Tree) MustAdd(name, parent string) Category {
	c, err := t.Add(name, parent)
	if err != nil {
		panic(err)
	}
	return c
}

// Get looks up a category by name.
func (t *Tree) Get(name string) (Category, bool) {
	if t == nil {
		return Category{}, false
	}
	c, ok := t.nodes[name]
	return c, ok
}

// Len reports how many categories are registered.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// Lineage returns name followed by each ancestor up to the root.
// Names unknown to the tree have no ancestors.
func (t *Tree) Lineage(name string) []string {
	out := []string{name}
	current, ok := t.Get(name)
	for ok && current.Parent != "" {
		out = append(out, current.Parent)
		current, ok = t.Get(current.Parent)
	}
	return out
}

// Product is an item that can be put into a cart. Title is its identity.
type Product struct {
	Title    string
	Price    decimal.Decimal
	Category string
}

// NewProduct validates and constructs a product.
func NewProduct(title string, price decimal.Decimal, category string) (*Product, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("%s: %w", title, ErrNegativePrice)
	}
	return &Product{Title: title, Price: price, Category: strings.TrimSpace(category)}, nil
}

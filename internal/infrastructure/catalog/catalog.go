package catalog

import (
	"fmt"

	"github.com/cafevirtuel/backend/internal/domain"
	"github.com/go-playground/validator/v10"
)

// StaticCatalog serves immutable option tables fixed at construction
type StaticCatalog struct {
	products []domain.Product
	index    map[string]int
}

// New validates the given tables and builds a catalog over them
func New(products []domain.Product) (*StaticCatalog, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	c := &StaticCatalog{
		products: make([]domain.Product, 0, len(products)),
		index:    make(map[string]int, len(products)),
	}

	for _, p := range products {
		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("product %q: %w", p.Family, err)
		}
		if err := checkProduct(&p); err != nil {
			return nil, fmt.Errorf("product %q: %w", p.Family, err)
		}
		if _, dup := c.index[p.Family]; dup {
			return nil, fmt.Errorf("duplicate product family %q", p.Family)
		}
		c.index[p.Family] = len(c.products)
		c.products = append(c.products, p)
	}

	return c, nil
}

// NewDefault builds the catalog of the storefront's product families
func NewDefault() (*StaticCatalog, error) {
	return New(DefaultProducts())
}

// checkProduct enforces the table invariants struct tags cannot express
func checkProduct(p *domain.Product) error {
	groups := make(map[string]bool, len(p.Groups))
	for _, g := range p.Groups {
		if groups[g.Name] {
			return fmt.Errorf("duplicate group %q", g.Name)
		}
		groups[g.Name] = true

		ids := make(map[string]bool, len(g.Options))
		for _, opt := range g.Options {
			if ids[opt.ID] {
				return fmt.Errorf("group %q: duplicate option %q", g.Name, opt.ID)
			}
			ids[opt.ID] = true
			if opt.UnitPrice.IsNegative() {
				return fmt.Errorf("group %q: option %q has negative price", g.Name, opt.ID)
			}
		}

		if g.DefaultID != "" && !ids[g.DefaultID] {
			return fmt.Errorf("group %q: default %q is not an option", g.Name, g.DefaultID)
		}
	}
	return nil
}

// Products returns every product family in display order
func (c *StaticCatalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Product returns one product family
func (c *StaticCatalog) Product(family string) (*domain.Product, error) {
	i, ok := c.index[family]
	if !ok {
		return nil, fmt.Errorf("%w: product %q", domain.ErrNotFound, family)
	}
	p := c.products[i]
	return &p, nil
}

// OptionsInGroup returns a group's options in display order
func (c *StaticCatalog) OptionsInGroup(family, group string) ([]domain.Option, error) {
	g, err := c.group(family, group)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Option, len(g.Options))
	copy(out, g.Options)
	return out, nil
}

// OptionByID looks up one option of a group
func (c *StaticCatalog) OptionByID(family, group, id string) (domain.Option, error) {
	g, err := c.group(family, group)
	if err != nil {
		return domain.Option{}, err
	}
	opt, ok := g.Option(id)
	if !ok {
		return domain.Option{}, fmt.Errorf("%w: option %q in %s.%s", domain.ErrNotFound, id, family, group)
	}
	return opt, nil
}

func (c *StaticCatalog) group(family, group string) (*domain.OptionGroup, error) {
	i, ok := c.index[family]
	if !ok {
		return nil, fmt.Errorf("%w: product %q", domain.ErrNotFound, family)
	}
	g, ok := c.products[i].Group(group)
	if !ok {
		return nil, fmt.Errorf("%w: group %q in %s", domain.ErrNotFound, group, family)
	}
	return g, nil
}

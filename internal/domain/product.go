package domain

import "github.com/shopspring/decimal"

// SelectionMode tells whether a group takes exactly one option or any subset
type SelectionMode string

const (
	SelectionSingle   SelectionMode = "single"
	SelectionMultiple SelectionMode = "multiple"
)

// VisualAttributes are the render hints an option contributes to the scene.
// Zero values mean "not set".
type VisualAttributes struct {
	Color     string  `json:"color,omitempty"`
	FillLevel float64 `json:"fillLevel,omitempty"` // liquid height inside a cup
	Scale     float64 `json:"scale,omitempty"`     // uniform scale applied to the whole model
	Accent    string  `json:"accent,omitempty"`    // secondary color (chocolate segment lines)
	Wrapper   string  `json:"wrapper,omitempty"`   // packaging color
}

// Option is one selectable catalog entry
type Option struct {
	ID          string           `json:"id" validate:"required"`
	DisplayName string           `json:"displayName" validate:"required"`
	UnitPrice   decimal.Decimal  `json:"unitPrice"`
	Visual      VisualAttributes `json:"visual"`
}

// OptionGroup is an ordered set of options sharing a selection mode
type OptionGroup struct {
	Name      string        `json:"name" validate:"required"`
	Label     string        `json:"label" validate:"required"`
	Mode      SelectionMode `json:"mode" validate:"oneof=single multiple"`
	Options   []Option      `json:"options" validate:"required,min=1,dive"`
	DefaultID string        `json:"defaultId,omitempty"`
}

// Option returns the option with the given id
func (g *OptionGroup) Option(id string) (Option, bool) {
	for _, opt := range g.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// DefaultOption returns the option a single group starts with: the named default
// when the table sets one, otherwise the first option
func (g *OptionGroup) DefaultOption() Option {
	if g.DefaultID != "" {
		if opt, ok := g.Option(g.DefaultID); ok {
			return opt
		}
	}
	return g.Options[0]
}

// Product is a configurable product family (one customizer screen)
type Product struct {
	Family string        `json:"family" validate:"required"`
	Name   string        `json:"name" validate:"required"`
	Groups []OptionGroup `json:"groups" validate:"required,min=1,dive"`
}

// Group returns the named option group
func (p *Product) Group(name string) (*OptionGroup, bool) {
	for i := range p.Groups {
		if p.Groups[i].Name == name {
			return &p.Groups[i], true
		}
	}
	return nil, false
}

// SelectionSnapshot is the serialisable form of a selection: group name to the
// selected option ids. Single groups hold exactly one id.
type SelectionSnapshot map[string][]string

// PriceLine is one priced option in a breakdown
type PriceLine struct {
	Group       string          `json:"group"`
	OptionID    string          `json:"optionId"`
	DisplayName string          `json:"displayName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// PriceBreakdown itemises a total
type PriceBreakdown struct {
	Lines []PriceLine     `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

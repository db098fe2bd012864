package usecase

import (
	"fmt"

	"github.com/cafevirtuel/backend/internal/domain"
	"github.com/shopspring/decimal"
)

// Selection is the live record of which options a customizer screen has chosen.
// It is owned by one screen and is not safe for concurrent use.
type Selection struct {
	product   *domain.Product
	single    map[string]string
	multiple  map[string]map[string]struct{}
	discarded bool

	// derived values, cleared on every committed mutation
	config Configuration
	total  *decimal.Decimal
}

// NewSelection opens a selection with every single group on its default option
// and every multiple group empty
func NewSelection(product *domain.Product) *Selection {
	s := &Selection{
		product:  product,
		single:   make(map[string]string),
		multiple: make(map[string]map[string]struct{}),
	}

	for _, g := range product.Groups {
		switch g.Mode {
		case domain.SelectionSingle:
			s.single[g.Name] = g.DefaultOption().ID
		case domain.SelectionMultiple:
			s.multiple[g.Name] = make(map[string]struct{})
		}
	}

	return s
}

// RestoreSelection rebuilds a selection from its snapshot. Groups missing from
// the snapshot keep their defaults; any unknown group or option fails the whole
// restore.
func RestoreSelection(product *domain.Product, snapshot domain.SelectionSnapshot) (*Selection, error) {
	s := NewSelection(product)

	for group, ids := range snapshot {
		g, ok := product.Group(group)
		if !ok {
			return nil, fmt.Errorf("%w: group %q in %s", domain.ErrNotFound, group, product.Family)
		}

		switch g.Mode {
		case domain.SelectionSingle:
			if len(ids) != 1 {
				return nil, fmt.Errorf("%w: group %q takes exactly one option, got %d", domain.ErrInvalidOption, group, len(ids))
			}
			if err := s.SelectSingle(group, ids[0]); err != nil {
				return nil, err
			}
		case domain.SelectionMultiple:
			for _, id := range ids {
				if err := s.ToggleMultiple(group, id, true); err != nil {
					return nil, err
				}
			}
		}
	}

	return s, nil
}

// Product returns the product family this selection configures
func (s *Selection) Product() *domain.Product {
	return s.product
}

// SelectSingle replaces the chosen option of a single-select group
func (s *Selection) SelectSingle(group, optionID string) error {
	g, err := s.group(group, domain.SelectionSingle)
	if err != nil {
		return err
	}
	if _, ok := g.Option(optionID); !ok {
		return fmt.Errorf("%w: %q is not offered in %s.%s", domain.ErrInvalidOption, optionID, s.product.Family, group)
	}

	s.single[group] = optionID
	s.invalidate()
	return nil
}

// ToggleMultiple adds or removes an option of a multiple-select group.
// Adding a present id or removing an absent one changes nothing.
func (s *Selection) ToggleMultiple(group, optionID string, include bool) error {
	g, err := s.group(group, domain.SelectionMultiple)
	if err != nil {
		return err
	}
	if _, ok := g.Option(optionID); !ok {
		return fmt.Errorf("%w: %q is not offered in %s.%s", domain.ErrInvalidOption, optionID, s.product.Family, group)
	}

	if include {
		s.multiple[group][optionID] = struct{}{}
	} else {
		delete(s.multiple[group], optionID)
	}
	s.invalidate()
	return nil
}

// CurrentSelection returns the selected ids of a group: exactly one for a
// single group, the chosen subset in catalog order for a multiple group
func (s *Selection) CurrentSelection(group string) ([]string, error) {
	if s.discarded {
		return nil, domain.ErrSelectionDiscarded
	}
	g, ok := s.product.Group(group)
	if !ok {
		return nil, fmt.Errorf("%w: group %q in %s", domain.ErrNotFound, group, s.product.Family)
	}

	if g.Mode == domain.SelectionSingle {
		return []string{s.single[group]}, nil
	}
	return s.orderedMultiple(g), nil
}

// SelectedID returns the chosen option of a single-select group
func (s *Selection) SelectedID(group string) (string, error) {
	if _, err := s.group(group, domain.SelectionSingle); err != nil {
		return "", err
	}
	return s.single[group], nil
}

// Snapshot returns the serialisable group-to-ids form of the selection.
// A discarded selection has no snapshot.
func (s *Selection) Snapshot() domain.SelectionSnapshot {
	if s.discarded {
		return nil
	}

	snap := make(domain.SelectionSnapshot, len(s.product.Groups))
	for i := range s.product.Groups {
		g := &s.product.Groups[i]
		if g.Mode == domain.SelectionSingle {
			snap[g.Name] = []string{s.single[g.Name]}
		} else {
			snap[g.Name] = s.orderedMultiple(g)
		}
	}
	return snap
}

// Configuration returns the resolved options, recomputed after each mutation
func (s *Selection) Configuration() Configuration {
	if s.discarded {
		return nil
	}
	if s.config == nil {
		s.config = Resolve(s.product, s.Snapshot())
	}
	return s.config
}

// Total returns the exact price of the current configuration
func (s *Selection) Total() decimal.Decimal {
	if s.discarded {
		return decimal.Zero
	}
	if s.total == nil {
		total := sumConfiguration(s.Configuration())
		s.total = &total
	}
	return *s.total
}

// Discard ends the selection's lifecycle. Mutations fail afterwards.
func (s *Selection) Discard() {
	s.discarded = true
	s.single = nil
	s.multiple = nil
	s.invalidate()
}

// Discarded reports whether Discard has been called
func (s *Selection) Discarded() bool {
	return s.discarded
}

func (s *Selection) group(name string, mode domain.SelectionMode) (*domain.OptionGroup, error) {
	if s.discarded {
		return nil, domain.ErrSelectionDiscarded
	}
	g, ok := s.product.Group(name)
	if !ok {
		return nil, fmt.Errorf("%w: group %q in %s", domain.ErrNotFound, name, s.product.Family)
	}
	if g.Mode != mode {
		return nil, fmt.Errorf("%w: group %q is %s-select", domain.ErrInvalidOption, name, g.Mode)
	}
	return g, nil
}

func (s *Selection) orderedMultiple(g *domain.OptionGroup) []string {
	chosen := s.multiple[g.Name]
	ids := make([]string, 0, len(chosen))
	for _, opt := range g.Options {
		if _, ok := chosen[opt.ID]; ok {
			ids = append(ids, opt.ID)
		}
	}
	return ids
}

func (s *Selection) invalidate() {
	s.config = nil
	s.total = nil
}

package usecase

import "github.com/cafevirtuel/backend/internal/domain"

// ConfiguredOption is one resolved option of a configuration
type ConfiguredOption struct {
	Group  string
	Mode   domain.SelectionMode
	Option domain.Option
}

// Configuration is the resolved set of options a selection implies, in catalog
// order (groups first, then options within a group)
type Configuration []ConfiguredOption

// Single returns the resolved option of a single-select group
func (c Configuration) Single(group string) (domain.Option, bool) {
	for _, co := range c {
		if co.Group == group && co.Mode == domain.SelectionSingle {
			return co.Option, true
		}
	}
	return domain.Option{}, false
}

// Multiple returns the resolved options of a multiple-select group
func (c Configuration) Multiple(group string) []domain.Option {
	var out []domain.Option
	for _, co := range c {
		if co.Group == group && co.Mode == domain.SelectionMultiple {
			out = append(out, co.Option)
		}
	}
	return out
}

// Snapshot converts a resolved configuration back into its group-to-ids form
func (c Configuration) Snapshot() domain.SelectionSnapshot {
	snap := make(domain.SelectionSnapshot)
	for _, co := range c {
		snap[co.Group] = append(snap[co.Group], co.Option.ID)
	}
	return snap
}

// Resolve maps a snapshot onto the product's option tables.
// A single group absent from the snapshot resolves to its default option, as on
// a freshly opened screen. A recorded id that is no longer offered resolves to
// the group's first option. Unknown ids in multiple groups are skipped.
func Resolve(product *domain.Product, snapshot domain.SelectionSnapshot) Configuration {
	var config Configuration

	for _, g := range product.Groups {
		ids := snapshot[g.Name]

		switch g.Mode {
		case domain.SelectionSingle:
			opt := g.DefaultOption()
			if len(ids) > 0 {
				found, ok := g.Option(ids[0])
				if !ok {
					found = g.Options[0]
				}
				opt = found
			}
			config = append(config, ConfiguredOption{Group: g.Name, Mode: g.Mode, Option: opt})

		case domain.SelectionMultiple:
			if len(ids) == 0 {
				continue
			}
			selected := make(map[string]bool, len(ids))
			for _, id := range ids {
				selected[id] = true
			}
			for _, opt := range g.Options {
				if selected[opt.ID] {
					config = append(config, ConfiguredOption{Group: g.Name, Mode: g.Mode, Option: opt})
				}
			}
		}
	}

	return config
}

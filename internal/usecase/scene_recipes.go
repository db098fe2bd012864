package usecase

import (
	"math"

	"github.com/cafevirtuel/backend/internal/domain"
)

func mat(color string, roughness, metalness float64) domain.Material {
	return domain.Material{Color: color, Roughness: roughness, Metalness: metalness}
}

func glass(color string, roughness, metalness, opacity float64) domain.Material {
	return domain.Material{Color: color, Roughness: roughness, Metalness: metalness, Opacity: opacity, Transparent: true}
}

func geom(kind domain.GeometryKind, args ...float64) domain.Geometry {
	return domain.Geometry{Kind: kind, Args: args}
}

func mesh(name string, g domain.Geometry, m domain.Material, pos, rot domain.Vec3) domain.SceneNode {
	return domain.SceneNode{
		Name:     name,
		Geometry: &g,
		Material: &m,
		Transform: domain.Transform{
			Position: pos,
			Rotation: rot,
			Scale:    domain.Vec3{1, 1, 1},
		},
	}
}

func at(x, y, z float64) domain.Vec3 { return domain.Vec3{x, y, z} }

var origin = domain.Vec3{}

func defaultRecipes() map[string]sceneRecipe {
	return map[string]sceneRecipe{
		"coffee":    coffeeRecipe(),
		"cake":      cakeRecipe(),
		"icecream":  iceCreamRecipe(),
		"chocolate": chocolateRecipe(),
	}
}

// genericRecipe renders families without a dedicated recipe as a colored block
func genericRecipe() sceneRecipe {
	return sceneRecipe{
		base: func(typ domain.Option) []domain.SceneNode {
			color := typ.Visual.Color
			if color == "" {
				color = "#cccccc"
			}
			return []domain.SceneNode{
				mesh("body", geom(domain.GeometryBox, 1, 1, 1), mat(color, 0.5, 0.1), origin, origin),
			}
		},
	}
}

func strawberryParts() []domain.SceneNode {
	return []domain.SceneNode{
		mesh("berry", geom(domain.GeometryCone, 0.1, 0.2, 16), mat("#ff0000", 0.6, 0.1), origin, origin),
		mesh("stem", geom(domain.GeometryCylinder, 0.02, 0.02, 0.1, 8), mat("#00aa00", 0.6, 0.1), at(0, 0.15, 0), origin),
	}
}

func coffeeRecipe() sceneRecipe {
	creamDome := mesh("cream-dome",
		geom(domain.GeometrySphere, 0.45, 32, 16, 0, 2*math.Pi, 0, math.Pi/2),
		mat("#f5f5f5", 0.8, 0), at(0, 0.6, 0), origin)
	cinnamonDust := mesh("cinnamon-dust",
		geom(domain.GeometryCylinder, 0.4, 0.4, 0.02, 32),
		mat("#d2691e", 0.8, 0.1), at(0, 0.61, 0), origin)

	return sceneRecipe{
		anchor: at(0, -1, 0),
		base: func(typ domain.Option) []domain.SceneNode {
			fill := typ.Visual.FillLevel
			return []domain.SceneNode{
				mesh("cup", geom(domain.GeometryCylinder, 0.5, 0.4, 1, 32), mat("#ffffff", 0.2, 0.3), origin, origin),
				mesh("cup-handle", geom(domain.GeometryTorus, 0.3, 0.05, 16, 32, math.Pi), mat("#ffffff", 0.2, 0.3), at(0.6, 0.1, 0), at(0, 0, math.Pi/2)),
				mesh("coffee", geom(domain.GeometryCylinder, 0.48, 0.48, fill, 32), mat(typ.Visual.Color, 0.1, 0.1), at(0, fill/2, 0), origin),
				mesh("coffee-surface", geom(domain.GeometryCircle, 0.48, 32), mat(typ.Visual.Color, 0, 0.5), at(0, fill, 0), at(math.Pi/2, 0, 0)),
			}
		},
		toppingDecorations: map[string][]decorationRule{
			"cream": {{
				name: "cream", count: 10, radius: 0.3, height: 0.65, jitter: 0.1,
				geometry: geom(domain.GeometrySphere, 0.12, 8, 8), material: mat("#ffffff", 0.9, 0),
				randomRotation: true, base: &creamDome,
			}},
			"cinnamon": {{
				name: "cinnamon", count: 20, radius: 0.35, height: 0.62,
				geometry: geom(domain.GeometryBox, 0.02, 0.01, 0.02), material: mat("#a0522d", 0.7, 0),
				base: &cinnamonDust,
			}},
			"chocolate": {{
				name: "sprinkle", count: 30, radius: 0.3, height: 0.62,
				geometry: geom(domain.GeometryBox, 0.02, 0.02, 0.1), material: mat("#3d2314", 0.5, 0.2),
				randomRotation: true,
			}},
			"caramel": {{
				name: "drizzle", count: 8, scatter: scatterDrizzle, radius: 0.2, spread: 0.2, height: 0.62,
				material: glass("#c68e17", 0.3, 0.4, 0.9),
			}},
		},
		ambient: []decorationRule{{
			name: "steam", count: 10, radius: 0.15, height: 1.05, jitter: 0.5,
			geometry: geom(domain.GeometrySphere, 0.07, 8, 8), material: glass("#ffffff", 0.5, 0, 0.3),
		}},
	}
}

func cakeRecipe() sceneRecipe {
	return sceneRecipe{
		anchor: at(0, -1, 0),
		base: func(typ domain.Option) []domain.SceneNode {
			return []domain.SceneNode{
				mesh("plate", geom(domain.GeometryCylinder, 1.2, 1.2, 0.1, 32), mat("#ffffff", 0.2, 0.5), at(0, -0.1, 0), origin),
				mesh("plate-ring", geom(domain.GeometryRing, 0.9, 1.1, 32), glass("#f59e0b", 0.3, 0.4, 0.2), at(0, -0.05, 0), origin),
				mesh("cake-base", geom(domain.GeometryCylinder, 1, 1, 0.5, 32), mat(typ.Visual.Color, 0.7, 0.1), at(0, 0.25, 0), origin),
			}
		},
		finish: func(finish domain.Option) []domain.SceneNode {
			nodes := []domain.SceneNode{
				mesh("frosting", geom(domain.GeometryCylinder, 1.05, 1.05, 0.1, 32), mat(finish.Visual.Color, 0.5, 0.1), at(0, 0.55, 0), origin),
			}
			// piped border: twelve dollops evenly spaced on a ring
			for i := 0; i < 12; i++ {
				angle := float64(i) * math.Pi / 6
				nodes = append(nodes, mesh("frosting-dollop",
					geom(domain.GeometrySphere, 0.15, 16, 16), mat(finish.Visual.Color, 0.5, 0.1),
					at(math.Cos(angle)*0.8, 0.6, math.Sin(angle)*0.8), origin))
			}
			return nodes
		},
		toppingDecorations: map[string][]decorationRule{
			"sprinkles": {{
				name: "sprinkle", count: 80, radius: 0.8, height: 0.62,
				geometry: geom(domain.GeometryBox, 0.02, 0.02, 0.1), material: mat("#ffffff", 0.5, 0.3),
				randomRotation: true, randomHue: true,
			}},
			"chocolate_chips": {{
				name: "chip", count: 40, radius: 0.8, height: 0.62,
				geometry: geom(domain.GeometrySphere, 0.05, 8, 8), material: mat("#3d2314", 0.5, 0.2),
			}},
			"fruits": {
				{
					name: "strawberry", count: 8, radius: 0.6, height: 0.65,
					parts: strawberryParts(), tilt: math.Pi / 4,
				},
				{
					name: "blueberry", count: 15, radius: 0.7, height: 0.65,
					geometry: geom(domain.GeometrySphere, 0.05, 8, 8), material: mat("#4169e1", 0.4, 0.2),
				},
			},
			"nuts": {{
				name: "nut", count: 50, radius: 0.8, height: 0.62,
				geometry: geom(domain.GeometryBox, 0.05, 0.05, 0.05), material: mat("#8b5a2b", 0.7, 0.1),
				randomRotation: true,
			}},
			"caramel": {{
				name: "drizzle", count: 12, scatter: scatterDrizzle, radius: 0.4, spread: 0.4, height: 0.62,
				material: glass("#c68e17", 0.3, 0.4, 0.9),
			}},
		},
	}
}

func iceCreamRecipe() sceneRecipe {
	return sceneRecipe{
		anchor: at(0, -1, 0),
		base: func(typ domain.Option) []domain.SceneNode {
			return []domain.SceneNode{
				mesh("cone", geom(domain.GeometryCone, 0.5, 1.2, 32), mat("#d4a76a", 0.8, 0.1), origin, origin),
				mesh("scoop-base", geom(domain.GeometrySphere, 0.6, 32, 32, 0, 2*math.Pi, 0, math.Pi/2), mat(typ.Visual.Color, 0.2, 0.1), at(0, 0.9, 0), origin),
				mesh("scoop-top", geom(domain.GeometrySphere, 0.5, 32, 32), mat(typ.Visual.Color, 0.2, 0.1), at(0, 1.3, 0), origin),
				mesh("cherry", geom(domain.GeometrySphere, 0.15, 16, 16), mat("#ff0000", 0.3, 0.3), at(0, 1.7, 0), origin),
				mesh("cherry-stem", geom(domain.GeometryCylinder, 0.02, 0.02, 0.2, 8), mat("#2a1506", 0.5, 0.2), at(0, 1.8, 0), origin),
			}
		},
		typeDecorations: map[string][]decorationRule{
			"chocolate": {{
				name: "chocolate-bit", count: 15, radius: 0.4, height: 1.3, jitter: 0.4,
				geometry: geom(domain.GeometryBox, 0.05, 0.05, 0.05), material: mat("#2a1506", 0.5, 0.2),
				randomRotation: true,
			}},
			"strawberry": {{
				name: "strawberry", count: 5, radius: 0.3, height: 1.3, jitter: 0.4,
				parts: strawberryParts(), tilt: math.Pi / 4,
			}},
			"mint": {
				{
					name: "mint-chip", count: 8, radius: 0.4, height: 1.3, jitter: 0.4,
					geometry: geom(domain.GeometryCylinder, 0.05, 0.05, 0.01, 16), material: mat("#ffffff", 0.4, 0.2),
				},
				{
					name: "mint-leaf", count: 3, radius: 0.2, height: 1.5, jitter: 0.2,
					geometry: geom(domain.GeometryBox, 0.1, 0.01, 0.2), material: mat("#00aa00", 0.6, 0.1),
					tilt: math.Pi / 4,
				},
			},
		},
	}
}

func chocolateRecipe() sceneRecipe {
	return sceneRecipe{
		anchor: origin,
		base: func(typ domain.Option) []domain.SceneNode {
			accent := typ.Visual.Accent
			if accent == "" {
				accent = "#2a1506"
			}

			nodes := []domain.SceneNode{
				mesh("bar", geom(domain.GeometryBox, 2, 0.2, 1.5), mat(typ.Visual.Color, 0.4, 0.2), origin, origin),
			}
			for i := 0; i < 6; i++ {
				nodes = append(nodes, mesh("segment-x", geom(domain.GeometryBox, 0.02, 0.02, 1.5), mat(accent, 0.5, 0.2), at(-0.75+float64(i)*0.3, 0.11, 0), origin))
			}
			for i := 0; i < 4; i++ {
				nodes = append(nodes, mesh("segment-z", geom(domain.GeometryBox, 2, 0.02, 0.02), mat(accent, 0.5, 0.2), at(0, 0.11, -0.6+float64(i)*0.4), origin))
			}

			// filled varieties show a 4x3 grid of centres
			var filling func(x, z float64) domain.SceneNode
			switch typ.ID {
			case "caramel":
				filling = func(x, z float64) domain.SceneNode {
					return mesh("filling", geom(domain.GeometryCylinder, 0.2, 0.2, 0.1, 16), mat("#c68e17", 0.3, 0.4), at(x, 0.05, z), origin)
				}
			case "hazelnut":
				filling = func(x, z float64) domain.SceneNode {
					return mesh("hazelnut", geom(domain.GeometrySphere, 0.15, 16, 16), mat("#8b5a2b", 0.7, 0.2), at(x, 0.05, z), origin)
				}
			}
			if filling != nil {
				for i := 0; i < 12; i++ {
					nodes = append(nodes, filling(float64(i/3)*0.6-0.9, float64(i%3)*0.6-0.6))
				}
			}

			wrapper := typ.Visual.Wrapper
			if wrapper == "" {
				wrapper = "#a0522d"
			}
			nodes = append(nodes, domain.SceneNode{
				Name:      "wrapper",
				Transform: domain.Transform{Position: at(0, -0.2, 0), Scale: domain.Vec3{1, 1, 1}},
				Children: []domain.SceneNode{
					mesh("wrapper-sheet", geom(domain.GeometryBox, 2.2, 0.01, 1.7), mat(wrapper, 0.2, 0.8), origin, at(0, 0, math.Pi/32)),
					mesh("wrapper-fold", geom(domain.GeometryBox, 0.3, 0.01, 1.7), mat(wrapper, 0.2, 0.8), at(1.1, 0.1, 0), at(0, 0, math.Pi/4)),
					mesh("wrapper-fold", geom(domain.GeometryBox, 0.3, 0.01, 1.7), mat(wrapper, 0.2, 0.8), at(-1.1, 0.1, 0), at(0, 0, -math.Pi/4)),
					mesh("wrapper-shine", geom(domain.GeometryBox, 2.2, 0.001, 1.7), glass("#ffffff", 0, 1, 0.2), at(0, 0.001, 0), at(0, 0, math.Pi/32)),
				},
			})

			return nodes
		},
	}
}

package usecase

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/cafevirtuel/backend/internal/domain"
)

// randSource yields uniform floats in [0, 1)
type randSource interface {
	Float64() float64
}

// ambientRand draws from the process-wide generator, so every build scatters differently
type ambientRand struct{}

func (ambientRand) Float64() float64 { return rand.Float64() }

type scatterKind int

const (
	// instances placed uniformly inside a horizontal disk
	scatterDisk scatterKind = iota
	// torus arcs centred on the axis with random radius, sweep and heading
	scatterDrizzle
)

// decorationRule generates one group of decorative instances
type decorationRule struct {
	name     string
	count    int
	scatter  scatterKind
	radius   float64 // disk radius, or smallest drizzle radius
	spread   float64 // drizzle radius range
	height   float64
	jitter   float64 // vertical spread around height
	geometry domain.Geometry
	material domain.Material
	// each instance is a group of these parts instead of a single mesh
	parts          []domain.SceneNode
	randomRotation bool
	// tilt limits random x/z rotation (radians) when randomRotation is false
	tilt      float64
	randomHue bool
	// static layer placed under the instances
	base *domain.SceneNode
}

// sceneRecipe is the fixed composition of one product family
type sceneRecipe struct {
	anchor domain.Vec3
	// base shape driven by the "type" option
	base func(typ domain.Option) []domain.SceneNode
	// secondary layer driven by the "frosting" option
	finish func(finish domain.Option) []domain.SceneNode
	// decorations keyed by the selected type id
	typeDecorations map[string][]decorationRule
	// decorations keyed by each selected topping id
	toppingDecorations map[string][]decorationRule
	// decorations present whatever is selected
	ambient []decorationRule
}

// SceneBuilder derives render-ready scene descriptions from configurations.
// Decoration positions are random; with seed 0 they differ on every build.
type SceneBuilder struct {
	mu      sync.Mutex
	rng     randSource
	recipes map[string]sceneRecipe
}

// NewSceneBuilder creates a builder. A non-zero seed makes scatter reproducible.
func NewSceneBuilder(seed int64) *SceneBuilder {
	var rng randSource = ambientRand{}
	if seed != 0 {
		rng = rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	}
	return &SceneBuilder{
		rng:     rng,
		recipes: defaultRecipes(),
	}
}

// BuildScene describes the product as configured by the snapshot
func (b *SceneBuilder) BuildScene(product *domain.Product, snapshot domain.SelectionSnapshot) domain.Scene {
	b.mu.Lock()
	defer b.mu.Unlock()

	config := Resolve(product, snapshot)

	recipe, ok := b.recipes[product.Family]
	if !ok {
		recipe = genericRecipe()
	}

	scale := 1.0
	if size, ok := config.Single("size"); ok && size.Visual.Scale > 0 {
		scale = size.Visual.Scale
	}

	root := domain.SceneNode{
		Name: product.Family,
		Transform: domain.Transform{
			Position: recipe.anchor,
			Scale:    domain.Vec3{scale, scale, scale},
		},
	}

	typ, hasType := config.Single("type")
	if hasType && recipe.base != nil {
		root.Children = append(root.Children, recipe.base(typ)...)
	}

	if finish, ok := config.Single("frosting"); ok && recipe.finish != nil {
		root.Children = append(root.Children, recipe.finish(finish)...)
	}

	if hasType {
		for _, rule := range recipe.typeDecorations[typ.ID] {
			root.Children = append(root.Children, b.decorate("type:"+typ.ID, rule))
		}
	}

	for _, topping := range config.Multiple("toppings") {
		for _, rule := range recipe.toppingDecorations[topping.ID] {
			root.Children = append(root.Children, b.decorate("topping:"+topping.ID, rule))
		}
	}

	for _, rule := range recipe.ambient {
		root.Children = append(root.Children, b.decorate("ambient", rule))
	}

	return domain.Scene{Family: product.Family, Root: root}
}

// decorate expands a rule into a group node holding its instances
func (b *SceneBuilder) decorate(prefix string, rule decorationRule) domain.SceneNode {
	group := domain.SceneNode{
		Name:      prefix + "/" + rule.name,
		Transform: identity(),
	}

	if rule.base != nil {
		group.Children = append(group.Children, cloneNode(*rule.base))
	}

	for i := 0; i < rule.count; i++ {
		group.Children = append(group.Children, b.instance(rule, i))
	}

	return group
}

func (b *SceneBuilder) instance(rule decorationRule, i int) domain.SceneNode {
	node := domain.SceneNode{
		Name:      fmt.Sprintf("%s-%d", rule.name, i),
		Transform: identity(),
	}

	switch rule.scatter {
	case scatterDrizzle:
		radius := rule.radius + b.rng.Float64()*rule.spread
		arc := math.Pi/4 + b.rng.Float64()*math.Pi/2
		geom := domain.Geometry{Kind: domain.GeometryTorus, Args: []float64{radius, 0.02, 8, 16, arc}}
		node.Geometry = &geom
		node.Transform.Position = domain.Vec3{0, rule.height, 0}
		node.Transform.Rotation = domain.Vec3{0, b.rng.Float64() * 2 * math.Pi, 0}

	default:
		r := rule.radius * math.Sqrt(b.rng.Float64())
		theta := b.rng.Float64() * 2 * math.Pi
		y := rule.height
		if rule.jitter > 0 {
			y += (b.rng.Float64() - 0.5) * rule.jitter
		}
		node.Transform.Position = domain.Vec3{r * math.Cos(theta), y, r * math.Sin(theta)}

		switch {
		case rule.randomRotation:
			node.Transform.Rotation = domain.Vec3{
				b.rng.Float64() * math.Pi,
				b.rng.Float64() * math.Pi,
				b.rng.Float64() * math.Pi,
			}
		case rule.tilt > 0:
			node.Transform.Rotation = domain.Vec3{
				b.rng.Float64() * rule.tilt,
				b.rng.Float64() * 2 * math.Pi,
				b.rng.Float64() * rule.tilt,
			}
		}

		if len(rule.parts) == 0 {
			node.Geometry = cloneGeometry(&rule.geometry)
		}
	}

	if len(rule.parts) > 0 {
		node.Children = make([]domain.SceneNode, len(rule.parts))
		for j, part := range rule.parts {
			node.Children[j] = cloneNode(part)
		}
		return node
	}

	material := rule.material
	if rule.randomHue {
		material.Color = hslToHex(b.rng.Float64(), 0.8, 0.6)
	}
	node.Material = &material

	return node
}

// cloneNode copies a recipe node so callers can never write through to the recipe
func cloneNode(n domain.SceneNode) domain.SceneNode {
	out := n
	out.Geometry = cloneGeometry(n.Geometry)
	if n.Material != nil {
		m := *n.Material
		out.Material = &m
	}
	if n.Children != nil {
		out.Children = make([]domain.SceneNode, len(n.Children))
		for i, child := range n.Children {
			out.Children[i] = cloneNode(child)
		}
	}
	return out
}

func cloneGeometry(g *domain.Geometry) *domain.Geometry {
	if g == nil {
		return nil
	}
	out := *g
	out.Args = append([]float64(nil), g.Args...)
	return &out
}

func identity() domain.Transform {
	return domain.Transform{Scale: domain.Vec3{1, 1, 1}}
}

// hslToHex converts hue, saturation and lightness in [0, 1] to a #rrggbb color
func hslToHex(h, s, l float64) string {
	var r, g, b float64
	if s == 0 {
		r, g, b = l, l, l
	} else {
		q := l * (1 + s)
		if l >= 0.5 {
			q = l + s - l*s
		}
		p := 2*l - q
		r = hueToRGB(p, q, h+1.0/3)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-1.0/3)
	}
	return fmt.Sprintf("#%02x%02x%02x", toByte(r), toByte(g), toByte(b))
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

func toByte(v float64) int {
	return int(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

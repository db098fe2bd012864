package catalog

import (
	"github.com/cafevirtuel/backend/internal/domain"
	"github.com/shopspring/decimal"
)

// Product family identifiers
const (
	FamilyCoffee    = "coffee"
	FamilyCake      = "cake"
	FamilyIceCream  = "icecream"
	FamilyChocolate = "chocolate"
)

// Group names shared by the families
const (
	GroupType     = "type"
	GroupToppings = "toppings"
	GroupSize     = "size"
	GroupFrosting = "frosting"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func coffeeProduct() domain.Product {
	return domain.Product{
		Family: FamilyCoffee,
		Name:   "Coffee",
		Groups: []domain.OptionGroup{
			{
				Name:  GroupType,
				Label: "Coffee Type",
				Mode:  domain.SelectionSingle,
				Options: []domain.Option{
					{ID: "espresso", DisplayName: "Espresso", UnitPrice: price("2.50"), Visual: domain.VisualAttributes{Color: "#3d2314", FillLevel: 0.3}},
					{ID: "americano", DisplayName: "Americano", UnitPrice: price("3.00"), Visual: domain.VisualAttributes{Color: "#4e2e17", FillLevel: 0.7}},
					{ID: "latte", DisplayName: "Latte", UnitPrice: price("3.50"), Visual: domain.VisualAttributes{Color: "#8c5d3c", FillLevel: 0.8}},
					{ID: "cappuccino", DisplayName: "Cappuccino", UnitPrice: price("3.75"), Visual: domain.VisualAttributes{Color: "#6f4e37", FillLevel: 0.7}},
					{ID: "mocha", DisplayName: "Mocha", UnitPrice: price("4.00"), Visual: domain.VisualAttributes{Color: "#5d3c1e", FillLevel: 0.8}},
				},
			},
			{
				Name:  GroupToppings,
				Label: "Toppings",
				Mode:  domain.SelectionMultiple,
				Options: []domain.Option{
					{ID: "cream", DisplayName: "Whipped Cream", UnitPrice: price("0.50")},
					{ID: "cinnamon", DisplayName: "Cinnamon", UnitPrice: price("0.25")},
					{ID: "chocolate", DisplayName: "Chocolate Sprinkles", UnitPrice: price("0.50")},
					{ID: "caramel", DisplayName: "Caramel Drizzle", UnitPrice: price("0.75")},
				},
			},
			{
				Name:      GroupSize,
				Label:     "Size",
				Mode:      domain.SelectionSingle,
				DefaultID: "medium",
				Options: []domain.Option{
					{ID: "small", DisplayName: "Small", UnitPrice: price("0"), Visual: domain.VisualAttributes{Scale: 0.8}},
					{ID: "medium", DisplayName: "Medium", UnitPrice: price("0.50"), Visual: domain.VisualAttributes{Scale: 1}},
					{ID: "large", DisplayName: "Large", UnitPrice: price("1.00"), Visual: domain.VisualAttributes{Scale: 1.2}},
				},
			},
		},
	}
}

func cakeProduct() domain.Product {
	return domain.Product{
		Family: FamilyCake,
		Name:   "Cake",
		Groups: []domain.OptionGroup{
			{
				Name:  GroupType,
				Label: "Cake",
				Mode:  domain.SelectionSingle,
				Options: []domain.Option{
					{ID: "chocolate", DisplayName: "Chocolate", UnitPrice: price("4.50"), Visual: domain.VisualAttributes{Color: "#3d2314"}},
					{ID: "vanilla", DisplayName: "Vanilla", UnitPrice: price("4.00"), Visual: domain.VisualAttributes{Color: "#f5e9c9"}},
					{ID: "redvelvet", DisplayName: "Red Velvet", UnitPrice: price("5.00"), Visual: domain.VisualAttributes{Color: "#a42025"}},
					{ID: "carrot", DisplayName: "Carrot", UnitPrice: price("4.75"), Visual: domain.VisualAttributes{Color: "#e67e22"}},
					{ID: "lemon", DisplayName: "Lemon", UnitPrice: price("4.25"), Visual: domain.VisualAttributes{Color: "#f4d03f"}},
				},
			},
			{
				Name:  GroupFrosting,
				Label: "Frosting",
				Mode:  domain.SelectionSingle,
				Options: []domain.Option{
					{ID: "buttercream", DisplayName: "Buttercream", UnitPrice: price("0.50"), Visual: domain.VisualAttributes{Color: "#f5f5dc"}},
					{ID: "chocolate", DisplayName: "Chocolate", UnitPrice: price("0.75"), Visual: domain.VisualAttributes{Color: "#3d2314"}},
					{ID: "cream_cheese", DisplayName: "Cream Cheese", UnitPrice: price("1.00"), Visual: domain.VisualAttributes{Color: "#f8f8ff"}},
					{ID: "strawberry", DisplayName: "Strawberry", UnitPrice: price("0.75"), Visual: domain.VisualAttributes{Color: "#ff9999"}},
				},
			},
			{
				Name:  GroupToppings,
				Label: "Toppings",
				Mode:  domain.SelectionMultiple,
				Options: []domain.Option{
					{ID: "sprinkles", DisplayName: "Sprinkles", UnitPrice: price("0.50")},
					{ID: "chocolate_chips", DisplayName: "Chocolate Chips", UnitPrice: price("0.75")},
					{ID: "fruits", DisplayName: "Fresh Fruits", UnitPrice: price("1.00")},
					{ID: "nuts", DisplayName: "Chopped Nuts", UnitPrice: price("0.75")},
					{ID: "caramel", DisplayName: "Caramel Drizzle", UnitPrice: price("0.50")},
				},
			},
			{
				Name:      GroupSize,
				Label:     "Size",
				Mode:      domain.SelectionSingle,
				DefaultID: "medium",
				Options: []domain.Option{
					{ID: "small", DisplayName: `Small (6")`, UnitPrice: price("0"), Visual: domain.VisualAttributes{Scale: 0.8}},
					{ID: "medium", DisplayName: `Medium (8")`, UnitPrice: price("2.00"), Visual: domain.VisualAttributes{Scale: 1}},
					{ID: "large", DisplayName: `Large (10")`, UnitPrice: price("4.00"), Visual: domain.VisualAttributes{Scale: 1.2}},
				},
			},
		},
	}
}

func iceCreamProduct() domain.Product {
	return domain.Product{
		Family: FamilyIceCream,
		Name:   "Ice Cream",
		Groups: []domain.OptionGroup{
			{
				Name:  GroupType,
				Label: "Ice Cream Flavors",
				Mode:  domain.SelectionSingle,
				Options: []domain.Option{
					{ID: "vanilla", DisplayName: "Vanilla", UnitPrice: price("3.00"), Visual: domain.VisualAttributes{Color: "#f5f5dc"}},
					{ID: "chocolate", DisplayName: "Chocolate", UnitPrice: price("3.00"), Visual: domain.VisualAttributes{Color: "#3d2314"}},
					{ID: "strawberry", DisplayName: "Strawberry", UnitPrice: price("3.00"), Visual: domain.VisualAttributes{Color: "#ff9999"}},
					{ID: "mint", DisplayName: "Mint", UnitPrice: price("3.50"), Visual: domain.VisualAttributes{Color: "#98fb98"}},
					{ID: "blueberry", DisplayName: "Blueberry", UnitPrice: price("3.50"), Visual: domain.VisualAttributes{Color: "#4169e1"}},
				},
			},
		},
	}
}

func chocolateProduct() domain.Product {
	return domain.Product{
		Family: FamilyChocolate,
		Name:   "Chocolate",
		Groups: []domain.OptionGroup{
			{
				Name:  GroupType,
				Label: "Chocolate Selection",
				Mode:  domain.SelectionSingle,
				Options: []domain.Option{
					{ID: "dark", DisplayName: "Dark Chocolate", UnitPrice: price("2.50"), Visual: domain.VisualAttributes{Color: "#2a1506", Accent: "#2a1506", Wrapper: "#1a1a1a"}},
					{ID: "milk", DisplayName: "Milk Chocolate", UnitPrice: price("2.50"), Visual: domain.VisualAttributes{Color: "#6b4226", Accent: "#2a1506", Wrapper: "#8b4513"}},
					{ID: "white", DisplayName: "White Chocolate", UnitPrice: price("2.75"), Visual: domain.VisualAttributes{Color: "#f5f5dc", Accent: "#e0d9c8", Wrapper: "#f0f0f0"}},
					{ID: "caramel", DisplayName: "Caramel Filled", UnitPrice: price("3.00"), Visual: domain.VisualAttributes{Color: "#c68e17", Accent: "#2a1506", Wrapper: "#d4a76a"}},
					{ID: "hazelnut", DisplayName: "Hazelnut", UnitPrice: price("3.00"), Visual: domain.VisualAttributes{Color: "#8b5a2b", Accent: "#2a1506", Wrapper: "#a0522d"}},
				},
			},
		},
	}
}

// DefaultProducts returns the storefront's product families in display order
func DefaultProducts() []domain.Product {
	return []domain.Product{
		coffeeProduct(),
		cakeProduct(),
		iceCreamProduct(),
		chocolateProduct(),
	}
}

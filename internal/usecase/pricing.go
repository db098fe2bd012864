package usecase

import (
	"fmt"

	"github.com/cafevirtuel/backend/internal/domain"
	"github.com/shopspring/decimal"
)

// ComputeTotal sums the unit price of every option the snapshot selects.
// The sum is exact; rounding happens only in FormatPrice.
func ComputeTotal(product *domain.Product, snapshot domain.SelectionSnapshot) decimal.Decimal {
	return sumConfiguration(Resolve(product, snapshot))
}

// BreakdownPrice itemises the total per selected option
func BreakdownPrice(product *domain.Product, snapshot domain.SelectionSnapshot) domain.PriceBreakdown {
	config := Resolve(product, snapshot)

	lines := make([]domain.PriceLine, 0, len(config))
	for _, co := range config {
		lines = append(lines, domain.PriceLine{
			Group:       co.Group,
			OptionID:    co.Option.ID,
			DisplayName: co.Option.DisplayName,
			UnitPrice:   co.Option.UnitPrice,
		})
	}

	return domain.PriceBreakdown{
		Lines: lines,
		Total: sumConfiguration(config),
	}
}

func sumConfiguration(config Configuration) decimal.Decimal {
	total := decimal.Zero
	for _, co := range config {
		total = total.Add(co.Option.UnitPrice)
	}
	return total
}

// FormatPrice renders an amount with two decimals, rounding half up
func FormatPrice(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatMoney renders an amount with its currency symbol
func FormatMoney(currency string, d decimal.Decimal) string {
	amount := FormatPrice(d)
	switch currency {
	case "USD":
		return "$" + amount
	case "EUR":
		return "€" + amount
	default:
		return fmt.Sprintf("%s %s", amount, currency)
	}
}

package reporting

import (
	"github.com/shopspring/decimal"

	"github.com/yassirrachad97/DepotSmart/internal/domain/models"
)

// CalculateStatistics summarizes a product snapshot. Stock value uses the
// effective price (solde when set) and is rounded half away from zero to cents.
func CalculateStatistics(products []models.Product) models.Statistics {
	stats := models.EmptyStatistics()
	stats.TotalProducts = len(products)

	total := decimal.Zero
	for _, p := range products {
		if p.IsOutOfStock() {
			stats.OutOfStock++
		}

		price := decimal.NewFromFloat(p.EffectivePrice())
		for _, s := range p.Stocks {
			total = total.Add(price.Mul(decimal.NewFromInt(int64(s.Quantity))))
		}
	}

	stats.TotalStockValue = total.Round(2).InexactFloat64()
	return stats
}

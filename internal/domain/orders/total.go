package orders

import (
	"math"

	"github.com/linemk/shop-orders/internal/domain/models"
)

// Total суммирует lineTotal всех позиций; NaN считается нулём
func Total(items models.LineItems) float64 {
	var total float64
	for _, item := range items {
		if math.IsNaN(item.LineTotal) {
			continue
		}
		total += item.LineTotal
	}
	return total
}

// Priced - результат нормализации вместе с итоговой суммой
type Priced struct {
	Items       models.LineItems
	TotalAmount float64
}

// Price прогоняет сырые позиции через нормализацию и подсчёт суммы
func Price(raw []RawLineItem) Priced {
	items := Normalize(raw)
	return Priced{
		Items:       items,
		TotalAmount: Total(items),
	}
}

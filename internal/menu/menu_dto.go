package menu

import "go-japastel-api/internal/pricing"

type ListResponse struct {
	Items []ItemResponse `json:"items"`
}

type ItemResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Price      string `json:"price"`
	PriceCents int64  `json:"priceCents"`
}

func toItemResponse(item Item) ItemResponse {
	return ItemResponse{
		ID:         item.ID,
		Name:       item.Name,
		Category:   item.Category,
		Price:      pricing.FormatBRL(item.UnitPrice),
		PriceCents: item.UnitPrice,
	}
}

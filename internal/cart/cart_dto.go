package cart

import "go-japastel-api/internal/pricing"

// ==================== REQUEST STRUCTS ====================

type AddItemRequest struct {
	ItemID string `json:"itemId" validate:"required"`
}

type UpdateQtyRequest struct {
	// Qty <= 0 removes the entry rather than keeping it at zero.
	Qty int `json:"qty"`
}

// ==================== RESPONSE STRUCTS ====================

type CartItemResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Qty            int    `json:"qty"`
	UnitPrice      string `json:"unitPrice"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	LineTotal      string `json:"lineTotal"`
	LineTotalCents int64  `json:"lineTotalCents"`
}

type CartDetailResponse struct {
	Items      []CartItemResponse `json:"items"`
	Count      int                `json:"count"`
	Total      string             `json:"total"`
	TotalCents int64              `json:"totalCents"`
}

type CartCountResponse struct {
	Count int `json:"count"`
}

func toDetailResponse(items []Item) CartDetailResponse {
	out := make([]CartItemResponse, 0, len(items))
	lines := make([]pricing.Line, 0, len(items))
	for _, item := range items {
		lineCents := pricing.LineTotal(item.UnitPrice, item.Quantity)
		out = append(out, CartItemResponse{
			ID:             item.ID,
			Name:           item.Name,
			Qty:            item.Quantity,
			UnitPrice:      pricing.FormatBRL(item.UnitPrice),
			UnitPriceCents: item.UnitPrice,
			LineTotal:      pricing.FormatBRL(lineCents),
			LineTotalCents: lineCents,
		})
		lines = append(lines, pricing.Line{UnitPrice: item.UnitPrice, Quantity: item.Quantity})
	}

	totalCents := pricing.CartTotal(lines)
	return CartDetailResponse{
		Items:      out,
		Count:      len(out),
		Total:      pricing.FormatBRL(totalCents),
		TotalCents: totalCents,
	}
}

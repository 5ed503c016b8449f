package payment

// ==================== REQUEST STRUCTS ====================

type SelectMethodRequest struct {
	Method string `json:"method" validate:"required,oneof=CASH PIX CREDIT_CARD"`
}

type SetCardFieldRequest struct {
	Field string `json:"field" validate:"required,oneof=card_number security_code expiry"`
	Value string `json:"value"`
}

// ==================== RESPONSE STRUCTS ====================

// Card data is write-only; the response reports which fields are filled in
// without echoing them.
type CardStatusResponse struct {
	CardNumberSet   bool `json:"cardNumberSet"`
	SecurityCodeSet bool `json:"securityCodeSet"`
	ExpirySet       bool `json:"expirySet"`
}

type SelectionResponse struct {
	Method       string              `json:"method"`
	RequiresCard bool                `json:"requiresCard"`
	Complete     bool                `json:"complete"`
	Card         *CardStatusResponse `json:"card,omitempty"`
}

func toSelectionResponse(method Method, card CardDetails) SelectionResponse {
	res := SelectionResponse{
		Method:       string(method),
		RequiresCard: method.RequiresCard(),
		Complete:     !method.RequiresCard() || card.Complete(),
	}
	if method.RequiresCard() {
		res.Card = &CardStatusResponse{
			CardNumberSet:   card.CardNumber != "",
			SecurityCodeSet: card.SecurityCode != "",
			ExpirySet:       card.Expiry != "",
		}
	}
	return res
}

package checkout

type ConfirmationResponse struct {
	OrderNumber int    `json:"orderNumber"`
	Total       string `json:"total"`
	TotalCents  int64  `json:"totalCents"`
}

package response

// ProductListResponse -- ответ /v2/product/list, полезные данные лежат
// в конверте result.
type ProductListResponse struct {
	Result ProductListResult `json:"result"`
}

type ProductListResult struct {
	Items  []ProductListItem `json:"items"`
	Total  int               `json:"total"`
	LastID string            `json:"last_id"`
}

type ProductListItem struct {
	ProductID int64  `json:"product_id"`
	OfferID   string `json:"offer_id"`
}

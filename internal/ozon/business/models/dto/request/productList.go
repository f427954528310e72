package request

type Filter struct {
	Visibility string `json:"visibility"`
}

type ProductList struct {
	Filter Filter `json:"filter"`
	LastID string `json:"last_id"`
	Limit  int    `json:"limit"`
}

func NewProductList(lastID string, limit int) ProductList {
	return ProductList{
		Filter: Filter{Visibility: "ALL"},
		LastID: lastID,
		Limit:  limit,
	}
}

package request

import "ozonmarket_api/internal/ozon/business/models"

type PricesUpload struct {
	Prices []models.PriceUpdate `json:"prices"`
}

type StocksUpload struct {
	Stocks []models.StockUpdate `json:"stocks"`
}

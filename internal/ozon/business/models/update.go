package models

// StockUpdate -- остаток одного товара в формате Ozon seller API.
type StockUpdate struct {
	OfferID string `json:"offer_id"`
	Stock   int    `json:"stock"`
}

// PriceUpdate -- цена одного товара в формате Ozon seller API.
// OldPrice "0" означает «без зачёркнутой цены», автоакции не трогаем.
type PriceUpdate struct {
	AutoActionEnabled string `json:"auto_action_enabled"`
	CurrencyCode      string `json:"currency_code"`
	OfferID           string `json:"offer_id"`
	OldPrice          string `json:"old_price"`
	Price             string `json:"price"`
}

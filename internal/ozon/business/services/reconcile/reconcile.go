package reconcile

import (
	"errors"
	"strconv"
	"strings"

	"ozonmarket_api/internal/ozon/business/models"
	supplier "ozonmarket_api/internal/supplier/models"
)

const (
	// Маркеры количества в фиде поставщика: ">10" -- на складе больше
	// десяти, выставляем фиксированные 100; "1" -- последний экземпляр,
	// его не продаём.
	overstockQuantity = ">10"
	lastUnitQuantity  = "1"
	overstockValue    = 100
)

// BuildStockUpdates сопоставляет фид поставщика со снимком каталога и
// собирает полный список остатков: сперва строки фида, чей код есть в
// каталоге, в порядке фида, затем нулевые остатки для всех артикулов
// каталога, которых в фиде не было, в порядке каталога. Каждый артикул
// каталога попадает в результат ровно один раз; повторный код в фиде
// игнорируется. Снимок каталога не изменяется, рабочая копия своя на
// каждый вызов.
func BuildStockUpdates(feed []supplier.Record, offerIDs []string) ([]models.StockUpdate, error) {
	remaining := make(map[string]struct{}, len(offerIDs))
	for _, id := range offerIDs {
		remaining[id] = struct{}{}
	}

	stocks := make([]models.StockUpdate, 0, len(offerIDs))
	for _, record := range feed {
		if _, ok := remaining[record.Code]; !ok {
			continue
		}
		stock, err := mapQuantity(record)
		if err != nil {
			return nil, err
		}
		stocks = append(stocks, models.StockUpdate{OfferID: record.Code, Stock: stock})
		delete(remaining, record.Code)
	}

	// Добавим недостающее из каталога с нулевым остатком.
	for _, id := range offerIDs {
		if _, ok := remaining[id]; ok {
			stocks = append(stocks, models.StockUpdate{OfferID: id, Stock: 0})
		}
	}
	return stocks, nil
}

// BuildPriceUpdates собирает цены для строк фида, чей код есть в снимке
// каталога. Для артикулов без строки в фиде цена не синтезируется.
// Повторный код в фиде игнорируется, цена на артикул уходит одна.
func BuildPriceUpdates(feed []supplier.Record, offerIDs []string) ([]models.PriceUpdate, error) {
	remaining := make(map[string]struct{}, len(offerIDs))
	for _, id := range offerIDs {
		remaining[id] = struct{}{}
	}

	var prices []models.PriceUpdate
	for _, record := range feed {
		if _, ok := remaining[record.Code]; !ok {
			continue
		}
		price, err := NormalizePrice(record.Price)
		if err != nil {
			var priceErr *MalformedPriceError
			if errors.As(err, &priceErr) {
				priceErr.Code = record.Code
			}
			return nil, err
		}
		prices = append(prices, models.PriceUpdate{
			AutoActionEnabled: "UNKNOWN",
			CurrencyCode:      "RUB",
			OfferID:           record.Code,
			OldPrice:          "0",
			Price:             price,
		})
		delete(remaining, record.Code)
	}
	return prices, nil
}

func mapQuantity(record supplier.Record) (int, error) {
	switch record.Quantity {
	case overstockQuantity:
		return overstockValue, nil
	case lastUnitQuantity:
		return 0, nil
	}
	stock, err := strconv.Atoi(record.Quantity)
	if err != nil || stock < 0 {
		return 0, &MalformedQuantityError{Code: record.Code, Quantity: record.Quantity}
	}
	return stock, nil
}

// NormalizePrice приводит цену из фида к строке из одних цифр:
// отбрасывает дробную часть и вычищает разделители разрядов с валютой.
// "5'990.00 руб." -> "5990".
func NormalizePrice(raw string) (string, error) {
	integerPart, _, _ := strings.Cut(raw, ".")
	var digits strings.Builder
	for _, r := range integerPart {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return "", &MalformedPriceError{Price: raw}
	}
	return digits.String(), nil
}

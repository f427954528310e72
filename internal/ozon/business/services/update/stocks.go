package update

import (
	"context"
	"io"

	"golang.org/x/time/rate"

	"ozonmarket_api/internal/ozon/business/models"
	"ozonmarket_api/internal/ozon/business/models/dto/request"
	"ozonmarket_api/internal/ozon/business/services"
)

const stockImportEndpoint = "/v1/product/import/stocks"

type StockUpdateService struct {
	*Service
}

func NewStockUpdateService(baseURL string, limiter *rate.Limiter, auth services.AuthEngine, writer io.Writer) *StockUpdateService {
	return &StockUpdateService{
		Service: newService(baseURL, limiter, auth, writer, "[StockUpdateService]"),
	}
}

// Submit отправляет один пакет остатков.
func (s *StockUpdateService) Submit(ctx context.Context, batch []models.StockUpdate) error {
	_, err := s.uploadBatch(ctx, stockImportEndpoint, request.StocksUpload{Stocks: batch})
	if err != nil {
		return err
	}
	s.log.Log("Submitted %d stocks", len(batch))
	return nil
}

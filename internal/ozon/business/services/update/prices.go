package update

import (
	"context"
	"io"

	"golang.org/x/time/rate"

	"ozonmarket_api/internal/ozon/business/models"
	"ozonmarket_api/internal/ozon/business/models/dto/request"
	"ozonmarket_api/internal/ozon/business/services"
)

const priceImportEndpoint = "/v1/product/import/prices"

type PriceUpdateService struct {
	*Service
}

func NewPriceUpdateService(baseURL string, limiter *rate.Limiter, auth services.AuthEngine, writer io.Writer) *PriceUpdateService {
	return &PriceUpdateService{
		Service: newService(baseURL, limiter, auth, writer, "[PriceUpdateService]"),
	}
}

// Submit отправляет один пакет цен.
func (s *PriceUpdateService) Submit(ctx context.Context, batch []models.PriceUpdate) error {
	_, err := s.uploadBatch(ctx, priceImportEndpoint, request.PricesUpload{Prices: batch})
	if err != nil {
		return err
	}
	s.log.Log("Submitted %d prices", len(batch))
	return nil
}

package get

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"ozonmarket_api/internal/ozon/business/models/dto/request"
	"ozonmarket_api/internal/ozon/business/models/dto/response"
	"ozonmarket_api/internal/ozon/business/services"
	"ozonmarket_api/metrics"
	"ozonmarket_api/pkg/logger"
)

const productListEndpoint = "/v2/product/list"

// ProductService -- сервис по работе со списком товаров магазина.
type ProductService struct {
	client    *http.Client
	baseURL   string
	pageLimit int
	limiter   *rate.Limiter
	auth      services.AuthEngine
	log       logger.Logger
}

func NewProductService(baseURL string, pageLimit int, limiter *rate.Limiter, auth services.AuthEngine, writer io.Writer) *ProductService {
	return &ProductService{
		client:    &http.Client{Timeout: 30 * time.Second},
		baseURL:   baseURL,
		pageLimit: pageLimit,
		limiter:   limiter,
		auth:      auth,
		log:       logger.NewLogger(writer, "[ProductService]"),
	}
}

// GetProductPage запрашивает одну страницу списка товаров начиная с
// курсора lastID.
func (s *ProductService) GetProductPage(ctx context.Context, lastID string) (*response.ProductListResult, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	requestBody, err := json.Marshal(request.NewProductList(lastID, s.pageLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+productListEndpoint, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	s.auth.SetApiKey(req)

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	metrics.RecordRequest(http.MethodPost, productListEndpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &services.APIError{
			Endpoint: productListEndpoint,
			Status:   resp.StatusCode,
			Message:  string(body),
		}
	}

	var listResponse response.ProductListResponse
	if err := json.NewDecoder(resp.Body).Decode(&listResponse); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &listResponse.Result, nil
}

// GetOfferIDs выкачивает артикулы всех товаров магазина, листая курсор
// last_id до тех пор, пока число полученных товаров не сравняется с
// total. Страница без новых товаров при недостигнутом total -- признак
// зависшего курсора, останавливаемся с ошибкой вместо вечного цикла.
func (s *ProductService) GetOfferIDs(ctx context.Context) ([]string, error) {
	var offerIDs []string
	lastID := ""
	for {
		page, err := s.GetProductPage(ctx, lastID)
		if err != nil {
			return nil, err
		}
		if len(page.Items) == 0 && len(offerIDs) < page.Total {
			return nil, &services.APIError{
				Endpoint: productListEndpoint,
				Message: fmt.Sprintf(
					"pagination stalled: got %d of %d items and an empty page (last_id=%q)",
					len(offerIDs), page.Total, lastID,
				),
			}
		}
		for _, item := range page.Items {
			offerIDs = append(offerIDs, item.OfferID)
		}
		lastID = page.LastID
		if len(offerIDs) >= page.Total {
			break
		}
	}
	s.log.Log("Fetched %d offer ids", len(offerIDs))
	return offerIDs, nil
}

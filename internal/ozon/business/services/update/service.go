package update

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"ozonmarket_api/internal/ozon/business/models/dto/response"
	"ozonmarket_api/internal/ozon/business/services"
	"ozonmarket_api/metrics"
	"ozonmarket_api/pkg/logger"
)

// Service -- общая часть сервисов выгрузки: один POST на один заранее
// нарезанный пакет. Размер пакета сервис не проверяет, это зона
// ответственности вызывающего.
type Service struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
	auth    services.AuthEngine
	log     logger.Logger
}

func newService(baseURL string, limiter *rate.Limiter, auth services.AuthEngine, writer io.Writer, logPrefix string) *Service {
	return &Service{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: baseURL,
		limiter: limiter,
		auth:    auth,
		log:     logger.NewLogger(writer, logPrefix),
	}
}

func (s *Service) uploadBatch(ctx context.Context, endpoint string, payload interface{}) (*response.UploadResponse, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	requestBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+endpoint, bytes.NewBuffer(requestBody))
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
	metrics.RecordRequest(http.MethodPost, endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &services.APIError{
			Endpoint: endpoint,
			Status:   resp.StatusCode,
			Message:  string(body),
		}
	}

	var uploadResponse response.UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploadResponse); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &uploadResponse, nil
}

package update

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"ozonmarket_api/internal/ozon/business/models"
	"ozonmarket_api/internal/ozon/business/models/dto/request"
	"ozonmarket_api/internal/ozon/business/services"
)

func testAuth() services.AuthEngine {
	return services.NewHeaderAuth("test-client", "test-key")
}

func TestStockSubmit(t *testing.T) {
	var got request.StocksUpload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/product/import/stocks", r.URL.Path)
		assert.Equal(t, "test-client", r.Header.Get("Client-Id"))
		assert.Equal(t, "test-key", r.Header.Get("Api-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"result":[{"offer_id":"A","updated":true,"errors":[]}]}`))
	}))
	defer server.Close()

	service := NewStockUpdateService(server.URL, rate.NewLimiter(rate.Inf, 1), testAuth(), io.Discard)
	batch := []models.StockUpdate{{OfferID: "A", Stock: 100}, {OfferID: "B", Stock: 0}}
	require.NoError(t, service.Submit(context.Background(), batch))
	assert.Equal(t, batch, got.Stocks)
}

func TestPriceSubmit(t *testing.T) {
	var got request.PricesUpload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/product/import/prices", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"result":[{"offer_id":"A","updated":true,"errors":[]}]}`))
	}))
	defer server.Close()

	service := NewPriceUpdateService(server.URL, rate.NewLimiter(rate.Inf, 1), testAuth(), io.Discard)
	batch := []models.PriceUpdate{{
		AutoActionEnabled: "UNKNOWN",
		CurrencyCode:      "RUB",
		OfferID:           "A",
		OldPrice:          "0",
		Price:             "5990",
	}}
	require.NoError(t, service.Submit(context.Background(), batch))
	assert.Equal(t, batch, got.Prices)
}

func TestSubmitNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"too many items"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	service := NewPriceUpdateService(server.URL, rate.NewLimiter(rate.Inf, 1), testAuth(), io.Discard)
	err := service.Submit(context.Background(), []models.PriceUpdate{{OfferID: "A"}})
	var apiErr *services.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}

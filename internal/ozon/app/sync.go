package app

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"ozonmarket_api/config/values"
	"ozonmarket_api/internal/ozon/business/models"
	"ozonmarket_api/internal/ozon/business/services/get"
	"ozonmarket_api/internal/ozon/business/services/reconcile"
	"ozonmarket_api/internal/ozon/business/services/update"
	supplier "ozonmarket_api/internal/supplier/models"
	"ozonmarket_api/metrics"
	"ozonmarket_api/pkg/business/service/batch"
	"ozonmarket_api/pkg/logger"
)

// FeedLoader отдаёт строки остатков поставщика; где он их берёт --
// не забота синхронизации.
type FeedLoader interface {
	Load(ctx context.Context) ([]supplier.Record, error)
}

// SyncServer гоняет полный цикл: снимок каталога -> фид поставщика ->
// выгрузка остатков -> выгрузка цен. Ретраев нет: упавший пакет
// останавливает свою фазу, уже отправленные пакеты остаются на сервере.
type SyncServer struct {
	products *get.ProductService
	stocks   *update.StockUpdateService
	prices   *update.PriceUpdateService
	feed     FeedLoader
	values   values.OzonValues
	Metrics  *metrics.SyncMetrics
	log      logger.Logger
}

func NewSyncServer(
	products *get.ProductService,
	stocks *update.StockUpdateService,
	prices *update.PriceUpdateService,
	feed FeedLoader,
	ozonValues values.OzonValues,
	writer io.Writer,
) *SyncServer {
	return &SyncServer{
		products: products,
		stocks:   stocks,
		prices:   prices,
		feed:     feed,
		values:   ozonValues,
		Metrics:  &metrics.SyncMetrics{},
		log:      logger.NewLogger(writer, "[SyncServer]"),
	}
}

// Run выполняет одну полную синхронизацию.
func (s *SyncServer) Run(ctx context.Context) error {
	runID := uuid.NewString()
	runLog := s.log.WithPrefix("run=" + runID[:8])
	runLog.Log("Starting full sync")

	offerIDs, err := s.products.GetOfferIDs(ctx)
	if err != nil {
		return fmt.Errorf("fetching catalog snapshot: %w", err)
	}

	feed, err := s.feed.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading supplier feed: %w", err)
	}
	s.Metrics.FeedRows.Store(int32(len(feed)))

	// Обновить остатки
	stocks, err := reconcile.BuildStockUpdates(feed, offerIDs)
	if err != nil {
		return fmt.Errorf("building stock updates: %w", err)
	}
	if err := s.submitStocks(ctx, stocks); err != nil {
		return err
	}

	// Поменять цены
	prices, err := reconcile.BuildPriceUpdates(feed, offerIDs)
	if err != nil {
		return fmt.Errorf("building price updates: %w", err)
	}
	if err := s.submitPrices(ctx, prices, s.values.PriceBatchSize); err != nil {
		return err
	}

	runLog.Log("Full sync done: %d offers, %d stocks, %d prices",
		len(offerIDs), len(stocks), len(prices))
	return nil
}

// UploadStocks -- отдельная выгрузка остатков: сервис сам берёт снимок
// каталога. Возвращает ненулевые остатки и полный список.
func (s *SyncServer) UploadStocks(ctx context.Context, feed []supplier.Record) ([]models.StockUpdate, []models.StockUpdate, error) {
	offerIDs, err := s.products.GetOfferIDs(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching catalog snapshot: %w", err)
	}
	stocks, err := reconcile.BuildStockUpdates(feed, offerIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("building stock updates: %w", err)
	}
	if err := s.submitStocks(ctx, stocks); err != nil {
		return nil, nil, err
	}

	var notEmpty []models.StockUpdate
	for _, stock := range stocks {
		if stock.Stock != 0 {
			notEmpty = append(notEmpty, stock)
		}
	}
	return notEmpty, stocks, nil
}

// UploadPrices -- отдельная выгрузка цен. Пакет здесь исторически 1000,
// а не 900 как при полной синхронизации.
func (s *SyncServer) UploadPrices(ctx context.Context, feed []supplier.Record) ([]models.PriceUpdate, error) {
	offerIDs, err := s.products.GetOfferIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog snapshot: %w", err)
	}
	prices, err := reconcile.BuildPriceUpdates(feed, offerIDs)
	if err != nil {
		return nil, fmt.Errorf("building price updates: %w", err)
	}
	if err := s.submitPrices(ctx, prices, s.values.PriceUploadBatchSize); err != nil {
		return nil, err
	}
	return prices, nil
}

func (s *SyncServer) submitStocks(ctx context.Context, stocks []models.StockUpdate) error {
	chunks, err := batch.Chunk(stocks, s.values.StockBatchSize)
	if err != nil {
		return fmt.Errorf("chunking stock updates: %w", err)
	}
	for chunk := range chunks {
		if err := s.stocks.Submit(ctx, chunk); err != nil {
			s.Metrics.FailedBatches.Add(1)
			return fmt.Errorf("submitting stock batch: %w", err)
		}
		s.Metrics.StocksSubmitted.Add(int32(len(chunk)))
	}
	return nil
}

func (s *SyncServer) submitPrices(ctx context.Context, prices []models.PriceUpdate, batchSize int) error {
	chunks, err := batch.Chunk(prices, batchSize)
	if err != nil {
		return fmt.Errorf("chunking price updates: %w", err)
	}
	for chunk := range chunks {
		if err := s.prices.Submit(ctx, chunk); err != nil {
			s.Metrics.FailedBatches.Add(1)
			return fmt.Errorf("submitting price batch: %w", err)
		}
		s.Metrics.PricesSubmitted.Add(int32(len(chunk)))
	}
	return nil
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"golang.org/x/time/rate"

	"ozonmarket_api/config"
	"ozonmarket_api/internal/ozon/app"
	"ozonmarket_api/internal/ozon/business/services"
	"ozonmarket_api/internal/ozon/business/services/get"
	"ozonmarket_api/internal/ozon/business/services/update"
	supplier "ozonmarket_api/internal/supplier/business"
	supplierpkg "ozonmarket_api/internal/supplier/pkg"
	"ozonmarket_api/metrics"
)

func main() {
	config.LoadEnv()

	creds := config.GetCredentials()
	auth := services.NewHeaderAuth(creds.ClientID, creds.SellerToken)
	if auth == nil {
		log.Print("CLIENT_ID and SELLER_TOKEN must be set")
		return
	}

	appConfig := config.DefaultConfig()
	if path := os.Getenv("APP_CONFIG"); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			log.Printf("Failed to load config %s: %s", path, err)
			return
		}
		appConfig = loaded
	}

	if addr := os.Getenv("METRICS_ADDR"); addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.MetricsHandler())
		go func() {
			if err := http.ListenAndServe(addr, mux); err != nil {
				log.Printf("Metrics server stopped: %s", err)
			}
		}()
	}

	ozonValues := appConfig.Ozon.OzonValues
	limiter := rate.NewLimiter(rate.Limit(ozonValues.RequestsPerSecond), ozonValues.RequestsPerSecond)
	writer := os.Stdout

	server := app.NewSyncServer(
		get.NewProductService(appConfig.Ozon.BaseURL, ozonValues.PageLimit, limiter, auth, writer),
		update.NewStockUpdateService(appConfig.Ozon.BaseURL, limiter, auth, writer),
		update.NewPriceUpdateService(appConfig.Ozon.BaseURL, limiter, auth, writer),
		supplier.NewFeedService(supplierpkg.NewHTTPFetcher(), appConfig.Supplier, writer),
		ozonValues,
		writer,
	)

	if err := server.Run(context.Background()); err != nil {
		switch app.ClassifyError(err) {
		case app.FailureTimeout:
			log.Print("Превышено время ожидания...")
		case app.FailureConnection:
			log.Printf("%s Ошибка соединения", err)
		default:
			log.Printf("%s ERROR_2", err)
		}
	}
}

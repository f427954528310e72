package values

type OzonValues struct {
	// Размер страницы пагинации /v2/product/list.
	PageLimit int `yaml:"page-limit"`
	// Размеры пакетов для выгрузки остатков и цен. Цены при полной
	// синхронизации уходят пакетами по 900, при отдельной выгрузке -- по
	// 1000; значения исторические, API принимает оба.
	StockBatchSize       int `yaml:"stock-batch-size"`
	PriceBatchSize       int `yaml:"price-batch-size"`
	PriceUploadBatchSize int `yaml:"price-upload-batch-size"`
	// Лимит запросов к seller API, запросов в секунду.
	RequestsPerSecond int `yaml:"requests-per-second"`
}

func DefaultOzonValues() OzonValues {
	return OzonValues{
		PageLimit:            1000,
		StockBatchSize:       100,
		PriceBatchSize:       900,
		PriceUploadBatchSize: 1000,
		RequestsPerSecond:    5,
	}
}

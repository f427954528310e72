package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"ozonmarket_api/config/values"
)

type OzonConfig struct {
	BaseURL    string            `yaml:"base_url"`
	OzonValues values.OzonValues `yaml:"default_values"`
}

type SupplierConfig struct {
	ArchiveURL string `yaml:"archive_url"`
	// Количество служебных строк перед строкой заголовка таблицы остатков.
	HeaderOffset   int    `yaml:"header_offset"`
	CodeColumn     string `yaml:"code_column"`
	QuantityColumn string `yaml:"quantity_column"`
	PriceColumn    string `yaml:"price_column"`
}

type AppConfig struct {
	Ozon     OzonConfig     `yaml:"ozon"`
	Supplier SupplierConfig `yaml:"supplier"`
}

func DefaultConfig() *AppConfig {
	return &AppConfig{
		Ozon: OzonConfig{
			BaseURL:    "https://api-seller.ozon.ru",
			OzonValues: values.DefaultOzonValues(),
		},
		Supplier: SupplierConfig{
			ArchiveURL:     "https://timeworld.ru/upload/files/ostatki.zip",
			HeaderOffset:   17,
			CodeColumn:     "Код",
			QuantityColumn: "Количество",
			PriceColumn:    "Цена",
		},
	}
}

func LoadConfig(filename string) (*AppConfig, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	config := DefaultConfig()
	if err := decoder.Decode(config); err != nil {
		return nil, err
	}
	return config, nil
}

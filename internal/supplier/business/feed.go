package business

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"ozonmarket_api/config"
	"ozonmarket_api/internal/supplier/models"
	"ozonmarket_api/internal/supplier/pkg"
	"ozonmarket_api/pkg/logger"
)

// FeedService скачивает архив остатков поставщика и разбирает таблицу
// в список записей. Файл целиком обрабатывается в памяти, на диск
// ничего не пишется.
type FeedService struct {
	fetcher pkg.Fetcher
	cfg     config.SupplierConfig
	log     logger.Logger
}

func NewFeedService(fetcher pkg.Fetcher, cfg config.SupplierConfig, writer io.Writer) *FeedService {
	return &FeedService{
		fetcher: fetcher,
		cfg:     cfg,
		log:     logger.NewLogger(writer, "[FeedService]"),
	}
}

func (s *FeedService) Load(ctx context.Context) ([]models.Record, error) {
	body, err := s.fetcher.Fetch(ctx, s.cfg.ArchiveURL)
	if err != nil {
		return nil, fmt.Errorf("failed to download supplier archive: %w", err)
	}
	defer body.Close()

	archiveBytes, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read supplier archive: %w", err)
	}

	archive, err := zip.NewReader(bytes.NewReader(archiveBytes), int64(len(archiveBytes)))
	if err != nil {
		return nil, fmt.Errorf("failed to open supplier archive: %w", err)
	}

	remnants, err := s.findRemnantsFile(archive)
	if err != nil {
		return nil, err
	}

	fileReader, err := remnants.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", remnants.Name, err)
	}
	defer fileReader.Close()

	records, err := s.parseRemnants(fileReader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", remnants.Name, err)
	}

	s.log.Log("Loaded %d supplier records from %s", len(records), remnants.Name)
	return records, nil
}

// findRemnantsFile ищет в архиве файл ostatki*; если такого нет, берёт
// первый попавшийся файл.
func (s *FeedService) findRemnantsFile(archive *zip.Reader) (*zip.File, error) {
	var fallback *zip.File
	for _, file := range archive.File {
		if file.FileInfo().IsDir() {
			continue
		}
		if strings.HasPrefix(strings.ToLower(file.Name), "ostatki") {
			return file, nil
		}
		if fallback == nil {
			fallback = file
		}
	}
	if fallback == nil {
		return nil, fmt.Errorf("supplier archive is empty")
	}
	return fallback, nil
}

// parseRemnants читает таблицу остатков, декодируя из Windows-1251.
// Первые HeaderOffset строк служебные, за ними идёт строка заголовка.
func (s *FeedService) parseRemnants(reader io.Reader) ([]models.Record, error) {
	decoder := transform.NewReader(reader, charmap.Windows1251.NewDecoder())
	csvReader := csv.NewReader(decoder)
	csvReader.Comma = ';'
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	allRows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv read error: %w", err)
	}
	if len(allRows) <= s.cfg.HeaderOffset {
		return nil, fmt.Errorf("remnants table is empty")
	}

	header := allRows[s.cfg.HeaderOffset]
	codeIdx := indexOf(header, s.cfg.CodeColumn)
	quantityIdx := indexOf(header, s.cfg.QuantityColumn)
	priceIdx := indexOf(header, s.cfg.PriceColumn)
	if codeIdx < 0 || quantityIdx < 0 || priceIdx < 0 {
		return nil, fmt.Errorf(
			"header row does not contain columns %q, %q, %q: %v",
			s.cfg.CodeColumn, s.cfg.QuantityColumn, s.cfg.PriceColumn, header,
		)
	}

	var records []models.Record
	for _, row := range allRows[s.cfg.HeaderOffset+1:] {
		code := cell(row, codeIdx)
		if code == "" {
			continue
		}
		records = append(records, models.Record{
			Code:     code,
			Quantity: cell(row, quantityIdx),
			Price:    cell(row, priceIdx),
		})
	}
	return records, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func indexOf(slice []string, str string) int {
	for i, s := range slice {
		if strings.TrimSpace(s) == str {
			return i
		}
	}
	return -1
}

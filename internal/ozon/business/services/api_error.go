package services

import "fmt"

// APIError -- ответ seller API вне 2xx либо нарушение протокола
// (например, зависший курсор пагинации). Транспортные ошибки до него
// не доходят и отдаются как есть.
type APIError struct {
	Endpoint string
	Status   int
	Message  string
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("ozon api %s: status %d: %s", e.Endpoint, e.Status, e.Message)
	}
	return fmt.Sprintf("ozon api %s: %s", e.Endpoint, e.Message)
}

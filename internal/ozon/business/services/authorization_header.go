package services

import (
	"net/http"
)

type AuthEngine interface {
	GetApiKey() string
	SetApiKey(request *http.Request)
}

// HeaderAuth -- авторизация Ozon seller API парой заголовков
// Client-Id / Api-Key.
type HeaderAuth struct {
	clientID string
	apiKey   string
}

func (h *HeaderAuth) GetApiKey() string {
	return h.apiKey
}

func (h *HeaderAuth) SetApiKey(request *http.Request) {
	request.Header.Set("Client-Id", h.clientID)
	request.Header.Set("Api-Key", h.apiKey)
}

func NewHeaderAuth(clientID, apiKey string) *HeaderAuth {
	if clientID == "" || apiKey == "" {
		return nil
	}
	return &HeaderAuth{clientID: clientID, apiKey: apiKey}
}

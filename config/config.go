package config

import (
	"os"

	"github.com/joho/godotenv"
)

type OzonCredentials struct {
	ClientID    string
	SellerToken string
}

// LoadEnv подхватывает .env, если он есть. Отсутствие файла не ошибка:
// в контейнере переменные приходят из окружения.
func LoadEnv(envPath ...string) {
	if len(envPath) > 0 {
		_ = godotenv.Load(envPath[0])
		return
	}
	_ = godotenv.Load()
}

func GetCredentials() *OzonCredentials {
	return &OzonCredentials{
		ClientID:    getEnv("CLIENT_ID", ""),
		SellerToken: getEnv("SELLER_TOKEN", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

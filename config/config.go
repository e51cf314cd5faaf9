package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type Config struct {
	EndpointURL    string        // адрес эндпоинта детекции
	OutputDir      string        // корневой каталог артефактов
	RequestTimeout time.Duration // таймаут одного запроса к сервису
	Throttle       time.Duration // пауза между обращениями к сервису
	Workers        int           // размер пула воркеров батча
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		EndpointURL: getEnv("DETECT_API_URL", "http://127.0.0.1:8888/predict"),
		OutputDir:   getEnv("OUTPUT_DIR", "data/processed/batch_results"),
	}

	timeout, err := time.ParseDuration(getEnv("REQUEST_TIMEOUT", "30s"))
	if err != nil {
		return nil, errors.Wrap(err, "parse REQUEST_TIMEOUT")
	}
	cfg.RequestTimeout = timeout

	throttle, err := time.ParseDuration(getEnv("BATCH_THROTTLE", "100ms"))
	if err != nil {
		return nil, errors.Wrap(err, "parse BATCH_THROTTLE")
	}
	cfg.Throttle = throttle

	workers, err := strconv.Atoi(getEnv("BATCH_WORKERS", "1"))
	if err != nil {
		return nil, errors.Wrap(err, "parse BATCH_WORKERS")
	}
	if workers < 1 {
		return nil, errors.Errorf("BATCH_WORKERS must be positive, got %d", workers)
	}
	cfg.Workers = workers

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

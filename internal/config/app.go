package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// AppConfig собирает все настройки приложения из переменных окружения
type AppConfig struct {
	LLM     LLMConfig
	Storage StorageConfig
	Access  AccessConfig
	Server  ServerConfig

	// CrewConfigPath пустой - используется встроенный crew.yaml
	CrewConfigPath string
}

type StorageConfig struct {
	Backend         string
	SpreadsheetID   string
	CredentialsFile string
	UsageSheet      string
	AccessSheet     string
	CSVDir          string

	// AccessEmails заполняет список доступа memory backend
	AccessEmails []string
}

type AccessConfig struct {
	CacheTTL time.Duration
}

type ServerConfig struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

const (
	BackendSheets = "sheets"
	BackendCSV    = "csv"
	BackendMemory = "memory"
)

func LoadAppConfig() *AppConfig {
	return &AppConfig{
		LLM: *LoadLLMConfig(),
		Storage: StorageConfig{
			Backend:         getEnv("STORAGE_BACKEND", BackendSheets),
			SpreadsheetID:   getEnv("SPREADSHEET_ID", ""),
			CredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", ""),
			UsageSheet:      getEnv("USAGE_SHEET", "Sheet1"),
			AccessSheet:     getEnv("ACCESS_SHEET", "Sheet2"),
			CSVDir:          getEnv("CSV_DIR", "data"),
			AccessEmails:    getEnvAsList("ACCESS_EMAILS"),
		},
		Access: AccessConfig{
			CacheTTL: getEnvAsDuration("ACCESS_CACHE_TTL", 0),
		},
		Server: ServerConfig{
			Port:            getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 10*time.Minute),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		CrewConfigPath: getEnv("CREW_CONFIG", ""),
	}
}

// Validate проверяет настройки хранилища; ключ LLM приходит из формы и здесь не проверяется
func (c *AppConfig) Validate() error {
	switch c.Storage.Backend {
	case BackendSheets:
		if c.Storage.SpreadsheetID == "" {
			return fmt.Errorf("SPREADSHEET_ID обязателен для backend sheets")
		}
		if c.Storage.CredentialsFile == "" {
			return fmt.Errorf("GOOGLE_CREDENTIALS_FILE обязателен для backend sheets")
		}
	case BackendCSV:
		if c.Storage.CSVDir == "" {
			return fmt.Errorf("CSV_DIR обязателен для backend csv")
		}
	case BackendMemory:
		if len(c.Storage.AccessEmails) == 0 {
			return fmt.Errorf("ACCESS_EMAILS обязателен для backend memory")
		}
	default:
		return fmt.Errorf("неизвестный STORAGE_BACKEND %q", c.Storage.Backend)
	}

	if c.Server.Port <= 0 {
		return fmt.Errorf("SERVER_PORT должен быть больше 0")
	}

	return c.LLM.Validate()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список через запятую, пустые элементы отбрасываются
func getEnvAsList(key string) []string {
	var list []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

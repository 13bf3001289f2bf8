package config

import (
	"fmt"
	"time"
)

// DefaultModel - модель Llama 3 на Groq, которой пользуется приложение
const DefaultModel = "llama3-70b-8192"

const DefaultBaseURL = "https://api.groq.com/openai/v1"

type LLMConfig struct {
	Model       string
	BaseURL     string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// LoadLLMConfig загружает конфигурацию Groq из переменных окружения.
// API ключ сюда не входит: пользователь вводит его в форме.
func LoadLLMConfig() *LLMConfig {
	return &LLMConfig{
		Model:       getEnv("GROQ_MODEL", DefaultModel),
		BaseURL:     getEnv("GROQ_BASE_URL", DefaultBaseURL),
		MaxTokens:   getEnvAsInt("GROQ_MAX_TOKENS", 4000),
		Temperature: getEnvAsFloat("GROQ_TEMPERATURE", 0.7),
		Timeout:     getEnvAsDuration("GROQ_TIMEOUT", 120*time.Second),
	}
}

// Validate проверяет корректность конфигурации
func (c *LLMConfig) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("GROQ_MODEL не может быть пустым")
	}

	if c.BaseURL == "" {
		return fmt.Errorf("GROQ_BASE_URL не может быть пустым")
	}

	if c.MaxTokens <= 0 {
		return fmt.Errorf("GROQ_MAX_TOKENS должен быть больше 0")
	}

	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("GROQ_TEMPERATURE должна быть от 0 до 2")
	}

	return nil
}

// GetModelInfo возвращает информацию о используемой модели
func (c *LLMConfig) GetModelInfo() map[string]interface{} {
	return map[string]interface{}{
		"model":       c.Model,
		"max_tokens":  c.MaxTokens,
		"temperature": c.Temperature,
		"provider":    "Groq",
	}
}

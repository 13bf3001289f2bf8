package interviewer

import (
	"context"

	"github.com/DriesFaems/interview-generator-students/internal/api"
	"github.com/DriesFaems/interview-generator-students/internal/config"
	"github.com/DriesFaems/interview-generator-students/internal/crew"
	"github.com/DriesFaems/interview-generator-students/internal/metrics"
)

// NewGroqFactory возвращает фабрику клиентов Groq с общей конфигурацией модели
func NewGroqFactory(cfg config.LLMConfig) LLMFactory {
	return func(apiKey string) crew.LLM {
		return api.NewClient(apiKey, cfg)
	}
}

// instrumentedLLM считает вызовы модели
type instrumentedLLM struct {
	next    crew.LLM
	metrics *metrics.Metrics
}

func (l *instrumentedLLM) Complete(ctx context.Context, messages []api.Message) (string, error) {
	out, err := l.next.Complete(ctx, messages)
	l.metrics.IncrementAPICall(err == nil)
	return out, err
}

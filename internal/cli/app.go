package cli

import (
	"context"
	"fmt"

	"github.com/DriesFaems/interview-generator-students/internal/access"
	"github.com/DriesFaems/interview-generator-students/internal/config"
	"github.com/DriesFaems/interview-generator-students/internal/interviewer"
	"github.com/DriesFaems/interview-generator-students/internal/metrics"
	"github.com/DriesFaems/interview-generator-students/internal/storage"
)

// buildService собирает сервис интервьюера из переменных окружения
func buildService(ctx context.Context) (*interviewer.Service, *config.AppConfig, error) {
	appCfg := config.LoadAppConfig()
	if err := appCfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	crewCfg, err := config.Load(appCfg.CrewConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load crew config: %w", err)
	}

	store, err := storage.Open(ctx, appCfg.Storage)
	if err != nil {
		return nil, nil, err
	}

	gate := access.NewGate(store, appCfg.Access.CacheTTL)
	svc := interviewer.New(gate, store, crewCfg, interviewer.NewGroqFactory(appCfg.LLM), metrics.NewMetrics())

	return svc, appCfg, nil
}

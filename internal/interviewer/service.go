package interviewer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/DriesFaems/interview-generator-students/internal/access"
	"github.com/DriesFaems/interview-generator-students/internal/config"
	"github.com/DriesFaems/interview-generator-students/internal/crew"
	"github.com/DriesFaems/interview-generator-students/internal/metrics"
	"github.com/DriesFaems/interview-generator-students/internal/prompts"
	"github.com/DriesFaems/interview-generator-students/internal/storage"
)

var (
	ErrEmptyEmail    = errors.New("email address is empty")
	ErrAccessDenied  = errors.New(access.DeniedMessage)
	ErrMissingAPIKey = errors.New("please provide your Groq API key")
)

// Request - поля формы одного запуска интервью
type Request struct {
	Email           string
	APIKey          string
	Painpoint       string
	CustomerProfile string
	PriorLearnings  string
}

// Result - выводы всех задач в порядке выполнения
type Result struct {
	RunID     string
	Email     string
	StartedAt time.Time
	Duration  time.Duration
	Outputs   []crew.TaskOutput
}

// LLMFactory создает модель для ключа, введенного пользователем
type LLMFactory func(apiKey string) crew.LLM

// Service представляет сервис интервьюера
type Service struct {
	gate    *access.Gate
	usage   storage.UsageLogger
	crewCfg *config.Config
	newLLM  LLMFactory
	metrics *metrics.Metrics
	now     func() time.Time
}

// New создает новый сервис интервьюера
func New(gate *access.Gate, usage storage.UsageLogger, crewCfg *config.Config, newLLM LLMFactory, m *metrics.Metrics) *Service {
	if m == nil {
		m = metrics.NewMetrics()
	}
	return &Service{
		gate:    gate,
		usage:   usage,
		crewCfg: crewCfg,
		newLLM:  newLLM,
		metrics: m,
		now:     time.Now,
	}
}

// Metrics возвращает счетчики сервиса
func (s *Service) Metrics() *metrics.Metrics {
	return s.metrics
}

// CheckAccess проверяет адрес без запуска интервью
func (s *Service) CheckAccess(ctx context.Context, email string) (access.Decision, error) {
	decision, err := s.gate.Check(ctx, email)
	if err != nil {
		return decision, err
	}
	if decision == access.DecisionDenied {
		s.metrics.IncrementAccessDenied()
		log.Printf("Доступ отклонен: %s", access.Normalize(email))
	}
	return decision, nil
}

// Start проверяет доступ, пишет строку в журнал и запускает команду агентов.
// Без доступа журнал и модель не трогаются.
func (s *Service) Start(ctx context.Context, req Request) (*Result, error) {
	decision, err := s.CheckAccess(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	switch decision {
	case access.DecisionEmpty:
		return nil, ErrEmptyEmail
	case access.DecisionDenied:
		return nil, ErrAccessDenied
	}

	if req.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	email := access.Normalize(req.Email)
	startedAt := s.now()

	entry := storage.UsageEntry{
		Timestamp:       startedAt,
		User:            email,
		Action:          storage.ActionStartInterview,
		Painpoint:       req.Painpoint,
		CustomerProfile: req.CustomerProfile,
	}
	if err := s.usage.AppendUsage(ctx, entry); err != nil {
		return nil, fmt.Errorf("append usage row: %w", err)
	}

	runID := uuid.New().String()
	s.metrics.IncrementInterviewsStarted()
	log.Printf("Начинаю интервью %s для %s", runID, email)

	params := prompts.Params{
		Painpoint:       req.Painpoint,
		CustomerProfile: req.CustomerProfile,
		PriorLearnings:  req.PriorLearnings,
	}

	llm := &instrumentedLLM{next: s.newLLM(req.APIKey), metrics: s.metrics}
	c, err := prompts.BuildCrew(s.crewCfg, llm, params)
	if err != nil {
		s.metrics.IncrementInterviewsFailed()
		return nil, fmt.Errorf("build crew: %w", err)
	}
	c.OnTaskDone = func(out crew.TaskOutput) {
		s.metrics.IncrementTasksCompleted()
		log.Printf("Интервью %s: задача %s готова (%d символов)", runID, out.Task, len(out.Raw))
	}

	outputs, err := c.Kickoff(ctx)
	if err != nil {
		s.metrics.IncrementInterviewsFailed()
		log.Printf("Интервью %s прервано: %v", runID, err)
		return nil, fmt.Errorf("run interview: %w", err)
	}

	s.metrics.IncrementInterviewsCompleted()

	return &Result{
		RunID:     runID,
		Email:     email,
		StartedAt: startedAt,
		Duration:  s.now().Sub(startedAt),
		Outputs:   outputs,
	}, nil
}

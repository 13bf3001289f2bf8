package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu                  sync.RWMutex
	interviewsStarted   int64
	interviewsCompleted int64
	interviewsFailed    int64
	accessDenied        int64
	tasksCompleted      int64
	apiCallsTotal       int64
	apiCallsSuccessful  int64
	lastUpdateTime      time.Time
}

// Snapshot - копия счетчиков для /metrics
type Snapshot struct {
	InterviewsStarted   int64     `json:"interviews_started"`
	InterviewsCompleted int64     `json:"interviews_completed"`
	InterviewsFailed    int64     `json:"interviews_failed"`
	AccessDenied        int64     `json:"access_denied"`
	TasksCompleted      int64     `json:"tasks_completed"`
	APICallsTotal       int64     `json:"api_calls_total"`
	APICallsSuccessful  int64     `json:"api_calls_successful"`
	LastUpdateTime      time.Time `json:"last_update_time"`
}

func NewMetrics() *Metrics {
	return &Metrics{
		lastUpdateTime: time.Now(),
	}
}

func (m *Metrics) IncrementInterviewsStarted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interviewsStarted++
	m.lastUpdateTime = time.Now()
}

func (m *Metrics) IncrementInterviewsCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interviewsCompleted++
	m.lastUpdateTime = time.Now()
}

func (m *Metrics) IncrementInterviewsFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interviewsFailed++
	m.lastUpdateTime = time.Now()
}

func (m *Metrics) IncrementAccessDenied() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accessDenied++
	m.lastUpdateTime = time.Now()
}

func (m *Metrics) IncrementTasksCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasksCompleted++
	m.lastUpdateTime = time.Now()
}

func (m *Metrics) IncrementAPICall(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.apiCallsTotal++
	if success {
		m.apiCallsSuccessful++
	}
	m.lastUpdateTime = time.Now()
}

func (m *Metrics) GetSnapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{
		InterviewsStarted:   m.interviewsStarted,
		InterviewsCompleted: m.interviewsCompleted,
		InterviewsFailed:    m.interviewsFailed,
		AccessDenied:        m.accessDenied,
		TasksCompleted:      m.tasksCompleted,
		APICallsTotal:       m.apiCallsTotal,
		APICallsSuccessful:  m.apiCallsSuccessful,
		LastUpdateTime:      m.lastUpdateTime,
	}
}

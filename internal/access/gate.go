// Package access проверяет email по списку доступа из таблицы.
package access

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/DriesFaems/interview-generator-students/internal/storage"
)

type Decision int

const (
	// DecisionEmpty - адрес еще не введен, ничего не показываем
	DecisionEmpty Decision = iota
	DecisionDenied
	DecisionGranted
)

// DeniedMessage показывается под полем ввода
const DeniedMessage = "Access code invalid; Please enter the correct WHU email address"

func (d Decision) String() string {
	switch d {
	case DecisionEmpty:
		return "empty"
	case DecisionDenied:
		return "denied"
	case DecisionGranted:
		return "granted"
	default:
		return "unknown"
	}
}

// Gate сверяет адрес со списком доступа. При ttl > 0 список кешируется.
type Gate struct {
	source storage.AllowlistReader
	ttl    time.Duration
	now    func() time.Time

	mu       sync.Mutex
	cached   map[string]struct{}
	loadedAt time.Time
}

func NewGate(source storage.AllowlistReader, ttl time.Duration) *Gate {
	return &Gate{
		source: source,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Normalize приводит адрес к виду, в котором он сравнивается со списком
func Normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Check не обращается к таблице для пустого ввода
func (g *Gate) Check(ctx context.Context, email string) (Decision, error) {
	email = Normalize(email)
	if email == "" {
		return DecisionEmpty, nil
	}

	allowed, err := g.allowlist(ctx)
	if err != nil {
		return DecisionDenied, err
	}

	if _, ok := allowed[email]; !ok {
		return DecisionDenied, nil
	}
	return DecisionGranted, nil
}

// Invalidate сбрасывает кеш списка
func (g *Gate) Invalidate() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cached = nil
}

func (g *Gate) allowlist(ctx context.Context) (map[string]struct{}, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.ttl > 0 && g.cached != nil && g.now().Sub(g.loadedAt) < g.ttl {
		return g.cached, nil
	}

	emails, err := g.source.ReadAllowlist(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения списка доступа: %w", err)
	}

	set := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		set[Normalize(e)] = struct{}{}
	}

	if g.ttl > 0 {
		g.cached = set
		g.loadedAt = g.now()
	}

	return set, nil
}

package crew

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DriesFaems/interview-generator-students/internal/api"
)

// scriptedLLM отвечает по порядку и запоминает присланные сообщения
type scriptedLLM struct {
	replies []string
	calls   [][]api.Message
	failAt  int
}

func (s *scriptedLLM) Complete(ctx context.Context, messages []api.Message) (string, error) {
	s.calls = append(s.calls, messages)
	if s.failAt > 0 && len(s.calls) == s.failAt {
		return "", errors.New("rate limited")
	}
	return s.replies[len(s.calls)-1], nil
}

func newCrew(llm LLM, n int) *Crew {
	agent := &Agent{Name: "a", Role: "Analyst", Goal: "find", Backstory: "expert", LLM: llm}
	c := &Crew{Agents: []*Agent{agent}, Process: Sequential}
	for i := 0; i < n; i++ {
		c.Tasks = append(c.Tasks, &Task{
			Name:           []string{"one", "two", "three"}[i],
			Description:    "do " + []string{"one", "two", "three"}[i],
			ExpectedOutput: "text",
			Agent:          agent,
		})
	}
	return c
}

func TestKickoff_Sequential(t *testing.T) {
	llm := &scriptedLLM{replies: []string{"Q1", "T2", "A3"}}
	c := newCrew(llm, 3)

	var done []string
	c.OnTaskDone = func(out TaskOutput) { done = append(done, out.Task) }

	outputs, err := c.Kickoff(context.Background())
	if err != nil {
		t.Fatalf("Kickoff failed: %v", err)
	}

	if len(outputs) != 3 || outputs[0].Raw != "Q1" || outputs[2].Raw != "A3" {
		t.Fatalf("Unexpected outputs %+v", outputs)
	}
	if strings.Join(done, ",") != "one,two,three" {
		t.Errorf("Unexpected callback order %v", done)
	}
	if c.Tasks[1].Output == nil || c.Tasks[1].Output.Raw != "T2" {
		t.Errorf("Expected task output to be recorded on the task")
	}

	// Третья задача видит выводы первых двух
	last := llm.calls[2][1].Content
	if !strings.Contains(last, "Q1") || !strings.Contains(last, "T2") {
		t.Errorf("Expected context from previous tasks, got %q", last)
	}
	if strings.Contains(llm.calls[0][1].Content, "context you're working with") {
		t.Errorf("First task must not carry context")
	}
	if llm.calls[0][0].Role != api.RoleSystem || !strings.Contains(llm.calls[0][0].Content, "Analyst") {
		t.Errorf("Expected system prompt with agent role, got %+v", llm.calls[0][0])
	}
}

func TestKickoff_StopsOnError(t *testing.T) {
	llm := &scriptedLLM{replies: []string{"Q1", "", ""}, failAt: 2}
	c := newCrew(llm, 3)

	outputs, err := c.Kickoff(context.Background())
	if err == nil || !strings.Contains(err.Error(), "task two") {
		t.Fatalf("Expected error from task two, got %v", err)
	}
	if len(outputs) != 1 || len(llm.calls) != 2 {
		t.Errorf("Expected to stop after failure, outputs=%d calls=%d", len(outputs), len(llm.calls))
	}
}

func TestKickoff_Validation(t *testing.T) {
	llm := &scriptedLLM{replies: []string{"x"}}

	empty := &Crew{}
	if _, err := empty.Kickoff(context.Background()); !errors.Is(err, ErrNoTasks) {
		t.Errorf("Expected ErrNoTasks, got %v", err)
	}

	stranger := newCrew(llm, 1)
	stranger.Tasks[0].Agent = &Agent{Name: "x", LLM: llm}
	if _, err := stranger.Kickoff(context.Background()); err == nil {
		t.Errorf("Expected error for agent outside the crew")
	}

	hier := newCrew(llm, 1)
	hier.Process = "hierarchical"
	if _, err := hier.Kickoff(context.Background()); err == nil {
		t.Errorf("Expected error for unsupported process")
	}

	if len(llm.calls) != 0 {
		t.Errorf("Invalid crews must not call the model")
	}
}

func TestKickoff_CanceledContext(t *testing.T) {
	llm := &scriptedLLM{replies: []string{"x"}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := newCrew(llm, 1).Kickoff(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

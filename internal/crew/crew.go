// Package crew запускает цепочку агентов над одной языковой моделью.
package crew

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DriesFaems/interview-generator-students/internal/api"
)

// LLM - всё, что нужно агенту от языковой модели
type LLM interface {
	Complete(ctx context.Context, messages []api.Message) (string, error)
}

// Agent - роль с целью и предысторией, привязанная к модели
type Agent struct {
	Name      string
	Role      string
	Goal      string
	Backstory string
	LLM       LLM
}

// Task - единица работы для агента
type Task struct {
	Name           string
	Title          string
	Description    string
	ExpectedOutput string
	Agent          *Agent

	// Output заполняется после выполнения задачи
	Output *TaskOutput
}

// TaskOutput - сырой текстовый результат задачи
type TaskOutput struct {
	Task  string `json:"task"`
	Title string `json:"title"`
	Agent string `json:"agent"`
	Raw   string `json:"raw"`
}

type Process string

const Sequential Process = "sequential"

// Crew выполняет задачи по порядку; каждая задача видит выводы всех предыдущих
type Crew struct {
	Agents  []*Agent
	Tasks   []*Task
	Process Process

	// OnTaskDone вызывается после каждой успешно выполненной задачи
	OnTaskDone func(TaskOutput)
}

var ErrNoTasks = errors.New("crew has no tasks")

// Kickoff запускает задачи и возвращает их выводы в порядке выполнения
func (c *Crew) Kickoff(ctx context.Context) ([]TaskOutput, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	outputs := make([]TaskOutput, 0, len(c.Tasks))
	for _, task := range c.Tasks {
		if err := ctx.Err(); err != nil {
			return outputs, err
		}

		messages := []api.Message{
			{Role: api.RoleSystem, Content: buildAgentPrompt(task.Agent)},
			{Role: api.RoleUser, Content: buildTaskPrompt(task, outputs)},
		}

		raw, err := task.Agent.LLM.Complete(ctx, messages)
		if err != nil {
			return outputs, fmt.Errorf("task %s: %w", task.Name, err)
		}

		out := TaskOutput{
			Task:  task.Name,
			Title: task.Title,
			Agent: task.Agent.Role,
			Raw:   raw,
		}
		task.Output = &out
		outputs = append(outputs, out)

		if c.OnTaskDone != nil {
			c.OnTaskDone(out)
		}
	}

	return outputs, nil
}

func (c *Crew) validate() error {
	if c.Process != "" && c.Process != Sequential {
		return fmt.Errorf("unsupported process %q", c.Process)
	}

	if len(c.Tasks) == 0 {
		return ErrNoTasks
	}

	known := make(map[*Agent]bool, len(c.Agents))
	for _, a := range c.Agents {
		known[a] = true
	}

	for _, task := range c.Tasks {
		if task.Agent == nil {
			return fmt.Errorf("task %s has no agent", task.Name)
		}
		if !known[task.Agent] {
			return fmt.Errorf("task %s uses agent %s which is not part of the crew", task.Name, task.Agent.Name)
		}
		if task.Agent.LLM == nil {
			return fmt.Errorf("agent %s has no llm", task.Agent.Name)
		}
	}

	return nil
}

func buildAgentPrompt(agent *Agent) string {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("You are %s. %s\n\n", agent.Role, agent.Backstory))
	prompt.WriteString(fmt.Sprintf("Your personal goal is: %s\n\n", agent.Goal))
	prompt.WriteString("Answer with your final result only, as complete as possible.")

	return prompt.String()
}

func buildTaskPrompt(task *Task, previous []TaskOutput) string {
	var prompt strings.Builder

	prompt.WriteString("Current Task: ")
	prompt.WriteString(task.Description)
	prompt.WriteString("\n\n")

	prompt.WriteString("This is the expected criteria for your final answer: ")
	prompt.WriteString(task.ExpectedOutput)
	prompt.WriteString("\n\n")

	if len(previous) > 0 {
		prompt.WriteString("This is the context you're working with:\n")
		for _, out := range previous {
			prompt.WriteString(fmt.Sprintf("--- %s (%s) ---\n%s\n\n", out.Task, out.Agent, out.Raw))
		}
	}

	prompt.WriteString("Begin! Give your best final answer.")

	return prompt.String()
}

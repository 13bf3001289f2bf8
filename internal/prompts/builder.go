package prompts

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/DriesFaems/interview-generator-students/internal/config"
	"github.com/DriesFaems/interview-generator-students/internal/crew"
)

// Params - переменные, доступные в шаблонах задач
type Params struct {
	Painpoint       string
	CustomerProfile string
	PriorLearnings  string
}

// HasPriorLearnings решает, добавлять ли задачу обновления выводов
func (p Params) HasPriorLearnings() bool {
	return strings.TrimSpace(p.PriorLearnings) != ""
}

// RenderTask подставляет параметры интервью в описание задачи
func RenderTask(task config.Task, p Params) (string, error) {
	tmpl, err := template.New(task.Name).Option("missingkey=error").Parse(task.Description)
	if err != nil {
		return "", fmt.Errorf("ошибка разбора шаблона задачи %s: %w", task.Name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("ошибка рендеринга задачи %s: %w", task.Name, err)
	}

	return buf.String(), nil
}

// BuildCrew собирает агентов и задачи для одного запуска.
// В команду попадают только агенты, у которых есть задача.
func BuildCrew(cfg *config.Config, llm crew.LLM, p Params) (*crew.Crew, error) {
	agents := make(map[string]*crew.Agent)
	c := &crew.Crew{Process: crew.Sequential}

	for _, t := range cfg.GetTasks(p.HasPriorLearnings()) {
		agent, ok := agents[t.Agent]
		if !ok {
			def, found := cfg.GetAgent(t.Agent)
			if !found {
				return nil, fmt.Errorf("задача %s ссылается на неизвестного агента %s", t.Name, t.Agent)
			}
			agent = &crew.Agent{
				Name:      def.Name,
				Role:      def.Role,
				Goal:      def.Goal,
				Backstory: def.Backstory,
				LLM:       llm,
			}
			agents[t.Agent] = agent
			c.Agents = append(c.Agents, agent)
		}

		description, err := RenderTask(t, p)
		if err != nil {
			return nil, err
		}

		c.Tasks = append(c.Tasks, &crew.Task{
			Name:           t.Name,
			Title:          t.Title,
			Description:    description,
			ExpectedOutput: t.ExpectedOutput,
			Agent:          agent,
		})
	}

	return c, nil
}

package config

// Config описывает агентов и задачи интервью-пайплайна
type Config struct {
	Agents []Agent `yaml:"agents"`
	Tasks  []Task  `yaml:"tasks"`
}

// Agent - шаблон роли для языковой модели
type Agent struct {
	Name      string `yaml:"name"`
	Role      string `yaml:"role"`
	Goal      string `yaml:"goal"`
	Backstory string `yaml:"backstory"`
}

// Task - шаблон задачи; Description рендерится через text/template
type Task struct {
	Name                   string `yaml:"name"`
	Title                  string `yaml:"title"`
	Agent                  string `yaml:"agent"`
	Description            string `yaml:"description"`
	ExpectedOutput         string `yaml:"expected_output"`
	RequiresPriorLearnings bool   `yaml:"requires_prior_learnings"`
}

// Методы для удобного доступа к конфигурации
func (c *Config) GetAgent(name string) (Agent, bool) {
	for _, a := range c.Agents {
		if a.Name == name {
			return a, true
		}
	}
	return Agent{}, false
}

// GetTasks возвращает задачи в порядке выполнения; задачи, требующие
// предыдущих выводов, отбрасываются, если их нет
func (c *Config) GetTasks(withPriorLearnings bool) []Task {
	tasks := make([]Task, 0, len(c.Tasks))
	for _, t := range c.Tasks {
		if t.RequiresPriorLearnings && !withPriorLearnings {
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks
}

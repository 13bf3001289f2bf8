package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed crew.yaml
var defaultCrew []byte

// Load загружает конфигурацию из YAML файла; пустой путь - встроенный crew.yaml
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Parse(defaultCrew)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла %s: %w", filename, err)
	}

	return Parse(data)
}

// Parse разбирает и валидирует YAML конфигурацию
func Parse(data []byte) (*Config, error) {
	var config Config
	err := yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга YAML: %w", err)
	}

	// Валидация конфигурации
	err = validateConfig(&config)
	if err != nil {
		return nil, fmt.Errorf("ошибка валидации конфигурации: %w", err)
	}

	return &config, nil
}

// validateConfig проверяет корректность конфигурации
func validateConfig(config *Config) error {
	if len(config.Agents) == 0 {
		return fmt.Errorf("нужен хотя бы один agent")
	}

	if len(config.Tasks) == 0 {
		return fmt.Errorf("нужна хотя бы одна task")
	}

	agents := make(map[string]bool, len(config.Agents))
	for i, agent := range config.Agents {
		if agent.Name == "" {
			return fmt.Errorf("agent %d должен иметь name", i)
		}
		if agents[agent.Name] {
			return fmt.Errorf("agent %q объявлен дважды", agent.Name)
		}
		if agent.Role == "" || agent.Goal == "" || agent.Backstory == "" {
			return fmt.Errorf("agent %q должен иметь role, goal и backstory", agent.Name)
		}
		agents[agent.Name] = true
	}

	tasks := make(map[string]bool, len(config.Tasks))
	always := 0
	for i, task := range config.Tasks {
		if task.Name == "" {
			return fmt.Errorf("task %d должна иметь name", i)
		}
		if tasks[task.Name] {
			return fmt.Errorf("task %q объявлена дважды", task.Name)
		}
		if task.Description == "" {
			return fmt.Errorf("task %q должна иметь description", task.Name)
		}
		if task.ExpectedOutput == "" {
			return fmt.Errorf("task %q должна иметь expected_output", task.Name)
		}
		if !agents[task.Agent] {
			return fmt.Errorf("task %q ссылается на неизвестного agent %q", task.Name, task.Agent)
		}
		if !task.RequiresPriorLearnings {
			always++
		}
		tasks[task.Name] = true
	}

	if always == 0 {
		return fmt.Errorf("все задачи требуют prior learnings, пайплайн без них будет пустым")
	}

	return nil
}

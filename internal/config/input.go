package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ropa/arrear-calculator/internal/calculation"
	"github.com/ropa/arrear-calculator/internal/domain"
	"github.com/ropa/arrear-calculator/internal/output"
	"gopkg.in/yaml.v3"
)

var knownLogLevels = map[string]bool{"": true, "debug": true, "info": true, "warn": true, "error": true}

// InputParser handles parsing of input configuration files
type InputParser struct {
	engine *calculation.ArrearEngine
}

// NewInputParser creates a new input parser that validates requests against the scheme tables
func NewInputParser() *InputParser {
	return &InputParser{engine: calculation.NewArrearEngine()}
}

// LoadFromFile loads configuration from a YAML (or JSON) file, applies defaults and validates it
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes, defaults and validates configuration bytes
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ApplyDefaults(&config)

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ApplyDefaults fills unset adapter settings
func ApplyDefaults(config *domain.Configuration) {
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	if config.Logging.Format == "" {
		config.Logging.Format = "console"
	}
	if config.Logging.Output == "" {
		config.Logging.Output = "stderr"
	}
	if config.Output.Directory == "" {
		config.Output.Directory = "."
	}
	if len(config.Output.Formats) == 0 {
		config.Output.Formats = []string{"console"}
	}
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if err := ip.validateScenario(scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("scenario %d: duplicate scenario name %q", i, scenario.Name)
		}
		seen[scenario.Name] = true
	}

	for _, f := range config.Output.Formats {
		if !output.IsKnownFormat(f) {
			return fmt.Errorf("output: unsupported format %q", f)
		}
	}

	if !knownLogLevels[config.Logging.Level] {
		return fmt.Errorf("logging: unknown level %q", config.Logging.Level)
	}
	if config.Logging.Format != "" && config.Logging.Format != "console" && config.Logging.Format != "json" {
		return fmt.Errorf("logging: format must be 'console' or 'json'")
	}

	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return fmt.Errorf("server: port must be between 1 and 65535")
	}

	return nil
}

// validateScenario validates a single scenario
func (ip *InputParser) validateScenario(scenario *domain.Scenario) error {
	if strings.TrimSpace(scenario.Name) == "" {
		return fmt.Errorf("scenario name is required")
	}
	if err := ip.engine.ValidateRequest(&scenario.Request); err != nil {
		return fmt.Errorf("%s: %w", scenario.Name, err)
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration covering the common cases
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	entry := domain.DefaultArrearRequest()

	promoted := domain.DefaultArrearRequest()
	promoted.PromotionMonth = "202101"

	senior := domain.ArrearRequest{
		InitialGradePay: 7600,
		InitialBasic:    126600,
		IncrementMonth:  1,
		ArrearUpto:      "202602",
	}

	return &domain.Configuration{
		Logging: domain.LoggingSettings{Level: "info", Format: "console", Output: "stderr"},
		Output: domain.OutputSettings{
			Directory: ".",
			Formats:   []string{"console", "xlsx"},
		},
		Server: domain.ServerSettings{
			Port:           8080,
			AllowedOrigins: []string{"http://localhost:5173", "http://localhost:8080"},
		},
		Scenarios: []domain.Scenario{
			{Name: "GP 6600 entry level", Request: entry},
			{Name: "GP 6600 promoted Jan 2021", Request: promoted},
			{Name: "GP 7600 level 10", Request: senior},
		},
	}
}

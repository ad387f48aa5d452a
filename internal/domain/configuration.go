package domain

// Configuration is the on-disk settings file: scenarios to project plus adapter settings
type Configuration struct {
	Logging   LoggingSettings `yaml:"logging" json:"logging"`
	Output    OutputSettings  `yaml:"output" json:"output"`
	Server    ServerSettings  `yaml:"server" json:"server"`
	Scenarios []Scenario      `yaml:"scenarios" json:"scenarios"`
}

// Scenario is a named arrear request
type Scenario struct {
	Name    string        `yaml:"name" json:"name"`
	Request ArrearRequest `yaml:"request" json:"request"`
}

// LoggingSettings configures the zap logger
type LoggingSettings struct {
	Level       string `yaml:"level" json:"level"`
	Format      string `yaml:"format" json:"format"` // console|json
	Output      string `yaml:"output" json:"output"` // stdout|stderr|<path>
	Development bool   `yaml:"development,omitempty" json:"development,omitempty"`
}

// OutputSettings controls where and how reports are written
type OutputSettings struct {
	Directory string   `yaml:"directory" json:"directory"`
	Formats   []string `yaml:"formats" json:"formats"`
}

// ServerSettings configures the HTTP adapter
type ServerSettings struct {
	Port           int      `yaml:"port" json:"port"`
	AllowedOrigins []string `yaml:"allowed_origins,omitempty" json:"allowed_origins,omitempty"`
}

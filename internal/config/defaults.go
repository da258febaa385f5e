package config

import "github.com/opencamara/camara-mcp/internal/common"

// DefaultBaseURL is the Câmara dos Deputados open-data API root.
const DefaultBaseURL = "https://dadosabertos.camara.leg.br/api/v2"

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "camara-mcp",
			Port: "4250",
		},
		API: APIConfig{
			BaseURL:     DefaultBaseURL,
			SpecRetries: 1,
		},
		Logging: common.LoggingConfig{
			Level:      "info",
			Outputs:    []string{"console", "file"},
			FilePath:   "logs/camara-mcp.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}

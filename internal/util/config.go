package util

import (
	"encoding/json"
	"fmt"
	"os"
	"perftracker/internal/domain"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Provider            string             `json:"provider" yaml:"provider"`
	PricesFile          string             `json:"pricesFile" yaml:"pricesFile"`
	Port                int                `json:"port" yaml:"port"`
	FetchTimeoutSeconds int                `json:"fetchTimeoutSeconds" yaml:"fetchTimeoutSeconds"`
	Benchmarks          []domain.Benchmark `json:"benchmarks" yaml:"benchmarks"`
	Alpaca              AlpacaSecrets      `json:"alpaca" yaml:"alpaca"`
	Db                  DbSecrets          `json:"db" yaml:"db"`
}

type AlpacaSecrets struct {
	ApiKey    string `json:"apiKey" yaml:"apiKey"`
	ApiSecret string `json:"apiSecret" yaml:"apiSecret"`
	Endpoint  string `json:"endpoint" yaml:"endpoint"`
}

type DbSecrets struct {
	Host      string `json:"host" yaml:"host"`
	User      string `json:"user" yaml:"user"`
	Port      string `json:"port" yaml:"port"`
	Password  string `json:"password" yaml:"password"`
	Database  string `json:"database" yaml:"database"`
	EnableSsl bool   `json:"enableSsl" yaml:"enableSsl"`
}

func (t DbSecrets) ToConnectionStr() string {
	x := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		t.Host, t.Port, t.User, t.Password, t.Database)
	if !t.EnableSsl {
		x += " sslmode=disable"
	}
	return x
}

const (
	ProviderYahoo    = "yahoo"
	ProviderAlpaca   = "alpaca"
	ProviderPostgres = "postgres"
	ProviderCsv      = "csv"
)

func configFile(path string) string {
	if path != "" {
		return path
	}
	if p := os.Getenv("TRACKER_CONFIG"); p != "" {
		return p
	}
	switch os.Getenv("TRACKER_ENV") {
	case "dev":
		return "config-dev.yaml"
	case "test":
		return "config-test.yaml"
	}
	return "/go/src/app/config.yaml"
}

// LoadConfig reads the config file as YAML, falling back to JSON
func LoadConfig(path string) (*Config, error) {
	f, err := os.ReadFile(configFile(path))
	if err != nil {
		return nil, fmt.Errorf("could not open config: %w", err)
	}
	return ParseConfig(f)
}

func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return nil, fmt.Errorf("failed to parse config (tried YAML and JSON): %w", err)
		}
	}

	if cfg.Provider == "" {
		cfg.Provider = ProviderYahoo
	}
	if cfg.Port == 0 {
		cfg.Port = 3009
	}
	if cfg.FetchTimeoutSeconds <= 0 {
		cfg.FetchTimeoutSeconds = 30
	}
	if len(cfg.Benchmarks) == 0 {
		cfg.Benchmarks = domain.DefaultBenchmarks()
	}

	switch cfg.Provider {
	case ProviderYahoo, ProviderAlpaca, ProviderPostgres:
	case ProviderCsv:
		if cfg.PricesFile == "" {
			return nil, fmt.Errorf("provider %q requires pricesFile", cfg.Provider)
		}
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}

	return cfg, nil
}

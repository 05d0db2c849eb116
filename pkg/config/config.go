package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:ayurscope.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Sources SourcesConfig `yaml:"sources" json:"sources" jsonschema:"description=Knowledge article source refresh configuration"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for guidance responses"`

	Chat ChatConfig `yaml:"chat" json:"chat" jsonschema:"description=Consultation behavior configuration"`
}

// SourcesConfig controls the curated article feeds and their periodic refresh
type SourcesConfig struct {
	UpdateInterval int          `yaml:"update_interval" json:"update_interval" jsonschema:"default=60,description=Source refresh interval in minutes"`
	MaxWorkers     int          `yaml:"max_workers" json:"max_workers" jsonschema:"default=4,description=Maximum concurrent source fetches"`
	Feeds          []FeedConfig `yaml:"feeds" json:"feeds,omitempty" jsonschema:"description=Curated wellness article feeds seeded at startup"`
}

// FeedConfig describes one curated article feed
type FeedConfig struct {
	URL      string `yaml:"url" json:"url" jsonschema:"required,description=Feed URL"`
	Title    string `yaml:"title" json:"title" jsonschema:"description=Display title"`
	Interval int    `yaml:"interval" json:"interval,omitempty" jsonschema:"default=60,description=Fetch interval in minutes"`
}

// LLMConfig holds LLM configuration for guidance responses
type LLMConfig struct {
	Endpoint     string        `yaml:"endpoint" json:"endpoint" jsonschema:"required,description=OpenAI-compatible API endpoint"`
	APIKey       string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model        string        `yaml:"model" json:"model" jsonschema:"required,description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature  float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.7,description=Temperature for response generation"`
	MaxTokens    int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=2048,description=Maximum tokens in response"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	SystemPrompt string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=Override for the built-in system prompt (optional)"`
}

// ChatConfig holds consultation-specific settings
type ChatConfig struct {
	HistoryLimit    int `yaml:"history_limit" json:"history_limit" jsonschema:"default=5,description=Number of prior exchanges carried into the prompt"`
	ArticleLimit    int `yaml:"article_limit" json:"article_limit" jsonschema:"default=10,description=Number of published articles offered as context"`
	SuggestionCount int `yaml:"suggestion_count" json:"suggestion_count" jsonschema:"default=4,description=Number of smart prompt suggestions returned"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:ayurscope.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for sources
	if cfg.Sources.UpdateInterval == 0 {
		cfg.Sources.UpdateInterval = 60
	}
	if cfg.Sources.MaxWorkers == 0 {
		cfg.Sources.MaxWorkers = 4
	}
	for i := range cfg.Sources.Feeds {
		if cfg.Sources.Feeds[i].Interval == 0 {
			cfg.Sources.Feeds[i].Interval = 60
		}
	}

	// set defaults for LLM
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.7
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 2048
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 30 * time.Second
	}

	// set defaults for chat
	if cfg.Chat.HistoryLimit == 0 {
		cfg.Chat.HistoryLimit = 5
	}
	if cfg.Chat.ArticleLimit == 0 {
		cfg.Chat.ArticleLimit = 10
	}
	if cfg.Chat.SuggestionCount == 0 {
		cfg.Chat.SuggestionCount = 4
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate LLM config
	if cfg.LLM.Endpoint == "" {
		return fmt.Errorf("llm.endpoint is required")
	}
	if cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}

	// validate chat config
	if cfg.Chat.HistoryLimit < 1 {
		return fmt.Errorf("chat.history_limit must be at least 1")
	}
	if cfg.Chat.SuggestionCount < 1 {
		return fmt.Errorf("chat.suggestion_count must be at least 1")
	}

	// validate sources config
	if cfg.Sources.UpdateInterval < 1 {
		return fmt.Errorf("sources.update_interval must be at least 1 minute")
	}
	if cfg.Sources.MaxWorkers < 1 {
		return fmt.Errorf("sources.max_workers must be at least 1")
	}
	for i, feed := range cfg.Sources.Feeds {
		if feed.URL == "" {
			return fmt.Errorf("sources.feeds[%d].url is required", i)
		}
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetLLMConfig returns LLM configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}

// GetChatConfig returns consultation configuration
func (c *Config) GetChatConfig() ChatConfig {
	return c.Chat
}

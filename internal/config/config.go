// Package config loads application configuration from config.yaml, .env,
// and the environment, and initializes the global logger. Provider
// credentials are optional: a missing key degrades that one source to an
// empty result rather than failing startup.
package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Serper     SerperConfig     `yaml:"serper" mapstructure:"serper"`
	Brandfetch BrandfetchConfig `yaml:"brandfetch" mapstructure:"brandfetch"`
	DuckDuckGo DuckDuckGoConfig `yaml:"duckduckgo" mapstructure:"duckduckgo"`
	NewsData   NewsDataConfig   `yaml:"newsdata" mapstructure:"newsdata"`
	Groq       GroqConfig       `yaml:"groq" mapstructure:"groq"`
	Research   ResearchConfig   `yaml:"research" mapstructure:"research"`
	Export     ExportConfig     `yaml:"export" mapstructure:"export"`
	Server     ServerConfig     `yaml:"server" mapstructure:"server"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
}

// SerperConfig holds Serper search API settings.
type SerperConfig struct {
	Key         string `yaml:"key" mapstructure:"key"`
	BaseURL     string `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// BrandfetchConfig holds Brandfetch API settings.
type BrandfetchConfig struct {
	Key         string `yaml:"key" mapstructure:"key"`
	BaseURL     string `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// DuckDuckGoConfig holds Instant Answer API settings. No credential needed.
type DuckDuckGoConfig struct {
	BaseURL     string `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// NewsDataConfig holds NewsData API settings.
type NewsDataConfig struct {
	Key         string `yaml:"key" mapstructure:"key"`
	BaseURL     string `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// GroqConfig holds Groq chat-completion API settings.
type GroqConfig struct {
	Key         string `yaml:"key" mapstructure:"key"`
	BaseURL     string `yaml:"base_url" mapstructure:"base_url"`
	Model       string `yaml:"model" mapstructure:"model"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// ResearchConfig tunes the aggregation pipeline.
type ResearchConfig struct {
	NewsLimit          int      `yaml:"news_limit" mapstructure:"news_limit"`
	ScrapeTimeoutSecs  int      `yaml:"scrape_timeout_secs" mapstructure:"scrape_timeout_secs"`
	GenericNames       []string `yaml:"generic_names" mapstructure:"generic_names"`
	BusinessIndicators []string `yaml:"business_indicators" mapstructure:"business_indicators"`
}

// ExportConfig configures flat-file export.
type ExportConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from .env, config file, and environment.
func Load() (*Config, error) {
	// .env is optional; viper picks the values up from the environment.
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("LEADSCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("serper.base_url", "https://google.serper.dev")
	v.SetDefault("serper.timeout_secs", 15)
	v.SetDefault("brandfetch.base_url", "https://api.brandfetch.io")
	v.SetDefault("brandfetch.timeout_secs", 8)
	v.SetDefault("duckduckgo.base_url", "https://api.duckduckgo.com")
	v.SetDefault("duckduckgo.timeout_secs", 8)
	v.SetDefault("newsdata.base_url", "https://newsdata.io")
	v.SetDefault("newsdata.timeout_secs", 8)
	v.SetDefault("groq.base_url", "https://api.groq.com")
	v.SetDefault("groq.model", "moonshotai/kimi-k2-instruct-0905")
	v.SetDefault("groq.timeout_secs", 20)
	v.SetDefault("research.news_limit", 5)
	v.SetDefault("research.scrape_timeout_secs", 10)
	v.SetDefault("research.generic_names", []string{
		"stochastic", "quantum", "vector", "matrix", "alpha", "beta",
		"gamma", "delta", "sigma", "lambda", "omega", "zen", "nova",
		"pulse", "flux",
	})
	v.SetDefault("research.business_indicators", []string{
		"company", "startup", "tech", "business", "inc", "corp", "ltd",
		"founder", "ceo", "venture",
	})
	v.SetDefault("export.dir", "data/processed")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}

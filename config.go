package main

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is loaded once at startup and read-only afterwards.
type Config struct {
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port int    `env:"PORT" envDefault:"8080"`

	SupportedLanguages []string `env:"CHATBOT_SUPPORTED_LANGUAGES" envDefault:"en,hi,te"`
	DefaultLanguage    string   `env:"CHATBOT_DEFAULT_LANGUAGE" envDefault:"en"`
	DebugMode          bool     `env:"CHATBOT_DEBUG" envDefault:"false"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func LoadConfig() (*Config, error) {
	// A missing .env file is not an error; deployments usually configure
	// through the environment directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate normalizes the language codes and enforces that the default
// language is a member of the supported set. A failure here refuses startup.
func (c *Config) Validate() error {
	if len(c.SupportedLanguages) == 0 {
		return fmt.Errorf("no supported languages configured")
	}

	for i, lang := range c.SupportedLanguages {
		c.SupportedLanguages[i] = strings.ToLower(strings.TrimSpace(lang))
	}
	c.DefaultLanguage = strings.ToLower(strings.TrimSpace(c.DefaultLanguage))

	if !c.IsSupported(c.DefaultLanguage) {
		return fmt.Errorf("default language %q is not in the supported set %v", c.DefaultLanguage, c.SupportedLanguages)
	}

	return nil
}

func (c *Config) IsSupported(lang string) bool {
	for _, l := range c.SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/youssefsiam38/answerui/internal/validation"
	"github.com/youssefsiam38/answerui/ui"
)

// envPrefix namespaces environment overrides, e.g. ANSWERUI_SERVER_ADDR.
const envPrefix = "ANSWERUI"

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	UI     UIConfig     `mapstructure:"ui"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr" validate:"required"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
	MaxAnswers      int           `mapstructure:"max_answers" validate:"gte=1"`
}

type UIConfig struct {
	BasePath              string `mapstructure:"base_path" validate:"omitempty,startswith=/"`
	ContentBasePath       string `mapstructure:"content_base_path"`
	ShowFollowupQuestions bool   `mapstructure:"show_followup_questions"`
	RenderMarkdown        bool   `mapstructure:"render_markdown"`
	CacheSize             int    `mapstructure:"cache_size" validate:"gte=1"`
	PageSize              int    `mapstructure:"page_size" validate:"gte=1,lte=100"`
}

// uiConfig converts the loaded settings into the ui package configuration.
func (c UIConfig) uiConfig(logger ui.Logger) *ui.Config {
	return &ui.Config{
		BasePath:              c.BasePath,
		ContentBasePath:       c.ContentBasePath,
		ShowFollowupQuestions: c.ShowFollowupQuestions,
		RenderMarkdown:        c.RenderMarkdown,
		CacheSize:             c.CacheSize,
		PageSize:              c.PageSize,
		Logger:                logger,
	}
}

type ConfigLoader struct {
	viper     *viper.Viper
	validator *validation.Validator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, err := validation.New("mapstructure")
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("answerui")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/answerui")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &ConfigLoader{
		viper:     v,
		validator: validate,
	}, nil
}

// BindFlags lets command line flags override the config file and the
// environment. keys maps a config key to the flag name.
func (loader *ConfigLoader) BindFlags(flags *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		flag := flags.Lookup(name)
		if flag == nil {
			return fmt.Errorf("unknown flag %q for %s", name, key)
		}
		if err := loader.viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %q: %w", name, err)
		}
	}
	return nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.max_answers", 1000)
	v.SetDefault("ui.base_path", "/ui")
	v.SetDefault("ui.content_base_path", "")
	v.SetDefault("ui.show_followup_questions", true)
	v.SetDefault("ui.render_markdown", false)
	v.SetDefault("ui.cache_size", 256)
	v.SetDefault("ui.page_size", ui.DefaultPageSize)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

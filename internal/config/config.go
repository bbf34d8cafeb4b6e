package config

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/tkhach/urban/internal/urbandict"
)

type Config struct {
	API    APIConfig    `mapstructure:"api"`
	Player PlayerConfig `mapstructure:"player"`
}

type APIConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
}

type PlayerConfig struct {
	// Command overrides audio player detection. When empty, a supported
	// player is looked up in PATH at startup.
	Command           string `mapstructure:"command" validate:"omitempty,command"`
	WarnIfUnavailable bool   `mapstructure:"warn_if_unavailable"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/urban")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("api.base_url", urbandict.DefaultBaseURL)
	v.SetDefault("player.command", "")
	v.SetDefault("player.warn_if_unavailable", true)

	if err := v.BindEnv("api.base_url", "URBAN_API_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind URBAN_API_BASE_URL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

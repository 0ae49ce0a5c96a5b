package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

type Config struct {
	LogLevel         string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Dimension        int    `yaml:"dimension" env:"BOARD_DIMENSION" env-default:"3"`
	LockFinishedGame bool   `yaml:"lock-finished-game" env:"LOCK_FINISHED_GAME" env-default:"false"`
}

// Load - reads the config file at path, then environment overrides. An empty path reads the environment only.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - same as Load but panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Validate() error {
	if that.Dimension <= 0 {
		return fmt.Errorf("invalid config: %w: %d", apperror.ErrInvalidDimension, that.Dimension)
	}

	return nil
}

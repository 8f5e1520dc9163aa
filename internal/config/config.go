package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"TICTACTOE_HTTP_PORT" env-default:"9090"`
	Redis    Redis  `yaml:"redis"`
	Engine   Engine `yaml:"engine"`
}

// Redis - FinishedTTL keeps the final board of a finished game readable.
type Redis struct {
	Host        string        `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost"`
	Port        string        `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379"`
	GameTTL     time.Duration `yaml:"game-ttl" env:"TICTACTOE_REDIS_GAME_TTL" env-default:"24h"`
	FinishedTTL time.Duration `yaml:"finished-ttl" env:"TICTACTOE_REDIS_FINISHED_TTL" env-default:"10m"`
}

// Engine holds the defaults used by the computer player.
type Engine struct {
	Difficulty string `yaml:"difficulty" env:"TICTACTOE_DIFFICULTY" env-default:"perfect"`
	// Seed of the random source, 0 means seeded from the clock.
	Seed uint64 `yaml:"seed" env:"TICTACTOE_SEED" env-default:"0"`
	// ForkMode is "strict" to skip occupied fork cells, "raw" to keep the unfiltered lookup.
	ForkMode string `yaml:"fork-mode" env:"TICTACTOE_FORK_MODE" env-default:"strict"`
}

const ForkModeRaw = "raw"

// Load - reads the yaml file at path, falling back to environment and defaults when the file does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Engine) StrictForks() bool {
	return that.ForkMode != ForkModeRaw
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

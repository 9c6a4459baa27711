package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"cpu-scheduler-sim/internal/schedulers"
)

type SchedulerConfig struct {
	Port                    int
	LogLevel                string
	LogFormat               string
	RoundRobinTimeQuantum   int
	RoundRobinQueueCapacity int
	RoundRobinRetryDropped  bool
}

var ErrInvalidConfig = errors.New("invalid scheduler config")

var once sync.Once
var config *SchedulerConfig
var configErr error

// GetSchedulerConfig loads ./config.yaml (if present) once per process.
func GetSchedulerConfig() (*SchedulerConfig, error) {
	once.Do(func() {
		config, configErr = Load("")
	})
	return config, configErr
}

// Load reads configuration from defaults, the optional YAML file at path (or
// ./config.yaml when path is empty) and SIM_* environment variables.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("scheduler.round_robin.time_quantum", 3)
	v.SetDefault("scheduler.round_robin.queue_capacity", 10)
	v.SetDefault("scheduler.round_robin.retry_dropped", false)

	v.SetEnvPrefix("sim")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &SchedulerConfig{
		Port:                    v.GetInt("port"),
		LogLevel:                v.GetString("log.level"),
		LogFormat:               v.GetString("log.format"),
		RoundRobinTimeQuantum:   v.GetInt("scheduler.round_robin.time_quantum"),
		RoundRobinQueueCapacity: v.GetInt("scheduler.round_robin.queue_capacity"),
		RoundRobinRetryDropped:  v.GetBool("scheduler.round_robin.retry_dropped"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *SchedulerConfig) Validate() error {
	switch {
	case c.Port <= 0 || c.Port > 65535:
		return fmt.Errorf("%w: port %d", ErrInvalidConfig, c.Port)
	case c.RoundRobinTimeQuantum <= 0:
		return fmt.Errorf("%w: round robin time quantum %d", ErrInvalidConfig, c.RoundRobinTimeQuantum)
	case c.RoundRobinQueueCapacity <= 0 || c.RoundRobinQueueCapacity > schedulers.MaxQueueCapacity:
		return fmt.Errorf("%w: round robin queue capacity %d (max %d)", ErrInvalidConfig, c.RoundRobinQueueCapacity, schedulers.MaxQueueCapacity)
	}
	return nil
}

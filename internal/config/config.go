package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

const defaultShifts = `[{"name":"早班","start":"06:00","end":"14:00"},{"name":"中班","start":"14:00","end":"22:00"},{"name":"夜班","start":"22:00","end":"06:00"}]`

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"3000"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	Panel struct {
		// 业务时区，班次时间一律按照这个时区解释，单个请求可以覆盖
		DefaultTimezone string `env:"DEFAULT_TIMEZONE" envDefault:"Asia/Shanghai"`
		// 预设班次，JSON 数组，服务启动时解析一次
		Shifts string `env:"SHIFTS"`
	} `envPrefix:"PANEL_"`
	JWT struct {
		// 为空时不启用鉴权
		Secret string `env:"SECRET"`
	} `envPrefix:"JWT_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// 只返回第一个错误使得日志更清晰
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	if cfg.Panel.Shifts == "" {
		cfg.Panel.Shifts = defaultShifts
	}

	return cfg, nil
}

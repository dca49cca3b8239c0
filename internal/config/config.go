// Package config загрузка конфигурации сервиса из TOML файла
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Calendar CalendarConfig `toml:"calendar"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CalendarConfig бизнес-календарь: рабочие часы, шаг слотов, lead time.
// Конфигурация только для чтения после старта процесса.
type CalendarConfig struct {
	Timezone         string         `toml:"timezone"`
	OpenHour         int            `toml:"open_hour"`
	CloseHour        int            `toml:"close_hour"`
	WorkingDays      []string       `toml:"working_days"`
	IncrementMinutes int            `toml:"increment_minutes"`
	LeadMinutes      int            `toml:"lead_minutes"`
	ServiceDurations map[string]int `toml:"service_durations"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Calendar.OpenHour < 0 || c.Calendar.CloseHour > 24 || c.Calendar.OpenHour >= c.Calendar.CloseHour {
		return fmt.Errorf("config: calendar requires 0 <= open_hour < close_hour <= 24")
	}
	if c.Calendar.IncrementMinutes <= 0 {
		return fmt.Errorf("config: calendar.increment_minutes must be positive")
	}
	if c.Calendar.LeadMinutes < 0 {
		return fmt.Errorf("config: calendar.lead_minutes must not be negative")
	}
	if len(c.Calendar.ServiceDurations) == 0 {
		return fmt.Errorf("config: calendar.service_durations must not be empty")
	}
	for service, minutes := range c.Calendar.ServiceDurations {
		if minutes <= 0 {
			return fmt.Errorf("config: calendar.service_durations[%s] must be positive", service)
		}
	}
	return nil
}

// Package config загружает конфигурацию сервиса из TOML файла
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/test-dunyo/meet-booking-service/internal/domain"
)

// Config корневая конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Telegram TelegramConfig `toml:"telegram"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // Секунды
	WriteTimeout    int `toml:"write_timeout"`    // Секунды
	IdleTimeout     int `toml:"idle_timeout"`     // Секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // Секунды
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // Секунды
}

// DSN возвращает строку подключения для lib/pq
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// TelegramConfig настройки доставки уведомлений
type TelegramConfig struct {
	BotToken  string `toml:"bot_token"`
	Timeout   int    `toml:"timeout"` // Секунды
	QueueSize int    `toml:"queue_size"`
}

// ScheduleConfig параметры алгоритма распределения и уборки
type ScheduleConfig struct {
	Timezone            string `toml:"timezone"`
	LeadTimeDays        int    `toml:"lead_time_days"`
	HorizonDays         int    `toml:"horizon_days"`
	ClosedRetentionDays int    `toml:"closed_retention_days"`
	CleanupSpec         string `toml:"cleanup_spec"` // Cron-выражение ежедневной уборки
}

// Location возвращает часовой пояс расписания
func (s *ScheduleConfig) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}

// Load читает конфигурацию из TOML файла и заполняет значения по умолчанию
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.File == "" {
		c.Logs.File = "logs/app.log"
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "meet-booking-service"
	}

	if c.Telegram.Timeout == 0 {
		c.Telegram.Timeout = 10
	}
	if c.Telegram.QueueSize == 0 {
		c.Telegram.QueueSize = 64
	}

	if c.Schedule.Timezone == "" {
		c.Schedule.Timezone = domain.DefaultTimezone
	}
	if c.Schedule.LeadTimeDays == 0 {
		c.Schedule.LeadTimeDays = domain.DefaultLeadTimeDays
	}
	if c.Schedule.HorizonDays == 0 {
		c.Schedule.HorizonDays = domain.DefaultHorizonDays
	}
	if c.Schedule.ClosedRetentionDays == 0 {
		c.Schedule.ClosedRetentionDays = 30
	}
	if c.Schedule.CleanupSpec == "" {
		c.Schedule.CleanupSpec = "1 0 * * *"
	}
}

package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server       Server       `toml:"server"`
	Database     Database     `toml:"database"`
	Logs         Logs         `toml:"logs"`
	Metrics      Metrics      `toml:"metrics"`
	Availability Availability `toml:"availability"`
	Codes        Codes        `toml:"codes"`
	Notifier     Notifier     `toml:"notifier"`
}

// Server настройки HTTP-сервера
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

// Database настройки подключения к PostgreSQL
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN собирает строку подключения к PostgreSQL
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics настройки Prometheus-метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Availability настройки проверки доступности и поиска альтернативных слотов
type Availability struct {
	ServiceDurationMinutes int `toml:"service_duration_minutes"` // Окно занятости столика
	SearchStepMinutes      int `toml:"search_step_minutes"`      // Шаг поиска альтернатив
	MaxAlternatives        int `toml:"max_alternatives"`
}

// Codes настройки генерации кодов подтверждения
type Codes struct {
	Length      int `toml:"length"`
	MaxAttempts int `toml:"max_attempts"`
}

// Notifier настройки шлюза SMS-уведомлений
type Notifier struct {
	Enabled bool   `toml:"enabled"`
	BaseURL string `toml:"base_url"`
	Timeout int    `toml:"timeout"` // seconds
}

// Load загружает конфигурацию из TOML-файла и подставляет дефолты
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Availability.ServiceDurationMinutes == 0 {
		c.Availability.ServiceDurationMinutes = domain.DefaultServiceDurationMinutes
	}
	if c.Availability.SearchStepMinutes == 0 {
		c.Availability.SearchStepMinutes = domain.DefaultSearchStepMinutes
	}
	if c.Availability.MaxAlternatives == 0 {
		c.Availability.MaxAlternatives = domain.DefaultMaxAlternatives
	}
	if c.Codes.Length == 0 {
		c.Codes.Length = domain.DefaultCodeLength
	}
	if c.Codes.MaxAttempts == 0 {
		c.Codes.MaxAttempts = domain.DefaultCodeMaxAttempts
	}
}

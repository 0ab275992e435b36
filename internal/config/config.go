package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/sweetnarcisse/SN-BookingService/internal/domain"
	"github.com/sweetnarcisse/SN-BookingService/pkg/types"
)

// Config корневая конфигурация сервиса (config.toml)
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
	Pricing  PricingConfig  `toml:"pricing"`
	Cache    CacheConfig    `toml:"cache"`
}

// ServerConfig настройки HTTP сервера
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
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// ScheduleConfig toml-секция расписания отправлений
type ScheduleConfig struct {
	Timezone                 string `toml:"timezone"`
	OpenTime                 string `toml:"open_time"`
	CloseTime                string `toml:"close_time"`
	MorningStart             string `toml:"morning_start"`
	MorningEnd               string `toml:"morning_end"`
	AfternoonStart           string `toml:"afternoon_start"`
	AfternoonEnd             string `toml:"afternoon_end"`
	DepartureIntervalMinutes int    `toml:"departure_interval_minutes"`
	TourDurationMinutes      int    `toml:"tour_duration_minutes"`
	BufferMinutes            int    `toml:"buffer_minutes"`
	RotationOffsets          []int  `toml:"rotation_offsets"`
	MinLeadTimeMinutes       int    `toml:"min_lead_time_minutes"`
}

// ToDomain конвертирует toml-секцию в доменную конфигурацию расписания
// Ошибка здесь - ошибка конфигурации, она фатальна при старте сервиса
func (s ScheduleConfig) ToDomain() (*domain.ScheduleConfig, error) {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("schedule config: unknown timezone %q: %w", s.Timezone, err)
	}

	cfg := &domain.ScheduleConfig{
		Location:  loc,
		OpenTime:  types.TimeString(s.OpenTime),
		CloseTime: types.TimeString(s.CloseTime),
		MorningWindow: domain.TimeWindow{
			Start: types.TimeString(s.MorningStart),
			End:   types.TimeString(s.MorningEnd),
		},
		AfternoonWindow: domain.TimeWindow{
			Start: types.TimeString(s.AfternoonStart),
			End:   types.TimeString(s.AfternoonEnd),
		},
		DepartureIntervalMinutes: s.DepartureIntervalMinutes,
		TourDurationMinutes:      s.TourDurationMinutes,
		BufferMinutes:            s.BufferMinutes,
		RotationOffsets:          s.RotationOffsets,
		MinLeadTimeMinutes:       s.MinLeadTimeMinutes,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// PricingConfig цены за пассажира
type PricingConfig struct {
	Adult float64 `toml:"adult"`
	Child float64 `toml:"child"`
	Baby  float64 `toml:"baby"`
}

// ToDomain конвертирует toml-секцию в доменные цены
func (p PricingConfig) ToDomain() domain.Pricing {
	return domain.Pricing{Adult: p.Adult, Child: p.Child, Baby: p.Baby}
}

// CacheConfig настройки in-process кэша
type CacheConfig struct {
	FleetTTLSeconds int `toml:"fleet_ttl_seconds"`
}

// FleetTTL возвращает TTL кэша активного флота
func (c CacheConfig) FleetTTL() time.Duration {
	if c.FleetTTLSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(c.FleetTTLSeconds) * time.Second
}

// Load читает и разбирает конфигурацию из toml-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return &cfg, nil
}

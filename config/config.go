// config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port string `yaml:"port"`
}

type SourceConfig struct {
	// Driver selects the ERP source implementation: "demo" or "mysql".
	Driver string `yaml:"driver"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
}

type ReportsConfig struct {
	Dir           string `yaml:"dir"`
	RetentionDays int    `yaml:"retention_days"`

	CSVDir string `yaml:"-"` // derived: <Dir>/csv
}

type ScheduleConfig struct {
	// DailyReportTime is a wall-clock "HH:MM" string, e.g. "08:00".
	DailyReportTime string `yaml:"daily_report_time"`
	HourlyRefresh   bool   `yaml:"hourly_refresh"`

	// Parsed from DailyReportTime.
	DailyHour   int `yaml:"-"`
	DailyMinute int `yaml:"-"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Source   SourceConfig   `yaml:"source"`
	Database DatabaseConfig `yaml:"database"`
	Reports  ReportsConfig  `yaml:"reports"`
	Schedule ScheduleConfig `yaml:"schedule"`
}

var AppConfig Config

// LoadConfig reads configuration from the given YAML file, applies
// environment overrides, fills defaults and creates the report directories.
func LoadConfig(configPath string) error {
	file, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := parse(file)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Reports.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create report directory %s: %w", cfg.Reports.Dir, err)
	}
	if err := os.MkdirAll(cfg.Reports.CSVDir, 0755); err != nil {
		return fmt.Errorf("failed to create CSV directory %s: %w", cfg.Reports.CSVDir, err)
	}

	AppConfig = cfg
	return nil
}

func parse(raw []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Secrets come from the environment when set, never only from the file.
	if pw := os.Getenv("DB_PASSWORD"); pw != "" {
		cfg.Database.Password = pw
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = "5000"
	}
	if cfg.Source.Driver == "" {
		cfg.Source.Driver = "demo"
	}
	if cfg.Source.Driver != "demo" && cfg.Source.Driver != "mysql" {
		return cfg, fmt.Errorf("unknown source driver %q (want \"demo\" or \"mysql\")", cfg.Source.Driver)
	}
	if cfg.Reports.Dir == "" {
		cfg.Reports.Dir = "reports"
	}
	if cfg.Reports.RetentionDays <= 0 {
		cfg.Reports.RetentionDays = 30
	}
	cfg.Reports.CSVDir = filepath.Join(cfg.Reports.Dir, "csv")

	if cfg.Schedule.DailyReportTime == "" {
		cfg.Schedule.DailyReportTime = "08:00"
	}
	var err error
	cfg.Schedule.DailyHour, cfg.Schedule.DailyMinute, err = parseDailyTime(cfg.Schedule.DailyReportTime)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse daily_report_time: %w", err)
	}

	return cfg, nil
}

func parseDailyTime(s string) (hour, minute int, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hour, minute, nil
}

// RetentionAge returns the retention policy as a duration.
func (r ReportsConfig) RetentionAge() time.Duration {
	return time.Duration(r.RetentionDays) * 24 * time.Hour
}

// Package config assembles the full bot configuration: the reusable core
// settings plus database and salon specific sections.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	coreconfig "salonbot/core/config"
	"salonbot/core/database"
)

// PriceItem is one line of the price list.
type PriceItem struct {
	Name string `yaml:"name"`
	Cost string `yaml:"cost"`
}

// SalonConfig holds the settings specific to the salon bot.
type SalonConfig struct {
	// ReminderIntervalSeconds is how often the reminder loop scans
	// bookings; 0 -> 60.
	ReminderIntervalSeconds int `yaml:"reminder_interval_seconds" envconfig:"REMINDER_INTERVAL_SECONDS"`
	// Timezone is the IANA zone slot times are interpreted in; empty ->
	// the host zone.
	Timezone string `yaml:"timezone" envconfig:"SALON_TIMEZONE"`
	// Price is the service price list shown from the menu.
	Price []PriceItem `yaml:"price"`
}

// ReminderInterval returns the reminder scan interval as a duration.
func (s SalonConfig) ReminderInterval() time.Duration {
	if s.ReminderIntervalSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(s.ReminderIntervalSeconds) * time.Second
}

// Location resolves the configured timezone.
func (s SalonConfig) Location() (*time.Location, error) {
	name := strings.TrimSpace(s.Timezone)
	if name == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("salon.timezone %q: %w", name, err)
	}
	return loc, nil
}

// Config is the full bot configuration.
type Config struct {
	Core     coreconfig.Config `yaml:",inline"`
	Database database.Config   `yaml:"database"`
	Salon    SalonConfig       `yaml:"salon"`
}

// CoreConfig exposes the embedded core section.
func (c *Config) CoreConfig() *coreconfig.Config {
	return &c.Core
}

// defaultPrice matches the salon's published list and is used when the
// config file does not override it.
var defaultPrice = []PriceItem{
	{Name: "Маникюр", Cost: "1500₽"},
	{Name: "Педикюр", Cost: "2000₽"},
	{Name: "Наращивание", Cost: "2500₽"},
	{Name: "Дизайн", Cost: "500₽"},
}

// Load reads the config file, applies environment overrides and
// validates the result.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := Normalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize validates required fields and fills salon defaults.
func Normalize(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	if err := coreconfig.Normalize(&cfg.Core); err != nil {
		return err
	}
	if cfg.Salon.ReminderIntervalSeconds < 0 {
		return fmt.Errorf("salon.reminder_interval_seconds must be >= 0")
	}
	if _, err := cfg.Salon.Location(); err != nil {
		return err
	}
	if len(cfg.Salon.Price) == 0 {
		cfg.Salon.Price = append([]PriceItem(nil), defaultPrice...)
	}
	for i, p := range cfg.Salon.Price {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("salon.price[%d].name must not be empty", i)
		}
	}
	return nil
}

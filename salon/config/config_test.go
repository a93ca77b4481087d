package config

import (
	"testing"
	"time"

	coreconfig "salonbot/core/config"
)

func validConfig() *Config {
	return &Config{
		Core: coreconfig.Config{
			Telegram: coreconfig.TelegramConfig{
				Token:    "123:abc",
				AdminIDs: []int64{42},
				RunMode:  "longpoll",
			},
		},
	}
}

func TestNormalizeFillsDefaults(t *testing.T) {
	cfg := validConfig()
	if err := Normalize(cfg); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if len(cfg.Salon.Price) == 0 {
		t.Fatal("expected default price list")
	}
	if cfg.Salon.Price[0].Name != "Маникюр" {
		t.Fatalf("unexpected first price item: %+v", cfg.Salon.Price[0])
	}
	if got := cfg.Salon.ReminderInterval(); got != time.Minute {
		t.Fatalf("default reminder interval = %v", got)
	}
}

func TestNormalizeRejectsBadValues(t *testing.T) {
	cfg := validConfig()
	cfg.Salon.ReminderIntervalSeconds = -1
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for negative interval")
	}

	cfg = validConfig()
	cfg.Salon.Timezone = "Mars/Olympus"
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for unknown timezone")
	}

	cfg = validConfig()
	cfg.Core.Telegram.AdminIDs = nil
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for empty admin list")
	}
}

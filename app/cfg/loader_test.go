package cfg

import (
	"testing"
)

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}
}

func TestConfigFields(t *testing.T) {
	cfg := &Cfg{
		DBPath:            "./data/news.db",
		OutDir:            "./out",
		SiteDir:           "./site",
		PerSourceLimit:    30,
		MinChars:          900,
		RecentDays:        14,
		RecentLimit:       2000,
		Timeout:           25,
		UserAgent:         "Test Agent",
		AcceptLanguage:    "es-ES,es;q=0.9",
		Port:              "8080",
		SchedulerInterval: 1800,
		APIAccessKey:      "test-key",
		Timezone:          "UTC",
		Version:           "test-version",
	}

	if cfg.DBPath != "./data/news.db" {
		t.Errorf("Expected db path './data/news.db', got '%s'", cfg.DBPath)
	}
	if cfg.PerSourceLimit != 30 {
		t.Errorf("Expected per-source limit 30, got %d", cfg.PerSourceLimit)
	}
	if cfg.MinChars != 900 {
		t.Errorf("Expected min chars 900, got %d", cfg.MinChars)
	}
	if cfg.RecentDays != 14 {
		t.Errorf("Expected recent days 14, got %d", cfg.RecentDays)
	}
	if cfg.UserAgent != "Test Agent" {
		t.Errorf("Expected user agent 'Test Agent', got '%s'", cfg.UserAgent)
	}
	if cfg.APIAccessKey != "test-key" {
		t.Errorf("Expected API key 'test-key', got '%s'", cfg.APIAccessKey)
	}
}

func TestApplyTimezone(t *testing.T) {
	if err := applyTimezone("UTC"); err != nil {
		t.Errorf("Expected no error for UTC, got: %v", err)
	}

	if err := applyTimezone("Not/AZone"); err == nil {
		t.Error("Expected error for invalid timezone")
	}
}

package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Storage and output paths
	DBPath  string `long:"db-path" env:"DB_PATH" default:"./data/news.db" description:"Path to the SQLite database file"`
	OutDir  string `long:"out-dir" env:"OUT_DIR" default:"./out" description:"Directory for the per-run probe snapshot"`
	SiteDir string `long:"site-dir" env:"SITE_DIR" default:"./site" description:"Directory for the generated static site"`

	// Sources configuration
	SourcesFile string `long:"sources" env:"SOURCES_FILE" description:"Optional YAML file overriding the built-in source list and keyword sets"`

	// Pipeline configuration
	PerSourceLimit int `long:"per-source-limit" env:"PER_SOURCE_LIMIT" default:"30" description:"Maximum candidates taken per source (listing pages use twice this)"`
	MinChars       int `long:"min-chars" env:"MIN_CHARS" default:"900" description:"Minimum extracted characters for an article to be stored"`
	RecentDays     int `long:"recent-days" env:"RECENT_DAYS" default:"14" description:"Recency window in days for the generated site"`
	RecentLimit    int `long:"recent-limit" env:"RECENT_LIMIT" default:"2000" description:"Maximum articles embedded in the generated site"`

	// HTTP client configuration
	Timeout        int    `long:"timeout" env:"HTTP_TIMEOUT" default:"25" description:"HTTP request timeout in seconds"`
	UserAgent      string `long:"user-agent" env:"USER_AGENT" default:"fightwire/1.0 (personal project)" description:"User agent string for HTTP requests"`
	AcceptLanguage string `long:"accept-language" env:"ACCEPT_LANGUAGE" default:"es-ES,es;q=0.9,en;q=0.8" description:"Accept-Language header for HTTP requests"`

	// Serve mode configuration
	Serve             bool   `long:"serve" env:"SERVE" description:"Run the HTTP server and re-run the pipeline on an interval"`
	Port              string `long:"port" env:"PORT" default:"8080" description:"HTTP server port (serve mode)"`
	SchedulerInterval int    `long:"scheduler-interval" env:"SCHEDULER_INTERVAL" default:"1800" description:"Pipeline re-run interval in seconds (serve mode)"`
	APIAccessKey      string `long:"api-key" env:"API_ACCESS_KEY" description:"API access key for authentication (optional)"`

	// Application metadata
	Timezone string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, Europe/Madrid)"`
	Debug    bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		DBPath:            raw.DBPath,
		OutDir:            raw.OutDir,
		SiteDir:           raw.SiteDir,
		SourcesFile:       raw.SourcesFile,
		PerSourceLimit:    raw.PerSourceLimit,
		MinChars:          raw.MinChars,
		RecentDays:        raw.RecentDays,
		RecentLimit:       raw.RecentLimit,
		Timeout:           raw.Timeout,
		UserAgent:         raw.UserAgent,
		AcceptLanguage:    raw.AcceptLanguage,
		Serve:             raw.Serve,
		Port:              raw.Port,
		SchedulerInterval: raw.SchedulerInterval,
		APIAccessKey:      raw.APIAccessKey,
		Timezone:          raw.Timezone,
		Debug:             raw.Debug,
		Version:           GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		loc, err := time.LoadLocation(timezone)
		if err != nil {
			return err
		}
		time.Local = loc
	}
	return nil
}

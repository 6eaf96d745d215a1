// Package config models the briefwizard configuration file and its
// environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-briefwizard/pkg/i18n"
)

// Config models briefwizard.yml.
type Config struct {
	Locale string `yaml:"locale"`
	Origin string `yaml:"origin"`

	Storage struct {
		DraftPath string `yaml:"draft_path"`
		PrefsPath string `yaml:"prefs_path"`
	} `yaml:"storage"`

	Sheets struct {
		SpreadsheetID   string `yaml:"spreadsheet_id"`
		SheetName       string `yaml:"sheet_name"`
		CredentialsFile string `yaml:"credentials_file"`
	} `yaml:"sheets"`

	SMTP struct {
		Host     string   `yaml:"host"`
		Port     int      `yaml:"port"`
		Username string   `yaml:"username"`
		Password string   `yaml:"password"`
		From     string   `yaml:"from"`
		To       []string `yaml:"to"`
	} `yaml:"smtp"`

	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	var cfg Config
	cfg.Locale = string(i18n.DefaultLocale)
	cfg.Origin = "http://localhost:8080"
	cfg.Sheets.SheetName = "Brand Briefs"
	cfg.SMTP.Port = 587
	cfg.Server.Addr = ":8080"
	return &cfg
}

// Path returns the config file location: an explicit path when given,
// otherwise the per-user default.
func Path(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve config dir: %w", err)
	}
	return filepath.Join(dir, "briefwizard", "briefwizard.yml"), nil
}

// Load reads the config file, falling back to defaults when it is absent,
// then applies environment overrides and validates.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: invalid yaml in %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromYAML parses config from raw YAML on top of the defaults.
func FromYAML(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: invalid yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields every run needs. Sink credentials are checked
// by the components that use them, not here, so draft-only sessions work
// without delivery config.
func (c *Config) Validate() error {
	if _, err := i18n.ParseLocale(c.Locale); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.SMTP.Port < 0 || c.SMTP.Port > 65535 {
		return fmt.Errorf("config: smtp port %d out of range", c.SMTP.Port)
	}
	return nil
}

// applyEnv overlays BRIEFWIZARD_* environment variables onto the config.
func (c *Config) applyEnv() {
	set := func(key string, target *string) {
		if v, ok := os.LookupEnv(key); ok {
			*target = v
		}
	}
	set("BRIEFWIZARD_LOCALE", &c.Locale)
	set("BRIEFWIZARD_ORIGIN", &c.Origin)
	set("BRIEFWIZARD_DRAFT_PATH", &c.Storage.DraftPath)
	set("BRIEFWIZARD_SHEETS_ID", &c.Sheets.SpreadsheetID)
	set("BRIEFWIZARD_SHEETS_NAME", &c.Sheets.SheetName)
	set("BRIEFWIZARD_SHEETS_CREDENTIALS", &c.Sheets.CredentialsFile)
	set("BRIEFWIZARD_SMTP_HOST", &c.SMTP.Host)
	set("BRIEFWIZARD_SMTP_USERNAME", &c.SMTP.Username)
	set("BRIEFWIZARD_SMTP_PASSWORD", &c.SMTP.Password)
	set("BRIEFWIZARD_SMTP_FROM", &c.SMTP.From)
	set("BRIEFWIZARD_SERVER_ADDR", &c.Server.Addr)

	if v, ok := os.LookupEnv("BRIEFWIZARD_SMTP_PORT"); ok {
		if port, err := strconv.Atoi(v); err == nil {
			c.SMTP.Port = port
		}
	}
	if v, ok := os.LookupEnv("BRIEFWIZARD_SMTP_TO"); ok {
		var to []string
		for _, addr := range strings.Split(v, ",") {
			if addr = strings.TrimSpace(addr); addr != "" {
				to = append(to, addr)
			}
		}
		c.SMTP.To = to
	}
}

// ParsedLocale returns the parsed locale. Validate guarantees it parses.
func (c *Config) ParsedLocale() i18n.Locale {
	locale, _ := i18n.ParseLocale(c.Locale)
	return locale
}

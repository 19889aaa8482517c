package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/fx"
)

// Config holds all configuration from environment variables.
type Config struct {
	WeatherURL     string        `envconfig:"WEATHER_URL" default:"https://api.open-meteo.com/v1/forecast"`
	WeatherTimeout time.Duration `envconfig:"WEATHER_TIMEOUT" default:"5s"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`
	Debug    bool   `envconfig:"DEBUG" default:"false"`

	// Path to config.toml file
	ConfigFile string `envconfig:"CONFIG_FILE" default:"config.toml"`

	// Bots loaded from config.toml
	Bots Bots
}

// Bots holds the identities and data of the three bots.
type Bots struct {
	Chat    ChatBot    `toml:"chat"`
	Weather WeatherBot `toml:"weather"`
	Travel  TravelBot  `toml:"travel"`
}

// ChatBot configures the keyword chat responder.
type ChatBot struct {
	Name     string `toml:"name"`
	Version  string `toml:"version"`
	Language string `toml:"language"`
}

// WeatherBot configures the live weather fetcher and the location it reports on.
type WeatherBot struct {
	Name      string   `toml:"name"`
	Version   string   `toml:"version"`
	Region    string   `toml:"region"`
	Latitude  *float64 `toml:"latitude"`
	Longitude *float64 `toml:"longitude"`
}

// TravelBot configures the travel advisor and its destination table.
type TravelBot struct {
	Name         string        `toml:"name"`
	Version      string        `toml:"version"`
	Destinations []Destination `toml:"destinations"`
}

// Destination is a single city and its tip. Order in the file is display order.
type Destination struct {
	City string `toml:"city"`
	Tip  string `toml:"tip"`
}

// FileConfig represents the structure of config.toml.
type FileConfig struct {
	Chat    ChatBot    `toml:"chat"`
	Weather WeatherBot `toml:"weather"`
	Travel  TravelBot  `toml:"travel"`
}

var (
	defaultLatitude  = 40.55
	defaultLongitude = -74.28
)

// DefaultBots provides fallback bots if config.toml is not found.
var DefaultBots = Bots{
	Chat: ChatBot{
		Name:     "Chatty",
		Version:  "2.1",
		Language: "English",
	},
	Weather: WeatherBot{
		Name:      "SkyScan",
		Version:   "3.0",
		Region:    "Woodbridge, NJ",
		Latitude:  &defaultLatitude,
		Longitude: &defaultLongitude,
	},
	Travel: TravelBot{
		Name:    "GlobeTrotter",
		Version: "1.0",
		Destinations: []Destination{
			{City: "Tokyo", Tip: "Visit the Shibuya Crossing and pack comfortable walking shoes!"},
			{City: "Paris", Tip: "The Louvre is closed on Tuesdays; book your tickets in advance."},
			{City: "Rome", Tip: "Avoid the mid-day heat at the Colosseum; drink from the public fountains (Nasoni)."},
			{City: "New York", Tip: "Take the Staten Island Ferry for a free view of the Statue of Liberty."},
		},
	},
}

// LoadEnv loads the configuration from environment variables.
func (c Config) LoadEnv() (Config, error) {
	cfg := c

	if err := envconfig.Process("", &cfg); err != nil {
		return c, err
	}

	return cfg, nil
}

// LoadFile loads bot settings from config.toml file.
func (c *Config) LoadFile() error {
	configPath := c.ConfigFile
	if !filepath.IsAbs(configPath) {
		// Try current directory first
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			// Try executable directory
			execPath, err := os.Executable()
			if err == nil {
				configPath = filepath.Join(filepath.Dir(execPath), c.ConfigFile)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		c.Bots = DefaultBots
		return nil
	}

	var fileConfig FileConfig
	if _, err := toml.DecodeFile(configPath, &fileConfig); err != nil {
		return fmt.Errorf("failed to decode %s: %w", configPath, err)
	}

	c.Bots = Bots(fileConfig)
	c.applyDefaults()

	return nil
}

// applyDefaults fills every empty field from DefaultBots.
func (c *Config) applyDefaults() {
	d := DefaultBots

	c.Bots.Chat.Name = orDefault(c.Bots.Chat.Name, d.Chat.Name)
	c.Bots.Chat.Version = orDefault(c.Bots.Chat.Version, d.Chat.Version)
	c.Bots.Chat.Language = orDefault(c.Bots.Chat.Language, d.Chat.Language)

	c.Bots.Weather.Name = orDefault(c.Bots.Weather.Name, d.Weather.Name)
	c.Bots.Weather.Version = orDefault(c.Bots.Weather.Version, d.Weather.Version)
	c.Bots.Weather.Region = orDefault(c.Bots.Weather.Region, d.Weather.Region)
	if c.Bots.Weather.Latitude == nil {
		c.Bots.Weather.Latitude = d.Weather.Latitude
	}
	if c.Bots.Weather.Longitude == nil {
		c.Bots.Weather.Longitude = d.Weather.Longitude
	}

	c.Bots.Travel.Name = orDefault(c.Bots.Travel.Name, d.Travel.Name)
	c.Bots.Travel.Version = orDefault(c.Bots.Travel.Version, d.Travel.Version)
	if len(c.Bots.Travel.Destinations) == 0 {
		c.Bots.Travel.Destinations = d.Travel.Destinations
	}
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// Validate checks the values that cannot be defaulted.
func (c *Config) Validate() error {
	if c.WeatherTimeout <= 0 {
		return fmt.Errorf("WEATHER_TIMEOUT must be positive, got %s", c.WeatherTimeout)
	}

	seen := make(map[string]struct{}, len(c.Bots.Travel.Destinations))
	for i, d := range c.Bots.Travel.Destinations {
		key := strings.ToLower(strings.TrimSpace(d.City))
		if key == "" {
			return fmt.Errorf("travel destination %d has an empty city", i)
		}
		if _, ok := seen[key]; ok {
			return fmt.Errorf("travel destination %q is listed more than once", d.City)
		}
		seen[key] = struct{}{}
	}

	return nil
}

// Lat returns the configured weather latitude.
func (w WeatherBot) Lat() float64 {
	if w.Latitude == nil {
		return defaultLatitude
	}
	return *w.Latitude
}

// Lon returns the configured weather longitude.
func (w WeatherBot) Lon() float64 {
	if w.Longitude == nil {
		return defaultLongitude
	}
	return *w.Longitude
}

func NewConfig() (*Config, error) {
	var cfg Config
	loadedCfg, err := cfg.LoadEnv()
	if err != nil {
		return nil, err
	}

	// Load bots from config.toml
	if err := loadedCfg.LoadFile(); err != nil {
		return nil, err
	}

	if err := loadedCfg.Validate(); err != nil {
		return nil, err
	}

	return &loadedCfg, nil
}

func Module() fx.Option {
	return fx.Module(
		"config",
		fx.Provide(
			NewConfig,
		),
	)
}

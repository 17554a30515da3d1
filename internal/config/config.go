// Package config loads the daemon configuration from file and environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds all daemon configuration
type Config struct {
	SoundCloud SoundCloudConfig `mapstructure:"soundcloud"`
	Discord    DiscordConfig    `mapstructure:"discord"`
	Server     ServerConfig     `mapstructure:"server"`

	// UploadArtwork switches the resolver between asset uploads and plain
	// URL pass-through
	UploadArtwork bool `mapstructure:"upload_artwork"`

	// CustomMessages are extra rotation pages appended after title and artist
	CustomMessages []string `mapstructure:"custom_messages"`

	ListenButtonText string `mapstructure:"listen_button_text"`

	// ScrollDirection is "up" or "down" and controls how the two presence
	// text lines read through the page list
	ScrollDirection string `mapstructure:"scroll_direction"`

	Artworks ArtworksConfig `mapstructure:"artworks"`
}

// SoundCloudConfig holds the metadata service credentials
type SoundCloudConfig struct {
	ClientID string `mapstructure:"client_id"`
}

// DiscordConfig holds the presence application credentials
type DiscordConfig struct {
	ClientID string `mapstructure:"client_id"`
	APIKey   string `mapstructure:"api_key"`
}

// ServerConfig holds the ingest HTTP server settings
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// StaticArtwork is an optional fixed image URL for one payload slot
type StaticArtwork struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
}

// ArtworksConfig holds the static fallback images
type ArtworksConfig struct {
	Big   StaticArtwork `mapstructure:"big"`
	Small StaticArtwork `mapstructure:"small"`
}

// StaticBigURL returns the configured big image URL, or "" when disabled
func (c *Config) StaticBigURL() string {
	if c.Artworks.Big.Enabled {
		return c.Artworks.Big.URL
	}
	return ""
}

// StaticSmallURL returns the configured small image URL, or "" when disabled
func (c *Config) StaticSmallURL() string {
	if c.Artworks.Small.Enabled {
		return c.Artworks.Small.URL
	}
	return ""
}

// DefaultConfig returns the defaults applied under any file or env overrides
func DefaultConfig() *Config {
	return &Config{
		Server:           ServerConfig{Addr: "127.0.0.1:8014"},
		UploadArtwork:    false,
		ListenButtonText: "▶ Listen on SoundCloud",
		ScrollDirection:  "up",
	}
}

// Load reads config.yaml from ~/.config/soundbridge or the working directory,
// with SOUNDBRIDGE_* environment variables taking precedence. A missing file
// is fine; missing credentials are not.
func Load(logger *zap.Logger) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "soundbridge"))
	}

	v.SetEnvPrefix("SOUNDBRIDGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal only sees keys viper knows about, so bind the ones that have
	// no default explicitly
	for _, key := range []string{
		"soundcloud.client_id",
		"discord.client_id",
		"discord.api_key",
		"custom_messages",
		"artworks.big.enabled",
		"artworks.big.url",
		"artworks.small.enabled",
		"artworks.small.url",
	} {
		_ = v.BindEnv(key)
	}

	defaults := DefaultConfig()
	v.SetDefault("server.addr", defaults.Server.Addr)
	v.SetDefault("upload_artwork", defaults.UploadArtwork)
	v.SetDefault("listen_button_text", defaults.ListenButtonText)
	v.SetDefault("scroll_direction", defaults.ScrollDirection)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		logger.Info("configuration file loaded", zap.String("path", v.ConfigFileUsed()))
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if cfg.SoundCloud.ClientID == "" {
		return nil, errors.New("soundcloud.client_id is required")
	}
	if cfg.Discord.ClientID == "" {
		return nil, errors.New("discord.client_id is required")
	}
	if cfg.UploadArtwork && cfg.Discord.APIKey == "" {
		return nil, errors.New("discord.api_key is required when upload_artwork is enabled")
	}

	logger.Info("configuration loaded",
		zap.String("addr", cfg.Server.Addr),
		zap.Bool("uploadArtwork", cfg.UploadArtwork),
		zap.Int("customMessages", len(cfg.CustomMessages)))
	return cfg, nil
}

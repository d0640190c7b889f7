// Package config loads process settings from the environment, reading a
// local .env file first when one exists.
package config

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/tonebot/internal/audio"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultToneURL is a small public MP3 used by /tone
const DefaultToneURL = "https://file-examples.com/storage/fe9a7a0e9a8d3a198b1b0aa/2017/11/file_example_MP3_700KB.mp3"

type Config struct {
	// Discord
	DiscordToken  string `env:"DISCORD_TOKEN,required,notEmpty"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`
	WipeCommands  bool   `env:"WIPE_COMMANDS"`

	// Redis
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	StatsKey      string `env:"TONEBOT_STATS_KEY" envDefault:"tonebot:stats"`

	// Voice sessions
	MonitorInterval   time.Duration `env:"TONEBOT_MONITOR_INTERVAL" envDefault:"60s"`
	AutoDisconnect    time.Duration `env:"TONEBOT_AUTO_DISCONNECT" envDefault:"10s"`
	ShutdownTimeout   time.Duration `env:"TONEBOT_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	JoinRatePerSecond float64       `env:"TONEBOT_JOIN_RATE" envDefault:"2"`

	// Audio
	AudioSource string `env:"TONEBOT_AUDIO_SOURCE" envDefault:"ffmpeg"`
	ToneURL     string `env:"TONEBOT_TONE_URL"`
	FFmpegPath  string `env:"TONEBOT_FFMPEG_PATH" envDefault:"ffmpeg"`

	// Presentation
	MOTD  string `env:"TONEBOT_MOTD" envDefault:"a quick test tone"`
	Debug bool   `env:"TONEBOT_DEBUG"`
}

// Load reads .env when present (a missing file is not an error) and parses
// the environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.ToneURL == "" {
		cfg.ToneURL = DefaultToneURL
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch audio.Kind(c.AudioSource) {
	case audio.KindFFmpeg, audio.KindHTTP, audio.KindSilence:
	default:
		return fmt.Errorf("TONEBOT_AUDIO_SOURCE must be ffmpeg, http or silence, got %q", c.AudioSource)
	}
	if c.MonitorInterval <= 0 {
		return fmt.Errorf("TONEBOT_MONITOR_INTERVAL must be positive, got %s", c.MonitorInterval)
	}
	if c.AutoDisconnect <= 0 {
		return fmt.Errorf("TONEBOT_AUTO_DISCONNECT must be positive, got %s", c.AutoDisconnect)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("TONEBOT_SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	if c.JoinRatePerSecond < 0 {
		return fmt.Errorf("TONEBOT_JOIN_RATE cannot be negative, got %v", c.JoinRatePerSecond)
	}
	if c.WipeCommands && c.GuildID == "" {
		return fmt.Errorf("WIPE_COMMANDS requires GUILD_ID")
	}
	return nil
}

// Package config loads client settings from defaults, a TOML file, a .env file
// and SALT_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	AgentBus  = "bus"
	AgentAuto = "auto"

	TransportWebSocket = "websocket"
	TransportTCP       = "tcp"

	OverflowReject          = "reject"
	OverflowDropOldestState = "drop-oldest-state"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Server     ServerConfig
	Session    SessionConfig
	Bus        BusConfig
	Transcript TranscriptConfig
	Analytics  AnalyticsConfig
	Log        LogConfig
}

type ServerConfig struct {
	Addr      string
	Transport string
	Token     string
}

type SessionConfig struct {
	Agent            string
	ConnectTimeout   time.Duration
	HandshakeTimeout time.Duration
	// ReadTimeout bounds turn loop receives. Zero waits forever.
	ReadTimeout time.Duration
}

type BusConfig struct {
	// ToConsumerCapacity of zero means unbounded.
	ToConsumerCapacity int
	Overflow           string
	MaxMessagesPerTick int
}

type TranscriptConfig struct {
	// DatabaseURL is sqlite://<path> or postgresql://... Empty disables transcripts.
	DatabaseURL string
	Migrations  string
}

type AnalyticsConfig struct {
	// Brokers is empty when publishing is disabled.
	Brokers []string
	Topic   string
}

type LogConfig struct {
	Level string
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:      "ws://localhost:9000",
			Transport: TransportWebSocket,
		},
		Session: SessionConfig{
			Agent:            AgentBus,
			ConnectTimeout:   5 * time.Second,
			HandshakeTimeout: 10 * time.Second,
		},
		Bus: BusConfig{
			Overflow:           OverflowReject,
			MaxMessagesPerTick: 32,
		},
		Transcript: TranscriptConfig{
			Migrations: "migrations",
		},
		Analytics: AnalyticsConfig{
			Topic: "game-events",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

type fileConfig struct {
	Server struct {
		Addr      string `toml:"addr"`
		Transport string `toml:"transport"`
		Token     string `toml:"token"`
	} `toml:"server"`
	Session struct {
		Agent            string `toml:"agent"`
		ConnectTimeout   string `toml:"connect_timeout"`
		HandshakeTimeout string `toml:"handshake_timeout"`
		ReadTimeout      string `toml:"read_timeout"`
	} `toml:"session"`
	Bus struct {
		ToConsumerCapacity int    `toml:"to_consumer_capacity"`
		Overflow           string `toml:"overflow"`
		MaxMessagesPerTick int    `toml:"max_messages_per_tick"`
	} `toml:"bus"`
	Transcript struct {
		DatabaseURL string `toml:"database_url"`
		Migrations  string `toml:"migrations"`
	} `toml:"transcript"`
	Analytics struct {
		Brokers []string `toml:"brokers"`
		Topic   string   `toml:"topic"`
	} `toml:"analytics"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

// Load returns the defaults overridden by the keys present in the TOML file at path.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %s", ErrInvalidConfig, undecoded[0])
	}

	if meta.IsDefined("server", "addr") {
		cfg.Server.Addr = strings.TrimSpace(raw.Server.Addr)
	}
	if meta.IsDefined("server", "transport") {
		cfg.Server.Transport = strings.TrimSpace(raw.Server.Transport)
	}
	if meta.IsDefined("server", "token") {
		cfg.Server.Token = strings.TrimSpace(raw.Server.Token)
	}

	if meta.IsDefined("session", "agent") {
		cfg.Session.Agent = strings.TrimSpace(raw.Session.Agent)
	}
	durations := []struct {
		key string
		raw string
		dst *time.Duration
	}{
		{"connect_timeout", raw.Session.ConnectTimeout, &cfg.Session.ConnectTimeout},
		{"handshake_timeout", raw.Session.HandshakeTimeout, &cfg.Session.HandshakeTimeout},
		{"read_timeout", raw.Session.ReadTimeout, &cfg.Session.ReadTimeout},
	}
	for _, d := range durations {
		if !meta.IsDefined("session", d.key) {
			continue
		}
		v, err := time.ParseDuration(strings.TrimSpace(d.raw))
		if err != nil {
			return Config{}, fmt.Errorf("parse session.%s: %w", d.key, err)
		}
		*d.dst = v
	}

	if meta.IsDefined("bus", "to_consumer_capacity") {
		cfg.Bus.ToConsumerCapacity = raw.Bus.ToConsumerCapacity
	}
	if meta.IsDefined("bus", "overflow") {
		cfg.Bus.Overflow = strings.TrimSpace(raw.Bus.Overflow)
	}
	if meta.IsDefined("bus", "max_messages_per_tick") {
		cfg.Bus.MaxMessagesPerTick = raw.Bus.MaxMessagesPerTick
	}

	if meta.IsDefined("transcript", "database_url") {
		cfg.Transcript.DatabaseURL = strings.TrimSpace(raw.Transcript.DatabaseURL)
	}
	if meta.IsDefined("transcript", "migrations") {
		cfg.Transcript.Migrations = strings.TrimSpace(raw.Transcript.Migrations)
	}

	if meta.IsDefined("analytics", "brokers") {
		cfg.Analytics.Brokers = normalizeList(raw.Analytics.Brokers)
	}
	if meta.IsDefined("analytics", "topic") {
		cfg.Analytics.Topic = strings.TrimSpace(raw.Analytics.Topic)
	}

	if meta.IsDefined("log", "level") {
		cfg.Log.Level = strings.TrimSpace(raw.Log.Level)
	}

	return cfg, nil
}

// LoadEnvFile sets the variables in a .env file that are not already set.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg with the SALT_* variables that are set.
func (c *Config) ApplyEnv() error {
	strs := []struct {
		key string
		dst *string
	}{
		{"SALT_SERVER_ADDR", &c.Server.Addr},
		{"SALT_SERVER_TRANSPORT", &c.Server.Transport},
		{"SALT_SERVER_TOKEN", &c.Server.Token},
		{"SALT_AGENT", &c.Session.Agent},
		{"SALT_LOG_LEVEL", &c.Log.Level},
		{"SALT_TRANSCRIPT_URL", &c.Transcript.DatabaseURL},
		{"SALT_KAFKA_TOPIC", &c.Analytics.Topic},
	}
	for _, s := range strs {
		if v, ok := os.LookupEnv(s.key); ok {
			*s.dst = strings.TrimSpace(v)
		}
	}

	if v, ok := os.LookupEnv("SALT_KAFKA_BROKERS"); ok {
		c.Analytics.Brokers = normalizeList(strings.Split(v, ","))
	}
	if v, ok := os.LookupEnv("SALT_READ_TIMEOUT"); ok {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("parse SALT_READ_TIMEOUT: %w", err)
		}
		c.Session.ReadTimeout = d
	}
	if v, ok := os.LookupEnv("SALT_BUS_CAPACITY"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("parse SALT_BUS_CAPACITY: %w", err)
		}
		c.Bus.ToConsumerCapacity = n
	}

	return nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Server.Addr == "" {
		invalid("server.addr is empty")
	}
	switch c.Server.Transport {
	case TransportWebSocket, TransportTCP:
	default:
		invalid("server.transport %q is not %s or %s", c.Server.Transport, TransportWebSocket, TransportTCP)
	}
	switch c.Session.Agent {
	case AgentBus, AgentAuto:
	default:
		invalid("session.agent %q is not %s or %s", c.Session.Agent, AgentBus, AgentAuto)
	}
	if c.Session.ConnectTimeout < 0 || c.Session.HandshakeTimeout < 0 || c.Session.ReadTimeout < 0 {
		invalid("session timeouts must not be negative")
	}
	if c.Bus.ToConsumerCapacity < 0 {
		invalid("bus.to_consumer_capacity must not be negative")
	}
	switch c.Bus.Overflow {
	case OverflowReject, OverflowDropOldestState:
	default:
		invalid("bus.overflow %q is not %s or %s", c.Bus.Overflow, OverflowReject, OverflowDropOldestState)
	}
	if c.Bus.MaxMessagesPerTick <= 0 {
		invalid("bus.max_messages_per_tick must be positive")
	}
	if len(c.Analytics.Brokers) > 0 && c.Analytics.Topic == "" {
		invalid("analytics.topic is empty")
	}

	return errors.Join(errs...)
}

func normalizeList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}

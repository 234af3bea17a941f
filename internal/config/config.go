// Package config loads the application configuration from TOML files,
// searching a few candidate paths.
package config

import (
	"fmt"
	"time"

	"vidcall_server/pkg/constants"

	"github.com/BurntSushi/toml"
)

// MainConfig basic service settings
type MainConfig struct {
	AppName  string `toml:"appName"`  // used in log lines
	Host     string `toml:"host"`     // listen address, e.g. "0.0.0.0"
	Port     int    `toml:"port"`     // listen port, e.g. 8000
	Mode     string `toml:"mode"`     // "dev" or "release"
	ForceTLS bool   `toml:"forceTLS"` // redirect plain HTTP to HTTPS
	Locale   string `toml:"locale"`   // validator message language: "en" or "zh"
	TimeZone string `toml:"timeZone"` // IANA zone for call history labels
}

// MysqlConfig MySQL connection
type MysqlConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	DatabaseName string `toml:"databaseName"`
}

// RedisConfig Redis connection
type RedisConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Password string `toml:"password"` // empty when unauthenticated
	Db       int    `toml:"db"`
}

// LogConfig log rotation is handled by lumberjack
type LogConfig struct {
	LogPath    string `toml:"logPath"`    // directory
	FileName   string `toml:"fileName"`   // file name
	MaxSize    int    `toml:"maxSize"`    // MB per file
	MaxBackups int    `toml:"maxBackups"` // rotated files kept
	MaxAge     int    `toml:"maxAge"`     // days kept
	Level      string `toml:"level"`      // debug, info, warn, error
}

// KafkaConfig session events out, call records in
type KafkaConfig struct {
	MessageMode string        `toml:"messageMode"` // "channel" keeps events in-process, "kafka" also uses the broker
	HostPort    string        `toml:"hostPort"`    // e.g. "localhost:9092"
	LoginTopic  string        `toml:"loginTopic"`  // SIGNED_IN events
	LogoutTopic string        `toml:"logoutTopic"` // SIGNED_OUT events
	CallTopic   string        `toml:"callTopic"`   // call records from the call-execution subsystem
	GroupID     string        `toml:"groupId"`     // consumer group for the call topic
	Partition   int           `toml:"partition"`
	Timeout     time.Duration `toml:"timeout"` // seconds
}

// JWTConfig token signing
type JWTConfig struct {
	Secret             string `toml:"secret"`
	AccessTokenExpiry  int    `toml:"accessTokenExpiry"`  // minutes
	RefreshTokenExpiry int    `toml:"refreshTokenExpiry"` // hours
}

// RoomConfig group room settings
type RoomConfig struct {
	InviteCodeLength  int `toml:"inviteCodeLength"`
	InviteCodeRetries int `toml:"inviteCodeRetries"` // regenerations after a code collision
}

// Config aggregates every section.
type Config struct {
	MainConfig  `toml:"mainConfig"`
	MysqlConfig `toml:"mysqlConfig"`
	RedisConfig `toml:"redisConfig"`
	LogConfig   `toml:"logConfig"`
	KafkaConfig `toml:"kafkaConfig"`
	JWTConfig   `toml:"jwtConfig"`
	RoomConfig  `toml:"roomConfig"`
}

// lazily loaded singleton
var config *Config

// candidate paths, local overrides first
var searchPaths = []string{
	"configs/config_local.toml",
	"configs/config.toml",
	"../../configs/config_local.toml",
	"../../configs/config.toml",
}

// LoadConfig decodes the first readable file from the search paths.
func LoadConfig() error {
	for _, path := range searchPaths {
		if _, err := toml.DecodeFile(path, config); err == nil {
			config.applyDefaults()
			return nil
		}
	}
	config.applyDefaults()
	return fmt.Errorf("could not find configuration file in any of the search paths")
}

// LoadFile decodes a single file into a fresh Config.
func LoadFile(path string) (*Config, error) {
	c := new(Config)
	if _, err := toml.DecodeFile(path, c); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	c.applyDefaults()
	return c, nil
}

// GetConfig returns the singleton, loading it on first use.
func GetConfig() *Config {
	if config == nil {
		config = new(Config)
		_ = LoadConfig() // fall back to defaults
	}
	return config
}

func (c *Config) applyDefaults() {
	if c.MainConfig.Mode == "" {
		c.MainConfig.Mode = "dev"
	}
	if c.MainConfig.Locale == "" {
		c.MainConfig.Locale = "en"
	}
	if c.KafkaConfig.MessageMode == "" {
		c.KafkaConfig.MessageMode = "channel"
	}
	if c.KafkaConfig.GroupID == "" {
		c.KafkaConfig.GroupID = "call_history"
	}
	if c.RoomConfig.InviteCodeLength <= 0 {
		c.RoomConfig.InviteCodeLength = constants.INVITE_CODE_LENGTH
	}
	if c.RoomConfig.InviteCodeRetries < 0 {
		c.RoomConfig.InviteCodeRetries = constants.INVITE_CODE_RETRIES
	}
	if c.JWTConfig.AccessTokenExpiry == 0 {
		c.JWTConfig.AccessTokenExpiry = 60
	}
	if c.JWTConfig.RefreshTokenExpiry == 0 {
		c.JWTConfig.RefreshTokenExpiry = constants.REFRESH_TOKEN_EXPIRY_HOURS
	}
}

// Location resolves the configured time zone, defaulting to local time.
func (c *MainConfig) Location() *time.Location {
	if c.TimeZone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.Local
	}
	return loc
}

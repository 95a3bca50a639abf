// config.go
//
// Runtime configuration read from the environment (and .env in development).
//
// Environment variables:
//   ORACLE_URL=http://localhost:5000   base URL of the word oracle
//   ORACLE_TIMEOUT=10s                 per-request timeout
//   DB_PATH=./data/hangman.db          scoreboard and preferences
//   LOG_LEVEL=info                     zerolog level
//   LOG_FILE=hangman.log               log destination; the terminal is the UI
//   SESSION_TTL=12h                    sliding session lifetime
//   SESSION_SECRET=                    optional root secret for session tokens
//   SOUND=on                           sound cues
//   FPS=60                             frame rate of the render loop
//   SEED=0                             random seed; 0 picks one at start-up
//   MESSAGES_WIN_FILE=                 optional win message templates
//   MESSAGES_LOSS_FILE=                optional loss message templates

package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	OracleURL     string
	OracleTimeout time.Duration
	DBPath        string
	LogLevel      string
	LogFile       string
	SessionTTL    time.Duration
	SessionSecret string
	Sound         bool
	FPS           int
	Seed          uint64
	WinMessages   string
	LossMessages  string
}

func loadConfig() Config {
	return Config{
		OracleURL:     getEnv("ORACLE_URL", "http://localhost:5000"),
		OracleTimeout: getDuration("ORACLE_TIMEOUT", 10*time.Second),
		DBPath:        getEnv("DB_PATH", "./data/hangman.db"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFile:       getEnv("LOG_FILE", "hangman.log"),
		SessionTTL:    getDuration("SESSION_TTL", 12*time.Hour),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		Sound:         getBool("SOUND", true),
		FPS:           getInt("FPS", 60),
		Seed:          uint64(getInt("SEED", 0)),
		WinMessages:   os.Getenv("MESSAGES_WIN_FILE"),
		LossMessages:  os.Getenv("MESSAGES_LOSS_FILE"),
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Warn().Str("key", k).Str("value", v).Msg("invalid duration, using default")
		return def
	}
	return d
}

func getInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Warn().Str("key", k).Str("value", v).Msg("invalid number, using default")
		return def
	}
	return n
}

func getBool(k string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(k))) {
	case "":
		return def
	case "1", "on", "true", "yes":
		return true
	case "0", "off", "false", "no":
		return false
	}
	log.Warn().Str("key", k).Msg("invalid switch, using default")
	return def
}

// Package config loads settings from the environment (and an optional .env
// file), then lets command-line flags override them.
package config

import (
	"flag"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// ProblemID names exported files. It never affects drawing.
	ProblemID    string
	ExportDir    string
	HistoryLimit int

	Window WindowConfig
	Share  ShareConfig

	// Discover lists shared boards on the LAN instead of opening a window.
	Discover bool
}

type WindowConfig struct {
	Width  float32
	Height float32
}

// ShareConfig controls read-only frame sharing.
type ShareConfig struct {
	Enabled  bool
	Port     int
	Interval time.Duration
	MDNS     bool
}

// Load reads the environment. A missing .env file is not an error.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[CONFIG] No .env file found, using environment variables")
	}

	return &Config{
		ProblemID:    getEnv("MATHBOARD_PROBLEM_ID", ""),
		ExportDir:    getEnv("MATHBOARD_EXPORT_DIR", "."),
		HistoryLimit: getInt("MATHBOARD_HISTORY_LIMIT", 0),
		Window: WindowConfig{
			Width:  getFloat("MATHBOARD_WINDOW_WIDTH", 1200),
			Height: getFloat("MATHBOARD_WINDOW_HEIGHT", 800),
		},
		Share: ShareConfig{
			Enabled:  getBool("MATHBOARD_SHARE_ENABLED", false),
			Port:     getInt("MATHBOARD_SHARE_PORT", 8888),
			Interval: getDuration("MATHBOARD_SHARE_INTERVAL", 250*time.Millisecond),
			MDNS:     getBool("MATHBOARD_MDNS_ENABLED", true),
		},
	}
}

// ParseFlags applies command-line overrides on top of c. args excludes the
// program name.
func (c *Config) ParseFlags(name string, args []string) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&c.ProblemID, "problem", c.ProblemID, "problem id used to name exported files")
	fs.StringVar(&c.ExportDir, "export-dir", c.ExportDir, "directory for exported PNG and PDF files")
	fs.IntVar(&c.HistoryLimit, "history", c.HistoryLimit, "maximum undo depth, 0 for unlimited")
	fs.BoolVar(&c.Share.Enabled, "share", c.Share.Enabled, "serve the board read-only over HTTP and websocket")
	fs.IntVar(&c.Share.Port, "port", c.Share.Port, "port for frame sharing")
	fs.DurationVar(&c.Share.Interval, "share-interval", c.Share.Interval, "minimum time between shared frames")
	fs.BoolVar(&c.Share.MDNS, "mdns", c.Share.MDNS, "advertise the shared board over mDNS")
	fs.BoolVar(&c.Discover, "discover", c.Discover, "list shared boards on the local network and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if c.HistoryLimit < 0 {
		c.HistoryLimit = 0
	}
	if c.Share.Interval < 0 {
		c.Share.Interval = 0
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("[CONFIG] Ignoring invalid %s=%q", key, value)
	}
	return defaultValue
}

func getFloat(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 32); err == nil && f > 0 {
			return float32(f)
		}
		log.Printf("[CONFIG] Ignoring invalid %s=%q", key, value)
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

// getDuration accepts Go durations or a bare number of seconds.
func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if !strings.ContainsAny(value, "smh") {
			if secs, err := strconv.Atoi(value); err == nil {
				return time.Duration(secs) * time.Second
			}
		}
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		log.Printf("[CONFIG] Ignoring invalid %s=%q", key, value)
	}
	return defaultValue
}

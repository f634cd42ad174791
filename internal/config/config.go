package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

const (
	DefaultBaseURL  = "https://satisfactron.vercel.app/"
	DefaultDeviceID = "256d5952-6335-11f0-bda2-bf492b151827"
)

type Config struct {
	BaseURL    string
	DeviceID   string
	VoteValue  int
	Count      int
	Timeout    time.Duration
	DeviceName string
	Stats      bool
	Reset      bool
}

// ParseFlags reads the configuration from args, falling back to the
// environment and then to the defaults.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	voteValue, err := envInt("VOTE_VALUE", 1)
	if err != nil {
		return Config{}, err
	}
	count, err := envInt("VOTE_COUNT", 3)
	if err != nil {
		return Config{}, err
	}
	timeout, err := envDuration("HTTP_TIMEOUT", 0)
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("sendvote", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "url", envString("VOTES_BASE_URL", DefaultBaseURL), "Base URL of the votes API")
	fs.StringVar(&cfg.DeviceID, "device", envString("DEVICE_ID", DefaultDeviceID), "Device id the votes are sent for")
	fs.IntVar(&cfg.VoteValue, "value", voteValue, "Vote value")
	fs.IntVar(&cfg.Count, "n", count, "Number of votes to send")
	fs.DurationVar(&cfg.Timeout, "timeout", timeout, "HTTP timeout per request (0 keeps the transport default)")
	fs.StringVar(&cfg.DeviceName, "register", "", "Register a new device with this name and vote for it")
	fs.BoolVar(&cfg.Stats, "stats", false, "Print the device stats after sending")
	fs.BoolVar(&cfg.Reset, "reset", false, "Delete the device votes before sending")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Config{}, fmt.Errorf("invalid base URL %q", cfg.BaseURL)
	}
	if cfg.DeviceID == "" && cfg.DeviceName == "" {
		return Config{}, errors.New("device id required (use -device or DEVICE_ID env)")
	}
	if cfg.Count < 0 {
		return Config{}, errors.New("vote count must not be negative")
	}
	if cfg.Timeout < 0 {
		return Config{}, errors.New("timeout must not be negative")
	}

	return cfg, nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return n, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return d, nil
}

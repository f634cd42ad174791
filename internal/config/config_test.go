package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"VOTES_BASE_URL", "DEVICE_ID", "VOTE_VALUE", "VOTE_COUNT", "HTTP_TIMEOUT"} {
		t.Setenv(key, "")
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultDeviceID, cfg.DeviceID)
	assert.Equal(t, 1, cfg.VoteValue)
	assert.Equal(t, 3, cfg.Count)
	assert.Equal(t, time.Duration(0), cfg.Timeout)
	assert.Empty(t, cfg.DeviceName)
	assert.False(t, cfg.Stats)
	assert.False(t, cfg.Reset)
}

func TestParseFlags_EnvFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("VOTES_BASE_URL", "http://localhost:3000")
	t.Setenv("DEVICE_ID", "dev-env")
	t.Setenv("VOTE_VALUE", "4")
	t.Setenv("VOTE_COUNT", "1")
	t.Setenv("HTTP_TIMEOUT", "2s")

	cfg, err := ParseFlags(nil)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", cfg.BaseURL)
	assert.Equal(t, "dev-env", cfg.DeviceID)
	assert.Equal(t, 4, cfg.VoteValue)
	assert.Equal(t, 1, cfg.Count)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
}

func TestParseFlags_FlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("VOTES_BASE_URL", "http://localhost:3000")
	t.Setenv("VOTE_VALUE", "4")

	cfg, err := ParseFlags([]string{
		"-url", "https://example.com",
		"-device", "dev-flag",
		"-value", "5",
		"-n", "0",
		"-timeout", "500ms",
		"-register", "Kiosk",
		"-stats",
		"-reset",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://example.com", cfg.BaseURL)
	assert.Equal(t, "dev-flag", cfg.DeviceID)
	assert.Equal(t, 5, cfg.VoteValue)
	assert.Equal(t, 0, cfg.Count)
	assert.Equal(t, 500*time.Millisecond, cfg.Timeout)
	assert.Equal(t, "Kiosk", cfg.DeviceName)
	assert.True(t, cfg.Stats)
	assert.True(t, cfg.Reset)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"invalid vote value env", map[string]string{"VOTE_VALUE": "one"}, nil},
		{"invalid count env", map[string]string{"VOTE_COUNT": "x"}, nil},
		{"invalid timeout env", map[string]string{"HTTP_TIMEOUT": "soon"}, nil},
		{"relative url", nil, []string{"-url", "/api"}},
		{"negative count", nil, []string{"-n", "-1"}},
		{"negative timeout", nil, []string{"-timeout", "-1s"}},
		{"empty device", nil, []string{"-device", ""}},
		{"unknown flag", nil, []string{"-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := ParseFlags(tt.args)
			assert.Error(t, err)
		})
	}
}

func TestParseFlags_RegisterWithoutDeviceID(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{"-device", "", "-register", "Kiosk"})
	require.NoError(t, err)
	assert.Equal(t, "Kiosk", cfg.DeviceName)
}

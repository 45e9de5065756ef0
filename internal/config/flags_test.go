package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── ParseFlags ────────────────────────────────────────────────────────────────

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_All(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-c", "/etc/toolbox.json5",
		"-primary-dir", "/opt/toolbox/data",
		"-home-dir-name", "VaultData",
		"-allow-temp-fallback",
		"-memory-fallback",
		"-lock-timeout", "1s",
		"-socket", "/run/toolbox.sock",
		"-a", "localhost:9400",
		"-request-timeout", "20s",
		"-queue-size", "3",
		"-log-level", "info",
		"-log-file", "/tmp/host.log",
	})
	require.NoError(t, err)

	assert.Equal(t, "/etc/toolbox.json5", cfg.JSONFilePath)
	assert.Equal(t, Storage{
		PrimaryDir:        "/opt/toolbox/data",
		HomeDirName:       "VaultData",
		AllowTempFallback: true,
		MemoryFallback:    true,
		LockTimeout:       time.Second,
	}, cfg.Storage)
	assert.Equal(t, "/run/toolbox.sock", cfg.Bridge.SocketPath)
	assert.Equal(t, "localhost:9400", cfg.Bridge.Address)
	assert.Equal(t, 20*time.Second, cfg.Bridge.RequestTimeout)
	assert.Equal(t, 3, cfg.Workers.QueueSize)
	assert.Equal(t, Log{Level: "info", File: "/tmp/host.log"}, cfg.Log)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-config", "/etc/alt.json5"})
	require.NoError(t, err)
	assert.Equal(t, "/etc/alt.json5", cfg.JSONFilePath)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-bogus"}},
		{name: "bad duration", args: []string{"-lock-timeout", "later"}},
		{name: "non-loopback address", args: []string{"-a", "10.0.0.5:9400"}},
		{name: "address without port", args: []string{"-a", "localhost"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlags(tt.args)
			assert.Error(t, err)
		})
	}
}

// ── NetAddress ────────────────────────────────────────────────────────────────

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr error
		anyErr  bool
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ipv4 loopback", input: "127.0.0.1:1", want: NetAddress{Host: "127.0.0.1", Port: 1}},
		{name: "other loopback", input: "127.0.0.2:65535", want: NetAddress{Host: "127.0.0.2", Port: 65535}},
		{name: "public ip", input: "8.8.8.8:80", wantErr: ErrNonLoopbackAddress},
		{name: "empty host", input: ":80", wantErr: ErrNonLoopbackAddress},
		{name: "port zero", input: "localhost:0", anyErr: true},
		{name: "port too big", input: "localhost:70000", anyErr: true},
		{name: "port not a number", input: "localhost:http", anyErr: true},
		{name: "too many colons", input: "a:b:c", anyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, a)
				assert.Equal(t, tt.input, a.String())
			}
		})
	}
}

func TestNetAddress_StringEmpty(t *testing.T) {
	var a NetAddress
	assert.Equal(t, "", a.String())
}

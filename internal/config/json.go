package config

import (
	"fmt"
	"os"
	"time"

	"github.com/yosuke-furukawa/json5/encoding/json5"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the on-disk JSON5 shape.
// Durations are written as strings ("2s", "1m").
type StructuredJSONConfig struct {
	App struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		PrimaryDir        string `json:"primary_dir"`
		HomeDirName       string `json:"home_dir_name"`
		AllowTempFallback bool   `json:"allow_temp_fallback"`
		MemoryFallback    bool   `json:"memory_fallback"`
		LockTimeout       string `json:"lock_timeout"`
	} `json:"storage,omitempty"`

	Bridge struct {
		SocketPath      string `json:"socket"`
		Address         string `json:"address"`
		RequestTimeout  string `json:"request_timeout"`
		MaxPayloadBytes int64  `json:"max_payload_bytes"`
	} `json:"bridge,omitempty"`

	Workers struct {
		QueueSize int `json:"queue_size"`
	} `json:"workers,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	data, err := os.ReadFile(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}

	var jsonCfg StructuredJSONConfig
	if err := json5.Unmarshal(data, &jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	lockTimeout, err := parseDuration(jsonCfg.Storage.LockTimeout)
	if err != nil {
		return nil, fmt.Errorf("storage.lock_timeout: %w", err)
	}
	requestTimeout, err := parseDuration(jsonCfg.Bridge.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("bridge.request_timeout: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Name:    jsonCfg.App.Name,
			Version: jsonCfg.App.Version,
		},
		Storage: Storage{
			PrimaryDir:        jsonCfg.Storage.PrimaryDir,
			HomeDirName:       jsonCfg.Storage.HomeDirName,
			AllowTempFallback: jsonCfg.Storage.AllowTempFallback,
			MemoryFallback:    jsonCfg.Storage.MemoryFallback,
			LockTimeout:       lockTimeout,
		},
		Bridge: Bridge{
			SocketPath:      jsonCfg.Bridge.SocketPath,
			Address:         jsonCfg.Bridge.Address,
			RequestTimeout:  requestTimeout,
			MaxPayloadBytes: jsonCfg.Bridge.MaxPayloadBytes,
		},
		Workers: Workers{QueueSize: jsonCfg.Workers.QueueSize},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
		},
	}

	return cfg, nil
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}

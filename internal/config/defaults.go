package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

const (
	DefaultAppName         = "Toolbox"
	DefaultAppVersion      = "dev"
	DefaultHomeDirName     = "ToolboxData"
	DefaultLockTimeout     = 2 * time.Second
	DefaultRequestTimeout  = 15 * time.Second
	DefaultMaxPayloadBytes = 4 << 20
	DefaultQueueSize       = 16
	DefaultLogLevel        = "debug"

	socketName = "toolbox-vault.sock"
)

// DefaultSocketPath returns the bridge socket inside the XDG runtime
// directory, e.g. /run/user/1000/toolbox-vault.sock.
func DefaultSocketPath() string {
	return filepath.Join(xdg.RuntimeDir, socketName)
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:    DefaultAppName,
			Version: DefaultAppVersion,
		},
		Storage: Storage{
			HomeDirName: DefaultHomeDirName,
			LockTimeout: DefaultLockTimeout,
		},
		Bridge: Bridge{
			SocketPath:      DefaultSocketPath(),
			RequestTimeout:  DefaultRequestTimeout,
			MaxPayloadBytes: DefaultMaxPayloadBytes,
		},
		Workers: Workers{QueueSize: DefaultQueueSize},
		Log:     Log{Level: DefaultLogLevel},
	}
}

package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the host configuration flags from args.
//
// Flags:
//
//	-c/-config JSON5 file path with configs
//	-primary-dir application data root override
//	-home-dir-name fallback directory name under the user's home
//	-allow-temp-fallback enable the temp dir tier
//	-memory-fallback keep credentials in memory when no root resolves
//	-lock-timeout advisory lock wait (e.g. "2s")
//	-socket bridge unix socket path
//	-a bridge loopback address in format [host]:[port]
//	-request-timeout bridge request timeout (e.g. "15s")
//	-queue-size single-writer queue size
//	-log-level log level
//	-log-file log file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	var bridgeAddress NetAddress
	var jsonConfigPath string
	var primaryDir, homeDirName string
	var allowTemp, memoryFallback bool
	var lockTimeout, requestTimeout time.Duration
	var socketPath string
	var queueSize int
	var logLevel, logFile string

	fs := flag.NewFlagSet("toolbox", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&jsonConfigPath, "c", "", "JSON5 config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON5 config file path (alias)")
	fs.StringVar(&primaryDir, "primary-dir", "", "Application data root")
	fs.StringVar(&homeDirName, "home-dir-name", "", "Fallback directory name under the home directory")
	fs.BoolVar(&allowTemp, "allow-temp-fallback", false, "Allow the temp dir fallback tier")
	fs.BoolVar(&memoryFallback, "memory-fallback", false, "Keep credentials in memory when storage is unavailable")
	fs.DurationVar(&lockTimeout, "lock-timeout", 0, "Advisory lock timeout (e.g., 2s)")
	fs.StringVar(&socketPath, "socket", "", "Bridge unix socket path")
	fs.Var(&bridgeAddress, "a", "Bridge loopback address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Bridge request timeout (e.g., 15s)")
	fs.IntVar(&queueSize, "queue-size", 0, "Store queue size")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Storage: Storage{
			PrimaryDir:        primaryDir,
			HomeDirName:       homeDirName,
			AllowTempFallback: allowTemp,
			MemoryFallback:    memoryFallback,
			LockTimeout:       lockTimeout,
		},
		Bridge: Bridge{
			SocketPath:     socketPath,
			Address:        bridgeAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{QueueSize: queueSize},
		Log:          Log{Level: logLevel, File: logFile},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// The bridge must never be reachable from other machines, so only
// "localhost" and loopback IPs are accepted.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if !isLoopbackHost(host) {
		return ErrNonLoopbackAddress
	}

	a.Host = host
	a.Port = port
	return nil
}

func isLoopbackHost(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a facade listen address in format [host]:[port]
//	-d buffer database DSN
//	-remote-address central API base URL
//	-remote-timeout outbound request timeout (e.g., "15s")
//	-probe-interval connectivity probe interval (e.g., "30s")
//	-drain-interval fallback drain interval (e.g., "5m")
//	-max-retries retry ceiling for rejected queue entries
//	-token-warn-window device token expiry warning window (e.g., "72h")
//	-device-token device JWT issued by the central API
//	-hash-key transport payload digest key
//	-seal-secret at-rest payload sealing secret
//	-log-level log level name
//	-log-file log file path for TUI mode
//	-tui run the interactive status screen
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var facadeAddress NetAddress
	var databaseDSN string
	var remoteAddress string
	var remoteTimeout time.Duration
	var probeInterval time.Duration
	var drainInterval time.Duration
	var maxRetries int
	var tokenWarnWindow time.Duration
	var deviceToken string
	var hashKey string
	var sealSecret string
	var logLevel string
	var logFile string
	var tuiMode bool
	var jsonConfigPath string

	flag.Var(&facadeAddress, "a", "Facade net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Buffer database DSN")
	flag.StringVar(&remoteAddress, "remote-address", "", "Central API base URL")
	flag.DurationVar(&remoteTimeout, "remote-timeout", 0, "Outbound request timeout (e.g., 15s)")
	flag.DurationVar(&probeInterval, "probe-interval", 0, "Connectivity probe interval (e.g., 30s)")
	flag.DurationVar(&drainInterval, "drain-interval", 0, "Fallback drain interval (e.g., 5m)")
	flag.IntVar(&maxRetries, "max-retries", 0, "Retry ceiling for rejected queue entries")
	flag.DurationVar(&tokenWarnWindow, "token-warn-window", 0, "Device token expiry warning window (e.g., 72h)")
	flag.StringVar(&deviceToken, "device-token", "", "Device JWT issued by the central API")
	flag.StringVar(&hashKey, "hash-key", "", "Transport payload digest key")
	flag.StringVar(&sealSecret, "seal-secret", "", "At-rest payload sealing secret")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&logFile, "log-file", "", "Log file path for TUI mode")
	flag.BoolVar(&tuiMode, "tui", false, "Run the interactive status screen")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			DeviceToken: deviceToken,
			HashKey:     hashKey,
			SealSecret:  sealSecret,
			LogLevel:    logLevel,
			LogFile:     logFile,
			TUIMode:     tuiMode,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Remote: Remote{
			Address:        remoteAddress,
			RequestTimeout: remoteTimeout,
		},
		Facade: Facade{
			HTTPAddress: facadeAddress.String(),
		},
		Workers: Workers{
			ProbeInterval:   probeInterval,
			DrainInterval:   drainInterval,
			MaxRetries:      maxRetries,
			TokenWarnWindow: tokenWarnWindow,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string so that the
// merge step treats the flag as unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

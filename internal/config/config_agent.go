package config

import (
	"fmt"
	"time"
)

// AgentApp holds application-level settings derived from the shared
// structured config.
type AgentApp struct {
	// DeviceToken is the device JWT attached to every outbound call.
	DeviceToken string
	// HashKey is the HMAC key used for outbound payload digests.
	HashKey string
	// SealSecret is the secret the at-rest sealing key is derived from.
	SealSecret string
	// LogLevel is the zerolog level name.
	LogLevel string
	// LogFile is the log destination in TUI mode; empty means stdout.
	LogFile string
	// TUIMode selects the interactive status screen over daemon mode.
	TUIMode bool
	// Version is the agent's semantic version string.
	Version string
}

// AgentRemote holds network settings for the central API connection.
type AgentRemote struct {
	// Address is the central API base URL.
	Address string
	// RequestTimeout is the per-call timeout for outbound requests.
	RequestTimeout time.Duration
}

// AgentFacade holds settings for the loopback HTTP server.
type AgentFacade struct {
	// HTTPAddress is the facade listen address.
	HTTPAddress string
}

// AgentDB contains buffer database connection settings.
type AgentDB struct {
	// DSN is the SQLite path or PostgreSQL connection string.
	DSN string
}

// AgentStorage groups buffer storage settings.
type AgentStorage struct {
	// DB holds buffer database settings.
	DB AgentDB
}

// AgentWorkers contains background loop settings.
type AgentWorkers struct {
	// ProbeInterval is the connectivity probe cadence.
	ProbeInterval time.Duration
	// DrainInterval is the fallback drain trigger cadence.
	DrainInterval time.Duration
	// MaxRetries is the rejected-entry retry ceiling.
	MaxRetries int
	// TokenWarnWindow is the device token expiry warning window.
	TokenWarnWindow time.Duration
}

// AgentConfig is the top-level agent configuration assembled from
// [StructuredConfig].
type AgentConfig struct {
	// App contains application-level settings.
	App AgentApp
	// Remote contains central API connection settings.
	Remote AgentRemote
	// Facade contains loopback server settings.
	Facade AgentFacade
	// Storage contains buffer storage settings.
	Storage AgentStorage
	// Workers contains background loop settings.
	Workers AgentWorkers
}

// GetAgentConfig builds and validates the agent config view from the merged
// structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the agent runtime, and validates the resulting [AgentConfig].
func GetAgentConfig() (*AgentConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	agentCfg := &AgentConfig{
		App: AgentApp{
			DeviceToken: cfg.App.DeviceToken,
			HashKey:     cfg.App.HashKey,
			SealSecret:  cfg.App.SealSecret,
			LogLevel:    cfg.App.LogLevel,
			LogFile:     cfg.App.LogFile,
			TUIMode:     cfg.App.TUIMode,
			Version:     cfg.App.Version,
		},
		Remote: AgentRemote{
			Address:        cfg.Remote.Address,
			RequestTimeout: cfg.Remote.RequestTimeout,
		},
		Facade: AgentFacade{
			HTTPAddress: cfg.Facade.HTTPAddress,
		},
		Storage: AgentStorage{
			DB: AgentDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: AgentWorkers{
			ProbeInterval:   cfg.Workers.ProbeInterval,
			DrainInterval:   cfg.Workers.DrainInterval,
			MaxRetries:      cfg.Workers.MaxRetries,
			TokenWarnWindow: cfg.Workers.TokenWarnWindow,
		},
	}

	return agentCfg, agentCfg.validate()
}

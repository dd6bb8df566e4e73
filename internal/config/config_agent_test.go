package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAgentConfig() *AgentConfig {
	return &AgentConfig{
		App: AgentApp{
			DeviceToken: "ey.device.token",
			HashKey:     "transport_hash",
			SealSecret:  "seal_secret",
			LogLevel:    "info",
		},
		Remote: AgentRemote{
			Address:        "https://api.example.com",
			RequestTimeout: 15 * time.Second,
		},
		Facade: AgentFacade{
			HTTPAddress: "127.0.0.1:8750",
		},
		Storage: AgentStorage{
			DB: AgentDB{DSN: "file:/var/lib/agent/buffer.db"},
		},
		Workers: AgentWorkers{
			ProbeInterval:   30 * time.Second,
			DrainInterval:   5 * time.Minute,
			MaxRetries:      5,
			TokenWarnWindow: 72 * time.Hour,
		},
	}
}

// TestAgentConfigValidate_OK verifies that a fully populated config passes.
func TestAgentConfigValidate_OK(t *testing.T) {
	require.NoError(t, validAgentConfig().validate())
}

// TestAgentConfigValidate_Storage verifies the storage rules: an empty DSN
// and an in-memory DSN are both rejected, since either would lose buffered
// records on restart.
func TestAgentConfigValidate_Storage(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
	}{
		{"empty DSN", ""},
		{"sqlite in-memory", "file::memory:?cache=shared"},
		{"plain memory keyword", ":memory:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validAgentConfig()
			cfg.Storage.DB.DSN = tt.dsn

			assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
		})
	}
}

// TestAgentConfigValidate_Remote verifies remote endpoint requirements.
func TestAgentConfigValidate_Remote(t *testing.T) {
	cfg := validAgentConfig()
	cfg.Remote.Address = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidRemoteConfigs)

	cfg = validAgentConfig()
	cfg.Remote.RequestTimeout = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidRemoteConfigs)
}

// TestAgentConfigValidate_Facade verifies that the facade address must be set.
func TestAgentConfigValidate_Facade(t *testing.T) {
	cfg := validAgentConfig()
	cfg.Facade.HTTPAddress = ""

	assert.ErrorIs(t, cfg.validate(), ErrInvalidFacadeConfigs)
}

// TestAgentConfigValidate_Workers verifies background loop requirements.
func TestAgentConfigValidate_Workers(t *testing.T) {
	cfg := validAgentConfig()
	cfg.Workers.ProbeInterval = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)

	cfg = validAgentConfig()
	cfg.Workers.DrainInterval = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)

	cfg = validAgentConfig()
	cfg.Workers.MaxRetries = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)
}

// TestAgentConfigValidate_App verifies identity and key requirements.
func TestAgentConfigValidate_App(t *testing.T) {
	cfg := validAgentConfig()
	cfg.App.DeviceToken = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)

	cfg = validAgentConfig()
	cfg.App.HashKey = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)

	cfg = validAgentConfig()
	cfg.App.SealSecret = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations, so a config file can say "30s" instead of
// nanosecond integers.
type StructuredJSONConfig struct {
	App struct {
		DeviceToken string `json:"device_token"`
		HashKey     string `json:"hash_key"`
		SealSecret  string `json:"seal_secret"`
		LogLevel    string `json:"log_level"`
		LogFile     string `json:"log_file"`
		Version     string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Remote struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"remote,omitempty"`

	Facade struct {
		HTTPAddress string `json:"http_address"`
	} `json:"facade,omitempty"`

	Workers struct {
		ProbeInterval   Duration `json:"probe_interval"`
		DrainInterval   Duration `json:"drain_interval"`
		MaxRetries      int      `json:"max_retries"`
		TokenWarnWindow Duration `json:"token_warn_window"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			DeviceToken: jsonCfg.App.DeviceToken,
			HashKey:     jsonCfg.App.HashKey,
			SealSecret:  jsonCfg.App.SealSecret,
			LogLevel:    jsonCfg.App.LogLevel,
			LogFile:     jsonCfg.App.LogFile,
			Version:     jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Remote: Remote{
			Address:        jsonCfg.Remote.Address,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
		},
		Facade: Facade{
			HTTPAddress: jsonCfg.Facade.HTTPAddress,
		},
		Workers: Workers{
			ProbeInterval:   time.Duration(jsonCfg.Workers.ProbeInterval),
			DrainInterval:   time.Duration(jsonCfg.Workers.DrainInterval),
			MaxRetries:      jsonCfg.Workers.MaxRetries,
			TokenWarnWindow: time.Duration(jsonCfg.Workers.TokenWarnWindow),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON config files.
type StructuredJSONConfig struct {
	App struct {
		DataDir         string `json:"data_dir"`
		JavaBinary      string `json:"java_binary"`
		MinJavaMajor    int    `json:"min_java_major"`
		JavaDownloadURL string `json:"java_download_url"`
		EulaURL         string `json:"eula_url"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		CoreURL        string   `json:"core_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Process struct {
		CommandTimeout Duration `json:"command_timeout"`
	} `json:"process,omitempty"`

	Workers struct {
		CoreWatchDisabled bool `json:"core_watch_disabled"`
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
			DataDir:         jsonCfg.App.DataDir,
			JavaBinary:      jsonCfg.App.JavaBinary,
			MinJavaMajor:    jsonCfg.App.MinJavaMajor,
			JavaDownloadURL: jsonCfg.App.JavaDownloadURL,
			EulaURL:         jsonCfg.App.EulaURL,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Adapter: Adapter{
			CoreURL:        jsonCfg.Adapter.CoreURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Process: Process{
			CommandTimeout: time.Duration(jsonCfg.Process.CommandTimeout),
		},
		Workers: Workers{
			CoreWatchDisabled: jsonCfg.Workers.CoreWatchDisabled,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

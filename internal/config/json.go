// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		LogLevel string `json:"log_level"`
		Version  string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		Company        string   `json:"company"`
		RequestTimeout Duration `json:"request_timeout"`
		MinInterval    Duration `json:"min_interval"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncInterval      Duration `json:"sync_interval"`
		ReconcileInterval Duration `json:"reconcile_interval"`
		HistoryBatchDays  int      `json:"history_batch_days"`
		HistoryBatchDelay Duration `json:"history_batch_delay"`
	} `json:"workers,omitempty"`

	Sync struct {
		VoucherKinds []string `json:"voucher_kinds"`
		DraftKinds   []string `json:"draft_kinds"`
	} `json:"sync,omitempty"`
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
			LogLevel: jsonCfg.App.LogLevel,
			Version:  jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			Company:        jsonCfg.Adapter.Company,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			MinInterval:    time.Duration(jsonCfg.Adapter.MinInterval),
		},
		Workers: Workers{
			SyncInterval:      time.Duration(jsonCfg.Workers.SyncInterval),
			ReconcileInterval: time.Duration(jsonCfg.Workers.ReconcileInterval),
			HistoryBatchDays:  jsonCfg.Workers.HistoryBatchDays,
			HistoryBatchDelay: time.Duration(jsonCfg.Workers.HistoryBatchDelay),
		},
		Sync: Sync{
			VoucherKinds: jsonCfg.Sync.VoucherKinds,
			DraftKinds:   jsonCfg.Sync.DraftKinds,
		},
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

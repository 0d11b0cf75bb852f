// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-a control API address in format [host]:[port]
//	-d database DSN (sqlite path or postgres URL)
//	-c/-config json file path with configs
//	-remote remote engine URL
//	-company remote company name
//	-request-timeout remote request timeout (e.g., "30s", "1m")
//	-min-interval minimum spacing between remote calls (e.g., "2s")
//	-sync-interval incremental polling interval, 0 for manual mode
//	-reconcile-interval reconciliation interval, 0 to disable
//	-log-level zerolog level name
func ParseFlags(args []string) (*StructuredConfig, error) {
	return parseFlags(args)
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("voucher-sync", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var remoteAddress string
	var company string
	var requestTimeout time.Duration
	var minInterval time.Duration
	var syncInterval time.Duration
	var reconcileInterval time.Duration
	var logLevel string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&remoteAddress, "remote", "", "Remote engine URL")
	fs.StringVar(&company, "company", "", "Remote company name")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&minInterval, "min-interval", 0, "Minimum spacing between remote calls (e.g., 2s)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Incremental polling interval, 0 for manual mode")
	fs.DurationVar(&reconcileInterval, "reconcile-interval", 0, "Reconciliation interval, 0 to disable")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress,
			Company:        company,
			RequestTimeout: requestTimeout,
			MinInterval:    minInterval,
		},
		Workers: Workers{
			SyncInterval:      syncInterval,
			ReconcileInterval: reconcileInterval,
		},
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

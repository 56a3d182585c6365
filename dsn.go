// Go CQL Driver - A driver for the Cassandra CQL binary protocol
//
// Copyright 2026 The Go-CQL-Driver Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package cql

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Data Source Name Parser
var dsnPattern = regexp.MustCompile(
	`^(?:(?P<user>.*?)(?::(?P<passwd>.*))?@)?` + // [user[:password]@]
		`(?:(?P<net>[^\(]*)(?:\((?P<addr>[^\)]*)\))?)?` + // [net[(addr)]]
		`\/(?P<keyspace>.*?)` + // /keyspace
		`(?:\?(?P<params>[^\?]*))?$`) // [?param1=value1&paramN=valueN]

var consistencyLevels = map[string]Consistency{
	"any":          ConsistencyAny,
	"one":          ConsistencyOne,
	"two":          ConsistencyTwo,
	"three":        ConsistencyThree,
	"quorum":       ConsistencyQuorum,
	"all":          ConsistencyAll,
	"local_quorum": ConsistencyLocalQuorum,
	"each_quorum":  ConsistencyEachQuorum,
	"local_one":    ConsistencyLocalOne,
}

func parseConsistency(s string) (Consistency, error) {
	if c, ok := consistencyLevels[strings.ToLower(s)]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("unknown consistency level %q", s)
}

// String returns the lowercase level name, e.g. "local_quorum".
func (c Consistency) String() string {
	for name, level := range consistencyLevels {
		if level == c {
			return name
		}
	}
	return fmt.Sprintf("consistency(%d)", uint16(c))
}

// Config is the settings of one connection.
type Config struct {
	User        string
	Passwd      string
	Addr        string // host:port, port defaults to 9042
	Keyspace    string
	Consistency Consistency   // default level for USE; default one
	Retries     int           // additional connect attempts after the first
	Timeout     time.Duration // dial timeout; zero means none
	Backoff     string        // interval between connect attempts: exponential, constant or none
	CQLVersion  string
}

// NewConfig creates a new Config and sets default values.
func NewConfig() *Config {
	return &Config{
		Addr:        "127.0.0.1:" + defaultPort,
		Consistency: ConsistencyOne,
		Backoff:     "exponential",
		CQLVersion:  defaultCQLVersion,
	}
}

func (cfg *Config) normalize() error {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:" + defaultPort
	}
	if cfg.CQLVersion == "" {
		cfg.CQLVersion = defaultCQLVersion
	}
	if cfg.Backoff == "" {
		cfg.Backoff = "exponential"
	}
	switch cfg.Backoff {
	case "exponential", "constant", "none":
	default:
		return fmt.Errorf("unknown backoff strategy %q", cfg.Backoff)
	}
	if cfg.Retries < 0 {
		return errors.New("retries must not be negative")
	}
	return nil
}

// ParseDSN parses a DSN string of the form
// user:password@tcp(host:9042)/keyspace?consistency=quorum&retries=2
// into a Config.
func ParseDSN(dsn string) (*Config, error) {
	matches := dsnPattern.FindStringSubmatch(dsn)
	if matches == nil {
		return nil, fmt.Errorf("invalid DSN: %q", dsn)
	}
	names := dsnPattern.SubexpNames()

	cfg := NewConfig()
	var netName string

	for i, match := range matches {
		switch names[i] {
		case "user":
			cfg.User = match
		case "passwd":
			cfg.Passwd = match
		case "net":
			netName = match
		case "addr":
			if match != "" {
				cfg.Addr = match
			}
		case "keyspace":
			cfg.Keyspace = match
		case "params":
			if match == "" {
				continue
			}
			for _, v := range strings.Split(match, "&") {
				param := strings.SplitN(v, "=", 2)
				if len(param) != 2 {
					continue
				}
				if err := cfg.applyParam(param[0], param[1]); err != nil {
					return nil, err
				}
			}
		}
	}

	if netName != "" && netName != "tcp" {
		return nil, fmt.Errorf("unsupported network %q, only tcp is supported", netName)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) applyParam(key, value string) (err error) {
	switch key {
	case "consistency":
		cfg.Consistency, err = parseConsistency(value)

	case "retries":
		cfg.Retries, err = strconv.Atoi(value)
		if err == nil && cfg.Retries < 0 {
			err = errors.New("retries must not be negative")
		}

	case "timeout":
		cfg.Timeout, err = time.ParseDuration(value)

	case "backoff":
		cfg.Backoff = strings.ToLower(value)

	case "cql_version":
		cfg.CQLVersion = value

	default:
		err = fmt.Errorf("unsupported DSN parameter %q", key)
	}
	return
}

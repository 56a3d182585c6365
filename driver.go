// Copyright 2026 The Go-CQL-Driver Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

// Go CQL Driver - A native driver for the Cassandra CQL binary protocol
package cql

import (
	"net"
	"time"
)

// Open connects using a DSN string of the form
// user:password@tcp(host:9042)/keyspace?consistency=quorum&retries=2
func Open(dsn string) (*Conn, error) {
	cfg, err := ParseDSN(dsn)
	if err != nil {
		return nil, err
	}
	return Connect(cfg)
}

// Connect opens a TCP connection to the configured host and drives the
// startup handshake. The configured retry count bounds additional dial
// attempts; the handshake itself is never retried.
func Connect(cfg *Config) (*Conn, error) {
	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	network, addr, err := resolveAddr(cfg.Addr)
	if err != nil {
		errLog.Print(err)
		return nil, err
	}

	backoff := dialBackoff(cfg.Backoff)
	var netConn net.Conn
	for attempt := 1; ; attempt++ {
		netConn, err = dial(network, addr, cfg.Timeout)
		if err == nil {
			break
		}
		errLog.Print(err)
		if attempt > cfg.Retries {
			return nil, err
		}
		time.Sleep(backoff.NextInterval(attempt))
	}

	cn := &Conn{
		cfg:     cfg,
		netConn: netConn,
		buf:     newBuffer(netConn),
	}
	if err := cn.handshake(); err != nil {
		cn.cleanup()
		return nil, err
	}
	return cn, nil
}

// resolveAddr splits host and port, resolving host names through DNS.
// The network is tcp6 exactly when the address used is an IPv6
// literal, tcp4 otherwise.
func resolveAddr(addr string) (network, hostport string, err error) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		// no port given
		host, port = addr, defaultPort
		if len(host) > 1 && host[0] == '[' && host[len(host)-1] == ']' {
			host = host[1 : len(host)-1]
		}
	}

	ip := net.ParseIP(host)
	if ip == nil {
		ips, err := net.LookupIP(host)
		if err != nil {
			return "", "", err
		}
		ip = ips[0]
		for _, candidate := range ips {
			if candidate.To4() != nil {
				ip = candidate
				break
			}
		}
	}

	if ip.To4() != nil {
		return "tcp4", net.JoinHostPort(ip.String(), port), nil
	}
	return "tcp6", net.JoinHostPort(ip.String(), port), nil
}

func dial(network, addr string, timeout time.Duration) (net.Conn, error) {
	if timeout > 0 {
		return net.DialTimeout(network, addr, timeout)
	}
	return net.Dial(network, addr)
}

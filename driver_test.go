// Go CQL Driver - A driver for the Cassandra CQL binary protocol
//
// Copyright 2026 The Go-CQL-Driver Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package cql

import "testing"

func TestResolveAddrIPv4Literal(t *testing.T) {
	network, addr, err := resolveAddr("10.0.0.1:9042")
	if err != nil {
		t.Fatal(err)
	}
	if network != "tcp4" || addr != "10.0.0.1:9042" {
		t.Errorf("resolveAddr => %s %s", network, addr)
	}
}

func TestResolveAddrIPv6Literal(t *testing.T) {
	network, addr, err := resolveAddr("[::1]:9042")
	if err != nil {
		t.Fatal(err)
	}
	if network != "tcp6" || addr != "[::1]:9042" {
		t.Errorf("resolveAddr => %s %s", network, addr)
	}
}

func TestResolveAddrDefaultPort(t *testing.T) {
	network, addr, err := resolveAddr("127.0.0.1")
	if err != nil {
		t.Fatal(err)
	}
	if network != "tcp4" || addr != "127.0.0.1:9042" {
		t.Errorf("resolveAddr => %s %s", network, addr)
	}
}

func TestConnectBadBackoff(t *testing.T) {
	cfg := NewConfig()
	cfg.Backoff = "fibonacci"
	if _, err := Connect(cfg); err == nil {
		t.Error("expected an error for an unknown backoff strategy")
	}
}

// Go CQL Driver - A driver for the Cassandra CQL binary protocol
//
// Copyright 2026 The Go-CQL-Driver Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package cql

import (
	"net"
	"strings"
)

// Conn is one session on one TCP connection. It is not safe for
// concurrent use: the wire carries a single stream with one request in
// flight, so callers must serialize access themselves.
type Conn struct {
	cfg     *Config
	netConn net.Conn
	buf     *buffer
}

// handshake drives STARTUP to READY, answering AUTHENTICATE on the
// way, and selects the configured keyspace.
func (cn *Conn) handshake() error {
	if err := cn.writeStartupFrame(); err != nil {
		return err
	}
	op, body, err := cn.readFrame()
	if err != nil {
		return err
	}

	switch op {
	case OpReady:
	case OpAuthenticate:
		if err = cn.handleAuthenticate(body); err != nil {
			return err
		}
	default:
		cn.cleanup()
		return &ProtocolError{Reason: "unexpected opcode in response to STARTUP"}
	}

	if cn.cfg.Keyspace != "" {
		return cn.UseKeyspace(cn.cfg.Keyspace)
	}
	return nil
}

// cleanup closes the socket and marks the connection unusable. All
// later calls fail fast with ErrInvalidConn.
func (cn *Conn) cleanup() {
	if cn.netConn == nil {
		return
	}
	cn.netConn.Close()
	cn.netConn = nil
	cn.buf = nil
}

// Close releases the connection. It is idempotent and tolerates being
// called after a prior failure.
func (cn *Conn) Close() error {
	cn.cleanup()
	return nil
}

// Query sends a CQL query string at the given consistency level and
// returns the decoded result.
func (cn *Conn) Query(query string, consistency Consistency) (*Result, error) {
	if cn.netConn == nil {
		return nil, ErrInvalidConn
	}
	if err := cn.writeQueryFrame(query, consistency); err != nil {
		return nil, err
	}
	return cn.readResult()
}

// Prepare sends a PREPARE for the query and returns the prepared
// statement with its bind parameter specs.
func (cn *Conn) Prepare(query string) (*Stmt, error) {
	if cn.netConn == nil {
		return nil, ErrInvalidConn
	}
	if err := cn.writePrepareFrame(query); err != nil {
		return nil, err
	}
	res, err := cn.readResult()
	if err != nil {
		return nil, err
	}
	if res.preparedID == nil {
		cn.cleanup()
		return nil, &ProtocolError{Reason: "expected Prepared result"}
	}
	return &Stmt{id: res.preparedID, columns: res.preparedColumns}, nil
}

// Execute runs a prepared statement. values is either a
// map[string]interface{} keyed by column name or a positional
// []interface{} in the statement's declared order.
func (cn *Conn) Execute(stmt *Stmt, values interface{}, consistency Consistency) (*Result, error) {
	if cn.netConn == nil {
		return nil, ErrInvalidConn
	}
	packed, err := stmt.bindValues(values)
	if err != nil {
		return nil, err
	}
	if err := cn.writeExecuteFrame(stmt, packed, consistency); err != nil {
		return nil, err
	}
	return cn.readResult()
}

// Options sends OPTIONS and returns the server's SUPPORTED multimap.
func (cn *Conn) Options() (map[string][]string, error) {
	if cn.netConn == nil {
		return nil, ErrInvalidConn
	}
	op, body, err := cn.request(OpOptions, nil)
	if err != nil {
		return nil, err
	}
	if op != OpSupported {
		cn.cleanup()
		return nil, &ProtocolError{Reason: "expected SUPPORTED in response to OPTIONS"}
	}
	m, err := newCursor(body).readStringMultimap()
	if err != nil {
		cn.cleanup()
		return nil, err
	}
	return m, nil
}

// UseKeyspace switches the session to the given keyspace and verifies
// the server's SetKeyspace reply names it.
func (cn *Conn) UseKeyspace(keyspace string) error {
	res, err := cn.Query("USE "+keyspace, cn.cfg.Consistency)
	if err != nil {
		return err
	}
	// unquoted identifiers come back lowercased
	if !strings.EqualFold(res.Keyspace, keyspace) {
		cn.cleanup()
		return ErrKeyspaceReply
	}
	return nil
}

// readResult reads the response to QUERY, PREPARE or EXECUTE and
// decodes the RESULT body. A malformed body closes the connection; a
// ServerError leaves it usable.
func (cn *Conn) readResult() (*Result, error) {
	op, body, err := cn.readFrame()
	if err != nil {
		return nil, err
	}
	if op != OpResult {
		cn.cleanup()
		return nil, &ProtocolError{Reason: "unexpected opcode, expected RESULT"}
	}
	res, err := cn.parseResultFrame(body)
	if err != nil {
		cn.cleanup()
		return nil, err
	}
	return res, nil
}

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
	"log"
	"os"
)

// Various errors the driver might return. Can change between driver versions.
var (
	ErrInvalidConn    = errors.New("invalid connection")
	ErrMalformedFrame = errors.New("malformed frame")
	ErrFrameTooLarge  = errors.New("frame body exceeds protocol maximum")
	ErrAuthRequired   = errors.New("server requested authentication but no credentials were configured")
	ErrKeyspaceReply  = errors.New("server switched to a different keyspace than requested")
)

var errLog Logger = log.New(os.Stderr, "[CQL] ", log.Ldate|log.Ltime|log.Lshortfile)

// Logger is used to log critical error messages.
type Logger interface {
	Print(v ...interface{})
}

// SetLogger is used to set the logger for critical errors.
// The initial logger writes to os.Stderr.
func SetLogger(logger Logger) error {
	if logger == nil {
		return errors.New("logger is nil")
	}
	errLog = logger
	return nil
}

// ServerError is an error reported by the server in an ERROR frame.
type ServerError struct {
	Code    int32
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error 0x%04x: %s", e.Code, e.Message)
}

// BindError reports a value that could not be bound to a prepared
// statement column.
type BindError struct {
	Column string
	Reason string
}

func (e *BindError) Error() string {
	return fmt.Sprintf("cannot bind column %q: %s", e.Column, e.Reason)
}

// UnsupportedTypeError reports a column type tag the codec does not know.
type UnsupportedTypeError struct {
	Tag TypeTag
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported column type 0x%04x", uint16(e.Tag))
}

// ProtocolError reports a response that violates the wire protocol.
type ProtocolError struct {
	Reason string
}

func (e *ProtocolError) Error() string {
	return "protocol error: " + e.Reason
}

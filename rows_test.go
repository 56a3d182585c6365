// Go CQL Driver - A driver for the Cassandra CQL binary protocol
//
// Copyright 2026 The Go-CQL-Driver Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package cql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// usersMetadata frames a two-column global table spec: name varchar, age int.
func usersMetadata(b []byte) []byte {
	b = appendInt(b, flagGlobalTableSpec)
	b = appendInt(b, 2)
	b = appendString(b, "demo")
	b = appendString(b, "users")
	b = appendString(b, "name")
	b = appendShort(b, uint16(TypeVarchar))
	b = appendString(b, "age")
	b = appendShort(b, uint16(TypeInt))
	return b
}

func TestParseResultVoid(t *testing.T) {
	_, cn := newRWMockConn()
	res, err := cn.parseResultFrame(appendInt(nil, int32(resultKindVoid)))
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, Row{"result": "success"}, res.Rows[0])
}

func TestParseResultSetKeyspace(t *testing.T) {
	_, cn := newRWMockConn()
	body := appendInt(nil, int32(resultKindSetKeyspace))
	body = appendString(body, "demo")

	res, err := cn.parseResultFrame(body)
	require.NoError(t, err)
	assert.Equal(t, "demo", res.Keyspace)
	assert.Equal(t, Row{"keyspace": "demo"}, res.Rows[0])
}

func TestParseResultSchemaChange(t *testing.T) {
	_, cn := newRWMockConn()
	body := appendInt(nil, int32(resultKindSchemaChange))
	body = appendString(body, "CREATED")
	body = appendString(body, "demo")
	body = appendString(body, "users")

	res, err := cn.parseResultFrame(body)
	require.NoError(t, err)
	assert.Equal(t, "CREATED", res.Change)
	assert.Equal(t, Row{"change": "CREATED", "keyspace": "demo", "table": "users"}, res.Rows[0])
}

func TestParseResultRows(t *testing.T) {
	_, cn := newRWMockConn()
	body := appendInt(nil, int32(resultKindRows))
	body = usersMetadata(body)
	body = appendInt(body, 2) // row count
	body = appendBytes(body, []byte("alice"))
	body = appendBytes(body, []byte{0x00, 0x00, 0x00, 0x1E})
	body = appendBytes(body, []byte("bob"))
	body = appendBytes(body, nil) // null age

	res, err := cn.parseResultFrame(body)
	require.NoError(t, err)
	require.Len(t, res.Rows, 2)
	require.Len(t, res.Columns, 2)

	assert.Equal(t, Row{"name": "alice", "age": int32(30)}, res.Rows[0])
	assert.Equal(t, Row{"name": "bob", "age": nil}, res.Rows[1])
}

func TestParseResultPrepared(t *testing.T) {
	_, cn := newRWMockConn()
	body := appendInt(nil, int32(resultKindPrepared))
	body = appendShortBytes(body, []byte{0xCA, 0xFE})
	body = usersMetadata(body)

	res, err := cn.parseResultFrame(body)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xCA, 0xFE}, res.preparedID)
	require.Len(t, res.preparedColumns, 2)
	assert.Equal(t, "name", res.preparedColumns[0].Name)
	assert.Equal(t, TypeInt, res.preparedColumns[1].Type.Tag)
}

func TestParseResultUnknownKind(t *testing.T) {
	_, cn := newRWMockConn()
	_, err := cn.parseResultFrame(appendInt(nil, 0x99))
	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
}

func TestParseResultTruncated(t *testing.T) {
	_, cn := newRWMockConn()
	_, err := cn.parseResultFrame([]byte{0x00, 0x00})
	assert.Equal(t, ErrMalformedFrame, err)
}

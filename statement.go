// Go CQL Driver - A driver for the Cassandra CQL binary protocol
//
// Copyright 2026 The Go-CQL-Driver Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package cql

// Stmt is a prepared statement: the server-assigned id plus the bind
// parameter specs returned by PREPARE. It is immutable and opaque
// apart from its column list.
type Stmt struct {
	id      []byte
	columns []ColumnSpec
}

// ID returns the server-assigned statement id.
func (stmt *Stmt) ID() []byte {
	return append([]byte(nil), stmt.id...)
}

// Columns returns the bind parameter specs in wire order.
func (stmt *Stmt) Columns() []ColumnSpec {
	return stmt.columns
}

// bindValues resolves bind values into wire order and encodes them.
// values is either a map keyed by column name or a positional slice.
// The wire layout is positional: the prepared column order drives the
// iteration, and each name is looked up in the map. Two columns
// sharing a name read the same map entry.
func (stmt *Stmt) bindValues(values interface{}) ([][]byte, error) {
	packed := make([][]byte, len(stmt.columns))

	switch values := values.(type) {
	case map[string]interface{}:
		for i, col := range stmt.columns {
			v, ok := values[col.Name]
			if !ok {
				return nil, &BindError{Column: col.Name, Reason: "missing bind value"}
			}
			p, err := encodeValue(v, col.Type)
			if err != nil {
				return nil, &BindError{Column: col.Name, Reason: err.Error()}
			}
			packed[i] = p
		}

	case []interface{}:
		if len(values) != len(stmt.columns) {
			return nil, &BindError{Column: "", Reason: "positional value count mismatch"}
		}
		for i, col := range stmt.columns {
			p, err := encodeValue(values[i], col.Type)
			if err != nil {
				return nil, &BindError{Column: col.Name, Reason: err.Error()}
			}
			packed[i] = p
		}

	case nil:
		if len(stmt.columns) > 0 {
			return nil, &BindError{Column: stmt.columns[0].Name, Reason: "missing bind value"}
		}

	default:
		return nil, &BindError{Column: "", Reason: "values must be a name-keyed map or a positional slice"}
	}

	return packed, nil
}

// Go CQL Driver - A driver for the Cassandra CQL binary protocol
//
// Copyright 2026 The Go-CQL-Driver Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package cql

// Row maps column names to decoded values. Null columns are present
// with a nil value.
type Row map[string]interface{}

// Result is the decoded body of a RESULT frame.
type Result struct {
	Rows     []Row
	Columns  []ColumnSpec
	Keyspace string // SetKeyspace results
	Change   string // SchemaChange results
	Table    string

	preparedID      []byte
	preparedColumns []ColumnSpec
}

/* RESULT Body
Bytes                        Name
-----                        ----
4                            kind
n                            payload, shape per kind

Kinds: 0x01 Void, 0x02 Rows, 0x03 SetKeyspace, 0x04 Prepared,
0x05 SchemaChange.
*/
func (cn *Conn) parseResultFrame(body []byte) (*Result, error) {
	c := newCursor(body)
	kind, err := c.readInt()
	if err != nil {
		return nil, ErrMalformedFrame
	}

	switch resultKind(kind) {
	case resultKindVoid:
		return &Result{Rows: []Row{{"result": "success"}}}, nil

	case resultKindRows:
		return parseRows(c)

	case resultKindSetKeyspace:
		ks, err := c.readString()
		if err != nil {
			return nil, err
		}
		return &Result{
			Keyspace: ks,
			Rows:     []Row{{"keyspace": ks}},
		}, nil

	case resultKindPrepared:
		id, err := c.readShortBytes()
		if err != nil {
			return nil, err
		}
		meta, err := readRowsMetadata(c)
		if err != nil {
			return nil, err
		}
		return &Result{
			preparedID:      append([]byte(nil), id...),
			preparedColumns: meta.columns,
		}, nil

	case resultKindSchemaChange:
		change, err := c.readString()
		if err != nil {
			return nil, err
		}
		ks, err := c.readString()
		if err != nil {
			return nil, err
		}
		table, err := c.readString()
		if err != nil {
			return nil, err
		}
		return &Result{
			Change:   change,
			Keyspace: ks,
			Table:    table,
			Rows:     []Row{{"change": change, "keyspace": ks, "table": table}},
		}, nil
	}

	return nil, &ProtocolError{Reason: "unknown RESULT kind"}
}

/* Rows Payload
rows metadata
4                            row count
rows * columns * [bytes]     cell values, in metadata order
*/
func parseRows(c *cursor) (*Result, error) {
	meta, err := readRowsMetadata(c)
	if err != nil {
		return nil, err
	}
	count, err := c.readInt()
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, ErrMalformedFrame
	}

	res := &Result{
		Columns: meta.columns,
		Rows:    make([]Row, 0, count),
	}
	for i := int32(0); i < count; i++ {
		row := make(Row, len(meta.columns))
		for _, col := range meta.columns {
			content, err := c.readBytes()
			if err != nil {
				return nil, err
			}
			v, err := decodeValue(content, col.Type)
			if err != nil {
				return nil, err
			}
			row[col.Name] = v
		}
		res.Rows = append(res.Rows, row)
	}
	return res, nil
}

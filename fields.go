// Go CQL Driver - A driver for the Cassandra CQL binary protocol
//
// Copyright 2026 The Go-CQL-Driver Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package cql

// ColumnType describes the declared CQL type of a column. For List and
// Set, Elem is set; for Map, Key and Elem are set; for Custom, Custom
// holds the server-side class name.
type ColumnType struct {
	Tag    TypeTag
	Custom string
	Key    *ColumnType
	Elem   *ColumnType
}

// ColumnSpec describes one column of a rows result or one bind
// parameter of a prepared statement.
type ColumnSpec struct {
	Keyspace string
	Table    string
	Name     string
	Type     ColumnType
}

type rowsMetadata struct {
	flags    int32
	keyspace string // global table spec, if present
	table    string
	columns  []ColumnSpec
}

var typeCQLName = map[TypeTag]string{
	TypeCustom:    "custom",
	TypeAscii:     "ascii",
	TypeBigInt:    "bigint",
	TypeBlob:      "blob",
	TypeBoolean:   "boolean",
	TypeCounter:   "counter",
	TypeDecimal:   "decimal",
	TypeDouble:    "double",
	TypeFloat:     "float",
	TypeInt:       "int",
	TypeText:      "text",
	TypeTimestamp: "timestamp",
	TypeUuid:      "uuid",
	TypeVarchar:   "varchar",
	TypeVarint:    "varint",
	TypeTimeUuid:  "timeuuid",
	TypeInet:      "inet",
	TypeList:      "list",
	TypeMap:       "map",
	TypeSet:       "set",
}

// String returns the CQL name of the type, e.g. "map<int,text>".
func (t ColumnType) String() string {
	name, ok := typeCQLName[t.Tag]
	if !ok {
		return "unknown"
	}
	switch t.Tag {
	case TypeCustom:
		return name + "<" + t.Custom + ">"
	case TypeList, TypeSet:
		return name + "<" + t.Elem.String() + ">"
	case TypeMap:
		return name + "<" + t.Key.String() + "," + t.Elem.String() + ">"
	}
	return name
}

// readColumnType reads an [option] type id, recursing for the element
// types of list, map and set. Custom carries the class name.
func readColumnType(c *cursor) (ColumnType, error) {
	id, err := c.readShort()
	if err != nil {
		return ColumnType{}, err
	}

	t := ColumnType{Tag: TypeTag(id)}
	switch t.Tag {
	case TypeCustom:
		if t.Custom, err = c.readString(); err != nil {
			return ColumnType{}, err
		}

	case TypeList, TypeSet:
		elem, err := readColumnType(c)
		if err != nil {
			return ColumnType{}, err
		}
		t.Elem = &elem

	case TypeMap:
		key, err := readColumnType(c)
		if err != nil {
			return ColumnType{}, err
		}
		elem, err := readColumnType(c)
		if err != nil {
			return ColumnType{}, err
		}
		t.Key = &key
		t.Elem = &elem

	default:
		if id >= 0x20 || typeCQLName[t.Tag] == "" {
			return ColumnType{}, &UnsupportedTypeError{Tag: t.Tag}
		}
	}
	return t, nil
}

/* Rows Metadata
Bytes       Name
-----       ----
4           flags
4           columns_count
  if flags & GlobalTableSpec:
[string]    global keyspace
[string]    global table
  per column:
[string]    keyspace (unless global)
[string]    table (unless global)
[string]    column name
[option]    column type
*/
func readRowsMetadata(c *cursor) (*rowsMetadata, error) {
	flags, err := c.readInt()
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

	meta := &rowsMetadata{flags: flags}

	global := flags&flagGlobalTableSpec != 0
	if global {
		if meta.keyspace, err = c.readString(); err != nil {
			return nil, err
		}
		if meta.table, err = c.readString(); err != nil {
			return nil, err
		}
	}

	meta.columns = make([]ColumnSpec, 0, count)
	for i := int32(0); i < count; i++ {
		spec := ColumnSpec{Keyspace: meta.keyspace, Table: meta.table}
		if !global {
			if spec.Keyspace, err = c.readString(); err != nil {
				return nil, err
			}
			if spec.Table, err = c.readString(); err != nil {
				return nil, err
			}
		}
		if spec.Name, err = c.readString(); err != nil {
			return nil, err
		}
		if spec.Type, err = readColumnType(c); err != nil {
			return nil, err
		}
		meta.columns = append(meta.columns, spec)
	}
	return meta, nil
}

// Go CQL Driver - A driver for the Cassandra CQL binary protocol
//
// Copyright 2026 The Go-CQL-Driver Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package cql

import (
	"encoding/binary"
	"math"
)

// Notations documentation:
// https://github.com/apache/cassandra/blob/trunk/doc/native_protocol_v1.spec
//
// All integers are big-endian. [string] is a u16 length followed by the
// bytes, [long string] uses an i32 length, [bytes] uses an i32 length
// with -1 denoting null.

/******************************************************************************
*                        Read notations from a body                           *
******************************************************************************/

// cursor walks a frame body.
type cursor struct {
	data []byte
	pos  int
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data}
}

func (c *cursor) remaining() int {
	return len(c.data) - c.pos
}

func (c *cursor) read(n int) ([]byte, error) {
	if n < 0 || c.remaining() < n {
		return nil, ErrMalformedFrame
	}
	p := c.data[c.pos : c.pos+n]
	c.pos += n
	return p, nil
}

func (c *cursor) readByte() (byte, error) {
	p, err := c.read(1)
	if err != nil {
		return 0, err
	}
	return p[0], nil
}

func (c *cursor) readShort() (uint16, error) {
	p, err := c.read(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(p), nil
}

func (c *cursor) readInt() (int32, error) {
	p, err := c.read(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(p)), nil
}

func (c *cursor) readLong() (int64, error) {
	p, err := c.read(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(p)), nil
}

// readString reads a [string]. The length 0xffff is the null string
// sentinel; it is collapsed to "" since no v1 response position needs
// the distinction.
func (c *cursor) readString() (string, error) {
	n, err := c.readShort()
	if err != nil {
		return "", err
	}
	if n == 0xffff {
		return "", nil
	}
	p, err := c.read(int(n))
	if err != nil {
		return "", err
	}
	return string(p), nil
}

func (c *cursor) readLongString() (string, error) {
	n, err := c.readInt()
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "", nil
	}
	p, err := c.read(int(n))
	if err != nil {
		return "", err
	}
	return string(p), nil
}

// readBytes reads a [bytes]. A negative length denotes null and yields
// a nil slice; zero length yields an empty non-nil slice.
func (c *cursor) readBytes() ([]byte, error) {
	n, err := c.readInt()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, nil
	}
	p, err := c.read(int(n))
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return []byte{}, nil
	}
	return p, nil
}

// readShortBytes reads a u16 length-prefixed byte string, as used for
// prepared statement ids and collection elements.
func (c *cursor) readShortBytes() ([]byte, error) {
	n, err := c.readShort()
	if err != nil {
		return nil, err
	}
	return c.read(int(n))
}

// readStringMultimap reads a [string multimap], as in SUPPORTED.
func (c *cursor) readStringMultimap() (map[string][]string, error) {
	n, err := c.readShort()
	if err != nil {
		return nil, err
	}
	m := make(map[string][]string, n)
	for i := 0; i < int(n); i++ {
		key, err := c.readString()
		if err != nil {
			return nil, err
		}
		cnt, err := c.readShort()
		if err != nil {
			return nil, err
		}
		values := make([]string, 0, cnt)
		for j := 0; j < int(cnt); j++ {
			v, err := c.readString()
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		m[key] = values
	}
	return m, nil
}

/******************************************************************************
*                        Append notations to a body                           *
******************************************************************************/

func appendShort(b []byte, v uint16) []byte {
	return append(b, byte(v>>8), byte(v))
}

func appendInt(b []byte, v int32) []byte {
	return append(b, byte(uint32(v)>>24), byte(uint32(v)>>16), byte(uint32(v)>>8), byte(uint32(v)))
}

func appendLong(b []byte, v int64) []byte {
	return append(b,
		byte(uint64(v)>>56), byte(uint64(v)>>48), byte(uint64(v)>>40), byte(uint64(v)>>32),
		byte(uint64(v)>>24), byte(uint64(v)>>16), byte(uint64(v)>>8), byte(uint64(v)))
}

func appendString(b []byte, s string) []byte {
	b = appendShort(b, uint16(len(s)))
	return append(b, s...)
}

func appendLongString(b []byte, s string) []byte {
	b = appendInt(b, int32(len(s)))
	return append(b, s...)
}

// appendBytes appends a [bytes]; nil appends the null length -1.
func appendBytes(b []byte, p []byte) []byte {
	if p == nil {
		return appendInt(b, -1)
	}
	b = appendInt(b, int32(len(p)))
	return append(b, p...)
}

func appendShortBytes(b []byte, p []byte) []byte {
	b = appendShort(b, uint16(len(p)))
	return append(b, p...)
}

// appendStringMap appends a [string map] preserving pair order.
func appendStringMap(b []byte, pairs [][2]string) []byte {
	b = appendShort(b, uint16(len(pairs)))
	for _, p := range pairs {
		b = appendString(b, p[0])
		b = appendString(b, p[1])
	}
	return b
}

/******************************************************************************
*                         Float conversions                                   *
******************************************************************************/

func appendFloat32(b []byte, f float32) []byte {
	var p [4]byte
	binary.BigEndian.PutUint32(p[:], math.Float32bits(f))
	return append(b, p[:]...)
}

func appendFloat64(b []byte, f float64) []byte {
	var p [8]byte
	binary.BigEndian.PutUint64(p[:], math.Float64bits(f))
	return append(b, p[:]...)
}

func bytesToFloat32(b []byte) float32 {
	return math.Float32frombits(binary.BigEndian.Uint32(b))
}

func bytesToFloat64(b []byte) float64 {
	return math.Float64frombits(binary.BigEndian.Uint64(b))
}

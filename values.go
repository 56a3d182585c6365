// Go CQL Driver - A driver for the Cassandra CQL binary protocol
//
// Copyright 2026 The Go-CQL-Driver Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package cql

import (
	"encoding/hex"
	"fmt"
	"math"
	"net"
	"strings"
	"time"

	"github.com/google/uuid"
)

// encodeValue encodes a Go value into the payload bytes of the given
// column type. The payload is not length-prefixed; the caller frames it
// as [bytes] or as a collection element. A nil value encodes to a nil
// payload, which the framing layer turns into the null length -1.
func encodeValue(v interface{}, t ColumnType) ([]byte, error) {
	if v == nil {
		return nil, nil
	}

	switch t.Tag {
	case TypeAscii, TypeText, TypeVarchar:
		switch v := v.(type) {
		case string:
			return []byte(v), nil
		case []byte:
			return v, nil
		}

	case TypeBlob, TypeCustom:
		switch v := v.(type) {
		case []byte:
			return v, nil
		case string:
			if strings.HasPrefix(v, "0x") || strings.HasPrefix(v, "0X") {
				return hex.DecodeString(v[2:])
			}
			return []byte(v), nil
		}

	case TypeBigInt, TypeCounter, TypeTimestamp:
		switch v := v.(type) {
		case int64:
			return appendLong(nil, v), nil
		case int:
			return appendLong(nil, int64(v)), nil
		case int32:
			return appendLong(nil, int64(v)), nil
		case time.Time:
			return appendLong(nil, v.UnixMilli()), nil
		}

	case TypeInt:
		switch v := v.(type) {
		case int32:
			return appendInt(nil, v), nil
		case int:
			if v >= math.MinInt32 && v <= math.MaxInt32 {
				return appendInt(nil, int32(v)), nil
			}
		case int64:
			if v >= math.MinInt32 && v <= math.MaxInt32 {
				return appendInt(nil, int32(v)), nil
			}
		}

	case TypeBoolean:
		switch v := v.(type) {
		case bool:
			if v {
				return []byte{0x01}, nil
			}
			return []byte{0x00}, nil
		case int:
			if v == 0 || v == 1 {
				return []byte{byte(v)}, nil
			}
		}

	case TypeFloat:
		switch v := v.(type) {
		case float32:
			return appendFloat32(nil, v), nil
		case float64:
			return appendFloat32(nil, float32(v)), nil
		}

	case TypeDouble:
		switch v := v.(type) {
		case float64:
			return appendFloat64(nil, v), nil
		case float32:
			return appendFloat64(nil, float64(v)), nil
		}

	case TypeUuid, TypeTimeUuid:
		switch v := v.(type) {
		case string:
			u, err := uuid.Parse(v)
			if err != nil {
				return nil, err
			}
			return u[:], nil
		case uuid.UUID:
			u := v
			return u[:], nil
		case []byte:
			if len(v) == 16 {
				return v, nil
			}
		}

	case TypeVarint:
		return varintToBytes(v)

	case TypeDecimal:
		return decimalToBytes(v)

	case TypeInet:
		switch v := v.(type) {
		case net.IP:
			if ip4 := v.To4(); ip4 != nil {
				return ip4, nil
			}
			return v.To16(), nil
		case string:
			ip := net.ParseIP(v)
			if ip == nil {
				return nil, fmt.Errorf("invalid inet literal %q", v)
			}
			return encodeValue(ip, t)
		}

	case TypeList, TypeSet:
		elems, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("cannot encode %T as %s", v, t)
		}
		b := appendShort(nil, uint16(len(elems)))
		for _, e := range elems {
			p, err := encodeValue(e, *t.Elem)
			if err != nil {
				return nil, err
			}
			b = appendShortBytes(b, p)
		}
		return b, nil

	case TypeMap:
		entries, ok := v.(map[interface{}]interface{})
		if !ok {
			if m, ok := v.(map[string]interface{}); ok {
				entries = make(map[interface{}]interface{}, len(m))
				for k, mv := range m {
					entries[k] = mv
				}
			} else {
				return nil, fmt.Errorf("cannot encode %T as %s", v, t)
			}
		}
		b := appendShort(nil, uint16(len(entries)))
		for k, mv := range entries {
			kp, err := encodeValue(k, *t.Key)
			if err != nil {
				return nil, err
			}
			vp, err := encodeValue(mv, *t.Elem)
			if err != nil {
				return nil, err
			}
			b = appendShortBytes(b, kp)
			b = appendShortBytes(b, vp)
		}
		return b, nil

	default:
		return nil, &UnsupportedTypeError{Tag: t.Tag}
	}

	return nil, fmt.Errorf("cannot encode %T as %s", v, t)
}

// decodeValue decodes the payload bytes of a column value. A nil
// payload (the [bytes] null length -1) decodes to nil regardless of the
// declared type.
func decodeValue(p []byte, t ColumnType) (interface{}, error) {
	if p == nil {
		return nil, nil
	}

	switch t.Tag {
	case TypeAscii, TypeText, TypeVarchar:
		return string(p), nil

	case TypeBlob, TypeCustom:
		if len(p) == 0 {
			return "", nil
		}
		return "0x" + hex.EncodeToString(p), nil

	case TypeBigInt, TypeCounter, TypeTimestamp:
		if len(p) != 8 {
			return nil, &ProtocolError{Reason: fmt.Sprintf("%s value has length %d, want 8", t, len(p))}
		}
		v, _ := newCursor(p).readLong()
		return v, nil

	case TypeInt:
		if len(p) != 4 {
			return nil, &ProtocolError{Reason: fmt.Sprintf("%s value has length %d, want 4", t, len(p))}
		}
		v, _ := newCursor(p).readInt()
		return v, nil

	case TypeBoolean:
		if len(p) != 1 {
			return nil, &ProtocolError{Reason: fmt.Sprintf("boolean value has length %d, want 1", len(p))}
		}
		switch p[0] {
		case 0x00:
			return false, nil
		case 0x01:
			return true, nil
		}
		return nil, nil

	case TypeFloat:
		if len(p) != 4 {
			return nil, &ProtocolError{Reason: fmt.Sprintf("float value has length %d, want 4", len(p))}
		}
		return bytesToFloat32(p), nil

	case TypeDouble:
		if len(p) != 8 {
			return nil, &ProtocolError{Reason: fmt.Sprintf("double value has length %d, want 8", len(p))}
		}
		return bytesToFloat64(p), nil

	case TypeUuid, TypeTimeUuid:
		u, err := uuid.FromBytes(p)
		if err != nil {
			return nil, err
		}
		return u.String(), nil

	case TypeVarint:
		return decodeVarint(p), nil

	case TypeDecimal:
		return bytesToDecimal(p), nil

	case TypeInet:
		if len(p) != 4 && len(p) != 16 {
			return nil, &ProtocolError{Reason: fmt.Sprintf("inet value has length %d, want 4 or 16", len(p))}
		}
		ip := make(net.IP, len(p))
		copy(ip, p)
		return ip, nil

	case TypeList, TypeSet:
		c := newCursor(p)
		n, err := c.readShort()
		if err != nil {
			return nil, err
		}
		elems := make([]interface{}, 0, n)
		for i := 0; i < int(n); i++ {
			ep, err := c.readShortBytes()
			if err != nil {
				return nil, err
			}
			e, err := decodeValue(ep, *t.Elem)
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
		}
		return elems, nil

	case TypeMap:
		c := newCursor(p)
		n, err := c.readShort()
		if err != nil {
			return nil, err
		}
		m := make(map[interface{}]interface{}, n)
		for i := 0; i < int(n); i++ {
			kp, err := c.readShortBytes()
			if err != nil {
				return nil, err
			}
			k, err := decodeValue(kp, *t.Key)
			if err != nil {
				return nil, err
			}
			vp, err := c.readShortBytes()
			if err != nil {
				return nil, err
			}
			v, err := decodeValue(vp, *t.Elem)
			if err != nil {
				return nil, err
			}
			// net.IP is a slice and cannot key a map
			if ip, ok := k.(net.IP); ok {
				k = ip.String()
			}
			m[k] = v
		}
		return m, nil
	}

	return nil, &UnsupportedTypeError{Tag: t.Tag}
}

// Go CQL Driver - A driver for the Cassandra CQL binary protocol
//
// Copyright 2026 The Go-CQL-Driver Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package cql

import (
	"fmt"
	"math/big"
	"strconv"

	"gopkg.in/inf.v0"
)

// varint is an arbitrary-precision signed integer encoded as
// minimum-length two's-complement, big-endian. decimal is an i32 scale
// followed by a varint unscaled value; value = unscaled * 10^(-scale).

func encodeVarint(n *big.Int) []byte {
	switch n.Sign() {
	case 0:
		return []byte{0}
	case 1:
		p := n.Bytes()
		if p[0]&0x80 != 0 {
			// keep the sign bit clear
			return append([]byte{0}, p...)
		}
		return p
	}

	// smallest length that can hold n in two's complement
	m := new(big.Int).Neg(n)
	m.Sub(m, bigOne)
	length := m.BitLen()/8 + 1

	v := new(big.Int).Lsh(bigOne, uint(length*8))
	v.Add(v, n)

	p := make([]byte, length)
	b := v.Bytes()
	copy(p[length-len(b):], b)
	return p
}

func decodeVarint(p []byte) *big.Int {
	if len(p) == 0 {
		return new(big.Int)
	}
	n := new(big.Int).SetBytes(p)
	if p[0]&0x80 != 0 {
		shift := new(big.Int).Lsh(bigOne, uint(len(p)*8))
		n.Sub(n, shift)
	}
	return n
}

var bigOne = big.NewInt(1)

func varintToBytes(v interface{}) ([]byte, error) {
	switch v := v.(type) {
	case *big.Int:
		return encodeVarint(v), nil
	case int:
		return encodeVarint(big.NewInt(int64(v))), nil
	case int32:
		return encodeVarint(big.NewInt(int64(v))), nil
	case int64:
		return encodeVarint(big.NewInt(v)), nil
	case string:
		n, ok := new(big.Int).SetString(v, 10)
		if !ok {
			return nil, fmt.Errorf("invalid varint literal %q", v)
		}
		return encodeVarint(n), nil
	}
	return nil, fmt.Errorf("cannot encode %T as varint", v)
}

func decimalToBytes(v interface{}) ([]byte, error) {
	var d *inf.Dec
	switch v := v.(type) {
	case *inf.Dec:
		d = v
	case string:
		d = new(inf.Dec)
		if _, ok := d.SetString(v); !ok {
			return nil, fmt.Errorf("invalid decimal literal %q", v)
		}
	case float64:
		d = new(inf.Dec)
		if _, ok := d.SetString(strconv.FormatFloat(v, 'f', -1, 64)); !ok {
			return nil, fmt.Errorf("cannot encode float %v as decimal", v)
		}
	default:
		return nil, fmt.Errorf("cannot encode %T as decimal", v)
	}

	b := appendInt(nil, int32(d.Scale()))
	return append(b, encodeVarint(d.UnscaledBig())...), nil
}

// bytesToDecimal decodes an i32 scale followed by a varint unscaled
// value. Payloads shorter than 5 bytes decode to zero.
func bytesToDecimal(p []byte) *inf.Dec {
	if len(p) < 5 {
		return inf.NewDec(0, 0)
	}
	scale := int32(uint32(p[0])<<24 | uint32(p[1])<<16 | uint32(p[2])<<8 | uint32(p[3]))
	unscaled := decodeVarint(p[4:])
	return new(inf.Dec).SetUnscaledBig(unscaled).SetScale(inf.Scale(scale))
}

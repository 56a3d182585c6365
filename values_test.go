// Go CQL Driver - A driver for the Cassandra CQL binary protocol
//
// Copyright 2026 The Go-CQL-Driver Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package cql

import (
	"bytes"
	"errors"
	"math/big"
	"net"
	"reflect"
	"strconv"
	"testing"
	"time"

	"gopkg.in/inf.v0"
)

func scalar(tag TypeTag) ColumnType {
	return ColumnType{Tag: tag}
}

func listOf(elem TypeTag) ColumnType {
	e := scalar(elem)
	return ColumnType{Tag: TypeList, Elem: &e}
}

func mapOf(key, elem TypeTag) ColumnType {
	k, e := scalar(key), scalar(elem)
	return ColumnType{Tag: TypeMap, Key: &k, Elem: &e}
}

func TestEncodeInt(t *testing.T) {
	var encodeTests = []struct {
		in  interface{}
		out []byte
	}{
		{int32(-1), []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{int32(2147483647), []byte{0x7F, 0xFF, 0xFF, 0xFF}},
		{int32(0), []byte{0x00, 0x00, 0x00, 0x00}},
		{-1, []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{int64(42), []byte{0x00, 0x00, 0x00, 0x2A}},
	}

	for i, tst := range encodeTests {
		got, err := encodeValue(tst.in, scalar(TypeInt))
		if err != nil {
			t.Fatalf("%d. encode(%v): %v", i, tst.in, err)
		}
		if !bytes.Equal(got, tst.out) {
			t.Errorf("%d. encode(%v) => %x, want %x", i, tst.in, got, tst.out)
		}
	}
}

func TestDecodeInt(t *testing.T) {
	v, err := decodeValue([]byte{0xFF, 0xFF, 0xFF, 0xFF}, scalar(TypeInt))
	if err != nil {
		t.Fatal(err)
	}
	if v != int32(-1) {
		t.Errorf("decode => %v, want -1", v)
	}

	if _, err = decodeValue([]byte{0x00}, scalar(TypeInt)); err == nil {
		t.Error("expected an error for a 1-byte int")
	}
}

func TestEncodeUuid(t *testing.T) {
	got, err := encodeValue("550e8400-e29b-41d4-a716-446655440000", scalar(TypeUuid))
	if err != nil {
		t.Fatal(err)
	}
	expected := []byte{
		0x55, 0x0E, 0x84, 0x00, 0xE2, 0x9B, 0x41, 0xD4,
		0xA7, 0x16, 0x44, 0x66, 0x55, 0x44, 0x00, 0x00,
	}
	if !bytes.Equal(got, expected) {
		t.Errorf("encode => %x, want %x", got, expected)
	}

	back, err := decodeValue(expected, scalar(TypeTimeUuid))
	if err != nil {
		t.Fatal(err)
	}
	if back != "550e8400-e29b-41d4-a716-446655440000" {
		t.Errorf("decode => %v", back)
	}
}

func TestEncodeListOfInt(t *testing.T) {
	got, err := encodeValue([]interface{}{1, 2, 3}, listOf(TypeInt))
	if err != nil {
		t.Fatal(err)
	}
	expected := []byte{
		0x00, 0x03,
		0x00, 0x04, 0x00, 0x00, 0x00, 0x01,
		0x00, 0x04, 0x00, 0x00, 0x00, 0x02,
		0x00, 0x04, 0x00, 0x00, 0x00, 0x03,
	}
	if !bytes.Equal(got, expected) {
		t.Errorf("encode => %x, want %x", got, expected)
	}

	back, err := decodeValue(expected, listOf(TypeInt))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(back, []interface{}{int32(1), int32(2), int32(3)}) {
		t.Errorf("decode => %#v", back)
	}
}

func TestEncodeDecimal(t *testing.T) {
	got, err := encodeValue("12.34", scalar(TypeDecimal))
	if err != nil {
		t.Fatal(err)
	}
	expected := []byte{0x00, 0x00, 0x00, 0x02, 0x04, 0xD2}
	if !bytes.Equal(got, expected) {
		t.Errorf("encode => %x, want %x", got, expected)
	}

	back, err := decodeValue(expected, scalar(TypeDecimal))
	if err != nil {
		t.Fatal(err)
	}
	f, err := strconv.ParseFloat(back.(*inf.Dec).String(), 64)
	if err != nil {
		t.Fatal(err)
	}
	if f < 12.34-1e-9 || f > 12.34+1e-9 {
		t.Errorf("decode => %v, want 12.34", f)
	}
}

func TestDecodeDecimalShort(t *testing.T) {
	// payloads shorter than 5 bytes (4-byte scale plus one unscaled byte) decode to zero
	for _, p := range [][]byte{{}, {0x01}, {0x00, 0x00, 0x00, 0x02}} {
		v, err := decodeValue(p, scalar(TypeDecimal))
		if err != nil {
			t.Fatal(err)
		}
		if v.(*inf.Dec).UnscaledBig().Sign() != 0 {
			t.Errorf("decode(%x) => %v, want 0", p, v)
		}
	}
}

func TestVarintRoundTrip(t *testing.T) {
	var varintTests = []struct {
		in  string
		out []byte
	}{
		{"0", []byte{0x00}},
		{"1", []byte{0x01}},
		{"-1", []byte{0xFF}},
		{"127", []byte{0x7F}},
		{"128", []byte{0x00, 0x80}},
		{"-128", []byte{0x80}},
		{"-129", []byte{0xFF, 0x7F}},
		{"1234", []byte{0x04, 0xD2}},
		{"-32769", []byte{0xFF, 0x7F, 0xFF}},
		{"36893488147419103232", []byte{0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}}, // 2^65
	}

	for i, tst := range varintTests {
		n, _ := new(big.Int).SetString(tst.in, 10)
		got := encodeVarint(n)
		if !bytes.Equal(got, tst.out) {
			t.Errorf("%d. encode(%s) => %x, want %x", i, tst.in, got, tst.out)
		}
		back := decodeVarint(tst.out)
		if back.Cmp(n) != 0 {
			t.Errorf("%d. decode(%x) => %s, want %s", i, tst.out, back, tst.in)
		}
	}
}

func TestEncodeBoolean(t *testing.T) {
	got, err := encodeValue(true, scalar(TypeBoolean))
	if err != nil || !bytes.Equal(got, []byte{0x01}) {
		t.Errorf("encode(true) => %x, %v", got, err)
	}
	got, err = encodeValue(false, scalar(TypeBoolean))
	if err != nil || !bytes.Equal(got, []byte{0x00}) {
		t.Errorf("encode(false) => %x, %v", got, err)
	}

	// null is handled one level up by the [bytes] framing
	got, err = encodeValue(nil, scalar(TypeBoolean))
	if err != nil || got != nil {
		t.Errorf("encode(nil) => %x, %v", got, err)
	}
	if framed := appendBytes(nil, got); !bytes.Equal(framed, []byte{0xFF, 0xFF, 0xFF, 0xFF}) {
		t.Errorf("framed null => %x", framed)
	}
}

func TestDecodeBoolean(t *testing.T) {
	var boolTests = []struct {
		in  []byte
		out interface{}
	}{
		{[]byte{0x00}, false},
		{[]byte{0x01}, true},
		{[]byte{0x02}, nil}, // out-of-domain bytes decode to null
	}

	for i, tst := range boolTests {
		v, err := decodeValue(tst.in, scalar(TypeBoolean))
		if err != nil {
			t.Fatalf("%d. %v", i, err)
		}
		if v != tst.out {
			t.Errorf("%d. decode(%x) => %v, want %v", i, tst.in, v, tst.out)
		}
	}
}

func TestBlobRoundTrip(t *testing.T) {
	got, err := encodeValue("0xcafe", scalar(TypeBlob))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{0xCA, 0xFE}) {
		t.Errorf("encode => %x", got)
	}

	back, err := decodeValue(got, scalar(TypeBlob))
	if err != nil {
		t.Fatal(err)
	}
	if back != "0xcafe" {
		t.Errorf("decode => %v", back)
	}

	empty, err := decodeValue([]byte{}, scalar(TypeBlob))
	if err != nil || empty != "" {
		t.Errorf("decode(empty) => %q, %v", empty, err)
	}
}

func TestFloatRoundTrip(t *testing.T) {
	got, err := encodeValue(float32(1.5), scalar(TypeFloat))
	if err != nil {
		t.Fatal(err)
	}
	// IEEE-754 big-endian, not the platform byte order
	if !bytes.Equal(got, []byte{0x3F, 0xC0, 0x00, 0x00}) {
		t.Errorf("encode(1.5) => %x", got)
	}

	back, err := decodeValue(got, scalar(TypeFloat))
	if err != nil || back != float32(1.5) {
		t.Errorf("decode => %v, %v", back, err)
	}

	d, err := encodeValue(float64(-2.25), scalar(TypeDouble))
	if err != nil {
		t.Fatal(err)
	}
	backD, err := decodeValue(d, scalar(TypeDouble))
	if err != nil || backD != float64(-2.25) {
		t.Errorf("decode => %v, %v", backD, err)
	}
}

func TestBigIntTimestamp(t *testing.T) {
	got, err := encodeValue(int64(-1), scalar(TypeBigInt))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}) {
		t.Errorf("encode(-1) => %x", got)
	}

	when := time.Date(2015, 5, 1, 12, 0, 0, 0, time.UTC)
	got, err = encodeValue(when, scalar(TypeTimestamp))
	if err != nil {
		t.Fatal(err)
	}
	back, err := decodeValue(got, scalar(TypeTimestamp))
	if err != nil {
		t.Fatal(err)
	}
	if back != when.UnixMilli() {
		t.Errorf("decode => %v, want %v", back, when.UnixMilli())
	}
}

func TestInetRoundTrip(t *testing.T) {
	got, err := encodeValue("192.168.1.10", scalar(TypeInet))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{192, 168, 1, 10}) {
		t.Errorf("encode => %x", got)
	}

	back, err := decodeValue(got, scalar(TypeInet))
	if err != nil {
		t.Fatal(err)
	}
	if !back.(net.IP).Equal(net.IPv4(192, 168, 1, 10)) {
		t.Errorf("decode => %v", back)
	}

	v6, err := encodeValue("2001:db8::1", scalar(TypeInet))
	if err != nil {
		t.Fatal(err)
	}
	if len(v6) != 16 {
		t.Errorf("expected 16 bytes for IPv6, got %d", len(v6))
	}
}

func TestMapRoundTrip(t *testing.T) {
	in := map[interface{}]interface{}{"a": 1, "b": 2}
	got, err := encodeValue(in, mapOf(TypeText, TypeInt))
	if err != nil {
		t.Fatal(err)
	}

	back, err := decodeValue(got, mapOf(TypeText, TypeInt))
	if err != nil {
		t.Fatal(err)
	}
	expected := map[interface{}]interface{}{"a": int32(1), "b": int32(2)}
	if !reflect.DeepEqual(back, expected) {
		t.Errorf("decode => %#v", back)
	}
}

func TestNullPreservation(t *testing.T) {
	types := []ColumnType{
		scalar(TypeAscii), scalar(TypeBigInt), scalar(TypeBlob),
		scalar(TypeBoolean), scalar(TypeCounter), scalar(TypeDecimal),
		scalar(TypeDouble), scalar(TypeFloat), scalar(TypeInt),
		scalar(TypeText), scalar(TypeTimestamp), scalar(TypeUuid),
		scalar(TypeVarchar), scalar(TypeVarint), scalar(TypeTimeUuid),
		scalar(TypeInet), listOf(TypeInt), mapOf(TypeText, TypeInt),
	}

	for _, typ := range types {
		v, err := decodeValue(nil, typ)
		if err != nil {
			t.Fatalf("%s: %v", typ, err)
		}
		if v != nil {
			t.Errorf("%s: decode(null) => %v, want nil", typ, v)
		}

		p, err := encodeValue(nil, typ)
		if err != nil {
			t.Fatalf("%s: %v", typ, err)
		}
		if framed := appendBytes(nil, p); !bytes.Equal(framed, []byte{0xFF, 0xFF, 0xFF, 0xFF}) {
			t.Errorf("%s: framed null => %x", typ, framed)
		}
	}
}

func TestEncodeUnsupportedType(t *testing.T) {
	_, err := encodeValue("x", scalar(TypeTag(0x0099)))
	var unsupported *UnsupportedTypeError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected *UnsupportedTypeError, got %v", err)
	}
}

func TestEncodeTypeMismatch(t *testing.T) {
	if _, err := encodeValue("not a number", scalar(TypeInt)); err == nil {
		t.Error("expected an error for a string bound to int")
	}
	if _, err := encodeValue(3, scalar(TypeBoolean)); err == nil {
		t.Error("expected an error for integer 3 bound to boolean")
	}
}

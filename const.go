// Go CQL Driver - A driver for the Cassandra CQL binary protocol
//
// Copyright 2026 The Go-CQL-Driver Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package cql

// Protocol documentation:
// https://github.com/apache/cassandra/blob/trunk/doc/native_protocol_v1.spec

const (
	protoRequest  byte = 0x01
	protoResponse byte = 0x81

	protoVersionMask  byte = 0x7f
	protoDirectionBit byte = 0x80

	headerSize = 8

	// The protocol caps a frame body at 256MB.
	maxFrameSize = 256 * 1024 * 1024

	defaultPort       = "9042"
	defaultCQLVersion = "3.0.0"

	keyCQLVersion  = "CQL_VERSION"
	keyCompression = "COMPRESSION"
)

// Opcode identifies the message kind of a frame.
type Opcode byte

const (
	OpError         Opcode = 0x00
	OpStartup       Opcode = 0x01
	OpReady         Opcode = 0x02
	OpAuthenticate  Opcode = 0x03
	OpCredentials   Opcode = 0x04
	OpOptions       Opcode = 0x05
	OpSupported     Opcode = 0x06
	OpQuery         Opcode = 0x07
	OpResult        Opcode = 0x08
	OpPrepare       Opcode = 0x09
	OpExecute       Opcode = 0x0A
	OpRegister      Opcode = 0x0B
	OpEvent         Opcode = 0x0C
	OpBatch         Opcode = 0x0D
	OpAuthChallenge Opcode = 0x0E
	OpAuthResponse  Opcode = 0x0F
	OpAuthSuccess   Opcode = 0x10
)

// Consistency is the replica-count policy for a read or write.
type Consistency uint16

const (
	ConsistencyAny         Consistency = 0x00
	ConsistencyOne         Consistency = 0x01
	ConsistencyTwo         Consistency = 0x02
	ConsistencyThree       Consistency = 0x03
	ConsistencyQuorum      Consistency = 0x04
	ConsistencyAll         Consistency = 0x05
	ConsistencyLocalQuorum Consistency = 0x06
	ConsistencyEachQuorum  Consistency = 0x07
	ConsistencyLocalOne    Consistency = 0x0A
)

// TypeTag discriminates the wire representation of a column value.
type TypeTag uint16

const (
	TypeCustom    TypeTag = 0x0000
	TypeAscii     TypeTag = 0x0001
	TypeBigInt    TypeTag = 0x0002
	TypeBlob      TypeTag = 0x0003
	TypeBoolean   TypeTag = 0x0004
	TypeCounter   TypeTag = 0x0005
	TypeDecimal   TypeTag = 0x0006
	TypeDouble    TypeTag = 0x0007
	TypeFloat     TypeTag = 0x0008
	TypeInt       TypeTag = 0x0009
	TypeText      TypeTag = 0x000A
	TypeTimestamp TypeTag = 0x000B
	TypeUuid      TypeTag = 0x000C
	TypeVarchar   TypeTag = 0x000D
	TypeVarint    TypeTag = 0x000E
	TypeTimeUuid  TypeTag = 0x000F
	TypeInet      TypeTag = 0x0010
	TypeList      TypeTag = 0x0020
	TypeMap       TypeTag = 0x0021
	TypeSet       TypeTag = 0x0022
)

// RESULT body kinds
type resultKind int32

const (
	resultKindVoid         resultKind = 0x01
	resultKindRows         resultKind = 0x02
	resultKindSetKeyspace  resultKind = 0x03
	resultKindPrepared     resultKind = 0x04
	resultKindSchemaChange resultKind = 0x05
)

// Rows metadata flags
const (
	flagGlobalTableSpec int32 = 0x0001
)

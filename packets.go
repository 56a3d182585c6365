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
	"io"
)

// Frame documentation:
// https://github.com/apache/cassandra/blob/trunk/doc/native_protocol_v1.spec

/* Frame Header
Bytes                        Name
-----                        ----
1                            version (0x01 request, 0x81 response)
1                            flags
1                            stream
1                            opcode
4                            body length (big-endian)
*/

// writeFrame sends one request frame. Requests always use stream id 0;
// the driver keeps a single request in flight.
func (cn *Conn) writeFrame(op Opcode, body []byte) error {
	if cn.netConn == nil {
		return ErrInvalidConn
	}

	frame := getBytes(headerSize + len(body))
	defer putBytes(frame)

	frame[0] = protoRequest
	frame[1] = 0x00
	frame[2] = 0x00
	frame[3] = byte(op)
	binary.BigEndian.PutUint32(frame[4:headerSize], uint32(len(body)))
	copy(frame[headerSize:], body)

	n, err := cn.netConn.Write(frame)
	if err == nil && n != len(frame) {
		err = io.ErrShortWrite
	}
	if err != nil {
		errLog.Print(err)
		cn.cleanup()
		return err
	}
	return nil
}

// readFrame reads one response frame. An ERROR frame is surfaced as a
// *ServerError without closing the connection; any I/O or framing
// fault closes it.
func (cn *Conn) readFrame() (Opcode, []byte, error) {
	if cn.netConn == nil {
		return 0, nil, ErrInvalidConn
	}

	header, err := cn.buf.readNext(headerSize)
	if err != nil {
		errLog.Print(err)
		cn.cleanup()
		return 0, nil, err
	}

	// The response direction bit is advisory; servers set it but the
	// driver correlates positionally on the single stream.
	op := Opcode(header[3])
	length := binary.BigEndian.Uint32(header[4:headerSize])
	if length > maxFrameSize {
		cn.cleanup()
		return 0, nil, ErrFrameTooLarge
	}

	var body []byte
	if length > 0 {
		p, err := cn.buf.readNext(int(length))
		if err != nil {
			errLog.Print(err)
			cn.cleanup()
			return 0, nil, err
		}
		body = make([]byte, length)
		copy(body, p)
	}

	if op == OpError {
		err := parseErrorFrame(body)
		if err == ErrMalformedFrame {
			cn.cleanup()
		}
		return 0, nil, err
	}
	return op, body, nil
}

/* Error Frame Body
Bytes                        Name
-----                        ----
4                            error code
[string]                     error message
*/
func parseErrorFrame(body []byte) error {
	c := newCursor(body)
	code, err := c.readInt()
	if err != nil {
		return ErrMalformedFrame
	}
	msg, err := c.readString()
	if err != nil {
		return ErrMalformedFrame
	}
	return &ServerError{Code: code, Message: msg}
}

// request performs one frame exchange. The wire carries a single
// stream, so the response read here always belongs to the request just
// written.
func (cn *Conn) request(op Opcode, body []byte) (Opcode, []byte, error) {
	if err := cn.writeFrame(op, body); err != nil {
		return 0, nil, err
	}
	return cn.readFrame()
}

/******************************************************************************
*                             Request Bodies                                  *
******************************************************************************/

/* STARTUP Body
[string map]                 options, must contain CQL_VERSION
*/
func (cn *Conn) writeStartupFrame() error {
	body := appendStringMap(nil, [][2]string{
		{keyCQLVersion, cn.cfg.CQLVersion},
	})
	return cn.writeFrame(OpStartup, body)
}

/* QUERY Body
[long string]                CQL query string
[short]                      consistency level
*/
func (cn *Conn) writeQueryFrame(query string, consistency Consistency) error {
	body := appendLongString(nil, query)
	body = appendShort(body, uint16(consistency))
	return cn.writeFrame(OpQuery, body)
}

/* PREPARE Body
[long string]                CQL query string
*/
func (cn *Conn) writePrepareFrame(query string) error {
	return cn.writeFrame(OpPrepare, appendLongString(nil, query))
}

/* EXECUTE Body
[short bytes]                prepared statement id
[short]                      value count
count * [bytes]              values, in prepared column order
[short]                      consistency level
*/
func (cn *Conn) writeExecuteFrame(stmt *Stmt, values [][]byte, consistency Consistency) error {
	body := appendShortBytes(nil, stmt.id)
	body = appendShort(body, uint16(len(values)))
	for _, v := range values {
		body = appendBytes(body, v)
	}
	body = appendShort(body, uint16(consistency))
	return cn.writeFrame(OpExecute, body)
}

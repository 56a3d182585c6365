// Go CQL Driver - A driver for the Cassandra CQL binary protocol
//
// Copyright 2026 The Go-CQL-Driver Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package cql

/* AUTHENTICATE Body
[string]                     authenticator class name

CREDENTIALS Body
[string map]                 username and password, in that order
*/

// handleAuthenticate answers an AUTHENTICATE frame received during
// startup. Protocol v1 knows a single mechanism: a plaintext
// CREDENTIALS map sent in response, answered by READY.
func (cn *Conn) handleAuthenticate(body []byte) error {
	authenticator, err := newCursor(body).readString()
	if err != nil {
		cn.cleanup()
		return ErrMalformedFrame
	}

	if cn.cfg.User == "" && cn.cfg.Passwd == "" {
		errLog.Print("authentication requested by ", authenticator, " but no credentials configured")
		cn.cleanup()
		return ErrAuthRequired
	}

	credentials := appendStringMap(nil, [][2]string{
		{"username", cn.cfg.User},
		{"password", cn.cfg.Passwd},
	})
	op, _, err := cn.request(OpCredentials, credentials)
	if err != nil {
		cn.cleanup()
		return err
	}
	if op != OpReady {
		cn.cleanup()
		return &ProtocolError{Reason: "expected READY after CREDENTIALS"}
	}
	return nil
}

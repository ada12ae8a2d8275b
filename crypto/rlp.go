// Copyright 2014 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package crypto

import "encoding/binary"

// rlpString encodes a byte string per the RLP string rules: a single byte
// in [0x00, 0x7f] encodes as itself; anything else is length-prefixed.
// This is the minimal slice of RLP that CreateAddress needs (encoding a
// two-element list of [sender address, nonce]); a general-purpose RLP
// codec is out of scope.
func rlpString(b []byte) []byte {
	if len(b) == 1 && b[0] < 0x80 {
		return b
	}
	return append(rlpLengthPrefix(0x80, len(b)), b...)
}

func rlpLengthPrefix(base byte, n int) []byte {
	if n < 56 {
		return []byte{base + byte(n)}
	}
	var lenBytes []byte
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(n))
	for i, b := range buf {
		if b != 0 {
			lenBytes = buf[i:]
			break
		}
	}
	return append([]byte{base + 55 + byte(len(lenBytes))}, lenBytes...)
}

func rlpUint64(n uint64) []byte {
	if n == 0 {
		return []byte{0x80}
	}
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, n)
	i := 0
	for i < len(buf) && buf[i] == 0 {
		i++
	}
	return rlpString(buf[i:])
}

// encodeCreateList encodes the two-element RLP list [sender, nonce], the
// payload CreateAddress hashes to derive a CREATE contract address.
func encodeCreateList(sender []byte, nonce uint64) []byte {
	items := append(rlpString(sender), rlpUint64(nonce)...)
	return append(rlpLengthPrefix(0xc0, len(items)), items...)
}

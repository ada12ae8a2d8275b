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

package common

import "encoding/hex"

// Hex2Bytes decodes a hex string, tolerating an optional leading "0x" the
// way CLI-supplied code/input flags commonly carry one.
func Hex2Bytes(s string) []byte {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil
	}
	return b
}

// RightPadBytes copies slice into a new len(l) slice, zero-padding on the
// right, if slice is shorter than l; otherwise it returns slice itself,
// untruncated. Used to read a fixed-width window out of CALLDATA/CODE that
// may run past the end.
func RightPadBytes(slice []byte, l int) []byte {
	if l <= len(slice) {
		return slice
	}
	padded := make([]byte, l)
	copy(padded, slice)
	return padded
}

// LeftPadBytes is RightPadBytes' mirror, zero-padding a short value on the
// left into a fixed-width word.
func LeftPadBytes(slice []byte, l int) []byte {
	if l <= len(slice) {
		return slice
	}
	padded := make([]byte, l)
	copy(padded[l-len(slice):], slice)
	return padded
}

func BigMax(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}

func BigMin(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

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

import (
	"encoding/hex"
	"fmt"

	"github.com/holiman/uint256"
)

const (
	HashLength    = 32
	AddressLength = 20
)

// Hash is the 32-byte output of a Keccak256 digest, a storage slot, or a
// code hash.
type Hash [HashLength]byte

func BytesToHash(b []byte) Hash {
	var h Hash
	if len(b) > HashLength {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
	return h
}

func (h Hash) Bytes() []byte { return h[:] }

func (h Hash) Big() *uint256.Int {
	return new(uint256.Int).SetBytes(h[:])
}

// HashFromWord is the Hash-valued analogue of AddressFromWord: the
// canonical 32-byte encoding of a storage slot key or value.
func HashFromWord(w *uint256.Int) Hash {
	return Hash(w.Bytes32())
}

func (h Hash) Hex() string { return "0x" + hex.EncodeToString(h[:]) }

func (h Hash) String() string { return h.Hex() }

// Address is a 20-byte account identifier: the low 20 bytes of a Hash of a
// public key, or the low 20 bytes of Keccak256(rlp([sender, nonce])) for a
// contract created by CREATE.
type Address [AddressLength]byte

func BytesToAddress(b []byte) Address {
	var a Address
	if len(b) > AddressLength {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
	return a
}

// AddressFromWord extracts an Address from the low 20 bytes of a 256-bit
// word, the convention every opcode that pushes or pops an address uses
// (ADDRESS, CALLER, EXTCODESIZE's operand, ...).
func AddressFromWord(w *uint256.Int) Address {
	b := w.Bytes32()
	return BytesToAddress(b[:])
}

// Word returns the address left-padded into a 256-bit word, the inverse of
// AddressFromWord.
func (a Address) Word() *uint256.Int {
	return new(uint256.Int).SetBytes(a[:])
}

func (a Address) Bytes() []byte { return a[:] }

func (a Address) Hash() Hash { return BytesToHash(a[:]) }

func (a Address) Hex() string { return "0x" + hex.EncodeToString(a[:]) }

func (a Address) String() string { return a.Hex() }

func (a Address) IsEmpty() bool { return a == Address{} }

func (h Hash) Format(s fmt.State, c rune) {
	fmt.Fprintf(s, "%s", h.Hex())
}

func (a Address) Format(s fmt.State, c rune) {
	fmt.Fprintf(s, "%s", a.Hex())
}

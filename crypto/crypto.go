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

import (
	"golang.org/x/crypto/sha3"

	"github.com/eth-classic/go-ethereum/common"
)

// Keccak256 hashes the concatenation of all its arguments using the
// original (pre-NIST) Keccak-f permutation, as Ethereum's SHA3 opcode and
// every hash embedded in consensus data use.
func Keccak256(data ...[]byte) []byte {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	return d.Sum(nil)
}

// Keccak256Hash is Keccak256 with its result already wrapped as a Hash.
func Keccak256Hash(data ...[]byte) (h common.Hash) {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	d.Sum(h[:0])
	return h
}

// CreateAddress computes the address of a contract deployed by CREATE:
// the low 20 bytes of Keccak256(rlp([sender, nonce])).
func CreateAddress(sender common.Address, nonce uint64) common.Address {
	enc := encodeCreateList(sender.Bytes(), nonce)
	return common.BytesToAddress(Keccak256(enc))
}

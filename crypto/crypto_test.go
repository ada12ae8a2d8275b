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
	"encoding/hex"
	"testing"

	"github.com/eth-classic/go-ethereum/common"
)

// These are sanity checks: they ensure we don't e.g. use Sha3-224 instead
// of Sha3-256, and that the sha3 library uses the keccak-f permutation
// rather than the final NIST one.
func TestKeccak256(t *testing.T) {
	msg := []byte("abc")
	exp, _ := hex.DecodeString("4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45")
	got := Keccak256(msg)
	if hex.EncodeToString(got) != hex.EncodeToString(exp) {
		t.Errorf("Keccak256 mismatch: want %x have %x", exp, got)
	}
}

func TestKeccak256Hash(t *testing.T) {
	msg := []byte("abc")
	h := Keccak256Hash(msg)
	exp := Keccak256(msg)
	if h.Hex() != "0x"+hex.EncodeToString(exp) {
		t.Errorf("Keccak256Hash mismatch: want %x have %s", exp, h.Hex())
	}
}

func TestCreateAddress(t *testing.T) {
	sender := common.BytesToAddress(hexDecode(t, "970e8128ab834e8eac17ab8e3812f010678cf791"))
	addr0 := CreateAddress(sender, 0)
	addr1 := CreateAddress(sender, 1)
	if addr0 == addr1 {
		t.Fatalf("expected distinct addresses for distinct nonces")
	}
	if addr0.IsEmpty() {
		t.Fatalf("expected non-empty derived address")
	}
}

func hexDecode(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// Copyright 2015 The go-ethereum Authors
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

package state

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/eth-classic/go-ethereum/common"
)

func TestRevertToSnapshotRestoresBalance(t *testing.T) {
	db := New()
	addr := common.BytesToAddress([]byte{1})

	db.AddBalance(addr, uint256.NewInt(100))
	snap := db.Snapshot()
	db.AddBalance(addr, uint256.NewInt(50))
	assert.Equal(t, uint64(150), db.GetBalance(addr).Uint64())

	db.RevertToSnapshot(snap)
	assert.Equal(t, uint64(100), db.GetBalance(addr).Uint64())
}

func TestRevertToSnapshotDoesNotAffectSibling(t *testing.T) {
	db := New()
	a, b := common.BytesToAddress([]byte{1}), common.BytesToAddress([]byte{2})

	db.AddBalance(a, uint256.NewInt(10))
	snap := db.Snapshot()
	db.AddBalance(a, uint256.NewInt(5))
	db.AddBalance(b, uint256.NewInt(20))

	db.RevertToSnapshot(snap)

	assert.Equal(t, uint64(10), db.GetBalance(a).Uint64())
	assert.Equal(t, uint64(0), db.GetBalance(b).Uint64())
}

func TestStorageRoundTrip(t *testing.T) {
	db := New()
	addr := common.BytesToAddress([]byte{1})
	key := common.BytesToHash([]byte{0x01})
	val := common.BytesToHash([]byte{0x2a})

	db.SetState(addr, key, val)
	assert.Equal(t, val, db.GetState(addr, key))
}

func TestSuicideZeroesBalanceAndMarksAccount(t *testing.T) {
	db := New()
	addr := common.BytesToAddress([]byte{1})
	db.AddBalance(addr, uint256.NewInt(7))

	ok := db.Suicide(addr)
	assert.True(t, ok)
	assert.True(t, db.HasSuicided(addr))
	assert.Equal(t, uint64(0), db.GetBalance(addr).Uint64())
}

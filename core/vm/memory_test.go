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

package vm

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
)

func TestMemorySetAndGet(t *testing.T) {
	m := NewMemory()
	m.Resize(64)
	m.Set(0, 3, []byte{1, 2, 3})

	assert.Equal(t, []byte{1, 2, 3}, m.Get(0, 3))
	assert.Equal(t, 64, m.Len())
}

func TestMemorySet32(t *testing.T) {
	m := NewMemory()
	m.Resize(32)
	val := uint256.NewInt(0x2a)
	m.Set32(0, val)

	got := m.Get(0, 32)
	assert.Equal(t, byte(0x2a), got[31])
	for i := 0; i < 31; i++ {
		assert.Equal(t, byte(0), got[i])
	}
}

func TestCalcMemSizeOverflow(t *testing.T) {
	huge := new(uint256.Int).Not(uint256.NewInt(0)) // max uint256
	_, overflow := calcMemSize(huge, uint256.NewInt(32))
	assert.True(t, overflow)
}

func TestMemoryGasCostChargesOnlyDelta(t *testing.T) {
	m := NewMemory()

	first, err := memoryGasCost(m, 32)
	assert.NoError(t, err)
	assert.True(t, first > 0)

	second, err := memoryGasCost(m, 32)
	assert.NoError(t, err)
	assert.Equal(t, uint64(0), second, "re-touching the same size charges nothing more")

	third, err := memoryGasCost(m, 64)
	assert.NoError(t, err)
	assert.True(t, third > 0, "growing past the high-water mark charges the delta")
}

func TestGetDataRightPadsPastEnd(t *testing.T) {
	data := []byte{1, 2, 3}
	out := getData(data, uint256.NewInt(1), 4)
	assert.Equal(t, []byte{2, 3, 0, 0}, out)
}

func TestGetDataStartBeyondLength(t *testing.T) {
	data := []byte{1, 2, 3}
	out := getData(data, uint256.NewInt(10), 2)
	assert.Equal(t, []byte{0, 0}, out)
}

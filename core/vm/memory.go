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
	"github.com/holiman/uint256"

	"github.com/eth-classic/go-ethereum/common"
	"github.com/eth-classic/go-ethereum/params"
)

// Memory is the frame's byte-addressable linear memory. It only ever grows,
// in 32-byte-word-aligned steps, and always in response to an explicit
// Resize call driven by the gas meter's memory-expansion accounting.
type Memory struct {
	store       []byte
	lastGasCost uint64 // high-water mark of memory-expansion gas already charged
}

func NewMemory() *Memory {
	return &Memory{}
}

// Resize grows the backing store to size bytes if it is currently smaller.
// Shrinking never happens: memory is monotonic for the lifetime of a frame.
func (m *Memory) Resize(size uint64) {
	if uint64(len(m.store)) < size {
		m.store = append(m.store, make([]byte, size-uint64(len(m.store)))...)
	}
}

func (m *Memory) Set(offset, size uint64, value []byte) {
	if size == 0 {
		return
	}
	if offset+size > uint64(len(m.store)) {
		panic("invalid memory: store too small")
	}
	copy(m.store[offset:offset+size], value)
}

// Set32 writes val as a 32-byte big-endian word at offset.
func (m *Memory) Set32(offset uint64, val *uint256.Int) {
	if offset+32 > uint64(len(m.store)) {
		panic("invalid memory: store too small")
	}
	b := val.Bytes32()
	copy(m.store[offset:offset+32], b[:])
}

func (m *Memory) Get(offset, size int64) (cpy []byte) {
	if size == 0 {
		return nil
	}
	if len(m.store) > int(offset) {
		cpy = make([]byte, size)
		copy(cpy, m.store[offset:offset+size])
		return
	}
	return
}

// GetPtr returns a slice aliasing the backing store directly, the form
// RETURN and the CALL family's input window use.
func (m *Memory) GetPtr(offset, size int64) []byte {
	if size == 0 {
		return nil
	}
	if len(m.store) > int(offset) {
		return m.store[offset : offset+size]
	}
	return nil
}

func (m *Memory) Len() int { return len(m.store) }

func (m *Memory) Data() []byte { return m.store }

// calcMemSize returns the number of bytes memory must cover to satisfy an
// access of size bytes starting at off, both taken as 256-bit words so a
// huge offset is detected as overflow rather than wrapping.
func calcMemSize(off, l *uint256.Int) (uint64, bool) {
	if l.IsZero() {
		return 0, false
	}
	var end uint256.Int
	if end.AddOverflow(off, l) {
		return 0, true
	}
	if !end.IsUint64() {
		return 0, true
	}
	return end.Uint64(), false
}

// toWordSize rounds a byte size up to the nearest 32-byte word, the unit
// the quadratic memory-expansion formula is denominated in.
func toWordSize(size uint64) uint64 {
	if size > ^uint64(0)-31 {
		return ^uint64(0)/32 + 1
	}
	return (size + 31) / 32
}

// memoryGasCost charges only the delta above the highest memory-expansion
// cost already paid this frame: 3*w + w^2/512 where w is the word count,
// exactly the Frontier formula.
func memoryGasCost(mem *Memory, newMemSize uint64) (uint64, error) {
	if newMemSize == 0 {
		return 0, nil
	}
	if newMemSize > 0x1FFFFFFFE0 {
		return 0, ErrOutOfGas
	}
	newMemSizeWords := toWordSize(newMemSize)
	newCost := newMemSizeWords*newMemSizeWords/params.QuadCoeffDiv + newMemSizeWords*params.MemoryGas

	if newCost < mem.lastGasCost {
		return 0, nil
	}
	fee := newCost - mem.lastGasCost
	mem.lastGasCost = newCost
	return fee, nil
}

// getData extracts a right-padded, overflow-safe window [start, start+size)
// out of data. Used by CALLDATACOPY/CODECOPY/EXTCODECOPY/CALLDATALOAD,
// whose offsets are attacker-controlled 256-bit words.
func getData(data []byte, start *uint256.Int, size uint64) []byte {
	dl := uint64(len(data))
	if !start.IsUint64() || start.Uint64() > dl {
		return common.RightPadBytes(nil, int(size))
	}
	s := start.Uint64()
	end := s + size
	if end > dl {
		end = dl
	}
	return common.RightPadBytes(data[s:end], int(size))
}

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
	"sync"

	"github.com/holiman/uint256"

	"github.com/eth-classic/go-ethereum/params"
)

var stackPool = sync.Pool{
	New: func() interface{} {
		return &Stack{data: make([]uint256.Int, 0, 16)}
	},
}

// Stack is the EVM's 256-bit-word operand stack. It never holds more than
// params.StackLimit elements; Run checks each opcode's minStack/maxStack
// bounds before the handler mutates it.
type Stack struct {
	data []uint256.Int
}

func newstack() *Stack {
	return stackPool.Get().(*Stack)
}

func (st *Stack) returnToPool() {
	st.data = st.data[:0]
	stackPool.Put(st)
}

func (st *Stack) Len() int { return len(st.data) }

func (st *Stack) push(d *uint256.Int) {
	st.data = append(st.data, *d)
}

func (st *Stack) pop() (ret uint256.Int) {
	ret = st.data[len(st.data)-1]
	st.data = st.data[:len(st.data)-1]
	return
}

func (st *Stack) peek() *uint256.Int {
	return &st.data[len(st.data)-1]
}

// Back returns the n-th deep element without popping, 0 being the top.
func (st *Stack) Back(n int) *uint256.Int {
	return &st.data[len(st.data)-n-1]
}

func (st *Stack) require(n int) error {
	if st.Len() < n {
		return ErrStackUnderflow
	}
	return nil
}

func (st *Stack) swap(n int) {
	st.data[len(st.data)-n-1], st.data[len(st.data)-1] = st.data[len(st.data)-1], st.data[len(st.data)-n-1]
}

func (st *Stack) dup(n int) {
	d := st.data[len(st.data)-n]
	st.push(&d)
}

// Data exposes the underlying slice, bottom first, for dump/debug tooling.
func (st *Stack) Data() []uint256.Int { return st.data }

func (st *Stack) willOverflow(pushes int) bool {
	return len(st.data)+pushes > int(params.StackLimit)
}

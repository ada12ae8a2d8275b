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

func TestStackPushPop(t *testing.T) {
	st := newstack()
	defer st.returnToPool()

	one, two := uint256.NewInt(1), uint256.NewInt(2)
	st.push(one)
	st.push(two)

	assert.Equal(t, 2, st.Len())
	assert.Equal(t, uint64(2), st.pop().Uint64())
	assert.Equal(t, uint64(1), st.pop().Uint64())
	assert.Equal(t, 0, st.Len())
}

func TestStackDupAndSwap(t *testing.T) {
	st := newstack()
	defer st.returnToPool()

	st.push(uint256.NewInt(10))
	st.push(uint256.NewInt(20))
	st.push(uint256.NewInt(30))

	st.dup(2) // duplicate the 2nd-from-top (20) onto top
	assert.Equal(t, uint64(20), st.peek().Uint64())
	assert.Equal(t, 4, st.Len())

	st.pop()
	st.swap(2) // swap top (30) with 3rd item (10)
	assert.Equal(t, uint64(10), st.peek().Uint64())
	assert.Equal(t, uint64(30), st.Back(2).Uint64())
}

func TestStackRequireUnderflow(t *testing.T) {
	st := newstack()
	defer st.returnToPool()

	assert.NoError(t, st.require(0))
	assert.Error(t, st.require(1))

	st.push(uint256.NewInt(1))
	assert.NoError(t, st.require(1))
	assert.Error(t, st.require(2))
}

func TestStackWillOverflow(t *testing.T) {
	st := newstack()
	defer st.returnToPool()

	assert.False(t, st.willOverflow(1))
	assert.True(t, st.willOverflow(2000))
}

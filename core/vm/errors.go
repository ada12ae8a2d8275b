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

import "errors"

// Exceptional halt conditions. None of these propagate across a CALL/
// CALLCODE/CREATE boundary as a Go error: the parent frame observes the
// child's HasErred flag instead. Only a top-level ProcessMessage/
// ProcessCreateMessage failure surfaces one of these to its caller.
var (
	ErrOutOfGas                 = errors.New("out of gas")
	ErrStackUnderflow           = errors.New("stack underflow")
	ErrStackOverflow            = errors.New("stack limit reached")
	ErrInvalidOpcode            = errors.New("invalid opcode")
	ErrInvalidJump              = errors.New("invalid jump destination")
	ErrCallCreateDepth          = errors.New("max call depth exceeded")
	ErrInsufficientBalance      = errors.New("insufficient balance for transfer")
	ErrContractAddressCollision = errors.New("contract address collision")
	ErrNonceUintOverflow        = errors.New("nonce uint64 overflow")
)

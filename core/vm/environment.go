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
)

// Database is the host's world-state surface: every account read/mutation
// an opcode handler needs, without the opcode handler ever touching a
// concrete storage engine. Implemented by core/state.StateDB.
type Database interface {
	GetBalance(addr common.Address) *uint256.Int
	AddBalance(addr common.Address, amount *uint256.Int)
	SubBalance(addr common.Address, amount *uint256.Int)
	GetNonce(addr common.Address) uint64
	SetNonce(addr common.Address, nonce uint64)
	GetCode(addr common.Address) []byte
	GetCodeSize(addr common.Address) int
	GetCodeHash(addr common.Address) common.Hash
	SetCode(addr common.Address, code []byte)
	GetState(addr common.Address, key common.Hash) common.Hash
	SetState(addr common.Address, key, value common.Hash)
	Exist(addr common.Address) bool
	CreateAccount(addr common.Address)
	Suicide(addr common.Address) bool
	HasSuicided(addr common.Address) bool

	Snapshot() int
	RevertToSnapshot(int)
}

// Environment is the capability interface frame lifecycle and the system
// opcodes (CALL/CALLCODE/CREATE/SELFDESTRUCT) depend on instead of
// importing the package that drives them — it is what lets core/vm stay
// free of a dependency on core, which is the package that actually knows
// how to spawn and run a child frame.
type Environment interface {
	Db() Database

	Origin() common.Address
	BlockNumber() *uint256.Int
	Coinbase() common.Address
	Time() *uint256.Int
	Difficulty() *uint256.Int
	GasLimit() *uint256.Int
	GetHash(n uint64) common.Hash

	CanTransfer(from common.Address, amount *uint256.Int) bool
	Transfer(from, to common.Address, amount *uint256.Int)

	Depth() int

	// Call, CallCode and Create run a child frame to completion and fold
	// its state writes back into the caller per the merge-on-success rule:
	// a failing child's writes are rolled back via Snapshot/RevertToSnapshot
	// before Call/CallCode/Create returns. The returned *Frame is the child
	// that actually ran, for the caller to fold Logs/AccountsToDelete in via
	// Frame.AddChild; it is nil when a guard rejection (depth, balance,
	// nonce ceiling) meant no child ever ran.
	Call(caller ContractRef, addr common.Address, input []byte, gas uint64, value *uint256.Int) ([]byte, uint64, *Frame, error)
	CallCode(caller ContractRef, addr common.Address, input []byte, gas uint64, value *uint256.Int) ([]byte, uint64, *Frame, error)
	Create(caller ContractRef, code []byte, gas uint64, value *uint256.Int) ([]byte, common.Address, uint64, *Frame, error)
}

// ContractRef is the minimal identity a caller needs to expose to
// Environment to be named as the sender of a nested message.
type ContractRef interface {
	Address() common.Address
}

// Log is a single LOG0..LOG4 record. The LOGn handlers construct one on
// their own frame; Frame.AddChild merges a successful child's logs into
// its parent.
type Log struct {
	Address common.Address
	Topics  []common.Hash
	Data    []byte
}

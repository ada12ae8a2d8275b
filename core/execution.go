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

// Package core wires the host side of the interpreter: it supplies the
// vm.Environment the opcode handlers call back into for CALL/CALLCODE/
// CREATE/SELFDESTRUCT, and the two entry points, ProcessMessage and
// ProcessCreateMessage, that start a fresh call tree.
package core

import (
	"github.com/holiman/uint256"

	"github.com/eth-classic/go-ethereum/common"
	"github.com/eth-classic/go-ethereum/core/state"
	"github.com/eth-classic/go-ethereum/core/vm"
	"github.com/eth-classic/go-ethereum/crypto"
	"github.com/eth-classic/go-ethereum/logger"
	"github.com/eth-classic/go-ethereum/logger/glog"
	"github.com/eth-classic/go-ethereum/params"
)

var callCreateDepthMax = int(params.CallCreateDepth)

// Context carries the parts of block/transaction context the interpreter's
// environment opcodes read (COINBASE, TIMESTAMP, ...) but never mutate.
// Assembling one from a real block is out of this core's scope; cmd/
// frontier-evm builds one directly from CLI flags.
type Context struct {
	Origin      common.Address
	GasPrice    *uint256.Int
	Coinbase    common.Address
	BlockNumber *uint256.Int
	Time        *uint256.Int
	Difficulty  *uint256.Int
	GasLimit    *uint256.Int
	GetHash     func(n uint64) common.Hash
}

// Env implements vm.Environment over a core/state.StateDB.
type Env struct {
	Context
	db    *state.StateDB
	depth int
}

func NewEnv(ctx Context, db *state.StateDB) *Env {
	return &Env{Context: ctx, db: db}
}

func (e *Env) Db() vm.Database { return e.db }

func (e *Env) Origin() common.Address      { return e.Context.Origin }
func (e *Env) BlockNumber() *uint256.Int   { return e.Context.BlockNumber }
func (e *Env) Coinbase() common.Address    { return e.Context.Coinbase }
func (e *Env) Time() *uint256.Int          { return e.Context.Time }
func (e *Env) Difficulty() *uint256.Int    { return e.Context.Difficulty }
func (e *Env) GasLimit() *uint256.Int      { return e.Context.GasLimit }
func (e *Env) GetHash(n uint64) common.Hash { return e.Context.GetHash(n) }
func (e *Env) Depth() int                  { return e.depth }

func (e *Env) CanTransfer(from common.Address, amount *uint256.Int) bool {
	return e.db.GetBalance(from).Cmp(amount) >= 0
}

func (e *Env) Transfer(from, to common.Address, amount *uint256.Int) {
	e.db.SubBalance(from, amount)
	e.db.AddBalance(to, amount)
}

// ProcessMessage runs a top-level CALL-shaped message (msg.IsCreate must be
// false) to completion against db and returns the resulting frame.
func ProcessMessage(ctx Context, db *state.StateDB, msg *vm.Message) *vm.Frame {
	env := NewEnv(ctx, db)
	frame := vm.NewFrame(msg, env)
	vm.Run(frame)
	return frame
}

// ProcessCreateMessage runs a top-level CREATE-shaped message to
// completion: msg.Code is treated as init code, and on success the
// returned frame's Output is the deployed contract's code, already
// persisted to db at msg.Target.
func ProcessCreateMessage(ctx Context, db *state.StateDB, msg *vm.Message) *vm.Frame {
	env := NewEnv(ctx, db)
	snapshot := db.Snapshot()

	db.SetNonce(msg.Target, 1)
	db.CreateAccount(msg.Target)
	if !msg.Value.IsZero() {
		env.Transfer(msg.Caller, msg.Target, msg.Value)
	}

	frame := vm.NewFrame(msg, env)
	vm.Run(frame)

	finalizeCreate(frame, db, msg.Target, snapshot)
	return frame
}

// finalizeCreate applies the code-storage gas charge to a successfully
// completed constructor and persists its output as the new account's code;
// any failure at this stage, like any other exceptional halt inside the
// constructor, unwinds the entire creation atomically.
func finalizeCreate(frame *vm.Frame, db *state.StateDB, addr common.Address, snapshot int) {
	if frame.HasErred {
		db.RevertToSnapshot(snapshot)
		return
	}
	depositCost := uint64(len(frame.Output)) * params.CreateDataGas
	if frame.Gas.Gas() < depositCost {
		frame.HasErred = true
		frame.Err = vm.ErrOutOfGas
		db.RevertToSnapshot(snapshot)
		return
	}
	frame.Gas.UseGas(depositCost)
	db.SetCode(addr, frame.Output)
}

// Call spawns and runs a CALL child frame. The returned *vm.Frame is the
// child that ran, so opCall can fold its Logs/AccountsToDelete into its
// own frame via Frame.AddChild; it is nil on a guard rejection, since no
// child ever ran.
func (e *Env) Call(caller vm.ContractRef, addr common.Address, input []byte, gas uint64, value *uint256.Int) ([]byte, uint64, *vm.Frame, error) {
	if e.depth+1 > callCreateDepthMax {
		return nil, gas, nil, vm.ErrCallCreateDepth
	}
	if !value.IsZero() && !e.CanTransfer(caller.Address(), value) {
		return nil, gas, nil, vm.ErrInsufficientBalance
	}

	snapshot := e.db.Snapshot()
	if !e.db.Exist(addr) {
		e.db.CreateAccount(addr)
	}
	if !value.IsZero() {
		e.Transfer(caller.Address(), addr, value)
	}

	child := &Env{Context: e.Context, db: e.db, depth: e.depth + 1}
	msg := &vm.Message{
		Caller:        caller.Address(),
		Target:        addr,
		CurrentTarget: addr,
		CodeAddress:   &addr,
		Gas:           new(uint256.Int).SetUint64(gas),
		GasPrice:      e.Context.GasPrice,
		Value:         value,
		Data:          input,
		Code:          e.db.GetCode(addr),
		Depth:         child.depth,
	}
	frame := vm.NewFrame(msg, child)
	glog.V(logger.Detail).Infof("CALL depth=%d to=%s gas=%d value=%s", child.depth, addr.Hex(), gas, value.Dec())
	vm.Run(frame)

	if frame.HasErred {
		e.db.RevertToSnapshot(snapshot)
		return nil, 0, frame, frame.Err
	}
	return frame.Output, frame.Gas.Gas(), frame, nil
}

// CallCode is Call with the callee's code run against the caller's own
// storage/balance: CurrentTarget stays the caller, only CodeAddress names
// where the code comes from.
func (e *Env) CallCode(caller vm.ContractRef, addr common.Address, input []byte, gas uint64, value *uint256.Int) ([]byte, uint64, *vm.Frame, error) {
	if e.depth+1 > callCreateDepthMax {
		return nil, gas, nil, vm.ErrCallCreateDepth
	}
	self := caller.Address()
	if !value.IsZero() && !e.CanTransfer(self, value) {
		return nil, gas, nil, vm.ErrInsufficientBalance
	}

	snapshot := e.db.Snapshot()
	if !value.IsZero() {
		// CALLCODE moves value within the caller's own balance: this is a
		// same-account transfer, recorded so a reverted child still undoes
		// the accounting symmetrically with CALL.
		e.Transfer(self, self, value)
	}

	child := &Env{Context: e.Context, db: e.db, depth: e.depth + 1}
	msg := &vm.Message{
		Caller:        self,
		Target:        self,
		CurrentTarget: self,
		CodeAddress:   &addr,
		Gas:           new(uint256.Int).SetUint64(gas),
		GasPrice:      e.Context.GasPrice,
		Value:         value,
		Data:          input,
		Code:          e.db.GetCode(addr),
		Depth:         child.depth,
	}
	frame := vm.NewFrame(msg, child)
	vm.Run(frame)

	if frame.HasErred {
		e.db.RevertToSnapshot(snapshot)
		return nil, 0, frame, frame.Err
	}
	return frame.Output, frame.Gas.Gas(), frame, nil
}

// maxNonce is the largest value a uint64 account nonce can hold; CREATE
// must reject rather than let the increment below wrap it back to 0.
const maxNonce = ^uint64(0)

// Create spawns and runs a CREATE child frame. Per the Frontier/DAO-fork
// rule, the caller forwards its entire remaining gas as the gas argument;
// opCreate only zeroes its own GasMeter after this returns, refunding
// whatever comes back. A depth/balance/nonce-ceiling rejection hands gas
// back untouched (the guard runs before any gas is transferred to the
// child); an address collision or a constructor that fails burns it,
// returning 0 alongside the error.
func (e *Env) Create(caller vm.ContractRef, code []byte, gas uint64, value *uint256.Int) ([]byte, common.Address, uint64, *vm.Frame, error) {
	if e.depth+1 > callCreateDepthMax {
		return nil, common.Address{}, gas, nil, vm.ErrCallCreateDepth
	}
	sender := caller.Address()
	if !value.IsZero() && !e.CanTransfer(sender, value) {
		return nil, common.Address{}, gas, nil, vm.ErrInsufficientBalance
	}
	nonce := e.db.GetNonce(sender)
	if nonce == maxNonce {
		return nil, common.Address{}, gas, nil, vm.ErrNonceUintOverflow
	}

	e.db.SetNonce(sender, nonce+1)
	addr := crypto.CreateAddress(sender, nonce)

	snapshot := e.db.Snapshot()

	if e.db.Exist(addr) && (e.db.GetCodeHash(addr) != (common.Hash{}) || e.db.GetNonce(addr) != 0) {
		e.db.RevertToSnapshot(snapshot)
		return nil, common.Address{}, 0, nil, vm.ErrContractAddressCollision
	}

	e.db.CreateAccount(addr)
	e.db.SetNonce(addr, 1)
	if !value.IsZero() {
		e.Transfer(sender, addr, value)
	}

	child := &Env{Context: e.Context, db: e.db, depth: e.depth + 1}
	msg := &vm.Message{
		Caller:        sender,
		Target:        addr,
		CurrentTarget: addr,
		CodeAddress:   nil,
		Gas:           new(uint256.Int).SetUint64(gas),
		GasPrice:      e.Context.GasPrice,
		Value:         value,
		Data:          nil,
		Code:          code,
		Depth:         child.depth,
		IsCreate:      true,
	}
	frame := vm.NewFrame(msg, child)
	vm.Run(frame)

	finalizeCreate(frame, e.db, addr, snapshot)
	if frame.HasErred {
		return nil, common.Address{}, 0, frame, frame.Err
	}
	return frame.Output, addr, frame.Gas.Gas(), frame, nil
}

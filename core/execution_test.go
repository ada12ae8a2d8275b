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

package core

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/eth-classic/go-ethereum/common"
	"github.com/eth-classic/go-ethereum/core/state"
	"github.com/eth-classic/go-ethereum/core/vm"
	"github.com/eth-classic/go-ethereum/crypto"
)

func testContext() Context {
	return Context{
		Origin:      common.BytesToAddress([]byte{1}),
		GasPrice:    new(uint256.Int),
		Coinbase:    common.BytesToAddress([]byte{0xc0}),
		BlockNumber: uint256.NewInt(1),
		Time:        uint256.NewInt(0),
		Difficulty:  uint256.NewInt(0x020000),
		GasLimit:    uint256.NewInt(10000000),
		GetHash:     func(uint64) common.Hash { return common.Hash{} },
	}
}

// TestCreateThenCall deploys a constructor that always returns a single
// fixed-size runtime body, then calls into the deployed contract and checks
// the call sees the persisted code.
func TestCreateThenCall(t *testing.T) {
	db := state.New()
	sender := common.BytesToAddress([]byte{1})
	db.AddBalance(sender, uint256.NewInt(1000000))

	// runtime: PUSH1 0x2a PUSH1 0 MSTORE PUSH1 32 PUSH1 0 RETURN
	runtime := []byte{
		byte(vm.PUSH1), 0x2a,
		byte(vm.PUSH1), 0,
		byte(vm.MSTORE),
		byte(vm.PUSH1), 32,
		byte(vm.PUSH1), 0,
		byte(vm.RETURN),
	}
	// init: copies runtime into memory then returns it as the deployed code.
	init := append([]byte{
		byte(vm.PUSH1), byte(len(runtime)),
		byte(vm.DUP1),
		byte(vm.PUSH1), 11, // offset of runtime within init code
		byte(vm.PUSH1), 0,
		byte(vm.CODECOPY),
		byte(vm.PUSH1), 0,
		byte(vm.RETURN),
	}, runtime...)

	ctx := testContext()
	env := NewEnv(ctx, db)
	_, _, _, createFrame, err := env.Create(dummyRef{sender}, init, 1000000, new(uint256.Int))

	assert.NoError(t, err)
	assert.False(t, createFrame.HasErred, "constructor should not halt exceptionally: %v", createFrame.Err)
	assert.Equal(t, runtime, createFrame.Output)

	deployed := crypto.CreateAddress(sender, 0)
	assert.Equal(t, runtime, db.GetCode(deployed))

	callMsg := &vm.Message{
		Caller:        sender,
		Target:        deployed,
		CurrentTarget: deployed,
		CodeAddress:   &deployed,
		Gas:           uint256.NewInt(100000),
		GasPrice:      new(uint256.Int),
		Value:         new(uint256.Int),
		Code:          db.GetCode(deployed),
	}
	frame := ProcessMessage(ctx, db, callMsg)
	assert.False(t, frame.HasErred)
	assert.Equal(t, uint64(0x2a), new(uint256.Int).SetBytes(frame.Output).Uint64())
}

// TestCallInsufficientBalanceFails checks CanTransfer gating: a value-bearing
// CALL from an account with no balance must fail before the child even runs.
func TestCallInsufficientBalanceFails(t *testing.T) {
	db := state.New()
	sender := common.BytesToAddress([]byte{1})
	target := common.BytesToAddress([]byte{2})
	db.CreateAccount(target)
	db.SetCode(target, []byte{byte(vm.STOP)})

	ctx := testContext()
	env := NewEnv(ctx, db)

	_, _, _, err := env.Call(dummyRef{sender}, target, nil, 50000, uint256.NewInt(10))
	assert.Equal(t, vm.ErrInsufficientBalance, err)
}

// TestCreateInsufficientBalanceRefundsGas checks the CREATE guard: a
// balance rejection must hand back the gas untouched, not burn it the way
// an address collision or failed constructor does.
func TestCreateInsufficientBalanceRefundsGas(t *testing.T) {
	db := state.New()
	sender := common.BytesToAddress([]byte{1})
	db.AddBalance(sender, uint256.NewInt(10))

	ctx := testContext()
	env := NewEnv(ctx, db)

	_, _, returnGas, child, err := env.Create(dummyRef{sender}, nil, 90000, uint256.NewInt(11))
	assert.Equal(t, vm.ErrInsufficientBalance, err)
	assert.Equal(t, uint64(90000), returnGas, "a balance rejection refunds the gas offered to the child in full")
	assert.Nil(t, child, "no child frame ever ran")
	assert.Equal(t, uint64(0), db.GetNonce(sender), "a rejected CREATE never touches the sender's nonce")
}

// TestCreateNonceCeilingRejects checks the nonce-overflow guard: a sender
// already at the uint64 ceiling must be rejected rather than having its
// nonce silently wrap back to 0.
func TestCreateNonceCeilingRejects(t *testing.T) {
	db := state.New()
	sender := common.BytesToAddress([]byte{1})
	db.AddBalance(sender, uint256.NewInt(1000000))
	db.SetNonce(sender, maxNonce)

	ctx := testContext()
	env := NewEnv(ctx, db)

	_, _, returnGas, child, err := env.Create(dummyRef{sender}, nil, 90000, new(uint256.Int))
	assert.Equal(t, vm.ErrNonceUintOverflow, err)
	assert.Equal(t, uint64(90000), returnGas)
	assert.Nil(t, child)
	assert.Equal(t, maxNonce, db.GetNonce(sender), "rejection leaves the nonce exactly at the ceiling, never wrapped")
}

// TestCallSelfdestructMergesIntoTopFrame sets up a top-level frame whose
// own code issues a CALL into a second contract that immediately
// SELFDESTRUCTs, then checks the self-destruct reaches the TOP frame's
// AccountsToDelete — this only happens if opCall folds the child frame in
// via Frame.AddChild, which nothing but the child's own unit tests used to
// exercise.
func TestCallSelfdestructMergesIntoTopFrame(t *testing.T) {
	db := state.New()
	top := common.BytesToAddress([]byte{1})
	target := common.BytesToAddress([]byte{2})
	beneficiary := common.BytesToAddress([]byte{3})

	db.CreateAccount(target)
	db.AddBalance(target, uint256.NewInt(7))
	db.SetCode(target, []byte{
		byte(vm.PUSH1), 3, // beneficiary's single low byte
		byte(vm.SELFDESTRUCT),
	})

	// CALL(gas=100, to=target, value=0, in=[0,0], out=[0,0]) then STOP.
	outerCode := []byte{
		byte(vm.PUSH1), 0, // outSize
		byte(vm.PUSH1), 0, // outOffset
		byte(vm.PUSH1), 0, // inSize
		byte(vm.PUSH1), 0, // inOffset
		byte(vm.PUSH1), 0, // value
		byte(vm.PUSH1), 2, // target's single low byte
		byte(vm.PUSH1), 100, // gas
		byte(vm.CALL),
		byte(vm.STOP),
	}
	db.CreateAccount(top)
	db.SetCode(top, outerCode)

	ctx := testContext()
	callMsg := &vm.Message{
		Caller:        top,
		Target:        top,
		CurrentTarget: top,
		CodeAddress:   &top,
		Gas:           uint256.NewInt(100000),
		GasPrice:      new(uint256.Int),
		Value:         new(uint256.Int),
		Code:          outerCode,
	}
	frame := ProcessMessage(ctx, db, callMsg)

	assert.False(t, frame.HasErred)
	_, marked := frame.AccountsToDelete[target]
	assert.True(t, marked, "a SELFDESTRUCT inside a CALLed child must be visible on the top-level frame")
	assert.Equal(t, uint64(7), db.GetBalance(beneficiary).Uint64())
}

type dummyRef struct{ addr common.Address }

func (d dummyRef) Address() common.Address { return d.addr }

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

// opCreate implements CREATE. Per the Frontier/DAO-fork rule (no EIP-150
// 63/64ths retention), ALL of the frame's remaining gas is offered to the
// new contract's constructor. Env.Create runs its balance/nonce/depth
// guard before touching that gas at all, so a rejection there hands the
// full amount back untouched; only once the guard passes (and the child
// actually runs, or the address collides) does the gas get zeroed here
// and replaced with whatever Env.Create reports — the genuine leftover
// on success, 0 on a collision or a failed constructor.
func opCreate(pc *uint64, f *Frame) ([]byte, error) {
	value, offset, size := f.Stack.pop(), f.Stack.pop(), f.Stack.pop()

	input := f.Memory.GetPtr(int64(offset.Uint64()), int64(size.Uint64()))

	childGas := f.Gas.Gas()
	_, addr, returnGas, child, err := f.Env.Create(f, input, childGas, &value)
	if child != nil {
		f.AddChild(child)
	}

	if err != nil {
		f.Stack.push(new(uint256.Int))
	} else {
		f.Stack.push(addr.Word())
	}
	f.Gas.gas = 0
	f.Gas.Refund(returnGas)
	return nil, nil
}

func memoryCreate(stack *Stack) (uint64, bool) {
	return calcMemSize(stack.Back(1), stack.Back(2))
}

func gasCreate(f *Frame, memorySize uint64) (uint64, error) {
	return 0, nil
}

// opCall implements CALL. The child receives min(requested, available)
// gas, plus a 2300 stipend when value is nonzero — never the 63/64ths
// rule, which postdates this fork.
func opCall(pc *uint64, f *Frame) ([]byte, error) {
	gasReq, addrWord, value, inOff, inSize, outOff, outSize := f.Stack.pop(), f.Stack.pop(), f.Stack.pop(), f.Stack.pop(), f.Stack.pop(), f.Stack.pop(), f.Stack.pop()
	addr := common.AddressFromWord(&addrWord)

	args := f.Memory.GetPtr(int64(inOff.Uint64()), int64(inSize.Uint64()))

	gas := callGas(f.Gas.Gas(), gasReq.Uint64())
	if err := f.Gas.UseGas(gas); err != nil {
		return nil, err
	}
	// The stipend is free money handed to the callee, never charged
	// against the caller's own gas meter.
	if !value.IsZero() {
		gas += params.CallStipend
	}

	ret, returnGas, child, err := f.Env.Call(f, addr, args, gas, &value)
	f.Gas.Refund(returnGas)
	if child != nil {
		f.AddChild(child)
	}

	if err != nil {
		f.Stack.push(new(uint256.Int))
	} else {
		f.Stack.push(uint256.NewInt(1))
		f.Memory.Set(outOff.Uint64(), outSize.Uint64(), ret)
	}
	return nil, nil
}

// opCallCode implements CALLCODE: identical to CALL except the callee's
// code runs against the CALLER's storage/balance (CurrentTarget stays the
// caller's address in the child Message; only CodeAddress differs).
func opCallCode(pc *uint64, f *Frame) ([]byte, error) {
	gasReq, addrWord, value, inOff, inSize, outOff, outSize := f.Stack.pop(), f.Stack.pop(), f.Stack.pop(), f.Stack.pop(), f.Stack.pop(), f.Stack.pop(), f.Stack.pop()
	addr := common.AddressFromWord(&addrWord)

	args := f.Memory.GetPtr(int64(inOff.Uint64()), int64(inSize.Uint64()))

	gas := callGas(f.Gas.Gas(), gasReq.Uint64())
	if err := f.Gas.UseGas(gas); err != nil {
		return nil, err
	}
	// The stipend is free money handed to the callee, never charged
	// against the caller's own gas meter.
	if !value.IsZero() {
		gas += params.CallStipend
	}

	ret, returnGas, child, err := f.Env.CallCode(f, addr, args, gas, &value)
	f.Gas.Refund(returnGas)
	if child != nil {
		f.AddChild(child)
	}

	if err != nil {
		f.Stack.push(new(uint256.Int))
	} else {
		f.Stack.push(uint256.NewInt(1))
		f.Memory.Set(outOff.Uint64(), outSize.Uint64(), ret)
	}
	return nil, nil
}

func memoryCall(stack *Stack) (uint64, bool) {
	in, overflow := calcMemSize(stack.Back(3), stack.Back(4))
	if overflow {
		return 0, true
	}
	out, overflow := calcMemSize(stack.Back(5), stack.Back(6))
	if overflow {
		return 0, true
	}
	if in > out {
		return in, false
	}
	return out, false
}

func gasCall(f *Frame, memorySize uint64) (uint64, error) {
	addrWord := f.Stack.Back(1)
	addr := common.AddressFromWord(addrWord)
	value := f.Stack.Back(2)

	var gas uint64
	if !value.IsZero() {
		gas += params.CallValueTransferGas
	}
	// Unconditional on value: this is the pre-EIP161 rule this fork
	// targets. A zero-value CALL to a nonexistent address still pays to
	// bring it into existence.
	if !f.Env.Db().Exist(addr) {
		gas += params.CallNewAccountGas
	}
	return gas, nil
}

// opReturn implements RETURN: halt cleanly, returning the given memory
// window as this frame's output.
func opReturn(pc *uint64, f *Frame) ([]byte, error) {
	offset, size := f.Stack.pop(), f.Stack.pop()
	ret := f.Memory.GetPtr(int64(offset.Uint64()), int64(size.Uint64()))
	return ret, nil
}

func memoryReturn(stack *Stack) (uint64, bool) {
	return calcMemSize(stack.Back(0), stack.Back(1))
}

func gasReturn(f *Frame, memorySize uint64) (uint64, error) { return 0, nil }

// opSelfdestruct implements SELFDESTRUCT: transfer this account's entire
// balance to beneficiary and mark it for deletion at the end of the
// top-level transaction. Frontier charges no base fee for this opcode and
// refunds SuicideRefundGas the first time an account is marked.
func opSelfdestruct(pc *uint64, f *Frame) ([]byte, error) {
	beneficiaryWord := f.Stack.pop()
	beneficiary := common.AddressFromWord(&beneficiaryWord)

	balance := f.Env.Db().GetBalance(f.Message.CurrentTarget)
	f.Env.Db().AddBalance(beneficiary, balance)

	if !f.Env.Db().HasSuicided(f.Message.CurrentTarget) {
		f.Gas.Refund(params.SuicideRefundGas)
	}
	f.Env.Db().Suicide(f.Message.CurrentTarget)
	f.AccountsToDelete[f.Message.CurrentTarget] = struct{}{}

	return nil, nil
}

func gasSelfdestruct(f *Frame, memorySize uint64) (uint64, error) { return 0, nil }

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

import "github.com/eth-classic/go-ethereum/params"

// execFunc runs one opcode against the frame's stack/memory/state. JUMP/
// JUMPI set pc themselves; PUSHn moves it past its immediate bytes; Run
// then advances it by one for every opcode except JUMP/JUMPI.
type execFunc func(pc *uint64, f *Frame) ([]byte, error)

// gasFunc computes an opcode's dynamic gas charge, on top of its constant
// cost, given the memory size (in bytes) the opcode is about to touch.
type gasFunc func(f *Frame, memorySize uint64) (uint64, error)

// memorySizeFunc returns the number of bytes of memory an opcode's
// operands require to be available, derived from the stack without
// popping anything.
type memorySizeFunc func(stack *Stack) (uint64, bool)

type operation struct {
	execute     execFunc
	constantGas uint64
	dynamicGas  gasFunc
	minStack    int
	maxStack    int
	memorySize  memorySizeFunc
	halts       bool // RETURN, STOP, SELFDESTRUCT
	jumps       bool // JUMP, JUMPI: opcode advances pc itself
	writes      bool // SSTORE
	valid       bool
}

type jumpTable [256]operation

// stackRange returns (minStack, maxStack) for an opcode that pops pops
// items and pushes pushes items: minStack is the fewest items that must
// already be present; maxStack is the most items that may already be
// present without the post-push depth exceeding params.StackLimit.
func stackRange(pops, pushes int) (int, int) {
	return pops, int(params.StackLimit) + pops - pushes
}

// newFrontierInstructionSet builds the Frontier/DAO-fork opcode table: no
// DELEGATECALL, no REVERT/STATICCALL/RETURNDATA*, no EIP-150 call-gas
// retention, no EIP-1283 net SSTORE metering.
func newFrontierInstructionSet() jumpTable {
	var tbl jumpTable

	set := func(op OpCode, pops, pushes int, o operation) {
		o.valid = true
		o.minStack, o.maxStack = stackRange(pops, pushes)
		tbl[op] = o
	}

	set(STOP, 0, 0, operation{execute: opStop, halts: true})

	arith := func(op OpCode, fn execFunc, gas uint64, pops int) {
		set(op, pops, 1, operation{execute: fn, constantGas: gas})
	}
	arith(ADD, opAdd, params.GasFastestStep, 2)
	arith(MUL, opMul, params.GasFastStep, 2)
	arith(SUB, opSub, params.GasFastestStep, 2)
	arith(DIV, opDiv, params.GasFastStep, 2)
	arith(SDIV, opSdiv, params.GasFastStep, 2)
	arith(MOD, opMod, params.GasFastStep, 2)
	arith(SMOD, opSmod, params.GasFastStep, 2)
	arith(ADDMOD, opAddmod, params.GasMidStep, 3)
	arith(MULMOD, opMulmod, params.GasMidStep, 3)
	arith(SIGNEXTEND, opSignExtend, params.GasFastStep, 2)
	arith(LT, opLt, params.GasFastestStep, 2)
	arith(GT, opGt, params.GasFastestStep, 2)
	arith(SLT, opSlt, params.GasFastestStep, 2)
	arith(SGT, opSgt, params.GasFastestStep, 2)
	arith(EQ, opEq, params.GasFastestStep, 2)
	arith(ISZERO, opIszero, params.GasFastestStep, 1)
	arith(AND, opAnd, params.GasFastestStep, 2)
	arith(OR, opOr, params.GasFastestStep, 2)
	arith(XOR, opXor, params.GasFastestStep, 2)
	arith(NOT, opNot, params.GasFastestStep, 1)
	arith(BYTE, opByte, params.GasFastestStep, 2)

	set(EXP, 2, 1, operation{execute: opExp, constantGas: params.GasExp, dynamicGas: gasExp})

	set(SHA3, 2, 1, operation{
		execute: opSha3, constantGas: params.Sha3Gas, dynamicGas: gasSha3, memorySize: memorySha3,
	})

	env := func(op OpCode, fn execFunc, gas uint64, pops, pushes int) {
		set(op, pops, pushes, operation{execute: fn, constantGas: gas})
	}
	env(ADDRESS, opAddress, params.GasQuickStep, 0, 1)
	env(BALANCE, opBalance, params.GasBalance, 1, 1)
	env(ORIGIN, opOrigin, params.GasQuickStep, 0, 1)
	env(CALLER, opCaller, params.GasQuickStep, 0, 1)
	env(CALLVALUE, opCallValue, params.GasQuickStep, 0, 1)
	env(CALLDATALOAD, opCalldataLoad, params.GasFastestStep, 1, 1)
	env(CALLDATASIZE, opCalldataSize, params.GasQuickStep, 0, 1)
	set(CALLDATACOPY, 3, 0, operation{execute: opCalldataCopy, constantGas: params.GasFastestStep, dynamicGas: gasCalldataCopy, memorySize: memoryCalldataCopy})
	env(CODESIZE, opCodeSize, params.GasQuickStep, 0, 1)
	set(CODECOPY, 3, 0, operation{execute: opCodeCopy, constantGas: params.GasFastestStep, dynamicGas: gasCodeCopy, memorySize: memoryCalldataCopy})
	env(GASPRICE, opGasprice, params.GasQuickStep, 0, 1)
	env(EXTCODESIZE, opExtCodeSize, params.GasExtCode, 1, 1)
	set(EXTCODECOPY, 4, 0, operation{execute: opExtCodeCopy, constantGas: params.GasExtCode, dynamicGas: gasExtCodeCopy, memorySize: memoryExtCodeCopy})

	set(BLOCKHASH, 1, 1, operation{execute: opBlockhash, constantGas: params.GasExtStep})
	env(COINBASE, opCoinbase, params.GasBase, 0, 1)
	env(TIMESTAMP, opTimestamp, params.GasBase, 0, 1)
	env(NUMBER, opNumber, params.GasBase, 0, 1)
	env(DIFFICULTY, opDifficulty, params.GasBase, 0, 1)
	env(GASLIMIT, opGasLimit, params.GasBase, 0, 1)

	set(POP, 1, 0, operation{execute: opPop, constantGas: params.GasQuickStep})
	set(MLOAD, 1, 1, operation{execute: opMload, constantGas: params.GasFastestStep, dynamicGas: gasMload, memorySize: memoryMload})
	set(MSTORE, 2, 0, operation{execute: opMstore, constantGas: params.GasFastestStep, dynamicGas: gasMstore, memorySize: memoryMstore})
	set(MSTORE8, 2, 0, operation{execute: opMstore8, constantGas: params.GasFastestStep, dynamicGas: gasMstore8, memorySize: memoryMstore8})
	set(SLOAD, 1, 1, operation{execute: opSload, constantGas: params.SloadGas})
	set(SSTORE, 2, 0, operation{execute: opSstore, dynamicGas: gasSstore, writes: true})
	set(JUMP, 1, 0, operation{execute: opJump, constantGas: params.GasMidStep, jumps: true})
	set(JUMPI, 2, 0, operation{execute: opJumpi, constantGas: params.GasSlowStep, jumps: true})
	set(PC, 0, 1, operation{execute: opPc, constantGas: params.GasQuickStep})
	set(MSIZE, 0, 1, operation{execute: opMsize, constantGas: params.GasQuickStep})
	set(GAS, 0, 1, operation{execute: opGas, constantGas: params.GasQuickStep})
	set(JUMPDEST, 0, 0, operation{execute: opJumpdest, constantGas: params.JumpdestGas})

	for i := 0; i < 32; i++ {
		op := PUSH1 + OpCode(i)
		set(op, 0, 1, operation{execute: makePush(uint64(i + 1)), constantGas: params.GasVeryLow})
	}
	for i := 1; i <= 16; i++ {
		op := DUP1 + OpCode(i-1)
		// DUPn only ever grows the stack by one, but the bound is expressed
		// as popping i items and pushing i+1 so maxStack still caps the
		// post-op depth at StackLimit regardless of how deep i reaches.
		set(op, i, i+1, operation{execute: makeDup(i), constantGas: params.GasVeryLow})
	}
	for i := 1; i <= 16; i++ {
		op := SWAP1 + OpCode(i-1)
		set(op, i+1, i+1, operation{execute: makeSwap(i), constantGas: params.GasVeryLow})
	}
	for i := 0; i <= 4; i++ {
		n := i
		op := LOG0 + OpCode(n)
		set(op, 2+n, 0, operation{
			execute: makeLog(n), dynamicGas: makeGasLog(n), memorySize: memoryLog,
		})
	}

	set(CREATE, 3, 1, operation{
		execute: opCreate, constantGas: params.CreateGas, dynamicGas: gasCreate, memorySize: memoryCreate,
	})
	set(CALL, 7, 1, operation{
		execute: opCall, constantGas: params.CallGas, dynamicGas: gasCall, memorySize: memoryCall,
	})
	set(CALLCODE, 7, 1, operation{
		execute: opCallCode, constantGas: params.CallGas, dynamicGas: gasCall, memorySize: memoryCall,
	})
	set(RETURN, 2, 0, operation{execute: opReturn, dynamicGas: gasReturn, memorySize: memoryReturn, halts: true})
	set(SELFDESTRUCT, 1, 0, operation{execute: opSelfdestruct, dynamicGas: gasSelfdestruct, halts: true})

	return tbl
}
